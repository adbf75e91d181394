package deploy

import "github.com/sirupsen/logrus"

// Faction is the controlling side that hands out unit instances.
type Faction interface {
	FactionType() int
	NewUnit(factionSlot, unitSlot, x, y int) *Unit
}

// Region is the attacking region units are drawn from.
type Region interface {
	Controller() Faction
	// UnitStorage returns SlotCount available-unit counts.
	UnitStorage() []int
}

// Populate builds a grid and fills it with one unit per slot that still has quota.
// It must be called once per menu: every call requests fresh units from the faction.
func Populate(size int, mask Mask, quota *QuotaTable, faction Faction, log logrus.FieldLogger) *Grid {
	g := newGrid(size)
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			idx := g.index(x, y)
			g.tiles[idx] = Tile{X: x, Y: y, Kind: TileBlock, invisible: !mask(x, y, size)}

			factionSlot, unitSlot, ok := SlotOf(idx)
			if !ok || !quota.CanAdd(factionSlot, unitSlot) {
				continue
			}
			u := faction.NewUnit(factionSlot+1, unitSlot, x, y)
			g.units[idx] = u
			log.WithFields(logrus.Fields{
				"x":       x,
				"y":       y,
				"faction": factionSlot + 1,
				"slot":    unitSlot,
			}).Debug("unit placed")
		}
	}
	return g
}
