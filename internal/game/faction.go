package game

import "github.com/Garsondee/deploy-menu/internal/deploy"

// factionNames indexes by 1-based faction slot.
var factionNames = [deploy.FactionSlots + 1]string{"", "Legion", "Clans", "Covenant"}

// unitKindNames are shared by every faction; the last kind is a reserve placeholder.
var unitKindNames = [deploy.UnitKinds]string{
	"Infantry", "Archer", "Cavalry", "Pikeman",
	"Scout", "Siege", "Healer", "Reserve",
}

// unitGlyphs label unit sprites.
var unitGlyphs = [deploy.UnitKinds]string{"I", "A", "C", "P", "S", "X", "H", "?"}

const placeholderKind = deploy.UnitKinds - 1

// Army is the controlling faction of the attacking region.
type Army struct {
	Type int
}

// FactionType returns the faction type code used to tint floor tiles.
func (a *Army) FactionType() int { return a.Type }

// NewUnit builds a unit for the given 1-based faction slot and kind.
func (a *Army) NewUnit(factionSlot, unitSlot, x, y int) *deploy.Unit {
	return &deploy.Unit{
		FactionSlot: factionSlot,
		Slot:        unitSlot,
		X:           x,
		Y:           y,
		Name:        factionNames[factionSlot] + " " + unitKindNames[unitSlot],
		Placeholder: unitSlot == placeholderKind,
	}
}

// Region is the attacking region with its stored units.
type Region struct {
	Army    *Army
	Storage []int
}

// Controller returns the region's army.
func (r *Region) Controller() deploy.Faction { return r.Army }

// UnitStorage returns the available unit counts per slot.
func (r *Region) UnitStorage() []int { return r.Storage }
