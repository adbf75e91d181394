package deploy

// Menu dimensions.
const (
	GridSize     = 5  // side of the square index space
	FactionSlots = 3  // factions that can contribute units
	UnitKinds    = 8  // unit kinds per faction
	SlotCount    = 24 // FactionSlots * UnitKinds
)

// Geometry holds the pixel metrics of one isometric tile sprite.
type Geometry struct {
	TileWidth      int // full sprite width of a floor tile
	TileHeight     int // full sprite height of a floor tile
	TileSideOffset int // horizontal inset of the tile's slanted sides
}

// DefaultGeometry matches the stock tile sprites.
var DefaultGeometry = Geometry{
	TileWidth:      96,
	TileHeight:     56,
	TileSideOffset: 24,
}

// sideStep is the horizontal gap between a tile and the tile one draw row above or below it.
func (g Geometry) sideStep() int {
	return g.TileWidth - g.TileSideOffset
}

// GridHeight is the pixel height reserved for a grid of the given size.
func (g Geometry) GridHeight(size int) int {
	return g.TileHeight * size
}

// Cell is a position in the square index space.
type Cell struct {
	X, Y int
}

// Index returns the linear index x*size+y.
func (c Cell) Index(size int) int {
	return c.X*size + c.Y
}

// CellAt is the inverse of Cell.Index.
func CellAt(idx, size int) Cell {
	return Cell{X: idx / size, Y: idx % size}
}

// InBounds reports whether c lies in [0,size) on both axes.
func (c Cell) InBounds(size int) bool {
	return c.X >= 0 && c.X < size && c.Y >= 0 && c.Y < size
}

// SlotOf maps a linear index to its (factionSlot, unitSlot) pair.
// ok is false for indices without a quota slot.
func SlotOf(idx int) (factionSlot, unitSlot int, ok bool) {
	if idx < 0 || idx >= SlotCount {
		return 0, 0, false
	}
	return idx / UnitKinds, idx % UnitKinds, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
