package deploy

// Mask reports whether cell (x,y) of a size×size grid is part of the usable region.
type Mask func(x, y, size int) bool

// DiamondMask clips the top and bottom corners of the isometric projection: the cells whose
// draw row x+y lies within size/2 of either end of the diagonal range.
func DiamondMask(x, y, size int) bool {
	m := size / 2
	z := x + y
	return z >= m && z <= 2*(size-1)-m
}

// FullMask keeps every cell of the square.
func FullMask(_, _, _ int) bool { return true }

// TileKind identifies what a cell marker represents.
type TileKind uint8

const (
	TileBlock    TileKind = iota // plain deployment slot
	TileBuilding                 // structure drawn in place of a unit
)

// Tile is the marker every grid cell carries.
type Tile struct {
	X, Y      int
	Kind      TileKind
	Building  *Building // set when Kind == TileBuilding
	invisible bool
}

// IsInvisible reports whether the tile lies outside the usable region.
func (t *Tile) IsInvisible() bool { return t.invisible }

// IsBuilding reports whether the tile holds a structure.
func (t *Tile) IsBuilding() bool { return t.Kind == TileBuilding }

// Unit is a deployable army unit produced by a Faction.
type Unit struct {
	FactionSlot int // 1-based faction slot the unit was requested with
	Slot        int // unit kind within the faction
	X, Y        int
	Name        string
	Placeholder bool // always rendered highlighted
}

// IsPlaceholder reports whether the unit is a stand-in.
func (u *Unit) IsPlaceholder() bool { return u.Placeholder }

// Building is a structure occupying a tile.
type Building struct {
	Name string
}

// OccupantKind tags what sits on top of a cell's floor tile.
type OccupantKind uint8

const (
	OccupantEmpty OccupantKind = iota
	OccupantBuilding
	OccupantUnit
)

func (k OccupantKind) String() string {
	switch k {
	case OccupantBuilding:
		return "building"
	case OccupantUnit:
		return "unit"
	default:
		return "empty"
	}
}

// Occupant is the resolved content of a cell.
type Occupant struct {
	Kind     OccupantKind
	Unit     *Unit
	Building *Building
}

// Grid is a square index space stored as a flat arena indexed by x*size+y.
// Only cells accepted by the mask are visible.
type Grid struct {
	size  int
	tiles []Tile
	units []*Unit
}

func newGrid(size int) *Grid {
	return &Grid{
		size:  size,
		tiles: make([]Tile, size*size),
		units: make([]*Unit, size*size),
	}
}

// Size returns the side of the square index space.
func (g *Grid) Size() int { return g.size }

func (g *Grid) index(x, y int) int { return x*g.size + y }

// InBounds reports whether (x,y) is inside the square.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.size && y >= 0 && y < g.size
}

// Visible reports whether (x,y) is inside the square and its tile is visible.
func (g *Grid) Visible(x, y int) bool {
	return g.InBounds(x, y) && !g.tiles[g.index(x, y)].invisible
}

// Tile returns the marker at (x,y). The cell must be in bounds.
func (g *Grid) Tile(x, y int) *Tile {
	return &g.tiles[g.index(x, y)]
}

// Unit returns the unit at (x,y), or nil.
func (g *Grid) Unit(x, y int) *Unit {
	return g.units[g.index(x, y)]
}

// Occupant resolves what is drawn on top of the floor tile at (x,y).
// A building takes precedence over a unit.
func (g *Grid) Occupant(x, y int) Occupant {
	t := g.Tile(x, y)
	if t.IsBuilding() {
		return Occupant{Kind: OccupantBuilding, Building: t.Building}
	}
	if u := g.Unit(x, y); u != nil {
		return Occupant{Kind: OccupantUnit, Unit: u}
	}
	return Occupant{Kind: OccupantEmpty}
}

// UnitCount returns the number of placed units.
func (g *Grid) UnitCount() int {
	n := 0
	for _, u := range g.units {
		if u != nil {
			n++
		}
	}
	return n
}

// VisibleCount returns the number of visible cells.
func (g *Grid) VisibleCount() int {
	n := 0
	for i := range g.tiles {
		if !g.tiles[i].invisible {
			n++
		}
	}
	return n
}

func (g *Grid) setBuilding(x, y int, b *Building) {
	t := g.Tile(x, y)
	t.Kind = TileBuilding
	t.Building = b
}
