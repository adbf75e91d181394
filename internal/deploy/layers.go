package deploy

// Layers describes how one cell is composited: the floor tile first, then the occupant.
type Layers struct {
	Cell
	Selected  bool     // floor tile and building are drawn in their selected state
	Occupant  Occupant // what goes on top of the floor tile
	Highlight bool     // unit is drawn highlighted
}

// Layers resolves the compositing recipe for (x,y) given the current selection.
func (g *Grid) Layers(c Cell, selection Cell) Layers {
	l := Layers{
		Cell:     c,
		Selected: c == selection,
		Occupant: g.Occupant(c.X, c.Y),
	}
	if l.Occupant.Kind == OccupantUnit {
		l.Highlight = l.Occupant.Unit.IsPlaceholder() || l.Selected
	}
	return l
}

// CanvasLayout positions a floor tile and an occupant image on a shared canvas.
type CanvasLayout struct {
	Width, Height int
	TileX, TileY  int // origin of the floor tile
}

// ComposeLayout sizes the canvas for an occupant image of occW×occH. A quarter tile of extra
// height is reserved so the floor tile sits under the occupant's feet without clipping it.
func ComposeLayout(occW, occH int, geo Geometry) CanvasLayout {
	w := occW
	h := occH + geo.TileHeight/4
	return CanvasLayout{
		Width:  w,
		Height: h,
		TileX:  (w - geo.TileWidth) / 2,
		TileY:  h - geo.TileHeight,
	}
}
