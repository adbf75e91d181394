package deploy

// Placement is one visible cell in back-to-front draw order together with the screen position
// of its W×H footprint.
type Placement struct {
	Cell
	ScreenX int
	ScreenY int
	Row     int // isometric draw row, x+y
}

// Sequence sweeps the anti-diagonals of the grid and returns the visible cells in the order they
// must be composited. The horizontal offset advances for every visited pair, visible or not,
// so spacing stays uniform across clipped cells.
func Sequence(g *Grid, geo Geometry, screenW, screenH int) []Placement {
	size := g.Size()
	step := geo.sideStep()
	drawX := (screenW - geo.TileWidth) / 2
	drawY := (screenH - geo.GridHeight(size)) / 2

	out := make([]Placement, 0, size*size)
	for z := 0; z <= 2*size-2; z++ {
		tileDrawX := drawX
		tileX, tileY := z, 0
		for tileY <= z {
			if g.Visible(tileX, tileY) {
				out = append(out, Placement{
					Cell:    Cell{X: tileX, Y: tileY},
					ScreenX: tileDrawX,
					ScreenY: drawY,
					Row:     z,
				})
			}
			tileDrawX += step * 2
			tileX--
			tileY++
		}
		// Stagger the next diagonal.
		drawX -= step
		drawY += geo.TileHeight / 2
	}
	return out
}

// Diagonals lists the in-bounds cells of each draw row in sweep order, ignoring visibility.
func Diagonals(size int) [][]Cell {
	rows := make([][]Cell, 0, 2*size-1)
	for z := 0; z <= 2*size-2; z++ {
		var row []Cell
		for tileX, tileY := z, 0; tileY <= z; tileX, tileY = tileX-1, tileY+1 {
			c := Cell{X: tileX, Y: tileY}
			if c.InBounds(size) {
				row = append(row, c)
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// ImageOrigin returns where an image of imgW×imgH must be drawn so that its bottom edge and
// horizontal centre line up with the placement's tile footprint.
func (p Placement) ImageOrigin(imgW, imgH int, geo Geometry) (int, int) {
	extraWidth := (imgW - geo.TileWidth) / 2
	extraHeight := imgH - geo.TileHeight
	return p.ScreenX - extraWidth, p.ScreenY - extraHeight
}
