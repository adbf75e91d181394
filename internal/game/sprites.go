package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/deploy-menu/internal/deploy"
)

// SpriteSet supplies the images the compositor layers for each cell.
type SpriteSet interface {
	Tile(factionType int, selected bool) *ebiten.Image
	Unit(u *deploy.Unit, highlighted bool) *ebiten.Image
	Building(b *deploy.Building, selected bool) *ebiten.Image
}

// factionTints maps faction type to its floor tile colour.
var factionTints = map[int]color.RGBA{
	1: {R: 150, G: 60, B: 55, A: 255},  // red
	2: {R: 60, G: 95, B: 160, A: 255},  // blue
	3: {R: 70, G: 130, B: 70, A: 255},  // green
	0: {R: 110, G: 110, B: 105, A: 255}, // neutral
}

var (
	selectCol    = color.RGBA{R: 255, G: 220, B: 90, A: 255}
	outlineCol   = color.RGBA{R: 25, G: 25, B: 25, A: 255}
	highlightCol = color.RGBA{R: 255, G: 245, B: 170, A: 255}
)

type tileKey struct {
	faction  int
	selected bool
}

type unitKey struct {
	faction, kind int
	highlighted   bool
}

type buildingKey struct {
	name     string
	selected bool
}

// ProceduralSprites draws every sprite with vector shapes and caches the results.
// Images are created lazily, on the first frame that needs them.
type ProceduralSprites struct {
	geo       deploy.Geometry
	white     *ebiten.Image
	tiles     map[tileKey]*ebiten.Image
	units     map[unitKey]*ebiten.Image
	buildings map[buildingKey]*ebiten.Image
}

// NewProceduralSprites sizes sprites for geo.
func NewProceduralSprites(geo deploy.Geometry) *ProceduralSprites {
	return &ProceduralSprites{
		geo:       geo,
		tiles:     map[tileKey]*ebiten.Image{},
		units:     map[unitKey]*ebiten.Image{},
		buildings: map[buildingKey]*ebiten.Image{},
	}
}

func (ps *ProceduralSprites) whitePixel() *ebiten.Image {
	if ps.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		ps.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return ps.white
}

// fillPolygon fills a convex polygon by fanning triangles from its first point.
func (ps *ProceduralSprites) fillPolygon(dst *ebiten.Image, pts [][2]float32, clr color.RGBA) {
	r := float32(clr.R) / 255
	g := float32(clr.G) / 255
	b := float32(clr.B) / 255
	a := float32(clr.A) / 255
	vs := make([]ebiten.Vertex, len(pts))
	for i, p := range pts {
		vs[i] = ebiten.Vertex{
			DstX: p[0], DstY: p[1],
			SrcX: 1, SrcY: 1,
			ColorR: r * a, ColorG: g * a, ColorB: b * a, ColorA: a,
		}
	}
	var is []uint16
	for i := 1; i+1 < len(pts); i++ {
		is = append(is, 0, uint16(i), uint16(i+1))
	}
	dst.DrawTriangles(vs, is, ps.whitePixel(), nil)
}

func strokePolygon(dst *ebiten.Image, pts [][2]float32, width float32, clr color.RGBA) {
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		vector.StrokeLine(dst, a[0], a[1], b[0], b[1], width, clr, true)
	}
}

// hexFootprint is the outline of a W×H isometric tile with slanted sides inset by S.
func (ps *ProceduralSprites) hexFootprint(ox, oy float32) [][2]float32 {
	w := float32(ps.geo.TileWidth)
	h := float32(ps.geo.TileHeight)
	s := float32(ps.geo.TileSideOffset)
	return [][2]float32{
		{ox + s, oy}, {ox + w - s, oy}, {ox + w, oy + h/2},
		{ox + w - s, oy + h}, {ox + s, oy + h}, {ox, oy + h/2},
	}
}

func brighten(c color.RGBA, amt uint8) color.RGBA {
	add := func(v uint8) uint8 {
		if int(v)+int(amt) > 255 {
			return 255
		}
		return v + amt
	}
	return color.RGBA{R: add(c.R), G: add(c.G), B: add(c.B), A: c.A}
}

// Tile returns the floor tile for a faction, outlined when selected.
func (ps *ProceduralSprites) Tile(factionType int, selected bool) *ebiten.Image {
	k := tileKey{factionType, selected}
	if img, ok := ps.tiles[k]; ok {
		return img
	}
	tint, ok := factionTints[factionType]
	if !ok {
		tint = factionTints[0]
	}
	img := ebiten.NewImage(ps.geo.TileWidth, ps.geo.TileHeight)
	pts := ps.hexFootprint(0, 0)
	if selected {
		tint = brighten(tint, 50)
	}
	ps.fillPolygon(img, pts, tint)
	if selected {
		strokePolygon(img, pts, 3, selectCol)
	} else {
		strokePolygon(img, pts, 1, outlineCol)
	}
	ps.tiles[k] = img
	return img
}

// Unit returns a standing figure labelled with the unit kind glyph.
func (ps *ProceduralSprites) Unit(u *deploy.Unit, highlighted bool) *ebiten.Image {
	k := unitKey{u.FactionSlot, u.Slot, highlighted}
	if img, ok := ps.units[k]; ok {
		return img
	}
	w := ps.geo.TileWidth / 2
	h := ps.geo.TileHeight * 3 / 2
	img := ebiten.NewImage(w, h)

	body, ok := factionTints[u.FactionSlot]
	if !ok {
		body = factionTints[0]
	}
	if highlighted {
		body = brighten(body, 70)
	}
	fw, fh := float32(w), float32(h)
	// Torso and head.
	vector.FillRect(img, fw*0.2, fh*0.35, fw*0.6, fh*0.6, body, false)
	vector.FillCircle(img, fw/2, fh*0.22, fw*0.2, body, true)
	if highlighted {
		vector.StrokeRect(img, fw*0.2, fh*0.35, fw*0.6, fh*0.6, 2, highlightCol, false)
		vector.StrokeCircle(img, fw/2, fh*0.22, fw*0.2, 2, highlightCol, true)
	}
	glyph := unitGlyphs[u.Slot%deploy.UnitKinds]
	gb := text.BoundString(basicfont.Face7x13, glyph)
	text.Draw(img, glyph, basicfont.Face7x13, (w-gb.Dx())/2, int(fh*0.35)+gb.Dy()+4, outlineCol)

	ps.units[k] = img
	return img
}

// Building returns a block with a pitched roof and its name underneath.
func (ps *ProceduralSprites) Building(b *deploy.Building, selected bool) *ebiten.Image {
	k := buildingKey{b.Name, selected}
	if img, ok := ps.buildings[k]; ok {
		return img
	}
	w := ps.geo.TileWidth
	h := ps.geo.TileHeight * 2
	img := ebiten.NewImage(w, h)
	fw, fh := float32(w), float32(h)

	wall := color.RGBA{R: 140, G: 120, B: 95, A: 255}
	roof := color.RGBA{R: 95, G: 50, B: 40, A: 255}
	if selected {
		wall = brighten(wall, 50)
		roof = brighten(roof, 50)
	}
	vector.FillRect(img, fw*0.2, fh*0.4, fw*0.6, fh*0.5, wall, false)
	ps.fillPolygon(img, [][2]float32{{fw * 0.1, fh * 0.4}, {fw / 2, fh * 0.1}, {fw * 0.9, fh * 0.4}}, roof)
	if selected {
		vector.StrokeRect(img, fw*0.2, fh*0.4, fw*0.6, fh*0.5, 2, selectCol, false)
	}
	nb := text.BoundString(basicfont.Face7x13, b.Name)
	text.Draw(img, b.Name, basicfont.Face7x13, (w-nb.Dx())/2, int(fh*0.8), outlineCol)

	ps.buildings[k] = img
	return img
}
