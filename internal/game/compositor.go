package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/deploy-menu/internal/deploy"
)

// Compositor rasterises a deployment menu: background first, then every visible cell in
// isometric draw order.
type Compositor struct {
	sprites    SpriteSet
	background *ebiten.Image // may be nil
	clearCol   color.Color
}

// NewCompositor draws with sprites over background.
func NewCompositor(sprites SpriteSet, background *ebiten.Image) *Compositor {
	return &Compositor{
		sprites:    sprites,
		background: background,
		clearCol:   color.RGBA{R: 12, G: 14, B: 18, A: 255},
	}
}

// Draw returns a freshly allocated full-frame image of the menu. The caller owns it.
func (c *Compositor) Draw(m *deploy.Menu) *ebiten.Image {
	w, h := m.ScreenSize()
	img := ebiten.NewImage(w, h)
	c.DrawInto(img, m)
	return img
}

// DrawInto renders the full frame onto dst.
func (c *Compositor) DrawInto(dst *ebiten.Image, m *deploy.Menu) {
	if c.background != nil {
		dst.DrawImage(c.background, nil)
	} else {
		dst.Fill(c.clearCol)
	}
	geo := m.Geometry()
	factionType := m.Controller().FactionType()
	for _, p := range m.Plan() {
		l := m.Layers(p.X, p.Y)
		tile := c.sprites.Tile(factionType, l.Selected)
		occ := c.occupantImage(l)
		if occ == nil {
			x, y := p.ImageOrigin(tile.Bounds().Dx(), tile.Bounds().Dy(), geo)
			drawAt(dst, tile, x, y)
			continue
		}
		ob := occ.Bounds()
		cl := deploy.ComposeLayout(ob.Dx(), ob.Dy(), geo)
		x, y := p.ImageOrigin(cl.Width, cl.Height, geo)
		drawAt(dst, tile, x+cl.TileX, y+cl.TileY)
		drawAt(dst, occ, x, y)
	}
}

// DrawTile returns a freshly allocated image of the single cell (x,y).
func (c *Compositor) DrawTile(m *deploy.Menu, x, y int) *ebiten.Image {
	l := m.Layers(x, y)
	tile := c.sprites.Tile(m.Controller().FactionType(), l.Selected)
	occ := c.occupantImage(l)
	if occ == nil {
		tb := tile.Bounds()
		img := ebiten.NewImage(tb.Dx(), tb.Dy())
		img.DrawImage(tile, nil)
		return img
	}
	ob := occ.Bounds()
	cl := deploy.ComposeLayout(ob.Dx(), ob.Dy(), m.Geometry())
	img := ebiten.NewImage(cl.Width, cl.Height)
	drawAt(img, tile, cl.TileX, cl.TileY)
	img.DrawImage(occ, nil)
	return img
}

// DrawSelectedTile returns an image of the cell under the cursor.
func (c *Compositor) DrawSelectedTile(m *deploy.Menu) *ebiten.Image {
	sel := m.SelectedCell()
	return c.DrawTile(m, sel.X, sel.Y)
}

func (c *Compositor) occupantImage(l deploy.Layers) *ebiten.Image {
	switch l.Occupant.Kind {
	case deploy.OccupantBuilding:
		return c.sprites.Building(l.Occupant.Building, l.Selected)
	case deploy.OccupantUnit:
		return c.sprites.Unit(l.Occupant.Unit, l.Highlight)
	default:
		return nil
	}
}

func drawAt(dst, src *ebiten.Image, x, y int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	dst.DrawImage(src, op)
}
