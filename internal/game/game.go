package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"

	"github.com/Garsondee/deploy-menu/internal/config"
	"github.com/Garsondee/deploy-menu/internal/deploy"
)

// previewScale upscales the selected-cell preview in the HUD.
const previewScale = 1.5

// moveKeys maps arrow keys to cursor directions.
var moveKeys = []struct {
	key ebiten.Key
	dir deploy.Direction
}{
	{ebiten.KeyArrowLeft, deploy.Left},
	{ebiten.KeyArrowRight, deploy.Right},
	{ebiten.KeyArrowUp, deploy.Up},
	{ebiten.KeyArrowDown, deploy.Down},
}

// Game is the interactive deployment menu. It implements ebiten.Game.
type Game struct {
	width      int // full window width, grid plus log panel
	height     int
	menuWidth  int
	session    *deploy.Session
	compositor *Compositor
	events     *EventLog
	log        logrus.FieldLogger
	showHUD    bool
	done       bool
}

// New builds the menu for the configured region.
func New(cfg *config.Config, log logrus.FieldLogger) *Game {
	region := &Region{
		Army:    &Army{Type: cfg.FactionType},
		Storage: cfg.Storage,
	}
	deployed := append([]int(nil), cfg.Deployed...)
	g := &Game{
		width:      cfg.ScreenWidth + logPanelWidth,
		height:     cfg.ScreenHeight,
		menuWidth:  cfg.ScreenWidth,
		compositor: NewCompositor(NewProceduralSprites(cfg.Geometry), nil),
		events:     NewEventLog(),
		log:        log,
		showHUD:    true,
	}
	g.session = deploy.NewSession(region, deployed,
		deploy.WithScreenSize(cfg.ScreenWidth, cfg.ScreenHeight),
		deploy.WithGeometry(cfg.Geometry),
		deploy.WithLastOption(cfg.LastOption),
		deploy.WithLogger(log),
	)
	g.events.Addf(EventInfo, "%d units available", g.session.Menu().Grid().UnitCount())
	return g
}

// Session exposes the deployment session, e.g. to report the final counts.
func (g *Game) Session() *deploy.Session { return g.session }

// Update handles input. Escape ends the game loop.
func (g *Game) Update() error {
	if g.done {
		return ebiten.Termination
	}
	g.handleInput()
	return nil
}

func (g *Game) handleInput() {
	for _, mk := range moveKeys {
		if inpututil.IsKeyJustPressed(mk.key) {
			g.move(mk.dir)
		}
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		g.deploySelected()
	case inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		g.withdrawSelected()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.copySummary()
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		g.showHUD = !g.showHUD
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.done = true
	}
}

func (g *Game) move(d deploy.Direction) {
	if !g.session.Menu().Move(d) {
		g.events.Addf(EventReject, "cannot move %s", d)
	}
}

func (g *Game) deploySelected() {
	u, ok := g.session.DeploySelected()
	if !ok {
		g.events.Add(EventReject, "nothing to deploy here")
		return
	}
	g.events.Addf(EventDeploy, "deployed %s", u.Name)
	g.log.WithFields(logrus.Fields{
		"unit":  u.Name,
		"total": g.session.TotalDeployed(),
	}).Info("unit deployed")
}

func (g *Game) withdrawSelected() {
	if !g.session.Withdraw() {
		g.events.Add(EventReject, "nothing to withdraw here")
		return
	}
	g.events.Add(EventInfo, "withdrew one unit")
}

func (g *Game) copySummary() {
	if err := copySummary(g.session.Summary()); err != nil {
		g.log.WithError(err).Warn("clipboard copy failed")
		g.events.Add(EventReject, "clipboard unavailable")
		return
	}
	g.events.Add(EventInfo, "summary copied")
}

// Draw composites the grid, the HUD and the log panel.
func (g *Game) Draw(screen *ebiten.Image) {
	m := g.session.Menu()
	g.compositor.DrawInto(screen, m)
	g.events.Draw(screen, g.menuWidth, g.height)
	if !g.showHUD {
		return
	}
	g.drawHUD(screen, m)
}

func (g *Game) drawHUD(screen *ebiten.Image, m *deploy.Menu) {
	vector.FillRect(screen, 8, 8, 260, 150, color.RGBA{R: 0, G: 0, B: 0, A: 150}, false)

	preview := g.compositor.DrawSelectedTile(m)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(previewScale, previewScale)
	op.GeoM.Translate(16, 16)
	screen.DrawImage(preview, op)
	preview.Deallocate()

	sel := m.SelectedCell()
	label := "empty"
	if u := m.SelectedUnit(); u != nil {
		f, k, _ := deploy.SlotOf(m.HexOption())
		label = fmt.Sprintf("%s (%d left)", u.Name, m.Quota().Remaining(f, k))
	} else if t := m.SelectedTile(); t.IsBuilding() {
		label = t.Building.Name
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("cell (%d,%d) #%d", sel.X, sel.Y, m.HexOption()), 130, 18)
	ebitenutil.DebugPrintAt(screen, label, 130, 34)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("deployed: %d", g.session.TotalDeployed()), 130, 50)
	ebitenutil.DebugPrintAt(screen, "arrows move  enter deploy\nbksp withdraw  c copy\nh hud  esc done", 16, 110)
}

// Layout returns the fixed window size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// WindowSize returns the window size the game expects.
func (g *Game) WindowSize() (int, int) {
	return g.width, g.height
}
