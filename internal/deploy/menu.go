package deploy

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Menu is the deployment menu shown before combat: a populated grid, its quota table and the
// selection cursor. It is owned by a single goroutine.
type Menu struct {
	width, height int
	geo           Geometry
	controller    Faction
	quota         *QuotaTable
	grid          *Grid
	nav           *Navigator
	log           logrus.FieldLogger
	events        *MenuLog
}

type buildingSpec struct {
	cell Cell
	name string
}

type menuOptions struct {
	width, height int
	geo           Geometry
	lastOption    int
	mask          Mask
	buildings     []buildingSpec
	log           logrus.FieldLogger
}

// Option configures a Menu.
type Option func(*menuOptions)

// WithScreenSize sets the frame size the grid is centred in.
func WithScreenSize(w, h int) Option {
	return func(o *menuOptions) {
		o.width = w
		o.height = h
	}
}

// WithLastOption restores the cursor from a previous menu's LinearIndex.
func WithLastOption(idx int) Option {
	return func(o *menuOptions) { o.lastOption = idx }
}

// WithMask replaces the diamond visibility mask.
func WithMask(m Mask) Option {
	return func(o *menuOptions) { o.mask = m }
}

// WithGeometry overrides the tile sprite metrics.
func WithGeometry(g Geometry) Option {
	return func(o *menuOptions) { o.geo = g }
}

// WithBuilding marks the tile at (x,y) as a structure.
func WithBuilding(x, y int, name string) Option {
	return func(o *menuOptions) {
		o.buildings = append(o.buildings, buildingSpec{cell: Cell{X: x, Y: y}, name: name})
	}
}

// WithLogger sets the logger used for debug events.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *menuOptions) { o.log = l }
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// NewMenu builds the deployment menu for region. alreadyDeployed must hold SlotCount entries.
func NewMenu(region Region, alreadyDeployed []int, opts ...Option) *Menu {
	o := menuOptions{
		width:      1280,
		height:     720,
		geo:        DefaultGeometry,
		lastOption: GridSize*(GridSize/2) + GridSize/2,
		mask:       DiamondMask,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = discardLogger()
	}

	m := &Menu{
		width:      o.width,
		height:     o.height,
		geo:        o.geo,
		controller: region.Controller(),
		quota:      NewQuotaTable(region.UnitStorage(), alreadyDeployed),
		log:        o.log,
		events:     NewMenuLog(),
	}
	m.grid = Populate(GridSize, o.mask, m.quota, m.controller, m.log)
	for _, b := range o.buildings {
		if m.grid.InBounds(b.cell.X, b.cell.Y) {
			m.grid.setBuilding(b.cell.X, b.cell.Y, &Building{Name: b.name})
		}
	}
	for x := 0; x < GridSize; x++ {
		for y := 0; y < GridSize; y++ {
			if u := m.grid.Unit(x, y); u != nil {
				m.events.Add("populate", "unit_placed", Cell{X: x, Y: y},
					fmt.Sprintf("faction=%d slot=%d", u.FactionSlot, u.Slot))
			}
		}
	}
	m.nav = NewNavigator(m.grid, o.lastOption)
	return m
}

// CanAddUnit reports whether another unit of the slot may be deployed.
func (m *Menu) CanAddUnit(factionSlot, unitSlot int) bool {
	return m.quota.CanAdd(factionSlot, unitSlot)
}

// Quota returns the menu's quota table.
func (m *Menu) Quota() *QuotaTable { return m.quota }

// Grid returns the populated grid.
func (m *Menu) Grid() *Grid { return m.grid }

// Controller returns the faction the units were requested from.
func (m *Menu) Controller() Faction { return m.controller }

// Geometry returns the tile metrics used for layout.
func (m *Menu) Geometry() Geometry { return m.geo }

// ScreenSize returns the frame size.
func (m *Menu) ScreenSize() (int, int) { return m.width, m.height }

// Events returns the menu's event log.
func (m *Menu) Events() *MenuLog { return m.events }

// Plan returns the full-frame draw order.
func (m *Menu) Plan() []Placement {
	return Sequence(m.grid, m.geo, m.width, m.height)
}

// Layers returns the compositing recipe for (x,y).
func (m *Menu) Layers(x, y int) Layers {
	return m.grid.Layers(Cell{X: x, Y: y}, m.nav.Selected())
}

// SelectedLayers returns the compositing recipe for the selected cell.
func (m *Menu) SelectedLayers() Layers {
	return m.grid.Layers(m.nav.Selected(), m.nav.Selected())
}

// SelectedCell returns the cursor position.
func (m *Menu) SelectedCell() Cell { return m.nav.Selected() }

// SelectedTile returns the marker under the cursor.
func (m *Menu) SelectedTile() *Tile {
	c := m.nav.Selected()
	return m.grid.Tile(c.X, c.Y)
}

// SelectedUnit returns the unit under the cursor, or nil.
func (m *Menu) SelectedUnit() *Unit {
	c := m.nav.Selected()
	return m.grid.Unit(c.X, c.Y)
}

// HexOption returns the linear selection index, suitable for WithLastOption.
func (m *Menu) HexOption() int { return m.nav.LinearIndex() }

// Move moves the cursor and records the outcome.
func (m *Menu) Move(d Direction) bool {
	from := m.nav.Selected()
	to, outcome := m.nav.Try(d)
	switch outcome {
	case MoveRejected:
		m.events.Add("cursor", "move_rejected", from, d.String())
		m.log.WithFields(logrus.Fields{"x": from.X, "y": from.Y, "dir": d.String()}).Debug("move rejected")
		return false
	case MoveCorrected:
		m.events.Add("cursor", "move_corrected", to, d.String())
	default:
		m.events.Add("cursor", "move", to, d.String())
	}
	return m.nav.Move(d)
}

// MoveSelectHorizontal moves the cursor right or left.
func (m *Menu) MoveSelectHorizontal(right bool) bool {
	if right {
		return m.Move(Right)
	}
	return m.Move(Left)
}

// MoveSelectVertical moves the cursor down or up.
func (m *Menu) MoveSelectVertical(down bool) bool {
	if down {
		return m.Move(Down)
	}
	return m.Move(Up)
}

// Press applies a key script: L, R, U, D. Unknown runes are ignored.
// It returns how many moves committed.
func (m *Menu) Press(script string) int {
	moved := 0
	for _, r := range script {
		d, ok := ParseDirection(r)
		if !ok {
			continue
		}
		if m.Move(d) {
			moved++
		}
	}
	return moved
}
