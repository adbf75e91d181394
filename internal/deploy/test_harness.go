package deploy

import "fmt"

// StubFaction is a scripted Faction used by tests and the headless report. It records every
// unit request so callers can check population never double-allocates.
type StubFaction struct {
	Type         int
	Placeholders map[int]bool // linear slot indices whose units are placeholders
	Requests     []Cell
}

// FactionType returns the configured faction type.
func (f *StubFaction) FactionType() int { return f.Type }

// NewUnit returns a unit labelled with its faction and kind.
func (f *StubFaction) NewUnit(factionSlot, unitSlot, x, y int) *Unit {
	f.Requests = append(f.Requests, Cell{X: x, Y: y})
	slot := (factionSlot-1)*UnitKinds + unitSlot
	return &Unit{
		FactionSlot: factionSlot,
		Slot:        unitSlot,
		X:           x,
		Y:           y,
		Name:        fmt.Sprintf("F%d-U%d", factionSlot, unitSlot),
		Placeholder: f.Placeholders[slot],
	}
}

// StubRegion is a Region with a fixed unit storage.
type StubRegion struct {
	Faction Faction
	Storage []int
}

// Controller returns the region's faction.
func (r *StubRegion) Controller() Faction { return r.Faction }

// UnitStorage returns the available counts.
func (r *StubRegion) UnitStorage() []int { return r.Storage }

// TestMenu is a menu harness with stub collaborators.
type TestMenu struct {
	*Menu
	Faction  *StubFaction
	Region   *StubRegion
	Deployed []int
}

// HarnessOption configures a TestMenu before the menu is built.
type HarnessOption func(*harness)

type harness struct {
	available []int
	deployed  []int
	faction   *StubFaction
	opts      []Option
}

// WithAvailable sets the region storage for one slot.
func WithAvailable(slot, n int) HarnessOption {
	return func(h *harness) { h.available[slot] = n }
}

// WithAllAvailable sets every slot of region storage to n.
func WithAllAvailable(n int) HarnessOption {
	return func(h *harness) {
		for i := range h.available {
			h.available[i] = n
		}
	}
}

// WithDeployed sets the already-deployed count for one slot.
func WithDeployed(slot, n int) HarnessOption {
	return func(h *harness) { h.deployed[slot] = n }
}

// WithPlaceholder marks the unit of slot as a placeholder.
func WithPlaceholder(slot int) HarnessOption {
	return func(h *harness) { h.faction.Placeholders[slot] = true }
}

// WithMenuOptions forwards options to NewMenu.
func WithMenuOptions(opts ...Option) HarnessOption {
	return func(h *harness) { h.opts = append(h.opts, opts...) }
}

// NewTestMenu builds a menu over an empty region unless options add storage.
func NewTestMenu(opts ...HarnessOption) *TestMenu {
	h := &harness{
		available: make([]int, SlotCount),
		deployed:  make([]int, SlotCount),
		faction:   &StubFaction{Type: 1, Placeholders: map[int]bool{}},
	}
	for _, o := range opts {
		o(h)
	}
	region := &StubRegion{Faction: h.faction, Storage: h.available}
	return &TestMenu{
		Menu:     NewMenu(region, h.deployed, h.opts...),
		Faction:  h.faction,
		Region:   region,
		Deployed: h.deployed,
	}
}
