package deploy

import (
	"fmt"
	"strings"
)

// Session owns the already-deployed counts across menu instances. Deploying a unit bumps the
// count for its slot and rebuilds the menu, restoring the cursor from the previous menu.
type Session struct {
	region   Region
	deployed []int
	opts     []Option
	menu     *Menu
}

// NewSession builds the first menu. deployed is owned by the session from here on.
func NewSession(region Region, deployed []int, opts ...Option) *Session {
	s := &Session{region: region, deployed: deployed, opts: opts}
	s.menu = NewMenu(region, deployed, opts...)
	return s
}

// Menu returns the current menu.
func (s *Session) Menu() *Menu { return s.menu }

// Deployed returns the per-slot deployed counts.
func (s *Session) Deployed() []int { return s.deployed }

// DeploySelected commits the unit under the cursor. It returns the unit and true when a unit
// was deployed; the menu is rebuilt so exhausted slots disappear.
func (s *Session) DeploySelected() (*Unit, bool) {
	u := s.menu.SelectedUnit()
	if u == nil {
		return nil, false
	}
	idx := s.menu.HexOption()
	factionSlot, unitSlot, ok := SlotOf(idx)
	if !ok || !s.menu.CanAddUnit(factionSlot, unitSlot) {
		return nil, false
	}
	s.deployed[idx]++
	s.rebuild()
	return u, true
}

// Withdraw returns one deployed unit of the selected slot to the region.
func (s *Session) Withdraw() bool {
	idx := s.menu.HexOption()
	if _, _, ok := SlotOf(idx); !ok || s.deployed[idx] == 0 {
		return false
	}
	s.deployed[idx]--
	s.rebuild()
	return true
}

func (s *Session) rebuild() {
	opts := append(s.opts[:len(s.opts):len(s.opts)], WithLastOption(s.menu.HexOption()))
	s.menu = NewMenu(s.region, s.deployed, opts...)
}

// TotalDeployed sums the deployed counts.
func (s *Session) TotalDeployed() int {
	n := 0
	for _, d := range s.deployed {
		n += d
	}
	return n
}

// Summary lists every slot with deployed units, one per line.
//
//	faction 1 kind 3: 2 deployed, 1 remaining
func (s *Session) Summary() string {
	var sb strings.Builder
	storage := s.region.UnitStorage()
	for slot := 0; slot < SlotCount; slot++ {
		if s.deployed[slot] == 0 {
			continue
		}
		fmt.Fprintf(&sb, "faction %d kind %d: %d deployed, %d remaining\n",
			slot/UnitKinds+1, slot%UnitKinds, s.deployed[slot], storage[slot]-s.deployed[slot])
	}
	if sb.Len() == 0 {
		return "no units deployed\n"
	}
	return sb.String()
}
