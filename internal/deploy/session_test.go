package deploy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(storage map[int]int, opts ...Option) (*Session, *StubFaction) {
	f := &StubFaction{Type: 2, Placeholders: map[int]bool{}}
	region := &StubRegion{Faction: f, Storage: make([]int, SlotCount)}
	for slot, n := range storage {
		region.Storage[slot] = n
	}
	return NewSession(region, make([]int, SlotCount), opts...), f
}

func TestSession_DeployUntilExhausted(t *testing.T) {
	s, _ := newTestSession(map[int]int{12: 2})

	u, ok := s.DeploySelected()
	require.True(t, ok)
	assert.Equal(t, "F2-U4", u.Name)
	assert.Equal(t, 1, s.Deployed()[12])
	require.NotNil(t, s.Menu().SelectedUnit(), "one unit left in the slot")

	_, ok = s.DeploySelected()
	require.True(t, ok)
	assert.Nil(t, s.Menu().SelectedUnit(), "slot exhausted after rebuild")

	_, ok = s.DeploySelected()
	assert.False(t, ok)
	assert.Equal(t, 2, s.TotalDeployed())
}

func TestSession_RebuildKeepsCursor(t *testing.T) {
	s, _ := newTestSession(map[int]int{14: 1})
	for _, d := range []Direction{Right, Right, Down} {
		require.True(t, s.Menu().Move(d))
	}
	require.Equal(t, Cell{2, 4}, s.Menu().SelectedCell())

	_, ok := s.DeploySelected()
	require.True(t, ok)
	assert.Equal(t, Cell{2, 4}, s.Menu().SelectedCell())
}

func TestSession_RebuildKeepsOptions(t *testing.T) {
	s, _ := newTestSession(map[int]int{12: 3}, WithScreenSize(640, 480), WithBuilding(0, 2, "Fort"))
	_, ok := s.DeploySelected()
	require.True(t, ok)
	w, h := s.Menu().ScreenSize()
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
	assert.True(t, s.Menu().Grid().Tile(0, 2).IsBuilding())
}

func TestSession_Withdraw(t *testing.T) {
	s, _ := newTestSession(map[int]int{12: 1})
	assert.False(t, s.Withdraw(), "nothing deployed yet")

	_, ok := s.DeploySelected()
	require.True(t, ok)
	require.Nil(t, s.Menu().SelectedUnit())

	assert.True(t, s.Withdraw())
	assert.Equal(t, 0, s.Deployed()[12])
	assert.NotNil(t, s.Menu().SelectedUnit())
}

func TestSession_Summary(t *testing.T) {
	s, _ := newTestSession(map[int]int{12: 3})
	assert.Equal(t, "no units deployed\n", s.Summary())

	s.DeploySelected()
	assert.Equal(t, "faction 2 kind 4: 1 deployed, 2 remaining\n", s.Summary())
}
