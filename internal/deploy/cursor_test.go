package deploy

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func menuAt(c Cell, opts ...HarnessOption) *TestMenu {
	opts = append(opts, WithMenuOptions(WithLastOption(c.Index(GridSize))))
	return NewTestMenu(opts...)
}

func TestRawStep(t *testing.T) {
	cases := []struct {
		from Cell
		dir  Direction
		want Cell
	}{
		{Cell{2, 2}, Right, Cell{2, 3}}, // even diff: y+1
		{Cell{1, 2}, Right, Cell{0, 2}}, // odd diff: x-1
		{Cell{2, 2}, Left, Cell{3, 2}},  // even diff: x+1
		{Cell{1, 2}, Left, Cell{1, 1}},  // odd diff: y-1
		{Cell{3, 1}, Right, Cell{3, 2}}, // |x-y| is used, not x-y
		{Cell{1, 1}, Down, Cell{2, 2}},
		{Cell{1, 1}, Up, Cell{0, 0}},
	}
	for _, tc := range cases {
		if got := rawStep(tc.from, tc.dir); got != tc.want {
			t.Fatalf("rawStep(%v,%s)=%v, want %v", tc.from, tc.dir, got, tc.want)
		}
	}
}

func TestCorrect(t *testing.T) {
	cases := []struct {
		raw  Cell
		dir  Direction
		want Cell
	}{
		{Cell{1, 5}, Down, Cell{1, 4}},
		{Cell{5, 3}, Down, Cell{4, 3}},
		{Cell{2, -1}, Up, Cell{2, 0}},
		{Cell{-1, 1}, Up, Cell{0, 1}},
		{Cell{0, 0}, Up, Cell{0, 0}}, // x == y is left alone
		{Cell{2, 5}, Right, Cell{1, 4}},
		{Cell{0, 1}, Right, Cell{1, 2}},
		{Cell{5, 2}, Left, Cell{4, 1}},
		{Cell{1, 0}, Left, Cell{2, 1}},
	}
	for _, tc := range cases {
		if got := correct(tc.raw, tc.dir, GridSize); got != tc.want {
			t.Fatalf("correct(%v,%s)=%v, want %v", tc.raw, tc.dir, got, tc.want)
		}
	}
}

func TestMove_CenterRight(t *testing.T) {
	tm := menuAt(Cell{2, 2})
	assert.True(t, tm.MoveSelectHorizontal(true))
	assert.Equal(t, Cell{2, 3}, tm.SelectedCell())
	assert.Equal(t, 1, tm.Events().Count("cursor", "move"))
}

func TestMove_EdgeDownCorrects(t *testing.T) {
	tm := menuAt(Cell{0, 4})
	assert.True(t, tm.MoveSelectVertical(true))
	assert.Equal(t, Cell{1, 4}, tm.SelectedCell())
	assert.Equal(t, 1, tm.Events().Count("cursor", "move_corrected"))
}

func TestMove_UpAlongLowerLeftEdge(t *testing.T) {
	tm := menuAt(Cell{3, 0})
	assert.True(t, tm.MoveSelectVertical(false))
	assert.Equal(t, Cell{2, 0}, tm.SelectedCell())
}

func TestMove_RightAlongUpperRightEdge(t *testing.T) {
	tm := menuAt(Cell{2, 4})
	assert.True(t, tm.MoveSelectHorizontal(true))
	assert.Equal(t, Cell{1, 4}, tm.SelectedCell())
}

func TestMove_RejectedLeavesCursor(t *testing.T) {
	cases := []struct {
		from Cell
		dir  Direction
	}{
		{Cell{1, 1}, Up},    // into the clipped top corner
		{Cell{3, 3}, Down},  // into the clipped bottom corner
		{Cell{0, 4}, Right}, // off the right tip
		{Cell{4, 0}, Left},  // off the left tip
		{Cell{4, 2}, Down},  // correction lands on a clipped cell
	}
	for _, tc := range cases {
		tm := menuAt(tc.from)
		if tm.Move(tc.dir) {
			t.Fatalf("move %s from %v should be rejected, got %v", tc.dir, tc.from, tm.SelectedCell())
		}
		if tm.SelectedCell() != tc.from {
			t.Fatalf("rejected move %s changed cursor %v -> %v", tc.dir, tc.from, tm.SelectedCell())
		}
		if tm.Events().Count("cursor", "move_rejected") != 1 {
			t.Fatalf("rejected move %s from %v not logged", tc.dir, tc.from)
		}
	}
}

func TestMove_NeverLeavesVisibleRegion(t *testing.T) {
	tm := NewTestMenu()
	g := tm.Grid()
	for x := 0; x < GridSize; x++ {
		for y := 0; y < GridSize; y++ {
			if !g.Visible(x, y) {
				continue
			}
			for _, d := range []Direction{Left, Right, Up, Down} {
				nav := NewNavigator(g, Cell{x, y}.Index(GridSize))
				moved := nav.Move(d)
				got := nav.Selected()
				if !g.Visible(got.X, got.Y) {
					t.Fatalf("move %s from (%d,%d) landed on hidden %v", d, x, y, got)
				}
				if !moved && got != (Cell{x, y}) {
					t.Fatalf("rejected move %s from (%d,%d) changed cursor to %v", d, x, y, got)
				}
			}
		}
	}
}

func TestMove_RandomWalkKeepsIndexConsistent(t *testing.T) {
	rng := rand.New(rand.NewSource(7)) // #nosec G404 -- test only
	tm := NewTestMenu()
	dirs := []Direction{Left, Right, Up, Down}
	for i := 0; i < 2000; i++ {
		tm.Move(dirs[rng.Intn(len(dirs))])
		c := tm.SelectedCell()
		if !tm.Grid().Visible(c.X, c.Y) {
			t.Fatalf("step %d: cursor on hidden cell %v", i, c)
		}
		if tm.HexOption() != GridSize*c.X+c.Y {
			t.Fatalf("step %d: index %d does not encode %v", i, tm.HexOption(), c)
		}
	}
}

func TestNavigator_InvalidLastOptionFallsBackToCenter(t *testing.T) {
	for _, idx := range []int{0, 24, -3, 99} {
		tm := NewTestMenu(WithMenuOptions(WithLastOption(idx)))
		assert.Equal(t, Cell{2, 2}, tm.SelectedCell(), "last option %d", idx)
	}
}

func TestNavigator_DirectionHelpers(t *testing.T) {
	tm := NewTestMenu()
	nav := NewNavigator(tm.Grid(), 12)
	assert.True(t, nav.MoveHorizontal(false))
	assert.Equal(t, Cell{3, 2}, nav.Selected())
	assert.True(t, nav.MoveVertical(false))
	assert.Equal(t, Cell{2, 1}, nav.Selected())
	assert.Equal(t, 11, nav.LinearIndex())
}

func TestParseDirection(t *testing.T) {
	d, ok := ParseDirection('r')
	assert.True(t, ok)
	assert.Equal(t, Right, d)
	_, ok = ParseDirection('x')
	assert.False(t, ok)
	assert.True(t, Left.Horizontal())
	assert.False(t, Down.Horizontal())
}
