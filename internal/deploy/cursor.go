package deploy

// Direction is a cursor movement request.
type Direction uint8

const (
	Left Direction = iota
	Right
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// ParseDirection maps a key script rune (L, R, U, D, either case) to a direction.
func ParseDirection(r rune) (Direction, bool) {
	switch r {
	case 'L', 'l':
		return Left, true
	case 'R', 'r':
		return Right, true
	case 'U', 'u':
		return Up, true
	case 'D', 'd':
		return Down, true
	}
	return 0, false
}

// Horizontal reports whether d is Left or Right.
func (d Direction) Horizontal() bool { return d == Left || d == Right }

// MoveOutcome classifies the result of a cursor move.
type MoveOutcome uint8

const (
	MoveCommitted MoveOutcome = iota // raw step landed on a visible cell
	MoveCorrected                    // raw step left the region, edge correction re-entered it
	MoveRejected                     // cursor unchanged
)

func (o MoveOutcome) String() string {
	switch o {
	case MoveCommitted:
		return "committed"
	case MoveCorrected:
		return "corrected"
	default:
		return "rejected"
	}
}

// rawStep applies the parity-keyed horizontal step or the diagonal vertical step.
// Horizontal neighbours alternate between the two axes depending on |x-y| so the cursor
// zig-zags along a screen row.
func rawStep(c Cell, d Direction) Cell {
	diff := abs(c.X - c.Y)
	switch d {
	case Right:
		if diff%2 == 1 {
			c.X--
		} else {
			c.Y++
		}
	case Left:
		if diff%2 == 0 {
			c.X++
		} else {
			c.Y--
		}
	case Down:
		c.X++
		c.Y++
	case Up:
		c.X--
		c.Y--
	}
	return c
}

// correct nudges a raw step that left the region back along the region's edge.
func correct(c Cell, d Direction, size int) Cell {
	switch d {
	case Right:
		if c.Y < size {
			c.X++
			c.Y++
		} else {
			c.X--
			c.Y--
		}
	case Left:
		if c.X < size {
			c.X++
			c.Y++
		} else {
			c.X--
			c.Y--
		}
	case Down:
		// Step back on the axis that ran past the far edge.
		if c.X > c.Y {
			c.X--
		} else if c.Y > c.X {
			c.Y--
		}
	case Up:
		// Step back on the axis that ran past zero.
		if c.X > c.Y {
			c.Y++
		} else if c.Y > c.X {
			c.X++
		}
	}
	return c
}

// Navigator owns the selection cursor. It reads the grid only to test visibility.
type Navigator struct {
	grid *Grid
	sel  Cell
}

// NewNavigator places the cursor on the cell encoded by lastOption. An index that does not name
// a visible cell falls back to the grid centre.
func NewNavigator(g *Grid, lastOption int) *Navigator {
	n := &Navigator{grid: g, sel: CellAt(lastOption, g.Size())}
	if lastOption < 0 || !g.Visible(n.sel.X, n.sel.Y) {
		mid := g.Size() / 2
		n.sel = Cell{X: mid, Y: mid}
	}
	return n
}

// Try computes where a move would land without changing the cursor.
func (n *Navigator) Try(d Direction) (Cell, MoveOutcome) {
	next := rawStep(n.sel, d)
	if n.grid.Visible(next.X, next.Y) {
		return next, MoveCommitted
	}
	next = correct(next, d, n.grid.Size())
	if n.grid.Visible(next.X, next.Y) {
		return next, MoveCorrected
	}
	return n.sel, MoveRejected
}

// Move applies d and reports whether the cursor changed cell.
func (n *Navigator) Move(d Direction) bool {
	next, outcome := n.Try(d)
	if outcome == MoveRejected {
		return false
	}
	n.sel = next
	return true
}

// MoveHorizontal moves the cursor one step right or left along the screen row.
func (n *Navigator) MoveHorizontal(right bool) bool {
	if right {
		return n.Move(Right)
	}
	return n.Move(Left)
}

// MoveVertical moves the cursor one step down or up the screen column.
func (n *Navigator) MoveVertical(down bool) bool {
	if down {
		return n.Move(Down)
	}
	return n.Move(Up)
}

// Selected returns the cursor cell.
func (n *Navigator) Selected() Cell { return n.sel }

// LinearIndex encodes the cursor as size*x+y.
func (n *Navigator) LinearIndex() int { return n.sel.Index(n.grid.Size()) }
