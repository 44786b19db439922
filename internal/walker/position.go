package walker

import "fmt"

// Position is a point on the integer grid.
type Position struct {
	X, Y int
}

func (p Position) Add(o Position) Position {
	return Position{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Position) Scale(n int) Position {
	return Position{X: p.X * n, Y: p.Y * n}
}

// Sum is the signed X+Y.
func (p Position) Sum() int {
	return p.X + p.Y
}

// Manhattan returns |X| + |Y|.
func (p Position) Manhattan() int {
	return abs(p.X) + abs(p.Y)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
