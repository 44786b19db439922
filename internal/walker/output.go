package walker

import "fmt"

// DistanceLine formats the final position as the signed sum of its
// coordinates followed by the absolute value of that sum.
func DistanceLine(p Position) string {
	return fmt.Sprintf("%d %d", p.Sum(), abs(p.Sum()))
}

// RevisitLine formats a finished Tracker: the revisit's Manhattan distance and
// the position, or the final position when nothing was entered twice.
func RevisitLine(t *Tracker) string {
	pos, ok := t.Result()
	if !ok {
		return fmt.Sprintf("no position visited twice, final %v", t.Position())
	}
	return fmt.Sprintf("%d %v", pos.Manhattan(), pos)
}
