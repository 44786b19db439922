package walker

import "github.com/rs/zerolog"

// State of a Tracker walk.
type State int

const (
	Running State = iota
	Found
)

func (s State) String() string {
	if s == Found {
		return "found"
	}
	return "running"
}

// Tracker walks one unit step at a time and stops at the first position
// occupied twice. The origin does not count as visited.
type Tracker struct {
	heading Heading
	pos     Position
	visited *Visited
	state   State
	log     zerolog.Logger
}

func NewTracker(log zerolog.Logger) *Tracker {
	return &Tracker{heading: North, visited: NewVisited(), log: log}
}

// Apply turns and then steps one unit at a time. It reports whether a revisit
// has been found; once found, further instructions are ignored.
func (t *Tracker) Apply(in Instruction) bool {
	if t.state == Found {
		return true
	}
	t.heading = t.heading.Turn(in.Turn)
	step := t.heading.Vector()
	for i := 0; i < in.Steps; i++ {
		t.pos = t.pos.Add(step)
		if t.visited.Has(t.pos) {
			t.state = Found
			t.log.Info().
				Stringer("pos", t.pos).
				Int("distance", t.pos.Manhattan()).
				Int("visited", t.visited.Len()).
				Msg("revisit")
			return true
		}
		t.visited.Add(t.pos)
	}
	t.log.Debug().
		Stringer("instruction", in).
		Stringer("heading", t.heading).
		Stringer("pos", t.pos).
		Msg("walk")
	return false
}

func (t *Tracker) State() State {
	return t.state
}

// Position is where the walker currently stands, the revisit once Found.
func (t *Tracker) Position() Position {
	return t.pos
}

// Result returns the first revisited position, or false if there is none yet.
func (t *Tracker) Result() (Position, bool) {
	if t.state != Found {
		return Position{}, false
	}
	return t.pos, true
}

// FirstRevisit walks the route until some position is entered a second time
// and returns the stopped tracker. Instructions after the revisit are not read.
func FirstRevisit(route []Instruction, log zerolog.Logger) *Tracker {
	t := NewTracker(log)
	for _, in := range route {
		if t.Apply(in) {
			break
		}
	}
	return t
}
