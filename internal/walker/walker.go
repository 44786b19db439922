package walker

import "github.com/rs/zerolog"

// Walker follows instructions by jumping the whole step count at once.
type Walker struct {
	heading Heading
	pos     Position
	log     zerolog.Logger
}

// NewWalker starts at the origin facing North.
func NewWalker(log zerolog.Logger) *Walker {
	return &Walker{heading: North, log: log}
}

func (w *Walker) Apply(in Instruction) {
	w.heading = w.heading.Turn(in.Turn)
	w.pos = w.pos.Add(w.heading.Vector().Scale(in.Steps))
	w.log.Debug().
		Stringer("instruction", in).
		Stringer("heading", w.heading).
		Stringer("pos", w.pos).
		Msg("jump")
}

func (w *Walker) Heading() Heading {
	return w.heading
}

func (w *Walker) Position() Position {
	return w.pos
}

// Walk applies the route in order and returns the final position.
func Walk(route []Instruction, log zerolog.Logger) Position {
	w := NewWalker(log)
	for _, in := range route {
		w.Apply(in)
	}
	return w.Position()
}
