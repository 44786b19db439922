package walker

// Visited holds every position occupied so far

type Visited struct {
	seen map[Position]struct{}
}

func NewVisited() *Visited {
	return &Visited{seen: make(map[Position]struct{})}
}

func (v *Visited) Has(p Position) bool {
	_, ok := v.seen[p]
	return ok
}

func (v *Visited) Add(p Position) {
	v.seen[p] = struct{}{}
}

func (v *Visited) Len() int {
	return len(v.seen)
}
