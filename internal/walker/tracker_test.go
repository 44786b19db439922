package walker

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestFirstRevisit(t *testing.T) {
	pos, ok := FirstRevisit(MustParse("R8, R4, R4, R8"), zerolog.Nop()).Result()
	if !ok {
		t.Fatal("want revisit")
	}
	if pos != (Position{4, 0}) || pos.Manhattan() != 4 {
		t.Fatalf("want (4,0) distance 4 got %v distance %d", pos, pos.Manhattan())
	}
}

// (4,0) lies inside the first jump, and the fourth instruction would land on
// (4,4). The revisit is the crossing, found mid-jump.
func TestFirstRevisitUnitSteps(t *testing.T) {
	tr := NewTracker(zerolog.Nop())
	route := MustParse("R8, R4, R4, R8")
	for i, in := range route[:3] {
		if tr.Apply(in) {
			t.Fatalf("instruction %d found %v too early", i, tr.Position())
		}
	}
	if !tr.Apply(route[3]) {
		t.Fatal("want revisit on last instruction")
	}
	if got, _ := tr.Result(); got != (Position{4, 0}) {
		t.Fatalf("want crossing (4,0) got %v", got)
	}
	if tr.State() != Found {
		t.Fatalf("want found got %v", tr.State())
	}
}

func TestFirstRevisitOriginNotSeeded(t *testing.T) {
	pos, ok := FirstRevisit(MustParse("R2, R2, R2, R2"), zerolog.Nop()).Result()
	if ok {
		t.Fatalf("return to origin is not a revisit, got %v", pos)
	}

	pos, ok = FirstRevisit(MustParse("R2, R2, R2, R2, R1"), zerolog.Nop()).Result()
	if !ok || pos != (Position{1, 0}) {
		t.Fatalf("want (1,0) got %v %v", pos, ok)
	}
}

func TestFirstRevisitNotFound(t *testing.T) {
	tr := NewTracker(zerolog.Nop())
	for _, in := range MustParse("R2, L3, R5") {
		tr.Apply(in)
	}
	if _, ok := tr.Result(); ok {
		t.Fatal("want no revisit")
	}
	if tr.State() != Running {
		t.Fatalf("want running got %v", tr.State())
	}
	if tr.Position() != (Position{7, 3}) {
		t.Fatalf("final want (7,3) got %v", tr.Position())
	}
}

func TestTrackerStopsAfterFound(t *testing.T) {
	tr := NewTracker(zerolog.Nop())
	for _, in := range MustParse("R8, R4, R4, R8, L100, R100") {
		tr.Apply(in)
	}
	if tr.Position() != (Position{4, 0}) {
		t.Fatalf("walk continued past revisit to %v", tr.Position())
	}

	tr = FirstRevisit(MustParse("R8, R4, R4, R8, L100, R100"), zerolog.Nop())
	if tr.State() != Found || tr.Position() != (Position{4, 0}) {
		t.Fatalf("FirstRevisit ended %v at %v", tr.State(), tr.Position())
	}
}

func TestVisited(t *testing.T) {
	v := NewVisited()
	p := Position{3, -2}
	if v.Has(p) {
		t.Fatal("empty set has point")
	}
	v.Add(p)
	v.Add(p)
	if !v.Has(p) || v.Len() != 1 {
		t.Fatalf("want one point got %d", v.Len())
	}
}
