package walker

// Heading is one of the four cardinal directions, in clockwise order.
type Heading int

const (
	North Heading = iota
	East
	South
	West
)

const headingCount = 4

var headingVectors = [headingCount]Position{
	North: {0, 1},
	East:  {1, 0},
	South: {0, -1},
	West:  {-1, 0},
}

var headingNames = [headingCount]string{"N", "E", "S", "W"}

// Turn rotates the heading 90 degrees; the result stays in [0,4).
func (h Heading) Turn(t Turn) Heading {
	if t == Right {
		return (h + 1) % headingCount
	}
	return (h + headingCount - 1) % headingCount
}

// Vector is the unit step for the heading.
func (h Heading) Vector() Position {
	return headingVectors[h]
}

func (h Heading) String() string {
	return headingNames[h]
}
