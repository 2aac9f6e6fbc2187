package knot

import "fmt"

// Dir is one of the four directional traversal states at a stroke
// midpoint: front/back picks which end of the stroke the lane is nearer,
// left/right picks which side of the stroke's axis it runs on. Exactly
// four ports exist per midpoint, one per Dir.
type Dir int

const (
	FrontLeft Dir = iota
	FrontRight
	BackLeft
	BackRight
)

func (d Dir) String() string {
	switch d {
	case FrontLeft:
		return "FrontLeft"
	case FrontRight:
		return "FrontRight"
	case BackLeft:
		return "BackLeft"
	case BackRight:
		return "BackRight"
	}
	return fmt.Sprintf("Dir(%d)", int(d))
}

// IsFront reports whether d is one of the front lanes.
func (d Dir) IsFront() bool {
	return d == FrontLeft || d == FrontRight
}

// IsLeft reports whether d is one of the left lanes.
func (d Dir) IsLeft() bool {
	return d == FrontLeft || d == BackLeft
}

// Bounce swaps front and back, keeping the side: the path reflects back
// the way it came. Its own inverse.
func (d Dir) Bounce() Dir {
	switch d {
	case FrontLeft:
		return BackLeft
	case FrontRight:
		return BackRight
	case BackRight:
		return FrontRight
	case BackLeft:
		return FrontLeft
	}
	panic("knot: Bounce on invalid direction " + d.String())
}

// Cross swaps both axes, moving to the diametrically opposite port: the
// path passes straight through the crossing. Its own inverse.
func (d Dir) Cross() Dir {
	switch d {
	case FrontLeft:
		return BackRight
	case FrontRight:
		return BackLeft
	case BackRight:
		return FrontLeft
	case BackLeft:
		return FrontRight
	}
	panic("knot: Cross on invalid direction " + d.String())
}

// Glance swaps left and right, keeping the end: the path deflects to the
// other side without advancing through the stroke. Its own inverse.
func (d Dir) Glance() Dir {
	switch d {
	case FrontLeft:
		return FrontRight
	case FrontRight:
		return FrontLeft
	case BackRight:
		return BackLeft
	case BackLeft:
		return BackRight
	}
	panic("knot: Glance on invalid direction " + d.String())
}

// advance applies the direction mapping for the given stroke type,
// turning an entry state into the matching exit state.
func (d Dir) advance(t StrokeType) Dir {
	switch t {
	case Bounce:
		return d.Bounce()
	case Cross:
		return d.Cross()
	case Glance:
		return d.Glance()
	}
	panic("knot: advance on invalid stroke type " + t.String())
}
