package drawing

import (
	"github.com/google/uuid"

	"sketchpad/internal/raster"
)

type State int

const (
	Idle State = iota
	Drawing
)

func (s State) String() string {
	if s == Drawing {
		return "Drawing"
	}
	return "Idle"
}

// Session tracks one gesture at a time. The zero value is Idle.
type Session struct {
	state    State
	current  raster.Point
	id       string
	segments int
}

// Begin starts a new path at p. Calling it while Drawing restarts the path.
func (s *Session) Begin(p raster.Point) {
	s.state = Drawing
	s.current = p
	s.id = uuid.NewString()
	s.segments = 0
}

// Advance moves the path to p and returns the segment start. ok is false
// when no path is active, in which case nothing must be painted.
func (s *Session) Advance(p raster.Point) (from raster.Point, ok bool) {
	if s.state != Drawing {
		return raster.Point{}, false
	}
	from = s.current
	s.current = p
	s.segments++
	return from, true
}

// End returns to Idle and reports whether a gesture was active.
func (s *Session) End() bool {
	if s.state != Drawing {
		return false
	}
	s.state = Idle
	s.current = raster.Point{}
	return true
}

func (s *Session) State() State { return s.state }

// Current returns the last plotted point of the active path.
func (s *Session) Current() (raster.Point, bool) {
	return s.current, s.state == Drawing
}

// ID identifies the most recent gesture; empty before the first one.
func (s *Session) ID() string { return s.id }

func (s *Session) Segments() int { return s.segments }
