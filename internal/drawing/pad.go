package drawing

import (
	"log"

	"sketchpad/internal/raster"
)

// Pad turns pointer and touch input into segments on a raster surface.
//
// Its handlers are plain methods and are never rebound: they read the
// shared *Params at the moment each segment is committed. Every handler
// returns true when it consumed the event, meaning the caller should keep
// the platform from scrolling or otherwise acting on it. A Pad without a
// surface ignores everything.
type Pad struct {
	surface *raster.Surface
	params  *Params
	session Session

	// OnChange is called after the surface pixels changed.
	OnChange func()
	// OnStateChange is called when the session moves between Idle and Drawing.
	OnStateChange func(State)
	// Debug logs every gesture.
	Debug bool
}

func NewPad(surface *raster.Surface, params *Params) *Pad {
	if params == nil {
		params = NewParams()
	}
	return &Pad{surface: surface, params: params}
}

func (p *Pad) Params() *Params { return p.params }

func (p *Pad) Surface() *raster.Surface { return p.surface }

func (p *Pad) State() State { return p.session.State() }

func (p *Pad) PointerDown(pt raster.Point) bool {
	if p.surface == nil {
		return false
	}
	was := p.session.State()
	p.session.Begin(pt)
	if p.Debug {
		log.Printf("[PAD] gesture %s started at (%.1f, %.1f)", p.session.ID(), pt.X, pt.Y)
	}
	if was != Drawing {
		p.stateChanged()
	}
	return true
}

func (p *Pad) PointerMove(pt raster.Point) bool {
	if p.surface == nil {
		return false
	}
	from, ok := p.session.Advance(pt)
	if !ok {
		return true
	}
	p.paint(from, pt)
	return true
}

func (p *Pad) PointerUp() bool { return p.end("up") }

func (p *Pad) PointerLeave() bool { return p.end("leave") }

func (p *Pad) PointerCancel() bool { return p.end("cancel") }

// TouchStart begins a path at the first touch. rect is the surface's
// on-screen box in the same client coordinates as the touches.
func (p *Pad) TouchStart(touches []Touch, rect Rect) bool {
	if p.surface == nil {
		return false
	}
	pt, ok := TouchPoint(touches, rect)
	if !ok {
		return true
	}
	return p.PointerDown(rect.ToSurface(pt, p.surface.Bounds()))
}

func (p *Pad) TouchMove(touches []Touch, rect Rect) bool {
	if p.surface == nil {
		return false
	}
	pt, ok := TouchPoint(touches, rect)
	if !ok {
		return true
	}
	return p.PointerMove(rect.ToSurface(pt, p.surface.Bounds()))
}

func (p *Pad) TouchEnd() bool { return p.end("touch end") }

func (p *Pad) TouchCancel() bool { return p.end("touch cancel") }

// Clear wipes the surface. Params and the session are left alone, so a
// gesture in progress keeps drawing on the empty surface.
func (p *Pad) Clear() {
	if p.surface == nil {
		return
	}
	p.surface.Clear()
	log.Println("[PAD] Surface cleared")
	p.changed()
}

func (p *Pad) end(reason string) bool {
	if p.surface == nil {
		return false
	}
	if !p.session.End() {
		return true
	}
	if p.Debug {
		log.Printf("[PAD] gesture %s ended by %s after %d segments", p.session.ID(), reason, p.session.Segments())
	}
	p.stateChanged()
	return true
}

func (p *Pad) paint(from, to raster.Point) {
	width := float32(p.params.Size())
	switch p.params.Tool() {
	case ToolEraser:
		p.surface.EraseSegment(from, to, width)
	default:
		p.surface.StrokeSegment(from, to, p.params.Color(), width)
	}
	p.changed()
}

func (p *Pad) changed() {
	if p.OnChange != nil {
		p.OnChange()
	}
}

func (p *Pad) stateChanged() {
	if p.OnStateChange != nil {
		p.OnStateChange(p.session.State())
	}
}
