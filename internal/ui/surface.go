package ui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"sketchpad/internal/config"
	"sketchpad/internal/drawing"
	"sketchpad/internal/raster"
)

// SurfaceWidget shows a raster surface and feeds mouse, drag and touch
// input to its Pad.
type SurfaceWidget struct {
	widget.BaseWidget
	pad   *drawing.Pad
	image *canvas.Raster
	// touching is set between TouchDown and TouchUp/TouchCancel; drags in
	// that window are finger moves.
	touching bool
}

var _ fyne.Widget = (*SurfaceWidget)(nil)
var _ fyne.Draggable = (*SurfaceWidget)(nil)
var _ desktop.Mouseable = (*SurfaceWidget)(nil)
var _ desktop.Hoverable = (*SurfaceWidget)(nil)
var _ mobile.Touchable = (*SurfaceWidget)(nil)

func NewSurfaceWidget(pad *drawing.Pad) *SurfaceWidget {
	s := &SurfaceWidget{pad: pad}
	s.image = canvas.NewRaster(func(w, h int) image.Image {
		if r := pad.Surface(); r != nil {
			return r.Snapshot()
		}
		return image.NewRGBA(image.Rect(0, 0, w, h))
	})
	pad.OnChange = s.image.Refresh
	s.ExtendBaseWidget(s)
	return s
}

func (s *SurfaceWidget) Pad() *drawing.Pad { return s.pad }

// Clear wipes the drawing; used by the control panel.
func (s *SurfaceWidget) Clear() { s.pad.Clear() }

func (s *SurfaceWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		s.pad.PointerDown(s.toSurface(e.Position))
	}
}

func (s *SurfaceWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		s.pad.PointerUp()
	}
}

// Dragged is where painting moves arrive; consuming the drag also keeps an
// enclosing scroll container from panning.
func (s *SurfaceWidget) Dragged(e *fyne.DragEvent) {
	if s.touching {
		s.pad.TouchMove([]drawing.Touch{{ClientX: e.AbsolutePosition.X, ClientY: e.AbsolutePosition.Y}}, s.screenRect())
		return
	}
	s.pad.PointerMove(s.toSurface(e.Position))
}

func (s *SurfaceWidget) DragEnd() {
	if s.touching {
		s.touching = false
		s.pad.TouchEnd()
		return
	}
	s.pad.PointerUp()
}

func (s *SurfaceWidget) MouseIn(*desktop.MouseEvent)    {}
func (s *SurfaceWidget) MouseMoved(*desktop.MouseEvent) {}

func (s *SurfaceWidget) MouseOut() {
	s.pad.PointerLeave()
}

func (s *SurfaceWidget) TouchDown(e *mobile.TouchEvent) {
	s.touching = true
	s.pad.TouchStart([]drawing.Touch{touchOf(e)}, s.screenRect())
}

func (s *SurfaceWidget) TouchUp(*mobile.TouchEvent) {
	s.touching = false
	s.pad.TouchEnd()
}

func (s *SurfaceWidget) TouchCancel(*mobile.TouchEvent) {
	s.touching = false
	s.pad.TouchCancel()
}

func touchOf(e *mobile.TouchEvent) drawing.Touch {
	return drawing.Touch{ClientX: e.AbsolutePosition.X, ClientY: e.AbsolutePosition.Y}
}

// screenRect is the widget's box in canvas coordinates, the same space as
// PointEvent.AbsolutePosition.
func (s *SurfaceWidget) screenRect() drawing.Rect {
	var origin fyne.Position
	if app := fyne.CurrentApp(); app != nil && app.Driver() != nil {
		origin = app.Driver().AbsolutePositionForObject(s)
	}
	size := s.Size()
	return drawing.Rect{Left: origin.X, Top: origin.Y, Width: size.Width, Height: size.Height}
}

func (s *SurfaceWidget) toSurface(pos fyne.Position) raster.Point {
	size := s.Size()
	r := drawing.Rect{Width: size.Width, Height: size.Height}
	p := raster.Point{X: pos.X, Y: pos.Y}
	if sf := s.pad.Surface(); sf != nil {
		return r.ToSurface(p, sf.Bounds())
	}
	return p
}

func (s *SurfaceWidget) CreateRenderer() fyne.WidgetRenderer {
	background := canvas.NewRectangle(color.White)
	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = theme.Color(theme.ColorNameForeground)
	border.StrokeWidth = config.SurfaceBorderWidth
	return &surfaceRenderer{
		surface:    s,
		background: background,
		border:     border,
		objects:    []fyne.CanvasObject{background, s.image, border},
	}
}

type surfaceRenderer struct {
	surface    *SurfaceWidget
	background *canvas.Rectangle
	border     *canvas.Rectangle
	objects    []fyne.CanvasObject
}

func (r *surfaceRenderer) Layout(size fyne.Size) {
	for _, o := range r.objects {
		o.Move(fyne.NewPos(0, 0))
		o.Resize(size)
	}
}

func (r *surfaceRenderer) MinSize() fyne.Size {
	return fyne.NewSize(config.SurfaceWidth, config.SurfaceHeight)
}

func (r *surfaceRenderer) Refresh() {
	r.border.StrokeColor = theme.Color(theme.ColorNameForeground)
	r.border.Refresh()
	r.surface.image.Refresh()
}

func (r *surfaceRenderer) Objects() []fyne.CanvasObject { return r.objects }

func (r *surfaceRenderer) Destroy() {}
