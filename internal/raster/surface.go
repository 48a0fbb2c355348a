package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"sync"

	"golang.org/x/image/vector"

	"sketchpad/internal/config"
)

// capSteps is the number of line pieces used for each half circle of a
// round cap.
const capSteps = 16

// Point is a position in surface pixels. The origin is the top-left corner.
type Point struct{ X, Y float32 }

// Surface is a fixed-size pixel buffer. Segments are committed as soon as
// they are stroked; there is no history.
type Surface struct {
	mu   sync.RWMutex
	img  *image.RGBA
	rast *vector.Rasterizer
}

func New(width, height int) *Surface {
	return &Surface{
		img:  image.NewRGBA(image.Rect(0, 0, width, height)),
		rast: vector.NewRasterizer(width, height),
	}
}

// NewDefault returns an 800x600 surface.
func NewDefault() *Surface {
	return New(config.SurfaceWidth, config.SurfaceHeight)
}

func (s *Surface) Bounds() image.Rectangle {
	return s.img.Bounds()
}

// StrokeSegment paints a line from one point to another with round caps,
// blending c over what is already there.
func (s *Surface) StrokeSegment(from, to Point, c color.Color, width float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	area, ok := s.capsule(from, to, width)
	if !ok {
		return
	}
	s.rast.DrawOp = draw.Over
	s.rast.Draw(s.img, area, image.NewUniform(c), image.Point{})
}

// EraseSegment clears the pixels covered by the same shape StrokeSegment
// would paint. Pixels outside the shape are left alone.
func (s *Surface) EraseSegment(from, to Point, width float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	area, ok := s.capsule(from, to, width)
	if !ok {
		return
	}
	// The rasterizer's Src op writes every pixel of the target rectangle,
	// so the coverage goes through a mask: masked Src keeps dst*(1-m).
	mask := image.NewAlpha(image.Rect(0, 0, area.Dx(), area.Dy()))
	s.rast.DrawOp = draw.Src
	s.rast.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	draw.DrawMask(s.img, area, image.Transparent, image.Point{}, mask, image.Point{}, draw.Src)
}

// Clear makes every pixel transparent.
func (s *Surface) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	draw.Draw(s.img, s.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

func (s *Surface) At(x, y int) color.RGBA {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.img.RGBAAt(x, y)
}

// Painted counts the pixels that are not fully transparent.
func (s *Surface) Painted() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for i := 3; i < len(s.img.Pix); i += 4 {
		if s.img.Pix[i] != 0 {
			n++
		}
	}
	return n
}

// Snapshot returns a copy of the pixels that stays valid after further
// drawing.
func (s *Surface) Snapshot() *image.RGBA {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := image.NewRGBA(s.img.Bounds())
	copy(out.Pix, s.img.Pix)
	return out
}

// capsule loads the rasterizer with the outline of a thick segment: two
// straight sides joined by half circles around each end point. A zero
// length segment becomes a full circle. The rasterizer only covers the
// returned area, the segment's bounding box clipped to the surface; ok is
// false when nothing of the segment is on the surface.
func (s *Surface) capsule(from, to Point, width float32) (area image.Rectangle, ok bool) {
	r := float64(width) / 2
	if r < 0.5 {
		r = 0.5
	}

	pad := r + 1
	area = image.Rect(
		int(math.Floor(math.Min(float64(from.X), float64(to.X))-pad)),
		int(math.Floor(math.Min(float64(from.Y), float64(to.Y))-pad)),
		int(math.Ceil(math.Max(float64(from.X), float64(to.X))+pad)),
		int(math.Ceil(math.Max(float64(from.Y), float64(to.Y))+pad)),
	).Intersect(s.img.Bounds())
	if area.Empty() {
		return area, false
	}
	s.rast.Reset(area.Dx(), area.Dy())

	dx, dy := float64(to.X-from.X), float64(to.Y-from.Y)
	a := 0.0
	if dx != 0 || dy != 0 {
		a = math.Atan2(dy, dx)
	}

	ox, oy := float32(area.Min.X), float32(area.Min.Y)
	at := func(c Point, theta float64) (float32, float32) {
		return c.X - ox + float32(r*math.Cos(theta)), c.Y - oy + float32(r*math.Sin(theta))
	}

	s.rast.MoveTo(at(from, a+math.Pi/2))
	s.rast.LineTo(at(to, a+math.Pi/2))
	for i := 1; i <= capSteps; i++ {
		s.rast.LineTo(at(to, a+math.Pi/2-math.Pi*float64(i)/capSteps))
	}
	s.rast.LineTo(at(from, a-math.Pi/2))
	for i := 1; i <= capSteps; i++ {
		s.rast.LineTo(at(from, a-math.Pi/2-math.Pi*float64(i)/capSteps))
	}
	s.rast.ClosePath()
	return area, true
}
