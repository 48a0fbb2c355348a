package drawing

import (
	"image"

	"sketchpad/internal/raster"
)

// Touch is one contact point in window (client) coordinates.
type Touch struct {
	ClientX, ClientY float32
}

// Rect is the on-screen box of the drawing surface in client coordinates.
type Rect struct {
	Left, Top     float32
	Width, Height float32
}

// TouchPoint converts the first touch into coordinates relative to rect.
func TouchPoint(touches []Touch, rect Rect) (raster.Point, bool) {
	if len(touches) == 0 {
		return raster.Point{}, false
	}
	t := touches[0]
	return raster.Point{X: t.ClientX - rect.Left, Y: t.ClientY - rect.Top}, true
}

// ToSurface maps a point relative to the displayed box into surface pixels.
// A box without a size is treated as 1:1.
func (r Rect) ToSurface(p raster.Point, bounds image.Rectangle) raster.Point {
	if r.Width <= 0 || r.Height <= 0 {
		return p
	}
	return raster.Point{
		X: p.X * float32(bounds.Dx()) / r.Width,
		Y: p.Y * float32(bounds.Dy()) / r.Height,
	}
}
