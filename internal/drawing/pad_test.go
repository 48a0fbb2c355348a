package drawing

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sketchpad/internal/raster"
)

var (
	red  = color.NRGBA{R: 0xff, A: 0xff}
	blue = color.NRGBA{B: 0xff, A: 0xff}
)

func pt(x, y float32) raster.Point { return raster.Point{X: x, Y: y} }

func isColor(px color.RGBA, c color.NRGBA) bool {
	near := func(a, b uint8) bool {
		d := int(a) - int(b)
		return d > -3 && d < 3
	}
	return near(px.R, c.R) && near(px.G, c.G) && near(px.B, c.B) && px.A > 0xfc
}

func newTestPad() *Pad {
	return NewPad(raster.New(200, 100), nil)
}

func TestPadStrokesBetweenPoints(t *testing.T) {
	p := newTestPad()
	p.Params().SetColor(red)
	p.Params().SetSize(4)

	assert.True(t, p.PointerDown(pt(10, 50)))
	assert.Zero(t, p.Surface().Painted(), "down alone paints nothing")
	p.PointerMove(pt(60, 50))
	p.PointerMove(pt(60, 90))

	s := p.Surface()
	assert.True(t, isColor(s.At(35, 50), red))
	assert.True(t, isColor(s.At(60, 70), red))
	assert.Zero(t, s.At(35, 70).A, "segments connect consecutive points only")
}

func TestPadIgnoresMovesWhileIdle(t *testing.T) {
	p := newTestPad()
	assert.True(t, p.PointerMove(pt(10, 10)), "still consumed")
	p.PointerMove(pt(100, 50))
	assert.Zero(t, p.Surface().Painted(), "before first down")

	p.PointerDown(pt(10, 10))
	p.PointerMove(pt(20, 10))
	p.PointerUp()
	painted := p.Surface().Painted()

	p.PointerMove(pt(150, 80))
	p.PointerMove(pt(190, 90))
	assert.Equal(t, painted, p.Surface().Painted(), "after up")
}

func TestPadEndEvents(t *testing.T) {
	ends := map[string]func(*Pad) bool{
		"up":           (*Pad).PointerUp,
		"leave":        (*Pad).PointerLeave,
		"cancel":       (*Pad).PointerCancel,
		"touch end":    (*Pad).TouchEnd,
		"touch cancel": (*Pad).TouchCancel,
	}
	for name, end := range ends {
		t.Run(name, func(t *testing.T) {
			p := newTestPad()
			var states []State
			p.OnStateChange = func(s State) { states = append(states, s) }

			p.PointerDown(pt(5, 5))
			require.Equal(t, Drawing, p.State())
			assert.True(t, end(p))
			assert.Equal(t, Idle, p.State())
			assert.Equal(t, []State{Drawing, Idle}, states)

			end(p)
			assert.Len(t, states, 2, "ending twice is quiet")
		})
	}
}

func TestPadClear(t *testing.T) {
	p := newTestPad()
	p.Params().SetColor(red)
	p.Params().SetSize(7)
	changes := 0
	p.OnChange = func() { changes++ }

	p.PointerDown(pt(10, 10))
	p.PointerMove(pt(100, 10))
	require.NotZero(t, p.Surface().Painted())

	p.Clear()
	assert.Zero(t, p.Surface().Painted())
	assert.Equal(t, 2, changes)
	assert.Equal(t, Drawing, p.State(), "clear keeps the session")
	assert.Equal(t, red, p.Params().Color())
	assert.Equal(t, 7, p.Params().Size())

	p.PointerMove(pt(100, 60))
	assert.True(t, isColor(p.Surface().At(100, 40), red))
	assert.Zero(t, p.Surface().At(50, 10).A)
}

func TestPadParamChangesAreNotRetroactive(t *testing.T) {
	p := newTestPad()
	p.Params().SetColor(red)
	p.Params().SetSize(4)

	p.PointerDown(pt(10, 20))
	p.PointerMove(pt(90, 20))

	p.Params().SetColor(blue)
	p.Params().SetSize(20)
	assert.Equal(t, Drawing, p.State(), "gesture survives param changes")
	p.PointerMove(pt(90, 80))

	s := p.Surface()
	assert.True(t, isColor(s.At(50, 20), red), "old segment keeps its color")
	assert.Zero(t, s.At(50, 26).A, "old segment keeps its width")
	assert.True(t, isColor(s.At(90, 60), blue))
	assert.True(t, isColor(s.At(82, 60), blue), "new segment uses the new width")
}

func TestPadEraser(t *testing.T) {
	p := newTestPad()
	p.Params().SetColor(red)
	p.Params().SetSize(10)
	p.PointerDown(pt(10, 50))
	p.PointerMove(pt(190, 50))
	p.PointerUp()

	p.Params().SetTool(ToolEraser)
	p.PointerDown(pt(100, 10))
	p.PointerMove(pt(100, 90))
	p.PointerUp()

	assert.LessOrEqual(t, p.Surface().At(100, 50).A, uint8(2))
	assert.True(t, isColor(p.Surface().At(50, 50), red))
}

func TestPadTouch(t *testing.T) {
	p := NewPad(raster.New(800, 600), nil)
	p.Params().SetColor(red)
	rect := Rect{Left: 40, Top: 100, Width: 800, Height: 600}

	assert.True(t, p.TouchStart([]Touch{{ClientX: 140, ClientY: 200}, {ClientX: 500, ClientY: 500}}, rect))
	p.TouchMove([]Touch{{ClientX: 240, ClientY: 200}}, rect)
	p.TouchEnd()

	s := p.Surface()
	assert.True(t, isColor(s.At(150, 100), red), "stroke from (100,100) to (200,100)")
	assert.Zero(t, s.At(460, 400).A, "second touch ignored")
	assert.Equal(t, Idle, p.State())
}

func TestPadTouchEmptyList(t *testing.T) {
	p := newTestPad()
	assert.True(t, p.TouchStart(nil, Rect{}))
	assert.Equal(t, Idle, p.State())

	p.PointerDown(pt(10, 10))
	p.TouchMove(nil, Rect{})
	assert.Zero(t, p.Surface().Painted())
}

func TestPadWithoutSurface(t *testing.T) {
	p := NewPad(nil, nil)
	assert.NotPanics(t, func() {
		assert.False(t, p.PointerDown(pt(1, 1)))
		assert.False(t, p.PointerMove(pt(2, 2)))
		assert.False(t, p.PointerUp())
		assert.False(t, p.TouchStart([]Touch{{ClientX: 1, ClientY: 1}}, Rect{}))
		assert.False(t, p.TouchMove([]Touch{{ClientX: 1, ClientY: 1}}, Rect{}))
		assert.False(t, p.TouchCancel())
		p.Clear()
	})
	assert.Equal(t, Idle, p.State())
}

func TestTouchPoint(t *testing.T) {
	rect := Rect{Left: 12.5, Top: 30, Width: 800, Height: 600}
	got, ok := TouchPoint([]Touch{{ClientX: 100, ClientY: 90}, {ClientX: 1, ClientY: 1}}, rect)
	require.True(t, ok)
	assert.Equal(t, pt(87.5, 60), got)

	_, ok = TouchPoint(nil, rect)
	assert.False(t, ok)
}

func TestRectToSurface(t *testing.T) {
	bounds := image.Rect(0, 0, 800, 600)
	assert.Equal(t, pt(10, 20), Rect{Width: 800, Height: 600}.ToSurface(pt(10, 20), bounds))
	assert.Equal(t, pt(20, 40), Rect{Width: 400, Height: 300}.ToSurface(pt(10, 20), bounds))
	assert.Equal(t, pt(10, 20), Rect{}.ToSurface(pt(10, 20), bounds))
}
