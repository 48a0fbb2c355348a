package drawing

import (
	"image/color"
	"math"

	"golang.org/x/image/colornames"

	"sketchpad/internal/config"
)

type Tool int

const (
	ToolPen Tool = iota
	ToolEraser
)

func (t Tool) String() string {
	switch t {
	case ToolPen:
		return "pen"
	case ToolEraser:
		return "eraser"
	default:
		return "unknown"
	}
}

// Params are the brush settings read on every committed segment. Changes
// only affect segments drawn afterwards.
type Params struct {
	color color.NRGBA
	size  int
	tool  Tool
}

func NewParams() *Params {
	return &Params{
		color: opaque(colornames.Black),
		size:  config.DefaultBrushSize,
		tool:  ToolPen,
	}
}

func (p *Params) Color() color.NRGBA { return p.color }

// SetColor keeps only the RGB part of c; brush colors are always opaque.
func (p *Params) SetColor(c color.Color) {
	if c == nil {
		return
	}
	p.color = opaque(c)
}

func (p *Params) Size() int { return p.size }

func (p *Params) SetSize(n int) {
	p.size = ClampSize(n)
}

// SetSizeValue coerces a slider value to a whole brush size.
func (p *Params) SetSizeValue(v float64) {
	if math.IsNaN(v) {
		return
	}
	p.SetSize(int(math.Round(math.Max(math.Min(v, config.MaxBrushSize), config.MinBrushSize))))
}

func (p *Params) Tool() Tool { return p.tool }

func (p *Params) SetTool(t Tool) { p.tool = t }

// ClampSize bounds n to the allowed brush sizes.
func ClampSize(n int) int {
	if n < config.MinBrushSize {
		return config.MinBrushSize
	}
	if n > config.MaxBrushSize {
		return config.MaxBrushSize
	}
	return n
}

func opaque(c color.Color) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = 0xff
	return n
}
