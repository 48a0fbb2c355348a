package ui

import (
	"fmt"
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"golang.org/x/image/colornames"

	"sketchpad/internal/config"
	"sketchpad/internal/drawing"
)

var quickColors = []color.Color{
	colornames.Black,
	colornames.Red,
	colornames.Green,
	colornames.Blue,
	colornames.Yellow,
	colornames.Orange,
	colornames.Purple,
	colornames.Saddlebrown,
}

// --- Color swatch ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
	rect     *canvas.Rectangle
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) SetColor(c color.Color) {
	s.Color = c
	if s.rect != nil {
		s.rect.FillColor = c
		s.rect.Refresh()
	}
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	s.rect = canvas.NewRectangle(s.Color)
	s.rect.SetMinSize(fyne.NewSize(28, 28))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(s.rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// controlPanel edits the shared drawing params. It never touches the
// surface's input handlers.
type controlPanel struct {
	params  *drawing.Params
	surface *SurfaceWidget
	window  fyne.Window

	current   *colorSwatch
	swatches  []*colorSwatch
	slider    *widget.Slider
	sizeLabel *widget.Label
	clear     *widget.Button
	tools     *widget.Toolbar
	status    *widget.Label
}

// NewControlPanel builds the color, size, tool and clear controls for the
// surface. win parents the color picker dialog.
func NewControlPanel(surface *SurfaceWidget, win fyne.Window) fyne.CanvasObject {
	return newControlPanel(surface, win).layout()
}

func newControlPanel(surface *SurfaceWidget, win fyne.Window) *controlPanel {
	c := &controlPanel{
		params:  surface.Pad().Params(),
		surface: surface,
		window:  win,
	}

	c.current = newColorSwatch(c.params.Color(), func(color.Color) { c.pickColor() })
	for _, qc := range quickColors {
		c.swatches = append(c.swatches, newColorSwatch(qc, c.setColor))
	}

	c.sizeLabel = widget.NewLabel(strconv.Itoa(c.params.Size()))
	c.slider = widget.NewSlider(config.MinBrushSize, config.MaxBrushSize)
	c.slider.Step = 1
	c.slider.SetValue(float64(c.params.Size()))
	c.slider.OnChanged = c.setSize

	c.clear = widget.NewButtonWithIcon("Clear", theme.DeleteIcon(), surface.Clear)

	c.tools = widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), func() { c.setTool(drawing.ToolPen) }),
		widget.NewToolbarAction(theme.ContentClearIcon(), func() { c.setTool(drawing.ToolEraser) }),
	)

	c.status = widget.NewLabel("")
	surface.Pad().OnStateChange = func(drawing.State) { c.updateStatus() }
	c.updateStatus()
	return c
}

func (c *controlPanel) layout() fyne.CanvasObject {
	colorBox := container.NewHBox()
	for _, s := range c.swatches {
		colorBox.Add(s)
	}
	sliderBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(180, 35)), c.slider)

	return container.NewHBox(
		widget.NewLabel("Tool:"),
		c.tools,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		c.current,
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderBox,
		c.sizeLabel,
		widget.NewSeparator(),
		c.clear,
		layout.NewSpacer(),
		c.status,
	)
}

func (c *controlPanel) pickColor() {
	if c.window == nil {
		return
	}
	picker := dialog.NewColorPicker("Brush color", "Choose any RGB color", c.setColor, c.window)
	picker.Advanced = true
	picker.SetColor(c.params.Color())
	picker.Show()
}

func (c *controlPanel) setColor(col color.Color) {
	c.params.SetColor(col)
	c.current.SetColor(c.params.Color())
	if c.params.Tool() == drawing.ToolEraser {
		c.setTool(drawing.ToolPen)
	}
}

func (c *controlPanel) setSize(v float64) {
	c.params.SetSizeValue(v)
	c.sizeLabel.SetText(strconv.Itoa(c.params.Size()))
	c.updateStatus()
}

func (c *controlPanel) setTool(t drawing.Tool) {
	c.params.SetTool(t)
	c.updateStatus()
}

func (c *controlPanel) updateStatus() {
	c.status.SetText(fmt.Sprintf("%s | %s %dpx", c.surface.Pad().State(), c.params.Tool(), c.params.Size()))
}
