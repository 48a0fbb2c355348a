package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"

	"sketchpad/internal/config"
	"sketchpad/internal/drawing"
	"sketchpad/internal/raster"
)

// NewPad builds the drawing pad for a fresh 800x600 surface using the
// startup options.
func NewPad(cfg config.Config) *drawing.Pad {
	params := drawing.NewParams()
	params.SetColor(cfg.Color)
	params.SetSize(cfg.Size)
	pad := drawing.NewPad(raster.NewDefault(), params)
	pad.Debug = cfg.Debug
	return pad
}

// NewContent lays out the surface centred above the control panel.
func NewContent(pad *drawing.Pad, win fyne.Window) (fyne.CanvasObject, *SurfaceWidget) {
	surface := NewSurfaceWidget(pad)
	panel := NewControlPanel(surface, win)
	return container.NewBorder(nil, panel, nil, nil, container.NewCenter(surface)), surface
}

func RunApp(cfg config.Config) {
	myApp := app.New()
	myWindow := myApp.NewWindow(config.WindowTitle)
	myWindow.Resize(fyne.NewSize(config.WindowWidth, config.WindowHeight))

	pad := NewPad(cfg)
	content, _ := NewContent(pad, myWindow)
	myWindow.SetContent(content)

	log.Printf("[UI] Surface %dx%d, brush %dpx", config.SurfaceWidth, config.SurfaceHeight, pad.Params().Size())
	myWindow.ShowAndRun()
}
