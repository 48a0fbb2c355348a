package config

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

const (
	SurfaceWidth  = 800
	SurfaceHeight = 600

	MinBrushSize     = 1
	MaxBrushSize     = 50
	DefaultBrushSize = 5
	DefaultColor     = "#000000"

	WindowTitle  = "Sketchpad"
	WindowWidth  = 860
	WindowHeight = 720

	SurfaceBorderWidth = 1
)

// Config holds the startup options given on the command line.
type Config struct {
	Color color.NRGBA
	Size  int
	Debug bool
}

var ErrBadColor = errors.New("invalid hex color")

// Load parses command line flags (without the program name).
func Load(args []string) (Config, error) {
	fs := flag.NewFlagSet("sketchpad", flag.ContinueOnError)
	hex := fs.String("color", DefaultColor, "initial brush color as #rrggbb")
	size := fs.Int("size", DefaultBrushSize, "initial brush size in pixels (1-50)")
	debug := fs.Bool("debug", false, "log every drawing event")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	c, err := ParseHexColor(*hex)
	if err != nil {
		return Config{}, fmt.Errorf("flag -color: %w", err)
	}
	return Config{Color: c, Size: *size, Debug: *debug}, nil
}

// ParseHexColor accepts #rgb and #rrggbb, with or without the leading '#'.
// The result is always opaque.
func ParseHexColor(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
