package theme

import (
	"image/color"
)

// Theme is a named canvas palette.
type Theme struct {
	Name string

	Background color.RGBA // canvas clear color
	Foreground color.RGBA // stroke ink

	// Status bar drawn by the display binding
	StatusBack color.RGBA
	StatusText color.RGBA
}

// Default returns the reference palette: white ink on a black canvas.
func Default() *Theme {
	return &Theme{
		Name:       "midnight",
		Background: color.RGBA{0, 0, 0, 255},
		Foreground: color.RGBA{255, 255, 255, 255},
		StatusBack: color.RGBA{32, 32, 32, 255},
		StatusText: color.RGBA{200, 200, 200, 255},
	}
}
