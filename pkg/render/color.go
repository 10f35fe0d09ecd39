// pkg/render/color.go
package render

import (
	"image/color"
	"math"
)

// ScaleColor осветляет или затемняет цвет, умножая каналы на factor.
// Альфа не меняется, каналы обрезаются до 255.
func ScaleColor(c color.RGBA, factor float64) color.RGBA {
	scale := func(v uint8) uint8 {
		return uint8(math.Min(255, math.Round(float64(v)*factor)))
	}
	return color.RGBA{
		R: scale(c.R),
		G: scale(c.G),
		B: scale(c.B),
		A: c.A,
	}
}
