// internal/ui/button.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"go-farm/internal/config"
	"go-farm/pkg/render"
)

// Button — прямоугольная кнопка с подписью. Клики обрабатывает ShopSystem,
// здесь только отрисовка.
type Button struct {
	X, Y, W, H float64
	Text       string
	TextColor  color.RGBA
	BgColor    color.RGBA
	HoverColor color.RGBA
}

// NewButton создает новую кнопку.
func NewButton(x, y, w, h float64, text string) *Button {
	return &Button{
		X: x, Y: y, W: w, H: h,
		Text:       text,
		TextColor:  config.TextLightColor,
		BgColor:    config.ShopButtonColor,
		HoverColor: render.ScaleColor(config.ShopButtonColor, config.ShopHoverFactor),
	}
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image, hovered bool) {
	bg := b.BgColor
	if hovered {
		bg = b.HoverColor
	}
	render.Rect(screen, b.X, b.Y, b.W, b.H, bg)
	render.RectLines(screen, b.X, b.Y, b.W, b.H, 1, config.OutlineColor)
	render.Label(screen, b.Text, b.X+5, b.Y+(b.H-config.FontSize)/2, b.TextColor)
}
