// internal/ui/indicator.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/text/message"

	"go-farm/internal/app"
	"go-farm/internal/config"
	"go-farm/internal/system"
	"go-farm/pkg/render"
)

// drawStorageIndicator рисует строку склада: имя, количество и кнопки Buy/Sell.
func drawStorageIndicator(screen *ebiten.Image, printer *message.Printer, iv app.IndicatorView) {
	half := iv.H * 0.5

	render.Rect(screen, iv.X, iv.Y, iv.W, half, render.ScaleColor(iv.Item.Color(), config.IndicatorShadeFactor))
	render.Label(screen, iv.Item.Name(), iv.X+5, iv.Y+(half-config.FontSize)/2, config.TextLightColor)

	render.Rect(screen, iv.X+iv.W, iv.Y, config.QuantityBoxWidth, half, config.QuantityBoxColor)
	render.Label(screen, printer.Sprintf("%d", iv.Quantity), iv.X+iv.W+5, iv.Y+(half-config.FontSize)/2, config.TextLightColor)

	targeted := system.ShopNone
	if iv.Hovered {
		targeted = system.ShopActionAt(iv.MouseX, iv.MouseY, iv.W, iv.H)
	}
	for _, action := range []system.ShopAction{system.ShopBuy, system.ShopSell} {
		bx, by, bw, bh := system.ShopButtonRect(action, iv.W, iv.H)
		NewButton(iv.X+bx, iv.Y+by, bw, bh, action.String()).Draw(screen, targeted == action)
	}
}
