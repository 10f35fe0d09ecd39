// internal/ui/renderer.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"go-farm/internal/app"
	"go-farm/internal/config"
	"go-farm/pkg/render"
)

// Renderer рисует снимок игры. Порядок слоёв: деньги и склад, грядки,
// селекторы, летящий урожай поверх всего.
type Renderer struct {
	printer     *message.Printer
	PauseButton *PauseButton
}

func NewRenderer() *Renderer {
	pause := NewPauseButton(config.PauseButtonX, config.PauseButtonY, config.PauseButtonSize,
		config.PauseIconColor, config.PlayIconColor)
	return &Renderer{
		printer:     message.NewPrinter(language.English),
		PauseButton: pause,
	}
}

func (r *Renderer) Draw(screen *ebiten.Image, v app.View) {
	screen.Fill(config.BackgroundColor)

	render.Label(screen, r.printer.Sprintf("$ %d", v.Money), config.HUDOffsetX, config.HUDOffsetY, config.TextLightColor)
	for _, iv := range v.Indicators {
		drawStorageIndicator(screen, r.printer, iv)
	}
	for _, pv := range v.Plots {
		drawPlot(screen, pv)
	}
	for _, sv := range v.Selectors {
		drawSelector(screen, sv)
	}
	for _, ev := range v.Effects {
		drawEffect(screen, ev)
	}
	r.PauseButton.Draw(screen, false)
}

// DrawPauseOverlay затемняет экран и пишет PAUSED.
func (r *Renderer) DrawPauseOverlay(screen *ebiten.Image) {
	render.Rect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PauseOverlayColor)
	render.LabelCentered(screen, "PAUSED", 0, 0, config.ScreenWidth, config.ScreenHeight, config.TextLightColor)
	r.PauseButton.Draw(screen, true)
}
