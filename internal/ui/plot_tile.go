// internal/ui/plot_tile.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"go-farm/internal/app"
	"go-farm/internal/component"
	"go-farm/internal/config"
	"go-farm/pkg/render"
)

func drawPlot(screen *ebiten.Image, pv app.PlotView) {
	switch pv.State {
	case component.PlotEmpty:
		clr := config.PlotEmptyColor
		if pv.Hovered {
			clr = config.PlotEmptyHoverColor
		}
		render.Rect(screen, pv.X, pv.Y, pv.W, pv.H, clr)
	case component.PlotGrowing:
		base := pv.Crop.Color()
		render.Rect(screen, pv.X, pv.Y, pv.W, pv.H, base)
		// Заполнение растёт снизу вверх.
		filled := pv.H * pv.Progress
		render.Rect(screen, pv.X, pv.Y+pv.H-filled, pv.W, filled, render.ScaleColor(base, config.HighlightFactor))
		render.Label(screen, pv.Crop.Name(), pv.X+5, pv.Y+5, config.TextDarkColor)
	case component.PlotGrown:
		render.Rect(screen, pv.X, pv.Y, pv.W, pv.H, render.ScaleColor(pv.Crop.Color(), config.HighlightFactor))
		render.Label(screen, pv.Crop.Name(), pv.X+5, pv.Y+5, config.TextDarkColor)
		render.Label(screen, "100%", pv.X+5, pv.Y+5+config.FontSize+2, config.TextDarkColor)
	}
	render.RectLines(screen, pv.X, pv.Y, pv.W, pv.H, 1, config.OutlineColor)
}

func drawSelector(screen *ebiten.Image, sv app.SelectorView) {
	clr := sv.Crop.Color()
	if sv.Hovered || sv.Selected {
		clr = render.ScaleColor(clr, config.HighlightFactor)
		render.Label(screen, sv.Crop.Name(), sv.X+sv.W+10, sv.Y+(sv.H-config.FontSize)/2, config.TextLightColor)
	}
	render.Rect(screen, sv.X, sv.Y, sv.W, sv.H, clr)
	render.RectLines(screen, sv.X, sv.Y, sv.W, sv.H, 1, config.OutlineColor)
}

func drawEffect(screen *ebiten.Image, ev app.EffectView) {
	render.Circle(screen, ev.X, ev.Y, config.EffectRadius, ev.Crop.Color())
}
