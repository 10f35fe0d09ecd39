// internal/app/view.go
package app

import (
	"go-farm/internal/component"
	"go-farm/internal/defs"
	"go-farm/internal/entity"
	"go-farm/internal/system"
	"go-farm/internal/types"
)

// Rect — абсолютный прямоугольник на экране.
type Rect struct {
	X, Y, W, H float64
}

type PlotView struct {
	Rect
	State    component.PlotState
	Crop     defs.CropType
	Progress float64 // 1 для созревшей грядки
	Hovered  bool
}

type SelectorView struct {
	Rect
	Crop     defs.CropType
	Hovered  bool
	Selected bool
}

type IndicatorView struct {
	Rect
	Item     defs.Item
	Quantity int64
	Hovered  bool
	// Курсор относительно индикатора, если Hovered.
	MouseX, MouseY float64
}

type EffectView struct {
	X, Y float64
	Crop defs.CropType
}

// View — снимок только для чтения, который рисует UI.
type View struct {
	Money      int64
	Plots      []PlotView
	Selectors  []SelectorView
	Indicators []IndicatorView
	Effects    []EffectView
}

// View собирает снимок состояния в порядке создания сущностей.
func (g *Game) View() View {
	ecs := g.ECS
	ledgerSnap := g.Storage.Snapshot()
	v := View{Money: ledgerSnap.Money}

	for _, id := range entity.SortedIDs(ecs.Plots) {
		plot := ecs.Plots[id]
		pv := PlotView{
			Rect:     g.rect(id),
			State:    plot.State,
			Crop:     plot.Crop,
			Progress: plot.Progress,
			Hovered:  system.IsHovered(ecs, id),
		}
		if plot.State == component.PlotGrown {
			pv.Progress = 1
		}
		v.Plots = append(v.Plots, pv)
	}

	for _, id := range entity.SortedIDs(ecs.CropSelectors) {
		sel := ecs.CropSelectors[id]
		v.Selectors = append(v.Selectors, SelectorView{
			Rect:     g.rect(id),
			Crop:     sel.Crop,
			Hovered:  system.IsHovered(ecs, id),
			Selected: sel.Selected,
		})
	}

	for _, id := range entity.SortedIDs(ecs.StorageIndicators) {
		item := ecs.StorageIndicators[id].Item
		iv := IndicatorView{
			Rect:     g.rect(id),
			Item:     item,
			Quantity: ledgerSnap.Quantity(item),
		}
		if hover, ok := ecs.MouseHovers[id]; ok {
			iv.Hovered = true
			iv.MouseX, iv.MouseY = hover.X, hover.Y
		}
		v.Indicators = append(v.Indicators, iv)
	}

	for _, id := range entity.SortedIDs(ecs.DepositEffects) {
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		v.Effects = append(v.Effects, EffectView{X: pos.X, Y: pos.Y, Crop: ecs.DepositEffects[id].Crop})
	}
	return v
}

func (g *Game) rect(id types.EntityID) Rect {
	pos := system.ResolvePosition(g.ECS, id)
	r := Rect{X: pos.X, Y: pos.Y}
	if size, ok := g.ECS.Sizes[id]; ok {
		r.W, r.H = size.W, size.H
	}
	return r
}
