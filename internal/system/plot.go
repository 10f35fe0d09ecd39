// internal/system/plot.go
package system

import (
	"go-farm/internal/component"
	"go-farm/internal/defs"
	"go-farm/internal/entity"
	"go-farm/internal/event"
	"go-farm/internal/ledger"
	"go-farm/internal/types"
	"go-farm/internal/utils"
)

// PlotSystem ведёт грядки: посадку по клику и рост по времени.
type PlotSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewPlotSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *PlotSystem {
	return &PlotSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// Manipulate сажает выбранную культуру в пустую грядку под курсором,
// пока кнопка удерживается. Без семян, выбора или пустой грядки ничего не происходит.
func (s *PlotSystem) Manipulate(frame Frame, storage *ledger.Storage) {
	if !frame.Held {
		return
	}
	crop, ok := SelectedCrop(s.ecs)
	if !ok {
		return
	}

	var plotID types.EntityID
	found := false
	for _, id := range entity.SortedIDs(s.ecs.Plots) {
		if IsHovered(s.ecs, id) {
			plotID, found = id, true
			break
		}
	}
	if !found {
		return
	}

	plot := s.ecs.Plots[plotID]
	if plot.State != component.PlotEmpty {
		return
	}
	if !storage.TakeSeed(crop) {
		return
	}
	*plot = component.Plot{State: component.PlotGrowing, Crop: crop}

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.PlotPlanted,
		Data: event.PlotPlantedData{Plot: plotID, Crop: crop},
	})
}

// Update двигает рост на deltaTime. Созревшая грядка остаётся Grown до
// следующего вызова Update, который очищает её и запускает эффект доставки.
func (s *PlotSystem) Update(deltaTime, now float64) {
	type harvest struct {
		plot       types.EntityID
		crop       defs.CropType
		start, end utils.Vec2
	}
	var harvests []harvest

	for _, id := range entity.SortedIDs(s.ecs.Plots) {
		plot := s.ecs.Plots[id]
		switch plot.State {
		case component.PlotEmpty:
		case component.PlotGrowing:
			plot.Progress += deltaTime / plot.Crop.GrowDuration()
			if plot.Progress >= 1.0 {
				*plot = component.Plot{State: component.PlotGrown, Crop: plot.Crop}
				s.eventDispatcher.Dispatch(event.Event{
					Type: event.CropGrown,
					Data: event.CropGrownData{Plot: id, Crop: plot.Crop},
				})
			}
		case component.PlotGrown:
			harvests = append(harvests, harvest{
				plot:  id,
				crop:  plot.Crop,
				start: ResolveCenter(s.ecs, id),
				end:   FindStorageIndicatorPosition(s.ecs, defs.CropOf(plot.Crop)),
			})
			*plot = component.Plot{State: component.PlotEmpty}
		}
	}

	for _, h := range harvests {
		effectID := SpawnDepositEffect(s.ecs, h.crop, h.start, h.end, now)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.CropHarvested,
			Data: event.CropHarvestedData{Plot: h.plot, Effect: effectID, Crop: h.crop},
		})
	}
}
