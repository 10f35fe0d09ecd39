// internal/system/selection.go
package system

import (
	"go-farm/internal/defs"
	"go-farm/internal/entity"
	"go-farm/internal/types"
)

// SelectionSystem выбирает культуру по нажатию на селектор.
type SelectionSystem struct {
	ecs *entity.ECS
}

func NewSelectionSystem(ecs *entity.ECS) *SelectionSystem {
	return &SelectionSystem{ecs: ecs}
}

// Update срабатывает только на фронте нажатия. Первый (в порядке создания)
// селектор под курсором становится выбранным, у всех остальных флаг
// сбрасывается безусловно.
func (s *SelectionSystem) Update(frame Frame) {
	if !frame.Pressed {
		return
	}

	ids := entity.SortedIDs(s.ecs.CropSelectors)
	var target types.EntityID
	found := false
	for _, id := range ids {
		if IsHovered(s.ecs, id) {
			target, found = id, true
			break
		}
	}
	if !found {
		return
	}

	for _, id := range ids {
		s.ecs.CropSelectors[id].Selected = id == target
	}
}

// SelectedCrop возвращает выбранную культуру, если она есть.
func SelectedCrop(ecs *entity.ECS) (defs.CropType, bool) {
	for _, id := range entity.SortedIDs(ecs.CropSelectors) {
		if sel := ecs.CropSelectors[id]; sel.Selected {
			return sel.Crop, true
		}
	}
	return 0, false
}
