// internal/system/mouse.go
package system

import (
	"go-farm/internal/component"
	"go-farm/internal/entity"
	"go-farm/internal/types"
)

// MouseSystem пересчитывает MouseHover каждый кадр.
type MouseSystem struct {
	ecs *entity.ECS
}

func NewMouseSystem(ecs *entity.ECS) *MouseSystem {
	return &MouseSystem{ecs: ecs}
}

// Update ставит MouseHover всем MouseTarget, чей прямоугольник
// [x, x+w) × [y, y+h) содержит курсор, и снимает его со всех остальных.
// Вложенные прямоугольники помечаются независимо друг от друга.
func (s *MouseSystem) Update(frame Frame) {
	type hit struct {
		id    types.EntityID
		hover component.MouseHover
	}
	var hits []hit

	for _, id := range entity.SortedIDs(s.ecs.MouseTargets) {
		size, ok := s.ecs.Sizes[id]
		if !ok || !entity.Has(s.ecs.Positions, id) {
			continue
		}
		pos := ResolvePosition(s.ecs, id)
		rx := frame.MouseX - pos.X
		ry := frame.MouseY - pos.Y
		if rx >= 0 && rx < size.W && ry >= 0 && ry < size.H {
			hits = append(hits, hit{id: id, hover: component.MouseHover{X: rx, Y: ry}})
		}
	}

	clear(s.ecs.MouseHovers)
	for _, h := range hits {
		hover := h.hover
		s.ecs.MouseHovers[h.id] = &hover
	}
}

// IsHovered сообщает, находится ли сущность под курсором в этом кадре.
func IsHovered(ecs *entity.ECS, id types.EntityID) bool {
	return entity.Has(ecs.MouseHovers, id)
}
