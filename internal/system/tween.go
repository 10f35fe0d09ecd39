// internal/system/tween.go
package system

import (
	"go-farm/internal/component"
	"go-farm/internal/entity"
	"go-farm/internal/utils"
)

// TweenSystem двигает сущности с Tween по игровому времени.
type TweenSystem struct {
	ecs *entity.ECS
}

func NewTweenSystem(ecs *entity.ECS) *TweenSystem {
	return &TweenSystem{ecs: ecs}
}

// Update ставит Position в интерполированную точку. Когда t ≥ 1,
// позиция фиксируется в конечной точке и сущность получает TweenDone.
func (s *TweenSystem) Update(now float64) {
	for _, id := range entity.SortedIDs(s.ecs.Tweens) {
		tween := s.ecs.Tweens[id]
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}

		t := 1.0
		if span := tween.EndTime - tween.StartTime; span > 0 {
			t = (now - tween.StartTime) / span
		}

		var at utils.Vec2
		if t >= 1.0 {
			at = tween.End
			s.ecs.TweenDones[id] = &component.TweenDone{}
		} else {
			at = utils.LerpVec(tween.Start, tween.End, t)
		}
		pos.X, pos.Y = at.X, at.Y
	}
}
