// internal/system/deposit.go
package system

import (
	"go-farm/internal/component"
	"go-farm/internal/config"
	"go-farm/internal/defs"
	"go-farm/internal/entity"
	"go-farm/internal/event"
	"go-farm/internal/ledger"
	"go-farm/internal/types"
	"go-farm/internal/utils"
)

// SpawnDepositEffect создаёт летящий к складу урожай.
func SpawnDepositEffect(ecs *entity.ECS, crop defs.CropType, start, end utils.Vec2, now float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: start.X, Y: start.Y}
	ecs.Tweens[id] = &component.Tween{
		Start:     start,
		End:       end,
		StartTime: now,
		EndTime:   now + config.TweenDuration,
	}
	ecs.DepositEffects[id] = &component.DepositCropEffect{Crop: crop}
	return id
}

// DepositSystem зачисляет долетевший урожай и удаляет эффекты.
type DepositSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewDepositSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *DepositSystem {
	return &DepositSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// Update обрабатывает эффекты с TweenDone: одна единица урожая на склад,
// затем сущность уничтожается. Список собирается до удаления, поэтому
// каждый эффект зачисляется ровно один раз.
func (s *DepositSystem) Update(storage *ledger.Storage) {
	var finished []types.EntityID
	for _, id := range entity.SortedIDs(s.ecs.TweenDones) {
		if entity.Has(s.ecs.DepositEffects, id) {
			finished = append(finished, id)
		}
	}

	for _, id := range finished {
		item := defs.CropOf(s.ecs.DepositEffects[id].Crop)
		storage.Deposit(item, 1)
		s.ecs.Destroy(id)

		s.eventDispatcher.Dispatch(event.Event{
			Type: event.CropDeposited,
			Data: event.CropDepositedData{Effect: id, Item: item},
		})
	}
}

// InFlight возвращает число эффектов, ещё не долетевших до склада.
func InFlight(ecs *entity.ECS) int {
	n := 0
	for id := range ecs.DepositEffects {
		if !entity.Has(ecs.TweenDones, id) {
			n++
		}
	}
	return n
}
