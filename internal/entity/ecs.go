// internal/entity/ecs.go
package entity

import (
	"fmt"
	"maps"
	"slices"

	"go-farm/internal/component"
	"go-farm/internal/types"
)

// ECS — хранилище сущностей: по одной таблице на тип компонента.
type ECS struct {
	GameTime float64 // Игровое время в секундах, накапливается по кадрам
	NextID   types.EntityID

	alive map[types.EntityID]struct{}

	Positions         map[types.EntityID]*component.Position
	Parents           map[types.EntityID]*component.Parent
	Sizes             map[types.EntityID]*component.Size
	MouseTargets      map[types.EntityID]*component.MouseTarget
	MouseHovers       map[types.EntityID]*component.MouseHover
	Plots             map[types.EntityID]*component.Plot
	CropSelectors     map[types.EntityID]*component.CropSelector
	StorageIndicators map[types.EntityID]*component.StorageIndicator
	Tweens            map[types.EntityID]*component.Tween
	TweenDones        map[types.EntityID]*component.TweenDone
	DepositEffects    map[types.EntityID]*component.DepositCropEffect
}

func NewECS() *ECS {
	return &ECS{
		NextID:            1,
		alive:             make(map[types.EntityID]struct{}),
		Positions:         make(map[types.EntityID]*component.Position),
		Parents:           make(map[types.EntityID]*component.Parent),
		Sizes:             make(map[types.EntityID]*component.Size),
		MouseTargets:      make(map[types.EntityID]*component.MouseTarget),
		MouseHovers:       make(map[types.EntityID]*component.MouseHover),
		Plots:             make(map[types.EntityID]*component.Plot),
		CropSelectors:     make(map[types.EntityID]*component.CropSelector),
		StorageIndicators: make(map[types.EntityID]*component.StorageIndicator),
		Tweens:            make(map[types.EntityID]*component.Tween),
		TweenDones:        make(map[types.EntityID]*component.TweenDone),
		DepositEffects:    make(map[types.EntityID]*component.DepositCropEffect),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	ecs.alive[id] = struct{}{}
	return id
}

// Exists сообщает, жива ли сущность.
func (ecs *ECS) Exists(id types.EntityID) bool {
	_, ok := ecs.alive[id]
	return ok
}

// MustExist паникует, если сущность уничтожена или никогда не создавалась.
// Такое обращение — ошибка построения мира, а не пользовательская ситуация.
func (ecs *ECS) MustExist(id types.EntityID) {
	if !ecs.Exists(id) {
		panic(fmt.Sprintf("entity %d does not exist", id))
	}
}

// Count возвращает число живых сущностей.
func (ecs *ECS) Count() int {
	return len(ecs.alive)
}

// Destroy удаляет сущность вместе со всеми её компонентами.
// Повторный вызов для уже удалённой сущности ничего не делает.
func (ecs *ECS) Destroy(id types.EntityID) {
	if !ecs.Exists(id) {
		return
	}
	delete(ecs.alive, id)
	delete(ecs.Positions, id)
	delete(ecs.Parents, id)
	delete(ecs.Sizes, id)
	delete(ecs.MouseTargets, id)
	delete(ecs.MouseHovers, id)
	delete(ecs.Plots, id)
	delete(ecs.CropSelectors, id)
	delete(ecs.StorageIndicators, id)
	delete(ecs.Tweens, id)
	delete(ecs.TweenDones, id)
	delete(ecs.DepositEffects, id)
}

// SortedIDs возвращает ключи таблицы компонентов в порядке создания сущностей.
// Все системы обходят сущности только так, чтобы кадр был детерминированным.
func SortedIDs[T any](table map[types.EntityID]T) []types.EntityID {
	return slices.Sorted(maps.Keys(table))
}

// Has проверяет наличие компонента у сущности.
func Has[T any](table map[types.EntityID]T, id types.EntityID) bool {
	_, ok := table[id]
	return ok
}
