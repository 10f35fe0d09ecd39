package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-farm/internal/component"
	"go-farm/internal/defs"
	"go-farm/internal/entity"
	"go-farm/internal/event"
	"go-farm/internal/ledger"
	"go-farm/internal/utils"
)

func TestTweenInterpolatesLinearly(t *testing.T) {
	ecs := entity.NewECS()
	id := SpawnDepositEffect(ecs, defs.Potato, utils.Vec2{X: 0, Y: 100}, utils.Vec2{X: 100, Y: 0}, 2.0)
	sys := NewTweenSystem(ecs)

	sys.Update(2.25)

	assert.InDelta(t, 50, ecs.Positions[id].X, 1e-9)
	assert.InDelta(t, 50, ecs.Positions[id].Y, 1e-9)
	assert.False(t, entity.Has(ecs.TweenDones, id))
}

func TestTweenCompletionSnapsToEnd(t *testing.T) {
	ecs := entity.NewECS()
	end := utils.Vec2{X: 33, Y: 44}
	id := SpawnDepositEffect(ecs, defs.Onion, utils.Vec2{}, end, 0)

	NewTweenSystem(ecs).Update(0.75)

	assert.Equal(t, component.Position{X: 33, Y: 44}, *ecs.Positions[id])
	assert.True(t, entity.Has(ecs.TweenDones, id))
}

func TestZeroLengthTweenCompletesImmediately(t *testing.T) {
	ecs := entity.NewECS()
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{}
	ecs.Tweens[id] = &component.Tween{End: utils.Vec2{X: 1, Y: 1}, StartTime: 3, EndTime: 3}

	NewTweenSystem(ecs).Update(3)

	assert.Equal(t, component.Position{X: 1, Y: 1}, *ecs.Positions[id])
	assert.True(t, entity.Has(ecs.TweenDones, id))
}

func TestDepositCreditsOnceAndDestroys(t *testing.T) {
	ecs := entity.NewECS()
	dispatcher, log := newRecordingDispatcher()
	storage := ledger.NewStorage(0)
	tweens := NewTweenSystem(ecs)
	deposits := NewDepositSystem(ecs, dispatcher)
	id := SpawnDepositEffect(ecs, defs.Onion, utils.Vec2{}, utils.Vec2{X: 10}, 0)

	tweens.Update(0.2)
	deposits.Update(storage)
	assert.True(t, ecs.Exists(id), "in-flight effect must not be credited")
	assert.Equal(t, int64(0), storage.Quantity(defs.CropOf(defs.Onion)))
	assert.Equal(t, 1, InFlight(ecs))

	tweens.Update(0.5)
	assert.Equal(t, 0, InFlight(ecs))
	deposits.Update(storage)
	assert.False(t, ecs.Exists(id))
	assert.Equal(t, int64(1), storage.Quantity(defs.CropOf(defs.Onion)))

	for i := 0; i < 3; i++ {
		tweens.Update(1 + float64(i))
		deposits.Update(storage)
	}
	assert.Equal(t, int64(1), storage.Quantity(defs.CropOf(defs.Onion)))

	deposited := log.ofType(event.CropDeposited)
	require.Len(t, deposited, 1)
	assert.Equal(t, event.CropDepositedData{Effect: id, Item: defs.CropOf(defs.Onion)}, deposited[0].Data)
}

func TestManyEffectsEachCreditedOnce(t *testing.T) {
	ecs := entity.NewECS()
	storage := ledger.NewStorage(0)
	tweens := NewTweenSystem(ecs)
	deposits := NewDepositSystem(ecs, nil)

	for i := 0; i < 10; i++ {
		crop := defs.AllCrops[i%2]
		SpawnDepositEffect(ecs, crop, utils.Vec2{}, utils.Vec2{X: 1}, float64(i)*0.1)
	}

	now := 0.0
	for step := 0; step < 30; step++ {
		now += 0.1
		tweens.Update(now)
		deposits.Update(storage)
		for id := range ecs.DepositEffects {
			require.False(t, entity.Has(ecs.TweenDones, id), "a finished effect survived its frame")
		}
	}

	assert.Empty(t, ecs.DepositEffects)
	assert.Empty(t, ecs.Tweens)
	assert.Equal(t, int64(5), storage.Quantity(defs.CropOf(defs.Potato)))
	assert.Equal(t, int64(5), storage.Quantity(defs.CropOf(defs.Onion)))
}
