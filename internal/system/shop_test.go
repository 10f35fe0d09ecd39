package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-farm/internal/defs"
	"go-farm/internal/entity"
	"go-farm/internal/event"
	"go-farm/internal/ledger"
	"go-farm/internal/utils"
)

func TestShopActionAt(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want ShopAction
	}{
		{"upper half", 10, 10, ShopNone},
		{"buy", 10, 40, ShopBuy},
		{"buy top edge", 0, 32, ShopBuy},
		{"sell", 60, 40, ShopSell},
		{"sell left edge", 50, 63, ShopSell},
		{"outside", 100, 40, ShopNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShopActionAt(tt.x, tt.y, 100, 64))
		})
	}
}

func newShopWorld(t *testing.T, money int64) (*entity.ECS, *ShopSystem, *ledger.Storage, *eventLog) {
	t.Helper()
	ecs := entity.NewECS()
	dispatcher, log := newRecordingDispatcher()
	root := spawnNode(ecs, 0, 10, 400)
	spawnIndicator(ecs, root, 0, 0, defs.SeedOf(defs.Potato))
	spawnIndicator(ecs, root, 140, 0, defs.SeedOf(defs.Onion))
	return ecs, NewShopSystem(ecs, dispatcher), ledger.NewStorage(money), log
}

func TestShopBuyOnPress(t *testing.T) {
	ecs, sys, storage, log := newShopWorld(t, 100)

	frame := hoverAt(ecs, 20, 440)
	frame.Pressed = true
	sys.Update(frame, storage)

	assert.Equal(t, int64(10), storage.Quantity(defs.SeedOf(defs.Potato)))
	assert.Equal(t, int64(90), storage.Money())
	bought := log.ofType(event.ItemBought)
	require.Len(t, bought, 1)
	assert.Equal(t, event.TradeData{Item: defs.SeedOf(defs.Potato), Units: 10, Money: 10}, bought[0].Data)
}

func TestShopRequiresPressEdge(t *testing.T) {
	ecs, sys, storage, _ := newShopWorld(t, 100)

	frame := hoverAt(ecs, 20, 440)
	frame.Held = true
	sys.Update(frame, storage)

	assert.Equal(t, int64(100), storage.Money())
}

func TestShopSellOnPress(t *testing.T) {
	ecs, sys, storage, log := newShopWorld(t, 0)
	storage.Deposit(defs.SeedOf(defs.Onion), 3)

	frame := hoverAt(ecs, 150+60, 440)
	frame.Pressed = true
	sys.Update(frame, storage)

	assert.Equal(t, int64(0), storage.Quantity(defs.SeedOf(defs.Onion)))
	assert.Equal(t, int64(24), storage.Money())
	assert.Len(t, log.ofType(event.ItemSold), 1)
}

func TestShopNoopsAreSilent(t *testing.T) {
	ecs, sys, storage, log := newShopWorld(t, 5)

	buyOnion := hoverAt(ecs, 150+10, 440)
	buyOnion.Pressed = true
	sys.Update(buyOnion, storage)

	sellPotato := hoverAt(ecs, 60, 440)
	sellPotato.Pressed = true
	sys.Update(sellPotato, storage)

	assert.Equal(t, int64(5), storage.Money())
	assert.Empty(t, log.events)
}

func TestFindStorageIndicatorPosition(t *testing.T) {
	ecs, _, _, _ := newShopWorld(t, 0)

	assert.Equal(t, utils.Vec2{X: 200, Y: 432}, FindStorageIndicatorPosition(ecs, defs.SeedOf(defs.Onion)))
	assert.Equal(t, utils.Vec2{}, FindStorageIndicatorPosition(ecs, defs.CropOf(defs.Onion)))
}
