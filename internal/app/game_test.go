package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"go-farm/internal/component"
	"go-farm/internal/config"
	"go-farm/internal/defs"
	"go-farm/internal/entity"
	"go-farm/internal/event"
	"go-farm/internal/system"
	"go-farm/internal/types"
)

const frameTime = 1.0 / 60

// Screen points derived from the default layout.
const (
	// first plot
	plotX = 10 + 32
	plotY = 40 + 32
	// Potato selector
	potatoSelX = 400 + 32
	potatoSelY = 40 + 32
	// Buy button of the Potato seed indicator
	potatoSeedBuyX = 10 + 20
	potatoSeedBuyY = 400 + 48
	// Sell button of the Potato crop indicator
	potatoCropSellX = 10 + 80
	potatoCropSellY = 400 + 76.8 + 48
)

func idle(x, y float64) system.Frame {
	return system.Frame{MouseX: x, MouseY: y, DeltaTime: frameTime}
}

func press(x, y float64) system.Frame {
	return system.Frame{MouseX: x, MouseY: y, Pressed: true, Held: true, DeltaTime: frameTime}
}

func hold(x, y float64) system.Frame {
	return system.Frame{MouseX: x, MouseY: y, Held: true, DeltaTime: frameTime}
}

func TestNewGameBuildsLayout(t *testing.T) {
	g := NewGame(config.StartingMoney, nil)

	assert.Len(t, g.ECS.Plots, config.GridColumns*config.GridRows)
	assert.Len(t, g.ECS.CropSelectors, len(defs.AllCrops))
	assert.Len(t, g.ECS.StorageIndicators, len(defs.AllCrops)*len(defs.AllItemKinds))
	assert.Equal(t, int64(100), g.Storage.Money())

	v := g.View()
	require.Len(t, v.Plots, 25)
	assert.Equal(t, Rect{X: 10, Y: 40, W: 64, H: 64}, v.Plots[0].Rect)
	assert.Equal(t, Rect{X: 10 + 4*64, Y: 40 + 4*64, W: 64, H: 64}, v.Plots[24].Rect)
	assert.Equal(t, defs.Potato, v.Selectors[0].Crop)
	assert.InDelta(t, 40+1.2*64, v.Selectors[1].Y, 1e-9)
	assert.Equal(t, defs.SeedOf(defs.Potato), v.Indicators[0].Item)
	assert.Equal(t, defs.CropOf(defs.Onion), v.Indicators[3].Item)
	assert.InDelta(t, 10+1.4*100, v.Indicators[3].X, 1e-9)
}

// Full loop: buy seeds, select, plant, grow, harvest, deposit, sell.
func TestFarmingRoundTrip(t *testing.T) {
	counts := map[event.EventType]int{}
	g := NewGame(config.StartingMoney, nil, event.ListenerFunc(func(e event.Event) { counts[e.Type]++ }))

	g.Update(press(potatoSeedBuyX, potatoSeedBuyY))
	assert.Equal(t, int64(10), g.Storage.Quantity(defs.SeedOf(defs.Potato)))
	assert.Equal(t, int64(90), g.Storage.Money())

	g.Update(press(potatoSelX, potatoSelY))
	assert.True(t, g.View().Selectors[0].Selected)

	g.Update(press(plotX, plotY))
	g.Update(hold(plotX, plotY))
	assert.Equal(t, int64(9), g.Storage.Quantity(defs.SeedOf(defs.Potato)))
	assert.Equal(t, component.PlotGrowing, g.View().Plots[0].State)

	// 5s of growth at 60 fps, plus one frame to observe Grown and one to harvest.
	for i := 0; i < 300 && g.View().Plots[0].State != component.PlotGrown; i++ {
		g.Update(idle(0, 0))
	}
	require.Equal(t, component.PlotGrown, g.View().Plots[0].State)

	g.Update(idle(0, 0))
	v := g.View()
	assert.Equal(t, component.PlotEmpty, v.Plots[0].State)
	require.Len(t, v.Effects, 1)
	assert.InDelta(t, plotX, v.Effects[0].X, 1e-9)

	for i := 0; i < 40; i++ {
		g.Update(idle(0, 0))
	}
	assert.Empty(t, g.View().Effects)
	assert.Equal(t, int64(1), g.Storage.Quantity(defs.CropOf(defs.Potato)))

	g.Update(press(potatoCropSellX, potatoCropSellY))
	assert.Equal(t, int64(0), g.Storage.Quantity(defs.CropOf(defs.Potato)))
	assert.Equal(t, int64(92), g.Storage.Money())

	assert.Equal(t, map[event.EventType]int{
		event.ItemBought:    1,
		event.PlotPlanted:   1,
		event.CropGrown:     1,
		event.CropHarvested: 1,
		event.CropDeposited: 1,
		event.ItemSold:      1,
	}, counts)
}

func TestEffectFliesTowardCropIndicator(t *testing.T) {
	g := NewGame(0, nil)
	*g.ECS.Plots[firstPlot(t, g)] = component.Plot{State: component.PlotGrown, Crop: defs.Onion}

	g.Update(idle(0, 0))

	require.Len(t, g.ECS.Tweens, 1)
	for _, tween := range g.ECS.Tweens {
		assert.InDelta(t, 10+1.4*100+50, tween.End.X, 1e-9)
		assert.InDelta(t, 400+1.2*64+32, tween.End.Y, 1e-9)
		assert.InDelta(t, g.GetGameTime()+config.TweenDuration, tween.EndTime, 1e-9)
	}
}

func TestPlantingNeedsSeeds(t *testing.T) {
	g := NewGame(config.StartingMoney, nil)

	g.Update(press(potatoSelX, potatoSelY))
	g.Update(hold(plotX, plotY))

	assert.Equal(t, component.PlotEmpty, g.View().Plots[0].State)
	assert.Equal(t, int64(100), g.Storage.Money())
}

func TestDragPlantsAcrossPlots(t *testing.T) {
	g := NewGame(config.StartingMoney, nil)
	g.Update(press(potatoSeedBuyX, potatoSeedBuyY))
	g.Update(press(potatoSelX, potatoSelY))

	for x := 0; x < 3; x++ {
		g.Update(hold(plotX+float64(x)*64, plotY))
	}

	v := g.View()
	for x := 0; x < 3; x++ {
		assert.Equal(t, component.PlotGrowing, v.Plots[x].State)
	}
	assert.Equal(t, component.PlotEmpty, v.Plots[3].State)
	assert.Equal(t, int64(7), g.Storage.Quantity(defs.SeedOf(defs.Potato)))
}

func TestViewReportsHoverAndQuantities(t *testing.T) {
	g := NewGame(config.StartingMoney, nil)
	g.Storage.Deposit(defs.CropOf(defs.Potato), 4)

	g.Update(idle(potatoSeedBuyX, potatoSeedBuyY))

	v := g.View()
	assert.True(t, v.Indicators[0].Hovered)
	assert.Equal(t, 20.0, v.Indicators[0].MouseX)
	assert.Equal(t, 48.0, v.Indicators[0].MouseY)
	assert.Equal(t, int64(4), v.Indicators[2].Quantity)
	assert.False(t, v.Plots[0].Hovered)
}

func TestEventsAreLoggedAtDebug(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	g := NewGame(config.StartingMoney, zap.New(core))

	g.Update(press(potatoSeedBuyX, potatoSeedBuyY))

	bought := logs.FilterMessage(string(event.ItemBought)).All()
	require.Len(t, bought, 1)
	fields := bought[0].ContextMap()
	assert.Equal(t, "Potato seed", fields["item"])
	assert.Equal(t, int64(10), fields["units"])
	assert.Equal(t, 1, logs.FilterMessage("world created").Len())
}

func firstPlot(t *testing.T, g *Game) types.EntityID {
	t.Helper()
	ids := entity.SortedIDs(g.ECS.Plots)
	require.NotEmpty(t, ids)
	return ids[0]
}
