// internal/app/game.go
package app

import (
	"go-farm/internal/entity"
	"go-farm/internal/event"
	"go-farm/internal/ledger"
	"go-farm/internal/system"
	"go-farm/internal/types"

	"go.uber.org/zap"
)

// Game holds the simulation state and runs the per-frame systems.
type Game struct {
	ECS             *entity.ECS
	Storage         *ledger.Storage
	EventDispatcher *event.Dispatcher
	MouseSystem     *system.MouseSystem
	SelectionSystem *system.SelectionSystem
	PlotSystem      *system.PlotSystem
	TweenSystem     *system.TweenSystem
	ShopSystem      *system.ShopSystem
	DepositSystem   *system.DepositSystem

	GridID      types.EntityID
	SelectorsID types.EntityID
	StorageID   types.EntityID

	logger *zap.Logger
}

// NewGame builds the farm world with the given starting money.
// Listeners receive every domain event in the frame it happens.
func NewGame(startingMoney int64, logger *zap.Logger, listeners ...event.Listener) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		ECS:             ecs,
		Storage:         ledger.NewStorage(startingMoney),
		EventDispatcher: eventDispatcher,
		MouseSystem:     system.NewMouseSystem(ecs),
		SelectionSystem: system.NewSelectionSystem(ecs),
		PlotSystem:      system.NewPlotSystem(ecs, eventDispatcher),
		TweenSystem:     system.NewTweenSystem(ecs),
		ShopSystem:      system.NewShopSystem(ecs, eventDispatcher),
		DepositSystem:   system.NewDepositSystem(ecs, eventDispatcher),
		logger:          logger,
	}

	eventDispatcher.SubscribeAll(&GameEventListener{logger: logger})
	for _, l := range listeners {
		eventDispatcher.SubscribeAll(l)
	}

	g.buildWorld()
	logger.Info("world created",
		zap.Int("entities", ecs.Count()),
		zap.Int64("money", startingMoney),
	)
	return g
}

// Update advances the simulation by one frame. The order is fixed: later
// systems read component writes made earlier in the same frame.
func (g *Game) Update(frame system.Frame) {
	g.ECS.GameTime += frame.DeltaTime
	now := g.ECS.GameTime

	g.MouseSystem.Update(frame)
	g.SelectionSystem.Update(frame)
	g.PlotSystem.Manipulate(frame, g.Storage)
	g.PlotSystem.Update(frame.DeltaTime, now)
	g.TweenSystem.Update(now)
	g.ShopSystem.Update(frame, g.Storage)
	g.DepositSystem.Update(g.Storage)
}

// GetGameTime returns the accumulated simulation time in seconds.
func (g *Game) GetGameTime() float64 {
	return g.ECS.GameTime
}
