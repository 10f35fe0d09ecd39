// cmd/game/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"go-farm/internal/app"
	"go-farm/internal/config"
	"go-farm/internal/debug"
	"go-farm/internal/logging"
	"go-farm/internal/metrics"
	"go-farm/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	maxDeltaTime   float64
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > a.maxDeltaTime {
		deltaTime = a.maxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", os.Getenv("FARM_CONFIG"), "path to TOML settings")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := logging.New(settings.Logging)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	logger = logger.With(zap.String("session", uuid.NewString()))

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	collector := metrics.NewCollector(reg)

	game := app.NewGame(settings.Game.StartingMoney, logger, collector)

	if settings.Debug.Enabled {
		srv := debug.NewServer(settings.Debug.Address, debug.NewRouter(reg, game.Storage), logger)
		srv.Start()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				logger.Warn("debug server shutdown", zap.Error(err))
			}
		}()
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewGameState(sm, game, logger))

	ebiten.SetWindowSize(
		int(float64(config.ScreenWidth)*settings.Window.Scale),
		int(float64(config.ScreenHeight)*settings.Window.Scale),
	)
	ebiten.SetWindowTitle(settings.Window.Title)

	if err := ebiten.RunGame(&AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		maxDeltaTime:   settings.Game.MaxDeltaTime,
	}); err != nil {
		logger.Error("game stopped", zap.Error(err))
		return
	}
	logger.Info("game closed", zap.Int64("money", game.Storage.Money()))
}
