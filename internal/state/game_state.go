// internal/state/game_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"go-farm/internal/app"
	"go-farm/internal/input"
	"go-farm/internal/ui"
)

var _ State = (*GameState)(nil)

// GameState — активная игра: каждый кадр снимает ввод и двигает симуляцию.
type GameState struct {
	sm       *StateMachine
	game     *app.Game
	renderer *ui.Renderer
	logger   *zap.Logger
}

func NewGameState(sm *StateMachine, game *app.Game, logger *zap.Logger) *GameState {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GameState{
		sm:       sm,
		game:     game,
		renderer: ui.NewRenderer(),
		logger:   logger,
	}
}

func (g *GameState) Enter() {
	g.logger.Debug("game resumed", zap.Float64("game_time", g.game.GetGameTime()))
}

func (g *GameState) Update(deltaTime float64) {
	frame := input.Sample(deltaTime)
	if input.PauseToggled() || (frame.Pressed && g.renderer.PauseButton.Contains(frame.MouseX, frame.MouseY)) {
		g.renderer.PauseButton.Toggled()
		g.sm.SetState(NewPauseState(g.sm, g, g.renderer))
		return
	}
	g.game.Update(frame)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.game.View())
}

func (g *GameState) Exit() {
	g.logger.Debug("game paused", zap.Float64("game_time", g.game.GetGameTime()))
}

// Game возвращает симуляцию, которой управляет состояние.
func (g *GameState) Game() *app.Game {
	return g.game
}
