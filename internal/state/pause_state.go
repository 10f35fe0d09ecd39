// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"go-farm/internal/input"
	"go-farm/internal/ui"
)

var _ State = (*PauseState)(nil)

// PauseState рисует замороженную игру под затемнением. Время игры не идёт.
type PauseState struct {
	sm       *StateMachine
	previous State
	renderer *ui.Renderer
}

// NewPauseState делит renderer с previous, чтобы кнопка паузы была одна.
func NewPauseState(sm *StateMachine, previous State, renderer *ui.Renderer) *PauseState {
	return &PauseState{
		sm:       sm,
		previous: previous,
		renderer: renderer,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	frame := input.Sample(deltaTime)
	if input.PauseToggled() || (frame.Pressed && s.renderer.PauseButton.Contains(frame.MouseX, frame.MouseY)) {
		s.renderer.PauseButton.Toggled()
		s.sm.SetState(s.previous)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previous != nil {
		s.previous.Draw(screen)
	}
	s.renderer.DrawPauseOverlay(screen)
}

func (s *PauseState) Exit() {}
