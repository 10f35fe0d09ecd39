// internal/input/mouse.go
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-farm/internal/system"
)

// Sample считывает курсор и левую кнопку мыши один раз за кадр.
func Sample(deltaTime float64) system.Frame {
	x, y := ebiten.CursorPosition()
	return system.Frame{
		MouseX:    float64(x),
		MouseY:    float64(y),
		Pressed:   inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Held:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		DeltaTime: deltaTime,
	}
}

// PauseToggled сообщает, нажата ли в этом кадре клавиша паузы.
func PauseToggled() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
