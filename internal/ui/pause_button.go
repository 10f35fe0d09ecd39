// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-farm/pkg/render"
)

// PauseButton — иконка паузы в правом верхнем углу. Центр (X, Y), полуразмер Size.
type PauseButton struct {
	X, Y       float64
	Size       float64
	PauseColor color.RGBA
	PlayColor  color.RGBA
	lastToggle time.Time
}

func NewPauseButton(x, y, size float64, pauseColor, playColor color.RGBA) *PauseButton {
	return &PauseButton{
		X: x, Y: y, Size: size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

// Contains проверяет попадание точки в квадрат кнопки.
func (b *PauseButton) Contains(x, y float64) bool {
	return x >= b.X-b.Size && x < b.X+b.Size && y >= b.Y-b.Size && y < b.Y+b.Size
}

// Toggled запускает короткую анимацию нажатия.
func (b *PauseButton) Toggled() {
	b.lastToggle = time.Now()
}

// Draw рисует две полосы; в паузе они окрашены PlayColor.
func (b *PauseButton) Draw(screen *ebiten.Image, paused bool) {
	scale := 1.0 + 0.3*math.Exp(-time.Since(b.lastToggle).Seconds()*8)
	size := b.Size * scale
	clr := b.PauseColor
	if paused {
		clr = b.PlayColor
	}

	width := size * 0.6
	height := size * 2
	spacing := size * 0.4
	left := b.X - width - spacing/2
	right := b.X + spacing/2
	top := b.Y - height/2
	for _, x := range []float64{left, right} {
		render.Rect(screen, x, top, width, height, clr)
		render.RectLines(screen, x, top, width, height, 1, color.White)
	}
}
