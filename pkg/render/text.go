// pkg/render/text.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// DefaultFace — растровый шрифт 7x13 из x/image.
var DefaultFace text.Face = text.NewGoXFace(basicfont.Face7x13)

// Label рисует строку; (x, y) — левый верхний угол строки.
func Label(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, DefaultFace, op)
}

// LabelCentered рисует строку по центру прямоугольника.
func LabelCentered(dst *ebiten.Image, s string, x, y, w, h float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x+w/2, y+h/2)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, s, DefaultFace, op)
}
