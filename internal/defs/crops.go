// internal/defs/crops.go
package defs

import "image/color"

// CropType — вид культуры. Набор фиксирован, порядок значений задаёт порядок отображения.
type CropType int

const (
	Potato CropType = iota
	Onion
)

// AllCrops перечисляет культуры в порядке отображения селекторов и склада.
var AllCrops = []CropType{Potato, Onion}

// GrowDuration возвращает время роста в секундах.
func (c CropType) GrowDuration() float64 {
	switch c {
	case Potato:
		return 5.0
	case Onion:
		return 8.0
	}
	return 1.0
}

// Color — базовый цвет культуры.
func (c CropType) Color() color.RGBA {
	switch c {
	case Potato:
		return color.RGBA{102, 127, 51, 255}
	case Onion:
		return color.RGBA{102, 102, 102, 255}
	}
	return color.RGBA{255, 0, 255, 255}
}

// Name — отображаемое имя.
func (c CropType) Name() string {
	switch c {
	case Potato:
		return "Potato"
	case Onion:
		return "Onion"
	}
	return "Unknown"
}

func (c CropType) String() string {
	return c.Name()
}
