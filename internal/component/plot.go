// internal/component/plot.go
package component

import "go-farm/internal/defs"

// PlotState — вариант состояния грядки.
type PlotState int

const (
	PlotEmpty PlotState = iota
	PlotGrowing
	PlotGrown
)

func (s PlotState) String() string {
	switch s {
	case PlotEmpty:
		return "empty"
	case PlotGrowing:
		return "growing"
	case PlotGrown:
		return "grown"
	}
	return "unknown"
}

// Plot — грядка. Crop имеет смысл только в Growing и Grown,
// Progress — только в Growing (0 ≤ Progress < 1).
type Plot struct {
	State    PlotState
	Crop     defs.CropType
	Progress float64
}

// CropSelector — кнопка выбора культуры для посадки.
// Флаг Selected установлен не более чем у одного селектора.
type CropSelector struct {
	Crop     defs.CropType
	Selected bool
}

// StorageIndicator связывает сущность панели склада с позицией склада.
type StorageIndicator struct {
	Item defs.Item
}
