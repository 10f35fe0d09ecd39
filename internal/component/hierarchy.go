// internal/component/hierarchy.go
package component

import "go-farm/internal/types"

// Position — локальное смещение сущности относительно родителя
// (или начала координат, если родителя нет).
type Position struct {
	X, Y float64
}

// Parent — ссылка на родительскую сущность. Владельцем родителя остаётся ECS.
type Parent struct {
	ID types.EntityID
}

// Size — размеры прямоугольника для попадания курсора и отрисовки.
type Size struct {
	W, H float64
}
