// internal/component/effect.go
package component

import (
	"go-farm/internal/defs"
	"go-farm/internal/utils"
)

// Tween — линейная интерполяция позиции между двумя моментами игрового времени.
type Tween struct {
	Start     utils.Vec2
	End       utils.Vec2
	StartTime float64
	EndTime   float64
}

// TweenDone ставится на сущность в кадре, когда интерполяция завершилась.
type TweenDone struct{}

// DepositCropEffect — летящий к складу урожай. По завершении Tween
// зачисляет одну единицу урожая культуры Crop.
type DepositCropEffect struct {
	Crop defs.CropType
}
