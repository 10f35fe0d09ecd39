// internal/utils/math.go
package utils

// Vec2 — двумерный вектор в экранных координатах.
type Vec2 struct {
	X, Y float64
}

// Add возвращает сумму векторов.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub возвращает разность векторов.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale умножает вектор на скаляр.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from*(1-t) + to*t
}

// LerpVec интерполирует покомпонентно: from·(1−t) + to·t.
func LerpVec(from, to Vec2, t float64) Vec2 {
	return Vec2{X: Lerp(from.X, to.X, t), Y: Lerp(from.Y, to.Y, t)}
}
