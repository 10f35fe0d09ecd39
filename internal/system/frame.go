// internal/system/frame.go
package system

// Frame — ввод и время, считанные один раз в начале кадра.
// Системы читают только его и никогда не опрашивают устройство сами.
type Frame struct {
	MouseX, MouseY float64
	Pressed        bool    // Левая кнопка нажата в этом кадре (фронт)
	Held           bool    // Левая кнопка удерживается (уровень)
	DeltaTime      float64 // Секунды с прошлого кадра
}
