// internal/component/mouse.go
package component

// MouseTarget помечает сущность как доступную для наведения курсора.
type MouseTarget struct{}

// MouseHover есть только у сущностей под курсором в текущем кадре.
// X, Y — позиция курсора относительно левого верхнего угла сущности.
type MouseHover struct {
	X, Y float64
}
