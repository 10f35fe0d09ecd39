// internal/system/hierarchy.go
package system

import (
	"fmt"

	"go-farm/internal/entity"
	"go-farm/internal/types"
	"go-farm/internal/utils"
)

// maxHierarchyDepth ограничивает обход родителей на случай цикла.
const maxHierarchyDepth = 64

// ResolvePosition возвращает абсолютную позицию сущности: сумму локальных
// смещений вверх по цепочке Parent. Сущность без Position даёт ноль, и её
// предки тоже не учитываются. Результат не кэшируется.
func ResolvePosition(ecs *entity.ECS, id types.EntityID) utils.Vec2 {
	ecs.MustExist(id)

	var resolved utils.Vec2
	for depth := 0; depth < maxHierarchyDepth; depth++ {
		pos, ok := ecs.Positions[id]
		if !ok {
			return resolved
		}
		resolved = resolved.Add(utils.Vec2{X: pos.X, Y: pos.Y})

		parent, ok := ecs.Parents[id]
		if !ok {
			return resolved
		}
		id = parent.ID
		ecs.MustExist(id)
	}
	return resolved
}

// ResolveCenter возвращает центр прямоугольника сущности.
// Паникует, если у сущности нет Size.
func ResolveCenter(ecs *entity.ECS, id types.EntityID) utils.Vec2 {
	size, ok := ecs.Sizes[id]
	if !ok {
		panic(fmt.Sprintf("entity %d has no size", id))
	}
	return ResolvePosition(ecs, id).Add(utils.Vec2{X: size.W * 0.5, Y: size.H * 0.5})
}
