// internal/types/types.go
package types

// EntityID — непрозрачный идентификатор сущности.
// Идентификаторы выдаются по возрастанию и никогда не переиспользуются,
// поэтому порядок ID совпадает с порядком создания.
type EntityID uint64
