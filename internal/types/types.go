// internal/types/types.go
package types

// EntityID идентификатор сущности в ECS, 0 не используется
type EntityID uint64
