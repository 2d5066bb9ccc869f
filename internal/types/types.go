// internal/types/types.go
package types

// EntityID — идентификатор сущности в мире
type EntityID uint64
