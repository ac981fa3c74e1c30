package impl_platform

import "github.com/google/uuid"

// UUIDGenerator hands out random v4 UUIDs.
type UUIDGenerator struct{}

func NewUUIDGenerator() UUIDGenerator { return UUIDGenerator{} }

func (UUIDGenerator) NewUUID() uuid.UUID { return uuid.New() }
