package utils

import "github.com/google/uuid"

// UUIDGenerator produces session identifiers. UUIDv7 is preferred because it
// is time-ordered; on the rare generation failure it falls back to v4.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
