package idgen

import (
	"fmt"

	"github.com/google/uuid"
)

// UUIDGenerator issues time-ordered UUIDv7 identifiers. Values created within the
// same millisecond stay unique and increasing thanks to the generator's sequence bits.
type UUIDGenerator struct{}

func NewUUIDGenerator() UUIDGenerator { return UUIDGenerator{} }

func (UUIDGenerator) NewID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("new uuid: %w", err)
	}
	return id.String(), nil
}
