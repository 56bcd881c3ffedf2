package generator

import (
	"github.com/google/uuid"

	"github.com/kbukum/genc/errors"
)

// Guid returns a generator producing a new random (version 4) UUID per pull.
func Guid() Generator[uuid.UUID] {
	return guidGen{newID: uuid.NewRandom}
}

// GuidV7 returns a generator producing time-ordered (version 7) UUIDs.
func GuidV7() Generator[uuid.UUID] {
	return guidGen{newID: uuid.NewV7}
}

type guidGen struct {
	newID func() (uuid.UUID, error)
}

func (g guidGen) Generate() (uuid.UUID, error) {
	id, err := g.newID()
	if err != nil {
		return uuid.Nil, errors.Internal("uuid generation", err)
	}
	return id, nil
}
