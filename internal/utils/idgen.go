package utils

import (
	"github.com/google/uuid"
)

// IdGenerator produces an opaque id for the given prefix, e.g.
// "comment-4f9d...". Storage adapters take one injected so tests can pin
// ids.
type IdGenerator func(prefix string) string

func NewIdGenerator() IdGenerator {
	return func(prefix string) string {
		return prefix + "-" + uuid.NewString()
	}
}
