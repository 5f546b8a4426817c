package bst

import (
	"github.com/pkg/errors"
)

var (
	// ErrKeyNotFound is returned when a lookup, delete, or range begin references an absent key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrInvalidStep is returned by range operations whose step is neither +1 nor -1.
	ErrInvalidStep = errors.New("invalid step, only +1 and -1 are supported")
)

func keyNotFound[K any](key K) error {
	return errors.WithMessagef(ErrKeyNotFound, "key %v", key)
}

func invalidStep(step int) error {
	return errors.WithMessagef(ErrInvalidStep, "step %d", step)
}
