package enummap

import (
	"errors"
	"fmt"
)

// Key is the set of enumerator types a table can be keyed by.
type Key interface {
	~uint8 | ~uint16 | ~uint32
}

// Entry pairs an enumerator with its display string.
type Entry[K Key] struct {
	Key  K
	Name string
}

var (
	// ErrDuplicateKey is returned when two entries share a key.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrKeyRange is returned when a key cannot index a dense table.
	ErrKeyRange = errors.New("key out of dense range")
)

func duplicateKey[K Key](k K, first, second string) error {
	return fmt.Errorf("%w 0x%x: %q and %q", ErrDuplicateKey, uint32(k), first, second)
}
