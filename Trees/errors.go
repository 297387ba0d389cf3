package Trees

import (
	"errors"
	"fmt"
)

// ErrKeyNotFound is matched by every error returned for a key that isn't in the
// tree. Use errors.Is to check for it.
var ErrKeyNotFound = errors.New("key not found")

// KeyNotFoundError is returned by Find, Count and Remove when Key isn't in the tree.
type KeyNotFoundError[K any] struct {
	Key K
}

func (e *KeyNotFoundError[K]) Error() string {
	return fmt.Sprintf("key %v not found", e.Key)
}

func (e *KeyNotFoundError[K]) Is(target error) bool {
	return target == ErrKeyNotFound
}

// InvalidSliceError is the panic value of Build when safe is set and the keys
// aren't strictly ascending: Prev at Index-1 isn't less than Next at Index.
type InvalidSliceError struct {
	Index      int
	Prev, Next any
}

func (e InvalidSliceError) Error() string {
	return fmt.Sprintf("slice is not strictly ascending at index %d: %v followed by %v", e.Index, e.Prev, e.Next)
}
