// Package sorting holds the in-place sort algorithms compared by the benchmark
// harness. Every algorithm orders a slice ascending by a caller supplied key.
package sorting

import (
	"cmp"

	apperrors "playerbench/internal/errors"
)

// KeyFunc maps an element to the value it is ordered by.
type KeyFunc[T any, K cmp.Ordered] func(T) (K, error)

// Sorter sorts items in place, ascending by key. A nil slice, a nil key or a
// failing key selector is reported as errors.ErrInvalidInput and leaves items
// untouched.
type Sorter[T any, K cmp.Ordered] interface {
	Name() string
	Sort(items []T, key KeyFunc[T, K]) error
}

// keyed keeps elements and their keys side by side so that comparisons never
// call the selector again.
type keyed[T any, K cmp.Ordered] struct {
	items []T
	keys  []K
}

func (s keyed[T, K]) Len() int           { return len(s.keys) }
func (s keyed[T, K]) Less(i, j int) bool { return s.keys[i] < s.keys[j] }
func (s keyed[T, K]) Swap(i, j int) {
	s.items[i], s.items[j] = s.items[j], s.items[i]
	s.keys[i], s.keys[j] = s.keys[j], s.keys[i]
}

// extractKeys evaluates key for every element before anything moves.
func extractKeys[T any, K cmp.Ordered](algorithm string, items []T, key KeyFunc[T, K]) (keyed[T, K], error) {
	if items == nil {
		return keyed[T, K]{}, apperrors.NewInputError(algorithm, -1, "nil sequence", nil)
	}
	if key == nil {
		return keyed[T, K]{}, apperrors.NewInputError(algorithm, -1, "nil key selector", nil)
	}

	keys := make([]K, len(items))
	for i, item := range items {
		k, err := key(item)
		if err != nil {
			return keyed[T, K]{}, apperrors.NewInputError(algorithm, i, "key selector failed", err)
		}
		// NaN is the only value not equal to itself; it has no place in a total order.
		if k != k {
			return keyed[T, K]{}, apperrors.NewInputError(algorithm, i, "key is NaN", nil)
		}
		keys[i] = k
	}
	return keyed[T, K]{items: items, keys: keys}, nil
}
