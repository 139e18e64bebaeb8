package sorting

import (
	"cmp"
	"sort"
)

// Reference delegates to the standard library sort (pattern-defeating
// quicksort). It is the baseline the hand written sorts are measured against.
type Reference[T any, K cmp.Ordered] struct{}

func (Reference[T, K]) Name() string { return "reference" }

func (s Reference[T, K]) Sort(items []T, key KeyFunc[T, K]) error {
	data, err := extractKeys(s.Name(), items, key)
	if err != nil {
		return err
	}
	sort.Sort(data)
	return nil
}
