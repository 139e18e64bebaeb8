package sorting

import (
	"cmp"
	"fmt"
	"strings"
)

// Names lists the available algorithms in report order.
var Names = []string{"reference", "insertion", "heap"}

// All returns one Sorter per algorithm, in the order of Names.
func All[T any, K cmp.Ordered]() []Sorter[T, K] {
	return []Sorter[T, K]{Reference[T, K]{}, Insertion[T, K]{}, Heap[T, K]{}}
}

// Lookup finds an algorithm by its name or by an unambiguous prefix ("ins").
func Lookup[T any, K cmp.Ordered](name string) (Sorter[T, K], error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, fmt.Errorf("algorithm name is empty, choose from: %s", strings.Join(Names, ", "))
	}

	var matches []Sorter[T, K]
	for _, s := range All[T, K]() {
		if s.Name() == name {
			return s, nil
		}
		if strings.HasPrefix(s.Name(), name) {
			matches = append(matches, s)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return nil, fmt.Errorf("unknown algorithm %q, choose from: %s", name, strings.Join(Names, ", "))
	default:
		return nil, fmt.Errorf("algorithm prefix %q is ambiguous", name)
	}
}

// LookupAll resolves a list of names, keeping order and dropping duplicates.
func LookupAll[T any, K cmp.Ordered](names []string) ([]Sorter[T, K], error) {
	seen := make(map[string]bool)
	var sorters []Sorter[T, K]
	for _, n := range names {
		s, err := Lookup[T, K](n)
		if err != nil {
			return nil, err
		}
		if seen[s.Name()] {
			continue
		}
		seen[s.Name()] = true
		sorters = append(sorters, s)
	}
	return sorters, nil
}
