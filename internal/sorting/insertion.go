package sorting

import "cmp"

// Insertion is the classic shift-and-insert sort. It is stable, quadratic on
// reversed input and linear on sorted input.
type Insertion[T any, K cmp.Ordered] struct{}

func (Insertion[T, K]) Name() string { return "insertion" }

func (s Insertion[T, K]) Sort(items []T, key KeyFunc[T, K]) error {
	data, err := extractKeys(s.Name(), items, key)
	if err != nil {
		return err
	}

	for i := 1; i < len(data.keys); i++ {
		item, k := data.items[i], data.keys[i]
		j := i
		for ; j > 0 && data.keys[j-1] > k; j-- {
			data.items[j], data.keys[j] = data.items[j-1], data.keys[j-1]
		}
		data.items[j], data.keys[j] = item, k
	}
	return nil
}
