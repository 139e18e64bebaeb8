package sorting

import "cmp"

// Heap sorts with an implicit binary max-heap: a bottom-up build followed by
// repeated root extraction. O(n log n) on any input, not stable.
type Heap[T any, K cmp.Ordered] struct{}

func (Heap[T, K]) Name() string { return "heap" }

func (s Heap[T, K]) Sort(items []T, key KeyFunc[T, K]) error {
	data, err := extractKeys(s.Name(), items, key)
	if err != nil {
		return err
	}

	buildHeap(data)
	for end := data.Len() - 1; end > 0; end-- {
		data.Swap(0, end)
		siftDown(data, 0, end)
	}
	return nil
}

// buildHeap sifts down every non-leaf, starting at the parent of the last element.
func buildHeap[T any, K cmp.Ordered](data keyed[T, K]) {
	n := data.Len()
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(data, i, n)
	}
}

// siftDown restores the max-heap property for the subtree at root within
// data[:end]. On equal children the left one wins.
func siftDown[T any, K cmp.Ordered](data keyed[T, K], root, end int) {
	for {
		child := 2*root + 1
		if child >= end {
			return
		}
		if right := child + 1; right < end && data.keys[right] > data.keys[child] {
			child = right
		}
		if data.keys[root] >= data.keys[child] {
			return
		}
		data.Swap(root, child)
		root = child
	}
}
