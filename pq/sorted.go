package pq

// sortedQueue keeps its members in a fully ordered slice. items[i].index == i
// holds for every live handle after each operation.
//
// Complexity:
//
//   - Insert, ExtractMin, DecreaseKey: O(n) (scan plus re-indexing).
//   - FindMin: O(1).
type sortedQueue[T any] struct {
	base[T]
	items []*Handle[T]
}

func newSorted[T any](key KeyFunc[T], opts Options[T]) *sortedQueue[T] {
	return &sortedQueue[T]{base: newBase(key, opts)}
}

// Kind returns KindSorted.
func (q *sortedQueue[T]) Kind() Kind { return KindSorted }

// Insert places elem after every member that does not compare greater,
// so equal elements keep insertion order.
func (q *sortedQueue[T]) Insert(elem T) (*Handle[T], error) {
	k, err := q.checkKey(elem)
	if err != nil {
		return nil, err
	}
	h := q.newHandle(elem, k)
	q.insertAt(q.position(elem), h)

	return h, nil
}

// position returns the index of the first member comparing strictly greater than elem.
func (q *sortedQueue[T]) position(elem T) int {
	i := 0
	for i < len(q.items) && !q.less(elem, q.items[i].elem) {
		i++
	}

	return i
}

func (q *sortedQueue[T]) insertAt(i int, h *Handle[T]) {
	q.items = append(q.items, nil)
	copy(q.items[i+1:], q.items[i:])
	q.items[i] = h
	// Re-index the inserted handle and every handle shifted up by one.
	for j := i; j < len(q.items); j++ {
		q.items[j].index = j
	}
	q.size++
}

func (q *sortedQueue[T]) removeAt(i int) *Handle[T] {
	h := q.items[i]
	copy(q.items[i:], q.items[i+1:])
	q.items[len(q.items)-1] = nil
	q.items = q.items[:len(q.items)-1]
	for j := i; j < len(q.items); j++ {
		q.items[j].index = j
	}
	h.valid = false
	q.size--

	return h
}

// FindMin returns the element at index 0.
func (q *sortedQueue[T]) FindMin() (T, error) {
	if q.size == 0 {
		var zero T
		return zero, ErrEmptyCollection
	}

	return q.items[0].elem, nil
}

// ExtractMin removes index 0 and consumes exactly that handle.
func (q *sortedQueue[T]) ExtractMin() (T, error) {
	if q.size == 0 {
		var zero T
		return zero, ErrEmptyCollection
	}

	return q.removeAt(0).elem, nil
}

// DecreaseKey removes the member at the handle's tracked index and reinserts elem.
func (q *sortedQueue[T]) DecreaseKey(h *Handle[T], elem T) (*Handle[T], error) {
	k, err := q.checkDecrease(h, elem)
	if err != nil {
		return nil, err
	}
	q.removeAt(h.index)
	nh := q.newHandle(elem, k)
	q.insertAt(q.position(elem), nh)

	return nh, nil
}

// Merge copies the receiver into a fresh sorted queue and drains other into it.
func (q *sortedQueue[T]) Merge(other Queue[T]) (Queue[T], error) {
	return mergeInto[T](q, &q.base, newSorted(q.key, q.opts), other)
}

// Clear drops every member and invalidates every handle.
func (q *sortedQueue[T]) Clear() {
	for _, h := range q.items {
		h.valid = false
	}
	q.items = nil
	q.size = 0
}

func (q *sortedQueue[T]) elements() []T {
	out := make([]T, len(q.items))
	for i, h := range q.items {
		out[i] = h.elem
	}

	return out
}
