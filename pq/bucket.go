package pq

// bucketQueue is an array of MaxKey+1 slot lists indexed directly by key.
// cursor is the lowest bucket that may be non-empty; every bucket below it
// is empty. It only moves down on Insert/DecreaseKey into a lower bucket
// and only moves up while FindMin/ExtractMin skip empty buckets.
//
// Members sharing a bucket are not ordered; the minimum is found by a
// linear scan using the full comparison, so composite elements with equal
// keys still come out in a deterministic order.
//
// Complexity:
//
//   - Insert, DecreaseKey: O(1).
//   - FindMin, ExtractMin: O(MaxKey + b) worst case, b = members of the
//     minimum bucket; amortized O(b) under a monotone workload.
//   - Clear, Merge: O(MaxKey + n).
type bucketQueue[T any] struct {
	base[T]
	buckets [][]*Handle[T]
	cursor  int
}

func newBucket[T any](key KeyFunc[T], opts Options[T]) *bucketQueue[T] {
	return &bucketQueue[T]{
		base:    newBase(key, opts),
		buckets: make([][]*Handle[T], opts.MaxKey+1),
		cursor:  opts.MaxKey + 1,
	}
}

// Kind returns KindBucket.
func (q *bucketQueue[T]) Kind() Kind { return KindBucket }

// Insert appends elem to bucket key(elem) and lowers the cursor if needed.
func (q *bucketQueue[T]) Insert(elem T) (*Handle[T], error) {
	k, err := q.checkKey(elem)
	if err != nil {
		return nil, err
	}
	h := q.newHandle(elem, k)
	q.push(h)

	return h, nil
}

func (q *bucketQueue[T]) push(h *Handle[T]) {
	h.index = len(q.buckets[h.key])
	q.buckets[h.key] = append(q.buckets[h.key], h)
	q.size++
	if h.key < q.cursor {
		q.cursor = h.key
	}
}

// remove deletes h from its bucket by swapping the last member into its
// position, and consumes h.
func (q *bucketQueue[T]) remove(h *Handle[T]) {
	b := q.buckets[h.key]
	last := len(b) - 1
	if h.index != last {
		b[h.index] = b[last]
		b[h.index].index = h.index
	}
	b[last] = nil
	q.buckets[h.key] = b[:last]
	h.valid = false
	q.size--
}

// advance moves the cursor past empty buckets.
func (q *bucketQueue[T]) advance() {
	for q.cursor <= q.opts.MaxKey && len(q.buckets[q.cursor]) == 0 {
		q.cursor++
	}
}

// minHandle returns the first minimal member of the cursor bucket.
func (q *bucketQueue[T]) minHandle() *Handle[T] {
	q.advance()
	b := q.buckets[q.cursor]
	m := b[0]
	for _, h := range b[1:] {
		if q.less(h.elem, m.elem) {
			m = h
		}
	}

	return m
}

// FindMin returns the minimum of the lowest non-empty bucket.
func (q *bucketQueue[T]) FindMin() (T, error) {
	if q.size == 0 {
		var zero T
		return zero, ErrEmptyCollection
	}

	return q.minHandle().elem, nil
}

// ExtractMin removes the minimum of the lowest non-empty bucket.
func (q *bucketQueue[T]) ExtractMin() (T, error) {
	if q.size == 0 {
		var zero T
		return zero, ErrEmptyCollection
	}
	h := q.minHandle()
	q.remove(h)
	q.advance()

	return h.elem, nil
}

// DecreaseKey moves the member into the lower bucket of elem; push resets
// the cursor when the new bucket lies below it.
func (q *bucketQueue[T]) DecreaseKey(h *Handle[T], elem T) (*Handle[T], error) {
	k, err := q.checkDecrease(h, elem)
	if err != nil {
		return nil, err
	}
	q.remove(h)
	nh := q.newHandle(elem, k)
	q.push(nh)

	return nh, nil
}

// Merge copies every bucket of the receiver into a fresh bucket queue with
// the same bound and drains other into it.
func (q *bucketQueue[T]) Merge(other Queue[T]) (Queue[T], error) {
	return mergeInto[T](q, &q.base, newBucket(q.key, q.opts), other)
}

// Clear empties every bucket, invalidates every handle and parks the cursor
// past the last bucket.
func (q *bucketQueue[T]) Clear() {
	for i, b := range q.buckets {
		for _, h := range b {
			h.valid = false
		}
		q.buckets[i] = nil
	}
	q.size = 0
	q.cursor = q.opts.MaxKey + 1
}

func (q *bucketQueue[T]) elements() []T {
	out := make([]T, 0, q.size)
	for _, b := range q.buckets {
		for _, h := range b {
			out = append(out, h.elem)
		}
	}

	return out
}
