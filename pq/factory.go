package pq

import (
	"errors"
	"fmt"
)

// ErrNilKeyFunc indicates New was called without a key extraction function.
var ErrNilKeyFunc = errors.New("pq: key function is nil")

// New creates an empty queue of the given kind.
//
// key extracts the bounded integer key of an element; opts may override the
// key bound (WithMaxKey) and the order among equal keys (WithCompare).
//
// Errors:
//
//   - ErrUnknownKind   if kind is not KindSorted, KindTree or KindBucket.
//   - ErrNilKeyFunc    if key is nil.
//   - ErrOutOfRangeKey if kind is KindBucket and the bound exceeds MaxBucketKey.
func New[T any](kind Kind, key KeyFunc[T], opts ...Option[T]) (Queue[T], error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
	if key == nil {
		return nil, ErrNilKeyFunc
	}
	cfg := DefaultOptions(key)
	for _, opt := range opts {
		opt(&cfg)
	}

	if kind == KindBucket && cfg.MaxKey > MaxBucketKey {
		return nil, fmt.Errorf("%w: bucket bound %d exceeds %d", ErrOutOfRangeKey, cfg.MaxKey, MaxBucketKey)
	}

	switch kind {
	case KindSorted:
		return newSorted(key, cfg), nil
	case KindTree:
		return newTree(key, cfg), nil
	default:
		return newBucket(key, cfg), nil
	}
}

// IntKey is the identity key used for queues of plain integers.
func IntKey(v int) int { return v }

// NewInts creates an empty queue of integers ordered by value.
func NewInts(kind Kind, opts ...Option[int]) (Queue[int], error) {
	return New(kind, IntKey, opts...)
}

// Build creates a queue of the given kind holding every element of elems.
// It fails on the first element whose key is out of range.
//
// Complexity: n inserts, i.e. O(n²) sorted, O(n log n) average tree, O(n) bucket.
func Build[T any](kind Kind, key KeyFunc[T], elems []T, opts ...Option[T]) (Queue[T], error) {
	q, err := New(kind, key, opts...)
	if err != nil {
		return nil, err
	}
	for i, e := range elems {
		if _, err = q.Insert(e); err != nil {
			return nil, fmt.Errorf("pq: build: element %d: %w", i, err)
		}
	}

	return q, nil
}

// Sort returns values in non-decreasing order by inserting all of them into
// a queue of the given kind and extracting until empty. values is not modified.
func Sort(kind Kind, values []int, opts ...Option[int]) ([]int, error) {
	q, err := Build(kind, IntKey, values, opts...)
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, len(values))
	for !q.IsEmpty() {
		v, err := q.ExtractMin()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}
