// This file declares the queue contract shared by the sorted, tree and
// bucket backings, the position-handle model, sentinel errors and options.

package pq

import (
	"cmp"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// DefaultMaxKey is the inclusive upper key bound N used when WithMaxKey is not given.
const DefaultMaxKey = 1000

// MaxBucketKey is the largest key bound the bucket backing accepts; it
// allocates MaxKey+1 slots up front.
const MaxBucketKey = 1 << 24

// Sentinel errors returned by every backing.
var (
	// ErrOutOfRangeKey indicates an element whose key lies outside [0, MaxKey].
	ErrOutOfRangeKey = errors.New("pq: key out of range")

	// ErrEmptyCollection indicates FindMin or ExtractMin on an empty queue.
	ErrEmptyCollection = errors.New("pq: queue is empty")

	// ErrInvalidHandle indicates a nil, foreign, already consumed or stale handle.
	ErrInvalidHandle = errors.New("pq: invalid handle")

	// ErrNonDecreasingKey indicates a DecreaseKey whose new key is not strictly
	// less than the key currently denoted by the handle.
	ErrNonDecreasingKey = errors.New("pq: new key must be strictly smaller")

	// ErrUnknownKind indicates a backing selector outside the enumerated tags.
	ErrUnknownKind = errors.New("pq: unknown backing kind")
)

// Kind selects one of the three backings.
// The numeric values match the selector tags used by the command-line harness.
type Kind int

const (
	// KindSorted is the sorted-sequence backing: O(1) FindMin, O(n) mutations.
	KindSorted Kind = iota + 1

	// KindTree is the unbalanced binary-search-tree backing: O(log n) average,
	// O(n) worst case on monotone input.
	KindTree

	// KindBucket is the bounded bucket-array backing: O(1) Insert,
	// FindMin/ExtractMin amortized O(1) and bounded by MaxKey.
	KindBucket
)

// Kinds lists every supported backing in tag order.
var Kinds = []Kind{KindSorted, KindTree, KindBucket}

// String returns the canonical lower-case name of the backing.
func (k Kind) String() string {
	switch k {
	case KindSorted:
		return "sorted"
	case KindTree:
		return "tree"
	case KindBucket:
		return "bucket"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Valid reports whether k is one of the enumerated tags.
func (k Kind) Valid() bool {
	return k >= KindSorted && k <= KindBucket
}

// ParseKind maps a backing name ("sorted", "tree", "bst", "bucket") or its
// numeric tag ("1", "2", "3") to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sorted", "sorted-stack", "1":
		return KindSorted, nil
	case "tree", "bst", "2":
		return KindTree, nil
	case "bucket", "3":
		return KindBucket, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// KeyFunc extracts the bounded integer key of an element.
type KeyFunc[T any] func(T) int

// CompareFunc is a total comparison of two elements. It must agree with the
// key order: key(a) < key(b) implies CompareFunc(a, b) < 0.
type CompareFunc[T any] func(a, b T) int

// Queue is the contract every backing implements.
//
// A Queue is not safe for concurrent use; callers that share an instance
// must serialise every call behind a single lock.
type Queue[T any] interface {
	// Insert adds elem and returns a handle denoting it.
	Insert(elem T) (*Handle[T], error)

	// FindMin returns a minimum element without mutating the queue.
	FindMin() (T, error)

	// ExtractMin removes and returns a minimum element, consuming its handle.
	ExtractMin() (T, error)

	// DecreaseKey replaces the member denoted by h with elem, whose key must be
	// strictly smaller. h is consumed; the handle of the new member is returned.
	DecreaseKey(h *Handle[T], elem T) (*Handle[T], error)

	// Merge returns a new queue of the receiver's kind holding both multisets.
	// The receiver is left untouched; other is drained on success. An element
	// of other outside the receiver's bound fails with ErrOutOfRangeKey before
	// anything is drained. A foreign Queue implementation is drained as it
	// goes, and the element that failed is lost.
	Merge(other Queue[T]) (Queue[T], error)

	// IsEmpty reports whether the queue holds no element.
	IsEmpty() bool

	// Len returns the number of members.
	Len() int

	// Clear removes every member and invalidates every outstanding handle.
	Clear()

	// Kind reports the backing of this queue.
	Kind() Kind
}

// Handle is a position capability returned by Insert and DecreaseKey.
// It is valid exactly while its element is a member of the issuing queue.
type Handle[T any] struct {
	owner *owner // issuing queue
	elem  T      // element denoted by the handle
	key   int    // key snapshot taken at insertion
	valid bool   // false once consumed by ExtractMin, DecreaseKey or Clear

	// index is the current position: the sequence index for the sorted
	// backing, the position inside the bucket for the bucket backing.
	index int
}

// Element returns the element the handle was issued for, or the zero value
// for a nil handle.
func (h *Handle[T]) Element() T {
	if h == nil {
		var zero T
		return zero
	}
	return h.elem
}

// Key returns the key snapshot taken when the element was inserted, or -1
// for a nil handle.
func (h *Handle[T]) Key() int {
	if h == nil {
		return -1
	}
	return h.key
}

// Valid reports whether the handle still denotes a live member.
func (h *Handle[T]) Valid() bool { return h != nil && h.valid }

// owner identifies one queue instance. Non-zero size keeps addresses distinct.
type owner struct {
	id uint64
}

var ownerSeq atomic.Uint64

func newOwner() *owner {
	return &owner{id: ownerSeq.Add(1)}
}

// Options configures a queue at construction.
//
// MaxKey  – inclusive key bound N; keys must lie in [0, MaxKey]. Default DefaultMaxKey.
// Compare – full element order refining the key order among equal keys.
//
//	Default compares keys only.
type Options[T any] struct {
	MaxKey  int
	Compare CompareFunc[T]
}

// Option represents a functional option for configuring a queue.
type Option[T any] func(*Options[T])

// WithMaxKey sets the inclusive key bound N.
// Panics on a negative bound, which would make every key invalid.
func WithMaxKey[T any](n int) Option[T] {
	return func(o *Options[T]) {
		if n < 0 {
			panic("pq: WithMaxKey requires n >= 0")
		}
		o.MaxKey = n
	}
}

// WithCompare sets the full element comparison used to order equal keys.
// Panics on nil.
func WithCompare[T any](c CompareFunc[T]) Option[T] {
	return func(o *Options[T]) {
		if c == nil {
			panic("pq: WithCompare requires a non-nil function")
		}
		o.Compare = c
	}
}

// DefaultOptions returns MaxKey=DefaultMaxKey and a key-only comparison.
func DefaultOptions[T any](key KeyFunc[T]) Options[T] {
	return Options[T]{
		MaxKey: DefaultMaxKey,
		Compare: func(a, b T) int {
			return cmp.Compare(key(a), key(b))
		},
	}
}
