package pq

import "fmt"

// base carries the state every backing shares: owner identity, key
// extraction, resolved options and the member count.
type base[T any] struct {
	owner *owner
	key   KeyFunc[T]
	opts  Options[T]
	size  int
}

func newBase[T any](key KeyFunc[T], opts Options[T]) base[T] {
	return base[T]{
		owner: newOwner(),
		key:   key,
		opts:  opts,
	}
}

// checkKey returns the key of elem or ErrOutOfRangeKey.
func (b *base[T]) checkKey(elem T) (int, error) {
	k := b.key(elem)
	if k < 0 || k > b.opts.MaxKey {
		return k, fmt.Errorf("%w: key=%d not in [0,%d]", ErrOutOfRangeKey, k, b.opts.MaxKey)
	}

	return k, nil
}

// checkHandle rejects nil, foreign and consumed handles.
func (b *base[T]) checkHandle(h *Handle[T]) error {
	switch {
	case h == nil:
		return fmt.Errorf("%w: nil handle", ErrInvalidHandle)
	case h.owner != b.owner:
		return fmt.Errorf("%w: handle issued by another queue", ErrInvalidHandle)
	case !h.valid:
		return fmt.Errorf("%w: handle already consumed", ErrInvalidHandle)
	}

	return nil
}

// checkDecrease validates a DecreaseKey request in contract order
// (handle, range, monotonicity) and returns the new key.
func (b *base[T]) checkDecrease(h *Handle[T], elem T) (int, error) {
	if err := b.checkHandle(h); err != nil {
		return 0, err
	}
	k, err := b.checkKey(elem)
	if err != nil {
		return 0, err
	}
	if k >= h.key {
		return 0, fmt.Errorf("%w: new key=%d, current key=%d", ErrNonDecreasingKey, k, h.key)
	}

	return k, nil
}

func (b *base[T]) newHandle(elem T, k int) *Handle[T] {
	return &Handle[T]{owner: b.owner, elem: elem, key: k, valid: true}
}

// less reports whether a orders strictly before b.
func (b *base[T]) less(x, y T) bool { return b.opts.Compare(x, y) < 0 }

func (b *base[T]) IsEmpty() bool { return b.size == 0 }

func (b *base[T]) Len() int { return b.size }

// snapshotter is implemented by every backing to list its members without
// mutating them.
type snapshotter[T any] interface {
	Queue[T]
	elements() []T
}

// mergeInto implements Merge for every backing: dst receives a copy of the
// receiver's members and then other's members. other is drained unless it is
// the receiver itself. When other is one of this package's queues, its keys
// are checked against the bound first, so a failed merge leaves it intact.
func mergeInto[T any](recv snapshotter[T], b *base[T], dst Queue[T], other Queue[T]) (Queue[T], error) {
	own := recv.elements()
	for _, e := range own {
		if _, err := dst.Insert(e); err != nil {
			return nil, fmt.Errorf("pq: merge: %w", err)
		}
	}
	if other == nil {
		return dst, nil
	}
	if other == Queue[T](recv) {
		// Self-merge: duplicate without draining the receiver.
		for _, e := range own {
			if _, err := dst.Insert(e); err != nil {
				return nil, fmt.Errorf("pq: merge: %w", err)
			}
		}
		return dst, nil
	}
	if snap, ok := other.(snapshotter[T]); ok {
		for _, e := range snap.elements() {
			if _, err := b.checkKey(e); err != nil {
				return nil, fmt.Errorf("pq: merge: %w", err)
			}
		}
	}
	for !other.IsEmpty() {
		e, err := other.ExtractMin()
		if err != nil {
			return nil, fmt.Errorf("pq: merge: %w", err)
		}
		if _, err = dst.Insert(e); err != nil {
			return nil, fmt.Errorf("pq: merge: %w", err)
		}
	}

	return dst, nil
}
