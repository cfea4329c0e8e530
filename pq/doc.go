// Package pq provides a bounded-key priority queue with three interchangeable
// backings behind one contract.
//
// Overview:
//
//   - Elements are arbitrary values ordered by an integer key in [0, N],
//     where N is fixed at construction (WithMaxKey, default DefaultMaxKey).
//   - Insert returns a *Handle that later addresses the element for
//     DecreaseKey. A handle is valid exactly while its element is a member of
//     the queue that issued it.
//   - DecreaseKey is delete-old-then-insert-new: the old handle is consumed
//     and the handle of the fresh member is returned.
//   - Merge builds a new queue; the receiver is never mutated, the argument
//     is drained only after all its keys are known to fit.
//
// Backings:
//
//	KindSorted – ordered slice, every handle tracks its index.
//	             FindMin O(1); Insert/ExtractMin/DecreaseKey O(n).
//	KindTree   – unbalanced BST in a node arena, ties routed left.
//	             O(log n) average, O(n) on monotone input.
//	KindBucket – N+1 buckets indexed by key with a lowest-bucket cursor.
//	             Insert/DecreaseKey O(1); FindMin/ExtractMin bounded by N.
//
// Ordering among equal keys:
//
//   - By default equal keys are interchangeable. WithCompare installs a full
//     comparison that every backing honours, including a linear scan of the
//     minimum bucket in KindBucket. With a strict total order, all three
//     backings extract elements in exactly the same sequence.
//
// Error handling (sentinel errors, match with errors.Is):
//
//   - ErrOutOfRangeKey:    Insert/DecreaseKey key outside [0, N], Merge with
//     an element that does not fit N, or a bucket queue with
//     N > MaxBucketKey.
//   - ErrEmptyCollection:  FindMin/ExtractMin on an empty queue.
//   - ErrInvalidHandle:    nil, foreign, consumed or stale handle.
//   - ErrNonDecreasingKey: DecreaseKey with a key not strictly smaller.
//   - ErrUnknownKind:      New with a selector outside the Kind tags.
//
// Thread safety:
//
//   - Queues are not safe for concurrent use. Serialise every call on a
//     shared instance behind one mutex; the handle model relies on a total
//     order of operations.
package pq
