package pq

// nilNode marks an absent child or an empty tree.
const nilNode int32 = -1

// treeNode is one arena slot: a member handle and two child indices.
type treeNode[T any] struct {
	h           *Handle[T]
	left, right int32
}

// treeQueue is an unbalanced binary search tree stored in an arena of nodes
// addressed by stable int32 indices. Ties route left on insertion, so every
// node satisfies left <= node <= right once successors have been promoted
// by deletions.
//
// A freed slot is pushed on the free list only after the handle it held was
// consumed or moved to another slot; handles never record slot indices, so
// slot reuse cannot revive a stale handle.
//
// Complexity:
//
//   - Insert, FindMin, ExtractMin, DecreaseKey: O(h), h = tree height;
//     O(log n) on random input, O(n) on monotone input (no rebalancing).
type treeQueue[T any] struct {
	base[T]
	nodes []treeNode[T]
	free  []int32
	root  int32
}

func newTree[T any](key KeyFunc[T], opts Options[T]) *treeQueue[T] {
	return &treeQueue[T]{base: newBase(key, opts), root: nilNode}
}

// Kind returns KindTree.
func (q *treeQueue[T]) Kind() Kind { return KindTree }

func (q *treeQueue[T]) alloc(h *Handle[T]) int32 {
	n := treeNode[T]{h: h, left: nilNode, right: nilNode}
	if last := len(q.free) - 1; last >= 0 {
		i := q.free[last]
		q.free = q.free[:last]
		q.nodes[i] = n
		return i
	}
	q.nodes = append(q.nodes, n)

	return int32(len(q.nodes) - 1)
}

// release returns slot i to the free list. The caller owns the fate of the
// handle that lived there.
func (q *treeQueue[T]) release(i int32) {
	q.nodes[i] = treeNode[T]{left: nilNode, right: nilNode}
	q.free = append(q.free, i)
}

// Insert descends by comparison, routing ties (cmp <= 0) left.
func (q *treeQueue[T]) Insert(elem T) (*Handle[T], error) {
	k, err := q.checkKey(elem)
	if err != nil {
		return nil, err
	}
	h := q.newHandle(elem, k)
	q.link(h)

	return h, nil
}

func (q *treeQueue[T]) link(h *Handle[T]) {
	n := q.alloc(h)
	q.size++
	if q.root == nilNode {
		q.root = n
		return
	}
	cur := q.root
	for {
		if q.opts.Compare(h.elem, q.nodes[cur].h.elem) <= 0 {
			if q.nodes[cur].left == nilNode {
				q.nodes[cur].left = n
				return
			}
			cur = q.nodes[cur].left
		} else {
			if q.nodes[cur].right == nilNode {
				q.nodes[cur].right = n
				return
			}
			cur = q.nodes[cur].right
		}
	}
}

func (q *treeQueue[T]) leftmost(n int32) int32 {
	for q.nodes[n].left != nilNode {
		n = q.nodes[n].left
	}

	return n
}

// FindMin follows left children from the root.
func (q *treeQueue[T]) FindMin() (T, error) {
	if q.size == 0 {
		var zero T
		return zero, ErrEmptyCollection
	}

	return q.nodes[q.leftmost(q.root)].h.elem, nil
}

// ExtractMin deletes the left-most node. It has no left child, so deletion
// splices its right subtree into its place.
func (q *treeQueue[T]) ExtractMin() (T, error) {
	if q.size == 0 {
		var zero T
		return zero, ErrEmptyCollection
	}
	h := q.nodes[q.leftmost(q.root)].h
	q.root = q.removeLeftmost(q.root)
	h.valid = false
	q.size--

	return h.elem, nil
}

// removeLeftmost deletes the left-most node of subtree n and returns the new
// subtree root.
func (q *treeQueue[T]) removeLeftmost(n int32) int32 {
	if q.nodes[n].left == nilNode {
		r := q.nodes[n].right
		q.release(n)
		return r
	}
	q.nodes[n].left = q.removeLeftmost(q.nodes[n].left)

	return n
}

// remove deletes the node holding target from subtree n, searching by
// comparison against the target's element. On a tie the node is told apart
// by handle identity and both subtrees are searched, since equal elements
// may sit on either side of a promoted successor.
func (q *treeQueue[T]) remove(n int32, target *Handle[T]) (int32, bool) {
	if n == nilNode {
		return nilNode, false
	}
	c := q.opts.Compare(target.elem, q.nodes[n].h.elem)
	switch {
	case c < 0:
		l, ok := q.remove(q.nodes[n].left, target)
		q.nodes[n].left = l
		return n, ok
	case c > 0:
		r, ok := q.remove(q.nodes[n].right, target)
		q.nodes[n].right = r
		return n, ok
	}
	if q.nodes[n].h != target {
		l, ok := q.remove(q.nodes[n].left, target)
		q.nodes[n].left = l
		if ok {
			return n, true
		}
		r, ok := q.remove(q.nodes[n].right, target)
		q.nodes[n].right = r
		return n, ok
	}

	return q.unlink(n), true
}

// unlink deletes node n and returns the root of the subtree replacing it.
func (q *treeQueue[T]) unlink(n int32) int32 {
	node := q.nodes[n]
	if node.left == nilNode {
		q.release(n)
		return node.right
	}
	if node.right == nilNode {
		q.release(n)
		return node.left
	}
	// Two children: promote the in-order successor, then delete its old slot.
	s := q.leftmost(node.right)
	q.nodes[n].h = q.nodes[s].h
	q.nodes[n].right = q.removeLeftmost(node.right)

	return n
}

// DecreaseKey deletes the old member by its key snapshot and inserts elem
// as an unrelated fresh node.
func (q *treeQueue[T]) DecreaseKey(h *Handle[T], elem T) (*Handle[T], error) {
	k, err := q.checkDecrease(h, elem)
	if err != nil {
		return nil, err
	}
	root, ok := q.remove(q.root, h)
	if !ok {
		return nil, ErrInvalidHandle
	}
	q.root = root
	h.valid = false
	q.size--

	nh := q.newHandle(elem, k)
	q.link(nh)

	return nh, nil
}

// Merge rebuilds the receiver's members in order into a fresh tree and
// drains other into it.
func (q *treeQueue[T]) Merge(other Queue[T]) (Queue[T], error) {
	return mergeInto[T](q, &q.base, newTree(q.key, q.opts), other)
}

// Clear drops the arena and invalidates every handle.
func (q *treeQueue[T]) Clear() {
	for i := range q.nodes {
		if h := q.nodes[i].h; h != nil {
			h.valid = false
		}
	}
	q.nodes = nil
	q.free = nil
	q.root = nilNode
	q.size = 0
}

// elements lists the members in order (in-order traversal).
func (q *treeQueue[T]) elements() []T {
	out := make([]T, 0, q.size)
	stack := make([]int32, 0, 16)
	n := q.root
	for n != nilNode || len(stack) > 0 {
		for n != nilNode {
			stack = append(stack, n)
			n = q.nodes[n].left
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, q.nodes[n].h.elem)
		n = q.nodes[n].right
	}

	return out
}

// height returns the number of nodes on the longest root-to-leaf path.
func (q *treeQueue[T]) height() int {
	var walk func(n int32) int
	walk = func(n int32) int {
		if n == nilNode {
			return 0
		}
		return 1 + max(walk(q.nodes[n].left), walk(q.nodes[n].right))
	}

	return walk(q.root)
}
