package avl

import (
	"iter"
	"sync"

	"gopkg.in/typ.v4"
)

// Tree is a binary search tree (BST) for any totally ordered type,
// implemented as an AVL tree (Adelson-Velsky and Landis tree), a type of self-balancing BST.
// This guarantees O(log n) operations on insertion, searching, and deletion.
//
// Values comparing equal are kept (multiset semantics): a duplicate is always
// routed to the right of existing equal values.
// NOTE: Not thread-safe.
type Tree[T any] struct {
	compare func(a, b T) int
	pool    *sync.Pool
	root    *Node[T]
	count   int
}

////////////////////////////////////////////////////////////////

// NewOrderedTree creates a new AVL tree using a default comparator function
// for any ordered type (ints, uints, floats, strings).
func NewOrderedTree[T typ.Ordered]() Tree[T] {
	return NewTree[T](typ.Compare[T])
}

// NewTree creates a new AVL tree using a comparator function that is
// expected to return 0 if a == b, -1 if a < b, and +1 if a > b.
func NewTree[T any](compare func(a, b T) int) Tree[T] {
	return Tree[T]{
		compare: compare,
	}
}

// NewTreePooled creates a new AVL tree using a comparator function that is
// expected to return 0 if a == b, -1 if a < b, and +1 if a > b.
// Pooled tree uses given pool for nodes creating/releasing,
// the pool must produce *Node[T] values.
func NewTreePooled[T any](compare func(a, b T) int, pool *sync.Pool) Tree[T] {
	return Tree[T]{
		compare: compare,
		pool:    pool,
	}
}

////////////////////////////////////////////////////////////////

// Count returns the amount of values in the tree.
func (t *Tree[T]) Count() int {
	return t.count
}

// Height returns height of the tree, 0 for an empty tree.
func (t *Tree[T]) Height() int {
	return t.root.Height()
}

// Root returns the root node or nil if the tree is empty.
func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

// Contains checks if given value exists in the tree by iterating the binary search tree.
func (t *Tree[T]) Contains(value T) bool {
	return t.Find(value) != nil
}

// Find finds the first node with given value on the search path from the root.
func (t *Tree[T]) Find(value T) *Node[T] {
	current := t.root
	for current != nil {
		cmp := t.compare(current.value, value)
		switch {
		case cmp > 0:
			current = current.left
		case cmp < 0:
			current = current.right
		default:
			return current
		}
	}
	return nil
}

// Add inserts given value to the tree. Duplicates are accepted and placed
// to the right of values comparing equal.
func (t *Tree[T]) Add(value T) *Node[T] {
	node := t.newNode(value)
	t.count++
	if t.root == nil {
		t.root = node
		return node
	}
	current := t.root
	for {
		if t.compare(value, current.value) < 0 {
			if current.left == nil {
				current.setLeft(node)
				break
			}
			current = current.left
		} else {
			if current.right == nil {
				current.setRight(node)
				break
			}
			current = current.right
		}
	}
	t.rebalance(current)
	return node
}

// Remove removes a node with given value from the tree.
// Returns false if the value is not found.
func (t *Tree[T]) Remove(value T) bool {
	node := t.Find(value)
	if node == nil {
		return false
	}
	t.removeNode(node)
	return true
}

// RemoveNode removes given node which must belong to the tree.
func (t *Tree[T]) RemoveNode(node *Node[T]) {
	t.removeNode(node)
}

func (t *Tree[T]) removeNode(node *Node[T]) {
	parent := node.parent
	var replacement, rebalanceFrom *Node[T]
	switch {
	case node.right == nil:
		// Left child (possibly nil) takes the node's place
		replacement = node.left
		rebalanceFrom = parent
	case node.right.left == nil:
		// Right child takes the node's place and inherits its left subtree
		replacement = node.right
		replacement.setLeft(node.left)
		rebalanceFrom = replacement
	default:
		// In-order successor is detached and takes the node's place
		successor := node.right.left.MostLeft()
		rebalanceFrom = successor.parent
		successor.parent.setLeft(successor.right)
		successor.setLeft(node.left)
		successor.setRight(node.right)
		replacement = successor
	}
	if parent == nil {
		t.root = replacement
		if replacement != nil {
			replacement.parent = nil
		}
	} else {
		parent.replaceChild(node, replacement)
	}
	t.count--
	t.releaseNode(node)
	t.rebalance(rebalanceFrom)
}

// rebalance walks from the node up to the root updating heights and rotating
// every ancestor violating the AVL condition.
func (t *Tree[T]) rebalance(node *Node[T]) {
	for node != nil {
		node = node.balance(&t.root).parent
	}
}

// MostLeft returns the node with the smallest value.
func (t *Tree[T]) MostLeft() *Node[T] {
	if t.root == nil {
		return nil
	}
	return t.root.MostLeft()
}

// MostRight returns the node with the greatest value.
func (t *Tree[T]) MostRight() *Node[T] {
	if t.root == nil {
		return nil
	}
	return t.root.MostRight()
}

// Clear will reset this tree to an empty tree.
func (t *Tree[T]) Clear() {
	if t.root != nil && t.pool != nil {
		t.root.iteratePostOrder(func(node *Node[T]) bool {
			t.releaseNode(node)
			return false
		})
	}
	t.root = nil
	t.count = 0
}

// Values returns a snapshot of all values in ascending order.
func (t *Tree[T]) Values() []T {
	values := make([]T, 0, t.count)
	for it := t.Iterator(); it.Next(); {
		values = append(values, it.Current().value)
	}
	return values
}

// All returns an ascending sequence of the tree values.
// Every call to the sequence starts a new traversal from the root.
// The tree must not be modified while the sequence is consumed.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := t.Iterator(); it.Next(); {
			if !yield(it.Current().value) {
				return
			}
		}
	}
}

// IteratePreOrder will iterate all values in this tree by first visiting each
// node's value, followed by the its left branch, and then its right branch.
// Iteration stops once f returns true.
//
// This is useful when copying binary search trees, as inserting back in this
// order will guarantee the clone will have the exact same layout.
func (t *Tree[T]) IteratePreOrder(f func(value T) bool) {
	if t.root == nil {
		return
	}
	t.root.iteratePreOrder(func(v *Node[T]) bool {
		return f(v.value)
	})
}

// IterateInOrder will iterate all values in this tree by first visiting each
// node's left branch, followed by the its own value, and then its right branch.
// Iteration stops once f returns true.
//
// This is useful when reading a tree's values in order, as this guarantees
// iterating them in a sorted order.
func (t *Tree[T]) IterateInOrder(f func(value T) bool) {
	for it := t.Iterator(); it.Next(); {
		if f(it.Current().value) {
			return
		}
	}
}

// IteratePostOrder will iterate all values in this tree by first visiting each
// node's left branch, followed by the its right branch, and then its own value.
// Iteration stops once f returns true.
//
// This is useful when deleting values from a tree, as this guarantees to always
// delete leaf nodes.
func (t *Tree[T]) IteratePostOrder(f func(value T) bool) {
	if t.root == nil {
		return
	}
	t.root.iteratePostOrder(func(v *Node[T]) bool {
		return f(v.value)
	})
}

func (t *Tree[T]) newNode(value T) *Node[T] {
	if t.pool != nil {
		node := t.pool.Get().(*Node[T])
		node.value = value
		node.height = 1
		return node
	}
	return &Node[T]{
		value:  value,
		height: 1,
	}
}

func (t *Tree[T]) releaseNode(node *Node[T]) {
	// Clean up to drop references kept by the node
	*node = Node[T]{}
	if t.pool != nil {
		t.pool.Put(node)
	}
}
