package avl

// Iterator walks the tree in ascending order using an explicit stack of
// nodes instead of recursion. Iterator is not valid until Next() call.
// NOTE: Any modification of the tree invalidates the iterator.
type Iterator[T any] struct {
	stack   []*Node[T]
	current *Node[T]
}

// Iterator creates iterator starting at the smallest value of the tree.
func (t *Tree[T]) Iterator() Iterator[T] {
	it := Iterator[T]{
		stack: make([]*Node[T], 0, t.root.Height()),
	}
	it.pushLeft(t.root)
	return it
}

func (it *Iterator[T]) Current() *Node[T] {
	return it.current
}

func (it *Iterator[T]) Next() bool {
	if len(it.stack) == 0 {
		it.current = nil
		return false
	}
	last := len(it.stack) - 1
	it.current = it.stack[last]
	it.stack[last] = nil
	it.stack = it.stack[:last]
	it.pushLeft(it.current.right)
	return true
}

func (it *Iterator[T]) Valid() bool {
	return it.current != nil
}

// pushLeft pushes the node and its whole left spine onto the stack.
func (it *Iterator[T]) pushLeft(node *Node[T]) {
	for ; node != nil; node = node.left {
		it.stack = append(it.stack, node)
	}
}
