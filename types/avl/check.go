package avl

import (
	"fmt"
)

// Validate checks the tree structure: ascending order of values, AVL balance
// of every node, parent links, cached heights and the values count.
// A non-nil error always wraps one of the ErrorTree* values.
func (t *Tree[T]) Validate() error {
	if t.root != nil && t.root.parent != nil {
		return fmt.Errorf("%w: root has parent %v", ErrorTreeParentMismatch, t.root.parent.value)
	}
	nodes, err := t.validateNode(t.root)
	if err != nil {
		return err
	}
	if nodes != t.count {
		return fmt.Errorf("%w: count %d, nodes %d", ErrorTreeCountMismatch, t.count, nodes)
	}
	var prev *Node[T]
	for it := t.Iterator(); it.Next(); {
		current := it.Current()
		if prev != nil && t.compare(prev.value, current.value) > 0 {
			return fmt.Errorf("%w: %v goes before %v", ErrorTreeUnordered, prev.value, current.value)
		}
		prev = current
	}
	return nil
}

// validateNode checks the subtree structure and returns amount of its nodes.
func (t *Tree[T]) validateNode(n *Node[T]) (int, error) {
	if n == nil {
		return 0, nil
	}
	for _, child := range [2]*Node[T]{n.left, n.right} {
		if child != nil && child.parent != n {
			return 0, fmt.Errorf("%w: child %v of %v", ErrorTreeParentMismatch, child.value, n.value)
		}
	}
	leftNodes, err := t.validateNode(n.left)
	if err != nil {
		return 0, err
	}
	rightNodes, err := t.validateNode(n.right)
	if err != nil {
		return 0, err
	}
	if height := n.calcHeight(); n.height != height {
		return 0, fmt.Errorf("%w: node %v has %d, want %d", ErrorTreeHeightMismatch, n.value, n.height, height)
	}
	if bf := n.balanceFactor(); bf < -1 || bf > 1 {
		return 0, fmt.Errorf("%w: node %v has balance factor %d", ErrorTreeUnbalanced, n.value, bf)
	}
	return 1 + leftNodes + rightNodes, nil
}
