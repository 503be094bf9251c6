package avl

type balanceState int8

const (
	balanceBalanced   balanceState = 0
	balanceRightHeavy balanceState = 1
	balanceLeftHeavy  balanceState = -1
)

// Node is a single tree node. The value is immutable after construction,
// left and right children are owned by the node, parent is a back-link
// used only for upward walks.
type Node[T any] struct {
	value  T
	parent *Node[T]
	left   *Node[T]
	right  *Node[T]
	height int // 1 for a leaf, absent child counts as 0
}

// Value returns value of the tree node.
func (n *Node[T]) Value() T {
	return n.value
}

// Parent returns parent of the tree node or nil for the root.
func (n *Node[T]) Parent() *Node[T] {
	return n.parent
}

// Left returns left child of the tree node.
func (n *Node[T]) Left() *Node[T] {
	return n.left
}

// Right returns right child of the tree node.
func (n *Node[T]) Right() *Node[T] {
	return n.right
}

// Height returns height of the subtree rooted at the node.
func (n *Node[T]) Height() int {
	if n == nil {
		return 0
	}
	return n.height
}

func (n *Node[T]) MostLeft() *Node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *Node[T]) MostRight() *Node[T] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// Next returns in-order successor of the node or nil if the node is the last one.
func (n *Node[T]) Next() *Node[T] {
	if n.right != nil {
		return n.right.MostLeft()
	}
	for n.parent != nil && n == n.parent.right {
		n = n.parent
	}
	return n.parent
}

// Prev returns in-order predecessor of the node or nil if the node is the first one.
func (n *Node[T]) Prev() *Node[T] {
	if n.left != nil {
		return n.left.MostRight()
	}
	for n.parent != nil && n == n.parent.left {
		n = n.parent
	}
	return n.parent
}

func (n *Node[T]) setLeft(child *Node[T]) {
	n.left = child
	if child != nil {
		child.parent = n
	}
}

func (n *Node[T]) setRight(child *Node[T]) {
	n.right = child
	if child != nil {
		child.parent = n
	}
}

// replaceChild redirects whichever child slot points at old to point at child.
func (n *Node[T]) replaceChild(old, child *Node[T]) {
	switch old {
	case n.left:
		n.setLeft(child)
	case n.right:
		n.setRight(child)
	}
}

func (n *Node[T]) iteratePreOrder(f func(v *Node[T]) bool) bool {
	if f(n) {
		return true
	}
	if n.left != nil && n.left.iteratePreOrder(f) {
		return true
	}
	if n.right != nil && n.right.iteratePreOrder(f) {
		return true
	}
	return false
}

func (n *Node[T]) iteratePostOrder(f func(v *Node[T]) bool) bool {
	if n.left != nil && n.left.iteratePostOrder(f) {
		return true
	}
	if n.right != nil && n.right.iteratePostOrder(f) {
		return true
	}
	return f(n)
}

////////////////////////////////////////////////////////////////
// Balancing
////////////////////////////////////////////////////////////////

// balance restores the AVL condition at the node and returns the root of
// the subtree which took the node's place. The root pointer is updated
// when the rotated node had no parent.
func (n *Node[T]) balance(root **Node[T]) *Node[T] {
	n.updateHeight()
	switch n.state() {
	case balanceRightHeavy:
		if n.right != nil && n.right.balanceFactor() < 0 {
			return n.rotateLeftRight(root)
		}
		return n.rotateLeft(root)
	case balanceLeftHeavy:
		if n.left != nil && n.left.balanceFactor() > 0 {
			return n.rotateRightLeft(root)
		}
		return n.rotateRight(root)
	}
	return n
}

func (n *Node[T]) state() balanceState {
	leftHeight, rightHeight := n.leftHeight(), n.rightHeight()
	if leftHeight-rightHeight > 1 {
		return balanceLeftHeavy
	}
	if rightHeight-leftHeight > 1 {
		return balanceRightHeavy
	}
	return balanceBalanced
}

func (n *Node[T]) balanceFactor() int {
	return n.rightHeight() - n.leftHeight()
}

func (n *Node[T]) leftHeight() int {
	return n.left.Height()
}

func (n *Node[T]) rightHeight() int {
	return n.right.Height()
}

func (n *Node[T]) calcHeight() int {
	return 1 + max(n.leftHeight(), n.rightHeight())
}

func (n *Node[T]) updateHeight() {
	n.height = n.calcHeight()
}

////////////////////////////////////////////////////////////////
// Rotations
////////////////////////////////////////////////////////////////

// replaceRoot puts newRoot into the position held by the node: the parent's
// child slot, or the tree root if the node has no parent.
func (n *Node[T]) replaceRoot(newRoot *Node[T], root **Node[T]) {
	parent := n.parent
	if parent != nil {
		if parent.left == n {
			parent.left = newRoot
		} else if parent.right == n {
			parent.right = newRoot
		}
	} else if root != nil {
		*root = newRoot
	}
	newRoot.parent = parent
	n.parent = newRoot
}

//	a              b
//	 \            / \
//	  b    =>    a   c
//	   \
//	    c
func (n *Node[T]) rotateLeft(root **Node[T]) *Node[T] {
	newRoot := n.right
	n.replaceRoot(newRoot, root)
	n.setRight(newRoot.left)
	newRoot.setLeft(n)
	n.updateHeight()
	newRoot.updateHeight()
	return newRoot
}

//	    c          b
//	   /          / \
//	  b    =>    a   c
//	 /
//	a
func (n *Node[T]) rotateRight(root **Node[T]) *Node[T] {
	newRoot := n.left
	n.replaceRoot(newRoot, root)
	n.setLeft(newRoot.right)
	newRoot.setRight(n)
	n.updateHeight()
	newRoot.updateHeight()
	return newRoot
}

func (n *Node[T]) rotateLeftRight(root **Node[T]) *Node[T] {
	n.right.rotateRight(root)
	return n.rotateLeft(root)
}

func (n *Node[T]) rotateRightLeft(root **Node[T]) *Node[T] {
	n.left.rotateLeft(root)
	return n.rotateRight(root)
}
