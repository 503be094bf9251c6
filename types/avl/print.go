package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	branchRoot branch = iota
	branchLeft
	branchRight
)

// Fprint writes an ASCII graphic representation of the tree turned
// sideways: right subtrees are above their parent, left ones below.
func (t *Tree[T]) Fprint(w io.Writer) error {
	if t.root == nil {
		_, err := fmt.Fprintln(w, "<empty>")
		return err
	}
	return fprintNode(w, t.root, "", branchRoot)
}

func fprintNode[T any](w io.Writer, n *Node[T], prefix string, br branch) error {
	if n.right != nil {
		indent := "       "
		if br == branchLeft {
			indent = "|      "
		}
		if err := fprintNode(w, n.right, prefix+indent, branchRight); err != nil {
			return err
		}
	}
	var edge string
	switch br {
	case branchRoot:
		edge = "|------+ "
	case branchLeft:
		edge = "\\------+ "
	case branchRight:
		edge = "/------+ "
	}
	if _, err := fmt.Fprintf(w, "%s%s%v (h=%d)\n", prefix, edge, n.value, n.height); err != nil {
		return err
	}
	if n.left != nil {
		indent := "       "
		if br == branchRight {
			indent = "|      "
		}
		if err := fprintNode(w, n.left, prefix+indent, branchLeft); err != nil {
			return err
		}
	}
	return nil
}
