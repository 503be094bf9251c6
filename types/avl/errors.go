package avl

import (
	"errors"
)

// Errors reported by Tree.Validate.
var (
	ErrorTreeUnordered      = errors.New("tree values are out of order")
	ErrorTreeUnbalanced     = errors.New("tree node is unbalanced")
	ErrorTreeParentMismatch = errors.New("tree node parent link is broken")
	ErrorTreeHeightMismatch = errors.New("tree node height is stale")
	ErrorTreeCountMismatch  = errors.New("tree count does not match its nodes")
)
