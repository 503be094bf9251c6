package script

// OpKind is a kind of operation applied to the tree.
type OpKind string

const (
	OpAdd      OpKind = "add"
	OpRemove   OpKind = "remove"
	OpContains OpKind = "contains"
	OpCount    OpKind = "count"
	OpList     OpKind = "list"
	OpPrint    OpKind = "print"
	OpCheck    OpKind = "check"
	OpStats    OpKind = "stats"
	OpClear    OpKind = "clear"
)

// Valid reports whether the kind is a known operation.
func (k OpKind) Valid() bool {
	switch k {
	case OpAdd, OpRemove, OpContains, OpCount, OpList, OpPrint, OpCheck, OpStats, OpClear:
		return true
	}
	return false
}

// TakesValues reports whether the operation is applied to a list of values.
func (k OpKind) TakesValues() bool {
	switch k {
	case OpAdd, OpRemove, OpContains:
		return true
	}
	return false
}

// Op is a single script operation.
// Line is a 1-based position of the operation in the script source, 0 if unknown.
type Op struct {
	Kind   OpKind
	Values []string
	Line   int
}

// Script is a parsed list of operations with the key type they apply to.
// Empty Type means the caller decides.
type Script struct {
	Type KeyType
	Ops  []Op
}
