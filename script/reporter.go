package script

// Stats describes the tree state.
type Stats struct {
	Count    int    // values in the tree, duplicates included
	Distinct int    // distinct values in the tree
	Height   int    // tree height, 0 for empty tree
	Min      string // smallest value, empty for empty tree
	Max      string // greatest value, empty for empty tree
}

// Reporter receives results of executed operations.
// Values are passed in their canonical textual form.
//
//go:generate mockgen -destination=mocks/reporter.go -package=mockscript . Reporter
type Reporter interface {

	// Mutation handlers
	OnAdd(value string, count int)
	OnRemove(value string, removed bool, count int)
	OnClear()

	// Query handlers
	OnContains(value string, found bool)
	OnCount(count int)
	OnList(values []string)
	OnPrint(tree string)
	OnCheck(count int, height int)
	OnStats(stats Stats)

	// Errors handler
	OnError(op Op, err error)
}
