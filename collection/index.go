package collection

// Index keeps rows of a collection reachable by some of their fields. Indexes
// are guarded by the collection mutex.
type Index interface {
	AddRow(row *Row) error
	RemoveRow(row *Row) error
	Traverse(reverse bool, f func(row *Row) bool)
	GetType() string
	GetOptions() interface{}
}

const (
	IndexTypeMap   = "map"
	IndexTypeBtree = "btree"
)
