package types

// ID type aliases give the string identities used across the grid a name of
// their own, so a column id can't silently be passed where a grid name is expected.

// ColumnID identifies a column independently of its current index
type ColumnID string

// GridName identifies a persisted grid layout (usually the absolute path of its data file)
type GridName string

// String returns the raw column id
func (id ColumnID) String() string {
	return string(id)
}

// String returns the raw grid name
func (g GridName) String() string {
	return string(g)
}
