package schema

// Schema describes every declared table. It is built from the model
// declarations themselves, never from a live database.
type Schema struct {
	Tables []Table
}

// Table describes one declared table.
type Table struct {
	Name       string
	Columns    []Column
	Relations  []Relation
	Indexes    []Index
	PrimaryKey []string
}

// Column describes a table column.
type Column struct {
	Name          string
	Type          string
	Nullable      bool
	Default       *string
	AutoIncrement bool
}

// Relation describes an ORM relation edge consumed by the query layer for
// eager loading. FK-backed edges carry the declared OnDelete action.
type Relation struct {
	Name         string // relation field name, e.g. Parent, Children
	Kind         string // belongs_to, has_one, has_many
	TargetTable  string
	TargetColumn string
	SourceColumn string
	OnDelete     string
}

// Index describes a declared index.
type Index struct {
	Name     string
	Columns  []string
	IsUnique bool
}
