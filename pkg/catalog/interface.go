package catalog

import (
	"github.com/zhangbiao2009/simple-sql-catalog/pkg/parser"
)

// Catalog manages table schemas
type Catalog interface {
	// CreateTable creates a new table schema, failing with types.ErrAlreadyExists
	// if the name is taken
	CreateTable(name string, columns []parser.ColumnDefinition) (TableSchema, error)

	// DropTable removes a table schema, failing with types.ErrNotFound
	DropTable(name string) error

	// GetTable retrieves a table schema
	GetTable(name string) (TableSchema, bool)

	// ListTables lists table names in creation order
	ListTables() []string

	// Len returns the number of tables
	Len() int
}

// TableSchema represents a table's schema
type TableSchema interface {
	// Name returns the table name
	Name() string

	// Columns returns all column definitions in schema order
	Columns() []parser.ColumnDefinition

	// ColumnNames returns the column names in schema order
	ColumnNames() []string

	// GetColumn retrieves a column by name
	GetColumn(name string) (parser.ColumnDefinition, bool)

	// HasColumn checks if a column exists
	HasColumn(name string) bool
}
