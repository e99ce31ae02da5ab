package parser

import (
	"github.com/zhangbiao2009/simple-sql-catalog/pkg/types"
)

// Parser is responsible for turning one command line into a Statement
type Parser interface {
	Parse(line string) (Statement, error)
}

// Statement represents a parsed command
type Statement interface {
	Type() types.StatementType
}

// CreateTableStatement represents a CREATE TABLE statement
type CreateTableStatement interface {
	Statement
	TableName() string
	Columns() []ColumnDefinition
}

// DropTableStatement represents a DROP TABLE statement
type DropTableStatement interface {
	Statement
	TableName() string
}

// InsertStatement represents an INSERT INTO command. It is recognized but never parsed.
type InsertStatement interface {
	Statement
	Text() string
}

// SelectStatement represents a SELECT statement
type SelectStatement interface {
	Statement
	TableName() string
	// AllColumns reports whether the projection was ALL
	AllColumns() bool
	// Columns returns the requested column names when AllColumns is false
	Columns() []string
	WhereClause() (Filter, bool)
}

// ColumnDefinition represents a column definition in CREATE TABLE
type ColumnDefinition interface {
	Name() string
	// Type is free text, never interpreted
	Type() string
	Size() int
	// Default keeps the source text verbatim, quotes included
	Default() string
}

// Filter is the single equality predicate of a WHERE clause.
// Value is compared as an opaque string.
type Filter struct {
	Column string
	Value  string
}
