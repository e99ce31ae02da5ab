package parser

import (
	"github.com/zhangbiao2009/simple-sql-catalog/pkg/types"
)

// Statement implementations

// createTableStatement implements CreateTableStatement
type createTableStatement struct {
	tableName string
	columns   []ColumnDefinition
}

func (s *createTableStatement) Type() types.StatementType {
	return types.StmtCreate
}

func (s *createTableStatement) TableName() string {
	return s.tableName
}

func (s *createTableStatement) Columns() []ColumnDefinition {
	return s.columns
}

// dropTableStatement implements DropTableStatement
type dropTableStatement struct {
	tableName string
}

func (s *dropTableStatement) Type() types.StatementType {
	return types.StmtDrop
}

func (s *dropTableStatement) TableName() string {
	return s.tableName
}

// insertStatement implements InsertStatement
type insertStatement struct {
	text string
}

func (s *insertStatement) Type() types.StatementType {
	return types.StmtInsert
}

func (s *insertStatement) Text() string {
	return s.text
}

// selectStatement implements SelectStatement
type selectStatement struct {
	tableName  string
	allColumns bool
	columns    []string
	filter     *Filter
}

func (s *selectStatement) Type() types.StatementType {
	return types.StmtSelect
}

func (s *selectStatement) TableName() string {
	return s.tableName
}

func (s *selectStatement) AllColumns() bool {
	return s.allColumns
}

func (s *selectStatement) Columns() []string {
	return s.columns
}

func (s *selectStatement) WhereClause() (Filter, bool) {
	if s.filter == nil {
		return Filter{}, false
	}
	return *s.filter, true
}

// Column definition implementation
type columnDefinition struct {
	name         string
	dataType     string
	size         int
	defaultValue string
}

func (c *columnDefinition) Name() string {
	return c.name
}

func (c *columnDefinition) Type() string {
	return c.dataType
}

func (c *columnDefinition) Size() int {
	return c.size
}

func (c *columnDefinition) Default() string {
	return c.defaultValue
}
