package catalog

import (
	"sync"

	"github.com/zhangbiao2009/simple-sql-catalog/pkg/parser"
	"github.com/zhangbiao2009/simple-sql-catalog/pkg/types"
)

// MemoryCatalog is an in-memory implementation of the Catalog interface.
// Tables are kept in creation order.
type MemoryCatalog struct {
	tables []*memoryTableSchema
	mu     sync.RWMutex
}

// NewCatalog creates a new memory catalog
func NewCatalog() Catalog {
	return &MemoryCatalog{}
}

// CreateTable creates a new table schema
func (c *MemoryCatalog) CreateTable(name string, columns []parser.ColumnDefinition) (TableSchema, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.indexOf(name) >= 0 {
		return nil, types.NewError(types.KindAlreadyExists, "Table '%s' already exists.", name)
	}

	schema := &memoryTableSchema{
		name:    name,
		columns: append([]parser.ColumnDefinition(nil), columns...),
	}
	c.tables = append(c.tables, schema)

	return schema.snapshot(), nil
}

// DropTable removes a table schema
func (c *MemoryCatalog) DropTable(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(name)
	if i < 0 {
		return types.NewError(types.KindNotFound, "Table '%s' does not exist.", name)
	}

	c.tables = append(c.tables[:i], c.tables[i+1:]...)
	return nil
}

// GetTable retrieves a table schema
func (c *MemoryCatalog) GetTable(name string) (TableSchema, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := c.indexOf(name)
	if i < 0 {
		return nil, false
	}
	return c.tables[i].snapshot(), true
}

// ListTables lists all available tables
func (c *MemoryCatalog) ListTables() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	tableNames := make([]string, 0, len(c.tables))
	for _, t := range c.tables {
		tableNames = append(tableNames, t.name)
	}

	return tableNames
}

// Len returns the number of tables
func (c *MemoryCatalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.tables)
}

// indexOf must be called with c.mu held
func (c *MemoryCatalog) indexOf(name string) int {
	for i, t := range c.tables {
		if t.name == name {
			return i
		}
	}
	return -1
}

// memoryTableSchema is an in-memory implementation of the TableSchema interface
type memoryTableSchema struct {
	name    string
	columns []parser.ColumnDefinition
}

// snapshot returns a copy that shares no slice with the catalog
func (s *memoryTableSchema) snapshot() *memoryTableSchema {
	return &memoryTableSchema{
		name:    s.name,
		columns: append([]parser.ColumnDefinition(nil), s.columns...),
	}
}

// Name returns the table name
func (s *memoryTableSchema) Name() string {
	return s.name
}

// Columns returns all column definitions
func (s *memoryTableSchema) Columns() []parser.ColumnDefinition {
	return s.columns
}

// ColumnNames returns the column names in schema order
func (s *memoryTableSchema) ColumnNames() []string {
	names := make([]string, 0, len(s.columns))
	for _, col := range s.columns {
		names = append(names, col.Name())
	}
	return names
}

// GetColumn retrieves a column by name
func (s *memoryTableSchema) GetColumn(name string) (parser.ColumnDefinition, bool) {
	for _, col := range s.columns {
		if col.Name() == name {
			return col, true
		}
	}
	return nil, false
}

// HasColumn checks if a column exists
func (s *memoryTableSchema) HasColumn(name string) bool {
	_, found := s.GetColumn(name)
	return found
}
