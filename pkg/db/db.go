package db

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/zhangbiao2009/simple-sql-catalog/pkg/catalog"
	"github.com/zhangbiao2009/simple-sql-catalog/pkg/executor"
	"github.com/zhangbiao2009/simple-sql-catalog/pkg/parser"
	"github.com/zhangbiao2009/simple-sql-catalog/pkg/storage"
	"github.com/zhangbiao2009/simple-sql-catalog/pkg/types"
)

// DB is one catalog session. It owns the catalog for its whole lifetime and
// is safe for concurrent use.
type DB struct {
	id       string
	parser   parser.Parser
	catalog  catalog.Catalog
	storage  storage.Storage
	executor *executor.Executor
	logger   *slog.Logger
}

// Option configures a DB
type Option func(*DB)

// WithStorage sets the marker storage. The default keeps markers in memory.
func WithStorage(s storage.Storage) Option {
	return func(db *DB) {
		db.storage = s
	}
}

// WithLogger sets the session logger
func WithLogger(l *slog.Logger) Option {
	return func(db *DB) {
		db.logger = l
	}
}

// Result represents the outcome of one command
type Result struct {
	Success bool
	Error   error

	Statement types.StatementType
	TableName string

	// CREATE TABLE
	Table catalog.TableSchema

	// SELECT
	Columns    []string
	AllColumns bool
	Filter     *parser.Filter
}

// New creates a new session with an empty catalog
func New(opts ...Option) *DB {
	db := &DB{
		id:      uuid.NewString(),
		parser:  parser.NewParser(),
		catalog: catalog.NewCatalog(),
	}
	for _, opt := range opts {
		opt(db)
	}
	if db.storage == nil {
		db.storage = storage.NewMemoryStorage()
	}
	if db.logger == nil {
		db.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	db.logger = db.logger.With("session", db.id)
	db.executor = executor.NewExecutor(db.catalog, db.storage, db.logger)

	return db
}

// ID returns the session identifier
func (db *DB) ID() string {
	return db.id
}

// Catalog returns the session catalog
func (db *DB) Catalog() catalog.Catalog {
	return db.catalog
}

// Execute runs one command line and returns its result
func (db *DB) Execute(line string) Result {
	stmt, err := db.parser.Parse(line)
	if err != nil {
		db.logger.Debug("command rejected", "kind", types.KindOf(err).String(), "error", err)
		return Result{
			Success:   false,
			Error:     err,
			Statement: parser.Classify(line),
		}
	}

	execResult, err := db.executor.Execute(stmt)
	if err != nil {
		return Result{
			Success:   false,
			Error:     err,
			Statement: stmt.Type(),
		}
	}

	result := Result{
		Success:   execResult.Error() == nil,
		Error:     execResult.Error(),
		Statement: execResult.Statement(),
		TableName: execResult.TableName(),
		Table:     execResult.Table(),
	}
	result.Columns, result.AllColumns = execResult.Projection()
	if filter, ok := execResult.Filter(); ok {
		result.Filter = &filter
	}

	db.logger.Debug("command executed",
		"statement", result.Statement.String(),
		"table", result.TableName,
		"success", result.Success)

	return result
}

// FormatResult formats a result as the lines printed to the user
func FormatResult(result Result) string {
	var sb strings.Builder

	if !result.Success {
		fmt.Fprintf(&sb, "Error: %v\n", result.Error)
		return sb.String()
	}

	switch result.Statement {
	case types.StmtCreate:
		formatTable(&sb, result.Table)
	case types.StmtDrop:
		fmt.Fprintf(&sb, "Table '%s' has been dropped.\n", result.TableName)
	case types.StmtSelect:
		formatProjection(&sb, result)
	}

	return sb.String()
}

func formatTable(sb *strings.Builder, table catalog.TableSchema) {
	cols := table.Columns()

	fmt.Fprintf(sb, "Table: %s\n", table.Name())
	fmt.Fprintf(sb, "Columns: %d\n", len(cols))
	for i, col := range cols {
		fmt.Fprintf(sb, "Column %d:\n", i+1)
		fmt.Fprintf(sb, "  Name: %s\n", col.Name())
		fmt.Fprintf(sb, "  Type: %s\n", col.Type())
		fmt.Fprintf(sb, "  Dimension: %d\n", col.Size())
		fmt.Fprintf(sb, "  Default: %s\n", col.Default())
	}
}

func formatProjection(sb *strings.Builder, result Result) {
	fmt.Fprintf(sb, "Table: %s\n", result.TableName)
	if result.AllColumns {
		sb.WriteString("Columns: All\n")
	} else {
		fmt.Fprintf(sb, "Columns: %d\n", len(result.Columns))
	}
	for _, col := range result.Columns {
		fmt.Fprintf(sb, "Column: %s\n", col)
	}

	if result.Filter != nil {
		sb.WriteString("Filter: yes\n")
		fmt.Fprintf(sb, "Filter column: %s with value %s\n", result.Filter.Column, result.Filter.Value)
	} else {
		sb.WriteString("Filter: no\n")
	}
}
