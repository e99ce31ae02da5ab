package executor

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/zhangbiao2009/simple-sql-catalog/pkg/catalog"
	"github.com/zhangbiao2009/simple-sql-catalog/pkg/parser"
	"github.com/zhangbiao2009/simple-sql-catalog/pkg/storage"
	"github.com/zhangbiao2009/simple-sql-catalog/pkg/types"
)

// Result represents the result of executing a statement
type Result interface {
	// Type returns the type of the result
	Type() types.ResultType

	// Statement returns the statement type that produced the result
	Statement() types.StatementType

	// TableName returns the table the statement addressed
	TableName() string

	// Table returns the created table's schema for CREATE TABLE
	Table() catalog.TableSchema

	// Projection returns the SELECT column list and whether it was ALL
	Projection() (columns []string, all bool)

	// Filter returns the SELECT filter, if any
	Filter() (parser.Filter, bool)

	// Error returns any error that occurred during execution
	Error() error
}

// Executor executes parsed statements against a catalog
type Executor struct {
	catalog catalog.Catalog
	storage storage.Storage
	logger  *slog.Logger
}

// NewExecutor creates a new executor with the given catalog and storage
func NewExecutor(catalog catalog.Catalog, storage storage.Storage, logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Executor{
		catalog: catalog,
		storage: storage,
		logger:  logger,
	}
}

// Execute executes a statement. Command failures are reported through
// Result.Error; the returned error is only for unsupported statements.
func (e *Executor) Execute(stmt parser.Statement) (Result, error) {
	switch stmt.Type() {
	case types.StmtCreate:
		return e.executeCreateTable(stmt.(parser.CreateTableStatement)), nil
	case types.StmtDrop:
		return e.executeDropTable(stmt.(parser.DropTableStatement)), nil
	case types.StmtInsert:
		return e.executeInsert(stmt.(parser.InsertStatement)), nil
	case types.StmtSelect:
		return e.executeSelect(stmt.(parser.SelectStatement)), nil
	default:
		return nil, fmt.Errorf("unsupported statement type: %v", stmt.Type())
	}
}

// executeCreateTable executes a CREATE TABLE statement
func (e *Executor) executeCreateTable(stmt parser.CreateTableStatement) Result {
	schema, err := e.catalog.CreateTable(stmt.TableName(), stmt.Columns())
	if err != nil {
		return errorResult(types.StmtCreate, stmt.TableName(), err)
	}

	// The marker is a courtesy artifact; failing to write it does not undo the table
	if err := e.storage.CreateTable(stmt.TableName()); err != nil {
		e.logger.Warn("marker not created", "table", stmt.TableName(), "error", err)
	}

	return &executionResult{
		resultType: types.ResultTable,
		statement:  types.StmtCreate,
		tableName:  stmt.TableName(),
		table:      schema,
	}
}

// executeDropTable executes a DROP TABLE statement
func (e *Executor) executeDropTable(stmt parser.DropTableStatement) Result {
	if err := e.catalog.DropTable(stmt.TableName()); err != nil {
		return errorResult(types.StmtDrop, stmt.TableName(), err)
	}

	return &executionResult{
		resultType: types.ResultSuccess,
		statement:  types.StmtDrop,
		tableName:  stmt.TableName(),
	}
}

// executeInsert accepts an INSERT INTO command without looking at it
func (e *Executor) executeInsert(stmt parser.InsertStatement) Result {
	e.logger.Debug("insert ignored", "command", stmt.Text())

	return &executionResult{
		resultType: types.ResultNone,
		statement:  types.StmtInsert,
	}
}

// executeSelect resolves a SELECT against the table schema. No rows exist,
// so the filter is only described.
func (e *Executor) executeSelect(stmt parser.SelectStatement) Result {
	tableName := stmt.TableName()

	schema, found := e.catalog.GetTable(tableName)
	if !found {
		return errorResult(types.StmtSelect, tableName,
			types.NewError(types.KindNotFound, "Table '%s' does not exist.", tableName))
	}

	result := &executionResult{
		resultType: types.ResultProjection,
		statement:  types.StmtSelect,
		tableName:  tableName,
		table:      schema,
		allColumns: stmt.AllColumns(),
	}

	if stmt.AllColumns() {
		result.columns = schema.ColumnNames()
	} else {
		// Requested names are echoed as given, not checked against the schema
		result.columns = stmt.Columns()
	}

	if filter, ok := stmt.WhereClause(); ok {
		result.filter = &filter
	}

	return result
}

func errorResult(stmt types.StatementType, tableName string, err error) Result {
	return &executionResult{
		resultType: types.ResultError,
		statement:  stmt,
		tableName:  tableName,
		err:        err,
	}
}

// executionResult is the result of executing a statement
type executionResult struct {
	resultType types.ResultType
	statement  types.StatementType
	tableName  string
	table      catalog.TableSchema
	columns    []string
	allColumns bool
	filter     *parser.Filter
	err        error
}

func (r *executionResult) Type() types.ResultType {
	return r.resultType
}

func (r *executionResult) Statement() types.StatementType {
	return r.statement
}

func (r *executionResult) TableName() string {
	return r.tableName
}

func (r *executionResult) Table() catalog.TableSchema {
	return r.table
}

func (r *executionResult) Projection() ([]string, bool) {
	return r.columns, r.allColumns
}

func (r *executionResult) Filter() (parser.Filter, bool) {
	if r.filter == nil {
		return parser.Filter{}, false
	}
	return *r.filter, true
}

func (r *executionResult) Error() error {
	return r.err
}
