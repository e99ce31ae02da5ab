package types

// StatementType represents the type of command recognized by the dispatcher
type StatementType int

const (
	StmtUnknown StatementType = iota
	StmtCreate
	StmtDrop
	StmtInsert
	StmtSelect
)

func (t StatementType) String() string {
	switch t {
	case StmtCreate:
		return "CREATE TABLE"
	case StmtDrop:
		return "DROP TABLE"
	case StmtInsert:
		return "INSERT INTO"
	case StmtSelect:
		return "SELECT"
	default:
		return "UNKNOWN"
	}
}

// ResultType represents the type of operation result
type ResultType int

const (
	ResultSuccess ResultType = iota
	ResultTable
	ResultProjection
	ResultNone
	ResultError
)
