package parser

import (
	"strconv"
	"strings"

	"github.com/zhangbiao2009/simple-sql-catalog/pkg/types"
)

// Command prefixes, tested in this order and case-sensitively
const (
	prefixCreateTable = "CREATE TABLE"
	prefixDropTable   = "DROP TABLE"
	prefixInsertInto  = "INSERT INTO"
	prefixSelect      = "SELECT"
)

// Parse failures reported to the user
const (
	msgCreateFailed   = "Failed to parse command."
	msgNoColumns      = "No valid columns found."
	msgDropFailed     = "Failed to parse DROP TABLE command."
	msgSelectFailed   = "Failed to parse SELECT command."
	msgUnknownCommand = "Unknown command type."
)

const (
	keywordAllColumns   = "ALL"
	keywordFrom         = "FROM"
	keywordWhere        = "WHERE"
	statementTerminator = ";"
)

// SimpleParser implements the Parser interface with a tokenizer and one
// recursive-descent rule per command.
type SimpleParser struct{}

// NewParser creates a new SimpleParser
func NewParser() Parser {
	return &SimpleParser{}
}

// Classify returns the statement type whose keyword prefix line starts with,
// or StmtUnknown. Matching is case-sensitive.
func Classify(line string) types.StatementType {
	switch {
	case strings.HasPrefix(line, prefixCreateTable):
		return types.StmtCreate
	case strings.HasPrefix(line, prefixDropTable):
		return types.StmtDrop
	case strings.HasPrefix(line, prefixInsertInto):
		return types.StmtInsert
	case strings.HasPrefix(line, prefixSelect):
		return types.StmtSelect
	default:
		return types.StmtUnknown
	}
}

// Parse classifies line and runs the matching grammar rule
func (p *SimpleParser) Parse(line string) (Statement, error) {
	switch Classify(line) {
	case types.StmtCreate:
		return p.parseCreateTable(line)
	case types.StmtDrop:
		return p.parseDropTable(line)
	case types.StmtInsert:
		return &insertStatement{text: line}, nil
	case types.StmtSelect:
		return p.parseSelect(line)
	}

	return nil, types.NewError(types.KindUnknownCommand, msgUnknownCommand)
}

// cursor walks the token stream of one line
type cursor struct {
	toks []token
	i    int
}

func newCursor(src string) *cursor {
	return &cursor{toks: tokenize(src)}
}

func (c *cursor) peek() token {
	return c.toks[c.i]
}

func (c *cursor) advance() token {
	tok := c.toks[c.i]
	if tok.kind != tokEOF {
		c.i++
	}
	return tok
}

func (c *cursor) keyword(kw string) bool {
	if c.peek().isKeyword(kw) {
		c.advance()
		return true
	}
	return false
}

func (c *cursor) symbol(sym string) bool {
	if c.peek().isSymbol(sym) {
		c.advance()
		return true
	}
	return false
}

func (c *cursor) word() (string, bool) {
	if c.peek().kind != tokWord {
		return "", false
	}
	return c.advance().val, true
}

// end accepts an optional terminator followed by end of input
func (c *cursor) end() bool {
	c.symbol(statementTerminator)
	return c.peek().kind == tokEOF
}

// parseCreateTable parses
//
//	CREATE TABLE <ident> ( <body> ) [;]
//
// where body runs to the last closing parenthesis of the line.
func (p *SimpleParser) parseCreateTable(line string) (CreateTableStatement, error) {
	c := newCursor(line)
	if !c.keyword("CREATE") || !c.keyword("TABLE") {
		return nil, types.NewError(types.KindParse, msgCreateFailed)
	}

	tableName, ok := c.word()
	if !ok {
		return nil, types.NewError(types.KindParse, msgCreateFailed)
	}

	open := c.peek()
	if !open.isSymbol("(") {
		return nil, types.NewError(types.KindParse, msgCreateFailed)
	}

	closeAt := strings.LastIndexByte(line, ')')
	if closeAt < open.end {
		return nil, types.NewError(types.KindParse, msgCreateFailed)
	}
	if rest := strings.TrimSpace(line[closeAt+1:]); rest != "" && rest != statementTerminator {
		return nil, types.NewError(types.KindParse, msgCreateFailed)
	}

	columns := parseColumnDefinitions(line[open.end:closeAt])
	if len(columns) == 0 {
		return nil, types.NewError(types.KindParse, msgNoColumns)
	}

	return &createTableStatement{
		tableName: tableName,
		columns:   columns,
	}, nil
}

// columnSlot is the position of a <name> <type> <size> triple in a body
type columnSlot struct {
	at   int
	size int
}

// parseColumnDefinitions scans body for repeating <name> <type> <size> slots.
// A column's default is the raw text between its size and the next slot.
// Triples whose size is not an integer never start a slot and are skipped.
func parseColumnDefinitions(body string) []ColumnDefinition {
	toks := tokenize(body)
	toks = toks[:len(toks)-1]

	var slots []columnSlot
	for i := 0; i+2 < len(toks); {
		if toks[i].kind == tokWord && toks[i+1].kind == tokWord && toks[i+2].isDigits() {
			if size, err := strconv.Atoi(toks[i+2].val); err == nil {
				slots = append(slots, columnSlot{at: i, size: size})
				i += 3
				continue
			}
		}
		i++
	}

	columns := make([]ColumnDefinition, 0, len(slots))
	for n, slot := range slots {
		defaultEnd := len(body)
		if n+1 < len(slots) {
			defaultEnd = toks[slots[n+1].at].pos
		}
		columns = append(columns, &columnDefinition{
			name:         toks[slot.at].val,
			dataType:     toks[slot.at+1].val,
			size:         slot.size,
			defaultValue: strings.TrimSpace(body[toks[slot.at+2].end:defaultEnd]),
		})
	}

	return columns
}

// parseDropTable parses DROP TABLE <ident> [;]
func (p *SimpleParser) parseDropTable(line string) (DropTableStatement, error) {
	c := newCursor(line)
	if !c.keyword("DROP") || !c.keyword("TABLE") {
		return nil, types.NewError(types.KindParse, msgDropFailed)
	}

	tableName, ok := c.word()
	if !ok || !c.end() {
		return nil, types.NewError(types.KindParse, msgDropFailed)
	}

	return &dropTableStatement{
		tableName: tableName,
	}, nil
}

// parseSelect parses
//
//	SELECT ( ALL | "(" [<ident> {"," <ident>}] ")" ) FROM <ident> [WHERE <ident> = '<value>'] [;]
func (p *SimpleParser) parseSelect(line string) (SelectStatement, error) {
	c := newCursor(line)
	if !c.keyword("SELECT") {
		return nil, types.NewError(types.KindParse, msgSelectFailed)
	}

	stmt := &selectStatement{}
	if c.keyword(keywordAllColumns) {
		stmt.allColumns = true
	} else {
		columns, ok := parseColumnList(c)
		if !ok {
			return nil, types.NewError(types.KindParse, msgSelectFailed)
		}
		stmt.columns = columns
	}

	if !c.keyword(keywordFrom) {
		return nil, types.NewError(types.KindParse, msgSelectFailed)
	}
	tableName, ok := c.word()
	if !ok {
		return nil, types.NewError(types.KindParse, msgSelectFailed)
	}
	stmt.tableName = tableName

	if c.keyword(keywordWhere) {
		filter, ok := parseFilter(c)
		if !ok {
			return nil, types.NewError(types.KindParse, msgSelectFailed)
		}
		stmt.filter = filter
	}

	if !c.end() {
		return nil, types.NewError(types.KindParse, msgSelectFailed)
	}

	return stmt, nil
}

// parseColumnList parses "(" [<ident> {"," <ident>}] ")"
func parseColumnList(c *cursor) ([]string, bool) {
	if !c.symbol("(") {
		return nil, false
	}

	columns := []string{}
	if c.symbol(")") {
		return columns, true
	}

	for {
		name, ok := c.word()
		if !ok {
			return nil, false
		}
		columns = append(columns, name)

		if c.symbol(")") {
			return columns, true
		}
		if !c.symbol(",") {
			return nil, false
		}
	}
}

// parseFilter parses <ident> = '<value>' with a non-empty value
func parseFilter(c *cursor) (*Filter, bool) {
	column, ok := c.word()
	if !ok || !c.symbol("=") {
		return nil, false
	}

	value := c.peek()
	if value.kind != tokString || !value.closed || value.val == "" {
		return nil, false
	}
	c.advance()

	return &Filter{Column: column, Value: value.val}, true
}
