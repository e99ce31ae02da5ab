package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhangbiao2009/simple-sql-catalog/pkg/storage"
	"github.com/zhangbiao2009/simple-sql-catalog/pkg/types"
)

func TestDB_Execute(t *testing.T) {
	db := New()

	tests := []struct {
		name     string
		sql      string
		wantKind types.ErrorKind
	}{
		{
			name: "Create Table",
			sql:  "CREATE TABLE users (id int 8 '' name text 32 'x')",
		},
		{
			name:     "Duplicate Table",
			sql:      "CREATE TABLE users (id int 8 '')",
			wantKind: types.KindAlreadyExists,
		},
		{
			name:     "Invalid Create",
			sql:      "CREATE TABLE users",
			wantKind: types.KindParse,
		},
		{
			name:     "Unknown Command",
			sql:      "DELETE FROM users",
			wantKind: types.KindUnknownCommand,
		},
		{
			name: "Insert Row",
			sql:  "INSERT INTO users VALUES (1, 'Alice')",
		},
		{
			name: "Select All",
			sql:  "SELECT ALL FROM users",
		},
		{
			name:     "Select Missing Table",
			sql:      "SELECT ALL FROM nope",
			wantKind: types.KindNotFound,
		},
		{
			name: "Drop Table",
			sql:  "DROP TABLE users",
		},
		{
			name:     "Drop Missing Table",
			sql:      "DROP TABLE users",
			wantKind: types.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := db.Execute(tt.sql)

			if tt.wantKind != types.KindNone {
				require.False(t, result.Success, "Execute(%s) = success, want error", tt.sql)
				assert.Equal(t, tt.wantKind, types.KindOf(result.Error))
				return
			}
			require.True(t, result.Success, "Execute(%s) error = %v", tt.sql, result.Error)
		})
	}
}

func TestRoundTripSchemaEcho(t *testing.T) {
	db := New()

	require.True(t, db.Execute("CREATE TABLE T (a int 4 '' b text 10 'x')").Success)

	result := db.Execute("SELECT ALL FROM T")
	require.True(t, result.Success)
	assert.True(t, result.AllColumns)
	assert.Equal(t, []string{"a", "b"}, result.Columns)
}

func TestDuplicateCreateLeavesCatalogUnchanged(t *testing.T) {
	db := New()
	require.True(t, db.Execute("CREATE TABLE T (a int 4 '' b text 10 'x')").Success)

	result := db.Execute("CREATE TABLE T (c int 1 '')")
	require.False(t, result.Success)
	assert.True(t, errors.Is(result.Error, types.ErrAlreadyExists))

	assert.Equal(t, 1, db.Catalog().Len())
	schema, found := db.Catalog().GetTable("T")
	require.True(t, found)
	assert.Equal(t, []string{"a", "b"}, schema.ColumnNames())
}

func TestDropRemovesExactlyOne(t *testing.T) {
	db := New()
	require.True(t, db.Execute("CREATE TABLE T (a int 4 '')").Success)
	require.True(t, db.Execute("CREATE TABLE U (a int 4 '')").Success)

	require.True(t, db.Execute("DROP TABLE T").Success)
	assert.Equal(t, []string{"U"}, db.Catalog().ListTables())

	result := db.Execute("DROP TABLE T")
	require.False(t, result.Success)
	assert.True(t, errors.Is(result.Error, types.ErrNotFound))
	assert.Equal(t, 1, db.Catalog().Len())
}

func TestInsertIsInert(t *testing.T) {
	db := New()
	require.True(t, db.Execute("CREATE TABLE T (a int 4 '' b text 10 'x')").Success)

	before := db.Catalog().ListTables()
	for _, sql := range []string{
		"INSERT INTO T VALUES ('1', '2')",
		"INSERT INTO T",
		"INSERT INTO U (a) VALUES",
		"INSERT INTO ))) '",
	} {
		result := db.Execute(sql)
		require.True(t, result.Success, sql)
		assert.Empty(t, FormatResult(result))
	}

	assert.Equal(t, before, db.Catalog().ListTables())
	schema, _ := db.Catalog().GetTable("T")
	assert.Equal(t, []string{"a", "b"}, schema.ColumnNames())
}

func TestFilterEcho(t *testing.T) {
	db := New()
	require.True(t, db.Execute("CREATE TABLE T (a int 4 '' b text 10 'x')").Success)

	result := db.Execute("SELECT (a,b) FROM T WHERE a = 'v'")
	require.True(t, result.Success)
	assert.Equal(t, []string{"a", "b"}, result.Columns)
	require.NotNil(t, result.Filter)
	assert.Equal(t, "a", result.Filter.Column)
	assert.Equal(t, "v", result.Filter.Value)
}

func TestUnknownCommandLeavesCatalogUnchanged(t *testing.T) {
	db := New()
	require.True(t, db.Execute("CREATE TABLE T (a int 4 '')").Success)

	result := db.Execute("DELETE FROM T")
	require.False(t, result.Success)
	assert.True(t, errors.Is(result.Error, types.ErrUnknownCommand))
	assert.Equal(t, "Error: Unknown command type.\n", FormatResult(result))
	assert.Equal(t, []string{"T"}, db.Catalog().ListTables())
}

func TestUniquenessAcrossCommandSequences(t *testing.T) {
	db := New()
	commands := []string{
		"CREATE TABLE a (x int 1)",
		"CREATE TABLE b (x int 1)",
		"CREATE TABLE a (y int 2)",
		"DROP TABLE a",
		"CREATE TABLE a (z int 3)",
		"CREATE TABLE b (z int 3)",
		"INSERT INTO a VALUES (1)",
		"CREATE TABLE a (x int 1)",
	}

	for _, sql := range commands {
		db.Execute(sql)

		seen := make(map[string]bool)
		for _, name := range db.Catalog().ListTables() {
			require.False(t, seen[name], "duplicate table %q after %q", name, sql)
			seen[name] = true
		}
	}

	assert.Equal(t, []string{"b", "a"}, db.Catalog().ListTables())
	schema, _ := db.Catalog().GetTable("a")
	assert.Equal(t, []string{"z"}, schema.ColumnNames())
}

func TestConcurrentSessionUse(t *testing.T) {
	db := New()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("t%d", i%4)
			db.Execute(fmt.Sprintf("CREATE TABLE %s (a int 1)", name))
			db.Execute(fmt.Sprintf("SELECT ALL FROM %s", name))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 4, db.Catalog().Len())
}

func TestFileMarkers(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewFileStorage(dir, storage.DefaultMarkerSuffix)
	require.NoError(t, err)

	db := New(WithStorage(store))
	require.True(t, db.Execute("CREATE TABLE T (a int 4 '')").Success)

	info, err := os.Stat(filepath.Join(dir, "T.txt"))
	require.NoError(t, err)
	assert.Zero(t, info.Size())

	// A failed create writes no marker
	db.Execute("CREATE TABLE U")
	_, err = os.Stat(filepath.Join(dir, "U.txt"))
	assert.True(t, os.IsNotExist(err))

	// DROP leaves the marker in place
	require.True(t, db.Execute("DROP TABLE T").Success)
	_, err = os.Stat(filepath.Join(dir, "T.txt"))
	assert.NoError(t, err)
}

func TestFormatResult(t *testing.T) {
	db := New()

	tests := []struct {
		name string
		sql  string
		want string
	}{
		{
			name: "create",
			sql:  "CREATE TABLE T (a int 4 '' b text 10 'x')",
			want: "Table: T\n" +
				"Columns: 2\n" +
				"Column 1:\n" +
				"  Name: a\n" +
				"  Type: int\n" +
				"  Dimension: 4\n" +
				"  Default: ''\n" +
				"Column 2:\n" +
				"  Name: b\n" +
				"  Type: text\n" +
				"  Dimension: 10\n" +
				"  Default: 'x'\n",
		},
		{
			name: "already exists",
			sql:  "CREATE TABLE T (a int 4 '')",
			want: "Error: Table 'T' already exists.\n",
		},
		{
			name: "no columns",
			sql:  "CREATE TABLE V (a int x)",
			want: "Error: No valid columns found.\n",
		},
		{
			name: "create parse failure",
			sql:  "CREATE TABLE V",
			want: "Error: Failed to parse command.\n",
		},
		{
			name: "select all",
			sql:  "SELECT ALL FROM T",
			want: "Table: T\nColumns: All\nColumn: a\nColumn: b\nFilter: no\n",
		},
		{
			name: "select list with filter",
			sql:  "SELECT (a,b) FROM T WHERE a = 'v'",
			want: "Table: T\nColumns: 2\nColumn: a\nColumn: b\nFilter: yes\nFilter column: a with value v\n",
		},
		{
			name: "select parse failure",
			sql:  "SELECT * FROM T",
			want: "Error: Failed to parse SELECT command.\n",
		},
		{
			name: "select missing table",
			sql:  "SELECT ALL FROM X",
			want: "Error: Table 'X' does not exist.\n",
		},
		{
			name: "drop",
			sql:  "DROP TABLE T",
			want: "Table 'T' has been dropped.\n",
		},
		{
			name: "drop missing",
			sql:  "DROP TABLE T",
			want: "Error: Table 'T' does not exist.\n",
		},
		{
			name: "drop parse failure",
			sql:  "DROP TABLE",
			want: "Error: Failed to parse DROP TABLE command.\n",
		},
		{
			name: "insert",
			sql:  "INSERT INTO T VALUES (1)",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatResult(db.Execute(tt.sql)))
		})
	}
}

func TestSessionID(t *testing.T) {
	a, b := New(), New()
	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
}
