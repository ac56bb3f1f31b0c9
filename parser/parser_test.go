package parser

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flatdb/dberror"
	"flatdb/schema"
)

func requireSyntax(t *testing.T, err error, code string) {
	t.Helper()
	var dbErr *dberror.DBError
	require.ErrorAs(t, err, &dbErr)
	assert.Equal(t, dberror.CategorySyntax, dbErr.Category)
	assert.Equal(t, code, dbErr.Code)
}

func TestStream(t *testing.T) {
	s := NewStreamString("a  b\n\n c;\n-- note here\nd")

	var got []string
	for {
		tok, err := s.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, tok)
		if tok == "--" {
			s.SkipLine()
		}
	}
	assert.Equal(t, []string{"a", "b", "c;", "--", "d"}, got)
}

func TestSkipStatement(t *testing.T) {
	s := NewStreamString("values(1,\n2); next")
	s.SkipStatement()

	tok, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, "next", tok)
}

func TestParseObjectKind(t *testing.T) {
	for tok, want := range map[string]ObjectKind{
		"DATABASE": KindDatabase, "database": KindDatabase,
		"TABLE": KindTable, "table": KindTable,
	} {
		kind, err := ParseObjectKind(NewStreamString(tok))
		require.NoError(t, err)
		assert.Equal(t, want, kind, tok)
	}

	_, err := ParseObjectKind(NewStreamString("INDEX"))
	requireSyntax(t, err, "EXPECTED_OBJECT")
}

func TestParseName(t *testing.T) {
	name, err := ParseName(NewStreamString("db_1;"))
	require.NoError(t, err)
	assert.Equal(t, "db_1", name)

	_, err = ParseName(NewStreamString("db_1"))
	requireSyntax(t, err, "MISSING_SEMICOLON")

	_, err = ParseName(NewStreamString(";"))
	requireSyntax(t, err, "EMPTY_NAME")

	_, err = ParseName(NewStreamString(""))
	requireSyntax(t, err, "UNEXPECTED_EOF")
}

func TestParseCreateTable(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		table   string
		defs    []ColumnDef
		errCode string
	}{
		{
			name:  "separate list",
			input: "tbl_1 (a1 int, a2 varchar(20));",
			table: "tbl_1",
			defs: []ColumnDef{
				{Name: "a1", Type: schema.TypeInt},
				{Name: "a2", Type: schema.TypeVarchar, Size: 20},
			},
		},
		{
			name:  "glued list",
			input: "Product(pid int, name char(10), price float);",
			table: "Product",
			defs: []ColumnDef{
				{Name: "pid", Type: schema.TypeInt},
				{Name: "name", Type: schema.TypeChar, Size: 10},
				{Name: "price", Type: schema.TypeFloat},
			},
		},
		{name: "empty", input: "t ();", table: "t"},
		{name: "missing paren", input: "t a1 int);", errCode: "EXPECTED_COLUMN_LIST"},
		{name: "bad type", input: "t (a1 text);", errCode: "INVALID_TYPE"},
		{name: "missing separator", input: "t (a1 int a2 float);", errCode: "EXPECTED_SEPARATOR"},
		{name: "truncated", input: "t (a1 int,", errCode: "UNEXPECTED_EOF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStreamString(tt.input)
			head, err := ParseCreateTableHead(s)
			require.NoError(t, err)

			defs, err := ParseColumnDefs(s, head)
			if tt.errCode != "" {
				requireSyntax(t, err, tt.errCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.table, head.Name)
			assert.Equal(t, tt.defs, defs)
		})
	}
}

func TestParseAlter(t *testing.T) {
	s := NewStreamString("TABLE tbl_1 ADD a3 char(5);")
	name, err := ParseAlterHead(s)
	require.NoError(t, err)
	assert.Equal(t, "tbl_1", name)

	def, err := ParseAlterColumn(s)
	require.NoError(t, err)
	assert.Equal(t, ColumnDef{Name: "a3", Type: schema.TypeChar, Size: 5}, def)

	_, err = ParseAlterHead(NewStreamString("TABLE tbl_1 DROP a3;"))
	requireSyntax(t, err, "EXPECTED_ADD")

	_, err = ParseAlterColumn(NewStreamString("a3 blob;"))
	requireSyntax(t, err, "INVALID_TYPE")

	_, err = ParseAlterColumn(NewStreamString("a3 int"))
	requireSyntax(t, err, "MISSING_SEMICOLON")
}

func TestParseValues(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		columns int
		values  []string
		errCode string
	}{
		{name: "one token", input: "values(1,'Gizmo',19.99);", columns: 3, values: []string{"1", "'Gizmo'", "19.99"}},
		{name: "token per column", input: "values(1, 'Gizmo', 19.99);", columns: 3, values: []string{"1", "'Gizmo'", "19.99"}},
		{name: "single column", input: "values(7);", columns: 1, values: []string{"7"}},
		{name: "extra values ignored", input: "values(1,2,3);", columns: 2, values: []string{"1", "2"}},
		{name: "too few values", input: "values(1);", columns: 2, errCode: "EXPECTED_CLOSE"},
		{name: "missing prefix", input: "(1, 2);", columns: 2, errCode: "EXPECTED_VALUES"},
		{name: "missing comma", input: "values(1 2);", columns: 2, errCode: "EXPECTED_COMMA"},
		{name: "missing close", input: "values(1, 2", columns: 2, errCode: "EXPECTED_CLOSE"},
		{name: "one token without prefix", input: "1,2);", columns: 2, errCode: "EXPECTED_VALUES"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := ParseValues(NewStreamString(tt.input), tt.columns)
			if tt.errCode != "" {
				requireSyntax(t, err, tt.errCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.values, values)
		})
	}
}

func TestParseInsertHead(t *testing.T) {
	name, err := ParseInsertHead(NewStreamString("into Product values(1);"))
	require.NoError(t, err)
	assert.Equal(t, "Product", name)

	_, err = ParseInsertHead(NewStreamString("INTO Product"))
	requireSyntax(t, err, "EXPECTED_INTO")
}

func TestParseUpdate(t *testing.T) {
	s := NewStreamString("Product set name = 'Gizmo' where pid = 1;")
	name, err := ParseUpdateHead(s)
	require.NoError(t, err)
	assert.Equal(t, "Product", name)

	clause, err := ParseUpdate(s)
	require.NoError(t, err)
	assert.Equal(t, &UpdateClause{SetColumn: "name", SetValue: "'Gizmo'", WhereColumn: "pid", WhereValue: "1"}, clause)

	_, err = ParseUpdate(NewStreamString("set name 'Gizmo' where pid = 1;"))
	requireSyntax(t, err, "EXPECTED_EQUALS")

	_, err = ParseUpdate(NewStreamString("set name = 'Gizmo' when pid = 1;"))
	requireSyntax(t, err, "EXPECTED_WHERE")

	_, err = ParseUpdate(NewStreamString("set name = 'Gizmo' where pid = 1"))
	requireSyntax(t, err, "MISSING_SEMICOLON")
}

func TestParseDelete(t *testing.T) {
	s := NewStreamString("from Product where price > 150;")
	name, err := ParseDeleteHead(s)
	require.NoError(t, err)
	assert.Equal(t, "Product", name)

	cond, err := ParseWhere(s)
	require.NoError(t, err)
	assert.Equal(t, &Condition{Column: "price", Op: ">", Value: "150"}, cond)

	cond, err = ParseWhere(NewStreamString("where name < 'x';"))
	require.NoError(t, err)
	assert.Equal(t, "<", cond.Op)

	_, err = ParseWhere(NewStreamString("where price >= 150;"))
	requireSyntax(t, err, "INVALID_OPERATOR")

	_, err = ParseDeleteHead(NewStreamString("Product where"))
	requireSyntax(t, err, "EXPECTED_FROM")
}

func TestParseSelect(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    *SelectStatement
		errCode string
	}{
		{
			name:  "all",
			input: "* FROM Product;",
			want:  &SelectStatement{Table: "Product"},
		},
		{
			name:  "projection with filter",
			input: "name, price from Product where pid != 2;",
			want: &SelectStatement{
				Columns: []string{"name", "price"},
				Table:   "Product",
				Where:   &Condition{Column: "pid", Op: "!=", Value: "2"},
			},
		},
		{
			name:  "projection without filter",
			input: "name from Product;",
			want:  &SelectStatement{Columns: []string{"name"}, Table: "Product"},
		},
		{
			name:  "comma join",
			input: "* from Employee E, Sales S where E.id = S.employeeID;",
			want: &SelectStatement{Table: "Employee", Join: &JoinClause{
				Kind: InnerJoin, LeftTable: "Employee", LeftAlias: "E",
				RightTable: "Sales", RightAlias: "S", LeftAttr: "id", RightAttr: "employeeID",
			}},
		},
		{
			name:  "inner join",
			input: "* from Employee E inner join Sales S on E.id = S.employeeID;",
			want: &SelectStatement{Table: "Employee", Join: &JoinClause{
				Kind: InnerJoin, LeftTable: "Employee", LeftAlias: "E",
				RightTable: "Sales", RightAlias: "S", LeftAttr: "id", RightAttr: "employeeID",
			}},
		},
		{
			name:  "left outer join",
			input: "* from Employee E left outer join Sales S on E.id = S.employeeID;",
			want: &SelectStatement{Table: "Employee", Join: &JoinClause{
				Kind: LeftOuterJoin, LeftTable: "Employee", LeftAlias: "E",
				RightTable: "Sales", RightAlias: "S", LeftAttr: "id", RightAttr: "employeeID",
			}},
		},
		{name: "outer join with where", input: "* from A a left outer join B b where a.x = b.y;", errCode: "EXPECTED_ON"},
		{name: "unknown join", input: "* from A a cross join B b on a.x = b.y;", errCode: "EXPECTED_JOIN"},
		{name: "unqualified attribute", input: "* from A a, B b where x = b.y;", errCode: "EXPECTED_QUALIFIED_NAME"},
		{name: "join without semicolon", input: "* from A a, B b where a.x = b.y", errCode: "MISSING_SEMICOLON"},
		{name: "missing from", input: "* Product;", errCode: "EXPECTED_FROM"},
		{name: "projection needs where", input: "a, b from t order by a;", errCode: "EXPECTED_WHERE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt, err := ParseSelect(NewStreamString(tt.input))
			if tt.errCode != "" {
				requireSyntax(t, err, tt.errCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, stmt)
		})
	}
}

func TestJoinKindString(t *testing.T) {
	assert.Equal(t, "inner join", InnerJoin.String())
	assert.Equal(t, "left outer join", LeftOuterJoin.String())
}
