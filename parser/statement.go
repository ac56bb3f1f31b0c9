package parser

import "flatdb/schema"

// ColumnDef is a column declaration from CREATE TABLE or ALTER TABLE.
type ColumnDef struct {
	Name string
	Type schema.ColumnType
	Size int
}

// Column builds the empty schema column for the declaration.
func (d ColumnDef) Column() *schema.Column {
	return schema.NewColumn(d.Name, d.Type, d.Size)
}

// Condition is a "<column> <op> <value>" predicate.
type Condition struct {
	Column string
	Op     string
	Value  string
}

// UpdateClause is the argument list of UPDATE after the table name.
type UpdateClause struct {
	SetColumn   string
	SetValue    string
	WhereColumn string
	WhereValue  string
}

// JoinKind distinguishes the two relation operations.
type JoinKind int

const (
	InnerJoin JoinKind = iota
	LeftOuterJoin
)

func (k JoinKind) String() string {
	if k == LeftOuterJoin {
		return "left outer join"
	}
	return "inner join"
}

// JoinClause is a two-table equality join. Aliases are read but only the
// attribute part of each side of the condition is used for resolution.
type JoinClause struct {
	Kind       JoinKind
	LeftTable  string
	LeftAlias  string
	RightTable string
	RightAlias string
	LeftAttr   string
	RightAttr  string
}

// SelectStatement is a parsed SELECT.
type SelectStatement struct {
	// Columns is nil for "*".
	Columns []string
	Table   string
	// Where is set only for a column projection with a where clause.
	Where *Condition
	// Join is set for the join forms of "select *".
	Join *JoinClause
}
