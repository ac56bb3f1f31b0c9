package executor

import (
	"strings"

	"flatdb/database"
	"flatdb/dberror"
	"flatdb/parser"
	"flatdb/schema"
)

func (s *Session) createTable(in *parser.Stream) error {
	head, err := parser.ParseCreateTableHead(in)
	if err != nil {
		return err
	}
	if err := database.CheckTableName(head.Name, "create table "+head.Name); err != nil {
		skipRest(in, head.Pending())
		return err
	}
	if s.db.TableExists(head.Name) {
		skipRest(in, head.Pending())
		return dberror.Resolution("TABLE_EXISTS", head.Name,
			"!Failed to create table "+head.Name+" because it already exists.")
	}

	defs, err := parser.ParseColumnDefs(in, head)
	if err != nil {
		return err
	}
	columns := make([]*schema.Column, len(defs))
	for i, d := range defs {
		columns[i] = d.Column()
	}

	if _, err := s.db.CreateTable(head.Name, columns); err != nil {
		return err
	}
	s.println("Table " + head.Name + " created.")
	return nil
}

func (s *Session) dropTable(in *parser.Stream) error {
	name, err := parser.ParseName(in)
	if err != nil {
		return err
	}
	if err := s.db.DropTable(name); err != nil {
		return err
	}
	s.println("Table " + name + " deleted.")
	return nil
}

func (s *Session) alter(in *parser.Stream) error {
	name, err := parser.ParseAlterHead(in)
	if err != nil {
		return err
	}
	t, ok := s.db.Table(name)
	if !ok {
		skipRest(in, name)
		return notFound("alter table", name)
	}

	def, err := parser.ParseAlterColumn(in)
	if err != nil {
		return err
	}
	if err := t.Alter(def); err != nil {
		return err
	}
	s.println("Table " + t.Name + " modified.")
	return nil
}

func (s *Session) insert(in *parser.Stream) error {
	name, err := parser.ParseInsertHead(in)
	if err != nil {
		return err
	}
	t, ok := s.db.Table(name)
	if !ok {
		skipRest(in, name)
		return notFound("insert into table", name)
	}

	values, err := parser.ParseValues(in, len(t.Columns))
	if err != nil {
		return err
	}
	if err := t.Insert(values); err != nil {
		return err
	}
	s.println("1 new record inserted.")
	return nil
}

func (s *Session) update(in *parser.Stream) error {
	name, err := parser.ParseUpdateHead(in)
	if err != nil {
		return err
	}
	t, ok := s.db.Table(name)
	if !ok {
		skipRest(in, name)
		return notFound("update table", name)
	}

	clause, err := parser.ParseUpdate(in)
	if err != nil {
		return err
	}
	n, err := t.Update(clause)
	if err != nil {
		return err
	}
	s.println(plural(n, "record modified.", "records modified."))
	return nil
}

func (s *Session) delete(in *parser.Stream) error {
	name, err := parser.ParseDeleteHead(in)
	if err != nil {
		return err
	}
	t, ok := s.db.Lookup(name)
	if !ok {
		skipRest(in, name)
		return notFound("delete from table", name)
	}

	cond, err := parser.ParseWhere(in)
	if err != nil {
		return err
	}
	n, err := t.Delete(cond)
	if err != nil {
		return err
	}
	s.println(plural(n, "record deleted.", "records deleted."))
	return nil
}

func (s *Session) query(in *parser.Stream) error {
	stmt, err := parser.ParseSelect(in)
	if err != nil {
		return err
	}
	if stmt.Join != nil {
		return s.db.Join(s.out, stmt.Join)
	}

	t, ok := s.db.Lookup(stmt.Table)
	if !ok {
		return notFound("query table", stmt.Table)
	}
	if stmt.Columns == nil {
		return t.Select(s.out)
	}
	return t.SelectColumns(s.out, stmt.Columns, stmt.Where)
}

// skipRest discards the remainder of a statement whose target was not
// found. last is the last token already consumed.
func skipRest(in *parser.Stream, last string) {
	if !strings.HasSuffix(last, ";") {
		in.SkipStatement()
	}
}

func notFound(action, name string) error {
	return dberror.Resolution("TABLE_NOT_FOUND", name,
		"!Failed to "+action+" "+name+" because it does not exist.")
}
