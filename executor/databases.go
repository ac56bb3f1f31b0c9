package executor

import (
	"flatdb/parser"
)

func (s *Session) createDatabase(in *parser.Stream) error {
	name, err := parser.ParseName(in)
	if err != nil {
		return err
	}
	if err := s.catalog.CreateDatabase(name); err != nil {
		return err
	}
	s.println("Database " + name + " created.")
	return nil
}

func (s *Session) dropDatabase(in *parser.Stream) error {
	name, err := parser.ParseName(in)
	if err != nil {
		return err
	}
	if err := s.catalog.DropDatabase(name); err != nil {
		return err
	}
	if s.db != nil && s.db.Name == name {
		s.db = nil
	}
	s.println("Database " + name + " deleted.")
	return nil
}

// use reloads the database from disk every time it is selected.
func (s *Session) use(in *parser.Stream) error {
	name, err := parser.ParseName(in)
	if err != nil {
		return err
	}
	db, err := s.catalog.Open(name)
	if err != nil {
		return err
	}
	s.db = db
	s.log.Debug("database selected", "database", name, "tables", len(db.Tables()))
	s.println("Using database " + name + ".")
	return nil
}
