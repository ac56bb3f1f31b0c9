package executor

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"flatdb/catalog"
	"flatdb/database"
	"flatdb/dberror"
	"flatdb/logging"
	"flatdb/parser"
)

// Session reads commands from one token stream and writes their results to
// one output. It tracks the database chosen with USE.
type Session struct {
	ID string

	catalog *catalog.Catalog
	out     io.Writer
	db      *database.Database
	log     *slog.Logger
}

// NewSession creates a session over the databases of cat. Results and
// messages are written to out; logs never are.
func NewSession(cat *catalog.Catalog, out io.Writer) *Session {
	id := uuid.NewString()
	return &Session{
		ID:      id,
		catalog: cat,
		out:     out,
		log:     logging.WithSession(id),
	}
}

// Database returns the database in use, or nil.
func (s *Session) Database() *database.Database {
	return s.db
}

// Run executes commands until .EXIT, end of input or a terminal error.
//
// Resolution and value failures print their message and the session goes
// on. A malformed statement or an unknown command prints "!Unknown Command."
// and ends the session with that error; so does a storage failure.
func (s *Session) Run(in *parser.Stream) error {
	s.log.Info("session started", "root", s.catalog.Root())
	for {
		tok, err := in.Next()
		if err == io.EOF {
			s.log.Info("session ended", "reason", "eof")
			return nil
		}
		if err != nil {
			return dberror.Wrap(err, "READ_FAILED", "Run")
		}

		if tok == ".EXIT" || tok == ".exit" {
			s.println("All done.")
			s.log.Info("session ended", "reason", "exit")
			return nil
		}
		if strings.HasPrefix(tok, "--") {
			in.SkipLine()
			continue
		}

		err = s.dispatch(tok, in)
		if err == nil {
			continue
		}
		if !dberror.IsTerminal(err) {
			s.println(message(err))
			s.log.Debug("command failed", "command", tok, "error", err)
			continue
		}

		if dberror.CategoryOf(err) == dberror.CategorySystem {
			s.log.Error("command failed", "command", tok, "error", err)
		} else {
			s.log.Warn("session aborted", "command", tok, "error", err)
		}
		s.println("!Unknown Command.")
		return err
	}
}

func (s *Session) dispatch(verb string, in *parser.Stream) error {
	switch verb {
	case "CREATE", "create":
		kind, err := parser.ParseObjectKind(in)
		if err != nil {
			return err
		}
		if kind == parser.KindDatabase {
			return s.createDatabase(in)
		}
		return s.withDatabase(in, s.createTable)
	case "DROP", "drop":
		kind, err := parser.ParseObjectKind(in)
		if err != nil {
			return err
		}
		if kind == parser.KindDatabase {
			return s.dropDatabase(in)
		}
		return s.withDatabase(in, s.dropTable)
	case "USE", "use":
		return s.use(in)
	case "SELECT", "select":
		return s.withDatabase(in, s.query)
	case "ALTER", "alter":
		return s.withDatabase(in, s.alter)
	case "insert":
		return s.withDatabase(in, s.insert)
	case "update":
		return s.withDatabase(in, s.update)
	case "delete":
		return s.withDatabase(in, s.delete)
	}
	return dberror.Syntax("UNKNOWN_COMMAND", verb)
}

// withDatabase runs a table command, or skips it when no database is in use.
func (s *Session) withDatabase(in *parser.Stream, cmd func(*parser.Stream) error) error {
	if s.db == nil {
		in.SkipStatement()
		return dberror.Resolution("NO_DATABASE", "", "!Failed to run command because no database is in use.")
	}
	return cmd(in)
}

func (s *Session) println(msg string) {
	fmt.Fprintln(s.out, msg)
}

func message(err error) string {
	var dbErr *dberror.DBError
	if errors.As(err, &dbErr) {
		return dbErr.Message
	}
	return err.Error()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return fmt.Sprintf("%d %s", n, many)
}
