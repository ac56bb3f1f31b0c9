package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"flatdb/schema"
)

// TableData is the decoded content of a table file.
type TableData struct {
	Columns  []*schema.Column
	RowCount int
}

// Decode reads a table file.
//
// Format (all tokens whitespace separated):
//
//	<columnCount> <rowCount>
//	<name> <type> [<size>] ...      size only for char/varchar
//	<v1> <v2> ... <vN>              one row per line, rowCount rows
//
// Row tokens are distributed in row-major order: token j of each row goes to
// column j. An empty stream decodes to a table with no columns.
func Decode(r io.Reader) (*TableData, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	next := func(what string) (string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", fmt.Errorf("unexpected end of table file reading %s", what)
		}
		return sc.Text(), nil
	}
	nextInt := func(what string) (int, error) {
		tok, err := next(what)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", what, err)
		}
		if n < 0 {
			return 0, fmt.Errorf("%s: negative value %d", what, n)
		}
		return n, nil
	}

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return &TableData{}, nil
	}
	colNum, err := strconv.Atoi(sc.Text())
	if err != nil || colNum < 0 {
		return nil, fmt.Errorf("column count: invalid token %q", sc.Text())
	}
	rowNum, err := nextInt("row count")
	if err != nil {
		return nil, err
	}

	columns := make([]*schema.Column, 0, colNum)
	for i := 0; i < colNum; i++ {
		name, err := next("column name")
		if err != nil {
			return nil, err
		}
		typeTok, err := next("column type")
		if err != nil {
			return nil, err
		}
		typ := schema.ColumnType(typeTok)
		if !typ.Valid() {
			return nil, fmt.Errorf("column %s: unknown type %q", name, typeTok)
		}
		size := 0
		if typ.IsText() {
			if size, err = nextInt("column size"); err != nil {
				return nil, err
			}
		}
		col := schema.NewColumn(name, typ, size)
		col.Values = make([]string, 0, rowNum)
		columns = append(columns, col)
	}

	for i := 0; i < rowNum; i++ {
		for j := 0; j < colNum; j++ {
			v, err := next(fmt.Sprintf("row %d", i))
			if err != nil {
				return nil, err
			}
			columns[j].Values = append(columns[j].Values, v)
		}
	}

	return &TableData{Columns: columns, RowCount: rowNum}, nil
}

// Encode writes a table file. The header row count is rowCount-pending; rows
// holding schema.Erase in any column are skipped, which is where tombstoned
// rows are physically dropped.
//
// The number of erased rows must equal pending, so the header always matches
// the rows that follow it.
func Encode(w io.Writer, columns []*schema.Column, rowCount, pending int) error {
	erased := 0
	for i := 0; i < rowCount; i++ {
		if rowErased(columns, i) {
			erased++
		}
	}
	if erased != pending {
		return fmt.Errorf("%d rows hold %s but %d deletes are pending", erased, schema.Erase, pending)
	}

	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%d %d\n", len(columns), rowCount-pending)
	for _, col := range columns {
		fmt.Fprintf(bw, "%s %s ", col.Name, col.Type)
		if col.Type.IsText() {
			fmt.Fprintf(bw, "%d ", col.Size)
		}
	}
	bw.WriteString("\n")

	for i := 0; i < rowCount; i++ {
		if rowErased(columns, i) {
			continue
		}
		for _, col := range columns {
			if i >= len(col.Values) {
				return fmt.Errorf("column %s has no value for row %d", col.Name, i)
			}
			bw.WriteString(col.Values[i])
			bw.WriteString(" ")
		}
		bw.WriteString("\n")
	}

	return bw.Flush()
}

func rowErased(columns []*schema.Column, i int) bool {
	for _, col := range columns {
		if i < len(col.Values) && col.Values[i] == schema.Erase {
			return true
		}
	}
	return false
}

// ErrTableNotFound is returned by Engine.ReadTable callers that need a file.
var ErrTableNotFound = errors.New("table file not found")
