package database

import (
	"flatdb/parser"
	"flatdb/schema"
)

// Delete removes every row matching cond in three phases:
//
//  1. mark: on a copy of the columns, repeatedly find the lowest row that is
//     not tombstoned and matches, and set every column of that row to
//     schema.Erase, until a full scan finds nothing;
//  2. rewrite: persist the marked copy, which drops the tombstoned rows;
//  3. reload: rebuild the columns from the rewritten file so row indices are
//     0..RowCount-1 again.
//
// Operator '=' compares text, '>' compares the numeric prefixes of both
// sides as floats; the target is read only once a candidate row needs it, so
// an empty table never fails. Any other single-character operator matches
// nothing. A value failure during marking leaves the table untouched.
func (t *Table) Delete(cond *parser.Condition) (int, error) {
	target := &lazyFloat{raw: cond.Value}
	work := t.cloneColumns()
	count := 0
	for {
		row, err := firstMatch(work, cond, target)
		if err != nil {
			return 0, err
		}
		if row < 0 {
			break
		}
		for _, col := range work {
			col.Values[row] = schema.Erase
		}
		count++
	}

	live := t.Columns
	t.Columns = work
	t.PendingDeletes = count
	if err := t.persist(); err != nil {
		t.Columns = live
		t.PendingDeletes = 0
		return 0, err
	}

	if err := t.reload(); err != nil {
		return 0, err
	}

	t.log.Debug("rows deleted", "count", count, "rows", t.RowCount)
	return count, nil
}

// firstMatch returns the lowest non-tombstoned row matching cond, or -1.
func firstMatch(columns []*schema.Column, cond *parser.Condition, target *lazyFloat) (int, error) {
	for _, col := range columns {
		if col.Name != cond.Column {
			continue
		}
		for row, v := range col.Values {
			if v == schema.Erase {
				continue
			}
			switch cond.Op {
			case "=":
				if v == cond.Value {
					return row, nil
				}
			case ">":
				f, err := leadingFloat(v)
				if err != nil {
					return -1, err
				}
				want, err := target.value()
				if err != nil {
					return -1, err
				}
				if f > want {
					return row, nil
				}
			}
		}
	}
	return -1, nil
}

// lazyFloat parses a comparison target on first use.
type lazyFloat struct {
	raw    string
	parsed bool
	v      float64
	err    error
}

func (l *lazyFloat) value() (float64, error) {
	if !l.parsed {
		l.v, l.err = leadingFloat(l.raw)
		l.parsed = true
	}
	return l.v, l.err
}
