package parser

import (
	"strings"

	"flatdb/dberror"
)

// parseJoin reads the join forms that follow "select * from <left>":
//
//	<leftAlias>, <right> <rightAlias> where <l>.<attr> = <r>.<attr>;
//	<leftAlias> inner join <right> <rightAlias> on <l>.<attr> = <r>.<attr>;
//	<leftAlias> left outer join <right> <rightAlias> on <l>.<attr> = <r>.<attr>;
//
// The comma and inner forms accept "where" or "on"; the outer form only "on".
func parseJoin(s *Stream, left string) (*JoinClause, error) {
	join := &JoinClause{LeftTable: left}

	alias, err := next(s)
	if err != nil {
		return nil, err
	}

	if strings.HasSuffix(alias, ",") {
		join.Kind = InnerJoin
		join.LeftAlias = alias[:len(alias)-1]
	} else {
		join.LeftAlias = alias
		kw, err := next(s)
		if err != nil {
			return nil, err
		}
		switch kw {
		case "inner":
			if _, err := expect(s, "EXPECTED_JOIN", "join"); err != nil {
				return nil, err
			}
			join.Kind = InnerJoin
		case "left":
			if _, err := expect(s, "EXPECTED_OUTER", "outer"); err != nil {
				return nil, err
			}
			if _, err := expect(s, "EXPECTED_JOIN", "join"); err != nil {
				return nil, err
			}
			join.Kind = LeftOuterJoin
		default:
			return nil, dberror.Syntax("EXPECTED_JOIN", kw)
		}
	}

	if join.RightTable, err = next(s); err != nil {
		return nil, err
	}
	if join.RightAlias, err = next(s); err != nil {
		return nil, err
	}

	keywords := []string{"where", "on"}
	if join.Kind == LeftOuterJoin {
		keywords = []string{"on"}
	}
	if _, err := expect(s, "EXPECTED_ON", keywords...); err != nil {
		return nil, err
	}

	lhs, err := next(s)
	if err != nil {
		return nil, err
	}
	_, leftAttr, ok := strings.Cut(lhs, ".")
	if !ok {
		return nil, dberror.Syntax("EXPECTED_QUALIFIED_NAME", lhs)
	}

	if _, err := expect(s, "EXPECTED_EQUALS", "="); err != nil {
		return nil, err
	}

	rhs, err := next(s)
	if err != nil {
		return nil, err
	}
	if !strings.Contains(rhs, ".") {
		return nil, dberror.Syntax("EXPECTED_QUALIFIED_NAME", rhs)
	}
	rhs, ok = trimTerminator(rhs)
	if !ok {
		return nil, dberror.Syntax("MISSING_SEMICOLON", rhs)
	}
	_, rightAttr, _ := strings.Cut(rhs, ".")

	join.LeftAttr = leftAttr
	join.RightAttr = rightAttr
	return join, nil
}
