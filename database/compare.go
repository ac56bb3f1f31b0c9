package database

import (
	"strconv"
	"strings"

	"flatdb/dberror"
)

// leadingFloat reads the numeric prefix of v for the '>' operator: optional
// leading spaces and sign, then a decimal mantissa with an optional exponent,
// or inf/infinity/nan. "1.5kg" reads as 1.5. A value without a numeric
// prefix is a value failure.
func leadingFloat(v string) (float64, error) {
	s := strings.TrimLeft(v, " \t\n\r\v\f")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}

	rest := strings.ToLower(s[end:])
	for _, word := range []string{"infinity", "inf", "nan"} {
		if strings.HasPrefix(rest, word) {
			return strconv.ParseFloat(s[:end+len(word)], 64)
		}
	}

	digits := 0
	for end < len(s) && isDigit(s[end]) {
		end++
		digits++
	}
	if end < len(s) && s[end] == '.' {
		end++
		for end < len(s) && isDigit(s[end]) {
			end++
			digits++
		}
	}
	if digits == 0 {
		return 0, dberror.Value("NOT_A_NUMBER", v, "!Failed to compare "+v+" as a number.")
	}

	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		exp := end + 1
		if exp < len(s) && (s[exp] == '+' || s[exp] == '-') {
			exp++
		}
		if exp < len(s) && isDigit(s[exp]) {
			for exp < len(s) && isDigit(s[exp]) {
				exp++
			}
			end = exp
		}
	}

	f, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, dberror.Value("NOT_A_NUMBER", v, "!Failed to compare "+v+" as a number.")
	}
	return f, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// leadingInt reads the integer prefix of v: optional leading spaces, an
// optional sign, then digits up to the first non-digit ("2.5" reads as 2).
// A value without digits, or out of int64 range, is a value failure.
func leadingInt(v string) (int64, error) {
	s := strings.TrimLeft(v, " \t\n\r\v\f")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end == digits {
		return 0, dberror.Value("NOT_AN_INTEGER", v, "!Failed to compare "+v+" as an integer.")
	}

	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, dberror.Value("INTEGER_RANGE", v, "!Failed to compare "+v+" as an integer.")
	}
	return n, nil
}
