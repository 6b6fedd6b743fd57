// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package lazy

import (
	"go4.org/mem"

	"github.com/lazyjson/lazyjson"
)

// skipWS advances pos past any run of JSON whitespace (space, tab, LF, CR).
func skipWS(buf []byte, pos int) int {
	for pos < len(buf) {
		switch buf[pos] {
		case ' ', '\t', '\n', '\r':
			pos++
		default:
			return pos
		}
	}
	return pos
}

func isWS(b byte) bool { return b == ' ' || b == '\t' || b == '\n' || b == '\r' }

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// scanKeyword requires that buf[pos:] begins with the literal kw, and
// returns the position just past it.
func scanKeyword(buf []byte, pos int, kw string) (int, error) {
	end := pos + len(kw)
	if end > len(buf) {
		return pos, lazyjson.NewError(lazyjson.UnexpectedEOF, pos, kw)
	}
	if !mem.B(buf[pos:end]).Equal(mem.S(kw)) {
		return pos, lazyjson.NewError(lazyjson.InvalidJSON, pos, kw)
	}
	return end, nil
}

// scanString requires that buf[pos] == '"', and scans to the matching
// closing quote, honoring backslash as a two-byte escape without
// interpreting what follows it. It returns the span of the string body
// (excluding both quotes), whether any escape was seen, and the position
// just past the closing quote.
func scanString(buf []byte, pos int) (start, end int, escaped bool, next int, err error) {
	if pos >= len(buf) || buf[pos] != '"' {
		return 0, 0, false, pos, lazyjson.NewError(lazyjson.ExpectedOpeningQuoteChar, pos, "string")
	}
	i := pos + 1
	start = i
	for {
		if i >= len(buf) {
			return 0, 0, false, pos, lazyjson.NewError(lazyjson.UnexpectedEOF, i, "string")
		}
		switch buf[i] {
		case '"':
			return start, i, escaped, i + 1, nil
		case '\\':
			escaped = true
			i += 2 // consume the escape marker and the following byte unconditionally
		default:
			i++
		}
	}
}

// scanNumber requires that buf[pos] begins a JSON number (or, under
// float64Mode, one of the non-standard tokens NaN, Inf, -Inf, or a leading
// '+'). It returns the position just past the number token.
func scanNumber(buf []byte, pos int, float64Mode bool) (next int, err error) {
	i := pos
	if float64Mode {
		if i < len(buf) && buf[i] == '+' {
			i++
		}
		if match(buf, i, "NaN") {
			return i + 3, nil
		}
		if match(buf, i, "Inf") {
			return i + 3, nil
		}
		if i < len(buf) && buf[i] == '-' && match(buf, i+1, "Inf") {
			return i + 4, nil
		}
	}

	start := i
	if i < len(buf) && buf[i] == '-' {
		i++
	}
	if i >= len(buf) || !isDigit(buf[i]) {
		return pos, lazyjson.NewError(lazyjson.InvalidNumber, pos, "number")
	}
	if buf[i] == '0' {
		i++
	} else {
		for i < len(buf) && isDigit(buf[i]) {
			i++
		}
	}
	if i < len(buf) && buf[i] == '.' {
		i++
		j := i
		for i < len(buf) && isDigit(buf[i]) {
			i++
		}
		if i == j {
			return pos, lazyjson.NewError(lazyjson.InvalidNumber, pos, "number")
		}
	}
	if i < len(buf) && (buf[i] == 'e' || buf[i] == 'E') {
		i++
		if i < len(buf) && (buf[i] == '+' || buf[i] == '-') {
			i++
		}
		j := i
		for i < len(buf) && isDigit(buf[i]) {
			i++
		}
		if i == j {
			return pos, lazyjson.NewError(lazyjson.InvalidNumber, pos, "number")
		}
	}
	if i == start {
		return pos, lazyjson.NewError(lazyjson.InvalidNumber, pos, "number")
	}
	return i, nil
}

func match(buf []byte, pos int, lit string) bool {
	end := pos + len(lit)
	return end <= len(buf) && mem.B(buf[pos:end]).Equal(mem.S(lit))
}

// classifyByte maps the first byte of a value to its Kind, or reports
// Invalid if the byte cannot begin a JSON value.
func classifyByte(b byte, float64Mode bool) lazyjson.Kind {
	switch {
	case b == '{':
		return lazyjson.Object
	case b == '[':
		return lazyjson.Array
	case b == '"':
		return lazyjson.String
	case b == '-' || isDigit(b):
		return lazyjson.Number
	case b == 't':
		return lazyjson.True
	case b == 'f':
		return lazyjson.False
	case b == 'n':
		return lazyjson.Null
	case float64Mode && (b == 'N' || b == 'I' || b == '+'):
		return lazyjson.Number
	default:
		return lazyjson.Invalid
	}
}
