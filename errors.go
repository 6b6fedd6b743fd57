package lazyjson

import "fmt"

// An ErrorKind classifies the failures the core can report. The set is
// closed: callers may switch over it exhaustively.
type ErrorKind byte

const (
	UnexpectedEOF ErrorKind = iota
	InvalidJSON
	ExpectedOpeningObjectChar
	ExpectedOpeningArrayChar
	ExpectedOpeningQuoteChar
	ExpectedColon
	ExpectedComma
	ExpectedNewline
	InvalidNumber
	InvalidChar
	InvalidBinaryTag
	TypeMismatch
	DuplicateKey // reserved; not raised by default
)

var errorKindNames = [...]string{
	UnexpectedEOF:             "unexpected end of input",
	InvalidJSON:               "invalid JSON",
	ExpectedOpeningObjectChar: `expected "{"`,
	ExpectedOpeningArrayChar:  `expected "["`,
	ExpectedOpeningQuoteChar:  `expected '"'`,
	ExpectedColon:             `expected ":"`,
	ExpectedComma:             `expected ","`,
	ExpectedNewline:           "expected newline",
	InvalidNumber:             "invalid number",
	InvalidChar:               "invalid character",
	InvalidBinaryTag:          "invalid binary tag",
	TypeMismatch:              "type mismatch",
	DuplicateKey:              "duplicate key",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return "unknown error"
}

// Error is the concrete type of every failure the core reports. Pos is the
// absolute byte offset into the original input at which the failure was
// detected; Context names what the parser was attempting to recognize
// ("object", "array", "string", "number", "value", or a similar label). It
// is empty for errors built by TypeMismatchError, which name the struct
// field in Field instead.
type Error struct {
	Kind    ErrorKind
	Pos     int
	Context string

	// Field is set only for TypeMismatch errors raised by the record
	// materializer, and names the struct field that rejected its value.
	Field string

	// Want, if non-empty, names the Go type the materializer expected.
	Want string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: field %q: %s (want %s) at byte %d", e.Kind, e.Field, e.Kind, e.Want, e.Pos)
	}
	if e.Context != "" {
		return fmt.Sprintf("%s: parsing %s at byte %d", e.Kind, e.Context, e.Pos)
	}
	return fmt.Sprintf("%s at byte %d", e.Kind, e.Pos)
}

// NewError constructs an *Error with the given kind, position, and context
// label.
func NewError(kind ErrorKind, pos int, context string) *Error {
	return &Error{Kind: kind, Pos: pos, Context: context}
}

// TypeMismatchError constructs a TypeMismatch error naming the offending
// struct field and its declared type.
func TypeMismatchError(pos int, field, want string) *Error {
	return &Error{Kind: TypeMismatch, Pos: pos, Field: field, Want: want}
}
