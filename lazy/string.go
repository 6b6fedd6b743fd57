package lazy

import (
	"github.com/lazyjson/lazyjson"
	"github.com/lazyjson/lazyjson/walk"
)

// ApplyString requires that v is a String, scans its body, and delivers
// the resulting PtrString to f. Escape sequences are not decoded here;
// call PtrString.Decode for that.
func (v *Value) ApplyString(f func(PtrString) (walk.Signal, error)) (walk.Signal, error) {
	if v.kind != lazyjson.String {
		return walk.Signal{}, lazyjson.NewError(lazyjson.ExpectedOpeningQuoteChar, v.pos, "string")
	}
	start, end, escaped, next, err := scanString(v.buf, v.pos)
	if err != nil {
		return walk.Signal{}, err
	}
	s := PtrString{buf: v.buf, start: start, end: end, escaped: escaped}
	sig, err := f(s)
	if err != nil {
		return walk.Signal{}, err
	}
	if sig.IsContinue() {
		return v.finish(next)
	}
	return sig, nil
}

// String requires that v is a String and returns its PtrString directly,
// equivalent to calling ApplyString with a callback that does nothing but
// accept the value.
func (v *Value) String() (PtrString, error) {
	var out PtrString
	_, err := v.ApplyString(func(s PtrString) (walk.Signal, error) {
		out = s
		return walk.Continue(0), nil
	})
	return out, err
}

// DecodedString requires that v is a String and returns its fully
// unescaped text, giving callers that don't care about PtrString's
// zero-copy escape deferral a single-call path to an owned string.
func (v *Value) DecodedString() (string, error) {
	s, err := v.String()
	if err != nil {
		return "", err
	}
	return s.Decode()
}
