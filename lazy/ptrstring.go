// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package lazy

import (
	"go4.org/mem"

	"github.com/lazyjson/lazyjson"
)

// PtrString is a non-owning, escape-aware view into the body of a JSON
// string literal, as found between (but excluding) its surrounding double
// quotes in the original buffer. It never escapes this package's callers
// without being decoded first: once the backing buffer may go away, the
// only safe thing to do with a PtrString is call Decode.
type PtrString struct {
	buf     []byte
	start   int
	end     int
	escaped bool
}

// Len reports the length in bytes of the raw (possibly still-escaped) text.
func (p PtrString) Len() int { return p.end - p.start }

// Escaped reports whether the string contains at least one backslash
// escape sequence. If false, Raw() is already the decoded value.
func (p PtrString) Escaped() bool { return p.escaped }

// Raw returns the undecoded text of the string body, excluding the
// surrounding quotes. The returned slice aliases the original buffer and
// must not be retained past its lifetime.
func (p PtrString) Raw() []byte { return p.buf[p.start:p.end] }

// Decode returns the fully unescaped string value. If no escapes were
// present, this is simply a copy of Raw(); otherwise the standard JSON
// escape set is expanded.
func (p PtrString) Decode() (string, error) {
	if !p.escaped {
		return string(p.Raw()), nil
	}
	dec, err := lazyjson.Unquote(p.Raw())
	if err != nil {
		return "", err
	}
	return string(dec), nil
}

// Equal reports whether the decoded value of p equals s, without
// allocating when p requires no decoding.
func (p PtrString) Equal(s string) bool {
	if !p.escaped {
		return mem.B(p.Raw()).Equal(mem.S(s))
	}
	dec, err := p.Decode()
	return err == nil && dec == s
}
