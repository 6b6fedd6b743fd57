// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of the body of a JSON
// string value (the text between, but not including, the surrounding
// quotation marks).
package escape

import (
	"unicode/utf8"

	"go4.org/mem"
)

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel: not a control character
}

var hexDigit = []byte("0123456789abcdef")

const (
	runeReplacement   = '�' // decoding failure marker
	runeLineSeparator = ' '
	runeParaSeparator = ' '
)

// Quote encodes src using the standard JSON escape set so the result is
// safe to embed as the body of a JSON string. A handful of runes that are
// syntactically legal in JSON but troublesome for JavaScript consumers
// (U+2028, U+2029) or that indicate a decoding failure (U+FFFD) are always
// escaped rather than emitted literally.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len())
	putByte := func(bs ...byte) { buf = append(buf, bs...) }
	putUEscape := func(r rune) {
		putByte('\\', 'u',
			hexDigit[(r>>12)&0xf], hexDigit[(r>>8)&0xf],
			hexDigit[(r>>4)&0xf], hexDigit[r&0xf])
	}

	for src.Len() > 0 {
		r, n := mem.DecodeRune(src)
		if r < utf8.RuneSelf {
			if r < ' ' {
				if b := controlEsc[r]; b != 0 {
					putByte('\\', b)
				} else {
					putUEscape(r)
				}
			} else if r == '\\' || r == '"' {
				putByte('\\', byte(r))
			} else {
				putByte(byte(r))
			}
			src = src.SliceFrom(n)
			continue
		}

		switch r {
		case runeReplacement, runeLineSeparator, runeParaSeparator:
			putUEscape(r)
		default:
			var rbuf [6]byte
			m := utf8.EncodeRune(rbuf[:], r)
			buf = append(buf, rbuf[:m]...)
		}
		src = src.SliceFrom(n)
	}
	return buf
}
