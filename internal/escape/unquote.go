// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

// Unquote decodes a byte slice containing the body of a JSON string value
// (the enclosing double quotation marks must already have been removed).
//
// Escape sequences are replaced with their unescaped equivalents, including
// joining a \uXXXX high/low surrogate pair into the single rune it encodes.
// An invalid escape is replaced by the Unicode replacement rune rather than
// failing the whole decode; Unquote reports an error only for a plainly
// incomplete escape sequence.
func Unquote(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		dec = mem.Append(dec, src)
		return dec, nil
	}

	putByte := func(bs ...byte) { dec = append(dec, bs...) }
	putRune := func(r rune) {
		var buf [6]byte
		n := utf8.EncodeRune(buf[:], r)
		dec = append(dec, buf[:n]...)
	}

	for src.Len() != 0 {
		dec = mem.Append(dec, src.SliceTo(i))

		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}
		r, n := mem.DecodeRune(src)
		if n == 0 {
			n++
		}
		src = src.SliceFrom(n)

		switch r {
		case '"', '\\', '/':
			putByte(byte(r))
		case 'b':
			putByte('\b')
		case 'f':
			putByte('\f')
		case 'n':
			putByte('\n')
		case 'r':
			putByte('\r')
		case 't':
			putByte('\t')
		case 'u':
			r1, rest, ok, err := readHex4(src)
			if err != nil {
				return nil, err
			}
			src = rest
			if !ok {
				putRune(utf8.RuneError)
				break
			}
			if utf16.IsSurrogate(r1) {
				r2, rest2, ok2 := peekLowSurrogate(src)
				if ok2 {
					if joined := utf16.DecodeRune(r1, r2); joined != utf8.RuneError {
						putRune(joined)
						src = rest2
						break
					}
				}
				putRune(utf8.RuneError)
			} else {
				putRune(r1)
			}
		default:
			putRune(utf8.RuneError)
		}

		i = mem.IndexByte(src, '\\')
		if i < 0 {
			dec = mem.Append(dec, src)
			break
		}
	}
	return dec, nil
}

// peekLowSurrogate attempts to consume a trailing "\uXXXX" low surrogate
// from the front of src, returning the decoded unit, the remaining input,
// and whether a well-formed low surrogate was found.
func peekLowSurrogate(src mem.RO) (rune, mem.RO, bool) {
	if src.Len() < 6 || src.At(0) != '\\' || src.At(1) != 'u' {
		return 0, src, false
	}
	r2, rest, ok, err := readHex4(src.SliceFrom(2))
	if err != nil || !ok || !utf16.IsSurrogate(r2) {
		return 0, src, false
	}
	return r2, rest, true
}

// readHex4 consumes exactly four hex digits from the front of src and
// returns the rune they encode. ok is false (with a nil error) if the four
// bytes were present but not valid hex digits; err is non-nil only if fewer
// than four bytes remain.
func readHex4(src mem.RO) (rune, mem.RO, bool, error) {
	if src.Len() < 4 {
		return 0, src, false, errors.New("incomplete Unicode escape")
	}
	v, err := parseHex(src.SliceTo(4))
	if err != nil {
		return 0, src.SliceFrom(4), false, nil
	}
	return rune(v), src.SliceFrom(4), true, nil
}

func parseHex(data mem.RO) (int64, error) {
	var v int64
	for i := 0; i < data.Len(); i++ {
		b := data.At(i)
		v <<= 4
		switch {
		case '0' <= b && b <= '9':
			v += int64(b - '0')
		case 'a' <= b && b <= 'f':
			v += int64(b - 'a' + 10)
		case 'A' <= b && b <= 'F':
			v += int64(b - 'A' + 10)
		default:
			return 0, fmt.Errorf("invalid hex digit %q", b)
		}
	}
	return v, nil
}
