// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package lazyjson

import (
	"go4.org/mem"

	"github.com/lazyjson/lazyjson/internal/escape"
)

// Quote encodes src as the body of a JSON string value: escaped, but without
// the surrounding quotation marks.
func Quote(src string) string { return string(escape.Quote(mem.S(src))) }

// Unquote decodes the already-unquoted body of a JSON string value,
// replacing escape sequences (including \uXXXX surrogate pairs) with their
// UTF-8 equivalents.
func Unquote(body []byte) ([]byte, error) { return escape.Unquote(mem.B(body)) }
