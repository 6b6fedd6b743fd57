// Package lazy implements the lazy view over raw JSON bytes: a cursor that
// validates and parses objects, arrays, strings, and numbers only on
// demand. See the package-level documentation of lazyjson for an overview
// of how this fits with the binary and materialized representations.
package lazy

import (
	"github.com/lazyjson/lazyjson"
	"github.com/lazyjson/lazyjson/walk"
)

// A Value is a cursor over a byte buffer, positioned at the start of a JSON
// value whose leading byte has been classified but whose contents have not
// yet been validated or parsed. A Value borrows its buffer and must not
// outlive it.
type Value struct {
	buf  []byte
	pos  int
	kind lazyjson.Kind
	opts lazyjson.Options
	root bool
}

// New constructs a Value positioned at the first non-whitespace byte of
// buf. Validation at this point is partial: only null, true, and false are
// fully verified; objects, arrays, strings, and numbers are recognized only
// by their leading byte.
func New(buf []byte, opts lazyjson.Options) (*Value, error) {
	v := &Value{buf: buf, opts: opts, root: true}
	if err := v.classify(); err != nil {
		return nil, err
	}
	return v, nil
}

func newChild(buf []byte, pos int, opts lazyjson.Options) (*Value, error) {
	v := &Value{buf: buf, pos: pos, opts: opts}
	if err := v.classify(); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *Value) classify() error {
	if v.opts.JSONLines {
		v.kind = lazyjson.Array
		return nil
	}
	v.pos = skipWS(v.buf, v.pos)
	if v.pos >= len(v.buf) {
		return lazyjson.NewError(lazyjson.UnexpectedEOF, v.pos, "value")
	}
	b := v.buf[v.pos]
	v.kind = classifyByte(b, v.opts.Float64)
	switch v.kind {
	case lazyjson.Invalid:
		return lazyjson.NewError(lazyjson.InvalidChar, v.pos, "value")
	case lazyjson.True:
		if _, err := scanKeyword(v.buf, v.pos, "true"); err != nil {
			return err
		}
	case lazyjson.False:
		if _, err := scanKeyword(v.buf, v.pos, "false"); err != nil {
			return err
		}
	case lazyjson.Null:
		if _, err := scanKeyword(v.buf, v.pos, "null"); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns an independent *Value positioned exactly where v currently
// is. The clone shares v's backing buffer but has its own pos, so advancing
// one does not affect the other.
func (v *Value) Clone() walk.View {
	clone := *v
	return &clone
}

// Kind reports the grammatical category of v.
func (v *Value) Kind() lazyjson.Kind { return v.kind }

// Pos reports the current cursor offset into the backing buffer.
func (v *Value) Pos() int { return v.pos }

// Options reports the options in effect for v.
func (v *Value) Options() lazyjson.Options { return v.opts }

// Buf exposes the backing buffer so package-adjacent helpers (the binary
// writer, the materializer) can read raw text spans without copying.
func (v *Value) Buf() []byte { return v.buf }

// Skip advances v past its value without materializing it, and returns the
// position just past it. For composite values this still visits every
// member, since skipping a child depends on knowing its extent; that
// recursive descent is the cost the binary view eliminates with its
// embedded length fields.
func (v *Value) Skip() (int, error) {
	switch v.kind {
	case lazyjson.Object:
		_, err := v.ApplyObject(func(PtrString, *Value) (walk.Signal, error) {
			return walk.Skip(), nil
		})
		return v.pos, err
	case lazyjson.Array:
		_, err := v.ApplyArray(func(int, *Value) (walk.Signal, error) {
			return walk.Skip(), nil
		})
		return v.pos, err
	case lazyjson.True:
		v.pos += 4
	case lazyjson.False:
		v.pos += 5
	case lazyjson.Null:
		v.pos += 4
	case lazyjson.String:
		_, _, _, next, err := scanString(v.buf, v.pos)
		if err != nil {
			return v.pos, err
		}
		v.pos = next
	case lazyjson.Number:
		next, err := scanNumber(v.buf, v.pos, v.opts.Float64)
		if err != nil {
			return v.pos, err
		}
		v.pos = next
	}
	if v.root {
		if err := v.checkTrailing(); err != nil {
			return v.pos, err
		}
	}
	return v.pos, nil
}

// finish records that v has been fully consumed through pos, runs the
// top-level trailing-content check when v is a root value, and returns the
// Continue signal the apply-* methods hand back to their own caller.
func (v *Value) finish(pos int) (walk.Signal, error) {
	v.pos = pos
	if v.root {
		if err := v.checkTrailing(); err != nil {
			return walk.Signal{}, err
		}
	}
	return walk.Continue(pos), nil
}

// checkTrailing verifies that nothing but whitespace remains after a fully
// consumed root value, per the top-level validation rule in 4.1.
func (v *Value) checkTrailing() error {
	p := skipWS(v.buf, v.pos)
	if p != len(v.buf) {
		return lazyjson.NewError(lazyjson.InvalidChar, p, "trailing content")
	}
	return nil
}
