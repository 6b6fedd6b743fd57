package lazy

import (
	"github.com/lazyjson/lazyjson"
	"github.com/lazyjson/lazyjson/walk"
)

// ApplyArray requires that v is an Array, and iterates its elements in
// positional order, following the same Continue(pos) contract as
// ApplyObject. In JSON-Lines mode there are no brackets; elements are
// separated by one of "\n", "\r", or "\r\n", optionally padded with
// spaces or tabs, and EOF terminates the sequence cleanly.
func (v *Value) ApplyArray(f func(index int, child *Value) (walk.Signal, error)) (walk.Signal, error) {
	if v.kind != lazyjson.Array {
		return walk.Signal{}, lazyjson.NewError(lazyjson.ExpectedOpeningArrayChar, v.pos, "array")
	}
	if v.opts.JSONLines {
		return v.applyArrayLines(f)
	}

	buf := v.buf
	p := v.pos
	if p >= len(buf) || buf[p] != '[' {
		return walk.Signal{}, lazyjson.NewError(lazyjson.ExpectedOpeningArrayChar, p, "array")
	}
	p++
	p = skipWS(buf, p)
	if p < len(buf) && buf[p] == ']' {
		return v.finish(p + 1)
	}

	idx := 0
	for {
		p = skipWS(buf, p)
		child, err := newChild(buf, p, v.opts.ChildOptions())
		if err != nil {
			return walk.Signal{}, err
		}

		start := child.pos
		sig, err := f(idx, child)
		if err != nil {
			return walk.Signal{}, err
		}
		if !sig.IsContinue() {
			return sig, nil
		}
		if sig.Pos() == 0 {
			child.pos = start
			if _, err := child.Skip(); err != nil {
				return walk.Signal{}, err
			}
			p = child.pos
		} else {
			p = sig.Pos()
		}
		idx++

		p = skipWS(buf, p)
		if p >= len(buf) {
			return walk.Signal{}, lazyjson.NewError(lazyjson.UnexpectedEOF, p, "array")
		}
		switch buf[p] {
		case ',':
			p++
			continue
		case ']':
			p++
			return v.finish(p)
		default:
			return walk.Signal{}, lazyjson.NewError(lazyjson.ExpectedComma, p, "array")
		}
	}
}

// applyArrayLines implements ApplyArray's JSON-Lines mode: the top level is
// treated as an implicit array whose elements are separated by newlines.
// Blank lines (all whitespace) are skipped without producing an element.
func (v *Value) applyArrayLines(f func(index int, child *Value) (walk.Signal, error)) (walk.Signal, error) {
	buf := v.buf
	p := v.pos
	idx := 0
	for {
		p = skipLineSpace(buf, p)
		if p >= len(buf) {
			return v.finish(p)
		}
		if isLineBreak(buf, p) {
			p = consumeLineBreak(buf, p)
			continue
		}

		child, err := newChild(buf, p, v.opts.ChildOptions())
		if err != nil {
			return walk.Signal{}, err
		}

		start := child.pos
		sig, err := f(idx, child)
		if err != nil {
			return walk.Signal{}, err
		}
		if !sig.IsContinue() {
			return sig, nil
		}
		if sig.Pos() == 0 {
			child.pos = start
			if _, err := child.Skip(); err != nil {
				return walk.Signal{}, err
			}
			p = child.pos
		} else {
			p = sig.Pos()
		}
		idx++

		p = skipLineSpace(buf, p)
		if p >= len(buf) {
			return v.finish(p)
		}
		if !isLineBreak(buf, p) {
			return walk.Signal{}, lazyjson.NewError(lazyjson.ExpectedNewline, p, "jsonlines")
		}
		p = consumeLineBreak(buf, p)
	}
}

// skipLineSpace skips spaces and tabs, but not newlines.
func skipLineSpace(buf []byte, pos int) int {
	for pos < len(buf) && (buf[pos] == ' ' || buf[pos] == '\t') {
		pos++
	}
	return pos
}

func isLineBreak(buf []byte, pos int) bool {
	return buf[pos] == '\n' || buf[pos] == '\r'
}

// consumeLineBreak consumes one line terminator: "\n", "\r", or "\r\n".
func consumeLineBreak(buf []byte, pos int) int {
	if buf[pos] == '\r' {
		pos++
		if pos < len(buf) && buf[pos] == '\n' {
			pos++
		}
		return pos
	}
	return pos + 1
}
