package lazy

import (
	"github.com/lazyjson/lazyjson"
	"github.com/lazyjson/lazyjson/walk"
)

// ApplyObject requires that v is an Object, and iterates its members in
// input order. For each member, f is called with the (still escaped) key
// and the child value. f's return follows the walk.Signal contract: a
// Continue(0) means f reports no end position, so ApplyObject skips child
// from where it began (whether or not f read it);
// Continue(n>0) means f already advanced child to byte n; any other signal
// short-circuits the traversal and is returned to the caller unchanged.
//
// ApplyObject tolerates a single empty object ({}). Unknown keys are simply
// passed through to f; it is the caller's responsibility to ignore them.
func (v *Value) ApplyObject(f func(key PtrString, child *Value) (walk.Signal, error)) (walk.Signal, error) {
	if v.kind != lazyjson.Object {
		return walk.Signal{}, lazyjson.NewError(lazyjson.ExpectedOpeningObjectChar, v.pos, "object")
	}
	buf := v.buf
	p := v.pos
	if p >= len(buf) || buf[p] != '{' {
		return walk.Signal{}, lazyjson.NewError(lazyjson.ExpectedOpeningObjectChar, p, "object")
	}
	p++
	p = skipWS(buf, p)
	if p < len(buf) && buf[p] == '}' {
		return v.finish(p + 1)
	}

	for {
		p = skipWS(buf, p)
		if p >= len(buf) {
			return walk.Signal{}, lazyjson.NewError(lazyjson.UnexpectedEOF, p, "object")
		}
		keyStart, keyEnd, keyEscaped, next, err := scanString(buf, p)
		if err != nil {
			return walk.Signal{}, err
		}
		key := PtrString{buf: buf, start: keyStart, end: keyEnd, escaped: keyEscaped}
		p = skipWS(buf, next)
		if p >= len(buf) || buf[p] != ':' {
			return walk.Signal{}, lazyjson.NewError(lazyjson.ExpectedColon, p, "object")
		}
		p = skipWS(buf, p+1)

		child, err := newChild(buf, p, v.opts.ChildOptions())
		if err != nil {
			return walk.Signal{}, err
		}

		start := child.pos
		sig, err := f(key, child)
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

		p = skipWS(buf, p)
		if p >= len(buf) {
			return walk.Signal{}, lazyjson.NewError(lazyjson.UnexpectedEOF, p, "object")
		}
		switch buf[p] {
		case ',':
			p++
			continue
		case '}':
			p++
			return v.finish(p)
		default:
			return walk.Signal{}, lazyjson.NewError(lazyjson.ExpectedComma, p, "object")
		}
	}
}
