// Package walk implements apply-each, the single traversal primitive shared
// by the lazy and binary JSON representations, and a thin path-navigation
// convenience layer built on top of it.
package walk

import "fmt"

// A Signal is the value an apply-each callback returns to its driver. It is
// either Continue, meaning the driver should resume traversal (optionally
// after skipping the child the callback did not consume), or a short-circuit
// carrying an arbitrary payload that the driver propagates to its own
// caller unchanged.
type Signal struct {
	continue_ bool
	pos       int
	payload   any
}

// Continue reports that the callback wishes the driver to resume traversal.
// pos == 0 means the callback reports no end position for the child it was
// given; the driver skips the child from where it began (whether or not the
// callback read it) to resume. pos > 0 means the callback
// already consumed the child and advanced to byte offset pos.
func Continue(pos int) Signal { return Signal{continue_: true, pos: pos} }

// Skip is shorthand for Continue(0): the callback declines the child
// entirely and the driver must skip it.
func Skip() Signal { return Continue(0) }

// Stop constructs a short-circuit signal carrying payload. A Stop signal
// aborts traversal immediately and is propagated to the driver's caller
// without visiting any further children.
func Stop(payload any) Signal { return Signal{continue_: false, payload: payload} }

// IsContinue reports whether s is a Continue signal.
func (s Signal) IsContinue() bool { return s.continue_ }

// Pos returns the advance offset carried by a Continue signal. It is
// meaningless on a short-circuit signal.
func (s Signal) Pos() int { return s.pos }

// Payload returns the value carried by a short-circuit signal, or nil for
// a Continue signal.
func (s Signal) Payload() any { return s.payload }

// A View is anything that supports the apply-each traversal protocol: the
// lazy and binary representations both implement it. For an object, f is
// called with a string key; for an array, f is called with an int index.
// Calling ApplyEach on a scalar view fails with "not selectable".
//
// Clone returns an independent copy of the view, positioned exactly where
// the receiver currently is. A driver advances a child in place by calling
// its Skip (via a Continue(0) response), so any caller that wants to hang
// on to a child past the end of the callback that received it — Collect is
// the one in this package — must clone it first.
type View interface {
	ApplyEach(f func(key any, child View) (Signal, error)) (Signal, error)
	Clone() View
}

// Each calls f for every member of v in order, stopping early if f returns
// false. It is a convenience wrapper over ApplyEach for callers that don't
// need the Continue(pos) optimization.
func Each(v View, f func(key any, child View) (bool, error)) error {
	_, err := v.ApplyEach(func(key any, child View) (Signal, error) {
		ok, err := f(key, child)
		if err != nil {
			return Signal{}, err
		}
		if !ok {
			return Stop(nil), nil
		}
		return Skip(), nil
	})
	return err
}

// Get returns the child of v selected by key: a string selects an object
// member by name, an int selects an array element by position (negative
// indices count from the end, as for a Go slice).
func Get(v View, key any) (View, error) {
	switch k := key.(type) {
	case string:
		return getKey(v, k)
	case int:
		return getIndex(v, k)
	default:
		return nil, fmt.Errorf("invalid selector %T", key)
	}
}

func getKey(v View, name string) (View, error) {
	sig, err := v.ApplyEach(func(key any, child View) (Signal, error) {
		if s, ok := key.(string); ok && s == name {
			return Stop(child), nil
		}
		return Skip(), nil
	})
	if err != nil {
		return nil, err
	}
	if !sig.IsContinue() {
		return sig.Payload().(View), nil
	}
	return nil, fmt.Errorf("key %q not found", name)
}

func getIndex(v View, index int) (View, error) {
	// A negative index needs the length, so there is no way to avoid a
	// full pass; take it once via Collect rather than a Count pass
	// followed by a second ApplyEach.
	_, children, err := Collect(v)
	if err != nil {
		return nil, err
	}
	target := index
	if target < 0 {
		target += len(children)
	}
	if target < 0 || target >= len(children) {
		return nil, fmt.Errorf("index %d out of range", index)
	}
	return children[target], nil
}

// Path walks a sequence of selectors (as accepted by Get) from v and
// returns the value reached, or the first error encountered.
func Path(v View, keys ...any) (View, error) {
	cur := v
	for _, k := range keys {
		next, err := Get(cur, k)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// Find returns the first child of v for which pred returns true, along with
// its key (string for an object member, int for an array element).
func Find(v View, pred func(key any, child View) (bool, error)) (key any, child View, ok bool, err error) {
	sig, err := v.ApplyEach(func(k any, c View) (Signal, error) {
		match, perr := pred(k, c)
		if perr != nil {
			return Signal{}, perr
		}
		if match {
			return Stop([2]any{k, c}), nil
		}
		return Skip(), nil
	})
	if err != nil {
		return nil, nil, false, err
	}
	if sig.IsContinue() {
		return nil, nil, false, nil
	}
	pair := sig.Payload().([2]any)
	return pair[0], pair[1].(View), true, nil
}

// Count visits every member of v and returns how many there are. It is
// O(n) since both representations are traversal-only. The pass runs over a
// clone of v, so v itself is not advanced and can be traversed again.
func Count(v View) (int, error) {
	n := 0
	sig, err := v.Clone().ApplyEach(func(key any, child View) (Signal, error) {
		n++
		return Skip(), nil
	})
	if err != nil {
		return 0, err
	}
	_ = sig
	return n, nil
}

// Collect visits every member of v and returns all of them in order as
// (key, child) pairs. Each returned child is a clone taken before the
// driver advances past it, so it is safe to apply to after Collect returns.
func Collect(v View) ([]any, []View, error) {
	var keys []any
	var children []View
	_, err := v.ApplyEach(func(key any, child View) (Signal, error) {
		keys = append(keys, key)
		children = append(children, child.Clone())
		return Skip(), nil
	})
	if err != nil {
		return nil, nil, err
	}
	return keys, children, nil
}
