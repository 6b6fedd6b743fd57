package binary

import (
	"math"
	"math/big"

	"github.com/lazyjson/lazyjson"
	"github.com/lazyjson/lazyjson/internal/numeric"
	"github.com/lazyjson/lazyjson/walk"
)

// A Value is a cursor over an owned binary tape, mirroring the lazy view's
// apply-* surface. Unlike lazy.Value, skipping a composite is O(1): the
// total-byte-length field written immediately after the tag is read and
// added to pos without visiting any child.
type Value struct {
	tape []byte
	pos  int
	kind lazyjson.Kind
	opts lazyjson.Options
}

// New constructs a Value positioned at the start of tape.
func New(tape []byte, opts lazyjson.Options) (*Value, error) {
	return newAt(tape, 0, opts)
}

func newAt(tape []byte, pos int, opts lazyjson.Options) (*Value, error) {
	if pos >= len(tape) {
		return nil, lazyjson.NewError(lazyjson.UnexpectedEOF, pos, "value")
	}
	t := tagKind(tape[pos])
	k := t.kind()
	if k == lazyjson.Invalid {
		return nil, lazyjson.NewError(lazyjson.InvalidBinaryTag, pos, "value")
	}
	return &Value{tape: tape, pos: pos, kind: k, opts: opts}, nil
}

// Clone returns an independent *Value positioned exactly where v currently
// is. The clone shares v's backing tape but has its own pos, so advancing
// one does not affect the other.
func (v *Value) Clone() walk.View {
	clone := *v
	return &clone
}

// Kind reports the grammatical category of v, distinguishing Int and Float
// where the lazy view would only report Number.
func (v *Value) Kind() lazyjson.Kind { return v.kind }

// Pos reports v's offset into its tape.
func (v *Value) Pos() int { return v.pos }

// Tape exposes the backing byte slice.
func (v *Value) Tape() []byte { return v.tape }

func (v *Value) tagByte() byte { return v.tape[v.pos] }

// lengthField reads the u32 total-byte-length recorded immediately after
// the tag of a composite value, per the wire format in 4.2.
func (v *Value) lengthField() uint32 {
	return order.Uint32(v.tape[v.pos+1 : v.pos+5])
}

// Skip advances v past its value and returns the new position. For Object
// and Array this is O(1): the length field gives the answer directly. For
// everything else it is the fixed width of the tag's payload.
func (v *Value) Skip() (int, error) {
	switch v.kind {
	case lazyjson.Object, lazyjson.Array:
		v.pos += int(v.lengthField())
	case lazyjson.Null:
		v.pos++
	case lazyjson.True:
		v.pos++
	case lazyjson.False:
		v.pos++
	case lazyjson.String:
		n := order.Uint32(v.tape[v.pos+1 : v.pos+5])
		v.pos += 5 + int(n)
	case lazyjson.Int:
		w, err := v.intWidth()
		if err != nil {
			return v.pos, err
		}
		v.pos += w
	case lazyjson.Float:
		w, err := v.floatWidth()
		if err != nil {
			return v.pos, err
		}
		v.pos += w
	}
	return v.pos, nil
}

func (v *Value) intWidth() (int, error) {
	switch tagSize(v.tagByte()) {
	case intWidth8:
		return 2, nil
	case intWidth16:
		return 3, nil
	case intWidth32:
		return 5, nil
	case intWidth64:
		return 9, nil
	case intWidth128:
		return 17, nil
	case intWidthBig:
		n := order.Uint32(v.tape[v.pos+2 : v.pos+6])
		return 6 + int(n), nil
	default:
		return 0, lazyjson.NewError(lazyjson.InvalidBinaryTag, v.pos, "int")
	}
}

func (v *Value) floatWidth() (int, error) {
	switch tagSize(v.tagByte()) {
	case floatWidth32:
		return 5, nil
	case floatWidth64:
		return 9, nil
	case floatWidthBig:
		n := order.Uint32(v.tape[v.pos+1 : v.pos+5])
		return 5 + int(n), nil
	default:
		return 0, lazyjson.NewError(lazyjson.InvalidBinaryTag, v.pos, "float")
	}
}

// ApplyObject requires that v is an Object and iterates its members in
// stored order, following the same Continue(pos) contract as lazy.Value.
func (v *Value) ApplyObject(f func(key string, child *Value) (walk.Signal, error)) (walk.Signal, error) {
	if v.kind != lazyjson.Object {
		return walk.Signal{}, lazyjson.NewError(lazyjson.ExpectedOpeningObjectChar, v.pos, "object")
	}
	end := v.pos + int(v.lengthField())
	count := order.Uint32(v.tape[v.pos+5 : v.pos+9])
	p := v.pos + 9
	for i := uint32(0); i < count; i++ {
		keyLen := order.Uint32(v.tape[p : p+4])
		key := string(v.tape[p+4 : p+4+int(keyLen)])
		p += 4 + int(keyLen)

		child, err := newAt(v.tape, p, v.opts)
		if err != nil {
			return walk.Signal{}, err
		}
		sig, err := f(key, child)
		if err != nil {
			return walk.Signal{}, err
		}
		if !sig.IsContinue() {
			return sig, nil
		}
		if sig.Pos() == 0 {
			child.pos = p
			if _, err := child.Skip(); err != nil {
				return walk.Signal{}, err
			}
			p = child.pos
		} else {
			p = sig.Pos()
		}
	}
	v.pos = end
	return walk.Continue(end), nil
}

// ApplyArray requires that v is an Array and iterates its elements in
// stored order.
func (v *Value) ApplyArray(f func(index int, child *Value) (walk.Signal, error)) (walk.Signal, error) {
	if v.kind != lazyjson.Array {
		return walk.Signal{}, lazyjson.NewError(lazyjson.ExpectedOpeningArrayChar, v.pos, "array")
	}
	end := v.pos + int(v.lengthField())
	count := order.Uint32(v.tape[v.pos+5 : v.pos+9])
	p := v.pos + 9
	for i := uint32(0); i < count; i++ {
		child, err := newAt(v.tape, p, v.opts)
		if err != nil {
			return walk.Signal{}, err
		}
		sig, err := f(int(i), child)
		if err != nil {
			return walk.Signal{}, err
		}
		if !sig.IsContinue() {
			return sig, nil
		}
		if sig.Pos() == 0 {
			child.pos = p
			if _, err := child.Skip(); err != nil {
				return walk.Signal{}, err
			}
			p = child.pos
		} else {
			p = sig.Pos()
		}
	}
	v.pos = end
	return walk.Continue(end), nil
}

// ApplyString requires that v is a String and delivers its already-decoded
// text to f. Unlike the lazy view there is no escape state to carry: the
// writer decoded every string when it built the tape.
func (v *Value) ApplyString(f func(string) (walk.Signal, error)) (walk.Signal, error) {
	if v.kind != lazyjson.String {
		return walk.Signal{}, lazyjson.NewError(lazyjson.ExpectedOpeningQuoteChar, v.pos, "string")
	}
	n := order.Uint32(v.tape[v.pos+1 : v.pos+5])
	s := string(v.tape[v.pos+5 : v.pos+5+int(n)])
	sig, err := f(s)
	if err != nil {
		return walk.Signal{}, err
	}
	if sig.IsContinue() {
		v.pos += 5 + int(n)
		return walk.Continue(v.pos), nil
	}
	return sig, nil
}

// String requires that v is a String and returns its decoded text.
func (v *Value) String() (string, error) {
	var out string
	_, err := v.ApplyString(func(s string) (walk.Signal, error) {
		out = s
		return walk.Continue(0), nil
	})
	return out, err
}

// DecodedString is an alias for String: the tape already stores strings
// decoded, so there is no separate decode step to name here. It exists so
// the generic materializer can treat lazy.Value and binary.Value through
// one interface regardless of which one still owes a decode.
func (v *Value) DecodedString() (string, error) { return v.String() }

// ApplyNumber requires that v is an Int or Float and delivers its
// classified value to f.
func (v *Value) ApplyNumber(f func(numeric.Value) (walk.Signal, error)) (walk.Signal, error) {
	var n numeric.Value
	var width int
	var err error
	switch v.kind {
	case lazyjson.Int:
		n, width, err = v.readInt()
	case lazyjson.Float:
		n, width, err = v.readFloat()
	default:
		return walk.Signal{}, lazyjson.NewError(lazyjson.InvalidNumber, v.pos, "number")
	}
	if err != nil {
		return walk.Signal{}, err
	}
	sig, err := f(n)
	if err != nil {
		return walk.Signal{}, err
	}
	if sig.IsContinue() {
		v.pos += width
		return walk.Continue(v.pos), nil
	}
	return sig, nil
}

// Number requires that v is an Int or Float and returns its classified
// value directly.
func (v *Value) Number() (numeric.Value, error) {
	var out numeric.Value
	_, err := v.ApplyNumber(func(n numeric.Value) (walk.Signal, error) {
		out = n
		return walk.Continue(0), nil
	})
	return out, err
}

func (v *Value) readInt() (numeric.Value, int, error) {
	p := v.pos
	switch tagSize(v.tape[p]) {
	case intWidth8:
		return numeric.Int64Value(int64(int8(v.tape[p+1]))), 2, nil
	case intWidth16:
		i := int16(order.Uint16(v.tape[p+1 : p+3]))
		return numeric.Int64Value(int64(i)), 3, nil
	case intWidth32:
		i := int32(order.Uint32(v.tape[p+1 : p+5]))
		return numeric.Int64Value(int64(i)), 5, nil
	case intWidth64:
		i := int64(order.Uint64(v.tape[p+1 : p+9]))
		return numeric.Int64Value(i), 9, nil
	case intWidth128:
		lo := order.Uint64(v.tape[p+1 : p+9])
		hi := int64(order.Uint64(v.tape[p+9 : p+17]))
		return numeric.Int128Value(numeric.Int128{Hi: hi, Lo: lo}), 17, nil
	case intWidthBig:
		sign := v.tape[p+1]
		n := order.Uint32(v.tape[p+2 : p+6])
		start := p + 6
		bi := new(big.Int).SetBytes(v.tape[start : start+int(n)])
		if sign == 1 {
			bi.Neg(bi)
		}
		return numeric.BigIntValue(bi), 6 + int(n), nil
	default:
		return numeric.Value{}, 0, lazyjson.NewError(lazyjson.InvalidBinaryTag, p, "int")
	}
}

func (v *Value) readFloat() (numeric.Value, int, error) {
	p := v.pos
	switch tagSize(v.tape[p]) {
	case floatWidth32:
		bits := order.Uint32(v.tape[p+1 : p+5])
		return numeric.Float64Value(float64(math.Float32frombits(bits))), 5, nil
	case floatWidth64:
		bits := order.Uint64(v.tape[p+1 : p+9])
		return numeric.Float64Value(math.Float64frombits(bits)), 9, nil
	case floatWidthBig:
		n := order.Uint32(v.tape[p+1 : p+5])
		lit := string(v.tape[p+5 : p+5+int(n)])
		nv, err := numeric.ParseFloat(lit)
		if err != nil {
			return numeric.Value{}, 0, lazyjson.NewError(lazyjson.InvalidNumber, p, "float")
		}
		return nv, 5 + int(n), nil
	default:
		return numeric.Value{}, 0, lazyjson.NewError(lazyjson.InvalidBinaryTag, p, "float")
	}
}

// ApplyEach implements walk.View over the binary tape, mirroring
// lazy.Value's ApplyEach so materializers and selectors share one code
// path regardless of which representation backs them.
func (v *Value) ApplyEach(f func(key any, child walk.View) (walk.Signal, error)) (walk.Signal, error) {
	switch v.kind {
	case lazyjson.Object:
		return v.ApplyObject(func(key string, child *Value) (walk.Signal, error) {
			return f(key, child)
		})
	case lazyjson.Array:
		return v.ApplyArray(func(index int, child *Value) (walk.Signal, error) {
			return f(index, child)
		})
	default:
		return walk.Signal{}, lazyjson.NewError(lazyjson.TypeMismatch, v.pos, "not selectable")
	}
}
