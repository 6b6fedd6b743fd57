package binary

import (
	"bytes"
	"encoding/binary"
	"math"
	"math/big"

	"github.com/lazyjson/lazyjson"
	"github.com/lazyjson/lazyjson/internal/numeric"
	"github.com/lazyjson/lazyjson/lazy"
	"github.com/lazyjson/lazyjson/walk"
)

var order = binary.LittleEndian

// Encode traverses v once, using apply-object/apply-array/apply-string/
// apply-number, and returns the tape of its binary re-encoding. Numbers are
// re-classified into Int or Float as they are written; the lazy Number
// kind does not survive into the tape. Strings are decoded: an unescaped
// PtrString is copied verbatim, otherwise the standard escape set is
// expanded into UTF-8.
func Encode(v *lazy.Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeValue(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeValue(buf *bytes.Buffer, v *lazy.Value) error {
	switch v.Kind() {
	case lazyjson.Object:
		return encodeObject(buf, v)
	case lazyjson.Array:
		return encodeArray(buf, v)
	case lazyjson.String:
		return encodeString(buf, v)
	case lazyjson.Number:
		return encodeNumber(buf, v)
	case lazyjson.True:
		buf.WriteByte(makeTag(tagTrue, 0))
		_, err := v.Skip()
		return err
	case lazyjson.False:
		buf.WriteByte(makeTag(tagFalse, 0))
		_, err := v.Skip()
		return err
	case lazyjson.Null:
		buf.WriteByte(makeTag(tagNull, 0))
		_, err := v.Skip()
		return err
	default:
		return lazyjson.NewError(lazyjson.InvalidJSON, v.Pos(), "value")
	}
}

// encodeObject writes a placeholder length and member count, then patches
// both once the members are known, following the same placeholder-patch
// approach as a length-prefixed child: reserve four bytes, write the body,
// then overwrite the reservation in place.
func encodeObject(buf *bytes.Buffer, v *lazy.Value) error {
	start := buf.Len()
	buf.WriteByte(makeTag(tagObj, 0))
	lenOff := reserveU32(buf)
	countOff := reserveU32(buf)

	n := 0
	_, err := v.ApplyObject(func(key lazy.PtrString, child *lazy.Value) (walk.Signal, error) {
		if err := encodeKey(buf, key); err != nil {
			return walk.Signal{}, err
		}
		if err := encodeValue(buf, child); err != nil {
			return walk.Signal{}, err
		}
		n++
		return walk.Continue(child.Pos()), nil
	})
	if err != nil {
		return err
	}
	patchU32(buf, lenOff, uint32(buf.Len()-start))
	patchU32(buf, countOff, uint32(n))
	return nil
}

func encodeArray(buf *bytes.Buffer, v *lazy.Value) error {
	start := buf.Len()
	buf.WriteByte(makeTag(tagArr, 0))
	lenOff := reserveU32(buf)
	countOff := reserveU32(buf)

	n := 0
	_, err := v.ApplyArray(func(index int, child *lazy.Value) (walk.Signal, error) {
		if err := encodeValue(buf, child); err != nil {
			return walk.Signal{}, err
		}
		n++
		return walk.Continue(child.Pos()), nil
	})
	if err != nil {
		return err
	}
	patchU32(buf, lenOff, uint32(buf.Len()-start))
	patchU32(buf, countOff, uint32(n))
	return nil
}

func encodeKey(buf *bytes.Buffer, key lazy.PtrString) error {
	s, err := key.Decode()
	if err != nil {
		return err
	}
	writeLenPrefixed(buf, []byte(s))
	return nil
}

func encodeString(buf *bytes.Buffer, v *lazy.Value) error {
	_, err := v.ApplyString(func(s lazy.PtrString) (walk.Signal, error) {
		dec, err := s.Decode()
		if err != nil {
			return walk.Signal{}, err
		}
		buf.WriteByte(makeTag(tagStr, 0))
		writeLenPrefixed(buf, []byte(dec))
		return walk.Continue(0), nil
	})
	return err
}

func encodeNumber(buf *bytes.Buffer, v *lazy.Value) error {
	_, err := v.ApplyNumber(func(n numeric.Value) (walk.Signal, error) {
		writeNumber(buf, n)
		return walk.Continue(0), nil
	})
	return err
}

func writeNumber(buf *bytes.Buffer, n numeric.Value) {
	switch n.Kind() {
	case numeric.KindInt64:
		writeInt64(buf, n.Int64())
	case numeric.KindInt128:
		i := n.Int128()
		buf.WriteByte(makeTag(tagInt, intWidth128))
		var b [16]byte
		order.PutUint64(b[0:8], i.Lo)
		order.PutUint64(b[8:16], uint64(i.Hi))
		buf.Write(b[:])
	case numeric.KindBigInt:
		writeBigInt(buf, n.BigInt())
	case numeric.KindFloat64:
		writeFloat64(buf, n.Float64())
	case numeric.KindBigFloat:
		writeBigFloat(buf, n.BigFloat())
	}
}

func writeInt64(buf *bytes.Buffer, i int64) {
	switch {
	case i >= math.MinInt8 && i <= math.MaxInt8:
		buf.WriteByte(makeTag(tagInt, intWidth8))
		buf.WriteByte(byte(int8(i)))
	case i >= math.MinInt16 && i <= math.MaxInt16:
		buf.WriteByte(makeTag(tagInt, intWidth16))
		var b [2]byte
		order.PutUint16(b[:], uint16(int16(i)))
		buf.Write(b[:])
	case i >= math.MinInt32 && i <= math.MaxInt32:
		buf.WriteByte(makeTag(tagInt, intWidth32))
		var b [4]byte
		order.PutUint32(b[:], uint32(int32(i)))
		buf.Write(b[:])
	default:
		buf.WriteByte(makeTag(tagInt, intWidth64))
		var b [8]byte
		order.PutUint64(b[:], uint64(i))
		buf.Write(b[:])
	}
}

func writeBigInt(buf *bytes.Buffer, bi *big.Int) {
	buf.WriteByte(makeTag(tagInt, intWidthBig))
	sign := byte(0)
	if bi.Sign() < 0 {
		sign = 1
	}
	buf.WriteByte(sign)
	writeLenPrefixed(buf, new(big.Int).Abs(bi).Bytes())
}

func writeFloat64(buf *bytes.Buffer, f float64) {
	buf.WriteByte(makeTag(tagFloat, floatWidth64))
	var b [8]byte
	order.PutUint64(b[:], math.Float64bits(f))
	buf.Write(b[:])
}

func writeBigFloat(buf *bytes.Buffer, bf *big.Float) {
	buf.WriteByte(makeTag(tagFloat, floatWidthBig))
	writeLenPrefixed(buf, []byte(bf.Text('g', -1)))
}

func writeLenPrefixed(buf *bytes.Buffer, data []byte) {
	var b [4]byte
	order.PutUint32(b[:], uint32(len(data)))
	buf.Write(b[:])
	buf.Write(data)
}

func reserveU32(buf *bytes.Buffer) int {
	off := buf.Len()
	buf.Write([]byte{0, 0, 0, 0})
	return off
}

func patchU32(buf *bytes.Buffer, off int, v uint32) {
	order.PutUint32(buf.Bytes()[off:off+4], v)
}
