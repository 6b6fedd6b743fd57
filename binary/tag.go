// Package binary implements the binary view: a compact, self-describing
// re-encoding of a JSON document with O(1) skipping of composite values and
// typed numeric storage. A binary tape is produced once, by Encode, from a
// lazy.Value, and is read-only thereafter.
package binary

import "github.com/lazyjson/lazyjson"

// tag identifies the kind and, for some kinds, the size class of the value
// that follows it on the tape. The low nibble carries the kind; the high
// nibble carries a size class meaningful only to Int and Float.
type tag byte

const (
	tagNull  tag = 0x0
	tagTrue  tag = 0x1
	tagFalse tag = 0x2
	tagInt   tag = 0x3
	tagFloat tag = 0x4
	tagStr   tag = 0x5
	tagObj   tag = 0x6
	tagArr   tag = 0x7
)

const kindMask = 0x0f

// Int size classes, held in the tag's high nibble.
const (
	intWidth8 byte = iota
	intWidth16
	intWidth32
	intWidth64
	intWidth128
	intWidthBig
)

// Float size classes, held in the tag's high nibble.
const (
	floatWidth32 byte = iota
	floatWidth64
	floatWidthBig
)

func makeTag(k tag, size byte) byte { return byte(k) | size<<4 }

func tagKind(b byte) tag  { return tag(b & kindMask) }
func tagSize(b byte) byte { return b >> 4 }

// kind maps a wire tag to the lazyjson.Kind it denotes, the extended form
// that distinguishes Int from Float.
func (t tag) kind() lazyjson.Kind {
	switch t {
	case tagNull:
		return lazyjson.Null
	case tagTrue:
		return lazyjson.True
	case tagFalse:
		return lazyjson.False
	case tagInt:
		return lazyjson.Int
	case tagFloat:
		return lazyjson.Float
	case tagStr:
		return lazyjson.String
	case tagObj:
		return lazyjson.Object
	case tagArr:
		return lazyjson.Array
	default:
		return lazyjson.Invalid
	}
}
