package lazyjson

// A Kind identifies the grammatical category of a JSON value.
//
// The lazy representation never distinguishes integers from floats; both
// report Number, and the numeric primitive decides the concrete Go type
// during materialization. The binary representation makes that decision
// eagerly at encode time, so it reports Int or Float instead.
type Kind byte

const (
	Invalid Kind = iota
	Object
	Array
	String
	Number // lazy only: an undifferentiated JSON number
	Int    // binary only: a number classified as an integer
	Float  // binary only: a number classified as a float
	True
	False
	Null
)

var kindNames = [...]string{
	Invalid: "invalid",
	Object:  "object",
	Array:   "array",
	String:  "string",
	Number:  "number",
	Int:     "int",
	Float:   "float",
	True:    "true",
	False:   "false",
	Null:    "null",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// IsComposite reports whether k is Object or Array.
func (k Kind) IsComposite() bool { return k == Object || k == Array }

// IsNumeric reports whether k denotes some kind of JSON number.
func (k Kind) IsNumeric() bool { return k == Number || k == Int || k == Float }
