package qpack

// nullValue is the concrete type of the Null sentinel. Unexported so
// that Null is the only value of it outside this package.
type nullValue struct{}

func (nullValue) String() string {
	return "null"
}

// Null is the distinguished null sentinel. It encodes to the wire Null
// tag, and Decode produces it for every Null tag it reads, keeping a
// present null element distinct from an absent map key. Encode also
// accepts untyped nil as a convenience; it is coerced to Null.
var Null = nullValue{}

// IsNull reports whether v is the Null sentinel or untyped nil.
func IsNull(v interface{}) bool {
	if v == nil {
		return true
	}
	_, ok := v.(nullValue)
	return ok
}
