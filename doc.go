/*
Package qpack implements the QPack binary serialization format, wire
contract version 1.

QPack converts dynamically-typed host values into a compact tag-based
byte stream and back. Each encoded unit starts with a single tag byte;
small containers fold their element count into the tag itself, avoiding
both a length field and a close marker.

Tag bytes:

	- End (0x00): logical end of the value stream. Never a nested value.
	- Null (0x01), True (0x02), False (0x03): no payload.
	- Int64 (0x04): eight big-endian bytes, two's complement.
	- Double (0x05): eight big-endian bytes, IEEE-754 binary64.
	- Raw (0x06): binary.Uvarint length prefix followed by that many
	  bytes of content.
	- Err (0x07): reserved error marker. Never a value.
	- Array0-Array5 (0x10-0x15): exactly N child values follow inline,
	  no close marker.
	- Map0-Map5 (0x18-0x1D): exactly N key/value pairs follow inline,
	  no close marker.
	- ArrayOpen/ArrayClose (0x20/0x21), MapOpen/MapClose (0x22/0x23):
	  any number of children between the open and close tags.

Host values accepted by Encode: nil and the Null sentinel, bool, all
integer kinds, float32/float64, string, []byte, []interface{},
map[string]interface{}, and map[interface{}]interface{}. A
map[interface{}]interface{} whose keys form the contiguous range 1..N
encodes as an array; anything else encodes as a map. Map keys on the
wire are Int64, Double, or Raw.

Decode produces qpack.Null, bool, int64, float64, string,
[]interface{}, and map[interface{}]interface{}. Raw payloads decode to
string.

Go maps carry no intrinsic order, so the encoder emits pairs in a
deterministic documented order: integer keys first, then float keys,
then string keys, each in ascending natural order. The pair order is
not normative for interoperability.

Both Encode and Decode take a *Config carrying depth limits and
aggregate-classification policy. A Config must not be mutated while a
call using it is in flight; distinct calls may share one Config.

Trailing bytes after a complete top-level value are rejected.
*/
package qpack
