package qpack

import "fmt"

// Tag is the single-byte wire discriminator that starts every encoded
// unit. Fixed-size container tags encode their exact child count; see
// Count.
type Tag byte

const (
	TagEnd    Tag = 0x00
	TagNull   Tag = 0x01
	TagTrue   Tag = 0x02
	TagFalse  Tag = 0x03
	TagInt64  Tag = 0x04
	TagDouble Tag = 0x05
	TagRaw    Tag = 0x06
	TagErr    Tag = 0x07

	TagArray0 Tag = 0x10
	TagArray1 Tag = 0x11
	TagArray2 Tag = 0x12
	TagArray3 Tag = 0x13
	TagArray4 Tag = 0x14
	TagArray5 Tag = 0x15

	TagMap0 Tag = 0x18
	TagMap1 Tag = 0x19
	TagMap2 Tag = 0x1a
	TagMap3 Tag = 0x1b
	TagMap4 Tag = 0x1c
	TagMap5 Tag = 0x1d

	TagArrayOpen  Tag = 0x20
	TagArrayClose Tag = 0x21
	TagMapOpen    Tag = 0x22
	TagMapClose   Tag = 0x23
)

// FixedContainerMax is the largest child/pair count representable by a
// fixed-size container tag.
const FixedContainerMax = 5

// IsFixedArray reports whether t is one of Array0-Array5.
func (t Tag) IsFixedArray() bool {
	return t >= TagArray0 && t <= TagArray5
}

// IsFixedMap reports whether t is one of Map0-Map5.
func (t Tag) IsFixedMap() bool {
	return t >= TagMap0 && t <= TagMap5
}

// Count returns the child count committed by a fixed-size container
// tag, or -1 for any other tag.
func (t Tag) Count() int {
	switch {
	case t.IsFixedArray():
		return int(t - TagArray0)
	case t.IsFixedMap():
		return int(t - TagMap0)
	default:
		return -1
	}
}

func (t Tag) String() string {
	switch t {
	case TagEnd:
		return "End"
	case TagNull:
		return "Null"
	case TagTrue:
		return "True"
	case TagFalse:
		return "False"
	case TagInt64:
		return "Int64"
	case TagDouble:
		return "Double"
	case TagRaw:
		return "Raw"
	case TagErr:
		return "Err"
	case TagArrayOpen:
		return "ArrayOpen"
	case TagArrayClose:
		return "ArrayClose"
	case TagMapOpen:
		return "MapOpen"
	case TagMapClose:
		return "MapClose"
	default:
		if t.IsFixedArray() {
			return fmt.Sprintf("Array%d", t.Count())
		}
		if t.IsFixedMap() {
			return fmt.Sprintf("Map%d", t.Count())
		}
		return fmt.Sprintf("unknown(0x%02x)", byte(t))
	}
}
