package qpack

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"
)

// Token is one decoded wire unit: a tag plus whatever inline data the
// tag carries. Raw aliases the unpacker's input buffer; copy it before
// retaining it past the buffer's lifetime.
type Token struct {
	Tag    Tag
	Offset int
	Int    int64
	Double float64
	Raw    []byte
	// Count is the committed child/pair count of a fixed-size
	// container tag, -1 otherwise.
	Count int
}

// Unpacker is a read-only cursor over a borrowed byte buffer. It yields
// one Token per Next call and never allocates nested structures, so it
// can drive flat consumers as well as the tree-building Decode.
type Unpacker struct {
	buf []byte
	pos int
}

// NewUnpacker wraps buf with the cursor at offset zero. The buffer is
// borrowed, never mutated, and not retained beyond the Unpacker's own
// lifetime.
func NewUnpacker(buf []byte) *Unpacker {
	return &Unpacker{buf: buf}
}

// Offset returns the cursor position in bytes.
func (u *Unpacker) Offset() int {
	return u.pos
}

// Next reads one tag and its inline payload, advancing the cursor past
// the consumed bytes. At or past the end of the buffer it returns an
// End token. Fails with ErrTruncated when a declared payload exceeds
// the remaining bytes and ErrUnknownTag on an undefined tag byte.
func (u *Unpacker) Next() (Token, error) {
	tok := Token{Offset: u.pos, Count: -1}
	if u.pos >= len(u.buf) {
		tok.Tag = TagEnd
		return tok, nil
	}

	t := Tag(u.buf[u.pos])
	u.pos++

	switch t {
	case TagEnd, TagNull, TagTrue, TagFalse, TagErr,
		TagArrayOpen, TagArrayClose, TagMapOpen, TagMapClose:
		tok.Tag = t
	case TagInt64:
		payload, err := u.take(8)
		if err != nil {
			return tok, errors.Wrapf(err, "int64 payload at offset %d", tok.Offset)
		}
		tok.Tag = t
		tok.Int = int64(binary.BigEndian.Uint64(payload))
	case TagDouble:
		payload, err := u.take(8)
		if err != nil {
			return tok, errors.Wrapf(err, "double payload at offset %d", tok.Offset)
		}
		tok.Tag = t
		tok.Double = math.Float64frombits(binary.BigEndian.Uint64(payload))
	case TagRaw:
		length, n := binary.Uvarint(u.buf[u.pos:])
		if n <= 0 {
			return tok, errors.Wrapf(ErrTruncated, "raw length prefix at offset %d", u.pos)
		}
		u.pos += n
		payload, err := u.take(length)
		if err != nil {
			return tok, errors.Wrapf(err, "raw payload of %d bytes at offset %d", length, tok.Offset)
		}
		tok.Tag = t
		tok.Raw = payload
	default:
		if t.IsFixedArray() || t.IsFixedMap() {
			tok.Tag = t
			tok.Count = t.Count()
			return tok, nil
		}
		return tok, errors.Wrapf(ErrUnknownTag, "0x%02x at offset %d", byte(t), tok.Offset)
	}
	return tok, nil
}

// take consumes n bytes from the cursor, returning a subslice of the
// input.
func (u *Unpacker) take(n uint64) ([]byte, error) {
	if n > uint64(len(u.buf)-u.pos) {
		return nil, errors.Wrapf(ErrTruncated, "%d bytes declared, %d remaining", n, len(u.buf)-u.pos)
	}
	payload := u.buf[u.pos : u.pos+int(n)]
	u.pos += int(n)
	return payload, nil
}
