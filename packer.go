package qpack

import (
	"encoding/binary"
	"math"
)

// SuggestedSize is the initial capacity of a Packer's buffer. Large
// enough to hold most small messages without growing.
const SuggestedSize = 1024

// Packer is an append-only growable byte buffer that understands tags
// and primitive payloads, nothing else. Growth is geometric through the
// built-in append. Allocation failure aborts the process; there is no
// recovery path mid-encode.
type Packer struct {
	buf []byte
}

// NewPacker allocates a Packer with the given initial capacity.
// Non-positive capacities fall back to SuggestedSize.
func NewPacker(capacity int) *Packer {
	if capacity <= 0 {
		capacity = SuggestedSize
	}
	return &Packer{buf: make([]byte, 0, capacity)}
}

// AppendTag appends a bare tag byte.
func (p *Packer) AppendTag(t Tag) {
	p.buf = append(p.buf, byte(t))
}

// AppendRaw appends a Raw unit: the Raw tag, a binary.Uvarint length
// prefix, and the content bytes.
func (p *Packer) AppendRaw(b []byte) {
	var prefix [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(prefix[:], uint64(len(b)))
	p.buf = append(p.buf, byte(TagRaw))
	p.buf = append(p.buf, prefix[:n]...)
	p.buf = append(p.buf, b...)
}

// AppendInt64 appends an Int64 unit: the Int64 tag followed by eight
// big-endian two's complement bytes.
func (p *Packer) AppendInt64(i int64) {
	var payload [8]byte
	binary.BigEndian.PutUint64(payload[:], uint64(i))
	p.buf = append(p.buf, byte(TagInt64))
	p.buf = append(p.buf, payload[:]...)
}

// AppendDouble appends a Double unit: the Double tag followed by eight
// big-endian IEEE-754 bytes.
func (p *Packer) AppendDouble(f float64) {
	var payload [8]byte
	binary.BigEndian.PutUint64(payload[:], math.Float64bits(f))
	p.buf = append(p.buf, byte(TagDouble))
	p.buf = append(p.buf, payload[:]...)
}

// Len returns the number of bytes appended so far.
func (p *Packer) Len() int {
	return len(p.buf)
}

// Finish returns the accumulated buffer and detaches it from the
// Packer. The Packer must not be used afterwards.
func (p *Packer) Finish() []byte {
	out := p.buf
	p.buf = nil
	return out
}
