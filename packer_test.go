package qpack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPacker_AppendTag(t *testing.T) {
	p := NewPacker(0)
	p.AppendTag(TagNull)
	p.AppendTag(TagTrue)
	p.AppendTag(TagFalse)
	require.EqualValues(t, fromHex(t, "010203"), p.Finish())
}

func TestPacker_AppendInt64(t *testing.T) {
	tests := []struct {
		in  int64
		out string
	}{
		{0, "040000000000000000"},
		{1, "040000000000000001"},
		{-1, "04ffffffffffffffff"},
		{1 << 40, "040000010000000000"},
		{-9223372036854775808, "048000000000000000"},
		{9223372036854775807, "047fffffffffffffff"},
	}
	for _, tt := range tests {
		p := NewPacker(0)
		p.AppendInt64(tt.in)
		require.EqualValues(t, fromHex(t, tt.out), p.Finish())
	}
}

func TestPacker_AppendDouble(t *testing.T) {
	tests := []struct {
		in  float64
		out string
	}{
		{0, "050000000000000000"},
		{0.5, "053fe0000000000000"},
		{1.5, "053ff8000000000000"},
		{-2.5, "05c004000000000000"},
	}
	for _, tt := range tests {
		p := NewPacker(0)
		p.AppendDouble(tt.in)
		require.EqualValues(t, fromHex(t, tt.out), p.Finish())
	}
}

func TestPacker_AppendRaw(t *testing.T) {
	p := NewPacker(0)
	p.AppendRaw([]byte("abc"))
	require.EqualValues(t, fromHex(t, "0603616263"), p.Finish())

	p = NewPacker(0)
	p.AppendRaw(nil)
	require.EqualValues(t, fromHex(t, "0600"), p.Finish())

	// length prefixes above 127 take a second varint byte
	p = NewPacker(0)
	big := make([]byte, 200)
	p.AppendRaw(big)
	out := p.Finish()
	require.EqualValues(t, byte(TagRaw), out[0])
	require.EqualValues(t, fromHex(t, "c801"), out[1:3])
	require.Len(t, out, 3+200)
}

func TestPacker_GrowsPastInitialCapacity(t *testing.T) {
	p := NewPacker(4)
	for i := 0; i < 100; i++ {
		p.AppendInt64(int64(i))
	}
	require.Equal(t, 100*9, p.Len())
	require.Len(t, p.Finish(), 100*9)
}
