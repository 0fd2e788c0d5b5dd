package qpack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeSafe(t *testing.T) {
	out, msg := EncodeSafe(true, nil)
	require.Empty(t, msg)
	require.EqualValues(t, fromHex(t, "02"), out)

	out, msg = EncodeSafe(struct{}{}, nil)
	require.Nil(t, out)
	require.Contains(t, msg, "type not supported")
}

func TestDecodeSafe(t *testing.T) {
	v, msg := DecodeSafe(fromHex(t, "02"), nil)
	require.Empty(t, msg)
	require.Equal(t, true, v)

	v, msg = DecodeSafe(nil, nil)
	require.Nil(t, v)
	require.Contains(t, msg, "empty input")
}

func TestMustVariantsPanic(t *testing.T) {
	require.NotPanics(t, func() {
		MustDecode(MustEncode("x", nil), nil)
	})
	require.Panics(t, func() {
		MustEncode(struct{}{}, nil)
	})
	require.Panics(t, func() {
		MustDecode(nil, nil)
	})
}
