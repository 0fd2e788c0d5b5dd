package qpack

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func fromHex(t *testing.T, s string) []byte {
	buf, err := hex.DecodeString(s)
	require.NoError(t, err)
	return buf
}

// nestedArrays returns n aggregates nested inside each other, innermost
// empty.
func nestedArrays(n int) []interface{} {
	v := make([]interface{}, 0)
	for i := 1; i < n; i++ {
		v = []interface{}{v}
	}
	return v
}

// nestedArrayBytes returns the encoding of n nested arrays using fixed
// tags: Array1 repeated n-1 times around a final Array0.
func nestedArrayBytes(n int) []byte {
	buf := make([]byte, n)
	for i := 0; i < n-1; i++ {
		buf[i] = byte(TagArray1)
	}
	buf[n-1] = byte(TagArray0)
	return buf
}
