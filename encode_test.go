package qpack

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestEncode_Scalars(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		out  string
	}{
		{"nil", nil, "01"},
		{"null sentinel", Null, "01"},
		{"true", true, "02"},
		{"false", false, "03"},
		{"int", 42, "04000000000000002a"},
		{"negative int", int64(-1), "04ffffffffffffffff"},
		{"uint16", uint16(7), "040000000000000007"},
		{"double", 0.5, "053fe0000000000000"},
		{"string", "abc", "0603616263"},
		{"empty string", "", "0600"},
		{"bytes", []byte{0xca, 0xfe}, "0602cafe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Encode(tt.in, nil)
			require.NoError(t, err)
			require.EqualValues(t, fromHex(t, tt.out), out)
		})
	}
}

func TestEncode_SmallArrayUsesFixedTag(t *testing.T) {
	out, err := Encode([]interface{}{}, nil)
	require.NoError(t, err)
	require.EqualValues(t, fromHex(t, "10"), out)

	out, err = Encode([]interface{}{true, nil, int64(3)}, nil)
	require.NoError(t, err)
	require.EqualValues(t, fromHex(t, "130201040000000000000003"), out)
}

func TestEncode_LargeArrayUsesOpenClose(t *testing.T) {
	five := []interface{}{true, true, true, true, true}
	out, err := Encode(five, nil)
	require.NoError(t, err)
	require.EqualValues(t, fromHex(t, "150202020202"), out)

	six := append(five, false)
	out, err = Encode(six, nil)
	require.NoError(t, err)
	require.EqualValues(t, fromHex(t, "20020202020203"+"21"), out)
}

func TestEncode_StringMapSortsKeys(t *testing.T) {
	out, err := Encode(map[string]interface{}{
		"b": int64(2),
		"a": int64(1),
	}, nil)
	require.NoError(t, err)
	require.EqualValues(t, fromHex(t,
		"22"+
			"060161"+"040000000000000001"+
			"060162"+"040000000000000002"+
			"23"), out)
}

func TestEncode_SpecScenario(t *testing.T) {
	// {"a": 1, "b": [true, null]} must emit MapOpen, Raw "a", Int64 1,
	// Raw "b", Array2 with True then Null, MapClose.
	out, err := Encode(map[string]interface{}{
		"a": int64(1),
		"b": []interface{}{true, nil},
	}, nil)
	require.NoError(t, err)
	require.EqualValues(t, fromHex(t,
		"22"+
			"060161"+"040000000000000001"+
			"060162"+"12"+"02"+"01"+
			"23"), out)
}

func TestEncode_EmptyAggregatePolicy(t *testing.T) {
	out, err := Encode(map[string]interface{}{}, nil)
	require.NoError(t, err)
	require.EqualValues(t, fromHex(t, "2223"), out)

	out, err = Encode(map[interface{}]interface{}{}, nil)
	require.NoError(t, err)
	require.EqualValues(t, fromHex(t, "2223"), out)

	cfg := NewConfig()
	cfg.SetEncodeEmptyAsArray(true)
	out, err = Encode(map[string]interface{}{}, cfg)
	require.NoError(t, err)
	require.EqualValues(t, fromHex(t, "10"), out)
}

func TestEncode_DenseTableBecomesArray(t *testing.T) {
	out, err := Encode(map[interface{}]interface{}{
		1: "a",
		2: "b",
	}, nil)
	require.NoError(t, err)
	require.EqualValues(t, fromHex(t, "12"+"060161"+"060162"), out)

	// float keys with integral values still qualify
	out, err = Encode(map[interface{}]interface{}{
		1.0: true,
		2.0: false,
	}, nil)
	require.NoError(t, err)
	require.EqualValues(t, fromHex(t, "12"+"02"+"03"), out)
}

func TestEncode_TableHolesBecomeNull(t *testing.T) {
	out, err := Encode(map[interface{}]interface{}{
		1: true,
		3: false,
	}, nil)
	require.NoError(t, err)
	require.EqualValues(t, fromHex(t, "13"+"02"+"01"+"03"), out)
}

func TestEncode_SparseTable(t *testing.T) {
	sparse := map[interface{}]interface{}{
		1:  true,
		30: true,
	}

	_, err := Encode(sparse, nil)
	require.Equal(t, ErrSparseArray, errors.Cause(err))

	cfg := NewConfig()
	cfg.SetEncodeSparseConvert(true)
	out, err := Encode(sparse, cfg)
	require.NoError(t, err)
	require.EqualValues(t, fromHex(t,
		"22"+
			"040000000000000001"+"02"+
			"04000000000000001e"+"02"+
			"23"), out)

	// disabling the ratio check admits any integer-keyed table
	cfg = NewConfig()
	_, err = cfg.SetEncodeSparseRatio(0)
	require.NoError(t, err)
	out, err = Encode(map[interface{}]interface{}{1: true, 8: true}, cfg)
	require.NoError(t, err)
	require.EqualValues(t, fromHex(t, "20"+"02"+"010101010101"+"02"+"21"), out)
}

func TestEncode_TableMapKeyOrder(t *testing.T) {
	// integer keys, then float keys, then string keys
	out, err := Encode(map[interface{}]interface{}{
		"k":  true,
		2.5:  false,
		1:    "x",
		-4:   "y",
		"aa": nil,
	}, nil)
	require.NoError(t, err)
	require.EqualValues(t, fromHex(t,
		"22"+
			"04fffffffffffffffc"+"060179"+
			"040000000000000001"+"060178"+
			"054004000000000000"+"03"+
			"060261"+"6101"+
			"06016b"+"02"+
			"23"), out)
}

func TestEncode_InvalidKey(t *testing.T) {
	_, err := Encode(map[interface{}]interface{}{true: 1}, nil)
	require.Equal(t, ErrInvalidKey, errors.Cause(err))
}

func TestEncode_UnsupportedType(t *testing.T) {
	_, err := Encode(struct{}{}, nil)
	require.Equal(t, ErrUnsupportedType, errors.Cause(err))

	_, err = Encode(uint64(1)<<63, nil)
	require.Equal(t, ErrUnsupportedType, errors.Cause(err))

	_, err = Encode([]interface{}{make(chan int)}, nil)
	require.Equal(t, ErrUnsupportedType, errors.Cause(err))
}

func TestEncode_DepthLimit(t *testing.T) {
	cfg := NewConfig()
	_, err := cfg.SetEncodeMaxDepth(5)
	require.NoError(t, err)

	_, err = Encode(nestedArrays(5), cfg)
	require.NoError(t, err)

	_, err = Encode(nestedArrays(6), cfg)
	require.Equal(t, ErrExcessiveDepth, errors.Cause(err))
}
