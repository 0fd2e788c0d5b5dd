package qpack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	cfg := NewConfig()
	require.Equal(t, DefaultEncodeMaxDepth, cfg.EncodeMaxDepth())
	require.Equal(t, DefaultDecodeMaxDepth, cfg.DecodeMaxDepth())
	require.False(t, cfg.EncodeEmptyAsArray())
	require.Equal(t, DefaultEncodeSparseRatio, cfg.EncodeSparseRatio())
	require.Equal(t, DefaultEncodeSparseSafe, cfg.EncodeSparseSafe())
	require.False(t, cfg.EncodeSparseConvert())
}

func TestConfig_DepthAccessors(t *testing.T) {
	cfg := NewConfig()

	eff, err := cfg.SetEncodeMaxDepth(25)
	require.NoError(t, err)
	require.Equal(t, 25, eff)

	// out-of-range input is rejected and the prior value kept
	eff, err = cfg.SetEncodeMaxDepth(0)
	require.Error(t, err)
	require.Equal(t, 25, eff)
	eff, err = cfg.SetEncodeMaxDepth(-3)
	require.Error(t, err)
	require.Equal(t, 25, eff)

	eff, err = cfg.SetDecodeMaxDepth(1)
	require.NoError(t, err)
	require.Equal(t, 1, eff)
	_, err = cfg.SetDecodeMaxDepth(0)
	require.Error(t, err)
	require.Equal(t, 1, cfg.DecodeMaxDepth())
}

func TestConfig_SparseAccessors(t *testing.T) {
	cfg := NewConfig()

	eff, err := cfg.SetEncodeSparseRatio(0)
	require.NoError(t, err)
	require.Equal(t, 0, eff)

	_, err = cfg.SetEncodeSparseRatio(-1)
	require.Error(t, err)
	require.Equal(t, 0, cfg.EncodeSparseRatio())

	eff, err = cfg.SetEncodeSparseSafe(100)
	require.NoError(t, err)
	require.Equal(t, 100, eff)
	_, err = cfg.SetEncodeSparseSafe(-1)
	require.Error(t, err)

	require.True(t, cfg.SetEncodeSparseConvert(true))
	require.True(t, cfg.EncodeSparseConvert())
}

func TestConfig_NilMeansDefaults(t *testing.T) {
	out, err := Encode(nestedArrays(1000), nil)
	require.NoError(t, err)
	_, err = Decode(out, nil)
	require.NoError(t, err)
}
