package qpack

import (
	"math"

	"github.com/pkg/errors"
)

// Config defaults.
const (
	DefaultEncodeMaxDepth    = 1000
	DefaultDecodeMaxDepth    = 1000
	DefaultEncodeSparseRatio = 2
	DefaultEncodeSparseSafe  = 10
)

// Config carries the per-call policy knobs for Encode and Decode. It
// must be treated as immutable while any call using it is in flight;
// concurrent calls may share one Config under that constraint. The zero
// value is not usable - construct with NewConfig.
type Config struct {
	encodeMaxDepth      int
	decodeMaxDepth      int
	encodeEmptyAsArray  bool
	encodeSparseRatio   int
	encodeSparseSafe    int
	encodeSparseConvert bool
}

var defaultConfig = NewConfig()

// NewConfig returns a Config with default limits: encode and decode
// depth 1000, empty aggregates as maps, sparse ratio 2 with a safe
// threshold of 10 and conversion disabled.
func NewConfig() *Config {
	return &Config{
		encodeMaxDepth:    DefaultEncodeMaxDepth,
		decodeMaxDepth:    DefaultDecodeMaxDepth,
		encodeSparseRatio: DefaultEncodeSparseRatio,
		encodeSparseSafe:  DefaultEncodeSparseSafe,
	}
}

// SetEncodeMaxDepth configures the maximum number of nested aggregates
// allowed when encoding. Accepts 1..math.MaxInt64 truncated to int;
// out-of-range input is rejected. Returns the effective value.
func (c *Config) SetEncodeMaxDepth(n int) (int, error) {
	if n < 1 {
		return c.encodeMaxDepth, errors.Errorf("encode max depth must be at least 1, got %d", n)
	}
	c.encodeMaxDepth = n
	return c.encodeMaxDepth, nil
}

// EncodeMaxDepth returns the configured encode depth limit.
func (c *Config) EncodeMaxDepth() int {
	return c.encodeMaxDepth
}

// SetDecodeMaxDepth configures the maximum number of nested aggregates
// allowed when decoding. Accepts 1 and above; out-of-range input is
// rejected. Returns the effective value.
func (c *Config) SetDecodeMaxDepth(n int) (int, error) {
	if n < 1 {
		return c.decodeMaxDepth, errors.Errorf("decode max depth must be at least 1, got %d", n)
	}
	c.decodeMaxDepth = n
	return c.decodeMaxDepth, nil
}

// DecodeMaxDepth returns the configured decode depth limit.
func (c *Config) DecodeMaxDepth() int {
	return c.decodeMaxDepth
}

// SetEncodeEmptyAsArray configures whether an empty aggregate encodes
// as an empty array rather than an empty map. Returns the effective
// value.
func (c *Config) SetEncodeEmptyAsArray(v bool) bool {
	c.encodeEmptyAsArray = v
	return c.encodeEmptyAsArray
}

// EncodeEmptyAsArray returns the empty-aggregate disposition.
func (c *Config) EncodeEmptyAsArray() bool {
	return c.encodeEmptyAsArray
}

// SetEncodeSparseRatio configures the sparseness ratio above which an
// integer-keyed aggregate stops qualifying as an array. Zero disables
// the check. Returns the effective value.
func (c *Config) SetEncodeSparseRatio(n int) (int, error) {
	if n < 0 || n > math.MaxInt32 {
		return c.encodeSparseRatio, errors.Errorf("sparse ratio out of range: %d", n)
	}
	c.encodeSparseRatio = n
	return c.encodeSparseRatio, nil
}

// EncodeSparseRatio returns the configured sparseness ratio.
func (c *Config) EncodeSparseRatio() int {
	return c.encodeSparseRatio
}

// SetEncodeSparseSafe configures the array length below which the
// sparseness ratio is never applied. Returns the effective value.
func (c *Config) SetEncodeSparseSafe(n int) (int, error) {
	if n < 0 {
		return c.encodeSparseSafe, errors.Errorf("sparse safe threshold out of range: %d", n)
	}
	c.encodeSparseSafe = n
	return c.encodeSparseSafe, nil
}

// EncodeSparseSafe returns the configured sparseness safe threshold.
func (c *Config) EncodeSparseSafe() int {
	return c.encodeSparseSafe
}

// SetEncodeSparseConvert configures whether an excessively sparse
// aggregate is converted to a map instead of failing the encode.
// Returns the effective value.
func (c *Config) SetEncodeSparseConvert(v bool) bool {
	c.encodeSparseConvert = v
	return c.encodeSparseConvert
}

// EncodeSparseConvert returns the sparse-conversion disposition.
func (c *Config) EncodeSparseConvert() bool {
	return c.encodeSparseConvert
}

func (c *Config) orDefault() *Config {
	if c == nil {
		return defaultConfig
	}
	return c
}
