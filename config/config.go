package config

import (
	"io"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"

	"qpack"
)

type Config struct {
	LogLevel string      `mapstructure:"log_level"`
	Codec    CodecConfig `mapstructure:"codec"`
}

type CodecConfig struct {
	EncodeMaxDepth      int  `mapstructure:"encode_max_depth"`
	DecodeMaxDepth      int  `mapstructure:"decode_max_depth"`
	EncodeEmptyAsArray  bool `mapstructure:"encode_empty_as_array"`
	EncodeSparseRatio   int  `mapstructure:"encode_sparse_ratio"`
	EncodeSparseSafe    int  `mapstructure:"encode_sparse_safe"`
	EncodeSparseConvert bool `mapstructure:"encode_sparse_convert"`
}

func ReadConfig(r io.Reader) (*Config, error) {
	decoder := toml.NewDecoder(r)
	decoder.SetTagName("mapstructure")
	config := &Config{}
	if err := decoder.Decode(config); err != nil {
		return nil, errors.Wrap(err, "error decoding config file")
	}
	return config, nil
}

// CodecConfig converts the file representation into a validated
// qpack.Config, surfacing out-of-range values as errors.
func (c *Config) CodecConfig() (*qpack.Config, error) {
	cfg := qpack.NewConfig()
	if _, err := cfg.SetEncodeMaxDepth(c.Codec.EncodeMaxDepth); err != nil {
		return nil, errors.Wrap(err, "invalid encode_max_depth")
	}
	if _, err := cfg.SetDecodeMaxDepth(c.Codec.DecodeMaxDepth); err != nil {
		return nil, errors.Wrap(err, "invalid decode_max_depth")
	}
	if _, err := cfg.SetEncodeSparseRatio(c.Codec.EncodeSparseRatio); err != nil {
		return nil, errors.Wrap(err, "invalid encode_sparse_ratio")
	}
	if _, err := cfg.SetEncodeSparseSafe(c.Codec.EncodeSparseSafe); err != nil {
		return nil, errors.Wrap(err, "invalid encode_sparse_safe")
	}
	cfg.SetEncodeEmptyAsArray(c.Codec.EncodeEmptyAsArray)
	cfg.SetEncodeSparseConvert(c.Codec.EncodeSparseConvert)
	return cfg, nil
}
