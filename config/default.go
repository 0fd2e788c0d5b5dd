package config

import (
	"bytes"
	"io"
	"os"
	"text/template"

	"github.com/pkg/errors"

	"qpack"
	"qpack/log"
)

var DefaultConfig = Config{
	LogLevel: log.LevelInfo.String(),
	Codec: CodecConfig{
		EncodeMaxDepth:      qpack.DefaultEncodeMaxDepth,
		DecodeMaxDepth:      qpack.DefaultDecodeMaxDepth,
		EncodeEmptyAsArray:  false,
		EncodeSparseRatio:   qpack.DefaultEncodeSparseRatio,
		EncodeSparseSafe:    qpack.DefaultEncodeSparseSafe,
		EncodeSparseConvert: false,
	},
}

const defaultConfigTemplateText = `# qp Config File

# Sets the log level. Can be one of the following values:
# - error
# - warn
# - info
# - debug
# - trace
log_level = "{{.LogLevel}}"

# Configures the QPack codec itself. Unless directed otherwise these
# values should be left as their defaults.
[codec]
  # Sets the maximum number of nested arrays/maps allowed when decoding.
  decode_max_depth = {{.Codec.DecodeMaxDepth}}
  # Sets whether an empty aggregate encodes as an empty array rather
  # than an empty map.
  encode_empty_as_array = {{.Codec.EncodeEmptyAsArray}}
  # Sets the maximum number of nested arrays/maps allowed when encoding.
  encode_max_depth = {{.Codec.EncodeMaxDepth}}
  # Sets whether an excessively sparse integer-keyed aggregate is
  # converted to a map rather than rejected.
  encode_sparse_convert = {{.Codec.EncodeSparseConvert}}
  # Sets the sparseness ratio above which an integer-keyed aggregate
  # stops qualifying as an array. Zero disables the check.
  encode_sparse_ratio = {{.Codec.EncodeSparseRatio}}
  # Sets the array length below which the sparseness ratio is never
  # applied.
  encode_sparse_safe = {{.Codec.EncodeSparseSafe}}
`

var defaultConfigTemplate = template.Must(template.New("config").Parse(defaultConfigTemplateText))

func GenerateDefaultConfigFile() []byte {
	var buf bytes.Buffer
	if err := defaultConfigTemplate.Execute(&buf, &DefaultConfig); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func WriteDefaultConfigFile(homePath string) error {
	f, err := os.OpenFile(ExpandConfigPath(homePath), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return errors.Wrap(err, "error opening config file")
	}
	defer f.Close()
	if _, err := io.Copy(f, bytes.NewReader(GenerateDefaultConfigFile())); err != nil {
		return errors.Wrap(err, "error writing config file")
	}
	return nil
}

func ReadConfigFile(homePath string) (*Config, error) {
	f, err := os.Open(ExpandConfigPath(homePath))
	if err != nil {
		return nil, errors.Wrap(err, "error opening config file")
	}
	defer f.Close()
	return ReadConfig(f)
}
