package qpack

import (
	"github.com/pkg/errors"
)

// Decode reconstructs a host value from QPack bytes. A nil cfg uses the
// package defaults. Exactly one top-level value must span the whole
// input; see ErrTrailingBytes.
func Decode(buf []byte, cfg *Config) (interface{}, error) {
	cfg = cfg.orDefault()
	u := NewUnpacker(buf)

	tok, err := u.Next()
	if err != nil {
		return nil, err
	}
	if tok.Tag == TagEnd {
		return nil, ErrEmptyInput
	}

	v, err := buildValue(u, tok, cfg, 0)
	if err != nil {
		return nil, err
	}

	tok, err = u.Next()
	if err != nil {
		return nil, err
	}
	if tok.Tag != TagEnd {
		return nil, errors.Wrapf(ErrTrailingBytes, "at offset %d", tok.Offset)
	}
	return v, nil
}

func checkDecodeDepth(depth int, cfg *Config) error {
	if depth > cfg.decodeMaxDepth {
		return errors.Wrapf(ErrExcessiveDepth, "decode nesting exceeds %d levels", cfg.decodeMaxDepth)
	}
	return nil
}

// buildValue turns the token at hand into a host value, consuming any
// child tokens a container tag commits to. Terminator and sentinel tags
// are rejected here; the open-container loops consume their close tags
// before recursing.
func buildValue(u *Unpacker, tok Token, cfg *Config, depth int) (interface{}, error) {
	switch {
	case tok.Tag == TagNull:
		return Null, nil
	case tok.Tag == TagTrue:
		return true, nil
	case tok.Tag == TagFalse:
		return false, nil
	case tok.Tag == TagInt64:
		return tok.Int, nil
	case tok.Tag == TagDouble:
		return tok.Double, nil
	case tok.Tag == TagRaw:
		return string(tok.Raw), nil
	case tok.Tag.IsFixedArray():
		return buildFixedArray(u, tok.Count, cfg, depth)
	case tok.Tag.IsFixedMap():
		return buildFixedMap(u, tok.Count, cfg, depth)
	case tok.Tag == TagArrayOpen:
		return buildOpenArray(u, cfg, depth)
	case tok.Tag == TagMapOpen:
		return buildOpenMap(u, cfg, depth)
	default:
		// End, Err, and close tags are never values.
		return nil, errors.Wrapf(ErrMalformedStructure, "expected value but found %s at offset %d", tok.Tag, tok.Offset)
	}
}

func buildFixedArray(u *Unpacker, count int, cfg *Config, depth int) (interface{}, error) {
	depth++
	if err := checkDecodeDepth(depth, cfg); err != nil {
		return nil, err
	}
	arr := make([]interface{}, 0, count)
	for i := 0; i < count; i++ {
		tok, err := u.Next()
		if err != nil {
			return nil, err
		}
		elem, err := buildValue(u, tok, cfg, depth)
		if err != nil {
			return nil, err
		}
		arr = append(arr, elem)
	}
	return arr, nil
}

func buildFixedMap(u *Unpacker, count int, cfg *Config, depth int) (interface{}, error) {
	depth++
	if err := checkDecodeDepth(depth, cfg); err != nil {
		return nil, err
	}
	m := make(map[interface{}]interface{}, count)
	for i := 0; i < count; i++ {
		if err := buildPair(u, m, cfg, depth); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func buildOpenArray(u *Unpacker, cfg *Config, depth int) (interface{}, error) {
	depth++
	if err := checkDecodeDepth(depth, cfg); err != nil {
		return nil, err
	}
	arr := make([]interface{}, 0)
	for {
		tok, err := u.Next()
		if err != nil {
			return nil, err
		}
		if tok.Tag == TagArrayClose {
			return arr, nil
		}
		if tok.Tag == TagEnd {
			return nil, errors.Wrap(ErrMalformedStructure, "array open at input end never closed")
		}
		elem, err := buildValue(u, tok, cfg, depth)
		if err != nil {
			return nil, err
		}
		arr = append(arr, elem)
	}
}

func buildOpenMap(u *Unpacker, cfg *Config, depth int) (interface{}, error) {
	depth++
	if err := checkDecodeDepth(depth, cfg); err != nil {
		return nil, err
	}
	m := make(map[interface{}]interface{})
	for {
		tok, err := u.Next()
		if err != nil {
			return nil, err
		}
		if tok.Tag == TagMapClose {
			return m, nil
		}
		if tok.Tag == TagEnd {
			return nil, errors.Wrap(ErrMalformedStructure, "map open at input end never closed")
		}
		key, err := buildKey(tok)
		if err != nil {
			return nil, err
		}
		tok, err = u.Next()
		if err != nil {
			return nil, err
		}
		value, err := buildValue(u, tok, cfg, depth)
		if err != nil {
			return nil, err
		}
		// duplicate keys: last pair wins
		m[key] = value
	}
}

func buildPair(u *Unpacker, m map[interface{}]interface{}, cfg *Config, depth int) error {
	tok, err := u.Next()
	if err != nil {
		return err
	}
	key, err := buildKey(tok)
	if err != nil {
		return err
	}
	tok, err = u.Next()
	if err != nil {
		return err
	}
	value, err := buildValue(u, tok, cfg, depth)
	if err != nil {
		return err
	}
	m[key] = value
	return nil
}

// buildKey admits the scalar key tags the wire contract allows.
func buildKey(tok Token) (interface{}, error) {
	switch tok.Tag {
	case TagInt64:
		return tok.Int, nil
	case TagDouble:
		return tok.Double, nil
	case TagRaw:
		return string(tok.Raw), nil
	default:
		return nil, errors.Wrapf(ErrMalformedStructure, "expected map key but found %s at offset %d", tok.Tag, tok.Offset)
	}
}
