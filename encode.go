package qpack

import (
	"math"
	"sort"

	"github.com/pkg/errors"
)

// Encode serializes a host value into QPack bytes. A nil cfg uses the
// package defaults. On failure no partial buffer is returned.
func Encode(v interface{}, cfg *Config) ([]byte, error) {
	cfg = cfg.orDefault()
	p := NewPacker(SuggestedSize)
	if err := appendValue(p, v, cfg, 0); err != nil {
		return nil, err
	}
	return p.Finish(), nil
}

func appendValue(p *Packer, v interface{}, cfg *Config, depth int) error {
	switch val := v.(type) {
	case nil:
		p.AppendTag(TagNull)
	case nullValue:
		p.AppendTag(TagNull)
	case bool:
		if val {
			p.AppendTag(TagTrue)
		} else {
			p.AppendTag(TagFalse)
		}
	case int:
		p.AppendInt64(int64(val))
	case int8:
		p.AppendInt64(int64(val))
	case int16:
		p.AppendInt64(int64(val))
	case int32:
		p.AppendInt64(int64(val))
	case int64:
		p.AppendInt64(val)
	case uint8:
		p.AppendInt64(int64(val))
	case uint16:
		p.AppendInt64(int64(val))
	case uint32:
		p.AppendInt64(int64(val))
	case uint:
		if uint64(val) > math.MaxInt64 {
			return errors.Wrapf(ErrUnsupportedType, "uint %d overflows int64", val)
		}
		p.AppendInt64(int64(val))
	case uint64:
		if val > math.MaxInt64 {
			return errors.Wrapf(ErrUnsupportedType, "uint64 %d overflows int64", val)
		}
		p.AppendInt64(int64(val))
	case float32:
		p.AppendDouble(float64(val))
	case float64:
		p.AppendDouble(val)
	case string:
		p.AppendRaw([]byte(val))
	case []byte:
		p.AppendRaw(val)
	case []interface{}:
		return appendArray(p, val, cfg, depth)
	case map[string]interface{}:
		return appendStringMap(p, val, cfg, depth)
	case map[interface{}]interface{}:
		return appendTable(p, val, cfg, depth)
	default:
		return errors.Wrapf(ErrUnsupportedType, "cannot encode %T", v)
	}
	return nil
}

func checkEncodeDepth(depth int, cfg *Config) error {
	if depth > cfg.encodeMaxDepth {
		return errors.Wrapf(ErrExcessiveDepth, "encode nesting exceeds %d levels", cfg.encodeMaxDepth)
	}
	return nil
}

func appendArray(p *Packer, items []interface{}, cfg *Config, depth int) error {
	depth++
	if err := checkEncodeDepth(depth, cfg); err != nil {
		return err
	}
	fixed := len(items) <= FixedContainerMax
	if fixed {
		p.AppendTag(TagArray0 + Tag(len(items)))
	} else {
		p.AppendTag(TagArrayOpen)
	}
	for _, item := range items {
		if err := appendValue(p, item, cfg, depth); err != nil {
			return err
		}
	}
	if !fixed {
		p.AppendTag(TagArrayClose)
	}
	return nil
}

func appendStringMap(p *Packer, m map[string]interface{}, cfg *Config, depth int) error {
	depth++
	if err := checkEncodeDepth(depth, cfg); err != nil {
		return err
	}
	if len(m) == 0 {
		appendEmptyAggregate(p, cfg)
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	p.AppendTag(TagMapOpen)
	for _, k := range keys {
		p.AppendRaw([]byte(k))
		if err := appendValue(p, m[k], cfg, depth); err != nil {
			return err
		}
	}
	p.AppendTag(TagMapClose)
	return nil
}

// appendTable encodes the fully dynamic aggregate form. The dense-array
// test decides between array and map treatment; empty tables follow the
// configured disposition.
func appendTable(p *Packer, m map[interface{}]interface{}, cfg *Config, depth int) error {
	depth++
	if err := checkEncodeDepth(depth, cfg); err != nil {
		return err
	}
	if len(m) == 0 {
		appendEmptyAggregate(p, cfg)
		return nil
	}

	length, byIndex, err := tableLength(m, cfg)
	if err != nil {
		return err
	}
	if length >= 0 {
		fixed := length <= FixedContainerMax
		if fixed {
			p.AppendTag(TagArray0 + Tag(length))
		} else {
			p.AppendTag(TagArrayOpen)
		}
		for i := int64(1); i <= int64(length); i++ {
			elem, ok := byIndex[i]
			if !ok {
				// hole in a mildly sparse array
				p.AppendTag(TagNull)
				continue
			}
			if err := appendValue(p, elem, cfg, depth); err != nil {
				return err
			}
		}
		if !fixed {
			p.AppendTag(TagArrayClose)
		}
		return nil
	}

	pairs, err := sortedTablePairs(m)
	if err != nil {
		return err
	}
	p.AppendTag(TagMapOpen)
	for _, pair := range pairs {
		pair.appendKey(p)
		if err := appendValue(p, pair.value, cfg, depth); err != nil {
			return err
		}
	}
	p.AppendTag(TagMapClose)
	return nil
}

func appendEmptyAggregate(p *Packer, cfg *Config) {
	if cfg.encodeEmptyAsArray {
		p.AppendTag(TagArray0)
	} else {
		p.AppendTag(TagMapOpen)
		p.AppendTag(TagMapClose)
	}
}

// tableLength implements the dense-array test. If every key is an
// integral number >= 1 the table encodes as an array: the returned
// length is the largest key, and byIndex holds the elements. Holes are
// permitted up to the configured sparseness policy; an excessively
// sparse table either fails with ErrSparseArray or, with sparse
// conversion enabled, falls back to map treatment. A return of -1 means
// the table must encode as a map.
func tableLength(m map[interface{}]interface{}, cfg *Config) (int, map[int64]interface{}, error) {
	var max int64
	byIndex := make(map[int64]interface{}, len(m))
	for k, v := range m {
		i, ok := integralKey(k)
		if !ok || i < 1 {
			return -1, nil, nil
		}
		byIndex[i] = v
		if i > max {
			max = i
		}
	}

	items := int64(len(byIndex))
	if cfg.encodeSparseRatio > 0 &&
		max > items*int64(cfg.encodeSparseRatio) &&
		max > int64(cfg.encodeSparseSafe) {
		if !cfg.encodeSparseConvert {
			return 0, nil, errors.Wrapf(ErrSparseArray, "%d items spread over %d slots", items, max)
		}
		return -1, nil, nil
	}
	return int(max), byIndex, nil
}

// integralKey reports whether k is a number with an exact integer
// value. Floats qualify when they carry no fractional part, mirroring
// the classic host-language treatment of numeric table keys.
func integralKey(k interface{}) (int64, bool) {
	switch key := k.(type) {
	case int:
		return int64(key), true
	case int8:
		return int64(key), true
	case int16:
		return int64(key), true
	case int32:
		return int64(key), true
	case int64:
		return key, true
	case uint8:
		return int64(key), true
	case uint16:
		return int64(key), true
	case uint32:
		return int64(key), true
	case uint:
		if uint64(key) > math.MaxInt64 {
			return 0, false
		}
		return int64(key), true
	case uint64:
		if key > math.MaxInt64 {
			return 0, false
		}
		return int64(key), true
	case float32:
		return integralKey(float64(key))
	case float64:
		if math.Floor(key) != key || math.IsInf(key, 0) || math.IsNaN(key) {
			return 0, false
		}
		// MaxInt64 rounds up to 2^63 as a float, hence >=
		if key < math.MinInt64 || key >= math.MaxInt64 {
			return 0, false
		}
		return int64(key), true
	default:
		return 0, false
	}
}

// Key classes fix the deterministic pair order for unordered host
// maps: integers, then floats, then strings, ascending within each
// class.
const (
	keyClassInt = iota
	keyClassFloat
	keyClassString
)

type tablePair struct {
	class    int
	intKey   int64
	floatKey float64
	strKey   string
	value    interface{}
}

func (tp *tablePair) appendKey(p *Packer) {
	switch tp.class {
	case keyClassInt:
		p.AppendInt64(tp.intKey)
	case keyClassFloat:
		p.AppendDouble(tp.floatKey)
	default:
		p.AppendRaw([]byte(tp.strKey))
	}
}

func (tp *tablePair) less(other *tablePair) bool {
	if tp.class != other.class {
		return tp.class < other.class
	}
	switch tp.class {
	case keyClassInt:
		return tp.intKey < other.intKey
	case keyClassFloat:
		return tp.floatKey < other.floatKey
	default:
		return tp.strKey < other.strKey
	}
}

func sortedTablePairs(m map[interface{}]interface{}) ([]*tablePair, error) {
	pairs := make([]*tablePair, 0, len(m))
	for k, v := range m {
		pair := &tablePair{value: v}
		switch key := k.(type) {
		case int:
			pair.class, pair.intKey = keyClassInt, int64(key)
		case int8:
			pair.class, pair.intKey = keyClassInt, int64(key)
		case int16:
			pair.class, pair.intKey = keyClassInt, int64(key)
		case int32:
			pair.class, pair.intKey = keyClassInt, int64(key)
		case int64:
			pair.class, pair.intKey = keyClassInt, key
		case uint8:
			pair.class, pair.intKey = keyClassInt, int64(key)
		case uint16:
			pair.class, pair.intKey = keyClassInt, int64(key)
		case uint32:
			pair.class, pair.intKey = keyClassInt, int64(key)
		case uint:
			if uint64(key) > math.MaxInt64 {
				return nil, errors.Wrapf(ErrInvalidKey, "uint key %d overflows int64", key)
			}
			pair.class, pair.intKey = keyClassInt, int64(key)
		case uint64:
			if key > math.MaxInt64 {
				return nil, errors.Wrapf(ErrInvalidKey, "uint64 key %d overflows int64", key)
			}
			pair.class, pair.intKey = keyClassInt, int64(key)
		case float32:
			pair.class, pair.floatKey = keyClassFloat, float64(key)
		case float64:
			pair.class, pair.floatKey = keyClassFloat, key
		case string:
			pair.class, pair.strKey = keyClassString, key
		default:
			return nil, errors.Wrapf(ErrInvalidKey, "cannot use %T as a map key", k)
		}
		pairs = append(pairs, pair)
	}
	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].less(pairs[j])
	})
	return pairs, nil
}
