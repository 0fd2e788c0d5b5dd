package cmd

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"qpack"
)

// jsonToValue parses a JSON document into the host value surface the
// codec accepts. Numbers keep their integer/float distinction through
// json.Number: an integral literal becomes int64, everything else
// float64.
func jsonToValue(data []byte) (interface{}, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var raw interface{}
	if err := decoder.Decode(&raw); err != nil {
		return nil, errors.Wrap(err, "error parsing JSON")
	}
	if decoder.More() {
		return nil, errors.New("trailing data after JSON document")
	}
	return convertJSON(raw)
}

func convertJSON(raw interface{}) (interface{}, error) {
	switch val := raw.(type) {
	case nil:
		return qpack.Null, nil
	case bool, string:
		return val, nil
	case json.Number:
		return convertNumber(val)
	case []interface{}:
		arr := make([]interface{}, len(val))
		for i, item := range val {
			converted, err := convertJSON(item)
			if err != nil {
				return nil, err
			}
			arr[i] = converted
		}
		return arr, nil
	case map[string]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, item := range val {
			converted, err := convertJSON(item)
			if err != nil {
				return nil, err
			}
			m[k] = converted
		}
		return m, nil
	default:
		return nil, errors.Errorf("unexpected JSON value of type %T", raw)
	}
}

func convertNumber(num json.Number) (interface{}, error) {
	s := num.String()
	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i, nil
		}
	}
	f, err := num.Float64()
	if err != nil {
		return nil, errors.Wrapf(err, "cannot represent number %s", s)
	}
	return f, nil
}

// valueToJSON converts a decoded host value into a tree the stdlib JSON
// encoder accepts. Non-string map keys are formatted into strings; the
// Null sentinel becomes JSON null.
func valueToJSON(v interface{}) (interface{}, error) {
	if qpack.IsNull(v) {
		return nil, nil
	}
	switch val := v.(type) {
	case bool, int64, float64, string:
		return val, nil
	case []interface{}:
		arr := make([]interface{}, len(val))
		for i, item := range val {
			converted, err := valueToJSON(item)
			if err != nil {
				return nil, err
			}
			arr[i] = converted
		}
		return arr, nil
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, item := range val {
			key, err := formatKey(k)
			if err != nil {
				return nil, err
			}
			converted, err := valueToJSON(item)
			if err != nil {
				return nil, err
			}
			m[key] = converted
		}
		return m, nil
	default:
		return nil, errors.Errorf("unexpected decoded value of type %T", v)
	}
}

func formatKey(k interface{}) (string, error) {
	switch key := k.(type) {
	case string:
		return key, nil
	case int64:
		return strconv.FormatInt(key, 10), nil
	case float64:
		return strconv.FormatFloat(key, 'g', -1, 64), nil
	default:
		return "", errors.Errorf("unexpected map key of type %T", k)
	}
}
