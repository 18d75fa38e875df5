package agent

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// CoerceArguments decodes a model-issued JSON argument payload into keyword
// parameters. Objects and arrays are coerced recursively. Numbers without a
// fraction or exponent become int; all other numbers become float64. A
// payload that is missing or not a JSON object yields an empty map, so the
// tool still runs and can report its own missing-parameter errors.
func CoerceArguments(raw json.RawMessage) map[string]interface{} {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var decoded interface{}
	if err := dec.Decode(&decoded); err != nil {
		return map[string]interface{}{}
	}

	obj, ok := decoded.(map[string]interface{})
	if !ok {
		return map[string]interface{}{}
	}

	params := make(map[string]interface{}, len(obj))
	for key, value := range obj {
		params[key] = coerceValue(value)
	}
	return params
}

func coerceValue(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, val := range t {
			out[k] = coerceValue(val)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, val := range t {
			out[i] = coerceValue(val)
		}
		return out
	case json.Number:
		return coerceNumber(t)
	default:
		// Strings, bools, and nulls pass through unchanged.
		return t
	}
}

func coerceNumber(n json.Number) interface{} {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return int(i)
		}
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	// Out-of-range or malformed numbers fall back to their literal form.
	return s
}

// GetStringArg extracts a string parameter.
func GetStringArg(params map[string]interface{}, key string) (string, bool) {
	v, ok := params[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// GetIntArg extracts an integer parameter, accepting the numeric forms a
// coerced payload or a hand-built map may contain.
func GetIntArg(params map[string]interface{}, key string) (int, bool) {
	v, ok := params[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	default:
		return 0, false
	}
}

// GetBoolArg extracts a boolean parameter.
func GetBoolArg(params map[string]interface{}, key string) (bool, bool) {
	v, ok := params[key]
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}
