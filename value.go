package tuft

import (
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"
)

// lookupField resolves name against the current context frame.
// Only object frames can resolve names; a lookup against any other
// shape, or a missing key, counts as a miss. There is no fallback
// to an enclosing frame.
func lookupField(frame interface{}, name string) (interface{}, bool) {
	obj, ok := frame.(map[string]interface{})
	if !ok {
		return nil, false
	}

	v, ok := obj[name]

	return v, ok
}

// stringify converts a resolved context value to its display text.
// Objects and arrays delegate to the JSON encoder's compact dump;
// json.Number keeps the source text of the literal, so integers and
// floats render as written. Values outside the decoder's shapes
// also fall back to the JSON dump.
func stringify(v interface{}) (string, error) {
	const errCtx = "stringifying value"

	switch val := v.(type) {
	case nil:
		return "null", nil

	case bool:
		return strconv.FormatBool(val), nil

	case string:
		return val, nil

	case json.Number:
		return val.String(), nil

	case int:
		return strconv.Itoa(val), nil

	case int64:
		return strconv.FormatInt(val, 10), nil

	case uint64:
		return strconv.FormatUint(val, 10), nil

	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64), nil

	default:
		out, err := json.Marshal(val)
		if err != nil {
			return "", fmt.Errorf("%s: %w", errCtx, err)
		}

		return string(out), nil
	}
}

// truthy implements the section condition: arrays and objects
// render regardless of emptiness (an empty array simply iterates
// zero times), booleans render by their own value, and everything
// else — null, numbers, strings — is false.
func truthy(v interface{}) bool {
	switch val := v.(type) {
	case []interface{}, map[string]interface{}:
		return true
	case bool:
		return val
	default:
		return false
	}
}
