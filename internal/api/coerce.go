package api

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Request fields are decoded as untyped JSON (nil, bool, float64, string,
// []any, map[string]any) and checked with the loose rules storefront clients
// already rely on: empty values count as missing, numeric strings count as
// numbers.

// truthy reports whether v counts as present: everything except null,
// false, 0, NaN and "".
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0 && !math.IsNaN(x)
	case string:
		return x != ""
	default:
		return true
	}
}

// displayString renders v for an error message. Arrays print as JSON so a
// one-element array cannot read like a valid value; objects print as
// "[object Object]".
func displayString(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case string:
		return x
	case []any:
		data, err := json.Marshal(x)
		if err != nil {
			return "[]"
		}
		return string(data)
	default:
		return "[object Object]"
	}
}

// toNumber coerces v to a quantity: booleans count as 0/1, strings are
// parsed, single-element arrays unwrap. Anything else becomes NaN.
func toNumber(v any) float64 {
	switch x := v.(type) {
	case nil:
		return 0
	case bool:
		if x {
			return 1
		}
		return 0
	case float64:
		return x
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	case []any:
		switch len(x) {
		case 0:
			return 0
		case 1:
			return toNumber(x[0])
		default:
			return math.NaN()
		}
	default:
		return math.NaN()
	}
}
