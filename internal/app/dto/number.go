package dto

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

// ToNumber converts a raw JSON value to a number following JavaScript's
// Number() rules. An absent value (nil) is NaN, null and false are 0, true
// is 1, strings are parsed after trimming ("" is 0), a single element array
// converts its element and anything else is NaN.
func ToNumber(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return math.NaN()
	}

	var value interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		return math.NaN()
	}

	return toNumber(value)
}

func toNumber(value interface{}) float64 {
	switch v := value.(type) {
	case nil:
		return 0
	case bool:
		if v {
			return 1
		}
		return 0
	case float64:
		return v
	case string:
		return stringToNumber(v)
	case []interface{}:
		switch len(v) {
		case 0:
			return 0
		case 1:
			if _, ok := v[0].(bool); ok {
				return math.NaN()
			}
			if _, ok := v[0].(map[string]interface{}); ok {
				return math.NaN()
			}
			return toNumber(v[0])
		}
	}

	return math.NaN()
}

func stringToNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}

		if base != 0 {
			n, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil || strings.Contains(s, "_") {
				return math.NaN()
			}
			return float64(n)
		}
	}

	// strconv accepts forms Number() does not
	lower := strings.ToLower(s)
	if strings.Contains(s, "_") || strings.Contains(lower, "inf") ||
		strings.Contains(lower, "nan") || strings.Contains(lower, "x") {
		return math.NaN()
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// out of range values still convert, to ±Inf
		if errors.Is(err, strconv.ErrRange) {
			return n
		}
		return math.NaN()
	}

	return n
}
