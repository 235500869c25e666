package mailsniper

import (
	"encoding/json"
	"math"
	"strings"
)

// Field accessors used by the model decoders. A missing key or a value of
// the wrong type yields the zero value.

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func boolField(m map[string]any, key string) bool {
	b, _ := m[key].(bool)
	return b
}

func mapField(m map[string]any, key string) map[string]any {
	v, _ := m[key].(map[string]any)
	return v
}

func intField(m map[string]any, key string) int {
	n, _ := toInt(m[key])
	return n
}

func floatField(m map[string]any, key string) float64 {
	f, _ := toFloat(m[key])
	return f
}

// stringSliceField returns a copy of the string elements of a JSON array.
// Non-string elements are skipped. The result is never nil.
func stringSliceField(m map[string]any, key string) []string {
	out := []string{}
	switch v := m[key].(type) {
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
	case []string:
		out = append(out, v...)
	}
	return out
}

// toInt converts a decoded JSON number to int. Fractional values are
// truncated toward zero.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), true
		}
		f, err := n.Float64()
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return int(f), true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int(n), true
	case float32:
		return toInt(float64(n))
	case int:
		return n, true
	case int64:
		return int(n), true
	case int32:
		return int(n), true
	case uint:
		return clampUint(uint64(n)), true
	case uint64:
		return clampUint(n), true
	case uint32:
		return clampUint(uint64(n)), true
	}
	return 0, false
}

// clampUint converts n to int, saturating at math.MaxInt like headerInt.
func clampUint(n uint64) int {
	if n > math.MaxInt {
		return math.MaxInt
	}
	return int(n)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case float32:
		return float64(n), true
	}
	if i, ok := toInt(v); ok {
		return float64(i), true
	}
	return 0, false
}

// headerInt parses the leading decimal integer of a header value, the way
// loosely typed servers emit them ("100", " 100", "100.0"). Anything else
// yields 0.
func headerInt(headers map[string]string, name string) int {
	s := strings.TrimSpace(headers[name])
	if s == "" {
		return 0
	}

	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		d := int(c - '0')
		if n > (math.MaxInt-d)/10 {
			n = math.MaxInt
			break
		}
		n = n*10 + d
	}
	if neg {
		return -n
	}
	return n
}
