package hoyolab

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// The aggregator is inconsistent about scalar encodings: the same field arrives
// as 54, "54", null or "" depending on the endpoint. These types accept all of
// them and decode anything non-numeric to zero instead of failing the payload.

// Nested values get the same treatment: an object field that arrives as "",
// [] or a number decodes to its zero value, and so does a list or map field
// that arrives as anything but an array or object.

// List is a slice that decodes a non-array to nil.
type List[T any] []T

func (l *List[T]) UnmarshalJSON(b []byte) error {
	if !hasPrefix(b, '[') {
		*l = nil
		return nil
	}
	var out []T
	if err := json.Unmarshal(b, &out); err != nil {
		return err
	}
	*l = out
	return nil
}

// Map is a string-keyed map that decodes a non-object to nil.
type Map[V any] map[string]V

func (m *Map[V]) UnmarshalJSON(b []byte) error {
	if !hasPrefix(b, '{') {
		*m = nil
		return nil
	}
	var out map[string]V
	if err := json.Unmarshal(b, &out); err != nil {
		return err
	}
	*m = out
	return nil
}

// decodeObject decodes b into v only when b is a JSON object. v must point to
// a method-less alias of the target type.
func decodeObject(b []byte, v any) error {
	if !hasPrefix(b, '{') {
		return nil
	}
	return json.Unmarshal(b, v)
}

func hasPrefix(b []byte, c byte) bool {
	b = bytes.TrimSpace(b)
	return len(b) > 0 && b[0] == c
}

// Int unmarshals a JSON number or numeric string into an int.
type Int int

func (v *Int) UnmarshalJSON(b []byte) error {
	f, ok := parseNumber(b)
	if !ok {
		*v = 0
		return nil
	}
	*v = Int(int(f))
	return nil
}

// Float unmarshals a JSON number or numeric string ("46.6%" included) into a float64.
type Float float64

func (v *Float) UnmarshalJSON(b []byte) error {
	f, ok := parseNumber(b)
	if !ok {
		*v = 0
		return nil
	}
	*v = Float(f)
	return nil
}

// String unmarshals a JSON string or number into a string.
type String string

func (v *String) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		*v = ""
		return nil
	}
	if s[0] == '"' {
		unq, err := strconv.Unquote(s)
		if err != nil {
			*v = ""
			return nil
		}
		*v = String(unq)
		return nil
	}
	if s[0] == '{' || s[0] == '[' {
		*v = ""
		return nil
	}
	*v = String(s)
	return nil
}

// Bool accepts true/false, 0/1 and their string forms.
type Bool bool

func (v *Bool) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	switch strings.ToLower(s) {
	case "true", "1":
		*v = true
	default:
		*v = false
	}
	return nil
}

func parseNumber(b []byte) (float64, bool) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return 0, false
	}
	s := string(b)
	if s[0] == '"' {
		unq, err := strconv.Unquote(s)
		if err != nil {
			return 0, false
		}
		s = unq
	}
	return ParseNumeric(s)
}

// ParseNumeric parses "46.6", "46.6%" or " 12 " and rejects NaN/Inf.
func ParseNumeric(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "%")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
