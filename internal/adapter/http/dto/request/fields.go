package request

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"turnover_service/internal/domain/pricing"
)

// FieldError is a client input error naming the first offending field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

func requiredError(field string) *FieldError {
	return &FieldError{Field: field, Message: field + " is required"}
}

func nonNegativeIntegerError(field string) *FieldError {
	return &FieldError{Field: field, Message: field + " must be a non-negative integer"}
}

func booleanError(field string) *FieldError {
	return &FieldError{Field: field, Message: field + " must be a boolean"}
}

var errBodyNotObject = &FieldError{Field: "body", Message: "Request body must be a JSON object"}

// DecodeObject decodes a request body that must be a single JSON object.
// Numbers are kept as json.Number so integer checks are exact.
func DecodeObject(raw []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, errBodyNotObject
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var body any
	if err := dec.Decode(&body); err != nil {
		return nil, errBodyNotObject
	}
	if dec.More() {
		return nil, errBodyNotObject
	}
	obj, ok := body.(map[string]any)
	if !ok {
		return nil, errBodyNotObject
	}
	return obj, nil
}

// NonEmptyString accepts strings that are non-empty after trimming and
// returns the trimmed value.
func NonEmptyString(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

// NonNegativeInteger accepts values whose loose numeric coercion is an
// integer >= 0. "3", 3 and null (0) pass; -1, 2.5 and "abc" fail.
// Counts beyond the int range saturate at math.MaxInt.
func NonNegativeInteger(v any) (int, bool) {
	n, ok := pricing.ToNumber(v)
	if !ok || n < 0 || n != math.Trunc(n) {
		return 0, false
	}
	return count(v), true
}

// Boolean accepts only JSON booleans.
func Boolean(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

func requireString(obj map[string]any, key, field string) (string, error) {
	s, ok := NonEmptyString(obj[key])
	if !ok {
		return "", requiredError(field)
	}
	return s, nil
}

func requireNonNegativeInteger(obj map[string]any, key, field string) (int, error) {
	v, present := obj[key]
	if !present {
		return 0, nonNegativeIntegerError(field)
	}
	n, ok := NonNegativeInteger(v)
	if !ok {
		return 0, nonNegativeIntegerError(field)
	}
	return n, nil
}

// object returns the nested object under key, or an empty map when it is
// absent or not an object, so that required-field checks report the leaf.
func object(obj map[string]any, key string) map[string]any {
	if nested, ok := obj[key].(map[string]any); ok {
		return nested
	}
	return map[string]any{}
}

// optionalString trims free-text optionals; absent, blank or non-text values
// become nil so the document stores an explicit null.
func optionalString(v any) *string {
	var s string
	switch x := v.(type) {
	case string:
		s = strings.TrimSpace(x)
	case json.Number:
		s = x.String()
	default:
		return nil
	}
	if s == "" {
		return nil
	}
	return &s
}

// count converts a raw room or item count through the pricing coercion.
// Malformed values become 0 and fractions truncate.
func count(v any) int {
	n := math.Trunc(pricing.CoerceCount(v))
	if n >= math.MaxInt {
		return math.MaxInt
	}
	return int(n)
}

func itemCount(v any) int {
	return count(v)
}

func fieldPath(parent, key string) string {
	return fmt.Sprintf("%s.%s", parent, key)
}
