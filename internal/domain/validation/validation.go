// Package validation checks a single input value against required, length
// and range constraints. It is the helper the form-facing adapters run before
// handing a submission to the project store.
//
//	ok := validation.Validate(validation.Descriptor{
//	    Value:     description,
//	    Required:  true,
//	    MinLength: validation.Int(5),
//	})
//
// Validate never panics: bounds that do not apply to the value's type are
// ignored, and values that are neither numeric nor strings are judged by the
// Required check alone.
package validation

import (
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"
)

// Descriptor bundles a value with the constraints to check it against.
// Nil bounds impose no constraint.
type Descriptor struct {
	Value     any
	Required  bool
	MinLength *int
	MaxLength *int
	Min       *float64
	Max       *float64
}

// Int returns a pointer to v, for setting MinLength/MaxLength inline.
func Int(v int) *int { return &v }

// Float returns a pointer to v, for setting Min/Max inline.
func Float(v float64) *float64 { return &v }

// Validate reports whether d.Value satisfies every constraint set on d.
//
// Required compares the trimmed string form of the value against empty.
// Numeric values are checked against Min and Max (inclusive). String values
// are checked against MinLength and MaxLength (inclusive, trimmed, in runes).
func Validate(d Descriptor) bool {
	valid := true

	if d.Required {
		valid = valid && strings.TrimSpace(stringForm(d.Value)) != ""
	}

	if n, ok := numeric(d.Value); ok {
		if d.Min != nil {
			valid = valid && n >= *d.Min
		}
		if d.Max != nil {
			valid = valid && n <= *d.Max
		}
		return valid
	}

	if s, ok := text(d.Value); ok {
		length := utf8.RuneCountInString(strings.TrimSpace(s))
		if d.MinLength != nil {
			valid = valid && length >= *d.MinLength
		}
		if d.MaxLength != nil {
			valid = valid && length <= *d.MaxLength
		}
	}

	return valid
}

// stringForm renders v the way Required sees it. A nil value is empty.
func stringForm(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := text(v); ok {
		return s
	}
	return fmt.Sprint(v)
}

// text returns the underlying string of any string kind.
func text(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.String {
		return "", false
	}
	return rv.String(), true
}

// numeric converts any Go integer or float kind to float64.
func numeric(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}
