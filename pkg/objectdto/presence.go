package objectdto

import (
	"encoding/json"
	"math"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// validate is the package-level validator used for presence checks.
var validate = validator.New(validator.WithRequiredStructEnabled())

// isFalsy reports whether v counts as missing under the default presence rule:
// nil, false, numeric zero, NaN, the empty string and zero-valued structs.
// Non-nil slices and maps are present even when empty.
func isFalsy(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case float64:
		if math.IsNaN(x) {
			return true
		}
	case float32:
		if math.IsNaN(float64(x)) {
			return true
		}
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return x == ""
		}
		return f == 0 || math.IsNaN(f)
	}

	if reflect.ValueOf(v).Kind() == reflect.Struct {
		return reflect.ValueOf(v).IsZero()
	}
	return validate.Var(v, "required") != nil
}

// isPresent applies the configured presence rule to one payload entry.
func isPresent(data map[string]any, key string, acceptZeroValues bool) bool {
	v, ok := data[key]
	if !ok {
		return false
	}
	if acceptZeroValues {
		return v != nil
	}
	return !isFalsy(v)
}
