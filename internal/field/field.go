package field

import (
	"math"

	"github.com/vittascience/blockly/internal/svg"
)

// Value is the canonical serialized form of a checkbox state. Persisted
// block definitions always carry one of these two strings, never a raw
// boolean.
type Value string

const (
	True  Value = "TRUE"
	False Value = "FALSE"
)

// Validator is supplied by the embedding application. It receives the
// proposed canonical value and may transform it or reject the change
// entirely (ok == false). Rejection is a no-op, not a fault.
type Validator func(proposed Value) (transformed Value, ok bool)

// Options is the configuration bag forwarded from a serialized block
// definition. Recognized keys depend on the variant.
type Options map[string]any

// OptionCheckCharacter overrides the rendered glyph of the plain checkbox.
const OptionCheckCharacter = "checkCharacter"

// Field is a form-field plugin hosted inside an editor block.
type Field interface {
	// Type returns the registry key the field was registered under.
	Type() string
	// Read returns the canonical string form of the current value.
	Read() Value
	// Bool returns the current value as a boolean.
	Bool() bool
	// SetValue proposes a new value through validation. It reports whether
	// the change was committed; a rejected candidate leaves the field
	// untouched.
	SetValue(candidate any) bool
	// Toggle proposes the negation of the current value through the same
	// path as SetValue.
	Toggle() bool
	// Init attaches the field to the view group the editor created for it
	// and draws the initial state.
	Init(view *svg.Element)
	// View returns the element group the field is attached to, or nil before
	// Init or after Dispose.
	View() *svg.Element
	// Render redraws the field to match the current value. Idempotent.
	Render()
}

// Validate maps a candidate to its canonical form. Exactly four inputs are
// accepted: the booleans true and false and the strings "TRUE" and "FALSE".
// Everything else (numbers, nil, other strings) is rejected and callers
// must abort the change.
func Validate(candidate any) (Value, bool) {
	switch v := candidate.(type) {
	case bool:
		if v {
			return True, true
		}
		return False, true
	case string:
		return validateString(v)
	case Value:
		return validateString(string(v))
	}
	return "", false
}

func validateString(s string) (Value, bool) {
	switch s {
	case string(True):
		return True, true
	case string(False):
		return False, true
	}
	return "", false
}

// ToBool coerces a raw value to a boolean. Strings are compared against
// "TRUE" exactly (case-sensitive, no trimming); any other type follows
// ordinary truthiness. The asymmetry is load-bearing: persisted values are
// always the canonical strings, and "FALSE" must not be truthy.
func ToBool(v any) bool {
	switch x := v.(type) {
	case string:
		return x == string(True)
	case Value:
		return x == True
	case nil:
		return false
	case bool:
		return x
	case int:
		return x != 0
	case int64:
		return x != 0
	case float64:
		return x != 0 && !math.IsNaN(x)
	}
	return true
}
