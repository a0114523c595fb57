package field

import (
	"github.com/vittascience/blockly/internal/svg"
)

// BaseField carries the value state machine shared by every checkbox
// variant. Variants embed it and hand it their draw routine at
// construction time.
type BaseField struct {
	fieldType string
	value     bool
	validator Validator

	view *svg.Element
	draw func()
}

func newBaseField(fieldType string, initial any, validator Validator) BaseField {
	f := BaseField{fieldType: fieldType, validator: validator}
	if v, ok := Validate(initial); ok {
		f.value = ToBool(v)
	}
	return f
}

func (f *BaseField) Type() string {
	return f.fieldType
}

func (f *BaseField) Read() Value {
	if f.value {
		return True
	}
	return False
}

func (f *BaseField) Bool() bool {
	return f.value
}

// View returns the element group the field is attached to, or nil before
// Init.
func (f *BaseField) View() *svg.Element {
	return f.view
}

func (f *BaseField) SetValue(candidate any) bool {
	v, ok := Validate(candidate)
	if !ok {
		return false
	}
	if f.validator != nil {
		if v, ok = f.validator(v); !ok {
			return false
		}
	}
	f.commit(v)
	return true
}

func (f *BaseField) Toggle() bool {
	return f.SetValue(!f.value)
}

// commit stores the validated value and redraws. Change events are the
// owning block's responsibility, not commit's.
func (f *BaseField) commit(v Value) {
	f.value = ToBool(v)
	f.Render()
}

func (f *BaseField) Init(view *svg.Element) {
	f.view = view
	f.Render()
}

func (f *BaseField) Render() {
	if f.view == nil || f.draw == nil {
		return
	}
	f.draw()
}

// Dispose drops the field's view references. The editor owns the nodes
// themselves.
func (f *BaseField) Dispose() {
	f.view = nil
}

// borderRect returns the border rectangle the editor's base view carries,
// creating it on first use.
func (f *BaseField) borderRect() *svg.Element {
	if r := f.view.FindChild("rect"); r != nil {
		return r
	}
	return f.view.Append(svg.NewElement("rect"))
}

// textElement returns the text node of the field view, creating it on
// first use.
func (f *BaseField) textElement() *svg.Element {
	if t := f.view.FindChild("text"); t != nil {
		return t
	}
	return f.view.Append(svg.NewElement("text"))
}
