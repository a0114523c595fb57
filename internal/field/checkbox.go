package field

import "github.com/vittascience/blockly/internal/svg"

// TypeCheckbox is the registry key of the plain check-mark variant.
const TypeCheckbox = "field_checkbox_upgraded"

// DefaultCheckCharacter is the glyph drawn when no override is configured.
const DefaultCheckCharacter = "✓"

// Checkbox renders its state as a check-mark glyph: hidden when unchecked,
// visible when checked.
type Checkbox struct {
	BaseField
	checkCharacter string
}

var _ Field = (*Checkbox)(nil)

func NewCheckbox(initial any, validator Validator, opts Options) *Checkbox {
	f := &Checkbox{
		BaseField:      newBaseField(TypeCheckbox, initial, validator),
		checkCharacter: DefaultCheckCharacter,
	}
	if c, ok := opts[OptionCheckCharacter].(string); ok && c != "" {
		f.checkCharacter = c
	}
	f.draw = f.drawGlyph
	return f
}

// CheckCharacter returns the glyph used for the checked state.
func (f *Checkbox) CheckCharacter() string {
	return f.checkCharacter
}

func (f *Checkbox) drawGlyph() {
	text := f.textElement()
	text.AddClass("blocklyCheckbox")
	text.Text = f.checkCharacter
	if f.value {
		text.RemoveAttr("display")
	} else {
		text.SetAttr("display", "none")
	}
}

// Visible reports whether the glyph is currently shown.
func (f *Checkbox) Visible() bool {
	if f.view == nil {
		return false
	}
	return f.textElement().Attr("display") != "none"
}

func (f *Checkbox) Glyph() *svg.Element {
	if f.view == nil {
		return nil
	}
	return f.textElement()
}
