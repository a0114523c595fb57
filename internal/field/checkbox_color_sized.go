package field

// TypeCheckboxColorSized is the registry key of the swatch variant with a
// configurable footprint.
const TypeCheckboxColorSized = "field_checkbox_color_sized"

// CheckboxColorSized is the colored-rectangle variant with configurable
// dimensions. Each axis falls back to DefaultSize independently when the
// style leaves it unset or non-positive.
type CheckboxColorSized struct {
	BaseField
	color  string
	width  int
	height int
}

var _ Field = (*CheckboxColorSized)(nil)

func NewCheckboxColorSized(initial any, style Style, validator Validator) *CheckboxColorSized {
	f := &CheckboxColorSized{
		BaseField: newBaseField(TypeCheckboxColorSized, initial, validator),
		color:     resolveColor(style.Color),
		width:     dimensionOrDefault(style.Width),
		height:    dimensionOrDefault(style.Height),
	}
	f.draw = f.drawSwatch
	return f
}

func dimensionOrDefault(d int) int {
	if d <= 0 {
		return DefaultSize
	}
	return d
}

func (f *CheckboxColorSized) Color() string {
	return f.color
}

// Size returns the rendered footprint.
func (f *CheckboxColorSized) Size() (width, height int) {
	return f.width, f.height
}

func (f *CheckboxColorSized) drawSwatch() {
	f.drawSwatchRect(f.color, f.width, f.height)
}

func (f *CheckboxColorSized) Fill() string {
	if f.view == nil {
		return ""
	}
	return f.borderRect().Attr("fill")
}
