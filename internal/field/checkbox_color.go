package field

import "strconv"

// TypeCheckboxColor is the registry key of the fixed-size swatch variant.
const TypeCheckboxColor = "field_checkbox_color"

const (
	// DefaultColor fills the swatch when the style carries no color or the
	// "default" sentinel.
	DefaultColor  = "#ff4040"
	uncheckedFill = "#ffffff"

	// DefaultSize is the swatch footprint in SVG units per axis.
	DefaultSize = 30

	cornerRadiusX = 8
	cornerRadiusY = 4
)

// Style is the optional style descriptor a block definition may attach to
// a swatch field.
type Style struct {
	Color  string
	Width  int
	Height int
}

// resolveColor maps the absent and "default" sentinels to DefaultColor.
func resolveColor(color string) string {
	if color == "" || color == "default" {
		return DefaultColor
	}
	return color
}

// CheckboxColor renders its state as a colored rectangle of fixed
// footprint: white when unchecked, the configured color when checked.
type CheckboxColor struct {
	BaseField
	color string
}

var _ Field = (*CheckboxColor)(nil)

func NewCheckboxColor(initial any, style Style, validator Validator) *CheckboxColor {
	f := &CheckboxColor{
		BaseField: newBaseField(TypeCheckboxColor, initial, validator),
		color:     resolveColor(style.Color),
	}
	f.draw = f.drawSwatch
	return f
}

// Color returns the fill used for the checked state.
func (f *CheckboxColor) Color() string {
	return f.color
}

func (f *CheckboxColor) drawSwatch() {
	f.drawSwatchRect(f.color, DefaultSize, DefaultSize)
}

// Fill returns the current fill of the swatch rectangle.
func (f *CheckboxColor) Fill() string {
	if f.view == nil {
		return ""
	}
	return f.borderRect().Attr("fill")
}

// drawSwatchRect paints the border rectangle of a swatch variant. The
// same routine serves the fixed and the sized variant; only the footprint
// differs.
func (f *BaseField) drawSwatchRect(color string, width, height int) {
	rect := f.borderRect()
	rect.SetAttr("width", strconv.Itoa(width))
	rect.SetAttr("height", strconv.Itoa(height))
	rect.SetAttr("rx", strconv.Itoa(cornerRadiusX))
	rect.SetAttr("ry", strconv.Itoa(cornerRadiusY))
	if f.value {
		rect.SetAttr("fill", color)
	} else {
		rect.SetAttr("fill", uncheckedFill)
	}
}
