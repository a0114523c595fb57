package svg

import (
	"slices"
	"strings"
)

// Element is a node in the rendering surface the editor hands to a field.
// Fields mutate attributes and classes on the nodes they own; the editor
// owns creation and disposal of the tree itself.
type Element struct {
	Tag      string
	Text     string
	Children []*Element

	attrs   map[string]string
	order   []string
	classes []string
}

func NewElement(tag string) *Element {
	return &Element{
		Tag:   tag,
		attrs: make(map[string]string),
	}
}

func (e *Element) Append(child *Element) *Element {
	e.Children = append(e.Children, child)
	return child
}

// FindChild returns the first direct child with the given tag, or nil.
func (e *Element) FindChild(tag string) *Element {
	for _, c := range e.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

func (e *Element) SetAttr(name, value string) {
	if _, ok := e.attrs[name]; !ok {
		e.order = append(e.order, name)
	}
	e.attrs[name] = value
}

func (e *Element) Attr(name string) string {
	return e.attrs[name]
}

func (e *Element) RemoveAttr(name string) {
	if _, ok := e.attrs[name]; !ok {
		return
	}
	delete(e.attrs, name)
	e.order = slices.DeleteFunc(e.order, func(n string) bool { return n == name })
}

func (e *Element) AddClass(name string) {
	if e.HasClass(name) {
		return
	}
	e.classes = append(e.classes, name)
}

func (e *Element) RemoveClass(name string) {
	e.classes = slices.DeleteFunc(e.classes, func(n string) bool { return n == name })
}

func (e *Element) HasClass(name string) bool {
	return slices.Contains(e.classes, name)
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// String renders the subtree as an SVG fragment. Attributes keep insertion
// order so rendering the same state twice yields identical output.
func (e *Element) String() string {
	var sb strings.Builder
	e.write(&sb)
	return sb.String()
}

func (e *Element) write(sb *strings.Builder) {
	sb.WriteByte('<')
	sb.WriteString(e.Tag)
	for _, name := range e.order {
		sb.WriteByte(' ')
		sb.WriteString(name)
		sb.WriteString(`="`)
		sb.WriteString(escaper.Replace(e.attrs[name]))
		sb.WriteByte('"')
	}
	if len(e.classes) > 0 {
		sb.WriteString(` class="`)
		sb.WriteString(escaper.Replace(strings.Join(e.classes, " ")))
		sb.WriteByte('"')
	}
	if e.Text == "" && len(e.Children) == 0 {
		sb.WriteString("/>")
		return
	}
	sb.WriteByte('>')
	sb.WriteString(escaper.Replace(e.Text))
	for _, c := range e.Children {
		c.write(sb)
	}
	sb.WriteString("</")
	sb.WriteString(e.Tag)
	sb.WriteByte('>')
}
