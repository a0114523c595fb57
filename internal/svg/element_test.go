package svg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElement_Attrs(t *testing.T) {
	e := NewElement("rect")
	e.SetAttr("width", "30")
	e.SetAttr("fill", "#ffffff")
	e.SetAttr("fill", "#ff4040")

	assert.Equal(t, "30", e.Attr("width"))
	assert.Equal(t, "#ff4040", e.Attr("fill"))
	assert.Equal(t, `<rect width="30" fill="#ff4040"/>`, e.String())

	e.RemoveAttr("fill")
	assert.Equal(t, "", e.Attr("fill"))
	assert.Equal(t, `<rect width="30"/>`, e.String())
}

func TestElement_ClassList(t *testing.T) {
	e := NewElement("text")
	e.AddClass("blocklyCheckbox")
	e.AddClass("blocklyCheckbox")
	assert.True(t, e.HasClass("blocklyCheckbox"))
	assert.Equal(t, `<text class="blocklyCheckbox"/>`, e.String())

	e.AddClass("checked")
	assert.Equal(t, `<text class="blocklyCheckbox checked"/>`, e.String())

	e.RemoveClass("blocklyCheckbox")
	assert.False(t, e.HasClass("blocklyCheckbox"))
	assert.Equal(t, `<text class="checked"/>`, e.String())
}

func TestElement_Children(t *testing.T) {
	g := NewElement("g")
	g.Append(NewElement("rect"))
	text := g.Append(NewElement("text"))
	text.Text = "✓"

	assert.Equal(t, text, g.FindChild("text"))
	assert.Nil(t, g.FindChild("circle"))
	assert.Equal(t, "<g><rect/><text>✓</text></g>", g.String())
}

func TestElement_Escaping(t *testing.T) {
	e := NewElement("text")
	e.SetAttr("data-label", `a<b>"c"&d`)
	e.Text = "1 < 2"
	assert.Equal(t, `<text data-label="a&lt;b&gt;&quot;c&quot;&amp;d">1 &lt; 2</text>`, e.String())
}

func TestElement_StringDeterministic(t *testing.T) {
	e := NewElement("rect")
	e.SetAttr("width", "30")
	e.SetAttr("height", "30")
	e.SetAttr("rx", "8")
	e.SetAttr("ry", "4")
	assert.Equal(t, e.String(), e.String())
}
