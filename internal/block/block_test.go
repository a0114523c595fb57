package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vittascience/blockly/internal/events"
	"github.com/vittascience/blockly/internal/field"
	"github.com/vittascience/blockly/internal/registry"
)

func newTestRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	r := registry.New()
	assert.NoError(t, registry.RegisterDefaults(r))
	return r
}

func TestAddField_Duplicate(t *testing.T) {
	b := New("b1", "test_block", nil)
	assert.NoError(t, b.AddField("CHECK", field.NewCheckbox(false, nil, nil)))
	assert.ErrorContains(t, b.AddField("CHECK", field.NewCheckbox(false, nil, nil)), "already exists")
}

func TestSetFieldValue_PublishesChangeEvent(t *testing.T) {
	bus := events.NewBus()
	var got []events.ChangeEvent
	bus.Subscribe(func(ev events.ChangeEvent) { got = append(got, ev) })

	b := New("b1", "test_block", bus)
	assert.NoError(t, b.AddField("CHECK", field.NewCheckbox(false, nil, nil)))

	assert.True(t, b.SetFieldValue("CHECK", true))
	assert.Len(t, got, 1)
	assert.Equal(t, events.ChangeEvent{Block: "b1", Field: "CHECK", Old: field.False, New: field.True}, got[0])
}

func TestSetFieldValue_SameValueEmitsNoEvent(t *testing.T) {
	bus := events.NewBus()
	var got []events.ChangeEvent
	bus.Subscribe(func(ev events.ChangeEvent) { got = append(got, ev) })

	b := New("b1", "test_block", bus)
	assert.NoError(t, b.AddField("CHECK", field.NewCheckbox(true, nil, nil)))

	assert.True(t, b.SetFieldValue("CHECK", "TRUE"))
	assert.Empty(t, got)
}

func TestSetFieldValue_RejectionEmitsNoEvent(t *testing.T) {
	bus := events.NewBus()
	var got []events.ChangeEvent
	bus.Subscribe(func(ev events.ChangeEvent) { got = append(got, ev) })

	b := New("b1", "test_block", bus)
	assert.NoError(t, b.AddField("CHECK", field.NewCheckbox(true, nil, nil)))

	assert.False(t, b.SetFieldValue("CHECK", 42))
	assert.Empty(t, got)
	assert.Equal(t, field.True, b.Field("CHECK").Read())
}

func TestSetFieldValue_UnknownField(t *testing.T) {
	b := New("b1", "test_block", nil)
	assert.False(t, b.SetFieldValue("NOPE", true))
}

func TestToggleField(t *testing.T) {
	b := New("b1", "test_block", nil)
	assert.NoError(t, b.AddField("CHECK", field.NewCheckbox(false, nil, nil)))

	assert.True(t, b.ToggleField("CHECK"))
	assert.Equal(t, field.True, b.Field("CHECK").Read())
	assert.True(t, b.ToggleField("CHECK"))
	assert.Equal(t, field.False, b.Field("CHECK").Read())
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	r := newTestRegistry(t)

	b := New("b1", "led_matrix", nil)
	assert.NoError(t, b.AddField("ENABLED", field.NewCheckbox(true, nil, nil)))
	assert.NoError(t, b.AddField("LED", field.NewCheckboxColor(false, field.Style{Color: "#123456"}, nil)))

	loaded, err := Load(r, nil, b.Save())
	assert.NoError(t, err)
	assert.Equal(t, "b1", loaded.ID)
	assert.Equal(t, "led_matrix", loaded.Type)
	assert.Equal(t, field.True, loaded.Field("ENABLED").Read())
	assert.Equal(t, field.False, loaded.Field("LED").Read())
}

func TestLoad_UnknownFieldType(t *testing.T) {
	r := newTestRegistry(t)
	raw := []byte(`{"id":"b1","type":"x","fields":{"F":{"type":"field_slider","checked":"TRUE"}}}`)
	_, err := Load(r, nil, raw)
	assert.ErrorContains(t, err, "unknown type")
}

func TestDispose_DropsViews(t *testing.T) {
	b := New("b1", "test_block", nil)
	f := field.NewCheckbox(true, nil, nil)
	assert.NoError(t, b.AddField("CHECK", f))
	assert.NotNil(t, f.View())

	b.Dispose()
	assert.Nil(t, b.View())
	assert.Nil(t, f.View())
}
