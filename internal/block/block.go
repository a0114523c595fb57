package block

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"github.com/vittascience/blockly/internal/events"
	"github.com/vittascience/blockly/internal/field"
	"github.com/vittascience/blockly/internal/registry"
	"github.com/vittascience/blockly/internal/svg"
)

// Block owns a set of named fields for their whole lifecycle. It creates
// the view group each field draws into, routes value changes through the
// field's validation path, and fires change events for committed values.
type Block struct {
	ID   string
	Type string

	bus    *events.Bus
	names  []string
	fields map[string]field.Field
	root   *svg.Element
}

func New(id, blockType string, bus *events.Bus) *Block {
	return &Block{
		ID:     id,
		Type:   blockType,
		bus:    bus,
		fields: make(map[string]field.Field),
		root:   svg.NewElement("g"),
	}
}

func (b *Block) AddField(name string, f field.Field) error {
	if _, ok := b.fields[name]; ok {
		return fmt.Errorf("block %s: field %q already exists", b.ID, name)
	}
	view := b.root.Append(svg.NewElement("g"))
	view.SetAttr("data-field", name)
	f.Init(view)
	b.names = append(b.names, name)
	b.fields[name] = f
	return nil
}

func (b *Block) Field(name string) field.Field {
	return b.fields[name]
}

func (b *Block) FieldNames() []string {
	return b.names
}

// SetFieldValue proposes a value for the named field. A committed change
// fires a ChangeEvent; a rejected candidate is a silent no-op.
func (b *Block) SetFieldValue(name string, candidate any) bool {
	f, ok := b.fields[name]
	if !ok {
		return false
	}
	old := f.Read()
	if !f.SetValue(candidate) {
		return false
	}
	if now := f.Read(); now != old && b.bus != nil {
		b.bus.Publish(events.ChangeEvent{Block: b.ID, Field: name, Old: old, New: now})
	}
	return true
}

func (b *Block) ToggleField(name string) bool {
	f, ok := b.fields[name]
	if !ok {
		return false
	}
	return b.SetFieldValue(name, !f.Bool())
}

// View returns the block's rendering surface.
func (b *Block) View() *svg.Element {
	return b.root
}

// Save serializes the block and its field values to JSON.
func (b *Block) Save() []byte {
	out := []byte(`{}`)
	out, _ = sjson.SetBytes(out, "id", b.ID)
	out, _ = sjson.SetBytes(out, "type", b.Type)
	for _, name := range b.names {
		f := b.fields[name]
		out, _ = sjson.SetBytes(out, "fields."+name+".type", f.Type())
		out, _ = sjson.SetBytes(out, "fields."+name+".checked", string(f.Read()))
	}
	return out
}

// Load rebuilds a block from Save's output, constructing each field
// through the registry's deserialization entry point.
func Load(r *registry.Registry, bus *events.Bus, raw []byte) (*Block, error) {
	b := New(gjson.GetBytes(raw, "id").String(), gjson.GetBytes(raw, "type").String(), bus)
	var err error
	gjson.GetBytes(raw, "fields").ForEach(func(name, def gjson.Result) bool {
		var f field.Field
		f, err = r.FromJSON(def.Get("type").String(), []byte(def.Raw), nil)
		if err != nil {
			return false
		}
		err = b.AddField(name.String(), f)
		return err == nil
	})
	if err != nil {
		return nil, fmt.Errorf("load block: %w", err)
	}
	return b, nil
}

// Dispose drops the block's view tree. Field references into it become
// invalid; fields perform no cleanup of their own.
func (b *Block) Dispose() {
	for _, f := range b.fields {
		if d, ok := f.(interface{ Dispose() }); ok {
			d.Dispose()
		}
	}
	b.root = nil
}
