package registry

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/vittascience/blockly/internal/field"
)

// Factory builds a field from the arguments a block definition carries.
type Factory func(initial any, style field.Style, validator field.Validator, opts field.Options) field.Field

// Registry maps field-type keys to factories. It is owned by the editor
// and passed to whoever loads block definitions; there is no package-level
// instance.
type Registry struct {
	factories map[string]Factory
}

func New() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

func (r *Registry) Register(key string, f Factory) error {
	if key == "" {
		return fmt.Errorf("register field: empty type key")
	}
	if _, ok := r.factories[key]; ok {
		return fmt.Errorf("register field: type %q already registered", key)
	}
	r.factories[key] = f
	return nil
}

func (r *Registry) Registered(key string) bool {
	_, ok := r.factories[key]
	return ok
}

func (r *Registry) New(key string, initial any, style field.Style, validator field.Validator, opts field.Options) (field.Field, error) {
	f, ok := r.factories[key]
	if !ok {
		return nil, fmt.Errorf("new field: unknown type %q", key)
	}
	return f(initial, style, validator, opts), nil
}

// FromJSON is the deserialization entry point: raw is the options object of
// a serialized block definition. The "checked" key supplies the initial
// value; the whole object is forwarded as the configuration bag.
func (r *Registry) FromJSON(key string, raw []byte, validator field.Validator) (field.Field, error) {
	var initial any = false
	checked := gjson.GetBytes(raw, "checked")
	switch checked.Type {
	case gjson.True, gjson.False:
		initial = checked.Bool()
	case gjson.String:
		initial = checked.String()
	}

	style := field.Style{
		Color:  gjson.GetBytes(raw, "color").String(),
		Width:  int(gjson.GetBytes(raw, "width").Int()),
		Height: int(gjson.GetBytes(raw, "height").Int()),
	}

	opts := make(field.Options)
	gjson.ParseBytes(raw).ForEach(func(k, v gjson.Result) bool {
		opts[k.String()] = v.Value()
		return true
	})

	return r.New(key, initial, style, validator, opts)
}

// RegisterDefaults installs the three checkbox variants under their
// canonical keys.
func RegisterDefaults(r *Registry) error {
	register := map[string]Factory{
		field.TypeCheckbox: func(initial any, _ field.Style, validator field.Validator, opts field.Options) field.Field {
			return field.NewCheckbox(initial, validator, opts)
		},
		field.TypeCheckboxColor: func(initial any, style field.Style, validator field.Validator, _ field.Options) field.Field {
			return field.NewCheckboxColor(initial, style, validator)
		},
		field.TypeCheckboxColorSized: func(initial any, style field.Style, validator field.Validator, _ field.Options) field.Field {
			return field.NewCheckboxColorSized(initial, style, validator)
		},
	}
	for key, factory := range register {
		if err := r.Register(key, factory); err != nil {
			return err
		}
	}
	return nil
}
