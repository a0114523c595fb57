package events

import "github.com/vittascience/blockly/internal/field"

// ChangeEvent is published by a block after one of its fields committed a
// new value.
type ChangeEvent struct {
	Block string
	Field string
	Old   field.Value
	New   field.Value
}

// Bus dispatches change events to subscribers, synchronously and in
// subscription order. All publishing happens on the UI event loop.
type Bus struct {
	handlers []func(ChangeEvent)
}

func NewBus() *Bus {
	return &Bus{}
}

func (b *Bus) Subscribe(fn func(ChangeEvent)) {
	b.handlers = append(b.handlers, fn)
}

func (b *Bus) Publish(ev ChangeEvent) {
	for _, fn := range b.handlers {
		fn(ev)
	}
}
