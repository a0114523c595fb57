package ui

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vittascience/blockly/internal/block"
	"github.com/vittascience/blockly/internal/config"
	"github.com/vittascience/blockly/internal/events"
	"github.com/vittascience/blockly/internal/field"
	"github.com/vittascience/blockly/internal/registry"
)

type styles struct {
	Title    lipgloss.Style
	Block    lipgloss.Style
	Text     lipgloss.Style
	Selected lipgloss.Style
	Dimmed   lipgloss.Style
}

func newStyles(cfg *config.Config) styles {
	get := func(name string) lipgloss.Style {
		s := lipgloss.NewStyle()
		if c, ok := cfg.UI.Colors[name]; ok {
			if c.Fg != "" {
				s = s.Foreground(lipgloss.Color(c.Fg))
			}
			if c.Bg != "" {
				s = s.Background(lipgloss.Color(c.Bg))
			}
		}
		return s
	}
	return styles{
		Title:    get("text").Bold(true),
		Block:    get("text").Bold(true),
		Text:     get("text"),
		Selected: get("selected"),
		Dimmed:   get("dimmed"),
	}
}

// entry is one selectable field in the workspace.
type entry struct {
	block *block.Block
	name  string
}

// Model is the workspace preview: every block's fields, toggleable from
// the keyboard, with the selected field's SVG fragment shown below.
type Model struct {
	blocks  []*block.Block
	entries []entry
	cursor  int
	keyMap  keyMap
	help    help.Model
	styles  styles
	changes *[]events.ChangeEvent
	width   int
	height  int
}

func New(cfg *config.Config) Model {
	reg := registry.New()
	if err := registry.RegisterDefaults(reg); err != nil {
		log.Printf("register default fields: %v", err)
	}

	bus := events.NewBus()
	changes := &[]events.ChangeEvent{}
	bus.Subscribe(func(ev events.ChangeEvent) {
		*changes = append(*changes, ev)
	})

	m := Model{
		keyMap:  defaultKeyMap,
		help:    help.New(),
		styles:  newStyles(cfg),
		changes: changes,
	}

	logic := block.New("b1", "controls_repeat", bus)
	_ = logic.AddField("ENABLED", field.NewCheckbox(true, nil, field.Options{
		field.OptionCheckCharacter: cfg.Theme.CheckCharacter,
	}))

	led := block.New("b2", "led_matrix", bus)
	_ = led.AddField("LED", field.NewCheckboxColor(false, field.Style{Color: cfg.Theme.DefaultColor}, nil))

	canvas := block.New("b3", "paint_cell", bus)
	_ = canvas.AddField("CELL", field.NewCheckboxColorSized(false, field.Style{
		Color:  "#4079ff",
		Width:  50,
		Height: 10,
	}, nil))

	m.blocks = []*block.Block{logic, led, canvas}
	for _, b := range m.blocks {
		for _, name := range b.FieldNames() {
			m.entries = append(m.entries, entry{block: b, name: name})
		}
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("blockly fields")
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keyMap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keyMap.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keyMap.Down):
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keyMap.Toggle):
			e := m.entries[m.cursor]
			e.block.ToggleField(e.name)
		case key.Matches(msg, m.keyMap.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("workspace"))
	sb.WriteString("\n\n")
	for i, e := range m.entries {
		line := fmt.Sprintf("%s · %s %s", e.block.Type, e.name, m.fieldPreview(e))
		if i == m.cursor {
			sb.WriteString(m.styles.Selected.Render("> " + line))
		} else {
			sb.WriteString(m.styles.Text.Render("  " + line))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	selected := m.entries[m.cursor]
	sb.WriteString(m.styles.Dimmed.Render(selected.block.Field(selected.name).View().String()))
	sb.WriteString("\n")
	if n := len(*m.changes); n > 0 {
		last := (*m.changes)[n-1]
		sb.WriteString(m.styles.Dimmed.Render(fmt.Sprintf("last change: %s.%s %s → %s", last.Block, last.Field, last.Old, last.New)))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keyMap))
	return sb.String()
}

func (m Model) fieldPreview(e entry) string {
	f := e.block.Field(e.name)
	switch f := f.(type) {
	case *field.Checkbox:
		if f.Bool() {
			return f.CheckCharacter()
		}
		return "·"
	case *field.CheckboxColor:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(f.Fill())).Render("██")
	case *field.CheckboxColorSized:
		w, _ := f.Size()
		cells := max(w/field.DefaultSize, 1)
		return lipgloss.NewStyle().Foreground(lipgloss.Color(f.Fill())).Render(strings.Repeat("█", cells*2))
	}
	return string(f.Read())
}
