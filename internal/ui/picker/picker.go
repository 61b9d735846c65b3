// Package picker is a small interactive chooser for workbooks that carry
// more than one sheet.
package picker

import (
	"errors"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCancelled is returned when the user backs out without choosing.
var ErrCancelled = errors.New("selection cancelled")

type sheetItem string

func (s sheetItem) Title() string       { return string(s) }
func (s sheetItem) Description() string { return "" }
func (s sheetItem) FilterValue() string { return string(s) }

type model struct {
	menu     list.Model
	choice   string
	quitting bool
}

func newModel(title string, options []string) model {
	items := make([]list.Item, 0, len(options))
	for _, o := range options {
		items = append(items, sheetItem(o))
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false

	l := list.New(items, delegate, 0, 0)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return model{menu: l}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.menu.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			if it, ok := m.menu.SelectedItem().(sheetItem); ok {
				m.choice = string(it)
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.choice != "" || m.quitting {
		return ""
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(m.menu.View())
}

// Choose presents the options and returns the selected one. ErrCancelled
// means the user quit without picking.
func Choose(title string, options []string) (string, error) {
	m := newModel(title, options)
	p := tea.NewProgram(m, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return "", err
	}

	out, ok := final.(model)
	if !ok || out.choice == "" {
		return "", ErrCancelled
	}
	return out.choice, nil
}
