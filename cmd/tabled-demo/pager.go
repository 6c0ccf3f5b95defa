package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// pagerKeys defines the key bindings for the gallery pager.
type pagerKeys struct {
	Quit     key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	GoTop    key.Binding
	GoBottom key.Binding
}

var keys = pagerKeys{
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/up", "scroll up")),
	Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/dn", "scroll down")),
	PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d", "space"), key.WithHelp("pgdn", "page down")),
	GoTop:    key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
	GoBottom: key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
}

var styleFooter = lipgloss.NewStyle().Faint(true)

// pagerModel scrolls pre-rendered gallery output in a viewport.
type pagerModel struct {
	viewport viewport.Model
	content  string
	ready    bool
}

func (m pagerModel) Init() tea.Cmd {
	return nil
}

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Up):
			m.viewport.ScrollUp(1)
		case key.Matches(msg, keys.Down):
			m.viewport.ScrollDown(1)
		case key.Matches(msg, keys.PageUp):
			m.viewport.HalfPageUp()
		case key.Matches(msg, keys.PageDown):
			m.viewport.HalfPageDown()
		case key.Matches(msg, keys.GoTop):
			m.viewport.GotoTop()
		case key.Matches(msg, keys.GoBottom):
			m.viewport.GotoBottom()
		}

	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 1
		m.viewport.SetContent(m.content)
		m.ready = true
	}

	return m, nil
}

func (m pagerModel) View() string {
	if !m.ready {
		return "Initializing..."
	}
	footer := styleFooter.Render(fmt.Sprintf("j/k scroll  g/G top/bottom  q quit  %3.0f%%",
		m.viewport.ScrollPercent()*100))
	return m.viewport.View() + "\n" + footer
}

// runPager displays content in a full-screen scrolling pager.
func runPager(content string) error {
	m := pagerModel{content: content}
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
