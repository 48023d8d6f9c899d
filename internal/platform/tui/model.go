package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const maxTickRate = 60

// Model is the Bubble Tea model for watching a grid simulation.
type Model struct {
	scene    Scene
	theme    Theme
	keys     WatchKeyMap
	help     help.Model
	tickRate int
	paused   bool
	done     bool
	width    int
	height   int
	quitting bool
}

// NewModel creates a watcher for scene advancing tickRate steps per second.
func NewModel(scene Scene, tickRate, width, height int) Model {
	tickRate = max(1, min(tickRate, maxTickRate))
	h := help.New()
	h.Width = width
	return Model{
		scene:    scene,
		theme:    DefaultTheme(),
		keys:     DefaultWatchKeyMap(),
		help:     h,
		tickRate: tickRate,
		width:    width,
		height:   height,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if !m.paused {
			m.advance()
		}
		return m, tickCmd(m.tickRate)
	}

	return m, nil
}

func (m *Model) advance() {
	if m.done {
		return
	}
	if !m.scene.Advance() {
		m.done = true
	}
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
	case key.Matches(msg, m.keys.Step):
		m.paused = true
		m.advance()
	case key.Matches(msg, m.keys.Faster):
		m.tickRate = min(m.tickRate*2, maxTickRate)
	case key.Matches(msg, m.keys.Slower):
		m.tickRate = max(m.tickRate/2, 1)
	case key.Matches(msg, m.keys.Restart):
		m.scene.Reset()
		m.done = false
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.theme.Title.Render(m.scene.Title()))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Frame.Render(RenderGrid(m.scene.Grid(), m.scene.Highlighted(), m.theme)))
	b.WriteString("\n")

	status := m.scene.Status() + fmt.Sprintf("  (%d/s)", m.tickRate)
	b.WriteString(m.theme.Status.Render(status))
	switch {
	case m.done:
		b.WriteString("  " + m.theme.Done.Render("DONE"))
	case m.paused:
		b.WriteString("  " + m.theme.Paused.Render("PAUSED"))
	}

	b.WriteString("\n\n")
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))
	return b.String()
}

// Run starts the Bubble Tea program for the given scene.
func Run(scene Scene, tickRate, width, height int) error {
	p := tea.NewProgram(
		NewModel(scene, tickRate, width, height),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
