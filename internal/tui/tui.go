// Package tui provides the Bubble Tea terminal user interface for
// taptempo. The program lifecycle doubles as the raw-mode scope guard:
// the terminal is restored on quit, error, interrupt and panic alike.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tapbeat/taptempo/internal/session"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	currentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#FFFFFF"))

	bpmStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))

	tapBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(0, 2)

	popupStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("#FFE66D")).
			Padding(0, 2)
)

// Model is the Bubble Tea model wrapping the session controller.
type Model struct {
	controller *session.Controller
	keys       session.KeyMap
	help       help.Model

	err    error
	width  int
	height int
}

// NewModel creates the TUI model for a started session.
func NewModel(controller *session.Controller) Model {
	return Model{
		controller: controller,
		keys:       session.DefaultKeyMap(),
		help:       help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
//
// Exactly one session command is applied per key event; everything
// else falls through untouched, so the controller only ever sees the
// vocabulary of its current mode.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.controller.Shutdown()
			return m, tea.Quit
		}

		cmd, ok := m.keys.MapKey(m.controller.Mode(), msg)
		if !ok {
			return m, nil
		}

		done, err := m.controller.Apply(cmd)
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		if done {
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("♩ taptempo"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Tap along to tag your tracks with their tempo"))
	b.WriteString("\n\n")

	b.WriteString(m.viewPlaylist())
	b.WriteString("\n")

	switch m.controller.Mode() {
	case session.ModeBrowsing:
		b.WriteString(m.viewTapWindow())
	case session.ModeReviewing:
		b.WriteString(m.viewReview())
	case session.ModeManualEntry:
		b.WriteString(m.viewManualEntry())
	}

	b.WriteString("\n")
	b.WriteString(m.viewHelp())

	return b.String()
}

func (m Model) viewPlaylist() string {
	var b strings.Builder

	playlist := m.controller.Playlist()
	for i, track := range playlist.Tracks() {
		row := fmt.Sprintf(" %4s  %s ", bpmText(track.BPM()), track.Path())
		if i == playlist.Index() {
			b.WriteString(currentStyle.Render(row))
		} else {
			b.WriteString(row)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func bpmText(bpm uint, ok bool) string {
	if !ok {
		return "—"
	}
	return fmt.Sprintf("%d", bpm)
}

func (m Model) viewTapWindow() string {
	status := dimStyle.Render("start tapping...")
	if avg, ok := m.controller.Average(); ok {
		status = fmt.Sprintf("BPM: %s  %s",
			bpmStyle.Render(fmt.Sprintf("%d", avg)),
			dimStyle.Render(fmt.Sprintf("(%d taps)", m.controller.TapCount())))
	}
	return tapBoxStyle.Render("Tap Space for BPM!\n" + status)
}

func (m Model) viewReview() string {
	return popupStyle.Render(fmt.Sprintf("Save BPM %d?\n%s",
		m.controller.Candidate(),
		dimStyle.Render("y: yes • n: no")))
}

func (m Model) viewManualEntry() string {
	value := fmt.Sprintf("%d", m.controller.ManualValue())
	if m.controller.ManualValue() == 0 {
		value = "_"
	}
	return popupStyle.Render("Manual BPM: " + bpmStyle.Render(value))
}

func (m Model) viewHelp() string {
	switch m.controller.Mode() {
	case session.ModeReviewing:
		return m.help.View(m.keys.Reviewing)
	case session.ModeManualEntry:
		return m.help.View(m.keys.Manual)
	default:
		return m.help.View(m.keys.Browsing)
	}
}

// Run starts playback and drives the TUI until the session ends.
//
// The playback handle is released on every exit path; terminal state
// is restored by the Bubble Tea program itself.
func Run(controller *session.Controller) error {
	defer controller.Shutdown()

	if err := controller.Start(); err != nil {
		return err
	}

	p := tea.NewProgram(NewModel(controller), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}
