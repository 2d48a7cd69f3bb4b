package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bubblepop/internal/companion"
)

// ChatModel is the chatbot screen: a scrolling transcript above a text input.
type ChatModel struct {
	input      textinput.Model
	transcript viewport.Model
	history    *companion.Transcript
	keys       ChatKeyMap
	help       help.Model
	width      int
	height     int

	standalone bool
	quitting   bool
	backToMenu bool
}

// NewChatModel creates a chat screen of the given size.
func NewChatModel(width, height int) ChatModel {
	ti := textinput.New()
	ti.Placeholder = "Say hello..."
	ti.Prompt = "> "
	ti.CharLimit = 200
	ti.Focus()

	m := ChatModel{
		input:      ti,
		transcript: viewport.New(0, 0),
		history:    &companion.Transcript{},
		keys:       DefaultChatKeyMap(),
		help:       help.New(),
	}
	m.resize(width, height)
	return m
}

func (m *ChatModel) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	// Title, input, help and the panel border take 5 rows
	m.transcript.Width = max(width-4, 10)
	m.transcript.Height = max(height-5, 3)
	m.input.Width = max(width-6, 10)
	m.refresh()
}

func (m *ChatModel) refresh() {
	style := lipgloss.NewStyle().Width(m.transcript.Width)
	m.transcript.SetContent(style.Render(m.history.String()))
	m.transcript.GotoBottom()
}

// Init starts the cursor blinking.
func (m ChatModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the chat screen.
func (m ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			if m.standalone {
				m.quitting = true
				return m, tea.Quit
			}
			m.backToMenu = true
			return m, nil

		case key.Matches(msg, m.keys.Send):
			if _, ok := m.history.Send(m.input.Value()); ok {
				m.input.Reset()
				m.refresh()
			}
			return m, nil
		}

		// Typed characters belong to the input, not to transcript scrolling
		if msg.Type != tea.KeyRunes && msg.Type != tea.KeySpace {
			var cmd tea.Cmd
			m.transcript, cmd = m.transcript.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.transcript, cmd = m.transcript.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// View renders the chat screen.
func (m ChatModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Chatbot"))
	b.WriteString("\n")
	b.WriteString(panelStyle.Render(m.transcript.View()))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Transcript returns the conversation so far.
func (m ChatModel) Transcript() *companion.Transcript {
	return m.history
}

// IsQuitting returns true if user requested to quit entirely.
func (m ChatModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m ChatModel) BackToMenu() bool {
	return m.backToMenu
}

// RunChat runs the chatbot full screen until the user leaves.
func RunChat() error {
	m := NewChatModel(80, 24)
	m.standalone = true
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
