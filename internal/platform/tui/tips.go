package tui

import (
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bubblepop/internal/companion"
)

// TipsModel lists the emotions with their music genre and shows a random
// tip for the selected one.
type TipsModel struct {
	table  table.Model
	keys   MenuKeyMap
	help   help.Model
	rng    *rand.Rand
	width  int
	height int

	emotion string // Emotion of the tip on display
	tip     string

	standalone bool
	quitting   bool
	backToMenu bool
}

// NewTipsModel creates the mood tips screen.
func NewTipsModel(width, height int, seed int64) TipsModel {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	m := TipsModel{
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
		rng:    rand.New(rand.NewSource(seed)),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = m.createTable()
	return m
}

// createTable creates the emotion table.
func (m *TipsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Emotion", Width: 12},
		{Title: "Genre", Width: 14},
	}

	emotions := companion.Emotions()
	rows := make([]table.Row, 0, len(emotions))
	for _, e := range emotions {
		genre, _ := companion.Genre(e)
		rows = append(rows, table.Row{e, genre})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Init initializes the tips screen.
func (m TipsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the tips screen.
func (m TipsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
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

		case key.Matches(msg, m.keys.Select):
			m.pick()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// pick draws a tip for the highlighted emotion.
func (m *TipsModel) pick() {
	row := m.table.SelectedRow()
	if row == nil {
		return
	}
	tip, ok := companion.Tip(row[0], m.rng)
	if !ok {
		tip = "No tips available for the detected emotion."
	}
	m.emotion = row[0]
	m.tip = tip
}

// View renders the tips screen.
func (m TipsModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Mood Tips"))
	b.WriteString("\n\n")
	b.WriteString(panelStyle.Render(m.table.View()))
	b.WriteString("\n\n")

	if m.tip != "" {
		label := selectedStyle.Render("Tip for " + strings.ToUpper(m.emotion[:1]) + m.emotion[1:] + ":")
		b.WriteString(label + " " + m.tip)
	} else {
		b.WriteString(helpStyle.Render("Pick how you feel and press enter."))
	}
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Tip returns the tip on display, if any.
func (m TipsModel) Tip() (emotion, tip string) {
	return m.emotion, m.tip
}

// IsQuitting returns true if user requested to quit entirely.
func (m TipsModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m TipsModel) BackToMenu() bool {
	return m.backToMenu
}

// RunTips runs the mood tips screen full screen until the user leaves.
func RunTips(seed int64) error {
	m := NewTipsModel(80, 24, seed)
	m.standalone = true
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
