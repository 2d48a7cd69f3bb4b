package tui

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bubblepop/internal/config"
	"github.com/vovakirdan/bubblepop/internal/core"
	"github.com/vovakirdan/bubblepop/internal/game"
)

// Smallest playfield worth drawing, in cells.
const (
	minFieldW = 20
	minFieldH = 6
)

// GameModel is the Bubble Tea model for a Bubble Pop session.
type GameModel struct {
	ctrl   *game.Controller
	sched  *TeaScheduler
	canvas *Canvas
	screen *core.Screen
	logger *log.Logger
	keys   GameKeyMap
	help   help.Model
	config core.RuntimeConfig

	standalone bool // Back quits instead of returning to a menu
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model. The session starts in Init.
func NewGameModel(cfg config.BubbleConfig, rt core.RuntimeConfig, logger *log.Logger) (GameModel, error) {
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := NewTeaScheduler()
	canvas := NewCanvas()
	ctrl, err := game.New(cfg, s,
		game.WithSurface(canvas),
		game.WithLogger(logger),
		game.WithRand(rand.New(rand.NewSource(rt.Seed))),
	)
	if err != nil {
		return GameModel{}, err
	}

	return GameModel{
		ctrl:   ctrl,
		sched:  s,
		canvas: canvas,
		screen: core.NewScreen(rt.ScreenW, rt.ScreenH),
		logger: logger,
		keys:   DefaultGameKeyMap(),
		help:   help.New(),
		config: rt,
	}, nil
}

// Init starts the session.
func (m GameModel) Init() tea.Cmd {
	m.ctrl.Start()
	return m.sched.Flush()
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FireMsg:
		m.sched.Dispatch(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
	}

	return m, m.sched.Flush()
}

// handleMouse pops the bubble under a left-button press.
func (m GameModel) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	field, ok := m.field()
	if !ok {
		return
	}
	p, ok := NewViewport(field, m.ctrl.Config().Canvas).ToCanvas(msg.X, msg.Y)
	if !ok {
		return
	}
	if b, popped := m.ctrl.Press(p.X, p.Y); popped {
		m.logger.Debug("pop", "bubble", b.ID, "x", p.X, "y", p.Y)
	}
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.shutdown()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.shutdown()
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		m.ctrl.Restart()

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, m.sched.Flush()
}

// shutdown stops the session and drops any timer still in flight.
func (m GameModel) shutdown() {
	m.ctrl.Stop()
	m.sched.CancelAll()
}

// layout returns the bordered box below the HUD row and the playfield inside it.
func (m GameModel) layout() (box, field core.Rect) {
	helpH := lipgloss.Height(m.help.View(m.keys))
	h := m.config.ScreenH - helpH
	box = core.NewRect(0, 1, m.config.ScreenW, h-1)
	field = core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2)
	return box, field
}

func (m GameModel) field() (core.Rect, bool) {
	_, field := m.layout()
	return field, field.W >= minFieldW && field.H >= minFieldH
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	box, field := m.layout()
	if field.W < minFieldW || field.H < minFieldH {
		return centerText("Terminal too small for Bubble Pop", m.config.ScreenW) + "\n" +
			centerText("q: quit", m.config.ScreenW)
	}

	m.render(box, field)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// render draws the HUD and playfield into the screen buffer.
func (m GameModel) render(box, field core.Rect) {
	m.screen.Resize(m.config.ScreenW, box.Bottom())
	m.screen.Clear()

	s := m.ctrl.Snapshot()
	m.screen.DrawText(1, 0, "BUBBLE POP", core.ColorBrightCyan)
	hud := fmt.Sprintf("Score: %d   Lives: %d", s.Score, s.Lives)
	m.screen.DrawText(box.Right()-len(hud)-1, 0, hud, core.ColorBrightWhite)

	borderColor := core.ColorCyan
	if s.Phase == game.PhaseGameOver {
		borderColor = core.ColorRed
	}
	m.screen.DrawBox(box, borderColor)

	m.canvas.Draw(m.screen, NewViewport(field, m.ctrl.Config().Canvas))
	if s.Phase == game.PhaseGameOver {
		m.screen.DrawTextCentered(field.Y+field.H/2+3, "press r to restart", core.ColorYellow)
	}
}

// saveScreenshot saves the current screen as plain text.
func (m GameModel) saveScreenshot() {
	box, field := m.layout()
	m.render(box, field)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".bubblepop", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	path := filepath.Join(dir, fmt.Sprintf("bubblepop_%s.txt", time.Now().Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// Controller exposes the hosted controller.
func (m GameModel) Controller() *game.Controller {
	return m.ctrl
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays Bubble Pop full screen until the user quits.
func Run(cfg config.BubbleConfig, rt core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewGameModel(cfg, rt, logger)
	if err != nil {
		return err
	}
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}
