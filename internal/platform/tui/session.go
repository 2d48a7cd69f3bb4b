package tui

import (
	"io"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bubblepop/internal/config"
	"github.com/vovakirdan/bubblepop/internal/core"
)

// screen identifies the active view of a session.
type screen int

const (
	screenMenu screen = iota
	screenGame
	screenChat
	screenTips
)

// SessionModel manages the full companion flow: menu -> activity -> menu.
// It is the top-level model for `bubblepop menu` and for SSH sessions.
type SessionModel struct {
	cfg    config.BubbleConfig
	rt     core.RuntimeConfig
	logger *log.Logger
	user   string
	seeds  *rand.Rand // Per-game seeds when rt.Seed is unset

	active screen
	menu   MenuModel
	game   *GameModel
	chat   ChatModel
	tips   TipsModel

	err      error // Last failure to open an activity, shown on the menu
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(cfg config.BubbleConfig, rt core.RuntimeConfig, user string, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return SessionModel{
		cfg:    cfg,
		rt:     rt,
		logger: logger,
		user:   user,
		seeds:  rand.New(rand.NewSource(time.Now().UnixNano())),
		menu:   NewMenuModel(rt.ScreenW, rt.ScreenH),
	}
}

// gameRuntime returns the runtime config for a new game. An explicit seed
// replays the same game every time; otherwise each game gets a fresh one.
func (m SessionModel) gameRuntime() core.RuntimeConfig {
	rt := m.rt
	for rt.Seed == 0 {
		rt.Seed = m.seeds.Int63()
	}
	return rt
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.rt.ScreenW = wsm.Width
		m.rt.ScreenH = wsm.Height
	}

	switch m.active {
	case screenGame:
		return m.updateGame(msg)
	case screenChat:
		return m.updateChat(msg)
	case screenTips:
		return m.updateTips(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Timers of a game the user already left
	if _, ok := msg.(FireMsg); ok {
		return m, nil
	}

	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch m.menu.Selected() {
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit

	case ChoiceBubblePop:
		gm, err := NewGameModel(m.cfg, m.gameRuntime(), m.logger)
		if err != nil {
			m.logger.Error("cannot start game", "user", m.user, "error", err)
			m.err = err
			m.menu = NewMenuModel(m.rt.ScreenW, m.rt.ScreenH)
			return m, nil
		}
		m.game = &gm
		m.active = screenGame
		m.logger.Info("game started", "user", m.user)
		return m, m.game.Init()

	case ChoiceChatbot:
		m.chat = NewChatModel(m.rt.ScreenW, m.rt.ScreenH)
		m.active = screenChat
		return m, m.chat.Init()

	case ChoiceMoodTips:
		m.tips = NewTipsModel(m.rt.ScreenW, m.rt.ScreenH, m.rt.Seed)
		m.active = screenTips
		return m, m.tips.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		m.logger.Info("game left", "user", m.user, "score", m.game.Controller().Score())
		m.game = nil
		return m.toMenu()
	}

	return m, cmd
}

// updateChat handles updates when in chat mode.
func (m SessionModel) updateChat(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(FireMsg); ok {
		return m, nil
	}

	newModel, cmd := m.chat.Update(msg)
	if chatModel, ok := newModel.(ChatModel); ok {
		m.chat = chatModel
	}

	if m.chat.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.chat.BackToMenu() {
		return m.toMenu()
	}
	return m, cmd
}

// updateTips handles updates when in tips mode.
func (m SessionModel) updateTips(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(FireMsg); ok {
		return m, nil
	}

	newModel, cmd := m.tips.Update(msg)
	if tipsModel, ok := newModel.(TipsModel); ok {
		m.tips = tipsModel
	}

	if m.tips.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.tips.BackToMenu() {
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.active = screenMenu
	m.menu = NewMenuModel(m.rt.ScreenW, m.rt.ScreenH)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.active {
	case screenGame:
		return m.game.View()
	case screenChat:
		return m.chat.View()
	case screenTips:
		return m.tips.View()
	}

	view := m.menu.View()
	if m.err != nil {
		view += "\n" + centerText(colorStyles[core.ColorBrightRed].Render("Error: "+m.err.Error()), m.rt.ScreenW)
	}
	return view
}

// RunSession runs the companion menu full screen until the user quits.
func RunSession(cfg config.BubbleConfig, rt core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewSessionModel(cfg, rt, "", logger),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
