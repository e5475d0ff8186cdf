// Package tui is an interactive terminal view of a single game of War.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/warforbots/internal/game"
)

// Config configures the TUI model
type Config struct {
	NewGame  func() *game.Game // Called on start and on every restart
	Logger   *log.Logger
	Clock    quartz.Clock  // Drives auto-play; defaults to the real clock
	Interval time.Duration // Delay between auto-played rounds
	Batch    int           // Rounds played by the fast-forward key
	TestMode bool
}

// tickMsg asks the model to auto-play one round. Ticks from a cancelled
// auto-play run carry a stale generation and are dropped.
type tickMsg struct {
	gen int
}

// Model is the Bubble Tea model for a game of War
type Model struct {
	newGame   func() *game.Game
	game      *game.Game
	logger    *log.Logger
	clock     quartz.Clock
	interval  time.Duration
	batch     int
	formatter *game.Formatter

	logViewport viewport.Model
	gameLog     []string

	auto     bool
	autoGen  int
	timer    *quartz.Timer
	stopTick chan struct{}

	width       int
	height      int
	initialized bool
	quitting    bool

	testMode    bool
	capturedLog []string
}

// New creates a model and starts the first game
func New(cfg Config) *Model {
	if cfg.NewGame == nil {
		panic("tui: NewGame is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if cfg.Clock == nil {
		cfg.Clock = quartz.NewReal()
	}
	if cfg.Interval <= 0 {
		cfg.Interval = 250 * time.Millisecond
	}
	if cfg.Batch <= 0 {
		cfg.Batch = 100
	}

	vp := viewport.New(10, 5)
	vp.SetContent("")

	m := &Model{
		newGame:     cfg.NewGame,
		logger:      cfg.Logger.WithPrefix("tui"),
		clock:       cfg.Clock,
		interval:    cfg.Interval,
		batch:       cfg.Batch,
		logViewport: vp,
		testMode:    cfg.TestMode,
	}

	style := StyleCard
	if m.testMode {
		style = nil
	}
	m.formatter = game.NewFormatter(game.FormattingOptions{Compact: true, Style: style})
	m.restart()
	return m
}

// Run shows the model full screen until the user quits or ctx is done
func Run(ctx context.Context, m *Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	m.stopAuto()
	return err
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)

	case tickMsg:
		if !m.auto || msg.gen != m.autoGen {
			return m, nil
		}
		m.game.PlayRound()
		if m.game.IsOver() {
			m.stopAuto()
			return m, nil
		}
		return m, m.scheduleTick()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			m.stopAuto()
			return m, tea.Quit
		case " ", "n":
			m.game.PlayRound()
		case "f":
			played := m.game.PlayRounds(m.batch)
			m.logger.Debug("Fast forward", "rounds", played)
		case "a":
			if m.auto {
				m.stopAuto()
			} else if !m.game.IsOver() {
				m.auto = true
				return m, m.scheduleTick()
			}
		case "r":
			m.stopAuto()
			m.restart()
		case "up", "k":
			m.logViewport.ScrollUp(1)
		case "down", "j":
			m.logViewport.ScrollDown(1)
		case "pgup", "b":
			m.logViewport.HalfPageUp()
		case "pgdown":
			m.logViewport.HalfPageDown()
		case "home", "g":
			m.logViewport.GotoTop()
		case "end", "G":
			m.logViewport.GotoBottom()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.logViewport, cmd = m.logViewport.Update(msg)
	return m, cmd
}

// scheduleTick arms the auto-play timer. The timer is registered before the
// command runs so a mock clock can fire it deterministically.
func (m *Model) scheduleTick() tea.Cmd {
	m.autoGen++
	gen := m.autoGen
	fired := make(chan struct{}, 1)
	stop := make(chan struct{})
	m.stopTick = stop
	m.timer = m.clock.AfterFunc(m.interval, func() {
		fired <- struct{}{}
	}, "tui", "autoplay")

	return func() tea.Msg {
		select {
		case <-fired:
			return tickMsg{gen: gen}
		case <-stop:
			return nil
		}
	}
}

func (m *Model) stopAuto() {
	m.auto = false
	m.autoGen++
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	if m.stopTick != nil {
		close(m.stopTick)
		m.stopTick = nil
	}
}

// restart replaces the game with a fresh one and clears the log
func (m *Model) restart() {
	m.game = m.newGame()
	m.game.Subscribe(game.EventSubscriberFunc(m.onEvent))
	m.ClearLog()
	m.capturedLog = nil
	m.AddLogEntry(fmt.Sprintf("New game %s (seed %d)", m.game.ID(), m.game.Seed()))
	m.logger.Info("Started game", "id", m.game.ID(), "seed", m.game.Seed())
}

func (m *Model) onEvent(event game.GameEvent) {
	switch e := event.(type) {
	case game.WarEvent:
		m.AddLogEntry(m.highlight(WarStyle, fmt.Sprintf("  War! (round %d, #%d)", e.Round, e.Iteration)))
	case game.RoundEndEvent:
		m.AddLogEntry(m.formatter.FormatRecord(e.Record))
	case game.GameOverEvent:
		m.AddLogEntry(m.highlight(SuccessStyle, m.formatter.FormatResult(m.game.Snapshot())))
	}
}

func (m *Model) highlight(style lipgloss.Style, s string) string {
	if m.testMode {
		return s
	}
	return style.Render(s)
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := HeaderStyle.Width(m.width).Render(m.renderHeader())
	players := m.renderPlayers()
	status := m.renderStatus()

	logHeight := m.height - lipgloss.Height(header) - lipgloss.Height(players) - lipgloss.Height(status) - 2
	if logHeight < 1 {
		logHeight = 1
	}
	logWidth := m.width - 2
	if logWidth < 1 {
		logWidth = 1
	}

	m.logViewport.Width = logWidth
	m.logViewport.Height = logHeight
	if !m.initialized && logHeight > 1 {
		m.logViewport.GotoBottom()
		m.initialized = true
	}

	logPane := PaneStyle.Width(logWidth).Height(logHeight).Render(m.logViewport.View())
	return lipgloss.JoinVertical(lipgloss.Left, header, players, logPane, status)
}

func (m *Model) renderHeader() string {
	return fmt.Sprintf("War  game %s  seed %d  round %d", m.game.ID(), m.game.Seed(), m.game.Round())
}

func (m *Model) renderPlayers() string {
	snap := m.game.Snapshot()
	var lines []string
	for _, view := range snap.Players {
		line := fmt.Sprintf("%s  deck %2d  discard %2d  total %2d",
			view.Side, view.Deck, view.Discard, view.Total())
		if snap.Last != nil {
			if c, ok := snap.Last.Decider(view.Side); ok {
				line += "  played " + StyleCard(c)
			}
		}
		lines = append(lines, PlayerInfoStyle.Render(line))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderStatus() string {
	var state string
	switch {
	case m.game.IsOver():
		state = SuccessStyle.Render(m.formatter.FormatResult(m.game.Snapshot()))
	case m.auto:
		state = WarningStyle.Render("Auto-play on")
	default:
		state = InfoStyle.Render("Paused")
	}
	help := InfoStyle.Render("space next • a auto • f +" + fmt.Sprint(m.batch) + " • r restart • q quit")
	return state + "\n" + help
}

// AddLogEntry appends a line to the game log and follows it
func (m *Model) AddLogEntry(entry string) {
	m.gameLog = append(m.gameLog, entry)

	if m.testMode {
		m.capturedLog = append(m.capturedLog, entry)
		return
	}

	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

// ClearLog clears the game log
func (m *Model) ClearLog() {
	m.gameLog = nil
	m.logViewport.SetContent("")
}

// Game returns the game currently shown
func (m *Model) Game() *game.Game { return m.game }

// Auto reports whether auto-play is running
func (m *Model) Auto() bool { return m.auto }

// IsTestMode returns whether the model is in test mode
func (m *Model) IsTestMode() bool { return m.testMode }

// GetCapturedLog returns the captured log entries (test mode only)
func (m *Model) GetCapturedLog() []string {
	if !m.testMode {
		return nil
	}
	out := make([]string, len(m.capturedLog))
	copy(out, m.capturedLog)
	return out
}
