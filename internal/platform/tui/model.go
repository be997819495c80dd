package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/lander"
)

// World units per terminal cell. Cells are roughly twice as tall as wide, so
// the simulation space stays close to square pixels.
const (
	cellW = 8.0
	cellH = 16.0
)

// holdWindow is how long a hold key stays active after its last press or
// auto-repeat. Terminals report no key releases, so the window has to outlast
// the initial repeat delay.
const holdWindow = 250 * time.Millisecond

// WorldSize converts a terminal grid to world units.
func WorldSize(cols, rows int) (w, h float64) {
	return float64(cols) * cellW, float64(rows) * cellH
}

// Model is the Bubble Tea model that drives the lander engine.
type Model struct {
	engine *lander.Engine
	screen *core.Screen
	config core.RuntimeConfig
	keys   KeyMap
	help   help.Model

	rotateLeft  *core.HoldLatch
	rotateRight *core.HoldLatch
	thrust      *core.HoldLatch

	pending  core.Signals // edge flags and wheel delta gathered since last tick
	lastTick time.Time
	quitting bool
}

// NewModel creates the Bubble Tea model for a fresh session.
func NewModel(lcfg config.LanderConfig, cfg core.RuntimeConfig, sink lander.AudioSink) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		engine:      lander.New(lcfg, cfg, sink),
		screen:      core.NewScreen(int(cfg.ScreenW/cellW), int(cfg.ScreenH/cellH)),
		config:      cfg,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		rotateLeft:  core.NewHoldLatch(holdWindow),
		rotateRight: core.NewHoldLatch(holdWindow),
		thrust:      core.NewHoldLatch(holdWindow),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Hold actions refresh their latch;
// everything else is queued as an edge for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := time.Now()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.RotateLeft):
		m.rotateLeft.Press(now)
	case key.Matches(msg, m.keys.RotateRight):
		m.rotateRight.Press(now)
	case key.Matches(msg, m.keys.Thrust):
		m.thrust.Press(now)
	case key.Matches(msg, m.keys.Restart):
		m.pending.Restart = true
	case key.Matches(msg, m.keys.Pause):
		m.pending.Pause = true
	case key.Matches(msg, m.keys.Back):
		m.pending.Back = true
	}

	return m, nil
}

// handleMouse accumulates wheel motion as a direct rotation nudge.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	const wheelStep = 0.08 // radians per notch

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.pending.WheelDelta -= wheelStep
	case tea.MouseButtonWheelDown:
		m.pending.WheelDelta += wheelStep
	}

	return m, nil
}

// handleResize maps the terminal grid to world units. The bottom row is
// reserved for the help line.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	rows := msg.Height - 1
	if rows < 1 {
		rows = 1
	}

	m.config.ScreenW = float64(msg.Width) * cellW
	m.config.ScreenH = float64(rows) * cellH
	m.screen.Resize(msg.Width, rows)
	m.help.Width = msg.Width
	m.engine.SetScreenSize(m.config.ScreenW, m.config.ScreenH)

	return m, nil
}

// handleTick advances the simulation by the real elapsed time.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1.0 / float64(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	sig := core.Signals{
		RotateLeft:  m.rotateLeft.Held(now),
		RotateRight: m.rotateRight.Held(now),
		Thrust:      m.thrust.Held(now),
		Restart:     m.pending.Restart,
		Pause:       m.pending.Pause,
		Back:        m.pending.Back,
		WheelDelta:  m.pending.WheelDelta,
	}
	m.engine.Update(dt, sig)
	m.pending = core.Signals{}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current snapshot.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawSnapshot(m.screen, m.engine.Snapshot())
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program.
func Run(lcfg config.LanderConfig, cfg core.RuntimeConfig, sink lander.AudioSink) error {
	p := tea.NewProgram(
		NewModel(lcfg, cfg, sink),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // wheel rotation
	)

	_, err := p.Run()
	return err
}
