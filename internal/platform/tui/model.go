package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-shooter/internal/config"
	"github.com/vovakirdan/space-shooter/internal/core"
	"github.com/vovakirdan/space-shooter/internal/platform/history"
	"github.com/vovakirdan/space-shooter/internal/shooter"
	"github.com/vovakirdan/space-shooter/internal/storage"
)

// Options carries what a game model needs besides the terminal size.
type Options struct {
	Config config.ShooterConfig
	Store  *storage.Store // optional run history
	Logger *log.Logger
	Player string // recorded with each run
	Seed   int64  // 0 picks a time-based seed per run
}

const controlsHint = "WASD/arrows move  space fire  p pause  esc back  q quit"

// GameModel is the Bubble Tea model running shooter sessions. A finished
// run is saved and followed by a fresh session at its title screen; quit
// ends the program and back returns to the launcher menu.
type GameModel struct {
	opts    Options
	runtime core.RuntimeConfig
	screen  *core.Screen
	canvas  *Canvas
	session *shooter.Session
	keys    *KeyMapper
	held    *HeldKeys
	rec     *history.Recorder
	state   core.GameState
	err     error

	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model for a width x height terminal.
func NewGameModel(opts Options, width, height int) GameModel {
	if opts.Logger == nil {
		opts.Logger = log.New(os.Stderr)
	}
	rt := opts.Config.Runtime(opts.Seed)
	rt.ScreenW, rt.ScreenH = width, height

	screen := core.NewScreen(width, height)
	m := GameModel{
		opts:    opts,
		runtime: rt,
		screen:  screen,
		canvas:  NewCanvas(screen, rt.FieldW, rt.FieldH),
		keys:    NewKeyMapper(),
		held:    NewHeldKeys(opts.Config.Input.InitialHoldTicks, opts.Config.Input.RepeatHoldTicks),
		rec:     history.NewRecorder(opts.Store, opts.Logger, opts.Player),
	}
	m.err = m.newSession()
	return m
}

// newSession starts a session at its title screen.
func (m *GameModel) newSession() error {
	rt := m.runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	ctx, err := shooter.NewContext(rt, m.opts.Config)
	if err != nil {
		return err
	}
	m.session = shooter.NewSession(ctx)
	m.opts.Logger.Debug("session created", "seed", rt.Seed)
	return nil
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	if m.err != nil {
		return tea.Quit
	}
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.canvas.Layout()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, _ := m.keys.MapKey(msg)
	if action == core.ActionBack && m.session.Phase() == shooter.PhaseMenu {
		m.backToMenu = true
		return m, tea.Quit
	}
	m.held.Press(action)
	return m, nil
}

// handleTick runs one session tick and draws it into the screen.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	m.canvas.Begin()
	res := m.session.Tick(m.held.Frame(), m.canvas)
	m.canvas.Flush()
	if m.session.Phase() == shooter.PhaseMenu {
		m.screen.DrawTextCentered(m.screen.Height()-1, controlsHint, core.ColorGray)
	}
	m.state = res.State
	m.rec.LogEvents(m.session.Events())

	if !res.Terminated {
		return m, tickCmd(m.runtime.TickRate)
	}

	if !m.rec.Finish(m.session) {
		m.quitting = true
		return m, tea.Quit
	}

	m.held.Release()
	if err := m.newSession(); err != nil {
		m.err = err
		return m, tea.Quit
	}
	return m, tickCmd(m.runtime.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m GameModel) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".shooter", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("shooter_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n", m.err)
	}
	return RenderScreen(m.screen)
}

// Err returns the error that stopped the model, if any.
func (m GameModel) Err() error { return m.err }

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool { return m.quitting }

// BackToMenu returns true if user requested to go back to the menu.
func (m GameModel) BackToMenu() bool { return m.backToMenu }

// State returns the last reported game state.
func (m GameModel) State() core.GameState { return m.state }

// Run starts a game program in the current terminal. It returns true when
// the player asked to go back to the launcher menu.
func Run(opts Options, width, height int) (backToMenu bool, err error) {
	model := NewGameModel(opts, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(GameModel)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), m.Err()
}
