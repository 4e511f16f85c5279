package gui

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/space-shooter/internal/config"
	"github.com/vovakirdan/space-shooter/internal/platform/history"
	"github.com/vovakirdan/space-shooter/internal/shooter"
	"github.com/vovakirdan/space-shooter/internal/storage"
)

// WindowTitle is shown in the title bar.
const WindowTitle = "Space Shooter"

// Options carries what the window needs to run sessions.
type Options struct {
	Config config.ShooterConfig
	Store  *storage.Store // optional run history
	Logger *log.Logger
	Player string
	Seed   int64 // 0 picks a time-based seed per run
}

// Game runs shooter sessions inside an ebiten window. Update ticks the
// session into a display list and Draw replays it, so the picture is the
// one the tick produced.
type Game struct {
	opts    Options
	keys    KeyState
	rec     *history.Recorder
	session *shooter.Session
	list    *shooter.DisplayList
	surface *Surface
}

// NewGame creates a window game reading keys from ks. A nil ks reads the
// real keyboard.
func NewGame(opts Options, ks KeyState) (*Game, error) {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if ks == nil {
		ks = ebitenKeys{}
	}
	g := &Game{
		opts:    opts,
		keys:    ks,
		rec:     history.NewRecorder(opts.Store, opts.Logger, opts.Player),
		list:    shooter.NewDisplayList(MeasureText),
		surface: NewSurface(),
	}
	if err := g.newSession(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) newSession() error {
	seed := g.opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	ctx, err := shooter.NewContext(g.opts.Config.Runtime(seed), g.opts.Config)
	if err != nil {
		return err
	}
	g.session = shooter.NewSession(ctx)
	g.opts.Logger.Debug("session created", "seed", seed)
	return nil
}

// Session returns the running session.
func (g *Game) Session() *shooter.Session { return g.session }

// DisplayList returns the draw calls of the last tick.
func (g *Game) DisplayList() *shooter.DisplayList { return g.list }

// Update runs one session tick. A completed run is saved and followed by
// a new session; quitting ends the window.
func (g *Game) Update() error {
	g.list.Reset()
	res := g.session.Tick(ReadInput(g.keys), g.list)
	g.rec.LogEvents(g.session.Events())
	if !res.Terminated {
		return nil
	}

	if !g.rec.Finish(g.session) {
		return ebiten.Termination
	}
	return g.newSession()
}

// Draw replays the last tick onto the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Target(screen)
	g.list.Replay(g.surface)
}

// Layout keeps the logical screen at the field size; ebiten scales it to
// the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.opts.Config.Field.Width, g.opts.Config.Field.Height
}

// Run opens the window and blocks until it closes.
func Run(opts Options) error {
	g, err := NewGame(opts, nil)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(opts.Config.Field.Width, opts.Config.Field.Height)
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetTPS(opts.Config.Timing.TickRate)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
