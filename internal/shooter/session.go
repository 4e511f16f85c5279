package shooter

import (
	"github.com/vovakirdan/space-shooter/internal/core"
)

// Phase is the session state.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseLost
	PhaseTerminated
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseLost:
		return "lost"
	case PhaseTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// RunResult summarizes a finished run.
type RunResult struct {
	Level  int
	Kills  int
	Ticks  uint64
	Reason LossReason
}

// Session drives the menu and one run: Menu -> Playing -> Lost -> Terminated.
// A quit request terminates from any phase.
type Session struct {
	ctx    *GameContext
	phase  Phase
	game   *Game
	paused bool
	result *RunResult
	events []Event
}

// NewSession starts at the menu.
func NewSession(ctx *GameContext) *Session {
	return &Session{ctx: ctx}
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Game returns the current run, or nil at the menu.
func (s *Session) Game() *Game { return s.game }

// Paused reports whether updates are suspended.
func (s *Session) Paused() bool { return s.paused }

// Context returns the game context.
func (s *Session) Context() *GameContext { return s.ctx }

// Result returns the finished run. It is only set when a run reached the
// end of its lost timer; quitting records nothing.
func (s *Session) Result() (RunResult, bool) {
	if s.result == nil {
		return RunResult{}, false
	}
	return *s.result, true
}

// Events returns and clears session and game events.
func (s *Session) Events() []Event {
	ev := s.events
	s.events = nil
	return ev
}

// Tick advances the session by one tick, drawing on surf when non-nil.
func (s *Session) Tick(input core.InputFrame, surf Surface) core.StepResult {
	switch s.phase {
	case PhaseMenu:
		s.tickMenu(input, surf)
	case PhasePlaying, PhaseLost:
		s.tickGame(input, surf)
	}
	return core.StepResult{State: s.State(), Terminated: s.phase == PhaseTerminated}
}

// State returns the platform summary.
func (s *Session) State() core.GameState {
	if s.game == nil {
		return core.GameState{Lives: s.ctx.Config.Player.Lives}
	}
	st := s.game.State()
	st.Paused = s.paused
	return st
}

func (s *Session) tickMenu(input core.InputFrame, surf Surface) {
	if surf != nil {
		surf.Stretch(s.ctx.Sprite(SpriteBackground), core.NewRect(0, 0, s.ctx.Width, s.ctx.Height))
		drawBanner(surf, s.ctx, s.ctx.Config.Session.MenuTitle)
	}

	switch {
	case input.Has(core.ActionQuit):
		s.phase = PhaseTerminated
		s.events = append(s.events, RunEndedEvent{})
	case input.Has(core.ActionStart), input.Has(core.ActionFire):
		s.game = NewGame(s.ctx)
		s.phase = PhasePlaying
		s.events = append(s.events, RunStartedEvent{})
	}
}

func (s *Session) tickGame(input core.InputFrame, surf Surface) {
	if input.Has(core.ActionPause) && !s.game.Lost() {
		s.paused = !s.paused
		s.events = append(s.events, PausedEvent{Paused: s.paused})
	}

	if s.paused && !input.Has(core.ActionQuit) {
		if surf != nil {
			s.game.Draw(surf)
			drawBanner(surf, s.ctx, "Paused")
		}
		return
	}

	res := s.game.Step(input, surf)
	s.events = append(s.events, s.game.Events()...)

	switch {
	case res.Terminated:
		s.finish()
	case s.game.Lost():
		s.phase = PhaseLost
	}
}

func (s *Session) finish() {
	s.phase = PhaseTerminated
	r := RunResult{
		Level:  s.game.Level(),
		Kills:  s.game.Kills(),
		Ticks:  s.game.Tick(),
		Reason: s.game.LostReason(),
	}
	completed := !s.game.Quit()
	if completed {
		s.result = &r
	}
	s.events = append(s.events, RunEndedEvent{Result: r, Completed: completed})
}
