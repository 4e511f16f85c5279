package shooter

import "github.com/vovakirdan/space-shooter/internal/core"

// InputSource produces the input frame for the next tick.
type InputSource interface {
	Next(s *Session) core.InputFrame
}

// InputFunc adapts a function to InputSource.
type InputFunc func(s *Session) core.InputFrame

// Next calls f.
func (f InputFunc) Next(s *Session) core.InputFrame { return f(s) }

// Autopilot is a deterministic input source for headless runs. It starts a
// run from the menu, keeps fire held and steers under the lowest visible
// enemy.
type Autopilot struct{}

// Next returns the autopilot's input for the coming tick.
func (Autopilot) Next(s *Session) core.InputFrame {
	frame := core.NewInputFrame()
	g := s.Game()
	if s.Phase() == PhaseMenu || g == nil {
		frame.Set(core.ActionStart)
		return frame
	}
	if g.Lost() {
		return frame
	}

	frame.Set(core.ActionFire)

	target := lowestVisible(g.Enemies(), core.NewRect(0, 0, g.ctx.Width, g.ctx.Height))
	if target == nil {
		return frame
	}
	p := g.Player()
	pcx, _ := p.ship.Bounds(p.X, p.Y).Center()
	tcx, _ := target.ship.Bounds(target.X, target.Y).Center()
	if core.Abs(tcx-pcx) <= p.ctx.Config.Player.Velocity {
		return frame
	}
	if tcx < pcx {
		frame.Set(core.ActionLeft)
	} else {
		frame.Set(core.ActionRight)
	}
	return frame
}

// lowestVisible picks the enemy furthest down whose bottom row is on the field.
func lowestVisible(enemies []*Enemy, field core.Rect) *Enemy {
	var best *Enemy
	for _, e := range enemies {
		cx, _ := e.ship.Bounds(e.X, e.Y).Center()
		if !field.Contains(cx, e.Y+e.Height()-1) {
			continue
		}
		if best == nil || e.Y > best.Y {
			best = e
		}
	}
	return best
}
