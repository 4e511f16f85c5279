package shooter

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/space-shooter/internal/core"
)

// HUD colors.
const (
	HUDColor    = core.ColorWhite
	BannerColor = core.ColorWhite
)

// Game is one run: from the first wave until the lost timer runs out or the
// player quits. Each Step draws the current state and then updates it.
type Game struct {
	ctx *GameContext

	player  *Player
	enemies []*Enemy
	waves   WaveDirector

	lives      int
	kills      int
	tick       uint64
	lost       bool
	lostReason LossReason
	lostTicks  int
	quit       bool
	terminated bool

	events []Event
}

// NewGame creates a fresh run. The first wave spawns on the first update.
func NewGame(ctx *GameContext) *Game {
	return &Game{
		ctx:    ctx,
		player: NewPlayer(ctx),
		waves:  NewWaveDirector(ctx),
		lives:  ctx.Config.Player.Lives,
	}
}

// Player returns the player ship.
func (g *Game) Player() *Player { return g.player }

// Enemies returns the live enemies. The slice must not be modified.
func (g *Game) Enemies() []*Enemy { return g.enemies }

// Level returns the current wave level.
func (g *Game) Level() int { return g.waves.Level }

// WaveLength returns the size of the current wave.
func (g *Game) WaveLength() int { return g.waves.Length }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

// Kills returns the number of enemies destroyed by player lasers.
func (g *Game) Kills() int { return g.kills }

// Tick returns the number of steps taken.
func (g *Game) Tick() uint64 { return g.tick }

// Lost reports whether the run is showing the lost banner.
func (g *Game) Lost() bool { return g.lost }

// LostReason returns the loss trigger, or LossNone while playing.
func (g *Game) LostReason() LossReason { return g.lostReason }

// Quit reports whether the run ended on a quit request.
func (g *Game) Quit() bool { return g.quit }

// Terminated reports whether the run is over.
func (g *Game) Terminated() bool { return g.terminated }

// Events returns and clears the events collected since the last call.
func (g *Game) Events() []Event {
	ev := g.events
	g.events = nil
	return ev
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}

// State returns the summary reported to the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.kills,
		Level:    g.waves.Level,
		Lives:    g.lives,
		GameOver: g.lost,
	}
}

// Step runs one tick: draw the state left by the previous tick, then
// update. A nil surface skips drawing.
func (g *Game) Step(input core.InputFrame, s Surface) core.StepResult {
	g.tick++
	if s != nil {
		g.Draw(s)
	}
	g.Update(input)
	return core.StepResult{State: g.State(), Terminated: g.terminated}
}

// Draw renders the background, HUD, enemies, player and, once lost, the
// banner. Enemies go first so the player is never hidden.
func (g *Game) Draw(s Surface) {
	g.drawBackground(s)
	g.drawHUD(s)
	for _, e := range g.enemies {
		e.Draw(s)
	}
	g.player.Draw(s)
	if g.lost {
		drawBanner(s, g.ctx, g.ctx.Config.Session.LostBanner)
	}
}

func (g *Game) drawBackground(s Surface) {
	s.Stretch(g.ctx.Sprite(SpriteBackground), core.NewRect(0, 0, g.ctx.Width, g.ctx.Height))
}

func (g *Game) drawHUD(s Surface) {
	margin := g.ctx.Config.HUD.Margin
	s.DrawText(fmt.Sprintf("Lives: %d", g.lives), margin, margin, HUDColor)

	level := fmt.Sprintf("Level: %d", g.waves.Level)
	w, _ := s.MeasureText(level)
	s.DrawText(level, g.ctx.Width-w-margin, margin, HUDColor)
}

// drawBanner centers a label on the field.
func drawBanner(s Surface, ctx *GameContext, text string) {
	w, h := s.MeasureText(text)
	s.DrawText(text, ctx.Width/2-w/2, ctx.Height/2-h/2, BannerColor)
}

// Update advances the simulation by one tick.
func (g *Game) Update(input core.InputFrame) {
	if g.terminated {
		return
	}
	if input.Has(core.ActionQuit) {
		g.quit = true
		g.terminated = true
		return
	}

	if g.lost {
		g.lostTicks++
		if g.lostTicks > g.ctx.Config.LostTicks() {
			g.terminated = true
		}
		return
	}

	if len(g.enemies) == 0 {
		g.enemies = g.waves.Next(g.ctx)
		g.emit(WaveStartedEvent{Level: g.waves.Level, Length: g.waves.Length})
	}

	g.player.Move(input.Axis())
	if input.Has(core.ActionFire) {
		g.player.Shoot()
	}

	g.updateEnemies()
	g.updatePlayerLasers()

	if g.player.Health <= 0 {
		g.enterLost(LossHealth)
	}
}

func (g *Game) updateEnemies() {
	cfg := g.ctx.Config
	fireRange := cfg.FireRange()

	for _, e := range g.enemies {
		e.Move(cfg.Enemies.Velocity)

		res := e.AdvanceProjectiles(cfg.Combat.LaserVelocity, g.player)
		for range res.Hits {
			g.emit(PlayerHitEvent{Source: HitLaser, Damage: cfg.Combat.Damage, Health: g.player.Health})
		}

		if g.ctx.Rand.Intn(fireRange) == 0 {
			e.Shoot()
		}

		switch {
		case e.Collides(g.player):
			g.player.Damage(cfg.Combat.Damage)
			e.removed = true
			g.emit(PlayerHitEvent{Source: HitRam, Damage: cfg.Combat.Damage, Health: g.player.Health})
		case e.Y > g.ctx.Height:
			g.lives = max(g.lives-1, 0)
			e.removed = true
			g.emit(EnemyEscapedEvent{Variant: e.variant, Lives: g.lives})
			if g.lives == 0 {
				g.enterLost(LossLives)
			}
		}
	}
	g.compactEnemies()
}

func (g *Game) updatePlayerLasers() {
	res := g.player.AdvanceProjectiles(-g.ctx.Config.Combat.LaserVelocity, g.enemies)
	for _, e := range res.Struck {
		g.kills++
		g.emit(EnemyDestroyedEvent{Variant: e.variant, X: e.X, Y: e.Y, Kills: g.kills})
	}
	g.compactEnemies()
}

func (g *Game) compactEnemies() {
	g.enemies = slices.DeleteFunc(g.enemies, (*Enemy).Removed)
}

// enterLost switches to the lost state. Only the first trigger counts.
func (g *Game) enterLost(reason LossReason) {
	if g.lost {
		return
	}
	g.lost = true
	g.lostReason = reason
	g.emit(GameLostEvent{Reason: reason, Level: g.waves.Level, Kills: g.kills})
}
