package shooter

import (
	"testing"

	"github.com/vovakirdan/space-shooter/internal/core"
)

func TestFirstUpdateSpawnsWave(t *testing.T) {
	ctx := newTestContext(t, 7)
	g := NewGame(ctx)

	g.Step(frame(), nil)

	if g.Level() != 1 || g.WaveLength() != 5 {
		t.Errorf("level=%d length=%d, expected 1 and 5", g.Level(), g.WaveLength())
	}
	if len(g.Enemies()) != 5 {
		t.Errorf("got %d enemies, expected 5", len(g.Enemies()))
	}

	var waves int
	for _, ev := range g.Events() {
		if w, ok := ev.(WaveStartedEvent); ok {
			waves++
			if w.Level != 1 || w.Length != 5 {
				t.Errorf("WaveStartedEvent = %+v", w)
			}
		}
	}
	if waves != 1 {
		t.Errorf("got %d wave events, expected 1", waves)
	}
}

func TestWaveTransition(t *testing.T) {
	ctx := newTestContext(t, 3)
	w := WaveDirector{Level: 3, Length: 10}

	enemies := w.Next(ctx)

	if w.Level != 4 || w.Length != 15 {
		t.Fatalf("after Next level=%d length=%d, expected 4 and 15", w.Level, w.Length)
	}
	if len(enemies) != 15 {
		t.Fatalf("spawned %d enemies, expected 15", len(enemies))
	}
	maxX := ctx.Width - 100
	for i, e := range enemies {
		if e.Y >= -100 || e.Y < -1500 {
			t.Errorf("enemy %d y = %d, expected within [-1500, -100)", i, e.Y)
		}
		if e.X < 50 || e.X >= maxX {
			t.Errorf("enemy %d x = %d, expected within [50, %d)", i, e.X, maxX)
		}
		if e.Health != 100 {
			t.Errorf("enemy %d health = %d, expected 100", i, e.Health)
		}
	}
}

func TestWaveSpawnsEveryVariant(t *testing.T) {
	ctx := newTestContext(t, 11)
	w := WaveDirector{Length: 100}
	seen := make(map[Variant]bool)
	for _, e := range w.Next(ctx) {
		seen[e.Variant()] = true
	}
	for _, v := range Variants() {
		if !seen[v] {
			t.Errorf("variant %s never spawned in a wave of 105", v)
		}
	}
}

func TestNoWaveWhileEnemiesRemain(t *testing.T) {
	ctx := newTestContextWith(t, 1, quietConfig())
	g := NewGame(ctx)
	g.enemies = []*Enemy{mustEnemy(t, ctx, 0, -1400, VariantRed)}

	for range 10 {
		g.Update(frame())
	}
	if g.Level() != 0 || len(g.Enemies()) != 1 {
		t.Errorf("level=%d enemies=%d, expected no new wave", g.Level(), len(g.Enemies()))
	}
}

func TestHeldFireCadence(t *testing.T) {
	ctx := newTestContext(t, 5)
	g := NewGame(ctx)
	threshold := ctx.CooldownThreshold()

	var shotTicks []int
	fired := 0
	for tick := 1; tick <= 3*threshold+5; tick++ {
		g.Step(frame(core.ActionFire), nil)
		if n := g.Player().Fired(); n != fired {
			fired = n
			shotTicks = append(shotTicks, tick)
		}
	}

	expected := []int{1, 1 + threshold, 1 + 2*threshold, 1 + 3*threshold}
	if len(shotTicks) != len(expected) {
		t.Fatalf("shots on ticks %v, expected %v", shotTicks, expected)
	}
	for i := range expected {
		if shotTicks[i] != expected[i] {
			t.Errorf("shot %d on tick %d, expected %d", i, shotTicks[i], expected[i])
		}
	}
}

func TestMovementFollowsInput(t *testing.T) {
	ctx := newTestContext(t, 1)
	g := NewGame(ctx)
	x, y := g.Player().Position()

	g.Update(frame(core.ActionLeft, core.ActionUp))
	if px, py := g.Player().Position(); px != x-5 || py != y-5 {
		t.Errorf("player at (%d, %d), expected (%d, %d)", px, py, x-5, y-5)
	}

	g.Update(frame(core.ActionLeft, core.ActionRight))
	if px, _ := g.Player().Position(); px != x-5 {
		t.Errorf("opposite keys moved the player to x=%d", px)
	}
}

func TestEnemyRamsPlayer(t *testing.T) {
	ctx := newTestContextWith(t, 1, quietConfig())
	g := NewGame(ctx)
	p := g.Player()

	// Directly above the player's box, 5px clear of it.
	e := mustEnemy(t, ctx, p.X+p.Width()/2-25, p.Y-40-5, VariantRed)
	g.enemies = []*Enemy{e}
	if e.Collides(p) {
		t.Fatal("enemy overlaps the player before moving")
	}

	for tick := 0; tick < 100 && len(g.Enemies()) > 0; tick++ {
		g.Update(frame())
	}

	if len(g.Enemies()) != 0 {
		t.Fatal("enemy was never removed")
	}
	if p.Health != 90 {
		t.Errorf("player health = %d, expected 90", p.Health)
	}
	if g.Lives() != 5 || g.Kills() != 0 {
		t.Errorf("lives=%d kills=%d, expected 5 and 0", g.Lives(), g.Kills())
	}

	var rams int
	for _, ev := range g.Events() {
		if hit, ok := ev.(PlayerHitEvent); ok && hit.Source == HitRam {
			rams++
		}
	}
	if rams != 1 {
		t.Errorf("got %d ram events, expected 1", rams)
	}
}

func TestPlayerLaserKillsEnemy(t *testing.T) {
	ctx := newTestContextWith(t, 1, quietConfig())
	g := NewGame(ctx)
	p := g.Player()

	e := mustEnemy(t, ctx, p.X+10, p.Y-200, VariantBlue)
	g.enemies = []*Enemy{e}
	p.lasers = append(p.lasers, NewProjectile(p.X, p.Y-150, ctx.Sprite(SpritePlayerLaser)))

	for tick := 0; tick < 40 && len(g.Enemies()) > 0; tick++ {
		g.Update(frame())
	}

	if len(g.Enemies()) != 0 || g.Kills() != 1 {
		t.Fatalf("enemies=%d kills=%d, expected the laser to destroy the enemy", len(g.Enemies()), g.Kills())
	}
	if e.Health != 90 {
		t.Errorf("struck enemy health = %d, expected 90", e.Health)
	}
	if g.State().Score != 1 {
		t.Errorf("State().Score = %d, expected 1", g.State().Score)
	}
}

func TestEnemyEscapeCostsLife(t *testing.T) {
	ctx := newTestContextWith(t, 1, quietConfig())
	g := NewGame(ctx)
	g.enemies = []*Enemy{
		mustEnemy(t, ctx, 0, ctx.Height, VariantRed),
		mustEnemy(t, ctx, 600, ctx.Height-1, VariantGreen),
	}

	g.Update(frame())

	// y == height stays; y > height escapes
	if g.Lives() != 4 || len(g.Enemies()) != 1 {
		t.Errorf("lives=%d enemies=%d, expected 4 and 1", g.Lives(), len(g.Enemies()))
	}
	if g.Lost() {
		t.Error("lost with lives left")
	}
}

func TestLossByLives(t *testing.T) {
	ctx := newTestContextWith(t, 1, quietConfig())
	g := NewGame(ctx)
	g.lives = 1
	g.enemies = []*Enemy{mustEnemy(t, ctx, 0, ctx.Height, VariantRed)}

	g.Update(frame())

	if !g.Lost() || g.LostReason() != LossLives {
		t.Errorf("lost=%v reason=%s, expected lost by lives", g.Lost(), g.LostReason())
	}
	if g.Player().Health != 100 {
		t.Errorf("player health = %d, expected untouched", g.Player().Health)
	}
}

func TestLossByHealth(t *testing.T) {
	ctx := newTestContextWith(t, 1, quietConfig())
	g := NewGame(ctx)
	g.Player().Health = 0

	g.Update(frame())

	if !g.Lost() || g.LostReason() != LossHealth {
		t.Errorf("lost=%v reason=%s, expected lost by health", g.Lost(), g.LostReason())
	}
	if g.Lives() != 5 {
		t.Errorf("lives = %d, expected 5", g.Lives())
	}

	var lost int
	for _, ev := range g.Events() {
		if _, ok := ev.(GameLostEvent); ok {
			lost++
		}
	}
	if lost != 1 {
		t.Errorf("got %d GameLostEvent, expected 1", lost)
	}
}

func TestLostFreezesThenTerminates(t *testing.T) {
	ctx := newTestContextWith(t, 1, quietConfig())
	g := NewGame(ctx)
	g.Player().Health = 0
	g.Update(frame())
	if !g.Lost() {
		t.Fatal("expected lost state")
	}

	x, _ := g.Player().Position()
	snap := g.Snapshot()
	lostTicks := ctx.Config.LostTicks()

	for i := 1; i <= lostTicks; i++ {
		res := g.Step(frame(core.ActionLeft, core.ActionFire), nil)
		if res.Terminated {
			t.Fatalf("terminated after %d lost ticks, expected more than %d", i, lostTicks)
		}
	}
	if px, _ := g.Player().Position(); px != x {
		t.Error("player moved while lost")
	}
	if after := g.Snapshot(); len(after.EnemyData) != len(snap.EnemyData) || after.PlayerCooldown != snap.PlayerCooldown {
		t.Error("gameplay advanced while lost")
	}

	if res := g.Step(frame(), nil); !res.Terminated {
		t.Error("expected termination once the lost timer passed")
	}
	if g.Quit() {
		t.Error("timer termination reported as quit")
	}
}

func TestQuitTerminates(t *testing.T) {
	ctx := newTestContext(t, 1)
	g := NewGame(ctx)

	res := g.Step(frame(core.ActionQuit), nil)
	if !res.Terminated || !g.Quit() {
		t.Errorf("terminated=%v quit=%v, expected both", res.Terminated, g.Quit())
	}
	if g.Level() != 0 {
		t.Error("quit tick still ran the update")
	}
}

func TestDrawOrder(t *testing.T) {
	ctx := newTestContextWith(t, 1, quietConfig())
	g := NewGame(ctx)
	g.enemies = []*Enemy{mustEnemy(t, ctx, 100, 100, VariantRed)}

	dl := NewDisplayList(nil)
	g.Draw(dl)
	ops := dl.Ops()

	if ops[0].Kind != OpStretch || ops[0].Sprite.ID != SpriteBackground || ops[0].Rect != core.NewRect(0, 0, 750, 750) {
		t.Errorf("first op = %+v, expected stretched background", ops[0])
	}
	if ops[1].Text != "Lives: 5" || ops[1].Rect.X != 10 || ops[1].Rect.Y != 10 {
		t.Errorf("lives label = %+v", ops[1])
	}
	levelW := len("Level: 0") * DefaultGlyphW
	if ops[2].Text != "Level: 0" || ops[2].Rect.X != 750-levelW-10 {
		t.Errorf("level label = %+v, expected right aligned", ops[2])
	}
	if ops[3].Sprite.ID != "ship_red" || ops[4].Sprite.ID != SpritePlayer {
		t.Errorf("enemies must be drawn before the player: %s, %s", ops[3].Sprite.ID, ops[4].Sprite.ID)
	}

	g.Player().Health = 0
	g.Update(frame())
	dl.Reset()
	g.Draw(dl)
	texts := dl.Texts()
	if last := texts[len(texts)-1]; last != "You Lost!!" {
		t.Errorf("last label = %q, expected the lost banner", last)
	}
}

func TestStepDrawsBeforeUpdate(t *testing.T) {
	ctx := newTestContext(t, 1)
	g := NewGame(ctx)

	dl := NewDisplayList(nil)
	g.Step(frame(), dl)

	// The first frame shows the field before the first wave spawned.
	if texts := dl.Texts(); texts[1] != "Level: 0" {
		t.Errorf("first frame level label = %q, expected Level: 0", texts[1])
	}
	if g.Level() != 1 {
		t.Errorf("level after first step = %d, expected 1", g.Level())
	}
}

func TestDeterminism(t *testing.T) {
	run := func(seed int64) uint64 {
		ctx := newTestContext(t, seed)
		s := NewSession(ctx)
		var pilot Autopilot
		for range 3000 {
			if s.Tick(pilot.Next(s), nil).Terminated {
				break
			}
		}
		snap := s.Game().Snapshot()
		return snap.Hash()
	}

	if a, b := run(42), run(42); a != b {
		t.Errorf("same seed produced different hashes: %d vs %d", a, b)
	}
	if a, b := run(42), run(43); a == b {
		t.Errorf("different seeds produced the same hash %d", a)
	}
}
