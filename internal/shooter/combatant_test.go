package shooter

import (
	"errors"
	"testing"
)

func TestCooldownStaysInBounds(t *testing.T) {
	ctx := newTestContext(t, 1)
	p := NewPlayer(ctx)
	threshold := ctx.CooldownThreshold()

	for tick := range 500 {
		before := len(p.Projectiles())
		cd := p.Cooldown()
		fired := p.Shoot()
		if cd != 0 && (fired || len(p.Projectiles()) != before) {
			t.Fatalf("tick %d: Shoot() fired with cooldown %d", tick, cd)
		}
		if cd == 0 && !fired {
			t.Fatalf("tick %d: Shoot() did not fire with cooldown 0", tick)
		}
		p.AdvanceCooldown()
		if got := p.Cooldown(); got < 0 || got > threshold {
			t.Fatalf("tick %d: cooldown = %d, expected within [0, %d]", tick, got, threshold)
		}
	}
}

func TestAdvanceCooldown(t *testing.T) {
	ctx := newTestContext(t, 1)
	threshold := ctx.CooldownThreshold()

	tests := []struct {
		name     string
		start    int
		expected int
	}{
		{"idle stays idle", 0, 0},
		{"running counts up", 1, 2},
		{"just below threshold", threshold - 1, threshold},
		{"at threshold resets", threshold, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(ctx)
			p.cooldown = tt.start
			p.AdvanceCooldown()
			if p.Cooldown() != tt.expected {
				t.Errorf("AdvanceCooldown() from %d = %d, expected %d", tt.start, p.Cooldown(), tt.expected)
			}
		})
	}
}

func TestEnemyShotOffset(t *testing.T) {
	ctx := newTestContext(t, 1)
	e := mustEnemy(t, ctx, 200, 100, VariantGreen)

	if !e.Shoot() {
		t.Fatal("Shoot() did not fire")
	}
	l := e.Projectiles()[0]
	if l.X != 180 || l.Y != 100 {
		t.Errorf("enemy laser at (%d, %d), expected (180, 100)", l.X, l.Y)
	}
	if l.Sprite() != ctx.Sprite("laser_green") {
		t.Errorf("enemy laser sprite = %s, expected laser_green", l.Sprite().ID)
	}

	p := NewPlayer(ctx)
	p.Shoot()
	if l := p.Projectiles()[0]; l.X != p.X || l.Y != p.Y {
		t.Errorf("player laser at (%d, %d), expected (%d, %d)", l.X, l.Y, p.X, p.Y)
	}
}

func TestProjectileOutcomesAreExclusive(t *testing.T) {
	ctx := newTestContext(t, 1)
	p := NewPlayer(ctx) // (300, 630)
	e := mustEnemy(t, ctx, 0, 0, VariantRed)
	laser := ctx.Sprite("laser_red")

	expiring := NewProjectile(0, ctx.Height-2, laser)
	hitting := NewProjectile(300, 640, laser)
	flying := NewProjectile(0, 100, laser)
	e.lasers = append(e.lasers, expiring, hitting, flying)

	res := e.AdvanceProjectiles(ctx.Config.Combat.LaserVelocity, p)

	if res.Expired != 1 || res.Hits != 1 {
		t.Errorf("resolution = %+v, expected 1 expired and 1 hit", res)
	}
	if got := e.Projectiles(); len(got) != 1 || got[0] != flying {
		t.Errorf("remaining projectiles = %v, expected only the flying one", got)
	}
	if p.Health != 90 {
		t.Errorf("player health = %d, expected 90", p.Health)
	}
	if flying.Y != 105 {
		t.Errorf("flying laser y = %d, expected 105", flying.Y)
	}
}

func TestProjectileOffScreen(t *testing.T) {
	tests := []struct {
		y        int
		expected bool
	}{
		{-1, true},
		{0, false},
		{750, false},
		{751, true},
	}
	for _, tt := range tests {
		p := NewProjectile(0, tt.y, nil)
		if got := p.OffScreen(750); got != tt.expected {
			t.Errorf("OffScreen() at y=%d = %v, expected %v", tt.y, got, tt.expected)
		}
	}
}

func TestPlayerLaserFirstHitWins(t *testing.T) {
	ctx := newTestContext(t, 1)
	p := NewPlayer(ctx)
	first := mustEnemy(t, ctx, 110, 300, VariantRed)
	second := mustEnemy(t, ctx, 110, 300, VariantBlue)
	enemies := []*Enemy{first, second}

	p.lasers = append(p.lasers, NewProjectile(100, 300, ctx.Sprite(SpritePlayerLaser)))
	res := p.AdvanceProjectiles(-ctx.Config.Combat.LaserVelocity, enemies)

	if res.Hits != 1 || len(res.Struck) != 1 || res.Struck[0] != first {
		t.Fatalf("resolution = %+v, expected a single hit on the first enemy", res)
	}
	if !first.Removed() || first.Health != 90 {
		t.Errorf("first enemy removed=%v health=%d, expected removed with 90", first.Removed(), first.Health)
	}
	if second.Removed() || second.Health != 100 {
		t.Errorf("second enemy removed=%v health=%d, expected untouched", second.Removed(), second.Health)
	}
	if len(p.Projectiles()) != 0 {
		t.Errorf("laser survived the hit")
	}
}

func TestPlayerLasersSkipRemovedEnemies(t *testing.T) {
	ctx := newTestContext(t, 1)
	p := NewPlayer(ctx)
	first := mustEnemy(t, ctx, 110, 300, VariantRed)
	second := mustEnemy(t, ctx, 110, 300, VariantGreen)

	laser := ctx.Sprite(SpritePlayerLaser)
	p.lasers = append(p.lasers, NewProjectile(100, 300, laser), NewProjectile(100, 300, laser))
	res := p.AdvanceProjectiles(-5, []*Enemy{first, second})

	if res.Hits != 2 || !first.Removed() || !second.Removed() {
		t.Errorf("resolution = %+v, expected each laser to take a different enemy", res)
	}
}

func TestInvalidVariant(t *testing.T) {
	ctx := newTestContext(t, 1)

	if _, err := NewEnemy(ctx, 0, 0, Variant(99)); !errors.Is(err, ErrInvalidVariant) {
		t.Errorf("NewEnemy(Variant(99)) error = %v, expected ErrInvalidVariant", err)
	}
	if _, err := ParseVariant("purple"); !errors.Is(err, ErrInvalidVariant) {
		t.Errorf("ParseVariant(purple) error = %v, expected ErrInvalidVariant", err)
	}

	for _, v := range Variants() {
		got, err := ParseVariant(v.String())
		if err != nil || got != v {
			t.Errorf("ParseVariant(%q) = %v, %v", v.String(), got, err)
		}
		e := mustEnemy(t, ctx, 0, 0, v)
		if e.Sprite().ID != "ship_"+v.String() {
			t.Errorf("variant %s uses sprite %s", v, e.Sprite().ID)
		}
	}
}

func TestEnemyMovesDown(t *testing.T) {
	ctx := newTestContext(t, 1)
	e := mustEnemy(t, ctx, 40, -200, VariantBlue)
	e.Move(ctx.Config.Enemies.Velocity)
	if e.X != 40 || e.Y != -199 {
		t.Errorf("enemy at (%d, %d), expected (40, -199)", e.X, e.Y)
	}
}

func TestPlayerMoveClamped(t *testing.T) {
	ctx := newTestContext(t, 1)
	p := NewPlayer(ctx)

	for range 1000 {
		p.Move(1, 1)
	}
	maxX := ctx.Width - p.Width()
	maxY := ctx.Height - p.Height() - ctx.Config.Player.BottomMargin
	if p.X != maxX || p.Y != maxY {
		t.Errorf("player at (%d, %d), expected clamp at (%d, %d)", p.X, p.Y, maxX, maxY)
	}

	for range 1000 {
		p.Move(-1, -1)
	}
	if p.X != 0 || p.Y != 0 {
		t.Errorf("player at (%d, %d), expected (0, 0)", p.X, p.Y)
	}
}

func TestHealthBar(t *testing.T) {
	ctx := newTestContext(t, 1)

	tests := []struct {
		health  int
		fgWidth int
	}{
		{100, 100},
		{50, 50},
		{10, 10},
		{0, 0},
		{-30, 0},
		{150, 100},
	}

	for _, tt := range tests {
		p := NewPlayer(ctx)
		p.Health = tt.health
		bg, fg := p.HealthBar()
		if bg.W != p.Width() || bg.Y != p.Y+p.Height()+10 || bg.H != 10 {
			t.Errorf("health %d: background = %+v", tt.health, bg)
		}
		if fg.W != tt.fgWidth {
			t.Errorf("health %d: foreground width = %d, expected %d", tt.health, fg.W, tt.fgWidth)
		}
	}
}

func TestPlayerDrawsHealthBarLast(t *testing.T) {
	ctx := newTestContext(t, 1)
	p := NewPlayer(ctx)
	p.Shoot()

	dl := NewDisplayList(nil)
	p.Draw(dl)
	ops := dl.Ops()
	if len(ops) != 4 {
		t.Fatalf("got %d ops, expected ship, laser, bar background and bar", len(ops))
	}
	if ops[0].Sprite != p.Sprite() || ops[1].Kind != OpBlit {
		t.Errorf("ship and laser not blitted first: %+v", ops[:2])
	}
	if ops[2].Color != HealthBarDanger || ops[3].Color != HealthBarSafe {
		t.Errorf("health bar colors = %v, %v", ops[2].Color, ops[3].Color)
	}

	p.Health = 0
	dl.Reset()
	p.Draw(dl)
	if n := len(dl.Ops()); n != 3 {
		t.Errorf("empty health bar drew %d ops, expected 3", n)
	}
}
