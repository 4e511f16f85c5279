package shooter

// Snapshot contains the game state for determinism checks.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick       uint64
	Level      int
	WaveLength int
	Lives      int
	Kills      int
	Lost       bool
	LostTicks  int

	PlayerX        int
	PlayerY        int
	PlayerHealth   int
	PlayerCooldown int

	// Each enemy is 5 ints: Variant, X, Y, Health, Cooldown
	EnemyData []int

	// Each laser is 2 ints: X, Y. Player lasers first, then each enemy's in
	// enemy order.
	LaserData []int
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:           g.tick,
		Level:          g.waves.Level,
		WaveLength:     g.waves.Length,
		Lives:          g.lives,
		Kills:          g.kills,
		Lost:           g.lost,
		LostTicks:      g.lostTicks,
		PlayerX:        g.player.X,
		PlayerY:        g.player.Y,
		PlayerHealth:   g.player.Health,
		PlayerCooldown: g.player.cooldown,
		EnemyData:      make([]int, 0, len(g.enemies)*5),
	}

	for _, e := range g.enemies {
		snap.EnemyData = append(snap.EnemyData, int(e.variant), e.X, e.Y, e.Health, e.cooldown)
	}

	appendLasers := func(lasers []*Projectile) {
		for _, l := range lasers {
			snap.LaserData = append(snap.LaserData, l.X, l.Y)
		}
	}
	appendLasers(g.player.lasers)
	for _, e := range g.enemies {
		appendLasers(e.lasers)
	}

	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Level)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.WaveLength)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Kills)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LostTicks)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerY)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerHealth)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerCooldown) //#nosec G115 -- hash computation
	if snap.Lost {
		h = h*31 + 1
	}

	for _, v := range snap.EnemyData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.LaserData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
