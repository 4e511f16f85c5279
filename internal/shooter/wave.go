package shooter

// WaveDirector tracks the level and spawns a new, longer wave whenever the
// field is clear. Waves grow without a cap.
type WaveDirector struct {
	Level  int
	Length int
}

// NewWaveDirector starts at the configured level and wave length.
func NewWaveDirector(ctx *GameContext) WaveDirector {
	wc := ctx.Config.Waves
	return WaveDirector{Level: wc.StartLevel, Length: wc.StartLength}
}

// Next advances to the next level and spawns its enemies above the visible
// field at random positions with random colors.
func (w *WaveDirector) Next(ctx *GameContext) []*Enemy {
	wc := ctx.Config.Waves
	w.Level++
	w.Length += wc.Step

	maxX := ctx.Width - wc.SpawnRightMargin
	enemies := make([]*Enemy, 0, w.Length)
	for range w.Length {
		x := wc.SpawnMinX + ctx.Rand.Intn(maxX-wc.SpawnMinX)
		y := wc.SpawnMinY + ctx.Rand.Intn(wc.SpawnMaxY-wc.SpawnMinY)
		v := Variants()[ctx.Rand.Intn(len(variantSprites))]
		e, err := NewEnemy(ctx, x, y, v)
		if err != nil {
			// Variants() only yields known variants
			panic(err)
		}
		enemies = append(enemies, e)
	}
	return enemies
}
