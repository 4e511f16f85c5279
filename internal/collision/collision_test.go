package collision

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/space-shooter/internal/assets"
	"github.com/vovakirdan/space-shooter/internal/core"
)

const (
	o = core.ColorNone
	X = core.ColorRed
)

func mustSprite(t *testing.T, id string, scale int, rows [][]core.Color) *assets.Sprite {
	t.Helper()
	s, err := assets.NewSprite(id, scale, rows)
	if err != nil {
		t.Fatalf("NewSprite(%q) error: %v", id, err)
	}
	return s
}

type body struct {
	x, y   int
	sprite *assets.Sprite
}

func (b body) Position() (int, int)   { return b.x, b.y }
func (b body) Sprite() *assets.Sprite { return b.sprite }

func TestFromSprite(t *testing.T) {
	s := mustSprite(t, "ring", 2, [][]core.Color{
		{X, X, X},
		{X, o, X},
		{X, X, X},
	})
	m := FromSprite(s)

	w, h := m.Size()
	if w != 6 || h != 6 {
		t.Fatalf("Size() = %dx%d, expected 6x6", w, h)
	}
	if m.Count() != 8*4 {
		t.Errorf("Count() = %d, expected 32", m.Count())
	}
	if m.Get(2, 2) || m.Get(3, 3) {
		t.Error("hole in the middle should be transparent")
	}
	if !m.Get(0, 0) || !m.Get(5, 5) || !m.Get(1, 3) {
		t.Error("ring pixels should be solid")
	}
	if m.Get(-1, 0) || m.Get(6, 0) {
		t.Error("out of range pixels should be transparent")
	}
}

func TestMaskWideRows(t *testing.T) {
	m := NewMask(130, 2)
	m.Set(0, 0)
	m.Set(64, 1)
	m.Set(129, 1)
	m.Set(130, 1) // ignored
	if m.Count() != 3 {
		t.Errorf("Count() = %d, expected 3", m.Count())
	}
	if !m.Get(129, 1) || m.Get(128, 1) {
		t.Error("bits across word boundaries are wrong")
	}
}

func TestOverlap(t *testing.T) {
	ring := FromSprite(mustSprite(t, "ring", 2, [][]core.Color{
		{X, X, X},
		{X, o, X},
		{X, X, X},
	}))
	dot := FromSprite(mustSprite(t, "dot", 2, [][]core.Color{{X}}))

	tests := []struct {
		name     string
		dx, dy   int
		expected bool
	}{
		{"dot on ring edge", 0, 0, true},
		{"dot inside hole", 2, 2, false},
		{"dot half into hole", 1, 2, true},
		{"dot just outside right", 6, 0, false},
		{"dot overlapping right edge", 5, 0, true},
		{"dot far away", 100, 100, false},
		{"dot above", 0, -2, false},
		{"dot touching from above", 0, -1, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlap(ring, dot, tc.dx, tc.dy); got != tc.expected {
				t.Errorf("Overlap(ring, dot, %d, %d) = %v, expected %v", tc.dx, tc.dy, got, tc.expected)
			}
		})
	}
}

func TestOverlapSymmetric(t *testing.T) {
	ship, err := assets.Get("ship_red")
	if err != nil {
		t.Fatal(err)
	}
	laser, err := assets.Get("laser_yellow")
	if err != nil {
		t.Fatal(err)
	}
	player, err := assets.Get("ship_yellow")
	if err != nil {
		t.Fatal(err)
	}
	sprites := []*assets.Sprite{ship, laser, player}

	rng := rand.New(rand.NewSource(7))
	hits := 0
	for range 2000 {
		a := body{rng.Intn(200), rng.Intn(200), sprites[rng.Intn(len(sprites))]}
		b := body{rng.Intn(200), rng.Intn(200), sprites[rng.Intn(len(sprites))]}

		ab := Collide(a, b)
		ba := Collide(b, a)
		if ab != ba {
			t.Fatalf("Collide not symmetric for %v@(%d,%d) and %v@(%d,%d): %v vs %v",
				a.sprite.ID, a.x, a.y, b.sprite.ID, b.x, b.y, ab, ba)
		}
		if ab {
			hits++
		}
	}
	if hits == 0 {
		t.Error("expected some collisions in the random sample")
	}
}

func TestCollideUsesPixelsNotBoxes(t *testing.T) {
	laser, err := assets.Get("laser_red")
	if err != nil {
		t.Fatal(err)
	}
	ship, err := assets.Get("ship_yellow")
	if err != nil {
		t.Fatal(err)
	}

	// Bounding boxes overlap in the laser's transparent corner only.
	a := body{0, 0, laser}
	b := body{laser.Width() - 5, laser.Height() - 5, ship}
	if !laser.Bounds(a.x, a.y).Intersects(ship.Bounds(b.x, b.y)) {
		t.Fatal("test setup: bounding boxes should intersect")
	}
	if Collide(a, b) {
		t.Error("transparent laser corner should not collide")
	}

	// Beam centered over the ship's nose.
	a = body{5, 0, laser}
	b = body{0, 30, ship}
	if !Collide(a, b) {
		t.Error("beam over the ship should collide")
	}
}

func TestCacheBuildsOnce(t *testing.T) {
	s := mustSprite(t, "cached", 1, [][]core.Color{{X}})
	c := NewCache()

	m1 := c.For(s)
	m2 := c.For(s)
	if m1 != m2 {
		t.Error("For() should return the cached mask")
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", c.Len())
	}
}
