package shooter

import (
	"testing"

	"github.com/vovakirdan/space-shooter/internal/core"
)

func TestDisplayListReplay(t *testing.T) {
	ctx := newTestContext(t, 1)
	g := NewGame(ctx)
	g.Step(frame(), nil)
	g.Player().Shoot()

	recorded := NewDisplayList(nil)
	g.Draw(recorded)

	replayed := NewDisplayList(nil)
	recorded.Replay(replayed)

	a, b := recorded.Ops(), replayed.Ops()
	if len(a) != len(b) {
		t.Fatalf("replay produced %d ops, expected %d", len(b), len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("op %d = %+v, expected %+v", i, b[i], a[i])
		}
	}
}

func TestDisplayListMeasurer(t *testing.T) {
	dl := NewDisplayList(func(text string) (int, int) { return 3 * len(text), 5 })
	dl.DrawText("abcd", 1, 2, core.ColorWhite)

	op := dl.Ops()[0]
	if op.Rect != core.NewRect(1, 2, 12, 5) {
		t.Errorf("text rect = %+v, expected {1 2 12 5}", op.Rect)
	}
	if op.Kind.String() != "text" {
		t.Errorf("kind = %s, expected text", op.Kind)
	}
}

func TestSpriteIDsResolve(t *testing.T) {
	ctx := newTestContext(t, 1)
	for _, id := range SpriteIDs() {
		if ctx.Sprite(id) == nil {
			t.Errorf("sprite %q not resolved", id)
		}
	}
	if len(SpriteIDs()) != 9 {
		t.Errorf("got %d sprite ids, expected 9", len(SpriteIDs()))
	}
}

func TestNewContextRejectsBadRuntime(t *testing.T) {
	rt := core.DefaultConfig()
	rt.TickRate = 0
	if _, err := NewContext(rt, quietConfig()); err == nil {
		t.Error("expected error for zero tick rate")
	}
}

func TestNewContextRejectsInvalidConfig(t *testing.T) {
	cfg := quietConfig()
	cfg.Waves.StartLength = -10
	if _, err := NewContext(cfg.Runtime(1), cfg); err == nil {
		t.Error("NewContext() accepted a negative wave length, expected error")
	}
}
