package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionFire) {
		t.Error("new frame should be empty")
	}

	f.Set(ActionFire)
	f.Set(ActionLeft)
	if !f.Has(ActionFire) || !f.Has(ActionLeft) {
		t.Error("Set() actions should be reported by Has()")
	}

	clone := f.Clone()
	clone.Set(ActionPause)
	if f.Has(ActionPause) {
		t.Error("Clone() should not share storage with the original")
	}

	f.Clear()
	if f.Has(ActionLeft) {
		t.Error("Clear() should remove every action")
	}

	var zero InputFrame
	if zero.Has(ActionUp) {
		t.Error("zero frame should report nothing")
	}
	zero.Set(ActionUp)
	if !zero.Has(ActionUp) {
		t.Error("Set() on a zero frame should allocate")
	}
}

func TestInputFrameAxis(t *testing.T) {
	tests := []struct {
		name   string
		held   []Action
		dx, dy int
	}{
		{"none", nil, 0, 0},
		{"left", []Action{ActionLeft}, -1, 0},
		{"down right", []Action{ActionDown, ActionRight}, 1, 1},
		{"opposites cancel", []Action{ActionLeft, ActionRight, ActionUp}, 0, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.held {
				f.Set(a)
			}
			dx, dy := f.Axis()
			if dx != tc.dx || dy != tc.dy {
				t.Errorf("Axis() = (%d, %d), expected (%d, %d)", dx, dy, tc.dx, tc.dy)
			}
		})
	}
}

func TestActionOpposite(t *testing.T) {
	pairs := map[Action]Action{
		ActionUp:    ActionDown,
		ActionDown:  ActionUp,
		ActionLeft:  ActionRight,
		ActionRight: ActionLeft,
		ActionFire:  ActionNone,
	}
	for a, expected := range pairs {
		if got := a.Opposite(); got != expected {
			t.Errorf("%v.Opposite() = %v, expected %v", a, got, expected)
		}
	}
	if ActionFire.String() != "Fire" || Action(99).String() != "Unknown" {
		t.Error("String() names are wrong")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in       string
		expected Color
		ok       bool
	}{
		{"red", ColorRed, true},
		{" Bright_Green ", ColorBrightGreen, true},
		{"grey", ColorGray, true},
		{"none", ColorNone, true},
		{"chartreuse", ColorNone, false},
	}

	for _, tc := range tests {
		got, ok := ParseColor(tc.in)
		if got != tc.expected || ok != tc.ok {
			t.Errorf("ParseColor(%q) = (%v, %v), expected (%v, %v)", tc.in, got, ok, tc.expected, tc.ok)
		}
	}
	if ColorNone.Opaque() || !ColorBlack.Opaque() {
		t.Error("only ColorNone should be transparent")
	}
}
