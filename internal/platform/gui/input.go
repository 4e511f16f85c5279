package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/space-shooter/internal/core"
)

// KeyState reports keyboard state. The window reads it from ebiten; tests
// supply their own.
type KeyState interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// Held keys are read as level state every tick.
var heldBindings = map[core.Action][]ebiten.Key{
	core.ActionUp:    {ebiten.KeyW, ebiten.KeyArrowUp},
	core.ActionDown:  {ebiten.KeyS, ebiten.KeyArrowDown},
	core.ActionLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	core.ActionRight: {ebiten.KeyD, ebiten.KeyArrowRight},
	core.ActionFire:  {ebiten.KeySpace},
}

// One-shot keys fire on the tick they went down.
var edgeBindings = map[core.Action][]ebiten.Key{
	core.ActionStart: {ebiten.KeyEnter},
	core.ActionQuit:  {ebiten.KeyQ, ebiten.KeyEscape},
	core.ActionPause: {ebiten.KeyP},
}

// ReadInput builds the input frame for one tick.
func ReadInput(ks KeyState) core.InputFrame {
	frame := core.NewInputFrame()
	for action, keys := range heldBindings {
		for _, k := range keys {
			if ks.Pressed(k) {
				frame.Set(action)
				break
			}
		}
	}
	for action, keys := range edgeBindings {
		for _, k := range keys {
			if ks.JustPressed(k) {
				frame.Set(action)
				break
			}
		}
	}
	return frame
}
