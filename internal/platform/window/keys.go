package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/dodger/internal/core"
)

// bindings maps actions to physical keys.
var bindings = map[core.Action][]ebiten.Key{
	core.ActionLeft:    {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight:   {ebiten.KeyArrowRight, ebiten.KeyD},
	core.ActionUp:      {ebiten.KeyArrowUp, ebiten.KeyW},
	core.ActionDown:    {ebiten.KeyArrowDown, ebiten.KeyS},
	core.ActionFire:    {ebiten.KeySpace},
	core.ActionRestart: {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
	core.ActionPause:   {ebiten.KeyP},
	core.ActionQuit:    {ebiten.KeyEscape, ebiten.KeyQ},
}

// KeyState reports whether a key is in some state this tick.
type KeyState func(ebiten.Key) bool

// BuildInput collects the input frame from held and just-pressed key states.
func BuildInput(held, pressed KeyState) core.InputFrame {
	in := core.NewInputFrame()
	for action, keys := range bindings {
		for _, k := range keys {
			if held(k) {
				in.Hold(action)
			}
			if pressed(k) {
				in.Press(action)
			}
		}
	}
	return in
}
