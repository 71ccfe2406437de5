package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/meghashyamc/sat2d/sandbox"
)

// readInput polls the keyboard. Movement and rotation repeat while held;
// toggles fire once per press.
func readInput() (sandbox.Input, bool) {
	held := func(keys ...ebiten.Key) bool {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				return true
			}
		}
		return false
	}

	in := sandbox.Input{
		Up:            held(ebiten.KeyW, ebiten.KeyArrowUp),
		Down:          held(ebiten.KeyS, ebiten.KeyArrowDown),
		Left:          held(ebiten.KeyA, ebiten.KeyArrowLeft),
		Right:         held(ebiten.KeyD, ebiten.KeyArrowRight),
		RotateCW:      held(ebiten.KeyE),
		RotateCCW:     held(ebiten.KeyQ),
		ToggleResolve: inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Reset:         inpututil.IsKeyJustPressed(ebiten.KeyR),
	}

	return in, inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
