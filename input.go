package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// inputState is one frame's worth of player intent, snapshotted at the
// top of Update so the rest of the tick never touches ebiten directly.
type inputState struct {
	forward     bool
	backward    bool
	strafeLeft  bool
	strafeRight bool
	rotateLeft  bool
	rotateRight bool

	fire        bool
	quit        bool
	toggleAudio bool
}

func pollInput() inputState {
	return inputState{
		forward:     ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp),
		backward:    ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown),
		strafeLeft:  ebiten.IsKeyPressed(ebiten.KeyA),
		strafeRight: ebiten.IsKeyPressed(ebiten.KeyD),
		rotateLeft:  ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyQ),
		rotateRight: ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyE),

		fire: inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		quit:        inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		toggleAudio: inpututil.IsKeyJustPressed(ebiten.KeyM),
	}
}
