package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// drawHUDText overlays the debug-style text readouts on top of the
// batch-built HUD quads.
func (g *Game) drawHUDText(screen *ebiten.Image) {
	hud := g.world.HUD()

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.0f", ebiten.ActualFPS()), 10, g.settings.ScreenHeight-48)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("AMMO: %d/%d", hud.Ammo, hud.MaxAmmo), 10, g.settings.ScreenHeight-32)

	if hud.BetweenWaves {
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("WAVE %d CLEARED - next in %.1fs", hud.Wave, hud.Countdown),
			10, g.settings.ScreenHeight-16)
	} else {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("WAVE %d", hud.Wave), 10, g.settings.ScreenHeight-16)
	}
}
