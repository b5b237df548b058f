package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/mkoranda/wolfie3d/audio"
	"github.com/mkoranda/wolfie3d/config"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	sounds := audio.NewSoundManager(settings.AudioVolume)
	if settings.AudioEnabled {
		if err := sounds.Initialize(); err != nil {
			log.Printf("audio unavailable, continuing silent: %v", err)
		}
	} else {
		sounds.SetEnabled(false)
	}
	defer sounds.Cleanup()

	ebiten.SetWindowSize(settings.ScreenWidth, settings.ScreenHeight)
	ebiten.SetWindowTitle("wolfie3d")
	ebiten.SetVsyncEnabled(settings.Vsync)
	ebiten.SetFullscreen(settings.Fullscreen)

	if err := ebiten.RunGame(NewGame(settings, sounds)); err != nil {
		log.Fatal(err)
	}
}
