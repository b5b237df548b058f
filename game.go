package main

import (
	"time"

	"github.com/harbdog/raycaster-go/geom"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/mkoranda/wolfie3d/audio"
	"github.com/mkoranda/wolfie3d/config"
	"github.com/mkoranda/wolfie3d/grid"
	"github.com/mkoranda/wolfie3d/raycast"
	"github.com/mkoranda/wolfie3d/render"
	"github.com/mkoranda/wolfie3d/sim"
)

// maxFrameDt caps the simulation step after a stall so entities never
// tunnel through walls on the catch-up frame.
const maxFrameDt = 0.1

type Game struct {
	settings *config.Settings
	world    *sim.World
	caster   *raycast.Caster
	builder  *render.Builder
	renderer *Renderer
	sounds   *audio.SoundManager

	lastTick time.Time
	batches  []render.Batch
}

func NewGame(settings *config.Settings, sounds *audio.SoundManager) *Game {
	m := grid.DefaultMap()

	world := sim.NewWorld(m, 3.5, 10.5, sim.Config{
		FOVDegrees:  settings.FOVDegrees,
		MoveSpeed:   settings.MoveSpeed,
		RotSpeed:    settings.RotSpeed,
		StrafeSpeed: settings.StrafeSpeed,
		BulletSpeed: settings.BulletSpeed,
		RateOfFire:  settings.RateOfFire,
		MaxAmmo:     settings.MaxAmmo,
		Countdown:   settings.WaveCountdown,
		Seed:        time.Now().UnixNano(),
	})

	caster := raycast.NewCaster(settings.ScreenWidth, settings.ScreenHeight)
	caster.FarPlane = settings.FarPlane

	return &Game{
		settings: settings,
		world:    world,
		caster:   caster,
		builder:  render.NewBuilder(settings.ScreenWidth, settings.ScreenHeight),
		renderer: NewRenderer(settings.ScreenWidth, settings.ScreenHeight),
		sounds:   sounds,
	}
}

func (g *Game) Update() error {
	in := pollInput()
	if in.quit {
		return ebiten.Termination
	}
	if in.toggleAudio {
		g.sounds.SetEnabled(!g.sounds.Enabled())
	}

	now := time.Now()
	dt := maxFrameDt
	if !g.lastTick.IsZero() {
		dt = now.Sub(g.lastTick).Seconds()
		if dt > maxFrameDt {
			dt = maxFrameDt
		}
	}
	g.lastTick = now

	g.applyMovement(in, dt)

	if in.fire {
		fired, empty := g.world.Fire()
		if fired {
			g.sounds.PlayGunshot()
		} else if empty {
			g.sounds.PlayEmptyClick()
		}
	}

	report := g.world.Update(dt)
	g.dispatchAudio(report)

	g.batches = g.buildFrame()
	return nil
}

func (g *Game) applyMovement(in inputState, dt float64) {
	if in.rotateLeft {
		g.world.Rotate(-g.world.RotSpeed * dt)
	}
	if in.rotateRight {
		g.world.Rotate(g.world.RotSpeed * dt)
	}
	if in.forward {
		g.world.MoveForward(g.world.MoveSpeed * dt)
	}
	if in.backward {
		g.world.MoveForward(-g.world.MoveSpeed * dt)
	}
	if in.strafeLeft {
		g.world.Strafe(-g.world.StrafeSpeed * dt)
	}
	if in.strafeRight {
		g.world.Strafe(g.world.StrafeSpeed * dt)
	}
}

func (g *Game) dispatchAudio(report sim.TickReport) {
	if report.WaveStarted {
		g.sounds.PlayWaveStart()
	}
	if report.WaveCompleted {
		g.sounds.PlayWaveComplete()
	}
	for i := 0; i < report.Kills; i++ {
		g.sounds.PlayEnemyDeath()
	}
	for i := 0; i < report.Hits; i++ {
		g.sounds.PlayBulletImpact()
	}
	for i := 0; i < report.Pickups; i++ {
		g.sounds.PlayAmmoPickup()
	}
}

// buildFrame assembles the full frame's batches in draw order:
// background, walls, billboards, then the HUD layers.
func (g *Game) buildFrame() []render.Batch {
	cam := g.world.Camera
	hud := g.world.HUD()

	batches := make([]render.Batch, 0, 16)
	batches = append(batches, g.builder.Background())
	batches = append(batches, g.builder.WallBatches(g.caster.CastAll(cam, g.world.Map))...)

	sprites := make([]render.Billboardable, 0, len(g.world.Bullets)+len(g.world.Enemies)+len(g.world.AmmoBoxes))
	for _, b := range g.world.Bullets {
		sprites = append(sprites, b)
	}
	for _, e := range g.world.Enemies {
		sprites = append(sprites, e)
	}
	for _, box := range g.world.AmmoBoxes {
		sprites = append(sprites, box)
	}
	batches = append(batches, g.builder.BillboardBatches(cam, g.caster, sprites)...)

	batches = append(batches,
		g.builder.Crosshair(),
		g.builder.WeaponOverlay(hud.Ammo, hud.MaxAmmo, hud.Recoil),
		g.builder.WavePanel(hud.Wave, hud.Countdown, g.world.Waves.CountdownDuration, hud.BetweenWaves),
		g.builder.Minimap(g.world.Map, cam.Pos, cam.Dir, enemyPositions(g.world.Enemies), boxPositions(g.world.AmmoBoxes)),
	)
	return batches
}

func (g *Game) Draw(screen *ebiten.Image) {
	if err := g.renderer.Draw(screen, g.batches); err != nil {
		panic(err)
	}
	g.drawHUDText(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.settings.ScreenWidth, g.settings.ScreenHeight
}

func enemyPositions(enemies []*sim.Enemy) []geom.Vector2 {
	out := make([]geom.Vector2, 0, len(enemies))
	for _, e := range enemies {
		if e.Alive {
			out = append(out, e.Pos)
		}
	}
	return out
}

func boxPositions(boxes []*sim.AmmoBox) []geom.Vector2 {
	out := make([]geom.Vector2, 0, len(boxes))
	for _, b := range boxes {
		if b.Alive {
			out = append(out, b.Pos)
		}
	}
	return out
}
