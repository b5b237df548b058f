package sim

import (
	"math/rand"

	"github.com/harbdog/raycaster-go/geom"

	"github.com/mkoranda/wolfie3d/grid"
	"github.com/mkoranda/wolfie3d/raycast"
)

const (
	// spawn placement keeps this much distance from the player so a
	// fresh wave never materializes on top of them
	spawnClearance = 3.0

	ammoBoxInterval = 20.0
	maxAmmoBoxes    = 3
)

// TickReport collects the events of one Update so the frame driver can
// dispatch audio and UI feedback without the sim knowing about either.
type TickReport struct {
	WaveStarted   bool
	WaveCompleted bool
	Kills         int
	Hits          int
	Pickups       int
}

// HUDState is the read-only snapshot the HUD builders consume.
type HUDState struct {
	Ammo         int
	MaxAmmo      int
	Wave         int
	Countdown    float64
	BetweenWaves bool
	Recoil       float64
}

// World owns the complete mutable game state and steps it in a fixed
// order each tick.
type World struct {
	Map    *grid.Map
	Camera *raycast.Camera
	Weapon *Weapon
	Waves  *WaveManager

	Bullets   []*Bullet
	Enemies   []*Enemy
	AmmoBoxes []*AmmoBox

	Ammo    int
	MaxAmmo int

	MoveSpeed   float64
	RotSpeed    float64
	StrafeSpeed float64

	rng      *rand.Rand
	boxTimer float64
}

// Config carries the tunables the world needs at construction time.
type Config struct {
	FOVDegrees  float64
	MoveSpeed   float64
	RotSpeed    float64
	StrafeSpeed float64
	BulletSpeed float64
	RateOfFire  float64
	MaxAmmo     int
	Countdown   float64
	Seed        int64
}

// NewWorld builds a world on the given map with the player at (x, y)
// facing +X, one ammo box pre-placed, and the wave director ready to
// bootstrap on the first tick.
func NewWorld(m *grid.Map, x, y float64, cfg Config) *World {
	w := &World{
		Map:         m,
		Camera:      raycast.NewCamera(x, y, cfg.FOVDegrees),
		Weapon:      NewWeapon(cfg.RateOfFire, cfg.BulletSpeed),
		Waves:       NewWaveManager(),
		Ammo:        cfg.MaxAmmo,
		MaxAmmo:     cfg.MaxAmmo,
		MoveSpeed:   cfg.MoveSpeed,
		RotSpeed:    cfg.RotSpeed,
		StrafeSpeed: cfg.StrafeSpeed,
		rng:         rand.New(rand.NewSource(cfg.Seed)),
	}
	if cfg.Countdown > 0 {
		w.Waves.CountdownDuration = cfg.Countdown
	}
	w.AmmoBoxes = append(w.AmmoBoxes, NewAmmoBox(w.randomSpawn()))
	return w
}

func (w *World) randomSpawn() geom.Vector2 {
	return w.Map.RandomFloorCell(w.rng, w.Camera.Pos, spawnClearance)
}

// MoveForward walks the player along the camera direction, each axis
// clipped independently so the player slides along walls.
func (w *World) MoveForward(dist float64) {
	w.tryMove(w.Camera.Pos.X+w.Camera.Dir.X*dist, w.Camera.Pos.Y+w.Camera.Dir.Y*dist)
}

// Strafe walks the player perpendicular to the camera direction,
// positive to the right.
func (w *World) Strafe(dist float64) {
	w.tryMove(w.Camera.Pos.X-w.Camera.Dir.Y*dist, w.Camera.Pos.Y+w.Camera.Dir.X*dist)
}

// Rotate turns the camera by angle radians.
func (w *World) Rotate(angle float64) {
	w.Camera.Rotate(angle)
}

func (w *World) tryMove(nx, ny float64) {
	if !w.Map.IsWall(int(nx), int(w.Camera.Pos.Y)) {
		w.Camera.Pos.X = nx
	}
	if !w.Map.IsWall(int(w.Camera.Pos.X), int(ny)) {
		w.Camera.Pos.Y = ny
	}
}

// Fire attempts to shoot. It returns true when a bullet left the
// barrel; false means cooldown or an empty magazine, and the second
// return distinguishes the empty click for audio feedback.
func (w *World) Fire() (fired, empty bool) {
	if w.Ammo <= 0 {
		return false, !w.Weapon.OnCooldown()
	}
	b := w.Weapon.Fire(w.Camera.Pos, w.Camera.Dir)
	if b == nil {
		return false, false
	}
	w.Bullets = append(w.Bullets, b)
	w.Ammo--
	return true, false
}

// Update advances the whole simulation one tick. Order is fixed: wave
// director, spawn top-up, bullet flight, bullet-enemy resolution, enemy
// chase, pickup checks, then dead entity filtering.
func (w *World) Update(dt float64) TickReport {
	var report TickReport

	wasBetween := w.Waves.BetweenWaves()
	report.WaveStarted = w.Waves.Update(dt, w.aliveEnemies())
	if !wasBetween && w.Waves.BetweenWaves() {
		report.WaveCompleted = true
	}
	w.spawnEnemies()

	w.Weapon.Update(dt)

	for _, b := range w.Bullets {
		b.Update(dt, w.Map)
		if !b.Alive {
			continue
		}
		for _, e := range w.Enemies {
			if !e.Alive {
				continue
			}
			dx := e.Pos.X - b.Pos.X
			dy := e.Pos.Y - b.Pos.Y
			if dx*dx+dy*dy <= e.Radius*e.Radius {
				if e.TakeDamage(1) {
					report.Kills++
				} else {
					report.Hits++
				}
				b.Alive = false
				break
			}
		}
	}

	for _, e := range w.Enemies {
		e.Update(dt, w.Map, w.Camera.Pos)
	}

	for _, box := range w.AmmoBoxes {
		if box.Alive && box.InPickupRange(w.Camera.Pos) {
			box.Alive = false
			w.Ammo = w.MaxAmmo
			report.Pickups++
		}
	}

	w.boxTimer += dt
	if w.boxTimer >= ammoBoxInterval && len(w.AmmoBoxes) < maxAmmoBoxes {
		w.AmmoBoxes = append(w.AmmoBoxes, NewAmmoBox(w.randomSpawn()))
		w.boxTimer = 0
	}

	w.Bullets = filterBullets(w.Bullets)
	w.Enemies = filterEnemies(w.Enemies)
	w.AmmoBoxes = filterBoxes(w.AmmoBoxes)

	return report
}

func (w *World) spawnEnemies() {
	target := w.Waves.SpawnTarget()
	for w.Waves.Spawned < target {
		e := NewEnemy(
			w.randomSpawn(),
			EnemyHealthForWave(w.Waves.Wave),
			SpeedMultiplierForWave(w.Waves.Wave),
		)
		w.Enemies = append(w.Enemies, e)
		w.Waves.Spawned++
	}
}

func (w *World) aliveEnemies() int {
	n := 0
	for _, e := range w.Enemies {
		if e.Alive {
			n++
		}
	}
	return n
}

// HUD snapshots the values the HUD builders draw each frame.
func (w *World) HUD() HUDState {
	return HUDState{
		Ammo:         w.Ammo,
		MaxAmmo:      w.MaxAmmo,
		Wave:         w.Waves.Wave,
		Countdown:    w.Waves.Countdown,
		BetweenWaves: w.Waves.BetweenWaves(),
		Recoil:       w.Weapon.Recoil(),
	}
}

func filterBullets(in []*Bullet) []*Bullet {
	out := in[:0]
	for _, b := range in {
		if b.Alive {
			out = append(out, b)
		}
	}
	return out
}

func filterEnemies(in []*Enemy) []*Enemy {
	out := in[:0]
	for _, e := range in {
		if e.Alive {
			out = append(out, e)
		}
	}
	return out
}

func filterBoxes(in []*AmmoBox) []*AmmoBox {
	out := in[:0]
	for _, a := range in {
		if a.Alive {
			out = append(out, a)
		}
	}
	return out
}
