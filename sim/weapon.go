package sim

import (
	"github.com/harbdog/raycaster-go/geom"
	"github.com/jinzhu/copier"
)

const (
	muzzleOffset = 0.4
	recoilTime   = 0.15
)

// Weapon fires bullets cloned from a prototype, throttled by its rate
// of fire.
type Weapon struct {
	RateOfFire  float64 // shots per second
	BulletSpeed float64
	prototype   Bullet
	cooldown    float64
	recoil      float64
}

func NewWeapon(rateOfFire, bulletSpeed float64) *Weapon {
	return &Weapon{
		RateOfFire:  rateOfFire,
		BulletSpeed: bulletSpeed,
		prototype:   Bullet{Alive: true, Rise: bulletRiseMin},
	}
}

// Fire spawns a bullet just ahead of the camera, aimed along dir. It
// returns nil while the weapon is cooling down; ammo accounting belongs
// to the world, not the weapon.
func (w *Weapon) Fire(pos, dir geom.Vector2) *Bullet {
	if w.cooldown > 0 {
		return nil
	}
	w.cooldown = 1 / w.RateOfFire
	w.recoil = recoilTime

	b := Clone(&w.prototype)
	b.Pos = geom.Vector2{X: pos.X + dir.X*muzzleOffset, Y: pos.Y + dir.Y*muzzleOffset}
	b.Vel = geom.Vector2{X: dir.X * w.BulletSpeed, Y: dir.Y * w.BulletSpeed}
	return b
}

// Update cools the weapon down and decays the recoil animation timer.
func (w *Weapon) Update(dt float64) {
	if w.cooldown > 0 {
		w.cooldown -= dt
	}
	if w.recoil > 0 {
		w.recoil -= dt
	}
}

// Recoil returns the remaining recoil animation time, zero when idle.
func (w *Weapon) Recoil() float64 {
	if w.recoil < 0 {
		return 0
	}
	return w.recoil
}

// OnCooldown reports whether Fire would refuse right now.
func (w *Weapon) OnCooldown() bool { return w.cooldown > 0 }

// ResetCooldown makes the weapon ready immediately.
func (w *Weapon) ResetCooldown() { w.cooldown = 0 }

// Clone deep-copies a prototype value into a fresh instance.
func Clone[T any](from *T) *T {
	to := new(T)
	if err := copier.Copy(to, from); err != nil {
		// prototypes are plain value structs, copier cannot fail on them
		panic(err)
	}
	return to
}
