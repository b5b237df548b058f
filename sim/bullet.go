// Package sim owns the game state and its fixed-order tick: bullets,
// chasing enemies, ammo pickups, and the wave director that feeds them.
package sim

import (
	"github.com/harbdog/raycaster-go/geom"

	"github.com/mkoranda/wolfie3d/grid"
	"github.com/mkoranda/wolfie3d/render"
)

const (
	bulletRiseRate = 0.35
	bulletRiseMax  = 0.65
	bulletRiseMin  = 0.2
)

// Bullet is a fired projectile travelling in a straight line until it
// enters a wall cell or consumes itself on an enemy.
type Bullet struct {
	Pos   geom.Vector2
	Vel   geom.Vector2
	Alive bool
	Age   float64
	// Rise is the billboard height parameter; it climbs while the
	// bullet flies so shots appear to arc upward.
	Rise float64
}

func NewBullet(pos, vel geom.Vector2) *Bullet {
	return &Bullet{Pos: pos, Vel: vel, Alive: true, Rise: bulletRiseMin}
}

// Update advances the bullet one full step. A step whose destination is
// a wall cell kills the bullet in place; it never moves partially into
// the wall.
func (b *Bullet) Update(dt float64, m *grid.Map) {
	if !b.Alive {
		return
	}
	nx := b.Pos.X + b.Vel.X*dt
	ny := b.Pos.Y + b.Vel.Y*dt
	if m.IsWall(int(nx), int(ny)) {
		b.Alive = false
		return
	}
	b.Pos.X, b.Pos.Y = nx, ny
	b.Age += dt
	b.Rise = min(bulletRiseMax, b.Rise+bulletRiseRate*dt)
}

func (b *Bullet) BillboardPos() geom.Vector2 { return b.Pos }
func (b *Bullet) HeightParam() float64       { return b.Rise }
func (b *Bullet) Texture() render.TextureID  { return render.TexBullet }
func (b *Bullet) SpriteScale() float64       { return 1.0 }
