package sim

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"

	"github.com/mkoranda/wolfie3d/grid"
	"github.com/mkoranda/wolfie3d/render"
)

const (
	enemyRadius    = 0.35
	enemyBaseSpeed = 1.4
	// enemies stop closing in at this range so they never stack on the
	// player position
	enemyStandoff = 0.75
)

// Enemy chases the player in a straight line, sliding along walls with
// axis-separated movement.
type Enemy struct {
	Pos    geom.Vector2
	Alive  bool
	Health int
	Radius float64
	speed  float64
}

func NewEnemy(pos geom.Vector2, health int, speedMult float64) *Enemy {
	return &Enemy{
		Pos:    pos,
		Alive:  true,
		Health: health,
		Radius: enemyRadius,
		speed:  enemyBaseSpeed * speedMult,
	}
}

// TakeDamage applies damage and reports whether this call killed the
// enemy. Hits on an already dead enemy never report a kill again.
func (e *Enemy) TakeDamage(amount int) bool {
	if !e.Alive {
		return false
	}
	e.Health -= amount
	if e.Health <= 0 {
		e.Alive = false
		return true
	}
	return false
}

// Update steps the enemy toward the player. Each axis is tried on its
// own so a blocked axis still lets the other slide along the wall.
func (e *Enemy) Update(dt float64, m *grid.Map, player geom.Vector2) {
	if !e.Alive {
		return
	}
	dx := player.X - e.Pos.X
	dy := player.Y - e.Pos.Y
	dist := math.Hypot(dx, dy) + 1e-9
	if dist <= enemyStandoff {
		return
	}
	step := e.speed * dt
	e.tryMove(e.Pos.X+dx/dist*step, e.Pos.Y+dy/dist*step, m)
}

func (e *Enemy) tryMove(nx, ny float64, m *grid.Map) {
	if !m.IsWall(int(nx), int(e.Pos.Y)) {
		e.Pos.X = nx
	}
	if !m.IsWall(int(e.Pos.X), int(ny)) {
		e.Pos.Y = ny
	}
}

func (e *Enemy) BillboardPos() geom.Vector2 { return e.Pos }
func (e *Enemy) HeightParam() float64       { return 0.5 }
func (e *Enemy) Texture() render.TextureID  { return render.TexEnemy }
func (e *Enemy) SpriteScale() float64       { return 1.0 }
