package sim

import (
	"github.com/harbdog/raycaster-go/geom"

	"github.com/mkoranda/wolfie3d/render"
)

const (
	ammoBoxHeightParam = 0.3
	ammoBoxScale       = 0.5
	// PickupDistance is boundary inclusive: standing exactly on it
	// still collects the box.
	PickupDistance = 0.8
)

// AmmoBox is a stationary pickup that refills the player's ammo.
type AmmoBox struct {
	Pos   geom.Vector2
	Alive bool
}

func NewAmmoBox(pos geom.Vector2) *AmmoBox {
	return &AmmoBox{Pos: pos, Alive: true}
}

// InPickupRange reports whether the player is close enough to collect
// the box.
func (a *AmmoBox) InPickupRange(player geom.Vector2) bool {
	return geom.Distance(a.Pos.X, a.Pos.Y, player.X, player.Y) <= PickupDistance
}

func (a *AmmoBox) BillboardPos() geom.Vector2 { return a.Pos }
func (a *AmmoBox) HeightParam() float64       { return ammoBoxHeightParam }
func (a *AmmoBox) Texture() render.TextureID  { return render.TexAmmoBox }
func (a *AmmoBox) SpriteScale() float64       { return ammoBoxScale }
