package raycast

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"
)

// Billboard is the screen-space footprint of a world point projected
// through the camera basis: an axis-aligned quad that always faces the
// viewer.
type Billboard struct {
	ScreenX    float64
	Width      float64
	Height     float64
	StartX     int
	EndX       int
	StartY     float64
	EndY       float64
	Depth      float64
	TransformY float64
}

// ProjectBillboard transforms a world point into camera space and sizes
// a screen quad for it. heightParam slides the quad vertically, 0 at the
// floor and 1 at eye level; scale shrinks the quad for small props. The
// second return is false when the point is behind the camera or the
// camera basis is degenerate.
func ProjectBillboard(cam *Camera, c *Caster, point geom.Vector2, heightParam, scale float64) (Billboard, bool) {
	det := cam.BasisDet()
	if math.Abs(det) < 1e-12 {
		return Billboard{}, false
	}
	invDet := 1 / det

	relX := point.X - cam.Pos.X
	relY := point.Y - cam.Pos.Y

	transformX := invDet * (cam.Dir.Y*relX - cam.Dir.X*relY)
	transformY := invDet * (-cam.Plane.Y*relX + cam.Plane.X*relY)
	if transformY <= 0 {
		return Billboard{}, false
	}

	w, h := float64(c.Width), float64(c.Height)
	screenX := (w / 2) * (1 + transformX/transformY)

	size := math.Abs(h/transformY) * scale
	vShift := (0.5 - heightParam) * size

	startY := h/2 - size/2 + vShift
	endY := startY + size

	startX := int(screenX - size/2)
	endX := int(screenX + size/2)
	if endX < 0 || startX >= c.Width {
		return Billboard{}, false
	}
	if startX < 0 {
		startX = 0
	}
	if endX > c.Width {
		endX = c.Width
	}

	return Billboard{
		ScreenX:    screenX,
		Width:      size,
		Height:     size,
		StartX:     startX,
		EndX:       endX,
		StartY:     startY,
		EndY:       endY,
		Depth:      geom.Clamp(transformY/c.FarPlane, 0, 1),
		TransformY: transformY,
	}, true
}
