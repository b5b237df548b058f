package raycast

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"
)

// Camera is the shared view basis consumed by both the wall caster and the
// billboard projector: a position, a forward direction, and a view-plane
// vector whose length encodes tan(FOV/2).
type Camera struct {
	Pos   geom.Vector2
	Dir   geom.Vector2
	Plane geom.Vector2
}

// NewCamera creates a camera at (x, y) facing +X with the given horizontal
// field of view in degrees.
func NewCamera(x, y, fovDegrees float64) *Camera {
	planeLen := math.Tan(geom.Radians(fovDegrees) / 2)
	return &Camera{
		Pos:   geom.Vector2{X: x, Y: y},
		Dir:   geom.Vector2{X: 1, Y: 0},
		Plane: geom.Vector2{X: 0, Y: planeLen},
	}
}

// Rotate turns the camera by angle radians. The same rotation matrix is
// applied to the direction and plane vectors so they stay mutually
// perpendicular and the basis determinant keeps its magnitude.
func (c *Camera) Rotate(angle float64) {
	cos, sin := math.Cos(angle), math.Sin(angle)
	oldDirX := c.Dir.X
	c.Dir.X = c.Dir.X*cos - c.Dir.Y*sin
	c.Dir.Y = oldDirX*sin + c.Dir.Y*cos
	oldPlaneX := c.Plane.X
	c.Plane.X = c.Plane.X*cos - c.Plane.Y*sin
	c.Plane.Y = oldPlaneX*sin + c.Plane.Y*cos
}

// BasisDet returns the determinant of the [plane dir] basis matrix. Zero
// means the basis is degenerate and billboards cannot be projected.
func (c *Camera) BasisDet() float64 {
	return c.Plane.X*c.Dir.Y - c.Dir.X*c.Plane.Y
}
