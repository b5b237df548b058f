package raycast

import (
	"github.com/harbdog/raycaster-go/geom"
	"github.com/mkoranda/wolfie3d/grid"
)

// infDelta stands in for the delta distance of a ray component that is
// exactly zero, so the DDA walk never steps along that axis.
const infDelta = 1e30

// Hit is the result of casting one screen column against the map.
type Hit struct {
	// Dist is the perpendicular distance from the camera plane to the
	// wall, not the euclidean ray length, so walls render without
	// fisheye curvature.
	Dist     float64
	Side     int // 0 hit on an x-face, 1 on a y-face
	Material int
	TexU     float64
	// Depth is Dist normalized against the far plane, shared verbatim
	// with billboard depth so walls and sprites occlude consistently.
	Depth float64
}

// Caster walks rays across a grid map, one per screen column.
type Caster struct {
	Width    int
	Height   int
	FarPlane float64
}

func NewCaster(width, height int) *Caster {
	return &Caster{Width: width, Height: height, FarPlane: 100}
}

// CastColumn casts the ray for screen column x and returns the nearest
// wall hit. Rays leaving the map count as hitting a border wall of
// material 1 so the walk always terminates.
func (c *Caster) CastColumn(cam *Camera, m *grid.Map, x int) Hit {
	cameraX := 2*float64(x)/float64(c.Width) - 1
	rayDirX := cam.Dir.X + cam.Plane.X*cameraX
	rayDirY := cam.Dir.Y + cam.Plane.Y*cameraX

	mapX, mapY := int(cam.Pos.X), int(cam.Pos.Y)

	deltaDistX, deltaDistY := infDelta, infDelta
	if rayDirX != 0 {
		deltaDistX = abs(1 / rayDirX)
	}
	if rayDirY != 0 {
		deltaDistY = abs(1 / rayDirY)
	}

	var stepX, stepY int
	var sideDistX, sideDistY float64
	if rayDirX < 0 {
		stepX = -1
		sideDistX = (cam.Pos.X - float64(mapX)) * deltaDistX
	} else {
		stepX = 1
		sideDistX = (float64(mapX) + 1 - cam.Pos.X) * deltaDistX
	}
	if rayDirY < 0 {
		stepY = -1
		sideDistY = (cam.Pos.Y - float64(mapY)) * deltaDistY
	} else {
		stepY = 1
		sideDistY = (float64(mapY) + 1 - cam.Pos.Y) * deltaDistY
	}

	side := 0
	material := 0
	for material == 0 {
		if sideDistX < sideDistY {
			sideDistX += deltaDistX
			mapX += stepX
			side = 0
		} else {
			sideDistY += deltaDistY
			mapY += stepY
			side = 1
		}
		if !m.InBounds(mapX, mapY) {
			material = 1
			break
		}
		material = m.At(mapX, mapY)
	}

	var dist float64
	if side == 0 {
		dist = sideDistX - deltaDistX
	} else {
		dist = sideDistY - deltaDistY
	}
	if dist < 1e-6 {
		dist = 1e-6
	}

	var wallX float64
	if side == 0 {
		wallX = cam.Pos.Y + dist*rayDirY
	} else {
		wallX = cam.Pos.X + dist*rayDirX
	}
	wallX -= float64(int(wallX))

	texU := wallX
	if (side == 0 && rayDirX > 0) || (side == 1 && rayDirY < 0) {
		texU = 1 - texU
	}

	return Hit{
		Dist:     dist,
		Side:     side,
		Material: material,
		TexU:     texU,
		Depth:    geom.Clamp(dist/c.FarPlane, 0, 1),
	}
}

// CastAll returns one hit per screen column, left to right.
func (c *Caster) CastAll(cam *Camera, m *grid.Map) []Hit {
	hits := make([]Hit, c.Width)
	for x := 0; x < c.Width; x++ {
		hits[x] = c.CastColumn(cam, m, x)
	}
	return hits
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
