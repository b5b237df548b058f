package raycast

import (
	"math"
	"testing"

	"github.com/harbdog/raycaster-go/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkoranda/wolfie3d/grid"
)

func borderedMap(t *testing.T, size int) *grid.Map {
	t.Helper()
	cells := make([][]int, size)
	for y := range cells {
		cells[y] = make([]int, size)
		for x := range cells[y] {
			if x == 0 || y == 0 || x == size-1 || y == size-1 {
				cells[y][x] = 1
			}
		}
	}
	m, err := grid.NewMap(cells)
	require.NoError(t, err)
	return m
}

func TestRotatePreservesBasisDet(t *testing.T) {
	cam := NewCamera(3.5, 10.5, 66)
	det := cam.BasisDet()
	require.NotZero(t, det)

	for _, angle := range []float64{0.1, -0.7, math.Pi / 3, 2.9} {
		cam.Rotate(angle)
		assert.InDelta(t, det, cam.BasisDet(), 1e-9)
	}
}

func TestRotateFullCircle(t *testing.T) {
	cam := NewCamera(2, 2, 66)
	dir := cam.Dir
	for i := 0; i < 8; i++ {
		cam.Rotate(math.Pi / 4)
	}
	assert.InDelta(t, dir.X, cam.Dir.X, 1e-9)
	assert.InDelta(t, dir.Y, cam.Dir.Y, 1e-9)
}

func TestCenterColumnPerpDistance(t *testing.T) {
	m := borderedMap(t, 5)
	c := NewCaster(640, 480)

	// on the inner face of the west wall, looking east across three
	// open cells to the inner face of the east wall at x=4
	cam := NewCamera(1.0, 2.5, 66)
	hit := c.CastColumn(cam, m, c.Width/2)
	assert.Equal(t, 1, hit.Material)
	assert.Equal(t, 0, hit.Side)
	assert.InDelta(t, 3.0, hit.Dist, 1e-9)

	// from the center of the map the same face is 1.5 away
	cam = NewCamera(2.5, 2.5, 66)
	hit = c.CastColumn(cam, m, c.Width/2)
	assert.InDelta(t, 1.5, hit.Dist, 1e-9)

	cam = NewCamera(2.0, 2.5, 66)
	hit = c.CastColumn(cam, m, c.Width/2)
	assert.InDelta(t, 2.0, hit.Dist, 1e-9)
}

func TestAxisParallelRayTerminates(t *testing.T) {
	m := borderedMap(t, 5)
	c := NewCaster(100, 100)
	cam := NewCamera(2.5, 2.5, 66)

	// the center ray is exactly (1, 0); every column must resolve to a
	// positive material at finite distance
	for x := 0; x < c.Width; x++ {
		hit := c.CastColumn(cam, m, x)
		assert.Greater(t, hit.Material, 0, "column %d", x)
		assert.Less(t, hit.Dist, 10.0, "column %d", x)
		assert.False(t, math.IsNaN(hit.Dist))
		assert.False(t, math.IsInf(hit.Dist, 0))
	}
}

func TestCastAllBorderedMapAlwaysHits(t *testing.T) {
	m := borderedMap(t, 7)
	c := NewCaster(320, 200)
	cam := NewCamera(3.5, 3.5, 66)
	cam.Rotate(0.9)

	hits := c.CastAll(cam, m)
	require.Len(t, hits, c.Width)
	for x, hit := range hits {
		assert.Greater(t, hit.Material, 0, "column %d", x)
		assert.GreaterOrEqual(t, hit.TexU, 0.0)
		assert.LessOrEqual(t, hit.TexU, 1.0)
		assert.GreaterOrEqual(t, hit.Depth, 0.0)
		assert.LessOrEqual(t, hit.Depth, 1.0)
	}
}

func TestLeavingOpenMapHitsBorderMaterial(t *testing.T) {
	m, err := grid.NewMap([][]int{
		{0, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	})
	require.NoError(t, err)
	c := NewCaster(64, 64)
	cam := NewCamera(1.5, 1.5, 66)

	hit := c.CastColumn(cam, m, c.Width/2)
	assert.Equal(t, 1, hit.Material)
	assert.Greater(t, hit.Dist, 0.0)
}

func TestDepthSharedBetweenWallsAndBillboards(t *testing.T) {
	m := borderedMap(t, 10)
	c := NewCaster(640, 480)
	cam := NewCamera(1.5, 5.0, 66)

	// a billboard sitting on the wall face the center ray hits must get
	// the same normalized depth the caster assigns that wall
	hit := c.CastColumn(cam, m, c.Width/2)
	bb, ok := ProjectBillboard(cam, c, geom.Vector2{X: 1.5 + hit.Dist, Y: 5.0}, 0.5, 1.0)
	require.True(t, ok)
	assert.InDelta(t, hit.Depth, bb.Depth, 1e-9)
	assert.InDelta(t, hit.Dist, bb.TransformY, 1e-9)
}

func TestProjectBillboardCenterScreen(t *testing.T) {
	c := NewCaster(640, 480)
	cam := NewCamera(2.0, 2.5, 66)

	bb, ok := ProjectBillboard(cam, c, geom.Vector2{X: 4.0, Y: 2.5}, 0.5, 1.0)
	require.True(t, ok)
	assert.InDelta(t, 320, bb.ScreenX, 1e-9)
	assert.InDelta(t, 240, bb.Height, 1e-9)
	assert.InDelta(t, bb.Width, bb.Height, 1e-9)
	assert.InDelta(t, 2.0, bb.TransformY, 1e-9)
}

func TestProjectBillboardRejectsBehindCamera(t *testing.T) {
	c := NewCaster(640, 480)
	cam := NewCamera(5.0, 5.0, 66)

	_, ok := ProjectBillboard(cam, c, geom.Vector2{X: 3.0, Y: 5.0}, 0.5, 1.0)
	assert.False(t, ok)
	_, ok = ProjectBillboard(cam, c, geom.Vector2{X: 5.0, Y: 5.0}, 0.5, 1.0)
	assert.False(t, ok)
}

func TestProjectBillboardRejectsDegenerateBasis(t *testing.T) {
	c := NewCaster(640, 480)
	cam := &Camera{
		Pos:   geom.Vector2{X: 2, Y: 2},
		Dir:   geom.Vector2{X: 1, Y: 0},
		Plane: geom.Vector2{X: 0, Y: 0},
	}
	_, ok := ProjectBillboard(cam, c, geom.Vector2{X: 4, Y: 2}, 0.5, 1.0)
	assert.False(t, ok)
}

func TestProjectBillboardOffscreenCulled(t *testing.T) {
	c := NewCaster(640, 480)
	cam := NewCamera(2.0, 2.5, 66)

	// far to the side, outside the frustum
	_, ok := ProjectBillboard(cam, c, geom.Vector2{X: 2.1, Y: 50.0}, 0.5, 1.0)
	assert.False(t, ok)
}

func TestProjectBillboardScaleShrinks(t *testing.T) {
	c := NewCaster(640, 480)
	cam := NewCamera(2.0, 2.5, 66)

	full, ok := ProjectBillboard(cam, c, geom.Vector2{X: 5.0, Y: 2.5}, 0.5, 1.0)
	require.True(t, ok)
	half, ok := ProjectBillboard(cam, c, geom.Vector2{X: 5.0, Y: 2.5}, 0.15, 0.5)
	require.True(t, ok)
	assert.InDelta(t, full.Height/2, half.Height, 1e-9)
	// the lower height parameter sinks the quad toward the floor
	assert.Greater(t, half.StartY+half.Height/2, full.StartY+full.Height/2)
}

func TestDepthMonotonicWithDistance(t *testing.T) {
	c := NewCaster(640, 480)
	cam := NewCamera(1.5, 5.0, 66)

	prev := -1.0
	for d := 1.0; d < 20; d += 1.5 {
		bb, ok := ProjectBillboard(cam, c, geom.Vector2{X: 1.5 + d, Y: 5.0}, 0.5, 1.0)
		require.True(t, ok)
		assert.Greater(t, bb.Depth, prev)
		prev = bb.Depth
	}
}
