package render

import (
	"testing"

	"github.com/harbdog/raycaster-go/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkoranda/wolfie3d/grid"
	"github.com/mkoranda/wolfie3d/raycast"
)

type stubSprite struct {
	pos geom.Vector2
}

func (s stubSprite) BillboardPos() geom.Vector2 { return s.pos }
func (s stubSprite) HeightParam() float64       { return 0.5 }
func (s stubSprite) Texture() TextureID         { return TexEnemy }
func (s stubSprite) SpriteScale() float64       { return 1.0 }

func smallMap(t *testing.T) *grid.Map {
	t.Helper()
	m, err := grid.NewMap([][]int{
		{1, 1, 1, 1, 1},
		{1, 0, 0, 0, 1},
		{1, 0, 0, 0, 1},
		{1, 0, 0, 0, 1},
		{1, 1, 1, 1, 1},
	})
	require.NoError(t, err)
	return m
}

func TestWallBatchesCoverEveryColumn(t *testing.T) {
	m := smallMap(t)
	c := raycast.NewCaster(64, 48)
	cam := raycast.NewCamera(2.5, 2.5, 66)
	b := NewBuilder(c.Width, c.Height)

	batches := b.WallBatches(c.CastAll(cam, m))
	require.NotEmpty(t, batches)

	total := 0
	for _, batch := range batches {
		assert.True(t, batch.Textured)
		assert.Zero(t, len(batch.Verts)%6, "quads are 6 vertices each")
		total += len(batch.Verts)
	}
	// one quad per screen column
	assert.Equal(t, c.Width*6, total)
}

func TestWallBatchesNDCInRange(t *testing.T) {
	m := smallMap(t)
	c := raycast.NewCaster(64, 48)
	cam := raycast.NewCamera(2.5, 2.5, 66)
	b := NewBuilder(c.Width, c.Height)

	for _, batch := range b.WallBatches(c.CastAll(cam, m)) {
		for _, v := range batch.Verts {
			assert.GreaterOrEqual(t, v.X, float32(-1))
			assert.LessOrEqual(t, v.X, float32(1))
			assert.GreaterOrEqual(t, v.Y, float32(-1))
			assert.LessOrEqual(t, v.Y, float32(1))
			assert.GreaterOrEqual(t, v.Depth, float32(0))
			assert.LessOrEqual(t, v.Depth, float32(1))
		}
	}
}

func TestBillboardBatchesEmptyInput(t *testing.T) {
	c := raycast.NewCaster(64, 48)
	cam := raycast.NewCamera(2.5, 2.5, 66)
	b := NewBuilder(c.Width, c.Height)

	assert.Empty(t, b.BillboardBatches(cam, c, nil))
}

func TestBillboardBatchesSkipBehindCamera(t *testing.T) {
	c := raycast.NewCaster(64, 48)
	cam := raycast.NewCamera(2.5, 2.5, 66)
	b := NewBuilder(c.Width, c.Height)

	items := []Billboardable{
		stubSprite{pos: geom.Vector2{X: 3.5, Y: 2.5}}, // ahead
		stubSprite{pos: geom.Vector2{X: 1.5, Y: 2.5}}, // behind
	}
	batches := b.BillboardBatches(cam, c, items)
	require.Len(t, batches, 1)
	assert.Equal(t, TexEnemy, batches[0].Texture)
	assert.Len(t, batches[0].Verts, 6)
}

func TestBackgroundAtMaxDepth(t *testing.T) {
	b := NewBuilder(640, 480)
	bg := b.Background()
	require.Len(t, bg.Verts, 12)
	assert.False(t, bg.Textured)
	for _, v := range bg.Verts {
		assert.Equal(t, float32(1), v.Depth)
	}
}

func TestCrosshairCentered(t *testing.T) {
	b := NewBuilder(640, 480)
	ch := b.Crosshair()
	require.Len(t, ch.Verts, 12)

	var sumX, sumY float32
	for _, v := range ch.Verts {
		sumX += v.X
		sumY += v.Y
		assert.Equal(t, float32(0), v.Depth)
	}
	assert.InDelta(t, 0, float64(sumX)/12, 1e-5)
	assert.InDelta(t, 0, float64(sumY)/12, 1e-5)
}

func TestWeaponOverlayAmmoColors(t *testing.T) {
	b := NewBuilder(640, 480)

	// the second quad is the ammo bar; vertex 6 starts it
	bar := func(ammo int) Vertex { return b.WeaponOverlay(ammo, 20, 0).Verts[6] }

	full := bar(20)
	assert.Equal(t, float32(0), full.R)
	assert.Equal(t, float32(1), full.G)

	mid := bar(8)
	assert.Equal(t, float32(1), mid.R)
	assert.Equal(t, float32(1), mid.G)

	low := bar(3)
	assert.Equal(t, float32(1), low.R)
	assert.Equal(t, float32(0), low.G)
}

func TestWeaponOverlayEmptyAmmoBarCollapses(t *testing.T) {
	b := NewBuilder(640, 480)
	verts := b.WeaponOverlay(0, 20, 0).Verts
	require.Len(t, verts, 12)
	// zero ammo leaves a zero-height bar
	assert.Equal(t, verts[6].Y, verts[7].Y)
}

func TestWavePanelCountdownBarOnlyBetweenWaves(t *testing.T) {
	b := NewBuilder(640, 480)

	active := b.WavePanel(1, 0, 5, false)
	between := b.WavePanel(1, 2.5, 5, true)
	assert.Greater(t, len(between.Verts), len(active.Verts))
}

func TestWavePanelBlocksCappedAtTen(t *testing.T) {
	b := NewBuilder(640, 480)
	ten := b.WavePanel(10, 0, 5, false)
	twenty := b.WavePanel(20, 0, 5, false)
	assert.Equal(t, len(ten.Verts), len(twenty.Verts))
}

func TestMinimapEmptyEntities(t *testing.T) {
	b := NewBuilder(640, 480)
	m := smallMap(t)

	batch := b.Minimap(m, geom.Vector2{X: 2.5, Y: 2.5}, geom.Vector2{X: 1, Y: 0}, nil, nil)
	require.NotEmpty(t, batch.Verts)
	assert.Zero(t, len(batch.Verts)%6)
}

func TestMinimapEntitiesAddQuads(t *testing.T) {
	b := NewBuilder(640, 480)
	m := smallMap(t)
	pos := geom.Vector2{X: 2.5, Y: 2.5}
	dir := geom.Vector2{X: 1, Y: 0}

	base := len(b.Minimap(m, pos, dir, nil, nil).Verts)
	withEntities := len(b.Minimap(m, pos, dir,
		[]geom.Vector2{{X: 1.5, Y: 1.5}},
		[]geom.Vector2{{X: 3.5, Y: 3.5}},
	).Verts)
	assert.Equal(t, base+12, withEntities)
}
