package render

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"

	"github.com/mkoranda/wolfie3d/grid"
	"github.com/mkoranda/wolfie3d/raycast"
)

const sideWallDim = 0.78

// Builder converts world and HUD state into vertex batches. All methods
// are pure functions of their arguments plus the screen size.
type Builder struct {
	Width  int
	Height int
}

func NewBuilder(width, height int) *Builder {
	return &Builder{Width: width, Height: height}
}

func (b *Builder) ndcX(px float64) float32 {
	return float32(2*px/float64(b.Width) - 1)
}

func (b *Builder) ndcY(py float64) float32 {
	return float32(1 - 2*py/float64(b.Height))
}

// appendQuad pushes two triangles spanning the NDC rectangle.
func appendQuad(verts []Vertex, x0, y0, x1, y1 float32, u0, v0, u1, v1 float32, r, g, bl, depth float32) []Vertex {
	return append(verts,
		Vertex{X: x0, Y: y0, U: u0, V: v0, R: r, G: g, B: bl, Depth: depth},
		Vertex{X: x0, Y: y1, U: u0, V: v1, R: r, G: g, B: bl, Depth: depth},
		Vertex{X: x1, Y: y0, U: u1, V: v0, R: r, G: g, B: bl, Depth: depth},
		Vertex{X: x1, Y: y0, U: u1, V: v0, R: r, G: g, B: bl, Depth: depth},
		Vertex{X: x0, Y: y1, U: u0, V: v1, R: r, G: g, B: bl, Depth: depth},
		Vertex{X: x1, Y: y1, U: u1, V: v1, R: r, G: g, B: bl, Depth: depth},
	)
}

// appendQuadPx is appendQuad with a pixel-space rectangle.
func (b *Builder) appendQuadPx(verts []Vertex, x, y, w, h float64, r, g, bl, depth float32) []Vertex {
	return appendQuad(verts,
		b.ndcX(x), b.ndcY(y), b.ndcX(x+w), b.ndcY(y+h),
		0, 0, 1, 1, r, g, bl, depth)
}

// WallBatches builds one column-strip quad per screen column, grouped
// into a batch per wall material. Y-face hits are dimmed for the
// classic two-tone wall look.
func (b *Builder) WallBatches(hits []raycast.Hit) []Batch {
	byMaterial := map[TextureID][]Vertex{}
	halfH := b.Height / 2

	for x, hit := range hits {
		lineHeight := int(float64(b.Height) / (hit.Dist + 1e-6))
		drawStart := -lineHeight/2 + halfH
		if drawStart < 0 {
			drawStart = 0
		}
		drawEnd := lineHeight/2 + halfH
		if drawEnd > b.Height-1 {
			drawEnd = b.Height - 1
		}

		dim := float32(1.0)
		if hit.Side == 1 {
			dim = sideWallDim
		}
		u := float32(hit.TexU)

		tex := TextureID(hit.Material)
		byMaterial[tex] = appendQuad(byMaterial[tex],
			b.ndcX(float64(x)), b.ndcY(float64(drawStart)),
			b.ndcX(float64(x+1)), b.ndcY(float64(drawEnd)),
			u, 0, u, 1,
			dim, dim, dim, float32(hit.Depth))
	}

	batches := make([]Batch, 0, len(byMaterial))
	for _, tex := range []TextureID{TexWall1, TexWall2, TexWall3, TexWall4} {
		if verts, ok := byMaterial[tex]; ok {
			batches = append(batches, Batch{Texture: tex, Textured: true, Verts: verts})
		}
	}
	return batches
}

// BillboardBatches projects every entity and groups the resulting quads
// per texture. Entities behind the camera or outside the frustum are
// skipped; an empty input yields an empty slice.
func (b *Builder) BillboardBatches(cam *raycast.Camera, c *raycast.Caster, items []Billboardable) []Batch {
	byTex := map[TextureID][]Vertex{}
	order := []TextureID{}

	for _, it := range items {
		bb, ok := raycast.ProjectBillboard(cam, c, it.BillboardPos(), it.HeightParam(), it.SpriteScale())
		if !ok {
			continue
		}
		startY := bb.StartY
		if startY < 0 {
			startY = 0
		}
		endY := bb.EndY
		if endY > float64(b.Height-1) {
			endY = float64(b.Height - 1)
		}

		tex := it.Texture()
		if _, seen := byTex[tex]; !seen {
			order = append(order, tex)
		}
		byTex[tex] = appendQuad(byTex[tex],
			b.ndcX(float64(bb.StartX)), b.ndcY(startY),
			b.ndcX(float64(bb.EndX)), b.ndcY(endY),
			0, 0, 1, 1,
			1, 1, 1, float32(bb.Depth))
	}

	batches := make([]Batch, 0, len(order))
	for _, tex := range order {
		batches = append(batches, Batch{Texture: tex, Textured: true, Verts: byTex[tex]})
	}
	return batches
}

// Background is two untextured half-screen quads, sky over floor, at
// maximum depth so everything else draws in front.
func (b *Builder) Background() Batch {
	var verts []Vertex
	verts = appendQuad(verts, -1, 1, 1, 0, 0, 0, 1, 1, 40.0/255, 60.0/255, 90.0/255, 1)
	verts = appendQuad(verts, -1, 0, 1, -1, 0, 0, 1, 1, 35.0/255, 35.0/255, 35.0/255, 1)
	return Batch{Texture: TexWhite, Verts: verts}
}

// Crosshair is two thin white rectangles centered on the screen.
func (b *Builder) Crosshair() Batch {
	const size, thickness = 8.0, 1.0
	cx, cy := float64(b.Width)/2, float64(b.Height)/2

	var verts []Vertex
	verts = b.appendQuadPx(verts, cx-size, cy-thickness, 2*size, 2*thickness, 1, 1, 1, 0)
	verts = b.appendQuadPx(verts, cx-thickness, cy-size, 2*thickness, 2*size, 1, 1, 1, 0)
	return Batch{Texture: TexWhite, Verts: verts}
}

// WeaponOverlay is the dark weapon box at the bottom of the screen plus
// the ammo bar beside it. The bar shrinks with remaining ammo and steps
// green, yellow, red as it runs low; recoil nudges the box upward
// briefly after each shot.
func (b *Builder) WeaponOverlay(ammo, maxAmmo int, recoil float64) Batch {
	const boxW, boxH = 200.0, 120.0
	x := float64(b.Width)/2 - boxW/2
	y := float64(b.Height) - boxH - 10
	if recoil > 0 {
		t := geom.Clamp(recoil/0.15, 0, 1)
		y += 6 * math.Sin(t*math.Pi)
	}

	var verts []Vertex
	verts = b.appendQuadPx(verts, x, y, boxW, boxH, 0.12, 0.12, 0.12, 0)

	const barW = 20.0
	frac := 0.0
	if maxAmmo > 0 {
		frac = float64(ammo) / float64(maxAmmo)
	}
	barH := boxH * frac
	var r, g float32
	switch {
	case ammo > 10:
		r, g = 0, 1
	case ammo > 5:
		r, g = 1, 1
	default:
		r, g = 1, 0
	}
	verts = b.appendQuadPx(verts, x-barW-10, y+(boxH-barH), barW, barH, r, g, 0, 0)

	return Batch{Texture: TexWhite, Verts: verts}
}

// WavePanel is the top-right status panel: a block row counting the
// current wave and, between waves, a shrinking countdown bar.
func (b *Builder) WavePanel(wave int, countdown, countdownMax float64, betweenWaves bool) Batch {
	const pad = 10.0
	const panelW, panelH = 150.0, 60.0
	px := float64(b.Width) - panelW - pad
	py := pad

	var verts []Vertex
	verts = b.appendQuadPx(verts, px, py, panelW, panelH, 0.1, 0.1, 0.1, 0)
	verts = b.appendQuadPx(verts, px+5, py+5, 140, 20, 0.2, 0.2, 0.2, 0)

	blocks := wave
	if blocks > 10 {
		blocks = 10
	}
	for i := 0; i < blocks; i++ {
		intensity := float32(0.3 + float64(i)/10*0.7)
		verts = b.appendQuadPx(verts, px+10+float64(i)*15, py+10, 10, 10, intensity, 0.2, 0.2, 0)
	}

	if betweenWaves && countdownMax > 0 {
		verts = b.appendQuadPx(verts, px+5, py+30, 140, 20, 0.2, 0.2, 0.2, 0)
		progress := geom.Clamp(countdown/countdownMax, 0, 1)
		verts = b.appendQuadPx(verts, px+10, py+35, 130*progress, 10, 0.2, 0.6, 0.2, 0)
	}

	return Batch{Texture: TexWhite, Verts: verts}
}

// Minimap draws the map top-left: wall cells, the player with a
// direction tick, enemies in red, ammo boxes in blue.
func (b *Builder) Minimap(m *grid.Map, playerPos, playerDir geom.Vector2, enemies, boxes []geom.Vector2) Batch {
	const scale, pad = 6.0, 10.0
	mmW := float64(m.Width()) * scale
	mmH := float64(m.Height()) * scale

	var verts []Vertex
	verts = b.appendQuadPx(verts, pad-2, pad-2, mmW+4, mmH+4, 0.1, 0.1, 0.1, 0)

	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if m.IsWall(x, y) {
				verts = b.appendQuadPx(verts, pad+float64(x)*scale, pad+float64(y)*scale, scale-1, scale-1, 0.86, 0.86, 0.86, 0)
			}
		}
	}

	px := playerPos.X * scale
	py := playerPos.Y * scale
	verts = b.appendQuadPx(verts, pad+px-2, pad+py-2, 4, 4, 0, 1, 0, 0)
	verts = b.appendQuadPx(verts, pad+px+playerDir.X*8-1, pad+py+playerDir.Y*8-1, 2, 2, 0, 1, 0, 0)

	for _, e := range enemies {
		verts = b.appendQuadPx(verts, pad+e.X*scale-2, pad+e.Y*scale-2, 4, 4, 0.9, 0.1, 0.1, 0)
	}
	for _, box := range boxes {
		verts = b.appendQuadPx(verts, pad+box.X*scale-2, pad+box.Y*scale-2, 4, 4, 0, 0, 1, 0)
	}

	return Batch{Texture: TexWhite, Verts: verts}
}
