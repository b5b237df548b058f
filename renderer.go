package main

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/mkoranda/wolfie3d/render"
)

// Renderer uploads vertex batches to the screen. Ebiten has no depth
// buffer, so quads are painter-sorted far to near using the per-vertex
// depth the builders emit.
type Renderer struct {
	width    int
	height   int
	textures map[render.TextureID]*ebiten.Image
	white    *ebiten.Image

	quads []quad
}

type quad struct {
	tex   render.TextureID
	verts [6]render.Vertex
	depth float32
}

func NewRenderer(width, height int) *Renderer {
	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)

	return &Renderer{
		width:  width,
		height: height,
		textures: map[render.TextureID]*ebiten.Image{
			render.TexWall1:   makeBrickTexture(),
			render.TexWall2:   makeStoneTexture(),
			render.TexWall3:   makeWoodTexture(),
			render.TexWall4:   makeMetalTexture(),
			render.TexBullet:  makeBulletTexture(),
			render.TexEnemy:   makeEnemyTexture(),
			render.TexAmmoBox: makeAmmoBoxTexture(),
		},
		white: white,
	}
}

func (r *Renderer) texture(id render.TextureID) *ebiten.Image {
	if img, ok := r.textures[id]; ok {
		return img
	}
	return r.white
}

// Draw renders the frame's batches. Quads are collected, sorted by
// depth descending, then drawn in runs sharing a texture.
func (r *Renderer) Draw(screen *ebiten.Image, batches []render.Batch) error {
	r.quads = r.quads[:0]
	for _, b := range batches {
		if len(b.Verts)%6 != 0 {
			return fmt.Errorf("renderer: batch for texture %d has %d vertices, want a multiple of 6", b.Texture, len(b.Verts))
		}
		for i := 0; i+6 <= len(b.Verts); i += 6 {
			q := quad{tex: b.Texture, depth: b.Verts[i].Depth}
			copy(q.verts[:], b.Verts[i:i+6])
			r.quads = append(r.quads, q)
		}
	}

	sort.SliceStable(r.quads, func(i, j int) bool {
		return r.quads[i].depth > r.quads[j].depth
	})

	start := 0
	for i := 1; i <= len(r.quads); i++ {
		if i == len(r.quads) || r.quads[i].tex != r.quads[start].tex {
			r.drawRun(screen, r.quads[start:i])
			start = i
		}
	}
	return nil
}

func (r *Renderer) drawRun(screen *ebiten.Image, quads []quad) {
	if len(quads) == 0 {
		return
	}
	img := r.texture(quads[0].tex)
	bounds := img.Bounds()
	texW := float32(bounds.Dx())
	texH := float32(bounds.Dy())

	vertices := make([]ebiten.Vertex, 0, len(quads)*6)
	indices := make([]uint16, 0, len(quads)*6)

	for _, q := range quads {
		for _, v := range q.verts {
			indices = append(indices, uint16(len(vertices)))
			vertices = append(vertices, ebiten.Vertex{
				DstX:   (v.X + 1) / 2 * float32(r.width),
				DstY:   (1 - v.Y) / 2 * float32(r.height),
				SrcX:   v.U * texW,
				SrcY:   v.V * texH,
				ColorR: v.R,
				ColorG: v.G,
				ColorB: v.B,
				ColorA: 1,
			})
		}
	}

	screen.DrawTriangles(vertices, indices, img, nil)
}
