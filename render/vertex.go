// Package render turns world and HUD state into renderer-agnostic vertex
// batches. Nothing here touches a GPU or a window; the frame driver hands
// the batches to whatever draws them.
package render

import "github.com/harbdog/raycaster-go/geom"

// TextureID names a texture slot in the renderer's registry.
type TextureID int

const (
	// wall materials map directly onto their grid cell values
	TexWall1 TextureID = 1
	TexWall2 TextureID = 2
	TexWall3 TextureID = 3
	TexWall4 TextureID = 4

	TexBullet  TextureID = 10
	TexEnemy   TextureID = 11
	TexAmmoBox TextureID = 12

	// TexWhite draws untextured tinted quads (HUD, background)
	TexWhite TextureID = 0
)

// Vertex is one corner of a screen-space triangle. X and Y are normalized
// device coordinates, tint multiplies the texture sample, and Depth is the
// shared occlusion key in [0, 1].
type Vertex struct {
	X, Y    float32
	U, V    float32
	R, G, B float32
	Depth   float32
}

// Batch is a run of triangles sharing one texture. Verts holds two
// triangles (6 vertices) per quad.
type Batch struct {
	Texture  TextureID
	Textured bool
	Verts    []Vertex
}

// Billboardable is anything the sprite builder can project: bullets,
// enemies, and pickups all satisfy it.
type Billboardable interface {
	BillboardPos() geom.Vector2
	HeightParam() float64
	Texture() TextureID
	SpriteScale() float64
}
