package main

import (
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
)

const texSize = 64

// Wall and sprite art is generated at startup; the game ships no image
// assets.

func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if image.Pt(x, y).In(img.Rect) {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

func drawCircle(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r && image.Pt(x, y).In(img.Rect) {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

func drawLine(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	steps := max(abs(x1-x0), abs(y1-y0))
	if steps == 0 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := x0 + int(t*float64(x1-x0))
		y := y0 + int(t*float64(y1-y0))
		if image.Pt(x, y).In(img.Rect) {
			img.SetRGBA(x, y, c)
		}
	}
}

func makeBrickTexture() *ebiten.Image {
	img := image.NewRGBA(image.Rect(0, 0, texSize, texSize))
	fillRect(img, 0, 0, texSize, texSize, color.RGBA{150, 40, 40, 255})

	brickH, brickW := texSize/4, texSize/4
	for row := 0; row < texSize; row += brickH {
		offset := 0
		if (row/brickH)%2 == 1 {
			offset = brickW / 2
		}
		for col := 0; col < texSize; col += brickW {
			x := (col + offset) % texSize
			fillRect(img, x, row, x+brickW-1, row+brickH-1, color.RGBA{165, 52, 52, 255})
		}
	}

	mortar := color.RGBA{200, 200, 200, 255}
	for y := 0; y < texSize; y += brickH {
		drawLine(img, 0, y, texSize-1, y, mortar)
	}
	for x := 0; x < texSize; x += brickW {
		drawLine(img, x, 0, x, texSize-1, mortar)
	}
	return ebiten.NewImageFromImage(img)
}

func makeStoneTexture() *ebiten.Image {
	img := image.NewRGBA(image.Rect(0, 0, texSize, texSize))
	fillRect(img, 0, 0, texSize, texSize, color.RGBA{110, 110, 120, 255})

	for y := 0; y < texSize; y++ {
		for x := 0; x < texSize; x++ {
			if ((x*13+y*7)^(x*3-y*5))&15 == 0 {
				c := uint8(90 + (x*y)%40)
				img.SetRGBA(x, y, color.RGBA{c, c, c, 255})
			}
		}
	}
	for i := 0; i < 5; i++ {
		drawLine(img, i*12, 0, texSize-1, texSize-1-i*6, color.RGBA{80, 80, 85, 255})
	}
	return ebiten.NewImageFromImage(img)
}

func makeWoodTexture() *ebiten.Image {
	img := image.NewRGBA(image.Rect(0, 0, texSize, texSize))
	for y := 0; y < texSize; y++ {
		for x := 0; x < texSize; x++ {
			v := 120 + 40*math.Sin((float64(x)+float64(y)*0.5)*0.12) + 20*math.Sin(float64(y)*0.3)
			if v < 60 {
				v = 60
			}
			if v > 200 {
				v = 200
			}
			img.SetRGBA(x, y, color.RGBA{140, uint8(v), 60, 255})
		}
	}
	for x := 0; x < texSize; x += texSize / 4 {
		drawLine(img, x, 0, x, texSize-1, color.RGBA{90, 60, 30, 255})
	}
	return ebiten.NewImageFromImage(img)
}

func makeMetalTexture() *ebiten.Image {
	img := image.NewRGBA(image.Rect(0, 0, texSize, texSize))
	for y := 0; y < texSize; y++ {
		shade := uint8(130 + (y%8)*2)
		drawLine(img, 0, y, texSize-1, y, color.RGBA{shade, shade, shade + 5, 255})
	}
	// rivets
	for y := 8; y < texSize; y += 16 {
		for x := 8; x < texSize; x += 16 {
			drawCircle(img, x, y, 2, color.RGBA{90, 95, 100, 255})
		}
	}
	return ebiten.NewImageFromImage(img)
}

func makeBulletTexture() *ebiten.Image {
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	drawCircle(img, 16, 16, 8, color.RGBA{255, 240, 150, 220})
	drawCircle(img, 13, 13, 3, color.RGBA{255, 255, 255, 255})
	return ebiten.NewImageFromImage(img)
}

func makeEnemyTexture() *ebiten.Image {
	img := image.NewRGBA(image.Rect(0, 0, 256, 256))
	body := color.RGBA{60, 60, 70, 255}
	fillRect(img, 100, 80, 156, 200, body)
	drawCircle(img, 128, 70, 26, color.RGBA{220, 200, 180, 255})
	// helmet brim
	fillRect(img, 96, 44, 160, 52, color.RGBA{40, 40, 50, 255})
	// arms
	fillRect(img, 86, 110, 110, 126, body)
	fillRect(img, 146, 110, 170, 126, body)
	return ebiten.NewImageFromImage(img)
}

func makeAmmoBoxTexture() *ebiten.Image {
	img := image.NewRGBA(image.Rect(0, 0, texSize, texSize))
	olive := color.RGBA{102, 107, 72, 255}
	fillRect(img, 4, 4, 60, 60, olive)

	for y := 6; y < 58; y += 4 {
		drawLine(img, 6, y, 58, y, color.RGBA{90, 95, 65, 255})
	}

	// outline
	outline := color.RGBA{80, 85, 55, 255}
	drawLine(img, 4, 4, 59, 4, outline)
	drawLine(img, 4, 59, 59, 59, outline)
	drawLine(img, 4, 4, 4, 59, outline)
	drawLine(img, 59, 4, 59, 59, outline)

	// clasps and handle
	clasp := color.RGBA{150, 150, 140, 255}
	fillRect(img, 10, 25, 18, 39, clasp)
	fillRect(img, 46, 25, 54, 39, clasp)
	fillRect(img, 24, 8, 40, 14, color.RGBA{60, 65, 45, 255})
	fillRect(img, 22, 10, 42, 12, clasp)

	// stenciled AMMO
	ink := color.RGBA{30, 30, 25, 255}
	drawLine(img, 20, 45, 24, 38, ink)
	drawLine(img, 24, 38, 28, 45, ink)
	drawLine(img, 22, 42, 26, 42, ink)
	drawLine(img, 30, 38, 30, 45, ink)
	drawLine(img, 30, 38, 33, 42, ink)
	drawLine(img, 33, 42, 36, 38, ink)
	drawLine(img, 36, 38, 36, 45, ink)
	drawCircle(img, 44, 42, 4, ink)
	drawCircle(img, 44, 42, 2, olive)

	// weathering scratches
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 5; i++ {
		x := 8 + rng.Intn(48)
		y := 8 + rng.Intn(48)
		length := 3 + rng.Intn(6)
		angle := rng.Float64() * 2 * math.Pi
		ex := x + int(math.Cos(angle)*float64(length))
		ey := y + int(math.Sin(angle)*float64(length))
		drawLine(img, x, y, ex, ey, color.RGBA{120, 125, 90, 255})
	}
	return ebiten.NewImageFromImage(img)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
