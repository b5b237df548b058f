// Package grid holds the static world map: a rectangular table of cells
// where 0 is traversable floor and any positive value is a wall carrying
// that value as its material id.
package grid

import (
	"fmt"
	"math/rand"

	"github.com/harbdog/raycaster-go/geom"
)

// Map is an immutable row-major cell table.
type Map struct {
	cells  [][]int
	width  int
	height int
}

// NewMap validates and wraps a cell table. Rows must all be the same
// length and every cell must be non-negative; anything else corrupts the
// ray caster's termination guarantee, so it is rejected here instead of
// tolerated later.
func NewMap(cells [][]int) (*Map, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, fmt.Errorf("grid: map must have at least one row and column")
	}
	width := len(cells[0])
	for y, row := range cells {
		if len(row) != width {
			return nil, fmt.Errorf("grid: row %d has %d cells, want %d", y, len(row), width)
		}
		for x, c := range row {
			if c < 0 {
				return nil, fmt.Errorf("grid: negative cell value %d at (%d,%d)", c, x, y)
			}
		}
	}
	return &Map{cells: cells, width: width, height: len(cells)}, nil
}

func (m *Map) Width() int  { return m.width }
func (m *Map) Height() int { return m.height }

// InBounds reports whether the cell coordinate lies inside the map.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// At returns the material id at the cell, or 0 outside the map.
func (m *Map) At(x, y int) int {
	if !m.InBounds(x, y) {
		return 0
	}
	return m.cells[y][x]
}

// IsWall reports whether the cell is inside the map and occupied.
func (m *Map) IsWall(x, y int) bool {
	return m.InBounds(x, y) && m.cells[y][x] > 0
}

// RandomFloorCell picks a random non-wall position at least minDist away
// from avoid. The caller supplies the RNG so placement stays deterministic
// under test.
func (m *Map) RandomFloorCell(rng *rand.Rand, avoid geom.Vector2, minDist float64) geom.Vector2 {
	for {
		x := 1.5 + rng.Float64()*(float64(m.width)-3.0)
		y := 1.5 + rng.Float64()*(float64(m.height)-3.0)
		if m.IsWall(int(x), int(y)) {
			continue
		}
		if geom.Distance(x, y, avoid.X, avoid.Y) > minDist {
			return geom.Vector2{X: x, Y: y}
		}
	}
}

// DefaultMap returns the built-in 20x20 arena: closed border of material 1
// with pillar rooms of materials 2-4.
func DefaultMap() *Map {
	cells := [][]int{
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 3, 0, 0, 0, 0, 0, 4, 0, 1},
		{1, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 3, 0, 0, 0, 0, 0, 4, 0, 1},
		{1, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 3, 0, 0, 0, 0, 0, 4, 0, 1},
		{1, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 3, 0, 0, 0, 0, 0, 4, 0, 1},
		{1, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 3, 0, 0, 0, 0, 0, 4, 0, 1},
		{1, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 3, 0, 0, 0, 0, 0, 4, 0, 1},
		{1, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 3, 0, 0, 0, 0, 0, 4, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 2, 2, 2, 2, 2, 0, 0, 0, 0, 3, 3, 3, 0, 0, 4, 4, 4, 1},
		{1, 0, 0, 0, 0, 0, 2, 0, 0, 0, 0, 3, 0, 0, 0, 0, 4, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 2, 0, 0, 0, 0, 3, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 2, 0, 0, 0, 0, 3, 0, 0, 0, 0, 4, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 2, 0, 0, 0, 0, 3, 0, 0, 0, 0, 4, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 2, 0, 0, 0, 0, 3, 0, 0, 0, 0, 4, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 2, 0, 0, 0, 0, 3, 0, 0, 0, 0, 4, 0, 0, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	}
	m, err := NewMap(cells)
	if err != nil {
		// the literal above is verified rectangular
		panic(err)
	}
	return m
}
