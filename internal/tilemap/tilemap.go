package tilemap

import (
	"math/rand"

	"github.com/pkg/errors"
)

type Tile int

const (
	TileEmpty Tile = iota
	TileWall
	TileDot
)

func (t Tile) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TileDot:
		return "dot"
	default:
		return "empty"
	}
}

const (
	// WallStride is the period of the rows and columns that may hold walls.
	WallStride = 3

	// MinSize keeps the spawn cross around the center inside the grid.
	MinSize = 3
)

var ErrGridTooSmall = errors.New("grid size must be at least 3")

// TileMap is a square grid of tiles indexed as Tiles[y][x].
type TileMap struct {
	Width  int
	Height int
	Tiles  [][]Tile
}

// Generate builds a random maze of size×size cells. Walls only appear on
// rows or columns that are multiples of WallStride; the center cell and its
// four neighbours are always left empty so the player can spawn there.
func Generate(size int, rng *rand.Rand) (*TileMap, error) {
	if size < MinSize {
		return nil, errors.WithMessagef(ErrGridTooSmall, "got %d", size)
	}
	grid := make([][]Tile, size)
	for y := range grid {
		grid[y] = make([]Tile, size)
	}
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			if (x%WallStride == 0 || y%WallStride == 0) && rng.Intn(3) == 0 {
				grid[y][x] = TileWall
			} else if rng.Intn(2) == 0 {
				grid[y][x] = TileDot
			}
		}
	}
	m := &TileMap{Width: size, Height: size, Tiles: grid}
	m.clearSpawn()
	return m, nil
}

// Parse builds a map from rows of '#' (wall), '.' (dot) and anything else
// (empty). Rows shorter than the first are padded with empty tiles.
func Parse(lines []string) *TileMap {
	h := len(lines)
	w := 0
	if h > 0 {
		w = len(lines[0])
	}
	grid := make([][]Tile, h)
	for y := 0; y < h; y++ {
		grid[y] = make([]Tile, w)
		for x := 0; x < w && x < len(lines[y]); x++ {
			switch lines[y][x] {
			case '#':
				grid[y][x] = TileWall
			case '.':
				grid[y][x] = TileDot
			}
		}
	}
	return &TileMap{Width: w, Height: h, Tiles: grid}
}

func (m *TileMap) clearSpawn() {
	cx, cy := m.Center()
	m.Tiles[cy][cx] = TileEmpty
	m.Tiles[cy-1][cx] = TileEmpty
	m.Tiles[cy+1][cx] = TileEmpty
	m.Tiles[cy][cx-1] = TileEmpty
	m.Tiles[cy][cx+1] = TileEmpty
}

// Center returns the spawn cell, rounded down.
func (m *TileMap) Center() (int, int) {
	return m.Width / 2, m.Height / 2
}

func (m *TileMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns the tile at (x, y). Out-of-bounds cells read as walls.
func (m *TileMap) At(x, y int) Tile {
	if !m.InBounds(x, y) {
		return TileWall
	}
	return m.Tiles[y][x]
}

func (m *TileMap) IsWall(x, y int) bool {
	return m.At(x, y) == TileWall
}

// EatDotAt clears a dot at (x, y) and reports whether there was one.
func (m *TileMap) EatDotAt(x, y int) bool {
	if !m.InBounds(x, y) || m.Tiles[y][x] != TileDot {
		return false
	}
	m.Tiles[y][x] = TileEmpty
	return true
}

// Count returns how many cells hold the given tile.
func (m *TileMap) Count(t Tile) int {
	n := 0
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.Tiles[y][x] == t {
				n++
			}
		}
	}
	return n
}
