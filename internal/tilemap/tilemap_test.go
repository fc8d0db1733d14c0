package tilemap

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDimensions(t *testing.T) {
	m, err := Generate(15, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, 15, m.Width)
	assert.Equal(t, 15, m.Height)
	require.Len(t, m.Tiles, 15)
	for y := range m.Tiles {
		assert.Len(t, m.Tiles[y], 15)
	}
}

func TestGenerateRejectsTinyGrid(t *testing.T) {
	for _, size := range []int{-1, 0, 1, 2} {
		_, err := Generate(size, rand.New(rand.NewSource(1)))
		assert.True(t, errors.Is(err, ErrGridTooSmall), "size %d", size)
	}
	_, err := Generate(MinSize, rand.New(rand.NewSource(1)))
	assert.NoError(t, err)
}

func TestGenerateClearsSpawnCross(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		m, err := Generate(15, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		for _, c := range [][2]int{{7, 7}, {7, 6}, {7, 8}, {6, 7}, {8, 7}} {
			assert.Equal(t, TileEmpty, m.At(c[0], c[1]), "seed %d cell %v", seed, c)
		}
	}
}

func TestGenerateWallsOnlyOnStride(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		m, err := Generate(21, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		for y := 0; y < m.Height; y++ {
			for x := 0; x < m.Width; x++ {
				if m.Tiles[y][x] == TileWall {
					assert.True(t, x%WallStride == 0 || y%WallStride == 0,
						"seed %d: wall off stride at %d,%d", seed, x, y)
				}
			}
		}
	}
}

func TestGenerateIsDeterministicForSeed(t *testing.T) {
	a, err := Generate(15, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	b, err := Generate(15, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	assert.Equal(t, a.Tiles, b.Tiles)
}

func TestEatDotAt(t *testing.T) {
	m := Parse([]string{
		"#.#",
		". .",
		"###",
	})
	assert.True(t, m.EatDotAt(1, 0))
	assert.Equal(t, TileEmpty, m.At(1, 0))
	assert.False(t, m.EatDotAt(1, 0), "dot already eaten")
	assert.False(t, m.EatDotAt(1, 1), "empty cell")
	assert.False(t, m.EatDotAt(0, 0), "wall cell")
	assert.False(t, m.EatDotAt(-1, 5), "out of bounds")
}

func TestIsWallBounds(t *testing.T) {
	m := Parse([]string{"...", "...", "..."})
	if !m.IsWall(-1, 0) || !m.IsWall(0, -1) || !m.IsWall(m.Width, 0) || !m.IsWall(0, m.Height) {
		t.Fatalf("out-of-bounds should be treated as wall")
	}
	assert.False(t, m.IsWall(1, 1))
}

func TestParseAndCount(t *testing.T) {
	m := Parse([]string{
		"#.#",
		".",
		"# #",
	})
	assert.Equal(t, 3, m.Width)
	assert.Equal(t, 3, m.Height)
	assert.Equal(t, 4, m.Count(TileWall))
	assert.Equal(t, 2, m.Count(TileDot))
	assert.Equal(t, 3, m.Count(TileEmpty))
}

func TestTileString(t *testing.T) {
	assert.Equal(t, "wall", TileWall.String())
	assert.Equal(t, "dot", TileDot.String())
	assert.Equal(t, "empty", TileEmpty.String())
}
