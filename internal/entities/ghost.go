package entities

import (
	"math"
	"math/rand"
	"time"

	tm "pacman/internal/tilemap"
)

// ghostDirs is the order candidate moves are considered in.
var ghostDirs = [...]Direction{DirRight, DirLeft, DirDown, DirUp}

type Ghost struct {
	X, Y     float64
	Dir      Direction
	LastMove time.Time
}

func NewGhost(x, y int, now time.Time) *Ghost {
	return &Ghost{X: float64(x), Y: float64(y), Dir: DirRight, LastMove: now}
}

// Cell returns the grid cell the ghost occupies.
func (g *Ghost) Cell() (int, int) {
	return int(math.Round(g.X)), int(math.Round(g.Y))
}

// Update moves the ghost one cell in a random open direction once interval
// has elapsed since its last move. A ghost boxed in on all four sides keeps
// its direction and stays put. LastMove is reset whenever the interval has
// elapsed, moved or not. Reports whether the ghost changed cell.
func (g *Ghost) Update(m *tm.TileMap, now time.Time, interval time.Duration, rng *rand.Rand) bool {
	if now.Sub(g.LastMove) < interval {
		return false
	}
	g.LastMove = now

	gx, gy := g.Cell()
	available := make([]Direction, 0, len(ghostDirs))
	for _, d := range ghostDirs {
		dx, dy := DirDelta(d)
		if !m.IsWall(gx+dx, gy+dy) {
			available = append(available, d)
		}
	}
	if len(available) == 0 {
		return false
	}
	g.Dir = available[rng.Intn(len(available))]
	dx, dy := DirDelta(g.Dir)
	g.X += float64(dx)
	g.Y += float64(dy)
	return true
}
