package game

import (
	"fmt"
	"image/color"

	tm "pacman/internal/tilemap"
)

const dotRadius = 5

var (
	wallColor   = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	dotColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ghostColor  = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	playerColor = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	hudColor    = playerColor
)

type ShapeKind int

const (
	ShapeRect ShapeKind = iota
	ShapeCircle
)

// Shape is a filled primitive in screen pixels. Rects use X, Y, W, H with
// X, Y as the top-left corner; circles use X, Y as the center and R.
type Shape struct {
	Kind  ShapeKind
	X, Y  float32
	W, H  float32
	R     float32
	Color color.RGBA
}

// Label is a line of text whose top-left corner sits at X, Y.
type Label struct {
	Text  string
	X, Y  int
	Color color.RGBA
}

// Scene is one frame's worth of drawing, back to front.
type Scene struct {
	Shapes []Shape
	Labels []Label
}

// Scene lays out the current state in pixels: walls and dots first, then
// ghosts, then the player and the score line.
func (s *State) Scene() Scene {
	cell := float32(s.cfg.CellSize)
	half := cell / 2
	var sc Scene

	m := s.tileMap
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			px, py := float32(x)*cell, float32(y)*cell
			switch m.Tiles[y][x] {
			case tm.TileWall:
				sc.Shapes = append(sc.Shapes, Shape{Kind: ShapeRect, X: px, Y: py, W: cell, H: cell, Color: wallColor})
			case tm.TileDot:
				sc.Shapes = append(sc.Shapes, Shape{Kind: ShapeCircle, X: px + half, Y: py + half, R: dotRadius, Color: dotColor})
			}
		}
	}

	for _, gh := range s.ghosts {
		sc.Shapes = append(sc.Shapes, Shape{
			Kind:  ShapeCircle,
			X:     float32(gh.X)*cell + half,
			Y:     float32(gh.Y)*cell + half,
			R:     half,
			Color: ghostColor,
		})
	}

	sc.Shapes = append(sc.Shapes, Shape{
		Kind:  ShapeCircle,
		X:     float32(s.player.X)*cell + half,
		Y:     float32(s.player.Y)*cell + half,
		R:     half,
		Color: playerColor,
	})

	sc.Labels = append(sc.Labels, Label{Text: fmt.Sprintf("Score: %d", s.score), X: 10, Y: 10, Color: hudColor})
	return sc
}
