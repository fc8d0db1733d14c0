package game

import (
	"pacman/internal/entities"
	tm "pacman/internal/tilemap"
)

// movePlayer steps the player one cell in dir unless the target collides.
// Landing on a dot eats it and scores DotReward.
func (s *State) movePlayer(dir entities.Direction) Outcome {
	if dir == entities.DirNone {
		return Outcome{}
	}
	nx, ny := s.player.Next(dir)
	if s.CheckCollision(nx, ny) {
		return Outcome{}
	}
	s.player.X, s.player.Y = nx, ny
	out := Outcome{Moved: true}
	if s.tileMap.EatDotAt(nx, ny) {
		s.score += s.cfg.DotReward
		out.AteDot = true
	}
	return out
}

// CheckCollision reports whether (x, y) is outside the maze or a wall.
func (s *State) CheckCollision(x, y int) bool {
	if !s.tileMap.InBounds(x, y) {
		return true
	}
	return s.tileMap.At(x, y) == tm.TileWall
}

// caughtBy compares the ghost's rounded cell with the player's cell.
func (s *State) caughtBy(gh *entities.Ghost) bool {
	gx, gy := gh.Cell()
	return gx == s.player.X && gy == s.player.Y
}
