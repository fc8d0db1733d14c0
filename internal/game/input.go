package game

import (
	"pacman/internal/entities"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Keys is the set of movement keys held down this frame.
type Keys uint8

const (
	KeyUp Keys = 1 << iota
	KeyDown
	KeyLeft
	KeyRight
)

// Direction resolves the held keys with a fixed priority:
// Up, then Down, then Left, then Right.
func (k Keys) Direction() entities.Direction {
	switch {
	case k&KeyUp != 0:
		return entities.DirUp
	case k&KeyDown != 0:
		return entities.DirDown
	case k&KeyLeft != 0:
		return entities.DirLeft
	case k&KeyRight != 0:
		return entities.DirRight
	default:
		return entities.DirNone
	}
}

// Input is everything the shell reads from the keyboard in one frame.
type Input struct {
	Move       Keys
	Pause      bool
	Fullscreen bool
	Quit       bool
}

var moveBindings = []struct {
	key  ebiten.Key
	move Keys
}{
	{ebiten.KeyArrowUp, KeyUp},
	{ebiten.KeyW, KeyUp},
	{ebiten.KeyArrowDown, KeyDown},
	{ebiten.KeyS, KeyDown},
	{ebiten.KeyArrowLeft, KeyLeft},
	{ebiten.KeyA, KeyLeft},
	{ebiten.KeyArrowRight, KeyRight},
	{ebiten.KeyD, KeyRight},
}

func readInput() Input {
	var in Input
	for _, b := range moveBindings {
		if ebiten.IsKeyPressed(b.key) {
			in.Move |= b.move
		}
	}
	in.Pause = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	in.Fullscreen = inpututil.IsKeyJustPressed(ebiten.KeyF)
	in.Quit = inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	return in
}
