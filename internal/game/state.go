package game

import (
	"math/rand"
	"time"

	"pacman/internal/config"
	"pacman/internal/entities"
	tm "pacman/internal/tilemap"

	"github.com/pkg/errors"
)

type Phase int

const (
	PhasePlaying Phase = iota
	PhasePaused
)

func (p Phase) String() string {
	if p == PhasePaused {
		return "paused"
	}
	return "playing"
}

// Outcome reports what a single Update did.
type Outcome struct {
	Moved     bool
	AteDot    bool
	Restarted bool

	// FinalScore is the score of the session that a restart just ended.
	FinalScore int
}

// State is the whole simulation: maze, player, ghosts and score. It is
// driven by Update once per frame and never touches the engine directly.
type State struct {
	cfg      config.Config
	interval time.Duration
	rng      *rand.Rand

	tileMap *tm.TileMap
	player  entities.Player
	ghosts  []*entities.Ghost
	score   int
	session int

	phase    Phase
	pausedAt time.Time
}

// NewState validates cfg and starts the first session at now.
func NewState(cfg config.Config, rng *rand.Rand, now time.Time) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.WithMessage(err, "invalid config")
	}
	if rng == nil {
		return nil, errors.New("nil random source")
	}
	s := &State{cfg: cfg, interval: cfg.GhostInterval(), rng: rng}
	if err := s.restart(now); err != nil {
		return nil, err
	}
	return s, nil
}

// restart replaces the session wholesale: new maze, new ghosts, player back
// on the center cell, score zero. The phase is left as Playing.
func (s *State) restart(now time.Time) error {
	m, err := tm.Generate(s.cfg.GridSize, s.rng)
	if err != nil {
		return errors.WithMessage(err, "generate maze")
	}
	cx, cy := m.Center()
	s.tileMap = m
	s.player = entities.Player{X: cx, Y: cy}
	s.ghosts = s.placeGhosts(now)
	s.score = 0
	s.session++
	s.phase = PhasePlaying
	s.pausedAt = time.Time{}
	return nil
}

// placeGhosts drops each ghost on a uniformly random empty cell. Ghosts may
// share a cell. The spawn cross is always empty, so sampling terminates.
func (s *State) placeGhosts(now time.Time) []*entities.Ghost {
	ghosts := make([]*entities.Ghost, 0, s.cfg.GhostCount)
	for i := 0; i < s.cfg.GhostCount; i++ {
		var x, y int
		for {
			x = s.rng.Intn(s.tileMap.Width)
			y = s.rng.Intn(s.tileMap.Height)
			if s.tileMap.At(x, y) == tm.TileEmpty {
				break
			}
		}
		ghosts = append(ghosts, entities.NewGhost(x, y, now))
	}
	return ghosts
}

// Update advances one frame. Ghosts move first; if any ghost lands on the
// player the session restarts and the frame ends there. Otherwise the
// highest-priority pressed key moves the player one cell.
func (s *State) Update(keys Keys, now time.Time) (Outcome, error) {
	if s.phase == PhasePaused {
		return Outcome{}, nil
	}
	for _, gh := range s.ghosts {
		gh.Update(s.tileMap, now, s.interval, s.rng)
		if s.caughtBy(gh) {
			final := s.score
			if err := s.restart(now); err != nil {
				return Outcome{}, err
			}
			return Outcome{Restarted: true, FinalScore: final}, nil
		}
	}
	return s.movePlayer(keys.Direction()), nil
}

// TogglePause flips between Playing and Paused. Ghost timers are shifted by
// the paused duration so no ghost jumps on resume.
func (s *State) TogglePause(now time.Time) Phase {
	switch s.phase {
	case PhasePlaying:
		s.phase = PhasePaused
		s.pausedAt = now
	case PhasePaused:
		held := now.Sub(s.pausedAt)
		for _, gh := range s.ghosts {
			gh.LastMove = gh.LastMove.Add(held)
		}
		s.phase = PhasePlaying
		s.pausedAt = time.Time{}
	}
	return s.phase
}

func (s *State) Phase() Phase { return s.phase }
func (s *State) Score() int { return s.score }
func (s *State) Session() int { return s.session }
func (s *State) Player() entities.Player { return s.player }
func (s *State) TileMap() *tm.TileMap { return s.tileMap }
func (s *State) Ghosts() []*entities.Ghost { return s.ghosts }
