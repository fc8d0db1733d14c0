package game

import (
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"pacman/internal/config"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/image/font/basicfont"
)

// Game adapts State to ebiten.Game: it samples the keyboard, advances the
// state, draws the scene and handles the shell keys (pause, fullscreen,
// quit). It also tracks the best score across sessions.
type Game struct {
	cfg    config.Config
	state  *State
	logger *zap.Logger
	audio  *AudioManager
	store  *BestScoreStore

	sessionID string
	started   time.Time
	best      int

	fullscreen bool
	quitting   bool

	now   func() time.Time
	input func() Input
}

// New builds a game from cfg. Best-score persistence problems are logged
// and disable the feature; they never prevent the game from starting.
func New(cfg config.Config, logger *zap.Logger) (*Game, error) {
	seed := cfg.ResolveSeed()
	g := &Game{
		cfg:    cfg,
		logger: logger,
		audio:  NewAudioManager(cfg.Audio),
		now:    time.Now,
		input:  readInput,
	}
	state, err := NewState(cfg, rand.New(rand.NewSource(seed)), g.now())
	if err != nil {
		return nil, errors.WithMessage(err, "new state")
	}
	g.state = state

	if cfg.BestScore {
		g.loadBestScore()
	}
	g.startSession()
	logger.Info("game created",
		zap.Int64("seed", seed),
		zap.Int("grid", cfg.GridSize),
		zap.Int("ghosts", cfg.GhostCount),
		zap.Duration("ghost_interval", cfg.GhostInterval()),
	)
	return g, nil
}

func (g *Game) loadBestScore() {
	dir, err := g.cfg.DataPath()
	if err != nil {
		g.logger.Warn("best score disabled", zap.Error(err))
		return
	}
	g.store = NewBestScoreStore(dir)
	rec, err := g.store.Load()
	if err != nil {
		g.logger.Warn("failed to load best score", zap.Error(err))
		return
	}
	if rec != nil {
		g.best = rec.Score
	}
}

func (g *Game) startSession() {
	g.sessionID = uuid.NewString()
	g.started = g.now()
	g.logger.Debug("session started",
		zap.String("session", g.sessionID),
		zap.Int("number", g.state.Session()),
	)
}

func (g *Game) ScreenWidth() int  { return g.cfg.ScreenSize() }
func (g *Game) ScreenHeight() int { return g.cfg.ScreenSize() }

func (g *Game) Update() error {
	in := g.input()
	now := g.now()
	if in.Quit {
		g.quitting = true
		g.endSession(g.state.Score(), "quit")
		return ebiten.Termination
	}
	if in.Fullscreen {
		g.fullscreen = !g.fullscreen
		ebiten.SetFullscreen(g.fullscreen)
	}
	if in.Pause {
		phase := g.state.TogglePause(now)
		g.logger.Debug("phase changed", zap.Stringer("phase", phase))
	}

	out, err := g.state.Update(in.Move, now)
	if err != nil {
		return errors.WithMessage(err, "update state")
	}
	switch {
	case out.Restarted:
		g.endSession(out.FinalScore, "caught")
		g.playCue(g.audio.PlayRestart)
		g.startSession()
	case out.AteDot:
		g.playCue(g.audio.PlayDot)
	}
	if s := g.state.Score(); s > g.best {
		g.best = s
	}
	return nil
}

// endSession logs the finished session and persists its score if it is a
// new best.
func (g *Game) endSession(score int, reason string) {
	g.logger.Info("session ended",
		zap.String("session", g.sessionID),
		zap.String("reason", reason),
		zap.Int("score", score),
		zap.Duration("played", g.now().Sub(g.started)),
	)
	if score > g.best {
		g.best = score
	}
	if g.store == nil || score <= 0 {
		return
	}
	saved, err := g.store.Save(BestScoreRecord{Score: score, Session: g.sessionID, At: g.now()})
	if err != nil {
		g.logger.Warn("failed to save best score", zap.Error(err))
		return
	}
	if saved {
		g.logger.Info("new best score", zap.Int("score", score))
	}
}

func (g *Game) playCue(play func() error) {
	if err := play(); err != nil {
		g.logger.Debug("audio cue failed", zap.Error(err))
	}
}

// overlay returns the shell's text lines drawn after the state's scene.
func (g *Game) overlay() []Label {
	var labels []Label
	if g.cfg.BestScore {
		labels = append(labels, Label{Text: fmt.Sprintf("Best: %d", g.best), X: 10, Y: 26, Color: hudColor})
	}
	if g.state.Phase() == PhasePaused {
		msg := "PAUSED"
		w := len(msg) * 7 // basicfont.Face7x13 is 7 pixels wide per character
		labels = append(labels, Label{Text: msg, X: (g.ScreenWidth() - w) / 2, Y: g.ScreenHeight() / 2, Color: dotColor})
	}
	return labels
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	sc := g.state.Scene()
	for _, sh := range sc.Shapes {
		switch sh.Kind {
		case ShapeRect:
			vector.DrawFilledRect(screen, sh.X, sh.Y, sh.W, sh.H, sh.Color, false)
		case ShapeCircle:
			vector.DrawFilledCircle(screen, sh.X, sh.Y, sh.R, sh.Color, true)
		}
	}
	face := basicfont.Face7x13
	ascent := face.Metrics().Ascent.Ceil()
	for _, l := range append(sc.Labels, g.overlay()...) {
		text.Draw(screen, l.Text, face, l.X, l.Y+ascent, l.Color)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.ScreenWidth(), g.ScreenHeight()
}

// Close persists the running session's score. Called once RunGame returns.
func (g *Game) Close() {
	if !g.quitting && g.state.Score() > 0 {
		g.endSession(g.state.Score(), "closed")
	}
}
