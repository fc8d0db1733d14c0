package game

import (
	"testing"
	"time"

	"pacman/internal/config"
	"pacman/internal/entities"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeShell drives a Game with scripted input and a manual clock.
type fakeShell struct {
	in  Input
	now time.Time
}

func newTestGame(t *testing.T) (*Game, *fakeShell) {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 7
	cfg.DataDir = t.TempDir()
	g, err := New(cfg, zap.NewNop())
	require.NoError(t, err)
	fs := &fakeShell{now: epoch}
	g.now = func() time.Time { return fs.now }
	g.input = func() Input { return fs.in }
	return g, fs
}

func TestScreenDimensions(t *testing.T) {
	g, _ := newTestGame(t)
	assert.Equal(t, 600, g.ScreenWidth())
	assert.Equal(t, 600, g.ScreenHeight())
	w, h := g.Layout(0, 0)
	assert.Equal(t, g.ScreenWidth(), w)
	assert.Equal(t, g.ScreenHeight(), h)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.CellSize = 0
	_, err := New(cfg, zap.NewNop())
	assert.Error(t, err)
}

func TestUpdateMovesPlayer(t *testing.T) {
	g, fs := newTestGame(t)
	useMaze(g.state, 1, 1,
		"   ",
		" ..",
		"   ",
	)
	fs.in = Input{Move: KeyRight}
	require.NoError(t, g.Update())
	assert.Equal(t, entities.Player{X: 2, Y: 1}, g.state.Player())
	assert.Equal(t, 10, g.state.Score())
	assert.Equal(t, 10, g.best, "best tracks the running score")
}

func TestUpdatePauseToggle(t *testing.T) {
	g, fs := newTestGame(t)
	useMaze(g.state, 1, 1,
		"   ",
		"   ",
		"   ",
	)
	fs.in = Input{Pause: true, Move: KeyUp}
	require.NoError(t, g.Update())
	assert.Equal(t, PhasePaused, g.state.Phase())
	assert.Equal(t, entities.Player{X: 1, Y: 1}, g.state.Player())

	var texts []string
	for _, l := range g.overlay() {
		texts = append(texts, l.Text)
	}
	assert.Contains(t, texts, "PAUSED")

	fs.in = Input{Pause: true}
	require.NoError(t, g.Update())
	assert.Equal(t, PhasePlaying, g.state.Phase())
}

func TestRestartPersistsBestScore(t *testing.T) {
	g, fs := newTestGame(t)
	firstSession := g.sessionID
	g.state.score = 70
	p := g.state.Player()
	g.state.ghosts = []*entities.Ghost{entities.NewGhost(p.X, p.Y, fs.now)}

	require.NoError(t, g.Update())
	assert.Equal(t, 2, g.state.Session())
	assert.NotEqual(t, firstSession, g.sessionID)
	assert.Equal(t, 70, g.best)

	rec, err := g.store.Load()
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, 70, rec.Score)
	assert.Equal(t, firstSession, rec.Session)
}

func TestQuitTerminatesAndSaves(t *testing.T) {
	g, fs := newTestGame(t)
	g.state.score = 30
	fs.in = Input{Quit: true}
	assert.ErrorIs(t, g.Update(), ebiten.Termination)

	rec, err := g.store.Load()
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, 30, rec.Score)

	// Close after a quit does not log or save a second time.
	g.state.score = 50
	g.Close()
	rec, err = g.store.Load()
	require.NoError(t, err)
	assert.Equal(t, 30, rec.Score)
}

func TestBestScoreLoadedOnStart(t *testing.T) {
	dir := t.TempDir()
	_, err := NewBestScoreStore(dir).Save(BestScoreRecord{Score: 500, Session: "old"})
	require.NoError(t, err)

	cfg := config.Default()
	cfg.DataDir = dir
	g, err := New(cfg, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 500, g.best)
	require.NotEmpty(t, g.overlay())
	assert.Equal(t, "Best: 500", g.overlay()[0].Text)
}

func TestBestScoreDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.BestScore = false
	cfg.DataDir = t.TempDir()
	g, err := New(cfg, zap.NewNop())
	require.NoError(t, err)
	assert.Nil(t, g.store)
	assert.Empty(t, g.overlay())
}
