package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var (
	ErrGridTooSmall       = errors.New("grid_size must be at least 3")
	ErrInvalidCellSize    = errors.New("cell_size must be positive")
	ErrInvalidGhostSpeed  = errors.New("ghost_speed must be positive")
	ErrNegativeGhostCount = errors.New("ghost_count must not be negative")
	ErrNegativeDotReward  = errors.New("dot_reward must not be negative")
)

const (
	minGridSize   = 3
	configDirName = "pacman"
)

// Config holds the tunable game parameters. A zero Seed means the maze and
// ghosts are seeded from the clock.
type Config struct {
	GridSize   int     `yaml:"grid_size"`
	CellSize   int     `yaml:"cell_size"`
	GhostCount int     `yaml:"ghost_count"`
	GhostSpeed float64 `yaml:"ghost_speed"`
	DotReward  int     `yaml:"dot_reward"`
	Title      string  `yaml:"title"`
	Seed       int64   `yaml:"seed"`
	LogLevel   string  `yaml:"log_level"`
	Audio      bool    `yaml:"audio"`
	BestScore  bool    `yaml:"best_score"`
	DataDir    string  `yaml:"data_dir"`
}

func Default() Config {
	return Config{
		GridSize:   15,
		CellSize:   40,
		GhostCount: 4,
		GhostSpeed: 2.0,
		DotReward:  10,
		Title:      "PACMAN CLONE",
		LogLevel:   "info",
		BestScore:  true,
	}
}

// Load reads the YAML file at path on top of the defaults, then applies
// PACMAN_* environment overrides and validates the result. A missing file is
// not an error; an empty path skips the file entirely.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.readFile(path); err != nil {
			return Config{}, err
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.WithMessage(err, "open config")
	}
	defer func() {
		_ = file.Close()
	}()
	if err := yaml.NewDecoder(file).Decode(c); err != nil {
		return errors.Wrapf(err, "decode config %s", path)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.GridSize = getEnvInt("PACMAN_GRID_SIZE", c.GridSize)
	c.CellSize = getEnvInt("PACMAN_CELL_SIZE", c.CellSize)
	c.GhostCount = getEnvInt("PACMAN_GHOSTS", c.GhostCount)
	c.GhostSpeed = getEnvFloat("PACMAN_GHOST_SPEED", c.GhostSpeed)
	c.Seed = int64(getEnvInt("PACMAN_SEED", int(c.Seed)))
	c.LogLevel = getEnv("PACMAN_LOG_LEVEL", c.LogLevel)
	c.DataDir = getEnv("PACMAN_CONFIG_DIR", c.DataDir)
	switch os.Getenv("PACMAN_ENABLE_AUDIO") {
	case "1":
		c.Audio = true
	case "0":
		c.Audio = false
	}
	if os.Getenv("PACMAN_DISABLE_AUDIO") == "1" {
		c.Audio = false
	}
}

func (c Config) Validate() error {
	switch {
	case c.GridSize < minGridSize:
		return errors.WithMessagef(ErrGridTooSmall, "got %d", c.GridSize)
	case c.CellSize <= 0:
		return errors.WithMessagef(ErrInvalidCellSize, "got %d", c.CellSize)
	case c.GhostSpeed <= 0:
		return errors.WithMessagef(ErrInvalidGhostSpeed, "got %v", c.GhostSpeed)
	case c.GhostCount < 0:
		return errors.WithMessagef(ErrNegativeGhostCount, "got %d", c.GhostCount)
	case c.DotReward < 0:
		return errors.WithMessagef(ErrNegativeDotReward, "got %d", c.DotReward)
	}
	return nil
}

// GhostInterval is the minimum time between two ghost steps.
func (c Config) GhostInterval() time.Duration {
	return time.Duration(1000/c.GhostSpeed) * time.Millisecond
}

// ScreenSize is the side of the square window in pixels.
func (c Config) ScreenSize() int {
	return c.GridSize * c.CellSize
}

// ResolveSeed returns Seed, or a clock-derived seed when Seed is 0.
func (c Config) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// DataPath returns the directory holding persisted game data, creating it if
// needed. Defaults to UserConfigDir()/pacman.
func (c Config) DataPath() (string, error) {
	dir := c.DataDir
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return "", errors.WithMessage(err, "user config dir")
		}
		dir = filepath.Join(base, configDirName)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.WithMessage(err, "create data dir")
	}
	return dir, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
