package game

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

const (
	bestScoreTxtFN  = "highscore.txt"  // legacy
	bestScoreJSONFN = "highscore.json" // current
)

var (
	json = jsoniter.ConfigCompatibleWithStandardLibrary

	errNegativeScore = errors.New("score must be non-negative")
)

// BestScoreRecord is the best score reached in any session so far.
type BestScoreRecord struct {
	Score   int       `json:"score"`
	Session string    `json:"session"`
	At      time.Time `json:"at"`
}

// BestScoreStore keeps a single BestScoreRecord in a directory.
type BestScoreStore struct {
	dir string
}

func NewBestScoreStore(dir string) *BestScoreStore {
	return &BestScoreStore{dir: dir}
}

func (s *BestScoreStore) path() string {
	return filepath.Join(s.dir, bestScoreJSONFN)
}

// Load returns the stored record, or nil if nothing has been saved yet.
// Falls back to the legacy plain-text file holding just the score.
func (s *BestScoreStore) Load() (*BestScoreRecord, error) {
	data, err := os.ReadFile(s.path())
	switch {
	case err == nil:
		var rec BestScoreRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, errors.Wrapf(err, "decode %s", s.path())
		}
		return &rec, nil
	case !os.IsNotExist(err):
		return nil, errors.WithMessage(err, "read best score")
	}

	f, err := os.Open(filepath.Join(s.dir, bestScoreTxtFN))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WithMessage(err, "open legacy best score")
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return nil, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil || n < 0 {
		return nil, nil
	}
	return &BestScoreRecord{Score: n}, nil
}

// Save writes rec if it beats the stored score. The file is replaced
// atomically. Reports whether anything was written.
func (s *BestScoreStore) Save(rec BestScoreRecord) (bool, error) {
	if rec.Score < 0 {
		return false, errNegativeScore
	}
	current, err := s.Load()
	if err != nil {
		return false, err
	}
	if current != nil && current.Score >= rec.Score {
		return false, nil
	}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return false, errors.WithMessage(err, "encode best score")
	}
	tmp := s.path() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return false, errors.WithMessage(err, "write best score")
	}
	if err := os.Rename(tmp, s.path()); err != nil {
		return false, errors.WithMessage(err, "replace best score")
	}
	return true, nil
}
