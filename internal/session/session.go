package session

import (
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper/internal/mines"
)

// CheatPassword unlocks [Session.OnCheatAttempt]. It is a toy, not a secret.
const CheatPassword = "letmein"

func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// Frame is everything a front end needs to draw the board.
type Frame struct {
	Rows    int              `json:"rows"`
	Cols    int              `json:"cols"`
	Outcome mines.Outcome    `json:"outcome"`
	Cells   []mines.CellView `json:"cells"`
}

func (f Frame) Cell(row, col int) mines.CellView {
	return f.Cells[row*f.Cols+col]
}

func (f Frame) String() string {
	return mines.Grid(f.Cells).ToString(f.Cols)
}

type CheatResult struct {
	Accepted bool          `json:"accepted"`
	Mines    []mines.Point `json:"mines,omitempty"`
	Frame    Frame         `json:"frame"`
}

// Session is one player's game. Its methods run one at a time.
type Session struct {
	mu       sync.Mutex
	id       string
	params   mines.GameParams
	rnd      *rand.Rand
	game     *mines.GameState
	log      logrus.FieldLogger
	lastSeen time.Time
}

func New(id string, params mines.GameParams, rnd *rand.Rand, log logrus.FieldLogger) (*Session, error) {
	game, err := mines.NewGame(params, rnd)
	if err != nil {
		return nil, fmt.Errorf("unable to generate a new game: %w", err)
	}
	s := &Session{
		id:       id,
		params:   params,
		rnd:      rnd,
		game:     game,
		log:      log.WithField("session", id),
		lastSeen: time.Now(),
	}
	s.log.WithField("params", params.String()).Debug("new game")
	return s, nil
}

// NewClassic starts a 10x10 game with 20 mines.
func NewClassic(id string, rnd *rand.Rand, log logrus.FieldLogger) *Session {
	s, err := New(id, mines.Classic, rnd, log)
	if err != nil {
		// the classic params are always valid
		panic(err)
	}
	return s
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) touch() {
	s.lastSeen = time.Now()
}

func (s *Session) frame() Frame {
	return Frame{
		Rows:    s.params.Rows,
		Cols:    s.params.Cols,
		Outcome: s.game.Outcome(),
		Cells:   s.game.View(),
	}
}

func (s *Session) Frame() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	return s.frame()
}

func (s *Session) OnCellClicked(row, col int) (Frame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	before := s.game.Outcome()
	opened, err := s.game.Reveal(row, col)
	if err != nil {
		return Frame{}, err
	}

	after := s.game.Outcome()
	s.log.WithFields(logrus.Fields{
		"row":     row,
		"col":     col,
		"opened":  len(opened),
		"outcome": after.String(),
	}).Debug("cell clicked")
	if before != after {
		s.log.WithField("outcome", after.String()).Info("game over")
	}

	return s.frame(), nil
}

// OnRestartRequested throws the current game away and deals a new board.
func (s *Session) OnRestartRequested() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	game, err := mines.NewGame(s.params, s.rnd)
	if err != nil {
		// params were validated when the session was created
		panic(err)
	}
	s.game = game
	s.log.Debug("restarted")

	return s.frame()
}

func (s *Session) OnCheatAttempt(candidate string) CheatResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if candidate != CheatPassword {
		s.log.Debug("cheat rejected")
		return CheatResult{Accepted: false, Frame: s.frame()}
	}

	points := s.game.RevealAllMines()
	s.log.WithField("mines", len(points)).Debug("cheat accepted")
	return CheatResult{Accepted: true, Mines: points, Frame: s.frame()}
}
