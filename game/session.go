package game

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/brodridev/minesweeper/config"
	"github.com/brodridev/minesweeper/models"
)

// State is the lifecycle stage of a game.
type State int

const (
	Playing State = iota
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Snapshot is an immutable view of a game, handed to renderers.
type Snapshot struct {
	ID             string
	State          State
	Rows           int
	Cols           int
	Mines          int
	FlagsUsed      int
	RemainingFlags int
	ElapsedSeconds int
	Cells          [][]models.Cell
}

// Cell returns the cell at row, col, or false when it is off the board.
func (s Snapshot) Cell(row, col int) (models.Cell, bool) {
	if row < 0 || row >= len(s.Cells) || col < 0 || col >= len(s.Cells[row]) {
		return models.Cell{}, false
	}
	return s.Cells[row][col], true
}

// Option configures a Session.
type Option func(*Session)

// WithTickInterval sets how often the elapsed-time counter advances.
// Zero disables the background ticker; Tick must then be called by hand.
func WithTickInterval(d time.Duration) Option {
	return func(s *Session) { s.interval = d }
}

// WithRand sets the random source used for mine placement.
func WithRand(r *rand.Rand) Option {
	return func(s *Session) { s.rng = r }
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Session) { s.log = log }
}

// Session drives a single game at a time: it owns the board, the game state
// and the elapsed-time ticker. All methods are safe for concurrent use.
type Session struct {
	mu sync.Mutex

	interval time.Duration
	rng      *rand.Rand
	log      logrus.FieldLogger

	id      string
	board   *models.Board
	state   State
	elapsed int

	ticker *ticker
	gen    uint64

	listeners []func(Snapshot)
}

func NewSession(opts ...Option) *Session {
	s := &Session{
		interval: time.Second,
		log:      logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers fn to receive a snapshot after every change.
func (s *Session) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Initialize starts a new game, replacing any game in progress. An invalid
// configuration is rejected before anything is touched.
func (s *Session) Initialize(cfg config.Game) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	board, err := models.Generate(cfg.Rows, cfg.Cols, cfg.Mines, s.rng)
	if err != nil {
		return fmt.Errorf("generate board: %w", err)
	}

	s.mu.Lock()
	s.stopTickerLocked()

	s.gen++
	s.id = uuid.NewString()
	s.board = board
	s.state = Playing
	s.elapsed = 0

	if s.interval > 0 {
		gen := s.gen
		s.ticker = startTicker(s.interval, func() { s.tick(gen, true) })
	}

	s.log.WithFields(logrus.Fields{
		"game":  s.id,
		"rows":  cfg.Rows,
		"cols":  cfg.Cols,
		"mines": cfg.Mines,
	}).Info("game started")

	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
	return nil
}

// Activate reveals the cell at row, col. It does nothing once the game is
// over or when the cell is flagged, revealed or off the board.
func (s *Session) Activate(row, col int) {
	s.mu.Lock()
	if !s.playableLocked(row, col) {
		s.mu.Unlock()
		return
	}
	cell, _ := s.board.Cell(row, col)
	if cell.IsFlagged {
		s.mu.Unlock()
		return
	}

	switch s.board.Reveal(row, col) {
	case models.Lost:
		s.state = Lost
		s.stopTickerLocked()
		s.board.RevealAllMines()
		s.logEndLocked(row, col)
	case models.Continue:
		if s.board.CheckWin() {
			s.state = Won
			s.stopTickerLocked()
			s.logEndLocked(row, col)
		}
	}

	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

// Mark toggles the flag on the cell at row, col. It does nothing once the
// game is over or when the cell is revealed or off the board.
func (s *Session) Mark(row, col int) {
	s.mu.Lock()
	if !s.playableLocked(row, col) {
		s.mu.Unlock()
		return
	}
	if !s.board.ToggleFlag(row, col) {
		s.mu.Unlock()
		return
	}

	s.log.WithFields(logrus.Fields{
		"game":  s.id,
		"row":   row,
		"col":   col,
		"flags": s.board.FlagsUsed(),
	}).Debug("flag toggled")

	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

// Tick advances the elapsed-time counter by one second while the game is in
// progress.
func (s *Session) Tick() {
	s.tick(0, false)
}

// tick ignores calls from a ticker that belongs to an earlier game.
func (s *Session) tick(gen uint64, fromTicker bool) {
	s.mu.Lock()
	if (fromTicker && gen != s.gen) || s.board == nil || s.state != Playing {
		s.mu.Unlock()
		return
	}
	s.elapsed++
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

// Snapshot returns the current state of the game.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Close stops the ticker. The game stays readable.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTickerLocked()
}

func (s *Session) playableLocked(row, col int) bool {
	if s.board == nil || s.state != Playing {
		return false
	}
	cell, ok := s.board.Cell(row, col)
	return ok && !cell.IsRevealed
}

func (s *Session) stopTickerLocked() {
	s.ticker.Stop()
	s.ticker = nil
}

func (s *Session) logEndLocked(row, col int) {
	s.log.WithFields(logrus.Fields{
		"game":    s.id,
		"state":   s.state.String(),
		"row":     row,
		"col":     col,
		"elapsed": s.elapsed,
	}).Info("game over")
}

func (s *Session) snapshotLocked() Snapshot {
	if s.board == nil {
		return Snapshot{ID: s.id, State: s.state}
	}
	return Snapshot{
		ID:             s.id,
		State:          s.state,
		Rows:           s.board.Rows(),
		Cols:           s.board.Cols(),
		Mines:          s.board.Mines(),
		FlagsUsed:      s.board.FlagsUsed(),
		RemainingFlags: s.board.RemainingFlags(),
		ElapsedSeconds: s.elapsed,
		Cells:          s.board.Snapshot(),
	}
}

func (s *Session) notify(snap Snapshot) {
	s.mu.Lock()
	listeners := make([]func(Snapshot), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(snap)
	}
}
