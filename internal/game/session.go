// Package game tracks a single position as a sequence of notation moves.
package game

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// IllegalMovePolicy decides what Play does with a move the generator
// does not offer.
type IllegalMovePolicy int

const (
	// RejectIllegal returns ErrIllegalMove to the caller.
	RejectIllegal IllegalMovePolicy = iota
	// IgnoreIllegal skips the move and leaves the board unchanged.
	IgnoreIllegal
)

// String returns the config name of the policy.
func (p IllegalMovePolicy) String() string {
	if p == IgnoreIllegal {
		return "ignore"
	}
	return "reject"
}

// ParseIllegalMovePolicy converts a config name to a policy.
func ParseIllegalMovePolicy(s string) (IllegalMovePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "reject":
		return RejectIllegal, nil
	case "ignore":
		return IgnoreIllegal, nil
	}
	return RejectIllegal, fmt.Errorf("unknown illegal move policy %q: %w", s, errors.ErrInvalidConfig)
}

// Session owns one Board and the moves played on it. It is not safe for
// concurrent use.
type Session struct {
	id      uuid.UUID
	board   *chess.Board
	engine  *engine.Engine
	policy  IllegalMovePolicy
	history []chess.Move
	skipped []string
	log     *zap.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithEngine sets the engine used to decode and play moves. The session
// uses a copy bound to its own logger, so a shared engine is not modified.
func WithEngine(e *engine.Engine) Option {
	return func(s *Session) {
		if e != nil {
			s.engine = e
		}
	}
}

// WithIllegalMoves sets the illegal move policy.
func WithIllegalMoves(p IllegalMovePolicy) Option {
	return func(s *Session) {
		s.policy = p
	}
}

// WithLogger sets the base logger. The session id is added as a field.
// Without it the session logs through its engine's logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithID overrides the generated session id.
func WithID(id uuid.UUID) Option {
	return func(s *Session) {
		s.id = id
	}
}

// New starts a session from fen. An empty fen means the initial position.
func New(fen string, opts ...Option) (*Session, error) {
	s := &Session{id: uuid.New()}
	for _, opt := range opts {
		opt(s)
	}
	switch {
	case s.log != nil:
	case s.engine != nil:
		s.log = s.engine.Logger()
	default:
		s.log = zap.NewNop()
	}
	s.log = s.log.With(zap.String("session", s.id.String()))
	if s.engine == nil {
		s.engine = engine.New(engine.WithLogger(s.log))
	} else {
		s.engine = s.engine.With(s.log)
	}

	if strings.TrimSpace(fen) == "" {
		fen = engine.InitialFEN
	}
	board, err := s.engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	s.board = board
	s.log.Debug("session started",
		zap.String("placement", engine.EncodePlacement(board)),
		zap.Stringer("rules", s.engine.Rules()))
	return s, nil
}

// ID returns the session id.
func (s *Session) ID() uuid.UUID { return s.id }

// Board returns a copy of the current position.
func (s *Session) Board() *chess.Board { return s.board.Copy() }

// Placement returns the FEN placement field of the current position.
func (s *Session) Placement() string { return engine.EncodePlacement(s.board) }

// Ply returns the number of moves applied so far.
func (s *Session) Ply() int { return len(s.history) }

// History returns the applied moves in order.
func (s *Session) History() []chess.Move {
	out := make([]chess.Move, len(s.history))
	copy(out, s.history)
	return out
}

// Skipped returns the moves dropped under IgnoreIllegal.
func (s *Session) Skipped() []string {
	out := make([]string, len(s.skipped))
	copy(out, s.skipped)
	return out
}

// Play applies one UCI move. Errors carry the ply the move would have
// taken. Under IgnoreIllegal an ErrIllegalMove is dropped and Play
// returns nil; every other error is returned.
func (s *Session) Play(uci string) error {
	move, err := s.engine.MoveFromNotation(s.board, uci)
	if err == nil {
		s.history = append(s.history, move)
		return nil
	}

	var moveErr *errors.MoveError
	if errors.As(err, &moveErr) {
		moveErr.Ply = len(s.history) + 1
	}
	if s.policy == IgnoreIllegal && errors.Is(err, errors.ErrIllegalMove) {
		s.skipped = append(s.skipped, uci)
		s.log.Info("illegal move ignored", zap.String("move", uci))
		return nil
	}
	return err
}

// PlayAll applies moves in order and stops at the first error.
func (s *Session) PlayAll(moves []string) error {
	for _, m := range moves {
		if err := s.Play(m); err != nil {
			return err
		}
	}
	return nil
}
