package engine

import (
	"go.uber.org/zap"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Engine bundles the generator rules, FEN policy and logger used to decode
// positions and play notation moves. It holds no position state; the
// caller owns every Board it passes in.
type Engine struct {
	rules  Rules
	policy FENPolicy
	log    *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithRules sets the candidate generator.
func WithRules(r Rules) Option {
	return func(e *Engine) {
		e.rules = r
	}
}

// WithFENPolicy sets how malformed placements are handled.
func WithFENPolicy(p FENPolicy) Option {
	return func(e *Engine) {
		e.policy = p
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// New creates an Engine. Defaults: bounded rules, strict FEN, no logging.
func New(opts ...Option) *Engine {
	e := &Engine{
		rules:  RulesBounded,
		policy: FENStrict,
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// With returns a copy of e that logs to l. The copy shares rules and
// policy; a nil l returns e unchanged.
func (e *Engine) With(l *zap.Logger) *Engine {
	if l == nil {
		return e
	}
	clone := *e
	clone.log = l
	return &clone
}

// Logger returns the engine's logger.
func (e *Engine) Logger() *zap.Logger { return e.log }

// Rules returns the configured generator rules.
func (e *Engine) Rules() Rules { return e.rules }

// FENPolicy returns the configured placement policy.
func (e *Engine) FENPolicy() FENPolicy { return e.policy }

// NewBoardFromFEN decodes fen using the engine's policy.
func (e *Engine) NewBoardFromFEN(fen string) (*chess.Board, error) {
	board, err := newBoardFromFEN(fen, e.policy, e.log)
	if err != nil {
		e.log.Info("FEN rejected", zap.String("fen", fen), zap.Error(err))
		return nil, err
	}
	return board, nil
}

// Generate returns candidate destinations using the engine's rules.
func (e *Engine) Generate(piece chess.Piece, origin int, board *chess.Board) []int {
	return Generate(e.rules, piece, origin, board)
}

// MoveFromNotation decodes a UCI move, checks that a piece stands on the
// origin and that the generator offers the destination, then applies it.
//
// A bad token fails with ErrInvalidSquare and a bare origin with
// ErrEmptyOrigin. A destination the generator does not offer fails with
// ErrIllegalMove. In every failure case the board is left unchanged.
func (e *Engine) MoveFromNotation(board *chess.Board, uci string) (chess.Move, error) {
	move, err := ParseMove(uci)
	if err != nil {
		return chess.NullMove, &errors.MoveError{Err: err, MoveText: uci}
	}

	cell := board.At(move.From)
	if cell.IsEmpty() {
		return move, &errors.MoveError{Err: errors.ErrEmptyOrigin, MoveText: uci}
	}

	candidates := e.Generate(cell.Piece, move.From.Index(), board)
	if !Contains(candidates, move.To.Index()) {
		e.log.Info("move rejected",
			zap.String("move", uci),
			zap.Stringer("piece", cell),
			zap.String("rules", e.rules.String()),
			zap.Ints("candidates", candidates))
		return move, &errors.MoveError{Err: errors.ErrIllegalMove, MoveText: uci, Piece: cell.String()}
	}

	captured := board.At(move.To)
	if err := ApplyMove(board, move); err != nil {
		return move, &errors.MoveError{Err: err, MoveText: uci, Piece: cell.String()}
	}
	e.log.Debug("move applied",
		zap.String("move", uci),
		zap.Stringer("piece", cell),
		zap.Stringer("captured", captured))
	return move, nil
}
