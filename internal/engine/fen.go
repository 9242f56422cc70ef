// Package engine decodes positions, generates candidate moves and applies
// moves to a chess.Board.
package engine

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FENPolicy selects how the placement decoder treats malformed input.
type FENPolicy int

const (
	// FENStrict rejects unknown characters and ranks that do not cover
	// exactly eight files.
	FENStrict FENPolicy = iota
	// FENLenient stops decoding the current rank at an unknown character
	// and carries on with the next rank from the same cursor.
	FENLenient
)

// String returns the config name of the policy.
func (p FENPolicy) String() string {
	if p == FENLenient {
		return "lenient"
	}
	return "strict"
}

// ParseFENPolicy converts a config name to a policy.
func ParseFENPolicy(s string) (FENPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return FENStrict, nil
	case "lenient":
		return FENLenient, nil
	}
	return FENStrict, fmt.Errorf("unknown FEN policy %q: %w", s, errors.ErrInvalidConfig)
}

// NewBoardFromFEN creates a board from a FEN string. Only the placement
// field is read; side to move, castling, en-passant and clocks are ignored.
func NewBoardFromFEN(fen string, policy FENPolicy) (*chess.Board, error) {
	return newBoardFromFEN(fen, policy, zap.NewNop())
}

func newBoardFromFEN(fen string, policy FENPolicy, log *zap.Logger) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}
	return decodePlacement(parts[0], policy, log)
}

// DecodePlacement decodes the piece placement field of a FEN string.
func DecodePlacement(placement string, policy FENPolicy) (*chess.Board, error) {
	return decodePlacement(placement, policy, zap.NewNop())
}

// decodePlacement walks a single cursor over the 64 cells, rank 8 first.
func decodePlacement(placement string, policy FENPolicy, log *zap.Logger) (*chess.Board, error) {
	ranks := strings.Split(placement, "/")
	if policy == FENStrict && len(ranks) != chess.BoardSize {
		return nil, fmt.Errorf("%d ranks: %w", len(ranks), errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()
	cursor := 0

	for r, rank := range ranks {
		files := 0
	scan:
		for i := 0; i < len(rank); i++ {
			c := rank[i]
			switch {
			case c >= '1' && c <= '8':
				run := int(c - '0')
				if cursor+run > chess.NumCells {
					return nil, fmt.Errorf("rank %d overflows the board: %w", r+1, errors.ErrInvalidFEN)
				}
				cursor += run
				files += run
			default:
				piece, colour, ok := chess.PieceFromLetter(c)
				if !ok {
					if policy == FENLenient {
						log.Debug("placement rank truncated",
							zap.Int("rank", r+1),
							zap.String("char", string(c)),
							zap.Int("cursor", cursor))
						break scan
					}
					return nil, fmt.Errorf("invalid piece character %q in rank %d: %w", c, r+1, errors.ErrInvalidFEN)
				}
				if cursor >= chess.NumCells {
					return nil, fmt.Errorf("rank %d overflows the board: %w", r+1, errors.ErrInvalidFEN)
				}
				board.Set(cursor, chess.Occupied(piece, colour))
				cursor++
				files++
			}
		}
		if policy == FENStrict && files != chess.BoardSize {
			return nil, fmt.Errorf("rank %d covers %d files: %w", r+1, files, errors.ErrInvalidFEN)
		}
		log.Debug("placement rank decoded",
			zap.Int("rank", r+1),
			zap.Int("files", files),
			zap.Int("cursor", cursor))
	}

	log.Debug("placement decoded",
		zap.String("placement", placement),
		zap.Int("cursor", cursor),
		zap.Int("pieces", board.Count()))
	return board, nil
}

// EncodePlacement converts a board to the placement field of a FEN string.
func EncodePlacement(board *chess.Board) string {
	var sb strings.Builder

	for rank := 0; rank < chess.BoardSize; rank++ {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			cell := board.Get(chess.IndexOf(file, rank))
			if cell.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(cell.Glyph())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board, _ := NewBoardFromFEN(InitialFEN, FENStrict)
	return board
}
