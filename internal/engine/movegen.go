package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Rules selects the candidate generator.
type Rules int

const (
	// RulesBounded generates pseudo-legal destinations for every piece,
	// with board-edge checks, friendly blockers excluded and captures
	// included.
	RulesBounded Rules = iota
	// RulesLegacy uses plain offset arithmetic: raw knight
	// offsets, king steps onto empty cells only, and a single Unset
	// placeholder for pawns, bishops, rooks and queens.
	RulesLegacy
)

// String returns the config name of the rules.
func (r Rules) String() string {
	if r == RulesLegacy {
		return "legacy"
	}
	return "bounded"
}

// ParseRules converts a config name to Rules.
func ParseRules(s string) (Rules, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "bounded":
		return RulesBounded, nil
	case "legacy":
		return RulesLegacy, nil
	}
	return RulesBounded, fmt.Errorf("unknown rules %q: %w", s, errors.ErrInvalidConfig)
}

var (
	knightOffsets = []int{-17, -15, -10, -6, 6, 10, 15, 17}
	kingOffsets   = []int{-9, -8, -7, -1, 1, 7, 8, 9}
	bishopOffsets = []int{-9, -7, 7, 9}
	rookOffsets   = []int{-8, -1, 1, 8}
	queenOffsets  = kingOffsets
)

// Generate returns the candidate destination indices for piece standing on
// origin. The result is unordered. It does not modify the board.
func Generate(rules Rules, piece chess.Piece, origin int, board *chess.Board) []int {
	if rules == RulesLegacy {
		return generateLegacy(piece, origin, board)
	}
	return generateBounded(piece, origin, board)
}

// generateLegacy performs no edge filtering. Callers that need correct
// geometry pass the result through ValidateCandidates.
func generateLegacy(piece chess.Piece, origin int, board *chess.Board) []int {
	switch piece {
	case chess.Knight:
		moves := make([]int, 0, len(knightOffsets))
		for _, offset := range knightOffsets {
			moves = append(moves, origin+offset)
		}
		return moves
	case chess.King:
		var moves []int
		for _, offset := range kingOffsets {
			to := origin + offset
			if chess.InRange(to) && board.Get(to).IsEmpty() {
				moves = append(moves, to)
			}
		}
		return moves
	case chess.Pawn, chess.Bishop, chess.Rook, chess.Queen:
		return []int{chess.Unset}
	}
	return nil
}

func generateBounded(piece chess.Piece, origin int, board *chess.Board) []int {
	if !chess.InRange(origin) {
		return nil
	}
	gen := movegen{board: board, from: origin, side: board.Get(origin).Colour}

	switch piece {
	case chess.Pawn:
		gen.pawn()
	case chess.Knight:
		gen.steps(knightOffsets)
	case chess.Bishop:
		gen.sliders(bishopOffsets)
	case chess.Rook:
		gen.sliders(rookOffsets)
	case chess.Queen:
		gen.sliders(queenOffsets)
	case chess.King:
		gen.steps(kingOffsets)
	}
	return gen.moves
}

// movegen collects bounded candidates for one origin. An empty origin is
// treated as White.
type movegen struct {
	board *chess.Board
	from  int
	side  chess.Colour
	moves []int
}

// add records to unless a friendly piece stands there. It returns whether
// a slider can continue past to.
func (gen *movegen) add(to int) bool {
	blocker := gen.board.Get(to)
	if blocker.IsEmpty() || blocker.Colour != gen.side {
		gen.moves = append(gen.moves, to)
	}
	return blocker.IsEmpty()
}

func (gen *movegen) steps(offsets []int) {
	for _, offset := range offsets {
		if to, ok := Step(gen.from, offset); ok {
			gen.add(to)
		}
	}
}

func (gen *movegen) sliders(offsets []int) {
	for _, offset := range offsets {
		to, ok := Step(gen.from, offset)
		for ok && gen.add(to) {
			to, ok = Step(to, offset)
		}
	}
}

func (gen *movegen) pawn() {
	forward, startRank := -chess.BoardSize, chess.BoardSize-2
	if gen.side == chess.Black {
		forward, startRank = chess.BoardSize, 1
	}

	if one, ok := Step(gen.from, forward); ok && gen.board.Get(one).IsEmpty() {
		gen.moves = append(gen.moves, one)
		if chess.RankOf(gen.from) == startRank {
			if two, ok := Step(one, forward); ok && gen.board.Get(two).IsEmpty() {
				gen.moves = append(gen.moves, two)
			}
		}
	}

	for _, side := range []int{-1, 1} {
		to, ok := Step(gen.from, forward+side)
		if !ok {
			continue
		}
		if target := gen.board.Get(to); !target.IsEmpty() && target.Colour != gen.side {
			gen.moves = append(gen.moves, to)
		}
	}
}

// Contains reports whether to is among candidates.
func Contains(candidates []int, to int) bool {
	for _, c := range candidates {
		if c == to {
			return true
		}
	}
	return false
}
