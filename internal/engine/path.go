package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// Step returns the index reached by moving offset cells from from. It
// reports false if the target is off the board or lies more than two files
// away, which is how a wrap around the board edge shows up in linear
// arithmetic. Offsets must not jump further than a knight.
func Step(from, offset int) (int, bool) {
	to := from + offset
	if !chess.InRange(from) || !chess.InRange(to) {
		return 0, false
	}
	if dx := chess.FileOf(to) - chess.FileOf(from); dx < -2 || dx > 2 {
		return 0, false
	}
	return to, true
}

// deltas returns the absolute file and rank distance between two indices.
func deltas(from, to int) (int, int) {
	return abs(chess.FileOf(to) - chess.FileOf(from)), abs(chess.RankOf(to) - chess.RankOf(from))
}

// IsKnightJump reports whether from and to are both on the board and a
// knight's jump apart.
func IsKnightJump(from, to int) bool {
	if !chess.InRange(from) || !chess.InRange(to) {
		return false
	}
	df, dr := deltas(from, to)
	return df >= 1 && df <= 2 && dr >= 1 && dr <= 2 && df+dr == 3
}

// IsKingStep reports whether from and to are both on the board and adjacent.
func IsKingStep(from, to int) bool {
	if !chess.InRange(from) || !chess.InRange(to) || from == to {
		return false
	}
	df, dr := deltas(from, to)
	return df <= 1 && dr <= 1
}

// ValidateCandidates drops raw candidates that are off the board or that
// wrapped around an edge. Only knight and king candidates carry geometry
// that can be checked; for other pieces only the range is checked.
func ValidateCandidates(piece chess.Piece, origin int, candidates []int) []int {
	var valid []int
	for _, to := range candidates {
		if !chess.InRange(to) {
			continue
		}
		switch piece {
		case chess.Knight:
			if !IsKnightJump(origin, to) {
				continue
			}
		case chess.King:
			if !IsKingStep(origin, to) {
				continue
			}
		}
		valid = append(valid, to)
	}
	return valid
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
