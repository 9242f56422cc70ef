package engine

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// ParseSquare decodes a two character square such as "e2". The file letter
// is case-insensitive. Rank digit '8' maps to row 0 and '1' to row 7.
func ParseSquare(s string) (chess.Square, error) {
	if len(s) != 2 {
		return chess.NoSquare, fmt.Errorf("square %q: want 2 characters: %w", s, errors.ErrInvalidSquare)
	}

	col := s[0]
	if col >= 'A' && col <= 'H' {
		col += 'a' - 'A'
	}
	if col < 'a' || col > 'h' {
		return chess.NoSquare, fmt.Errorf("square %q: bad file %q: %w", s, s[0], errors.ErrInvalidSquare)
	}

	digit := s[1]
	if digit < '1' || digit > '8' {
		return chess.NoSquare, fmt.Errorf("square %q: bad rank %q: %w", s, digit, errors.ErrInvalidSquare)
	}

	return chess.Square{
		File: int(col - chess.ColBase),
		Rank: chess.BoardSize - int(digit-'0'),
	}, nil
}

// ParseMove decodes a four character UCI move such as "e2e4".
// Promotion suffixes are not recognised.
func ParseMove(s string) (chess.Move, error) {
	if len(s) != 4 {
		return chess.NullMove, fmt.Errorf("move %q: want 4 characters: %w", s, errors.ErrInvalidSquare)
	}
	from, err := ParseSquare(s[:2])
	if err != nil {
		return chess.NullMove, err
	}
	to, err := ParseSquare(s[2:])
	if err != nil {
		return chess.NullMove, err
	}
	return chess.Move{From: from, To: to}, nil
}
