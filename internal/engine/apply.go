package engine

import (
	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// ApplyMove copies the origin cell onto the destination and empties the
// origin. It performs no legality checks: whatever stood on the destination
// is overwritten, whatever its colour, and an empty origin leaves an empty
// destination. Only unset or off-board squares are refused, in which case
// the board is not touched.
func ApplyMove(board *chess.Board, move chess.Move) error {
	if !move.Valid() {
		return errors.Wrapf(errors.ErrInvalidSquare, "apply %s", move)
	}

	from := move.From.Index()
	to := move.To.Index()

	board.Squares[to] = board.Squares[from]
	board.Squares[from] = chess.EmptyCell
	return nil
}
