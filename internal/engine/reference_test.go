package engine

import (
	"testing"

	nchess "github.com/notnil/chess"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/testutil"
)

// Positions decoded here are compared square by square with notnil/chess,
// whose squares run a1 = 0 upwards instead of a8 = 0 downwards.

func referenceGame(t *testing.T, fen string) *nchess.Game {
	t.Helper()
	opt, err := nchess.FEN(fen)
	if err != nil {
		t.Fatalf("nchess.FEN(%q) error = %v", fen, err)
	}
	return nchess.NewGame(opt)
}

func toReferenceSquare(index int) nchess.Square {
	return nchess.Square((chess.BoardSize-1-chess.RankOf(index))*chess.BoardSize + chess.FileOf(index))
}

func fromReferenceSquare(sq nchess.Square) int {
	file := int(sq) % chess.BoardSize
	rank := chess.BoardSize - 1 - int(sq)/chess.BoardSize
	return chess.IndexOf(file, rank)
}

var referencePieces = map[nchess.PieceType]chess.Piece{
	nchess.Pawn:   chess.Pawn,
	nchess.Knight: chess.Knight,
	nchess.Bishop: chess.Bishop,
	nchess.Rook:   chess.Rook,
	nchess.Queen:  chess.Queen,
	nchess.King:   chess.King,
}

func referenceCell(p nchess.Piece) chess.Cell {
	if p == nchess.NoPiece {
		return chess.EmptyCell
	}
	colour := chess.White
	if p.Color() == nchess.Black {
		colour = chess.Black
	}
	return chess.Occupied(referencePieces[p.Type()], colour)
}

func TestDecodeMatchesReference(t *testing.T) {
	fens := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
		"4k3/8/8/3pK3/8/8/8/8 w - - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			board, err := NewBoardFromFEN(fen, FENStrict)
			if err != nil {
				t.Fatalf("NewBoardFromFEN() error = %v", err)
			}
			ref := referenceGame(t, fen).Position().Board()
			for i := 0; i < chess.NumCells; i++ {
				want := referenceCell(ref.Piece(toReferenceSquare(i)))
				if got := board.Get(i); got != want {
					t.Errorf("%s: got %v, reference %v", chess.SquareFromIndex(i), got, want)
				}
			}
		})
	}
}

func TestBoundedGeometryMatchesReference(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		origin string
		piece  chess.Piece
	}{
		{"central knight", "7k/8/8/3N4/8/8/8/K7 w - - 0 1", "d5", chess.Knight},
		{"corner knight", "N3k3/8/8/8/8/8/8/4K3 w - - 0 1", "a8", chess.Knight},
		{"edge knight", "7k/8/8/8/7N/8/8/K7 w - - 0 1", "h4", chess.Knight},
		{"central king", "7k/8/8/3K4/8/8/8/8 w - - 0 1", "d5", chess.King},
		{"corner king", "7k/8/8/8/8/8/8/K7 w - - 0 1", "a1", chess.King},
		{"knight with friendly blockers", "7k/8/2P1P3/1P3P2/3N4/8/8/K7 w - - 0 1", "d4", chess.Knight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen, FENStrict)
			if err != nil {
				t.Fatalf("NewBoardFromFEN() error = %v", err)
			}
			sq, err := ParseSquare(tt.origin)
			if err != nil {
				t.Fatalf("ParseSquare() error = %v", err)
			}
			origin := sq.Index()

			var want []int
			for _, m := range referenceGame(t, tt.fen).ValidMoves() {
				if m.S1() == toReferenceSquare(origin) {
					want = append(want, fromReferenceSquare(m.S2()))
				}
			}

			got := Generate(RulesBounded, tt.piece, origin, board)
			testutil.AssertSameElements(t, got, want)
		})
	}
}
