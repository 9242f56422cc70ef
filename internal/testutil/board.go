package testutil

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

// BoardFromGrid builds a board from eight rows of glyphs, top rank first,
// using the same letters as Cell.Glyph ('.' for empty). Spaces are ignored.
// It calls t.Fatal on a malformed grid.
func BoardFromGrid(t *testing.T, rows ...string) *chess.Board {
	t.Helper()
	if len(rows) != chess.BoardSize {
		t.Fatalf("grid has %d rows; want %d", len(rows), chess.BoardSize)
	}
	b := chess.NewBoard()
	for rank, row := range rows {
		row = strings.ReplaceAll(row, " ", "")
		if len(row) != chess.BoardSize {
			t.Fatalf("grid row %d = %q; want %d glyphs", rank, row, chess.BoardSize)
		}
		for file := 0; file < chess.BoardSize; file++ {
			if row[file] == '.' {
				continue
			}
			piece, colour, ok := chess.PieceFromLetter(row[file])
			if !ok {
				t.Fatalf("grid row %d: bad glyph %q", rank, row[file])
			}
			b.Set(chess.IndexOf(file, rank), chess.Occupied(piece, colour))
		}
	}
	return b
}

// Grid renders a board as eight glyph rows, the inverse of BoardFromGrid.
func Grid(b *chess.Board) []string {
	rows := make([]string, chess.BoardSize)
	for rank := 0; rank < chess.BoardSize; rank++ {
		var sb strings.Builder
		for file := 0; file < chess.BoardSize; file++ {
			sb.WriteByte(b.Get(chess.IndexOf(file, rank)).Glyph())
		}
		rows[rank] = sb.String()
	}
	return rows
}

// AssertBoard compares two boards and prints a row-by-row glyph diff.
func AssertBoard(t *testing.T, got, want *chess.Board, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(Grid(want), Grid(got)); diff != "" {
		report(t, "board mismatch (-want +got):\n"+diff, msgAndArgs...)
	}
}
