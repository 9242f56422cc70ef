package chess

import (
	"testing"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("all squares empty", func(t *testing.T) {
		for i := 0; i < NumCells; i++ {
			if got := b.Get(i); !got.IsEmpty() {
				t.Errorf("Get(%d) = %v; want Empty", i, got)
			}
		}
	})

	t.Run("length is fixed", func(t *testing.T) {
		if got := len(b.Cells()); got != 64 {
			t.Errorf("len(Cells()) = %d; want 64", got)
		}
	})
}

func TestSetupInitialPosition(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()

	tests := []struct {
		name  string
		index int
		cell  Cell
	}{
		{"black rook a8", 0, B(Rook)},
		{"black knight b8", 1, B(Knight)},
		{"black queen d8", 3, B(Queen)},
		{"black king e8", 4, B(King)},
		{"black rook h8", 7, B(Rook)},
		{"black pawn a7", 8, B(Pawn)},
		{"black pawn h7", 15, B(Pawn)},
		{"white pawn a2", 48, W(Pawn)},
		{"white pawn e2", 52, W(Pawn)},
		{"white rook a1", 56, W(Rook)},
		{"white queen d1", 59, W(Queen)},
		{"white king e1", 60, W(King)},
		{"white knight g1", 62, W(Knight)},
		{"empty e4", 36, EmptyCell},
		{"empty d5", 27, EmptyCell},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Get(tt.index); got != tt.cell {
				t.Errorf("Get(%d) = %v; want %v", tt.index, got, tt.cell)
			}
		})
	}

	if got := b.Count(); got != 32 {
		t.Errorf("Count() = %d; want 32", got)
	}
}

func TestGetSetOutOfRange(t *testing.T) {
	b := NewBoard()
	b.Set(-1, W(Queen))
	b.Set(64, W(Queen))
	b.Set(99, W(Queen))

	if got := b.Count(); got != 0 {
		t.Errorf("Count() after out of range Set = %d; want 0", got)
	}
	if got := b.Get(99); !got.IsEmpty() {
		t.Errorf("Get(99) = %v; want Empty", got)
	}
}

func TestBoardCopyIsIndependent(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()
	c := b.Copy()

	if *c != *b {
		t.Fatal("Copy() differs from original")
	}
	c.Set(52, EmptyCell)
	if b.Get(52) != W(Pawn) {
		t.Error("modifying copy changed the original")
	}
	if *c == *b {
		t.Error("boards with different cells compare equal")
	}
}

func TestCellGlyph(t *testing.T) {
	tests := []struct {
		cell Cell
		want byte
	}{
		{EmptyCell, '.'},
		{W(Pawn), 'P'},
		{W(Knight), 'N'},
		{W(King), 'K'},
		{B(Pawn), 'p'},
		{B(Bishop), 'b'},
		{B(Rook), 'r'},
		{B(Queen), 'q'},
	}
	for _, tt := range tests {
		if got := tt.cell.Glyph(); got != tt.want {
			t.Errorf("%v.Glyph() = %c; want %c", tt.cell, got, tt.want)
		}
	}
}

func TestPieceFromLetter(t *testing.T) {
	for p := Pawn; p < NumPieceKinds; p++ {
		upper := p.Letter()
		got, colour, ok := PieceFromLetter(upper)
		if !ok || got != p || colour != White {
			t.Errorf("PieceFromLetter(%c) = %v, %v, %v; want %v, White, true", upper, got, colour, ok, p)
		}
		lower := upper + 'a' - 'A'
		got, colour, ok = PieceFromLetter(lower)
		if !ok || got != p || colour != Black {
			t.Errorf("PieceFromLetter(%c) = %v, %v, %v; want %v, Black, true", lower, got, colour, ok, p)
		}
	}
	for _, c := range []byte{'x', '1', '/', ' ', 'Z'} {
		if _, _, ok := PieceFromLetter(c); ok {
			t.Errorf("PieceFromLetter(%q) ok = true; want false", c)
		}
	}
}

func TestSquareIndexRoundTrip(t *testing.T) {
	for i := 0; i < NumCells; i++ {
		sq := SquareFromIndex(i)
		if !sq.Valid() {
			t.Fatalf("SquareFromIndex(%d) not valid", i)
		}
		if got := sq.Index(); got != i {
			t.Errorf("SquareFromIndex(%d).Index() = %d", i, got)
		}
	}
	if got := SquareFromIndex(64); got != NoSquare {
		t.Errorf("SquareFromIndex(64) = %v; want NoSquare", got)
	}
}

func TestSquareString(t *testing.T) {
	tests := []struct {
		sq   Square
		want string
	}{
		{Square{File: 0, Rank: 0}, "a8"},
		{Square{File: 7, Rank: 7}, "h1"},
		{Square{File: 4, Rank: 6}, "e2"},
		{Square{File: 4, Rank: 4}, "e4"},
		{NoSquare, "-"},
	}
	for _, tt := range tests {
		if got := tt.sq.String(); got != tt.want {
			t.Errorf("%#v.String() = %q; want %q", tt.sq, got, tt.want)
		}
	}
	m := Move{From: Square{File: 4, Rank: 6}, To: Square{File: 4, Rank: 4}}
	if got := m.String(); got != "e2e4" {
		t.Errorf("Move.String() = %q; want e2e4", got)
	}
	if NullMove.Valid() {
		t.Error("NullMove.Valid() = true")
	}
}
