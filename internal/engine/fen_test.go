package engine

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/testutil"
)

func TestNewBoardFromFEN(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want []string
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			want: []string{
				"rnbqkbnr",
				"pppppppp",
				"........",
				"........",
				"........",
				"........",
				"PPPPPPPP",
				"RNBQKBNR",
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			want: []string{
				"rnbqkbnr",
				"pppppppp",
				"........",
				"........",
				"....P...",
				"........",
				"PPPP.PPP",
				"RNBQKBNR",
			},
		},
		{
			name: "placement only",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R",
			want: []string{
				"r...k..r",
				"........",
				"........",
				"........",
				"........",
				"........",
				"........",
				"R...K..R",
			},
		},
		{
			name: "empty board",
			fen:  "8/8/8/8/8/8/8/8 w - - 0 1",
			want: []string{
				"........", "........", "........", "........",
				"........", "........", "........", "........",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen, FENStrict)
			if err != nil {
				t.Fatalf("NewBoardFromFEN() error = %v", err)
			}
			testutil.AssertEqual(t, testutil.Grid(board), tt.want)
		})
	}
}

func TestNewBoardFromFEN_InitialRanks(t *testing.T) {
	board := NewInitialBoard()
	backRank := []chess.Piece{chess.Rook, chess.Knight, chess.Bishop, chess.Queen, chess.King, chess.Bishop, chess.Knight, chess.Rook}

	for file := 0; file < chess.BoardSize; file++ {
		if got, want := board.Get(file), chess.B(backRank[file]); got != want {
			t.Errorf("index %d = %v; want %v", file, got, want)
		}
		if got, want := board.Get(56+file), chess.W(backRank[file]); got != want {
			t.Errorf("index %d = %v; want %v", 56+file, got, want)
		}
	}
	for i := 8; i <= 15; i++ {
		testutil.AssertEqual(t, board.Get(i), chess.B(chess.Pawn), "index %d", i)
	}
	for i := 16; i <= 47; i++ {
		testutil.AssertTrue(t, board.Get(i).IsEmpty(), "index %d should be empty", i)
	}
	for i := 48; i <= 55; i++ {
		testutil.AssertEqual(t, board.Get(i), chess.W(chess.Pawn), "index %d", i)
	}

	want := chess.NewBoard()
	want.SetupInitialPosition()
	testutil.AssertBoard(t, board, want)
}

func TestDecodePlacement_Strict(t *testing.T) {
	tests := []struct {
		name      string
		placement string
	}{
		{"empty string", ""},
		{"unknown letter", "rnbqkbnr/ppppxppp/8/8/8/8/PPPPPPPP/RNBQKBNR"},
		{"digit zero", "rnbqkbnr/pppppppp/8/8/0/8/PPPPPPPP/RNBQKBNR"},
		{"digit nine", "rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR"},
		{"short rank", "rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"},
		{"long rank", "rnbqkbnr/ppppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"},
		{"seven ranks", "rnbqkbnr/pppppppp/8/8/8/PPPPPPPP/RNBQKBNR"},
		{"nine ranks", "rnbqkbnr/pppppppp/8/8/8/8/8/PPPPPPPP/RNBQKBNR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := DecodePlacement(tt.placement, FENStrict)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
			if board != nil {
				t.Errorf("DecodePlacement() board = %v; want nil", board)
			}
		})
	}
}

func TestDecodePlacement_Lenient(t *testing.T) {
	tests := []struct {
		name      string
		placement string
		want      []string
	}{
		{
			// The rest of the bad rank is dropped and the next rank
			// starts where the cursor stopped.
			name:      "truncated rank shifts later ranks",
			placement: "rnbqkbnr/ppxppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",
			want: []string{
				"rnbqkbnr",
				"pp......",
				"........",
				"........",
				"........",
				"..PPPPPP",
				"PPRNBQKB",
				"NR......",
			},
		},
		{
			name:      "missing ranks stay empty",
			placement: "4k3/8",
			want: []string{
				"....k...",
				"........", "........", "........",
				"........", "........", "........", "........",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := DecodePlacement(tt.placement, FENLenient)
			if err != nil {
				t.Fatalf("DecodePlacement() error = %v", err)
			}
			testutil.AssertEqual(t, testutil.Grid(board), tt.want)
		})
	}
}

func TestDecodePlacement_LenientOverflow(t *testing.T) {
	_, err := DecodePlacement("8/8/8/8/8/8/8/8/8", FENLenient)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)

	_, err = DecodePlacement("8/8/8/8/8/8/8/8/k", FENLenient)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
}

func TestEncodePlacement(t *testing.T) {
	placements := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR",
		"r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R",
		"8/8/8/8/8/8/8/4K3",
		"8/8/8/8/8/8/8/8",
	}

	for _, p := range placements {
		t.Run(p, func(t *testing.T) {
			board, err := DecodePlacement(p, FENStrict)
			if err != nil {
				t.Fatalf("DecodePlacement() error = %v", err)
			}
			testutil.AssertEqual(t, EncodePlacement(board), p)
		})
	}
}

func TestParseFENPolicy(t *testing.T) {
	for name, want := range map[string]FENPolicy{"": FENStrict, "strict": FENStrict, "Lenient": FENLenient} {
		got, err := ParseFENPolicy(name)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, got, want, "ParseFENPolicy(%q)", name)
	}
	_, err := ParseFENPolicy("sloppy")
	testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
}

func TestDecodePlacement_LogsCursorPerRank(t *testing.T) {
	tests := []struct {
		name      string
		placement string
		want      []int64
	}{
		{"initial", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", []int64{8, 16, 24, 32, 40, 48, 56, 64}},
		{"truncated rank", "rnbqkbnr/ppxppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", []int64{8, 10, 18, 26, 34, 42, 50, 58}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			_, err := decodePlacement(tt.placement, FENLenient, zap.New(core))
			testutil.AssertNoError(t, err)

			var got []int64
			for _, e := range logs.FilterMessage("placement rank decoded").All() {
				got = append(got, e.ContextMap()["cursor"].(int64))
			}
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}
