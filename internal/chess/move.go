package chess

// Square is a (file, rank) coordinate in the same 0-7 domain as Board
// indices. Rank 0 is the eighth rank.
type Square struct {
	File int
	Rank int
}

// NoSquare is the unset square.
var NoSquare = Square{File: Unset, Rank: Unset}

// SquareFromIndex converts a linear index to a square. Out of range
// indices yield NoSquare.
func SquareFromIndex(index int) Square {
	if !InRange(index) {
		return NoSquare
	}
	return Square{File: FileOf(index), Rank: RankOf(index)}
}

// Valid reports whether both axes are in 0-7.
func (s Square) Valid() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// Index returns the linear board index. Callers must check Valid first.
func (s Square) Index() int {
	return IndexOf(s.File, s.Rank)
}

// String returns the algebraic name of the square, e.g. "e2", or "-" when
// the square is not valid.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte(ColBase + s.File), byte(RankBase + BoardSize - 1 - s.Rank)})
}

// Move is an origin and destination square pair.
type Move struct {
	From Square
	To   Square
}

// NullMove has both squares unset.
var NullMove = Move{From: NoSquare, To: NoSquare}

// Valid reports whether both squares can index a Board.
func (m Move) Valid() bool {
	return m.From.Valid() && m.To.Valid()
}

// String returns the move in UCI form, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}
