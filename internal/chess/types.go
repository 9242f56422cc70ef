// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Piece represents a chess piece kind. Emptiness lives on Cell, not here.
type Piece int

const (
	Pawn Piece = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceKinds
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	switch p {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	switch p {
	case Pawn:
		return 'P'
	case Knight:
		return 'N'
	case Bishop:
		return 'B'
	case Rook:
		return 'R'
	case Queen:
		return 'Q'
	case King:
		return 'K'
	}
	return '?'
}

// PieceFromLetter maps a FEN piece letter to its kind and colour.
// Uppercase is White, lowercase is Black.
func PieceFromLetter(c byte) (Piece, Colour, bool) {
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
		c -= 'a' - 'A'
	}
	switch c {
	case 'P':
		return Pawn, colour, true
	case 'N':
		return Knight, colour, true
	case 'B':
		return Bishop, colour, true
	case 'R':
		return Rook, colour, true
	case 'Q':
		return Queen, colour, true
	case 'K':
		return King, colour, true
	}
	return 0, White, false
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8
	NumCells  = BoardSize * BoardSize

	// Unset marks a square axis that has not been decoded.
	// It must never be used to index a Board.
	Unset = 99

	RankBase = '1'
	ColBase  = 'a'
)
