package chess

// Cell is a single board square. The zero value is empty.
type Cell struct {
	Piece    Piece
	Colour   Colour
	Occupied bool
}

// EmptyCell is the unoccupied cell.
var EmptyCell = Cell{}

// Occupied returns a cell holding the given piece.
func Occupied(piece Piece, colour Colour) Cell {
	return Cell{Piece: piece, Colour: colour, Occupied: true}
}

// W creates a white piece cell.
func W(piece Piece) Cell {
	return Occupied(piece, White)
}

// B creates a black piece cell.
func B(piece Piece) Cell {
	return Occupied(piece, Black)
}

// IsEmpty reports whether no piece stands on the cell.
func (c Cell) IsEmpty() bool {
	return !c.Occupied
}

// Glyph returns the display character: uppercase for White, lowercase for
// Black and '.' for an empty cell.
func (c Cell) Glyph() byte {
	if !c.Occupied {
		return '.'
	}
	letter := c.Piece.Letter()
	if c.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns a readable form such as "White Knight" or "Empty".
func (c Cell) String() string {
	if !c.Occupied {
		return "Empty"
	}
	return c.Colour.String() + " " + c.Piece.String()
}

// Board is a flat 64-cell board indexed by rank*8+file, where rank 0 is the
// eighth rank (top of a FEN string) and file 0 is the a-file.
type Board struct {
	Squares [NumCells]Cell
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()
	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Squares[IndexOf(file, 0)] = B(backRank[file])
		b.Squares[IndexOf(file, 1)] = B(Pawn)
		b.Squares[IndexOf(file, 6)] = W(Pawn)
		b.Squares[IndexOf(file, 7)] = W(backRank[file])
	}
}

// Clear empties every cell.
func (b *Board) Clear() {
	b.Squares = [NumCells]Cell{}
}

// Get returns the cell at the given linear index. Out of range indices read
// as empty.
func (b *Board) Get(index int) Cell {
	if !InRange(index) {
		return EmptyCell
	}
	return b.Squares[index]
}

// Set places a cell at the given linear index. Out of range indices are ignored.
func (b *Board) Set(index int, cell Cell) {
	if InRange(index) {
		b.Squares[index] = cell
	}
}

// At returns the cell on a square, or empty if the square is not valid.
func (b *Board) At(sq Square) Cell {
	if !sq.Valid() {
		return EmptyCell
	}
	return b.Squares[sq.Index()]
}

// Cells returns the 64 cells in rank-major, file-minor order for display.
func (b *Board) Cells() []Cell {
	cells := make([]Cell, NumCells)
	copy(cells, b.Squares[:])
	return cells
}

// Count returns the number of occupied cells.
func (b *Board) Count() int {
	n := 0
	for _, c := range b.Squares {
		if c.Occupied {
			n++
		}
	}
	return n
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// InRange reports whether index addresses a board cell.
func InRange(index int) bool {
	return index >= 0 && index < NumCells
}

// IndexOf converts a file and rank (both 0-7) to a linear index.
func IndexOf(file, rank int) int {
	return rank*BoardSize + file
}

// FileOf returns the file (0-7) of a linear index.
func FileOf(index int) int {
	return index % BoardSize
}

// RankOf returns the rank row (0-7, top to bottom) of a linear index.
func RankOf(index int) int {
	return index / BoardSize
}
