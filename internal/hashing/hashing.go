// Package hashing detects repeated final positions across replayed jobs.
package hashing

import (
	"github.com/lgbarn/chesscore-go/internal/chess"
)

// zobristKeys holds one key per piece, colour and cell.
var zobristKeys [chess.NumPieceKinds][2][chess.NumCells]uint64

func init() {
	// splitmix64 with a fixed seed keeps hashes stable across runs.
	state := uint64(0x9E3779B97F4A7C15)
	next := func() uint64 {
		state += 0x9E3779B97F4A7C15
		z := state
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return z ^ (z >> 31)
	}
	for p := range zobristKeys {
		for c := range zobristKeys[p] {
			for sq := range zobristKeys[p][c] {
				zobristKeys[p][c][sq] = next()
			}
		}
	}
}

// GenerateZobristHash returns the Zobrist hash of the placement. Side to
// move and castling rights are not part of a Board and are not hashed.
func GenerateZobristHash(board *chess.Board) uint64 {
	var hash uint64
	for sq, cell := range board.Squares {
		if cell.IsEmpty() {
			continue
		}
		hash ^= zobristKeys[cell.Piece][cell.Colour][sq]
	}
	return hash
}

// WeakHash is a cheap secondary hash used to confirm Zobrist matches.
func WeakHash(board *chess.Board) uint32 {
	var hash uint32
	for sq, cell := range board.Squares {
		if cell.IsEmpty() {
			continue
		}
		hash += uint32(sq+1) * uint32(cell.Glyph())
	}
	return hash
}

// Signature identifies a final position.
type Signature struct {
	Hash     uint64
	WeakHash uint32
	Ply      int
}

// DuplicateDetector remembers the positions it has seen. It is not safe
// for concurrent use; feed it results in input order.
type DuplicateDetector struct {
	hashTable      map[uint64][]Signature
	useExactMatch  bool // also compare ply counts
	maxCapacity    int  // 0 = unlimited
	entries        int
	duplicateCount int
}

// NewDuplicateDetector creates a detector. With exactMatch, positions
// reached after a different number of plies are not duplicates.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	if maxCapacity < 0 {
		maxCapacity = 0
	}
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]Signature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// CheckAndAdd reports whether board (reached after ply moves) was seen
// before, and records it if not. Once full, new positions are checked
// but no longer recorded.
func (d *DuplicateDetector) CheckAndAdd(board *chess.Board, ply int) bool {
	if board == nil {
		return false
	}
	sig := Signature{
		Hash:     GenerateZobristHash(board),
		WeakHash: WeakHash(board),
		Ply:      ply,
	}

	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}

	if !d.IsFull() {
		d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
		d.entries++
	}
	return false
}

func (d *DuplicateDetector) signaturesMatch(a, b Signature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	return !d.useExactMatch || a.Ply == b.Ply
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of recorded positions.
func (d *DuplicateDetector) UniqueCount() int {
	return d.entries
}

// IsFull reports whether the capacity limit has been reached.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.entries >= d.maxCapacity
}

// Reset clears the detector.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]Signature)
	d.entries = 0
	d.duplicateCount = 0
}
