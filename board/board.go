// Package board implements the board state: piece placement, side to move,
// castling rights, en passant target, and the move counters, along with the
// pure queries move generation is built on.
package board

import (
	"github.com/corvidae/bitforge/attacks"
	"github.com/corvidae/bitforge/bitutil"
	"github.com/corvidae/bitforge/piece"
)

// CastleRight is one bit of a [Board]'s castling rights.
type CastleRight uint8

const (
	WhiteShort CastleRight = 1 << iota
	WhiteLong
	BlackShort
	BlackLong
)

// Board is a complete chess position. The zero value is not a valid board;
// use [Empty] or [Standard] to construct one.
type Board struct {
	// Bitboards is indexed by [piece.Index]: 0..5 White, 6..11 Black, both in
	// Pawn, Knight, Bishop, Rook, Queen, King order.
	Bitboards [12]uint64

	SideToMove piece.Color
	Castle     CastleRight

	// EPTarget is the square a pawn can capture en passant onto, or 0 if
	// none. Zero collides with a1, but a1 is never a reachable en passant
	// target (targets always sit on rank 3 or rank 6), so the sentinel is
	// unambiguous.
	EPTarget int

	HalfmoveClock int
	Ply           int
}

// Empty returns a board with no pieces, White to move, no castling rights,
// and no en passant target.
func Empty() Board {
	return Board{SideToMove: piece.White}
}

// Standard returns the board in the standard chess starting position.
func Standard() Board {
	b, err := FromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		// The starting FEN is a compile-time constant verified by FromFEN's
		// own tests; a parse failure here would be a bug in this package.
		panic(err)
	}
	return b
}

// PieceBB returns the bitboard of the given piece identity.
func (b *Board) PieceBB(i piece.Index) uint64 {
	if i == piece.None {
		return 0
	}
	return b.Bitboards[i]
}

// PlayerBBs returns a view of a color's six bitboards in Pawn, Knight,
// Bishop, Rook, Queen, King order, backed by the board's own array.
func (b *Board) PlayerBBs(c piece.Color) []uint64 {
	base := piece.PlayerBase(c)
	return b.Bitboards[base : base+6]
}

// PlayerMask returns the occupancy bitboard of all of a color's pieces.
func (b *Board) PlayerMask(c piece.Color) uint64 {
	var m uint64
	for _, bb := range b.PlayerBBs(c) {
		m |= bb
	}
	return m
}

// PieceMask returns the occupancy bitboard of every piece on the board.
func (b *Board) PieceMask() uint64 {
	return b.PlayerMask(piece.White) | b.PlayerMask(piece.Black)
}

// EmptyMask returns the bitboard of unoccupied squares.
func (b *Board) EmptyMask() uint64 {
	return ^b.PieceMask()
}

// PieceAt returns the identity of the piece occupying sq, or [piece.None] if
// the square is empty.
func (b *Board) PieceAt(sq int) piece.Index {
	mask := uint64(1) << sq
	for i, bb := range b.Bitboards {
		if bb&mask != 0 {
			return piece.Index(i)
		}
	}
	return piece.None
}

// KingSquare returns the square of color c's king.
func (b *Board) KingSquare(c piece.Color) int {
	kingBB := b.Bitboards[piece.Of(piece.King, c)]
	return bitutil.BitScan(kingBB)
}

// SqAttacked reports whether sq is attacked by any piece belonging to by,
// ignoring en passant (en passant never captures onto an attacked-square
// test; it is handled separately by the legality check for the capturing
// pawn itself).
func (b *Board) SqAttacked(sq int, by piece.Color) bool {
	occ := b.PieceMask()
	base := piece.PlayerBase(by)

	if attacks.Pawn(int(by.Opposite()), sq)&b.Bitboards[base+int(piece.Pawn)] != 0 {
		return true
	}
	if attacks.Knight(sq)&b.Bitboards[base+int(piece.Knight)] != 0 {
		return true
	}
	if attacks.King(sq)&b.Bitboards[base+int(piece.King)] != 0 {
		return true
	}
	bishopsQueens := b.Bitboards[base+int(piece.Bishop)] | b.Bitboards[base+int(piece.Queen)]
	if attacks.Bishop(sq, occ)&bishopsQueens != 0 {
		return true
	}
	rooksQueens := b.Bitboards[base+int(piece.Rook)] | b.Bitboards[base+int(piece.Queen)]
	if attacks.Rook(sq, occ)&rooksQueens != 0 {
		return true
	}
	return false
}

// HasCastleRight reports whether r is currently available.
func (b *Board) HasCastleRight(r CastleRight) bool {
	return b.Castle&r != 0
}

// UnsetCastleRights clears the given rights.
func (b *Board) UnsetCastleRights(r CastleRight) {
	b.Castle &^= r
}

// InsufficientMaterial reports whether neither side has enough material to
// deliver checkmate by any sequence of legal moves (K vs K, K+N vs K, K+B vs
// K, or K+B vs K+B with same-colored bishops).
func (b *Board) InsufficientMaterial() bool {
	for _, i := range [...]piece.Index{piece.WPawn, piece.WRook, piece.WQueen, piece.BPawn, piece.BRook, piece.BQueen} {
		if b.Bitboards[i] != 0 {
			return false
		}
	}
	whiteMinor := bitutil.CountBits(b.Bitboards[piece.WKnight]) + bitutil.CountBits(b.Bitboards[piece.WBishop])
	blackMinor := bitutil.CountBits(b.Bitboards[piece.BKnight]) + bitutil.CountBits(b.Bitboards[piece.BBishop])

	if whiteMinor == 0 && blackMinor == 0 {
		return true
	}
	if whiteMinor+blackMinor == 1 {
		return true
	}
	if whiteMinor == 1 && blackMinor == 1 &&
		bitutil.CountBits(b.Bitboards[piece.WKnight]) == 0 && bitutil.CountBits(b.Bitboards[piece.BKnight]) == 0 {
		wBishop := b.Bitboards[piece.WBishop]
		bBishop := b.Bitboards[piece.BBishop]
		return squareColor(bitutil.BitScan(wBishop)) == squareColor(bitutil.BitScan(bBishop))
	}
	return false
}

// squareColor returns 0 for a dark square, 1 for a light square.
func squareColor(sq int) int {
	return (bitutil.Rank(sq) + bitutil.File(sq)) % 2
}
