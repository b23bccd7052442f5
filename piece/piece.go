// Package piece implements the piece registry: the mapping between the
// twelve (PieceType, Color) identities and the bitboard index each one
// occupies.
//
// The ordering is load-bearing: White pieces occupy indices 0..5 and Black
// pieces occupy indices 6..11, both in Pawn, Knight, Bishop, Rook, Queen,
// King order. [PlayerBase] and every caller that slices six
// consecutive bitboards out of a [12]uint64 array depends on this layout.
package piece

// Type is one of the six chess piece kinds, plus the sentinel [NoType] used
// for empty-square occupancy output.
type Type int

const (
	Pawn Type = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoType
)

// Color is the side a piece belongs to.
type Color int

const (
	White Color = iota
	Black
)

// Opposite returns the other color.
func (c Color) Opposite() Color { return c ^ 1 }

// Index identifies one of the twelve (Type, Color) piece identities as used
// to index a Board's bitboard array. Values 0..5 are White pieces, 6..11 are
// Black pieces, both in Pawn..King order. [None] is the sentinel for an
// empty square.
type Index int

const (
	WPawn Index = iota
	WKnight
	WBishop
	WRook
	WQueen
	WKing
	BPawn
	BKnight
	BBishop
	BRook
	BQueen
	BKing
	// None is returned by lookups that find no piece on a square.
	None Index = -1
)

// symbols maps each Index to its FEN/ASCII character, uppercase for White,
// lowercase for Black.
var symbols = [12]byte{
	'P', 'N', 'B', 'R', 'Q', 'K',
	'p', 'n', 'b', 'r', 'q', 'k',
}

// Of returns the piece Index for the given type and color. Passing
// [NoType] returns [None].
func Of(t Type, c Color) Index {
	if t == NoType || t < Pawn || t > King {
		return None
	}
	return Index(int(c)*6 + int(t))
}

// Get decomposes an Index back into its (Type, Color) pair. Out-of-range
// indices yield ([NoType], [White]).
func Get(i Index) (Type, Color) {
	if i < WPawn || i > BKing {
		return NoType, White
	}
	return Type(int(i) % 6), Color(int(i) / 6)
}

// PlayerBase returns the index of the first bitboard (the pawn) belonging
// to color c: 0 for White, 6 for Black. Every consumer that destructures a
// player's six bitboards in Pawn, Knight, Bishop, Rook, Queen, King order
// starts at this offset.
func PlayerBase(c Color) int {
	return int(c) * 6
}

// Char returns the FEN character for the piece index, or '.' for [None] or
// any other out-of-range value.
func Char(i Index) byte {
	if i < WPawn || i > BKing {
		return '.'
	}
	return symbols[i]
}

// FromChar returns the piece Index for a FEN piece character, and false if
// the character does not name a piece.
func FromChar(ch byte) (Index, bool) {
	for i, s := range symbols {
		if s == ch {
			return Index(i), true
		}
	}
	return None, false
}

// Color returns the index's color. Out-of-range indices report White.
func (i Index) Color() Color {
	_, c := Get(i)
	return c
}

// Type returns the index's piece type. Out-of-range indices report NoType.
func (i Index) Type() Type {
	t, _ := Get(i)
	return t
}
