// Package move implements the compact move encoding and the preallocated
// move buffer used by the generator.
package move

import "github.com/corvidae/bitforge/piece"

// Kind tags the semantics of a [Move]: quiet, capture, castling, en passant,
// or one of the four promotion kinds (each carrying its own capture flag).
type Kind uint8

const (
	// Invalid is the zero Kind, reserved for the uninitialized/invalid move
	// sentinel.
	Invalid Kind = iota
	Quiet
	Capture
	CastleShort
	CastleLong
	EnPassant
	PromoteKnight
	PromoteKnightCapture
	PromoteBishop
	PromoteBishopCapture
	PromoteRook
	PromoteRookCapture
	PromoteQueen
	PromoteQueenCapture
)

// IsCapture reports whether a move of this kind removes an enemy piece from
// the board (including en passant and capturing promotions).
func (k Kind) IsCapture() bool {
	switch k {
	case Capture, EnPassant,
		PromoteKnightCapture, PromoteBishopCapture, PromoteRookCapture, PromoteQueenCapture:
		return true
	}
	return false
}

// IsPromotion reports whether a move of this kind promotes a pawn.
func (k Kind) IsPromotion() bool {
	return k >= PromoteKnight && k <= PromoteQueenCapture
}

// PromotedType returns the piece type a promotion move produces. Calling
// this on a non-promotion Kind is a caller error and returns piece.NoType.
func (k Kind) PromotedType() piece.Type {
	switch k {
	case PromoteKnight, PromoteKnightCapture:
		return piece.Knight
	case PromoteBishop, PromoteBishopCapture:
		return piece.Bishop
	case PromoteRook, PromoteRookCapture:
		return piece.Rook
	case PromoteQueen, PromoteQueenCapture:
		return piece.Queen
	}
	return piece.NoType
}

// promoKind returns the tagged promotion Kind for promoting to t, with the
// capture flag set as requested.
func promoKind(t piece.Type, capture bool) Kind {
	switch t {
	case piece.Knight:
		if capture {
			return PromoteKnightCapture
		}
		return PromoteKnight
	case piece.Bishop:
		if capture {
			return PromoteBishopCapture
		}
		return PromoteBishop
	case piece.Rook:
		if capture {
			return PromoteRookCapture
		}
		return PromoteRook
	default:
		if capture {
			return PromoteQueenCapture
		}
		return PromoteQueen
	}
}

// Move packs a piece identity, source square, destination square, and move
// kind into a single 20-bit payload (stored in a 32-bit word):
//
//	bits 0-5:   source square
//	bits 6-11:  destination square
//	bits 12-15: piece identity (piece.Index)
//	bits 16-19: Kind
//
// The all-zero value is the invalid move sentinel: piece.Index(0) collides
// with [piece.WPawn], but Kind 0 ([Invalid]) is not a kind any generator
// ever emits, so zero is unambiguously invalid.
type Move uint32

// New encodes a quiet or plain-capture move.
func New(p piece.Index, src, dst int, kind Kind) Move {
	return Move(uint32(src) | uint32(dst)<<6 | uint32(p)<<12 | uint32(kind)<<16)
}

// NewCastle encodes a castling move. dst is unused by castling semantics
// (the kind alone identifies king/rook geometry) but is kept for a
// consistent decode path and set to the king's destination square.
func NewCastle(p piece.Index, src, dst int, short bool) Move {
	k := CastleLong
	if short {
		k = CastleShort
	}
	return New(p, src, dst, k)
}

// NewPromotion encodes a promotion (optionally capturing) move.
func NewPromotion(p piece.Index, src, dst int, to piece.Type, capture bool) Move {
	return New(p, src, dst, promoKind(to, capture))
}

// Src returns the move's source square.
func (m Move) Src() int { return int(m & 0x3F) }

// Dst returns the move's destination square.
func (m Move) Dst() int { return int(m>>6) & 0x3F }

// Piece returns the identity of the piece making the move.
func (m Move) Piece() piece.Index { return piece.Index(int(m>>12) & 0xF) }

// Kind returns the move's tagged kind.
func (m Move) Kind() Kind { return Kind(int(m>>16) & 0xF) }

// IsValid reports whether m is anything other than the invalid sentinel.
func (m Move) IsValid() bool { return m.Kind() != Invalid }

// List is a bounded, preallocated buffer of moves. The theoretical maximum
// number of legal moves in any reachable chess position is under 220, so a
// capacity of 256 always has headroom and callers never need to grow or
// reallocate it; reuse the same List across positions by calling [List.Reset].
type List struct {
	moves [256]Move
	n     int
}

// Push appends m to the list. The caller is responsible for never exceeding
// the list's capacity; the generator's per-position move counts make this
// unreachable in practice.
func (l *List) Push(m Move) {
	l.moves[l.n] = m
	l.n++
}

// Len returns the number of moves currently stored.
func (l *List) Len() int { return l.n }

// At returns the move at index i. Callers should keep i < Len().
func (l *List) At(i int) Move { return l.moves[i] }

// Reset empties the list so it can be reused for the next position without
// allocating.
func (l *List) Reset() { l.n = 0 }

// Slice returns the currently populated moves as a slice backed by the
// list's internal array. The slice is invalidated by the next [List.Reset].
func (l *List) Slice() []Move { return l.moves[:l.n] }
