package board

import (
	"github.com/corvidae/bitforge/move"
	"github.com/corvidae/bitforge/piece"
)

// castleRookSquares maps a king-destination square, for each of the four castling
// kinds, to the rook's origin and destination squares.
var castleRookSquares = map[int][2]int{
	6:  {7, 5},   // White O-O:  h1 -> f1
	2:  {0, 3},   // White O-O-O: a1 -> d1
	62: {63, 61}, // Black O-O:  h8 -> f8
	58: {56, 59}, // Black O-O-O: a8 -> d8
}

// MakeMove applies m to the board in place. The caller must ensure m is
// legal for the current position; MakeMove performs no legality checking of
// its own (see package movegen for that).
func (b *Board) MakeMove(m move.Move) {
	src, dst := m.Src(), m.Dst()
	from, to := uint64(1)<<src, uint64(1)<<dst
	moved := m.Piece()
	mover := b.PieceAt(src)
	if mover == piece.None {
		mover = moved
	}

	b.EPTarget = 0

	switch m.Kind() {
	case move.Quiet:
		b.Bitboards[mover] ^= from | to
		b.HalfmoveClock++

	case move.Capture:
		captured := b.PieceAt(dst)
		if captured != piece.None {
			b.Bitboards[captured] ^= to
			b.revokeRookRights(dst)
		}
		b.Bitboards[mover] ^= from | to
		b.HalfmoveClock = 0

	case move.EnPassant:
		b.Bitboards[mover] ^= from | to
		if mover.Color() == piece.White {
			b.Bitboards[piece.BPawn] ^= to >> 8
		} else {
			b.Bitboards[piece.WPawn] ^= to << 8
		}
		b.HalfmoveClock = 0

	case move.CastleShort, move.CastleLong:
		b.Bitboards[mover] ^= from | to
		rookSq := castleRookSquares[dst]
		rookColor := mover.Color()
		rookIdx := piece.Of(piece.Rook, rookColor)
		b.Bitboards[rookIdx] ^= (uint64(1) << rookSq[0]) | (uint64(1) << rookSq[1])
		b.HalfmoveClock++

	default: // promotions
		k := m.Kind()
		if k.IsCapture() {
			captured := b.PieceAt(dst)
			if captured != piece.None {
				b.Bitboards[captured] ^= to
				b.revokeRookRights(dst)
			}
		}
		b.Bitboards[mover] ^= from
		promoted := piece.Of(k.PromotedType(), mover.Color())
		b.Bitboards[promoted] ^= to
		b.HalfmoveClock = 0
	}

	switch mover.Type() {
	case piece.Pawn:
		b.HalfmoveClock = 0
		if dst-src == 16 {
			b.EPTarget = src + 8
		} else if src-dst == 16 {
			b.EPTarget = src - 8
		}
	case piece.King:
		if mover.Color() == piece.White {
			b.UnsetCastleRights(WhiteShort | WhiteLong)
		} else {
			b.UnsetCastleRights(BlackShort | BlackLong)
		}
	case piece.Rook:
		b.revokeRookRightsFromOrigin(src, mover.Color())
	}

	b.Ply++
	b.SideToMove = b.SideToMove.Opposite()
}

// Apply returns the successor position after m, leaving b untouched. It
// reports ok=false when m cannot be applied: the zero/invalid move sentinel,
// or an en passant capture that would leave the mover's own king in check —
// the one legality check Apply makes itself (the generator also drops such
// captures), since a rank-aligned double pin through both pawns is
// invisible to per-piece pin analysis.
// All other legality is the caller's contract; feed Apply moves produced by
// the generator for the same position.
func (b Board) Apply(m move.Move) (Board, bool) {
	if !m.IsValid() {
		return Board{}, false
	}
	mover := b.SideToMove
	next := b
	next.MakeMove(m)
	if m.Kind() == move.EnPassant && next.SqAttacked(next.KingSquare(mover), mover.Opposite()) {
		return Board{}, false
	}
	return next, true
}

// revokeRookRightsFromOrigin clears a castling right when the rook that
// guards it has moved away from its home square.
func (b *Board) revokeRookRightsFromOrigin(sq int, c piece.Color) {
	switch {
	case c == piece.White && sq == 0:
		b.UnsetCastleRights(WhiteLong)
	case c == piece.White && sq == 7:
		b.UnsetCastleRights(WhiteShort)
	case c == piece.Black && sq == 56:
		b.UnsetCastleRights(BlackLong)
	case c == piece.Black && sq == 63:
		b.UnsetCastleRights(BlackShort)
	}
}

// revokeRookRights clears a castling right when the rook that guards it is
// captured on its home square, regardless of which side captures it. A
// right must die with its rook even if that rook never moved.
func (b *Board) revokeRookRights(capturedSquare int) {
	switch capturedSquare {
	case 0:
		b.UnsetCastleRights(WhiteLong)
	case 7:
		b.UnsetCastleRights(WhiteShort)
	case 56:
		b.UnsetCastleRights(BlackLong)
	case 63:
		b.UnsetCastleRights(BlackShort)
	}
}
