// Package movegen generates pseudo-legal and fully legal moves for a
// position, using the attack tables in package attacks to build the
// check and pin masks that the legal generator filters against.
package movegen

import (
	"github.com/corvidae/bitforge/attacks"
	"github.com/corvidae/bitforge/bitutil"
	"github.com/corvidae/bitforge/board"
	"github.com/corvidae/bitforge/move"
	"github.com/corvidae/bitforge/piece"
)

// promotionRank returns the bitboard of the rank a color's pawns promote on.
func promotionRank(c piece.Color) uint64 {
	if c == piece.White {
		return bitutil.Rank8
	}
	return bitutil.Rank1
}

func startRank(c piece.Color) uint64 {
	if c == piece.White {
		return bitutil.Rank2
	}
	return bitutil.Rank7
}

// pushDelta returns the per-color single-push step: +8 for White, -8 for
// Black.
func pushDelta(c piece.Color) int {
	if c == piece.White {
		return 8
	}
	return -8
}

// attackersOfColor returns the bitboard of all pieces of color by that
// attack sq, given an explicit occupancy (callers pass a modified occupancy
// to x-ray through a king that's about to move off the square).
func attackersOfColor(b *board.Board, sq int, occ uint64, by piece.Color) uint64 {
	base := piece.PlayerBase(by)
	var att uint64
	att |= attacks.Pawn(int(by.Opposite()), sq) & b.Bitboards[base+int(piece.Pawn)]
	att |= attacks.Knight(sq) & b.Bitboards[base+int(piece.Knight)]
	att |= attacks.King(sq) & b.Bitboards[base+int(piece.King)]
	att |= attacks.Bishop(sq, occ) & (b.Bitboards[base+int(piece.Bishop)] | b.Bitboards[base+int(piece.Queen)])
	att |= attacks.Rook(sq, occ) & (b.Bitboards[base+int(piece.Rook)] | b.Bitboards[base+int(piece.Queen)])
	return att
}

// SquareAttacked reports whether sq is attacked by color by, given an
// explicit occupancy bitboard.
func SquareAttacked(b *board.Board, sq int, occ uint64, by piece.Color) bool {
	return attackersOfColor(b, sq, occ, by) != 0
}

// AttackMask returns the union of every square attacked by color by under
// the current full occupancy: pawn capture diagonals (never pushes or en
// passant), leaper patterns, and magic slider lookups.
func AttackMask(b *board.Board, by piece.Color) uint64 {
	occ := b.PieceMask()
	bbs := b.PlayerBBs(by)
	var att uint64
	for p := bbs[piece.Pawn]; p != 0; {
		att |= attacks.Pawn(int(by), bitutil.PopLSB(&p))
	}
	for n := bbs[piece.Knight]; n != 0; {
		att |= attacks.Knight(bitutil.PopLSB(&n))
	}
	for s := bbs[piece.Bishop] | bbs[piece.Queen]; s != 0; {
		att |= attacks.Bishop(bitutil.PopLSB(&s), occ)
	}
	for s := bbs[piece.Rook] | bbs[piece.Queen]; s != 0; {
		att |= attacks.Rook(bitutil.PopLSB(&s), occ)
	}
	for k := bbs[piece.King]; k != 0; {
		att |= attacks.King(bitutil.PopLSB(&k))
	}
	return att
}

// CheckMask returns the bitboard of pieces currently checking side's king
// (checkers) and the mask non-king moves must land on to resolve the check:
// the squares between the king and a single sliding checker plus the
// checker's own square, or just the checker's square for a contact check.
// With no checkers the mask is all ones; with two or more, it is zero,
// since only a king move can answer a double check.
func CheckMask(b *board.Board, side piece.Color) (checkers, mask uint64) {
	kingSq := b.KingSquare(side)
	occ := b.PieceMask()
	checkers = attackersOfColor(b, kingSq, occ, side.Opposite())
	switch bitutil.CountBits(checkers) {
	case 0:
		return 0, ^uint64(0)
	case 1:
		csq := bitutil.BitScan(checkers)
		return checkers, attacks.Between(kingSq, csq) | checkers
	default:
		return checkers, 0
	}
}

func aligned(a, b int) (orth, diag bool) {
	af, ar := bitutil.File(a), bitutil.Rank(a)
	bf, br := bitutil.File(b), bitutil.Rank(b)
	if af == bf || ar == br {
		return true, false
	}
	df, dr := af-bf, ar-br
	if df < 0 {
		df = -df
	}
	if dr < 0 {
		dr = -dr
	}
	if df == dr {
		return false, true
	}
	return false, false
}

// Pinned returns the bitboard of side's pieces that are pinned to their own
// king by an enemy slider, and for each pinned square the ray (inclusive of
// the pinning piece's square, exclusive of the king's) a legal move of that
// piece must stay on.
func Pinned(b *board.Board, side piece.Color) (pinned uint64, pinRay [64]uint64) {
	kingSq := b.KingSquare(side)
	opp := side.Opposite()
	own := b.PlayerMask(side)
	all := b.PieceMask()

	oppBishops := b.Bitboards[piece.Of(piece.Bishop, opp)] | b.Bitboards[piece.Of(piece.Queen, opp)]
	oppRooks := b.Bitboards[piece.Of(piece.Rook, opp)] | b.Bitboards[piece.Of(piece.Queen, opp)]
	sliders := oppBishops | oppRooks

	for sliders != 0 {
		sq := bitutil.PopLSB(&sliders)
		orth, diag := aligned(kingSq, sq)
		if !orth && !diag {
			continue
		}
		isBishop := diag && (oppBishops&(uint64(1)<<sq) != 0)
		isRook := orth && (oppRooks&(uint64(1)<<sq) != 0)
		if !isBishop && !isRook {
			continue
		}
		between := attacks.Between(kingSq, sq)
		blockers := between & all
		if bitutil.CountBits(blockers) != 1 {
			continue
		}
		if blockers&own == 0 {
			continue
		}
		blockerSq := bitutil.BitScan(blockers)
		pinned |= blockers
		pinRay[blockerSq] = between | (uint64(1) << sq)
	}
	return pinned, pinRay
}

// destAllowed reports whether moving the piece on src to dst is consistent
// with the pin and check masks: if src is pinned, dst must lie on its pin
// ray; dst must also lie on the check-resolution mask.
func destAllowed(src, dst int, pinned uint64, pinRay [64]uint64, checkMask uint64) bool {
	if checkMask&(uint64(1)<<dst) == 0 {
		return false
	}
	if pinned&(uint64(1)<<src) != 0 {
		return pinRay[src]&(uint64(1)<<dst) != 0
	}
	return true
}

// Generate appends every legal move for b.SideToMove to out.
func Generate(b *board.Board, out *move.List) {
	side := b.SideToMove
	opp := side.Opposite()
	occ := b.PieceMask()
	ownOcc := b.PlayerMask(side)
	oppOcc := b.PlayerMask(opp)
	kingSq := b.KingSquare(side)

	checkers, checkMask := CheckMask(b, side)
	numCheckers := bitutil.CountBits(checkers)
	pinned, pinRay := Pinned(b, side)

	genKingMoves(b, side, kingSq, occ, ownOcc, out)
	if numCheckers == 0 {
		genCastling(b, side, occ, out)
	}
	if numCheckers > 1 {
		return
	}

	genPawnMoves(b, side, occ, oppOcc, kingSq, pinned, pinRay, checkMask, out)
	genKnightMoves(b, side, ownOcc, oppOcc, pinned, checkMask, out)
	genSliderMoves(b, side, piece.Bishop, occ, ownOcc, oppOcc, pinned, pinRay, checkMask, out)
	genSliderMoves(b, side, piece.Rook, occ, ownOcc, oppOcc, pinned, pinRay, checkMask, out)
	genSliderMoves(b, side, piece.Queen, occ, ownOcc, oppOcc, pinned, pinRay, checkMask, out)
}

func genKingMoves(b *board.Board, side piece.Color, kingSq int, occ, ownOcc uint64, out *move.List) {
	idx := piece.Of(piece.King, side)
	targets := attacks.King(kingSq) &^ ownOcc
	// Remove the king from occupancy so a slider's attack doesn't stop at
	// the square the king is vacating.
	occWithoutKing := occ &^ (uint64(1) << kingSq)
	for targets != 0 {
		dst := bitutil.PopLSB(&targets)
		if attackersOfColor(b, dst, occWithoutKing, side.Opposite()) != 0 {
			continue
		}
		kind := move.Quiet
		if b.PieceAt(dst) != piece.None {
			kind = move.Capture
		}
		out.Push(move.New(idx, kingSq, dst, kind))
	}
}

func genCastling(b *board.Board, side piece.Color, occ uint64, out *move.List) {
	idx := piece.Of(piece.King, side)
	oppAttack := AttackMask(b, side.Opposite())
	if side == piece.White {
		// Short: f1,g1 empty, none of e1,f1,g1 attacked. Long: b1,c1,d1
		// empty, none of e1,d1,c1 attacked (b1 may be attacked; the king
		// never crosses it).
		if b.HasCastleRight(board.WhiteShort) && occ&0x60 == 0 && oppAttack&0x70 == 0 {
			out.Push(move.NewCastle(idx, 4, 6, true))
		}
		if b.HasCastleRight(board.WhiteLong) && occ&0xE == 0 && oppAttack&0x1C == 0 {
			out.Push(move.NewCastle(idx, 4, 2, false))
		}
		return
	}
	if b.HasCastleRight(board.BlackShort) && occ&0x6000000000000000 == 0 && oppAttack&0x7000000000000000 == 0 {
		out.Push(move.NewCastle(idx, 60, 62, true))
	}
	if b.HasCastleRight(board.BlackLong) && occ&0xE00000000000000 == 0 && oppAttack&0x1C00000000000000 == 0 {
		out.Push(move.NewCastle(idx, 60, 58, false))
	}
}

func genKnightMoves(b *board.Board, side piece.Color, ownOcc, oppOcc uint64, pinned, checkMask uint64, out *move.List) {
	idx := piece.Of(piece.Knight, side)
	knights := b.Bitboards[idx] &^ pinned // a pinned knight can never stay on its pin line
	for knights != 0 {
		src := bitutil.PopLSB(&knights)
		targets := attacks.Knight(src) &^ ownOcc & checkMask
		for targets != 0 {
			dst := bitutil.PopLSB(&targets)
			kind := move.Quiet
			if oppOcc&(uint64(1)<<dst) != 0 {
				kind = move.Capture
			}
			out.Push(move.New(idx, src, dst, kind))
		}
	}
}

func genSliderMoves(b *board.Board, side piece.Color, pt piece.Type, occ, ownOcc, oppOcc uint64,
	pinned uint64, pinRay [64]uint64, checkMask uint64, out *move.List) {
	idx := piece.Of(pt, side)
	pieces := b.Bitboards[idx]
	for pieces != 0 {
		src := bitutil.PopLSB(&pieces)
		var attacked uint64
		switch pt {
		case piece.Bishop:
			attacked = attacks.Bishop(src, occ)
		case piece.Rook:
			attacked = attacks.Rook(src, occ)
		default:
			attacked = attacks.Queen(src, occ)
		}
		targets := attacked &^ ownOcc & checkMask
		if pinned&(uint64(1)<<src) != 0 {
			targets &= pinRay[src]
		}
		for targets != 0 {
			dst := bitutil.PopLSB(&targets)
			kind := move.Quiet
			if oppOcc&(uint64(1)<<dst) != 0 {
				kind = move.Capture
			}
			out.Push(move.New(idx, src, dst, kind))
		}
	}
}

func genPawnMoves(b *board.Board, side piece.Color, occ, oppOcc uint64, kingSq int,
	pinned uint64, pinRay [64]uint64, checkMask uint64, out *move.List) {
	idx := piece.Of(piece.Pawn, side)
	delta := pushDelta(side)
	promo := promotionRank(side)
	pawns := b.Bitboards[idx]

	for p := pawns; p != 0; {
		src := bitutil.PopLSB(&p)
		allowed := func(dst int) bool { return destAllowed(src, dst, pinned, pinRay, checkMask) }

		// Single push.
		one := src + delta
		if one >= 0 && one < 64 && occ&(uint64(1)<<one) == 0 {
			if allowed(one) {
				emitPawnMove(idx, src, one, false, promo, out)
			}
			// Double push, only from the start rank and only if the
			// single-push square is also empty.
			if startRank(side)&(uint64(1)<<src) != 0 {
				two := src + 2*delta
				if occ&(uint64(1)<<two) == 0 && allowed(two) {
					out.Push(move.New(idx, src, two, move.Quiet))
				}
			}
		}

		// Captures.
		capTargets := attacks.Pawn(int(side), src) & oppOcc
		for capTargets != 0 {
			dst := bitutil.PopLSB(&capTargets)
			if allowed(dst) {
				emitPawnMove(idx, src, dst, true, promo, out)
			}
		}

		// En passant is considered only from a quiet position: never while
		// in check and never for a pinned pawn, even when the capture would
		// remove the checking pawn or stay on the pin ray. The remaining
		// hazard, a discovered rank check when both fifth-rank pawns vanish
		// at once, is caught by simulating the capture.
		if b.EPTarget != 0 && checkMask == ^uint64(0) && pinned&(uint64(1)<<src) == 0 &&
			attacks.Pawn(int(side), src)&(uint64(1)<<b.EPTarget) != 0 &&
			enPassantLegal(b, side, src, b.EPTarget, kingSq) {
			out.Push(move.New(idx, src, b.EPTarget, move.EnPassant))
		}
	}
}

func emitPawnMove(idx piece.Index, src, dst int, capture bool, promo uint64, out *move.List) {
	if promo&(uint64(1)<<dst) != 0 {
		for _, t := range [...]piece.Type{piece.Queen, piece.Rook, piece.Bishop, piece.Knight} {
			out.Push(move.NewPromotion(idx, src, dst, t, capture))
		}
		return
	}
	kind := move.Quiet
	if capture {
		kind = move.Capture
	}
	out.Push(move.New(idx, src, dst, kind))
}

// enPassantLegal simulates the en passant capture on a scratch copy of the
// board and rejects it if it would leave the mover's own king in check —
// the classic case where the capturing pawn and the captured pawn are both
// pinned to the king along the same rank by a rook or queen, and removing
// both at once opens a discovered check that neither pawn's individual pin
// status would catch.
func enPassantLegal(b *board.Board, side piece.Color, src, dst, kingSq int) bool {
	capturedSq := dst - pushDelta(side)
	scratch := *b
	idx := piece.Of(piece.Pawn, side)
	capturedIdx := piece.Of(piece.Pawn, side.Opposite())
	scratch.Bitboards[idx] ^= (uint64(1) << src) | (uint64(1) << dst)
	scratch.Bitboards[capturedIdx] ^= uint64(1) << capturedSq
	occ := scratch.PieceMask()
	return attackersOfColor(&scratch, kingSq, occ, side.Opposite()) == 0
}

// GeneratePseudo appends pseudo-legal moves for color to out: every move a
// piece's raw pattern allows onto a non-own-occupied square, ignoring pins,
// checks, and castling. En passant captures are the exception: one that
// would leave the mover's own king attacked is still dropped. Package dataset uses this to build its move-edge
// matrix, which by design includes moves a full legality check would reject.
func GeneratePseudo(b *board.Board, color piece.Color, out *move.List) {
	occ := b.PieceMask()
	ownOcc := b.PlayerMask(color)
	oppOcc := b.PlayerMask(color.Opposite())
	all := ^uint64(0)
	noPinRay := [64]uint64{}

	kingSq := b.KingSquare(color)
	genKingPseudo(b, color, kingSq, ownOcc, out)
	genPawnMoves(b, color, occ, oppOcc, kingSq, 0, noPinRay, all, out)
	genKnightMoves(b, color, ownOcc, oppOcc, 0, all, out)
	genSliderMoves(b, color, piece.Bishop, occ, ownOcc, oppOcc, 0, noPinRay, all, out)
	genSliderMoves(b, color, piece.Rook, occ, ownOcc, oppOcc, 0, noPinRay, all, out)
	genSliderMoves(b, color, piece.Queen, occ, ownOcc, oppOcc, 0, noPinRay, all, out)
}

func genKingPseudo(b *board.Board, side piece.Color, kingSq int, ownOcc uint64, out *move.List) {
	idx := piece.Of(piece.King, side)
	targets := attacks.King(kingSq) &^ ownOcc
	for targets != 0 {
		dst := bitutil.PopLSB(&targets)
		kind := move.Quiet
		if b.PieceAt(dst) != piece.None {
			kind = move.Capture
		}
		out.Push(move.New(idx, kingSq, dst, kind))
	}
}
