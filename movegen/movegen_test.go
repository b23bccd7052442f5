package movegen

import (
	"testing"

	"github.com/corvidae/bitforge/board"
	"github.com/corvidae/bitforge/move"
	"github.com/corvidae/bitforge/piece"
)

func legalMoves(t *testing.T, fen string) *move.List {
	t.Helper()
	b, err := board.FromFEN(fen)
	if err != nil {
		t.Fatalf("FromFEN(%q): %v", fen, err)
	}
	var l move.List
	Generate(&b, &l)
	return &l
}

func TestStartingPositionMoveCount(t *testing.T) {
	l := legalMoves(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if got := l.Len(); got != 20 {
		t.Fatalf("expected 20 legal moves from the starting position, got %d", got)
	}
}

func TestKiwipeteMoveCount(t *testing.T) {
	// The "Kiwipete" position: a well-known perft stress position exercising
	// castling, promotions, and en passant all at once.
	l := legalMoves(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if got := l.Len(); got != 48 {
		t.Fatalf("expected 48 legal moves in Kiwipete, got %d", got)
	}
}

func TestCheckRestrictsToEvasions(t *testing.T) {
	// White king on e1 in check from a black rook on e8 with the e-file
	// otherwise open: every legal move must resolve the check.
	l := legalMoves(t, "4r1k1/8/8/8/8/8/8/4K3 w - - 0 1")
	for i := 0; i < l.Len(); i++ {
		m := l.At(i)
		dst := m.Dst()
		// Every move must either move the king off the e-file/off check, or
		// land between e1 and e8 to block.
		if m.Piece() != piece.WKing && dst%8 != 4 {
			t.Fatalf("non-king move %v does not block the check on the e-file", m)
		}
	}
	if l.Len() == 0 {
		t.Fatalf("expected at least one legal evasion")
	}
}

func TestDoubleCheckOnlyKingMoves(t *testing.T) {
	// King on e1 attacked simultaneously by a rook on e8 and a knight on
	// d3 (forking checks): only king moves can be legal.
	l := legalMoves(t, "4r1k1/8/8/8/8/3n4/8/4K3 w - - 0 1")
	for i := 0; i < l.Len(); i++ {
		if l.At(i).Piece() != piece.WKing {
			t.Fatalf("expected only king moves under double check, got %v", l.At(i))
		}
	}
}

func TestPinnedRookCannotLeaveRay(t *testing.T) {
	// White rook on d2 is pinned to the king on d1 by a black rook on d8.
	// It may shuffle along the d-file but never sidestep off it.
	l := legalMoves(t, "3r2k1/8/8/8/8/8/3R4/3K4 w - - 0 1")
	for i := 0; i < l.Len(); i++ {
		m := l.At(i)
		if m.Piece() == piece.WRook && m.Dst()%8 != 3 {
			t.Fatalf("pinned rook escaped its file with move %v", m)
		}
	}
}

func TestCastlingBlockedByAttackedSquare(t *testing.T) {
	// White king on e1, rook on h1, but f1 is covered by a black rook on f8:
	// O-O must not be offered even though the path is unoccupied.
	l := legalMoves(t, "5r1k/8/8/8/8/8/8/4K2R w K - 0 1")
	for i := 0; i < l.Len(); i++ {
		if l.At(i).Kind() == move.CastleShort {
			t.Fatalf("short castle should be illegal while f1 is attacked")
		}
	}
}

func TestCastlingThroughCheckBothSidesIllegal(t *testing.T) {
	// A black queen on e2 covers d1, e1, and f1: with the white king on e1
	// neither castle may be offered.
	l := legalMoves(t, "r3k2r/8/8/8/8/8/4q3/R3K2R w KQkq - 0 1")
	for i := 0; i < l.Len(); i++ {
		k := l.At(i).Kind()
		if k == move.CastleShort || k == move.CastleLong {
			t.Fatalf("castling must be illegal while the queen on e2 covers the king's path")
		}
	}
}

func TestSuccessorInvariants(t *testing.T) {
	// Every successor of a position must keep the twelve bitboards pairwise
	// disjoint, hold exactly one king per color, and leave the mover's own
	// king out of check.
	b, err := board.FromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	var l move.List
	Generate(&b, &l)
	for i := 0; i < l.Len(); i++ {
		next, ok := b.Apply(l.At(i))
		if !ok {
			t.Fatalf("generated move %v failed to apply", l.At(i))
		}
		var union uint64
		for _, bb := range next.Bitboards {
			if union&bb != 0 {
				t.Fatalf("bitboards overlap after move %v", l.At(i))
			}
			union |= bb
		}
		for _, c := range [...]piece.Color{piece.White, piece.Black} {
			kings := next.Bitboards[piece.Of(piece.King, c)]
			if kings == 0 || kings&(kings-1) != 0 {
				t.Fatalf("expected exactly one king per color after move %v", l.At(i))
			}
		}
		if next.SqAttacked(next.KingSquare(piece.White), piece.Black) {
			t.Fatalf("move %v leaves white's own king in check", l.At(i))
		}
	}
}

func TestAttackMaskStartingPosition(t *testing.T) {
	b := board.Standard()
	att := AttackMask(&b, piece.White)
	// Every third-rank square is covered by a pawn diagonal or a knight,
	// and nothing white reaches the fourth rank yet.
	const rank3 = uint64(0xFF0000)
	if att&rank3 != rank3 {
		t.Fatalf("expected white to attack all of rank 3, got %#x", att&rank3)
	}
	if att&(uint64(1)<<27) != 0 {
		t.Fatalf("d4 should not be attacked from the starting position")
	}
}

func TestPromotionFanOut(t *testing.T) {
	// A white pawn on b7 with rooks to capture on a8 and c8: the single push
	// yields four promotion moves, each diagonal capture four more.
	l := legalMoves(t, "r1r4k/1P6/8/8/8/8/8/4K3 w - - 0 1")
	var pushes, caps int
	for i := 0; i < l.Len(); i++ {
		m := l.At(i)
		if !m.Kind().IsPromotion() {
			continue
		}
		if m.Kind().IsCapture() {
			caps++
		} else {
			pushes++
		}
	}
	if pushes != 4 {
		t.Fatalf("expected 4 non-capture promotions, got %d", pushes)
	}
	if caps != 8 {
		t.Fatalf("expected 8 capturing promotions across both diagonals, got %d", caps)
	}
}

func TestEnPassantSuppressedWhileInCheck(t *testing.T) {
	// Black's d7-d5 double push checks the white king on e4. Even though
	// e5xd6 would remove the checking pawn, en passant is never offered
	// while the mover is in check; the check must be resolved another way.
	l := legalMoves(t, "4k3/8/8/3pP3/4K3/8/8/8 w - d6 0 2")
	for i := 0; i < l.Len(); i++ {
		if l.At(i).Kind() == move.EnPassant {
			t.Fatalf("en passant must not be generated while the mover is in check")
		}
	}
}

func TestEnPassantDiscoveredCheckRejected(t *testing.T) {
	// White king a5, white pawn b5, black pawn just double-pushed to c5
	// (en passant target c6), black rook h5. Capturing en passant removes
	// both the b5 and c5 pawns, opening the whole 5th rank from the king
	// on a5 straight to the rook on h5 — the capture must not be offered.
	l := legalMoves(t, "6k1/8/8/KPp4r/8/8/8/8 w - c6 0 1")
	for i := 0; i < l.Len(); i++ {
		if l.At(i).Kind() == move.EnPassant {
			t.Fatalf("en passant capture should be illegal: it discovers check from the rook on h5")
		}
	}
}
