package perft

import (
	"testing"

	"github.com/corvidae/bitforge/board"
)

func mustFEN(t *testing.T, fen string) board.Board {
	t.Helper()
	b, err := board.FromFEN(fen)
	if err != nil {
		t.Fatalf("FromFEN(%q): %v", fen, err)
	}
	return b
}

// TestStartingPosition checks the standard perft node counts for the
// starting position through depth 5, via the single-walk per-ply mapping.
// Depth 6 lives in its own test so -short can skip the 119M-node walk.
func TestStartingPosition(t *testing.T) {
	want := []uint64{1, 20, 400, 8902, 197281, 4865609}
	got := Counts(board.Standard(), len(want)-1)
	for depth, w := range want {
		if got[depth] != w {
			t.Fatalf("depth %d: expected %d got %d", depth, w, got[depth])
		}
	}
}

func TestStartingPositionDepth6(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping the 119M-node walk in short mode")
	}
	if got := Count(board.Standard(), 6); got != 119060324 {
		t.Fatalf("depth 6: expected 119060324 got %d", got)
	}
}

func TestCountsMatchesCount(t *testing.T) {
	b := mustFEN(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	counts := Counts(b, 3)
	for depth, want := range []uint64{1, 48, 2039, 97862} {
		if counts[depth] != want {
			t.Fatalf("kiwipete Counts depth %d: expected %d got %d", depth, want, counts[depth])
		}
	}
}

func TestKiwipete(t *testing.T) {
	b := mustFEN(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	want := []uint64{1, 48, 2039, 97862}
	for depth, w := range want {
		if got := Count(b, depth); got != w {
			t.Fatalf("kiwipete depth %d: expected %d got %d", depth, w, got)
		}
	}
}

func TestPosition3(t *testing.T) {
	// Exercises en passant heavily.
	b := mustFEN(t, "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
	want := []uint64{1, 14, 191, 2812, 43238}
	for depth, w := range want {
		if got := Count(b, depth); got != w {
			t.Fatalf("position 3 depth %d: expected %d got %d", depth, w, got)
		}
	}
}

func TestPosition5(t *testing.T) {
	b := mustFEN(t, "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8")
	want := []uint64{1, 44, 1486, 62379}
	for depth, w := range want {
		if got := Count(b, depth); got != w {
			t.Fatalf("position 5 depth %d: expected %d got %d", depth, w, got)
		}
	}
}

func BenchmarkStartingPositionDepth6(b *testing.B) {
	pos := board.Standard()
	for i := 0; i < b.N; i++ {
		Count(pos, 6)
	}
}
