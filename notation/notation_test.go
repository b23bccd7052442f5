package notation

import (
	"strings"
	"testing"

	"github.com/corvidae/bitforge/board"
	"github.com/corvidae/bitforge/move"
	"github.com/corvidae/bitforge/piece"
)

func TestFormatPositionStartingBoard(t *testing.T) {
	b := board.Standard()
	got := FormatPosition(&b)
	lines := strings.Split(got, "\n")
	if len(lines) != 8 {
		t.Fatalf("expected 8 lines, got %d", len(lines))
	}
	if lines[0] != "r n b q k b n r" {
		t.Fatalf("expected rank 8 first, got %q", lines[0])
	}
	if lines[7] != "R N B Q K B N R" {
		t.Fatalf("expected rank 1 last, got %q", lines[7])
	}
	if lines[3] != "· · · · · · · ·" {
		t.Fatalf("expected an empty rank in the middle, got %q", lines[3])
	}
}

func TestUCIFormat(t *testing.T) {
	m := move.New(piece.WPawn, 12, 28, move.Quiet) // e2e4
	if got := UCI(m); got != "e2e4" {
		t.Fatalf("expected e2e4, got %q", got)
	}
	promo := move.NewPromotion(piece.WPawn, 52, 60, piece.Queen, false) // e7e8q
	if got := UCI(promo); got != "e7e8q" {
		t.Fatalf("expected e7e8q, got %q", got)
	}
}

func TestFormatMoveCastle(t *testing.T) {
	m := move.NewCastle(piece.WKing, 4, 6, true)
	if got := FormatMove(m); got != "O-O" {
		t.Fatalf("expected O-O, got %q", got)
	}
}

func TestFormatMoveCapture(t *testing.T) {
	m := move.New(piece.WKnight, 1, 18, move.Capture)
	if got := FormatMove(m); got != "Nb1xc3" {
		t.Fatalf("expected Nb1xc3, got %q", got)
	}
}
