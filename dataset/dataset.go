// Package dataset builds a flattened, training-friendly view of a position:
// per-square piece-type and owner arrays, a 64x64 move-adjacency matrix, and
// a pinned-square mask. It depends on no tensor or dataset-file library;
// building the snapshot is this package's job, writing it to a training
// corpus is the caller's.
package dataset

import (
	"github.com/corvidae/bitforge/board"
	"github.com/corvidae/bitforge/move"
	"github.com/corvidae/bitforge/movegen"
	"github.com/corvidae/bitforge/piece"
)

// Snapshot is a flattened, square-indexed view of a position suitable for
// feeding a learned model: occupation by piece type and color, a move
// adjacency matrix built from both sides' pseudo-legal moves, and which
// squares hold a piece pinned to its own king.
type Snapshot struct {
	// PieceType holds the occupying piece's type per square, or
	// [piece.NoType] for an empty square.
	PieceType [64]piece.Type
	// Occupant holds the occupying piece's color per square; meaningless
	// where PieceType is [piece.NoType].
	Occupant [64]piece.Color
	// Empty reports, per square, whether no piece occupies it.
	Empty [64]bool
	// Moves[src][dst] is true if some pseudo-legal move, of either color,
	// goes from src to dst. Pseudo-legal rather than fully legal moves are
	// used deliberately: the adjacency matrix is meant to describe what the
	// pieces on the board threaten or could reach, not what is playable
	// this turn, so it still reflects a pinned piece's geometric reach.
	Moves [64][64]bool
	// Pinned reports, per square, whether the piece there is pinned to its
	// own king by an enemy slider.
	Pinned [64]bool
}

// BuildSnapshot assembles a Snapshot of b.
func BuildSnapshot(b board.Board) Snapshot {
	var s Snapshot

	for sq := 0; sq < 64; sq++ {
		idx := b.PieceAt(sq)
		if idx == piece.None {
			s.PieceType[sq] = piece.NoType
			s.Empty[sq] = true
			continue
		}
		s.PieceType[sq] = idx.Type()
		s.Occupant[sq] = idx.Color()
	}

	var l move.List
	movegen.GeneratePseudo(&b, piece.White, &l)
	recordMoves(&s, &l)
	l.Reset()
	movegen.GeneratePseudo(&b, piece.Black, &l)
	recordMoves(&s, &l)

	whitePinned, _ := movegen.Pinned(&b, piece.White)
	blackPinned, _ := movegen.Pinned(&b, piece.Black)
	pinned := whitePinned | blackPinned
	for sq := 0; sq < 64; sq++ {
		if pinned&(uint64(1)<<sq) != 0 {
			s.Pinned[sq] = true
		}
	}

	return s
}

func recordMoves(s *Snapshot, l *move.List) {
	for i := 0; i < l.Len(); i++ {
		m := l.At(i)
		s.Moves[m.Src()][m.Dst()] = true
	}
}
