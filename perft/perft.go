// Package perft implements the move-generator node-counting oracle: walking
// the legal move tree to a fixed depth and counting leaf positions, to be
// checked against the well-known published results for standard test
// positions.
package perft

import (
	"github.com/corvidae/bitforge/bitutil"
	"github.com/corvidae/bitforge/board"
	"github.com/corvidae/bitforge/move"
	"github.com/corvidae/bitforge/movegen"
	"github.com/corvidae/bitforge/piece"
)

// Count walks the legal move tree from b to the given depth and returns the
// number of leaf positions reached. Count(b, 0) is 1 by definition: the
// position itself, with no moves made.
func Count(b board.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var l move.List
	movegen.Generate(&b, &l)

	if depth == 1 {
		return uint64(l.Len())
	}

	var nodes uint64
	for i := 0; i < l.Len(); i++ {
		child := b
		child.MakeMove(l.At(i))
		nodes += Count(child, depth-1)
	}
	return nodes
}

// Counts walks the legal move tree once and returns the node count at every
// ply from 0 through depth: Counts(b, d)[i] is the number of positions
// reachable from b in exactly i half-moves, with Counts(b, d)[0] always 1.
func Counts(b board.Board, depth int) []uint64 {
	counts := make([]uint64, depth+1)
	counts[0] = 1
	if depth > 0 {
		countInto(b, 1, counts)
	}
	return counts
}

func countInto(b board.Board, ply int, counts []uint64) {
	var l move.List
	movegen.Generate(&b, &l)
	counts[ply] += uint64(l.Len())
	if ply == len(counts)-1 {
		return
	}
	for i := 0; i < l.Len(); i++ {
		child := b
		child.MakeMove(l.At(i))
		countInto(child, ply+1, counts)
	}
}

// Divide returns, for each legal move from b, the perft node count of the
// subtree rooted at the position after that move — the standard tool for
// bisecting a perft mismatch down to the offending branch.
func Divide(b board.Board, depth int) map[string]uint64 {
	var l move.List
	movegen.Generate(&b, &l)

	result := make(map[string]uint64, l.Len())
	for i := 0; i < l.Len(); i++ {
		m := l.At(i)
		child := b
		child.MakeMove(m)
		var count uint64
		if depth <= 1 {
			count = 1
		} else {
			count = Count(child, depth-1)
		}
		result[moveKey(m)] = count
	}
	return result
}

func moveKey(m move.Move) string {
	s := bitutil.SquareName(m.Src()) + bitutil.SquareName(m.Dst())
	if m.Kind().IsPromotion() {
		switch m.Kind().PromotedType() {
		case piece.Knight:
			s += "n"
		case piece.Bishop:
			s += "b"
		case piece.Rook:
			s += "r"
		default:
			s += "q"
		}
	}
	return s
}
