// Package notation implements human-readable rendering of positions and
// moves: an ASCII board diagram and long algebraic (UCI-style) move text.
package notation

import (
	"strings"

	"github.com/corvidae/bitforge/bitutil"
	"github.com/corvidae/bitforge/board"
	"github.com/corvidae/bitforge/move"
	"github.com/corvidae/bitforge/piece"
)

// FormatPosition renders the board as an 8-line diagram, ranks 8 down to 1,
// files a through h, with a middle dot marking empty squares.
func FormatPosition(b *board.Board) string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			sq := rank*8 + file
			idx := b.PieceAt(sq)
			if idx == piece.None {
				sb.WriteRune('·')
			} else {
				sb.WriteByte(piece.Char(idx))
			}
			if file < 7 {
				sb.WriteByte(' ')
			}
		}
		if rank > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// UCI renders m in long algebraic notation ("e2e4", "e7e8q"), the format
// used to exchange moves with a UCI-speaking engine process.
func UCI(m move.Move) string {
	var sb strings.Builder
	sb.Grow(5)
	sb.WriteString(bitutil.SquareName(m.Src()))
	sb.WriteString(bitutil.SquareName(m.Dst()))
	if m.Kind().IsPromotion() {
		switch m.Kind().PromotedType() {
		case piece.Knight:
			sb.WriteByte('n')
		case piece.Bishop:
			sb.WriteByte('b')
		case piece.Rook:
			sb.WriteByte('r')
		default:
			sb.WriteByte('q')
		}
	}
	return sb.String()
}

// FormatMove renders m as the piece letter (empty for a pawn) followed by
// its source and destination squares, with an 'x' marker for captures — a
// compact, unambiguous move label. This is not full Standard Algebraic
// Notation: it never needs disambiguation since it always states the
// source square explicitly.
func FormatMove(m move.Move) string {
	var sb strings.Builder
	t := m.Piece().Type()
	if t != piece.Pawn && t != piece.NoType {
		sb.WriteByte(pieceLetter(t) - ('a' - 'A'))
	}
	sb.WriteString(bitutil.SquareName(m.Src()))
	if m.Kind().IsCapture() {
		sb.WriteByte('x')
	} else {
		sb.WriteByte('-')
	}
	sb.WriteString(bitutil.SquareName(m.Dst()))
	if m.Kind().IsPromotion() {
		sb.WriteByte('=')
		sb.WriteByte(pieceLetter(m.Kind().PromotedType()) - ('a' - 'A'))
	}
	switch m.Kind() {
	case move.CastleShort:
		return "O-O"
	case move.CastleLong:
		return "O-O-O"
	}
	return sb.String()
}

func pieceLetter(t piece.Type) byte {
	switch t {
	case piece.Knight:
		return 'n'
	case piece.Bishop:
		return 'b'
	case piece.Rook:
		return 'r'
	case piece.Queen:
		return 'q'
	case piece.King:
		return 'k'
	default:
		return 'p'
	}
}
