package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/corvidae/bitforge/bitutil"
	"github.com/corvidae/bitforge/piece"
)

// ParseError describes why a FEN string could not be parsed. FromFEN
// always returns a descriptive error instead of panicking, no matter how
// malformed the input.
type ParseError struct {
	FEN    string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("fen: invalid %q: %s", e.FEN, e.Reason)
}

// FromFEN parses a Forsyth-Edwards Notation string into a Board.
func FromFEN(fenStr string) (Board, error) {
	fields := strings.Fields(fenStr)
	if len(fields) != 6 {
		return Board{}, &ParseError{fenStr, fmt.Sprintf("expected 6 space-separated fields, got %d", len(fields))}
	}

	bitboards, err := parsePlacement(fields[0])
	if err != nil {
		return Board{}, &ParseError{fenStr, err.Error()}
	}

	var side piece.Color
	switch fields[1] {
	case "w":
		side = piece.White
	case "b":
		side = piece.Black
	default:
		return Board{}, &ParseError{fenStr, fmt.Sprintf("active color field must be 'w' or 'b', got %q", fields[1])}
	}

	castle, err := parseCastle(fields[2])
	if err != nil {
		return Board{}, &ParseError{fenStr, err.Error()}
	}

	epTarget, err := parseEPTarget(fields[3])
	if err != nil {
		return Board{}, &ParseError{fenStr, err.Error()}
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 {
		return Board{}, &ParseError{fenStr, fmt.Sprintf("halfmove clock field must be a non-negative integer, got %q", fields[4])}
	}

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil || fullmove < 1 {
		return Board{}, &ParseError{fenStr, fmt.Sprintf("fullmove counter field must be a positive integer, got %q", fields[5])}
	}

	ply := 2*(fullmove-1) + int(side)

	return Board{
		Bitboards:     bitboards,
		SideToMove:    side,
		Castle:        castle,
		EPTarget:      epTarget,
		HalfmoveClock: halfmove,
		Ply:           ply,
	}, nil
}

func parsePlacement(field string) ([12]uint64, error) {
	var bitboards [12]uint64
	rank, file := 7, 0

	for i := 0; i < len(field); i++ {
		c := field[i]
		switch {
		case c == '/':
			if file != 8 {
				return bitboards, fmt.Errorf("rank %d has %d squares, want 8", rank+1, file)
			}
			rank--
			file = 0
		case c >= '1' && c <= '8':
			file += int(c - '0')
		default:
			idx, ok := piece.FromChar(c)
			if !ok {
				return bitboards, fmt.Errorf("unrecognized piece character %q", string(c))
			}
			if rank < 0 || file > 7 {
				return bitboards, fmt.Errorf("piece placement overruns the board")
			}
			sq := rank*8 + file
			bitboards[idx] |= uint64(1) << sq
			file++
		}
	}
	if rank != 0 || file != 8 {
		return bitboards, fmt.Errorf("piece placement does not cover exactly 8 ranks of 8 files")
	}
	return bitboards, nil
}

func parseCastle(field string) (CastleRight, error) {
	if field == "-" {
		return 0, nil
	}
	var c CastleRight
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case 'K':
			c |= WhiteShort
		case 'Q':
			c |= WhiteLong
		case 'k':
			c |= BlackShort
		case 'q':
			c |= BlackLong
		default:
			return 0, fmt.Errorf("unrecognized castling rights character %q", string(field[i]))
		}
	}
	return c, nil
}

func parseEPTarget(field string) (int, error) {
	if field == "-" {
		return 0, nil
	}
	sq, ok := bitutil.SquareFromName(field)
	if !ok {
		return 0, fmt.Errorf("en passant target must be '-' or a square name, got %q", field)
	}
	return sq, nil
}

// FEN serializes the board into a Forsyth-Edwards Notation string.
func (b *Board) FEN() string {
	var sb strings.Builder
	sb.Grow(64)

	sb.WriteString(placementFEN(b.Bitboards))
	sb.WriteByte(' ')
	if b.SideToMove == piece.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	if b.Castle == 0 {
		sb.WriteByte('-')
	} else {
		if b.HasCastleRight(WhiteShort) {
			sb.WriteByte('K')
		}
		if b.HasCastleRight(WhiteLong) {
			sb.WriteByte('Q')
		}
		if b.HasCastleRight(BlackShort) {
			sb.WriteByte('k')
		}
		if b.HasCastleRight(BlackLong) {
			sb.WriteByte('q')
		}
	}
	sb.WriteByte(' ')

	if b.EPTarget == 0 {
		sb.WriteByte('-')
	} else {
		sb.WriteString(bitutil.SquareName(b.EPTarget))
	}
	sb.WriteByte(' ')

	sb.WriteString(strconv.Itoa(b.HalfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.Ply/2 + 1))

	return sb.String()
}

func placementFEN(bitboards [12]uint64) string {
	var board [8][8]byte
	for idx, bb := range bitboards {
		for bb != 0 {
			sq := bitutil.PopLSB(&bb)
			board[sq/8][sq%8] = piece.Char(piece.Index(idx))
		}
	}

	var sb strings.Builder
	sb.Grow(20)
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			c := board[rank][file]
			if c == 0 {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(c)
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank != 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

