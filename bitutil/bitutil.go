// Package bitutil implements bit utilities and board geometry used by
// move generation and game management logic: LSB scanning, directional
// shifts with file-wrap masks, and square/file/rank helpers.
package bitutil

// BITSCAN_MAGIC is used to form indices into bitScanLookup.
const BITSCAN_MAGIC uint64 = 0x07EDD5E59A4E28C2

// Precalculated lookup table of LSB indices for 64-bit unsigned integers.
// See http://pradu.us/old/Nov27_2008/Buzz/research/magic/Bitboards.pdf
// section 3.2.
var bitScanLookup = [64]int{
	63, 0, 58, 1, 59, 47, 53, 2,
	60, 39, 48, 27, 54, 33, 42, 3,
	61, 51, 37, 40, 49, 18, 28, 20,
	55, 30, 34, 11, 43, 14, 22, 4,
	62, 57, 46, 52, 38, 26, 32, 41,
	50, 36, 17, 19, 29, 10, 13, 21,
	56, 45, 25, 31, 35, 16, 9, 12,
	44, 24, 15, 8, 23, 7, 6, 5,
}

// BitScan returns the index of the least significant set bit of the
// bitboard. The result is undefined if bitboard is zero.
func BitScan(bitboard uint64) int { return bitScanLookup[bitboard&-bitboard*BITSCAN_MAGIC>>58] }

// PopLSB removes the least significant bit from the bitboard and returns
// its index. If the bitboard is empty, it returns -1 and leaves it
// unchanged.
func PopLSB(bitboard *uint64) int {
	if *bitboard == 0 {
		return -1
	}
	lsb := BitScan(*bitboard)
	*bitboard &= *bitboard - 1
	return lsb
}

// CountBits returns the number of bits set within the bitboard.
func CountBits(bitboard uint64) int {
	var cnt int
	for bitboard > 0 {
		cnt++
		bitboard &= bitboard - 1
	}
	return cnt
}

// Direction is one of the eight compass directions a sliding shift can move
// a bitboard in.
type Direction int

const (
	North Direction = iota
	South
	East
	West
	NorthEast
	NorthWest
	SouthEast
	SouthWest
)

// File-wrap masks: ANDing with the mask for a direction before shifting
// zeros out the bits that would otherwise wrap around a board edge.
const (
	NotAFile  uint64 = 0xFEFEFEFEFEFEFEFE
	NotHFile  uint64 = 0x7F7F7F7F7F7F7F7F
	NotABFile uint64 = 0xFCFCFCFCFCFCFCFC
	NotGHFile uint64 = 0x3F3F3F3F3F3F3F3F
	Rank1     uint64 = 0xFF
	Rank2     uint64 = 0xFF00
	Rank7     uint64 = 0xFF000000000000
	Rank8     uint64 = 0xFF00000000000000
)

// wrapMask returns the file mask that must be applied before sliding in dir,
// to prevent bits from wrapping to the opposite edge of the board.
func wrapMask(dir Direction) uint64 {
	switch dir {
	case East, NorthEast, SouthEast:
		return NotHFile
	case West, NorthWest, SouthWest:
		return NotAFile
	default:
		return ^uint64(0)
	}
}

// Slide shifts bb by one step in dir, masking off the file that would wrap.
// N=+8, S=-8, E=+1, W=-1, NE=+9, NW=+7, SE=-7, SW=-9.
func Slide(bb uint64, dir Direction) uint64 {
	bb &= wrapMask(dir)
	switch dir {
	case North:
		return bb << 8
	case South:
		return bb >> 8
	case East:
		return bb << 1
	case West:
		return bb >> 1
	case NorthEast:
		return bb << 9
	case NorthWest:
		return bb << 7
	case SouthEast:
		return bb >> 7
	case SouthWest:
		return bb >> 9
	}
	return 0
}

// File returns the 0-based file (a=0..h=7) of a square.
func File(sq int) int { return sq % 8 }

// Rank returns the 0-based rank (1st=0..8th=7) of a square.
func Rank(sq int) int { return sq / 8 }

// squareNames maps each board square to its algebraic name.
var squareNames = [64]string{
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
}

// SquareName returns the algebraic name ("e4") of a square in 0..63.
// Out-of-range squares return "-".
func SquareName(sq int) string {
	if sq < 0 || sq > 63 {
		return "-"
	}
	return squareNames[sq]
}

// SquareFromName parses an algebraic square name ("e4") into 0..63. It
// returns false if the string is not a well-formed square name.
func SquareFromName(s string) (int, bool) {
	if len(s) != 2 {
		return 0, false
	}
	file := s[0]
	rank := s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return 0, false
	}
	return int(rank-'1')*8 + int(file-'a'), true
}
