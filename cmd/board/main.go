// Command board renders a FEN position as a bordered ASCII chessboard.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/clinaresl/table"

	"github.com/corvidae/bitforge/board"
	"github.com/corvidae/bitforge/piece"
)

func main() {
	fen := flag.String("fen", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "FEN of the position to render")
	flag.Parse()

	b, err := board.FromFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid FEN: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(render(&b))
}

// render draws the board as a double-ruled table, shading the dark squares
// so an empty board still reads as a chessboard.
func render(b *board.Board) string {
	tab, _ := table.NewTable("||cccccccc||")
	tab.AddDoubleRule()

	for rank := 7; rank >= 0; rank-- {
		row := make([]any, 8)
		for file := 0; file < 8; file++ {
			sq := rank*8 + file
			idx := b.PieceAt(sq)
			if idx == piece.None {
				if (rank+file)%2 == 0 {
					row[file] = "▒"
				} else {
					row[file] = " "
				}
				continue
			}
			row[file] = string(piece.Char(idx))
		}
		tab.AddRow(row...)
	}

	tab.AddDoubleRule()
	return fmt.Sprintf("%v", tab)
}
