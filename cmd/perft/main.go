// Command perft runs the move-generator node-counting oracle against a FEN
// position and reports the leaf count at each requested depth.
package main

import (
	"flag"
	"os"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/corvidae/bitforge/board"
	"github.com/corvidae/bitforge/perft"
)

var log = logging.MustGetLogger("perft")

func init() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatter := logging.NewBackendFormatter(backend, logging.MustStringFormatter(
		`%{time:15:04:05.000} %{level:.4s} %{message}`,
	))
	logging.SetBackend(formatter)
}

func main() {
	fen := flag.String("fen", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "FEN of the position to search from")
	depth := flag.Int("depth", 5, "maximum depth to search to")
	divide := flag.Bool("divide", false, "print the per-move subtree count at the final depth instead of the node count at every depth")
	flag.Parse()

	b, err := board.FromFEN(*fen)
	if err != nil {
		log.Fatalf("invalid FEN: %v", err)
	}

	printer := message.NewPrinter(language.English)

	if *divide {
		start := time.Now()
		counts := perft.Divide(b, *depth)
		for mv, n := range counts {
			printer.Printf("%s: %d\n", mv, n)
		}
		log.Infof("divide at depth %d took %s", *depth, time.Since(start))
		return
	}

	start := time.Now()
	counts := perft.Counts(b, *depth)
	elapsed := time.Since(start)
	for d, nodes := range counts {
		printer.Printf("depth %d: %d nodes\n", d, nodes)
	}
	log.Infof("sweep to depth %d took %s", *depth, elapsed)
}
