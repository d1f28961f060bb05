// Command perft counts move-tree leaf nodes for a position, optionally
// split per root move.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"mchess/chess"
)

func main() {
	fen := flag.String("fen", chess.FENStartPos, "position to search")
	depth := flag.Int("depth", 5, "perft depth")
	divide := flag.Bool("divide", false, "print per-root-move node counts")
	flag.Parse()

	b, err := chess.ParseFEN(*fen)
	if err != nil {
		log.Fatal(err)
	}

	start := time.Now()
	if *divide {
		lines, total := b.PerftDivide(*depth)
		fmt.Println(lines)
		fmt.Printf("\ntotal: %d\n", total)
	} else {
		fmt.Printf("perft(%d) = %d\n", *depth, b.Perft(*depth))
	}
	elapsed := time.Since(start)
	fmt.Printf("elapsed: %s\n", elapsed.Round(time.Millisecond))
}
