// Command book loads a PGN file into the opening-book cache and prints
// the most played continuations after an optional line of SAN moves.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"mchess/book"
)

func main() {
	pgn := flag.String("pgn", "", "PGN file to load")
	cache := flag.String("cache", "", "book cache directory (parsed once, reused after)")
	line := flag.String("line", "", "space-separated SAN moves to descend before printing stats")
	top := flag.Int("top", 10, "continuations to print")
	flag.Parse()

	if *pgn == "" {
		log.Fatal("need -pgn")
	}

	var bk *book.Book
	var err error
	if *cache != "" {
		var store *book.Store
		store, err = book.OpenStore(*cache)
		if err != nil {
			log.Fatal(err)
		}
		defer store.Close()
		bk, err = store.LoadOrParse(*pgn, func() (io.ReadCloser, error) {
			return os.Open(*pgn)
		})
	} else {
		var f *os.File
		if f, err = os.Open(*pgn); err == nil {
			defer f.Close()
			bk, err = book.LoadPGN(f)
		}
	}
	if err != nil {
		log.Fatal(err)
	}

	history := strings.Fields(*line)
	stats := bk.Stats(history)
	if stats == nil {
		log.Fatalf("line %q not in book", *line)
	}
	fmt.Printf("%d games, %d continuations after %q\n", bk.Root.Count, len(stats), *line)
	for i, st := range stats {
		if i >= *top {
			break
		}
		fmt.Printf("%-8s %d\n", st.SAN, st.Count)
	}
}
