package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"mchess/book"
	"mchess/chess"
	"mchess/engine"
)

type uciState struct {
	board   *chess.Board
	eng     *engine.Engine
	mcts    *engine.MCTS
	useMCTS bool

	openingBook *book.Book
	history     []string // SAN tokens of the game so far, for book lookups
	fromStart   bool     // book lines only apply to games from the initial position
}

func main() {
	bookPath := flag.String("book", "", "PGN opening book")
	bookCache := flag.String("bookcache", "", "directory for the parsed-book cache")
	ttSize := flag.Int("hash", 64, "transposition table size in MB")
	flag.Parse()

	s := &uciState{
		board:     chess.NewBoard(),
		eng:       engine.NewEngine(*ttSize, nil),
		mcts:      engine.NewMCTS(),
		fromStart: true,
	}
	s.eng.Info = func(r engine.SearchResult) {
		fmt.Printf("info depth %d score cp %d nodes %d pv %s\n",
			r.Depth, int(r.Value*100), r.Nodes, pvString(r.PV))
	}
	if *bookPath != "" {
		s.loadBook(*bookPath, *bookCache)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if !s.handle(strings.Fields(scanner.Text())) {
			return
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatal(err)
	}
}

func (s *uciState) loadBook(path, cacheDir string) {
	open := func() (io.ReadCloser, error) { return os.Open(path) }
	if cacheDir == "" {
		f, err := open()
		if err != nil {
			log.Fatalf("open book: %v", err)
		}
		defer f.Close()
		bk, err := book.LoadPGN(f)
		if err != nil {
			log.Fatalf("parse book: %v", err)
		}
		s.openingBook = bk
		return
	}
	store, err := book.OpenStore(cacheDir)
	if err != nil {
		log.Fatalf("open book cache: %v", err)
	}
	defer store.Close()
	bk, err := store.LoadOrParse(path, open)
	if err != nil {
		log.Fatalf("load book: %v", err)
	}
	s.openingBook = bk
}

func (s *uciState) handle(fields []string) bool {
	if len(fields) == 0 {
		return true
	}
	switch fields[0] {
	case "uci":
		fmt.Println("id name mchess")
		fmt.Println("option name SearchMode type combo default alphabeta var alphabeta var mcts")
		fmt.Println("uciok")
	case "isready":
		fmt.Println("readyok")
	case "ucinewgame":
		s.eng.Reset()
		s.board = chess.NewBoard()
		s.history = nil
		s.fromStart = true
	case "setoption":
		s.setOption(fields[1:])
	case "position":
		if err := s.setPosition(fields[1:]); err != nil {
			log.Printf("position: %v", err)
		}
	case "go":
		s.startSearch(fields[1:])
	case "stop":
		s.eng.Stop()
		s.mcts.Stop()
	case "quit":
		return false
	}
	return true
}

func (s *uciState) setOption(fields []string) {
	name, value := "", ""
	for i := 0; i < len(fields)-1; i++ {
		switch fields[i] {
		case "name":
			name = fields[i+1]
		case "value":
			value = fields[i+1]
		}
	}
	if strings.EqualFold(name, "SearchMode") {
		s.useMCTS = strings.EqualFold(value, "mcts")
	}
}

func (s *uciState) setPosition(fields []string) error {
	var err error
	i := 0
	switch {
	case len(fields) > 0 && fields[0] == "startpos":
		s.board = chess.NewBoard()
		s.fromStart = true
		i = 1
	case len(fields) > 0 && fields[0] == "fen":
		s.fromStart = false
		j := 1
		for j < len(fields) && fields[j] != "moves" {
			j++
		}
		s.board, err = chess.ParseFEN(strings.Join(fields[1:j], " "))
		if err != nil {
			return err
		}
		i = j
	default:
		return fmt.Errorf("want startpos or fen")
	}

	s.history = nil
	if i < len(fields) && fields[i] == "moves" {
		for _, uci := range fields[i+1:] {
			m, ok := s.board.FindMove(uci)
			if !ok {
				return fmt.Errorf("illegal move %q", uci)
			}
			s.history = append(s.history, s.board.SAN(m))
			if _, err := s.board.MakeMove(m); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *uciState) startSearch(fields []string) {
	depth := engine.MaxDepth
	budget := 5 * time.Second
	for i := 0; i < len(fields)-1; i++ {
		n, err := strconv.Atoi(fields[i+1])
		if err != nil {
			continue
		}
		switch fields[i] {
		case "depth":
			depth = n
			budget = 0
		case "movetime":
			budget = time.Duration(n) * time.Millisecond
		case "wtime":
			if s.board.SideToMove() == chess.White {
				budget = time.Duration(n/30) * time.Millisecond
			}
		case "btime":
			if s.board.SideToMove() == chess.Black {
				budget = time.Duration(n/30) * time.Millisecond
			}
		}
	}

	go func() {
		if m, ok := s.bookMove(); ok {
			fmt.Printf("bestmove %s\n", m)
			return
		}
		var best chess.Move
		if s.useMCTS {
			mctsBudget := budget
			if mctsBudget <= 0 {
				mctsBudget = 5 * time.Second
			}
			if m, ok := s.mcts.Search(s.board, mctsBudget); ok {
				best = m
			}
		} else {
			best, _ = s.eng.IterativeDeepening(s.board.Clone(), depth, budget)
		}
		fmt.Printf("bestmove %s\n", best)
	}()
}

func (s *uciState) bookMove() (chess.Move, bool) {
	if s.openingBook == nil || !s.fromStart {
		return chess.Move{}, false
	}
	return s.openingBook.Lookup(s.board, s.history)
}

func pvString(pv []chess.Move) string {
	parts := make([]string, len(pv))
	for i, m := range pv {
		parts[i] = m.UCI()
	}
	return strings.Join(parts, " ")
}
