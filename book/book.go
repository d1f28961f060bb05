// Package book holds an opening book built from PGN game records: a trie
// of SAN tokens with per-branch frequency counts, and a persistent store
// that caches parsed books.
package book

import (
	"bufio"
	"io"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"mchess/chess"
)

// Node is one trie position. Count is how many games reached it.
type Node struct {
	Count    int              `json:"count"`
	Children map[string]*Node `json:"children,omitempty"`
}

type Book struct {
	Root *Node `json:"root"`
}

func New() *Book {
	return &Book{Root: &Node{}}
}

// AddGame threads one game's SAN tokens into the trie, bumping every
// node along the path.
func (bk *Book) AddGame(moves []string) {
	node := bk.Root
	node.Count++
	for _, san := range moves {
		if node.Children == nil {
			node.Children = make(map[string]*Node)
		}
		child := node.Children[san]
		if child == nil {
			child = &Node{}
			node.Children[san] = child
		}
		child.Count++
		node = child
	}
}

// walk descends the trie along a game history, nil when the line leaves
// the book.
func (bk *Book) walk(history []string) *Node {
	node := bk.Root
	for _, san := range history {
		if node == nil {
			return nil
		}
		node = node.Children[san]
	}
	return node
}

// BestMove returns the most played continuation after the given history.
// Ties break alphabetically so the choice is deterministic.
func (bk *Book) BestMove(history []string) (string, bool) {
	node := bk.walk(history)
	if node == nil || len(node.Children) == 0 {
		return "", false
	}
	sans := maps.Keys(node.Children)
	slices.Sort(sans)
	best := sans[0]
	for _, san := range sans[1:] {
		if node.Children[san].Count > node.Children[best].Count {
			best = san
		}
	}
	return best, true
}

// Lookup resolves the book's preferred continuation to a legal move on
// the board, false when the line left the book or the token does not
// match any legal move.
func (bk *Book) Lookup(b *chess.Board, history []string) (chess.Move, bool) {
	san, ok := bk.BestMove(history)
	if !ok {
		return chess.Move{}, false
	}
	return b.MoveFromSAN(san)
}

// BranchStat is one continuation's popularity after some history.
type BranchStat struct {
	SAN   string
	Count int
}

// Stats lists the continuations after a history, most played first.
func (bk *Book) Stats(history []string) []BranchStat {
	node := bk.walk(history)
	if node == nil {
		return nil
	}
	stats := make([]BranchStat, 0, len(node.Children))
	for san, child := range node.Children {
		stats = append(stats, BranchStat{SAN: san, Count: child.Count})
	}
	slices.SortFunc(stats, func(a, b BranchStat) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return strings.Compare(a.SAN, b.SAN)
	})
	return stats
}

// LoadPGN parses a PGN stream into a book. Tag pairs, commentary,
// variations, move numbers, annotation glyphs and game results are
// dropped; what remains per game is its SAN token sequence.
func LoadPGN(r io.Reader) (*Book, error) {
	bk := New()
	var game []string
	flush := func() {
		if len(game) > 0 {
			bk.AddGame(game)
			game = nil
		}
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	inComment := false
	varDepth := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "[") {
			if strings.HasPrefix(line, "[") {
				flush()
			}
			continue
		}
		for _, tok := range strings.Fields(line) {
			tok, inComment = stripComment(tok, inComment)
			if tok == "" {
				continue
			}
			opens := strings.Count(tok, "(")
			closes := strings.Count(tok, ")")
			inVariation := varDepth > 0
			varDepth += opens - closes
			if varDepth < 0 {
				varDepth = 0
			}
			if inVariation || opens > 0 {
				continue
			}
			if isResult(tok) {
				flush()
				continue
			}
			if san, ok := normalizeMove(tok); ok {
				game = append(game, san)
			}
		}
	}
	flush()
	return bk, scanner.Err()
}

func stripComment(tok string, inComment bool) (string, bool) {
	if inComment {
		if i := strings.IndexByte(tok, '}'); i >= 0 {
			return stripComment(tok[i+1:], false)
		}
		return "", true
	}
	if i := strings.IndexByte(tok, '{'); i >= 0 {
		return tok[:i], true
	}
	return tok, false
}

func isResult(tok string) bool {
	return tok == "1-0" || tok == "0-1" || tok == "1/2-1/2" || tok == "*"
}

// normalizeMove turns a PGN token into a bare SAN token, dropping glued
// move numbers ("1.e4"), NAGs ("$4"), stray variation parens and check
// or annotation suffixes. ok is false for non-move tokens.
func normalizeMove(tok string) (string, bool) {
	tok = strings.Trim(tok, "()")
	if tok == "" || tok[0] == '$' {
		return "", false
	}
	if i := strings.LastIndexByte(tok, '.'); i >= 0 {
		tok = tok[i+1:]
	}
	tok = strings.TrimRight(tok, "+#!?")
	if tok == "" {
		return "", false
	}
	c := tok[0]
	if c == 'O' || (c >= 'a' && c <= 'h') || c == 'B' || c == 'N' || c == 'R' || c == 'Q' || c == 'K' {
		return tok, true
	}
	return "", false
}
