package chess

import (
	"fmt"
	"sort"
	"strings"
)

// Perft counts the leaf nodes of the legal move tree to the given depth.
func (b *Board) Perft(depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.GetTotalLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		st, err := b.MakeMove(m)
		if err != nil {
			panic(fmt.Sprintf("perft: generated move %s rejected: %v", m, err))
		}
		nodes += b.Perft(depth - 1)
		b.UnmakeMove(st)
	}
	return nodes
}

// PerftDivide returns the per-root-move node counts plus the total, with
// lines sorted by move for stable output.
func (b *Board) PerftDivide(depth int) (string, uint64) {
	var lines []string
	var total uint64
	for _, m := range b.GetTotalLegalMoves() {
		st, err := b.MakeMove(m)
		if err != nil {
			panic(fmt.Sprintf("perft: generated move %s rejected: %v", m, err))
		}
		nodes := b.Perft(depth - 1)
		b.UnmakeMove(st)
		lines = append(lines, fmt.Sprintf("%s: %d", m, nodes))
		total += nodes
	}
	sort.Strings(lines)
	return strings.Join(lines, "\n"), total
}
