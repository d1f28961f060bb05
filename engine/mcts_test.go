package engine

import (
	"testing"
	"time"

	"mchess/chess"
)

func TestMCTSReturnsLegalMove(t *testing.T) {
	b := chess.NewBoard()
	fenBefore := b.ToFEN()
	m, ok := NewMCTS().Search(b, 100*time.Millisecond)
	if !ok {
		t.Fatal("no move from the starting position")
	}
	if _, legal := b.FindMove(m.UCI()); !legal {
		t.Errorf("move %s is not legal", m)
	}
	if b.ToFEN() != fenBefore {
		t.Error("search mutated the caller's board")
	}
}

func TestMCTSTerminalPosition(t *testing.T) {
	// Stalemate: no legal moves, no result.
	b, err := chess.ParseFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := NewMCTS().Search(b, 10*time.Millisecond); ok {
		t.Error("move returned in a terminal position")
	}
}

func TestMCTSTakesTheHangingQueen(t *testing.T) {
	b, err := chess.ParseFEN("7k/8/8/3q4/8/8/3R4/7K w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	m, ok := NewMCTS().Search(b, 300*time.Millisecond)
	if !ok {
		t.Fatal("no move")
	}
	if m.UCI() != "d2d5" {
		t.Errorf("best %s, want d2d5", m)
	}
}
