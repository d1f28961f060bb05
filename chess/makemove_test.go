package chess

import "testing"

var roundTripFENs = []string{
	FENStartPos,
	fenKiwipete,
	fenPosition3,
	fenPosition4,
	fenPosition5,
	fenPosition6,
	"k7/8/8/3pP3/8/8/8/7K w - d6 0 2",
	"1n5k/P7/8/8/8/8/8/7K w - - 0 1",
}

// Every legal move must unmake back to the identical position: FEN,
// hash, and the derived indices checked by Validate.
func TestMakeUnmakeRestoresExactly(t *testing.T) {
	for _, fen := range roundTripFENs {
		b, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("%s: %v", fen, err)
		}
		before := b.ToFEN()
		beforeHash := b.Hash()
		for _, m := range b.GetTotalLegalMoves() {
			st, err := b.MakeMove(m)
			if err != nil {
				t.Fatalf("%s: make %s: %v", fen, m, err)
			}
			if err := b.Validate(); err != nil {
				t.Fatalf("%s: after %s: %v", fen, m, err)
			}
			b.UnmakeMove(st)
			if got := b.ToFEN(); got != before {
				t.Fatalf("%s: unmake %s: position %s", fen, m, got)
			}
			if b.Hash() != beforeHash {
				t.Fatalf("%s: unmake %s: hash %#x want %#x", fen, m, b.Hash(), beforeHash)
			}
			if err := b.Validate(); err != nil {
				t.Fatalf("%s: unmake %s: %v", fen, m, err)
			}
		}
	}
}

// The incrementally patched control index must match a from-scratch
// rebuild after every move along a played line.
func TestIndexConsistencyAlongLine(t *testing.T) {
	b := NewBoard()
	line := []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1b5", "a7a6", "b5c6", "d7c6", "e1g1", "f7f6", "d2d4", "e5d4", "f3d4", "c6c5", "d4f3", "d8d1", "f1d1"}
	for _, uci := range line {
		m, ok := b.FindMove(uci)
		if !ok {
			t.Fatalf("no legal move %s in %s", uci, b.ToFEN())
		}
		if _, err := b.MakeMove(m); err != nil {
			t.Fatalf("make %s: %v", uci, err)
		}
		if err := b.Validate(); err != nil {
			t.Fatalf("after %s: %v", uci, err)
		}
	}
}

func TestMakeMoveRejectsStaleMove(t *testing.T) {
	b := NewBoard()
	m, ok := b.FindMove("e2e4")
	if !ok {
		t.Fatal("e2e4 not generated")
	}
	if _, err := b.MakeMove(m); err != nil {
		t.Fatal(err)
	}
	// Same record again: the pawn is no longer on e2 and it is not
	// white's turn.
	if _, err := b.MakeMove(m); err == nil {
		t.Fatal("replayed move accepted")
	}
	other := Move{From: E2, To: E4, PieceID: 9999, PieceType: Pawn, Color: White}
	if _, err := b.MakeMove(other); err == nil {
		t.Fatal("move with unknown piece id accepted")
	}
}

func TestEnPassantStateRoundTrip(t *testing.T) {
	b := NewBoard()
	for _, uci := range []string{"e2e4", "g8f6", "e4e5", "d7d5"} {
		m, _ := b.FindMove(uci)
		if _, err := b.MakeMove(m); err != nil {
			t.Fatal(err)
		}
	}
	if b.EnPassantSquare() != SquareFromName("d6") {
		t.Fatalf("ep square %s, want d6", SquareName(b.EnPassantSquare()))
	}
	m, ok := b.FindMove("e5d6")
	if !ok {
		t.Fatal("en passant e5d6 not generated")
	}
	if !m.EnPassant || m.CapturedSquare != SquareFromName("d5") {
		t.Fatalf("bad en passant record: %+v", m)
	}
	st, err := b.MakeMove(m)
	if err != nil {
		t.Fatal(err)
	}
	if b.PieceAt(SquareFromName("d5")) != nil {
		t.Fatal("captured pawn still on d5")
	}
	b.UnmakeMove(st)
	if p := b.PieceAt(SquareFromName("d5")); p == nil || p.Type != Pawn || p.Color != Black {
		t.Fatal("captured pawn not restored")
	}
	if b.EnPassantSquare() != SquareFromName("d6") {
		t.Fatal("ep target not restored")
	}
}

func TestPromotionRoundTrip(t *testing.T) {
	b, err := ParseFEN("1n5k/P7/8/8/8/8/8/7K w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	moves := b.GetTotalLegalMoves()
	count := 0
	for _, m := range moves {
		if m.Promotion == NoPieceType {
			continue
		}
		count++
		st, err := b.MakeMove(m)
		if err != nil {
			t.Fatalf("make %s: %v", m, err)
		}
		p := b.PieceAt(m.To)
		if p == nil || p.Type != m.Promotion || p.ID != m.PieceID {
			t.Fatalf("%s: promoted piece wrong: %+v", m, p)
		}
		b.UnmakeMove(st)
		if p := b.PieceAt(m.From); p == nil || p.Type != Pawn {
			t.Fatalf("%s: pawn not restored", m)
		}
	}
	// a8 push (4) and axb8 capture (4).
	if count != 8 {
		t.Errorf("got %d promotion moves, want 8", count)
	}
}

func TestCastlingRoundTrip(t *testing.T) {
	b, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	for _, uci := range []string{"e1g1", "e1c1"} {
		m, ok := b.FindMove(uci)
		if !ok {
			t.Fatalf("castle %s not generated", uci)
		}
		st, err := b.MakeMove(m)
		if err != nil {
			t.Fatal(err)
		}
		rook := b.PieceAt(m.RookTo)
		if rook == nil || rook.Type != Rook {
			t.Fatalf("%s: rook missing from %s", uci, SquareName(m.RookTo))
		}
		if b.CastlingRights()&(CastleWhiteKingside|CastleWhiteQueenside) != 0 {
			t.Fatalf("%s: white rights not cleared", uci)
		}
		b.UnmakeMove(st)
		if b.CastlingRights() != CastleAll {
			t.Fatalf("%s: rights not restored", uci)
		}
	}
}
