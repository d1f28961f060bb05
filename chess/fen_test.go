package chess

import "testing"

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		FENStartPos,
		fenKiwipete,
		fenPosition5,
		"k7/8/8/3pP3/8/8/8/7K w - d6 0 2",
		"7k/8/8/8/8/8/R7/7K b - - 42 80",
	}
	for _, fen := range fens {
		b, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("%s: %v", fen, err)
		}
		if got := b.ToFEN(); got != fen {
			t.Errorf("round trip:\n in  %s\n out %s", fen, got)
		}
	}
}

func TestParseFENErrors(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",           // missing fields
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",       // 7 ranks
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1", // bad side
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KZkq - 0 1", // bad rights
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq j9 0 1", // bad ep
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e6 0 1", // ep without pawn
		"8/8/8/8/8/8/8/8 w - - 0 1",                              // no kings
		"rnbqkbnr/ppppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", // 9 files
	}
	for _, fen := range bad {
		if _, err := ParseFEN(fen); err == nil {
			t.Errorf("ParseFEN(%q) accepted", fen)
		}
	}
}

func TestStartPosBasics(t *testing.T) {
	b := NewBoard()
	if b.SideToMove() != White {
		t.Error("white is not to move")
	}
	if b.CastlingRights() != CastleAll {
		t.Errorf("castling rights %v", b.CastlingRights())
	}
	if b.KingSquare(White) != E1 || b.KingSquare(Black) != E8 {
		t.Error("kings misplaced")
	}
	if err := b.Validate(); err != nil {
		t.Error(err)
	}
}

func TestHashDistinguishesState(t *testing.T) {
	b1 := NewBoard()
	b2, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if b1.Hash() == b2.Hash() {
		t.Error("side to move not hashed")
	}
	b3, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w Qkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if b1.Hash() == b3.Hash() {
		t.Error("castling rights not hashed")
	}
}

func TestTranspositionHashesEqual(t *testing.T) {
	b1 := NewBoard()
	b2 := NewBoard()
	for _, uci := range []string{"g1f3", "g8f6", "d2d4", "d7d5"} {
		m, _ := b1.FindMove(uci)
		if _, err := b1.MakeMove(m); err != nil {
			t.Fatal(err)
		}
	}
	for _, uci := range []string{"d2d4", "d7d5", "g1f3", "g8f6"} {
		m, _ := b2.FindMove(uci)
		if _, err := b2.MakeMove(m); err != nil {
			t.Fatal(err)
		}
	}
	if b1.Hash() != b2.Hash() {
		t.Errorf("transposition hashes differ: %#x %#x", b1.Hash(), b2.Hash())
	}
}
