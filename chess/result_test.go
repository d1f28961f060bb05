package chess

import "testing"

func TestBackRankMate(t *testing.T) {
	// The rook covers the whole eighth rank and the king's own pawns cut
	// off the retreat.
	b, err := ParseFEN("R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if got := b.GetResult(); got != WhiteMates {
		t.Errorf("result %v, want %v", got, WhiteMates)
	}
}

func TestFoolsMate(t *testing.T) {
	b := NewBoard()
	for _, uci := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		m, ok := b.FindMove(uci)
		if !ok {
			t.Fatalf("move %s missing", uci)
		}
		if _, err := b.MakeMove(m); err != nil {
			t.Fatal(err)
		}
	}
	if got := b.GetResult(); got != BlackMates {
		t.Errorf("result %v, want %v", got, BlackMates)
	}
}

func TestStalemate(t *testing.T) {
	b, err := ParseFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if got := b.GetResult(); got != Stalemate {
		t.Errorf("result %v, want %v", got, Stalemate)
	}
}

func TestFiftyMoveRule(t *testing.T) {
	b, err := ParseFEN("7k/8/8/8/8/8/R7/7K w - - 100 80")
	if err != nil {
		t.Fatal(err)
	}
	if got := b.GetResult(); got != InProgress {
		t.Errorf("at clock 100: %v, want in progress", got)
	}
	m, _ := b.FindMove("a2a3")
	if _, err := b.MakeMove(m); err != nil {
		t.Fatal(err)
	}
	if got := b.GetResult(); got != DrawFiftyMove {
		t.Errorf("at clock 101: %v, want %v", got, DrawFiftyMove)
	}
}

func TestInsufficientMaterial(t *testing.T) {
	cases := []struct {
		name string
		fen  string
		want Result
	}{
		{"bare kings", "7k/8/8/8/8/8/8/7K w - - 0 1", DrawInsufficient},
		{"lone knight", "7k/8/8/8/8/8/8/5N1K w - - 0 1", DrawInsufficient},
		{"lone bishop", "7k/8/8/8/8/8/8/5B1K w - - 0 1", DrawInsufficient},
		{"same color bishops", "6bk/8/8/8/8/8/8/5B1K w - - 0 1", DrawInsufficient},
		{"opposite color bishops", "5b1k/8/8/8/8/8/8/5B1K w - - 0 1", InProgress},
		{"knight each", "6nk/8/8/8/8/8/8/5N1K w - - 0 1", InProgress},
		{"pawn left", "7k/p7/8/8/8/8/8/7K w - - 0 1", InProgress},
		{"rook left", "7k/8/8/8/8/8/8/R6K w - - 0 1", InProgress},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := ParseFEN(tc.fen)
			if err != nil {
				t.Fatal(err)
			}
			if got := b.GetResult(); got != tc.want {
				t.Errorf("result %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCalculatePhase(t *testing.T) {
	if got := NewBoard().CalculatePhase(); got != 1 {
		t.Errorf("startpos phase %v, want 1", got)
	}
	b, err := ParseFEN("7k/8/8/8/8/8/8/7K w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if got := b.CalculatePhase(); got != 0 {
		t.Errorf("bare kings phase %v, want 0", got)
	}
}
