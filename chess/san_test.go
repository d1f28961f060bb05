package chess

import "testing"

func TestSANRendering(t *testing.T) {
	b := NewBoard()
	cases := []struct {
		uci, san string
	}{
		{"e2e4", "e4"},
		{"g1f3", "Nf3"},
		{"b1c3", "Nc3"},
	}
	for _, tc := range cases {
		m, ok := b.FindMove(tc.uci)
		if !ok {
			t.Fatalf("%s missing", tc.uci)
		}
		if got := b.SAN(m); got != tc.san {
			t.Errorf("SAN(%s) = %q, want %q", tc.uci, got, tc.san)
		}
	}
}

func TestSANCastlingAndCaptures(t *testing.T) {
	b, err := ParseFEN("r3k2r/1P6/8/3p4/4P3/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		uci, san string
	}{
		{"e1g1", "O-O"},
		{"e1c1", "O-O-O"},
		{"e4d5", "exd5"},
		{"b7a8q", "bxa8=Q"},
		{"b7b8n", "b8=N"},
	}
	for _, tc := range cases {
		m, ok := b.FindMove(tc.uci)
		if !ok {
			t.Fatalf("%s missing", tc.uci)
		}
		if got := b.SAN(m); got != tc.san {
			t.Errorf("SAN(%s) = %q, want %q", tc.uci, got, tc.san)
		}
	}
}

func TestSANDisambiguation(t *testing.T) {
	// Knights on b1 and f3 both reach d2; rooks on a1 and a5 both reach
	// a3.
	b, err := ParseFEN("6k1/8/8/R7/8/5N2/8/RN4K1 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		uci, san string
	}{
		{"b1d2", "Nbd2"},
		{"f3d2", "Nfd2"},
		{"a1a3", "R1a3"},
		{"a5a3", "R5a3"},
	}
	for _, tc := range cases {
		m, ok := b.FindMove(tc.uci)
		if !ok {
			t.Fatalf("%s missing", tc.uci)
		}
		if got := b.SAN(m); got != tc.san {
			t.Errorf("SAN(%s) = %q, want %q", tc.uci, got, tc.san)
		}
	}
}

func TestMoveFromSANRoundTrip(t *testing.T) {
	b := NewBoard()
	line := []string{"e4", "e5", "Nf3", "Nc6", "Bb5", "a6", "Bxc6", "dxc6", "O-O"}
	for _, san := range line {
		m, ok := b.MoveFromSAN(san)
		if !ok {
			t.Fatalf("SAN %q did not resolve in %s", san, b.ToFEN())
		}
		if got := b.SAN(m); got != san {
			t.Errorf("round trip %q -> %q", san, got)
		}
		if _, err := b.MakeMove(m); err != nil {
			t.Fatal(err)
		}
	}
}

func TestMoveFromSANIgnoresSuffixes(t *testing.T) {
	b := NewBoard()
	for _, san := range []string{"f3", "e5", "g4"} {
		m, _ := b.MoveFromSAN(san)
		if _, err := b.MakeMove(m); err != nil {
			t.Fatal(err)
		}
	}
	if _, ok := b.MoveFromSAN("Qh4#"); !ok {
		t.Error("mate suffix not ignored")
	}
}
