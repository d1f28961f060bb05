package chess

import "testing"

func TestStartPosControl(t *testing.T) {
	b := NewBoard()
	// e4 is reachable by the e2 pawn's double push only; d3 by the d2
	// pawn's push and the c2/e2 pawn diagonals.
	if got := b.ControlCount(White, SquareFromName("e4")); got != 1 {
		t.Errorf("white entries on e4: %d, want 1", got)
	}
	if got := b.ControlCount(White, SquareFromName("d3")); got != 3 {
		t.Errorf("white entries on d3: %d, want 3", got)
	}
	// No color controls the middle of the other half yet.
	if got := b.ControlCount(Black, SquareFromName("e4")); got != 0 {
		t.Errorf("black entries on e4: %d, want 0", got)
	}
}

func TestPawnPushEntriesAreQuiet(t *testing.T) {
	b := NewBoard()
	for _, e := range b.ControlEntries(SquareFromName("e4")) {
		if e.PieceType == Pawn && e.Threat != ThreatQuiet {
			t.Errorf("pawn push entry with threat %d", e.Threat)
		}
	}
	for _, e := range b.ControlEntries(SquareFromName("d3")) {
		if e.Origin != SquareFromName("d2") && e.Threat != ThreatCapture {
			t.Errorf("pawn diagonal entry from %s with threat %d", SquareName(e.Origin), e.Threat)
		}
	}
}

func TestObscuredEntryBehindKing(t *testing.T) {
	// Rook a8 checks the king on e8; f8, behind the king on the ray, must
	// carry an obscured entry so the king cannot retreat along it.
	b, err := ParseFEN("R3k3/8/8/8/8/8/8/4K3 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	var foundObscured bool
	for _, e := range b.ControlEntries(SquareFromName("f8")) {
		if e.Color == White && e.Obscured {
			foundObscured = true
		}
	}
	if !foundObscured {
		t.Fatal("no obscured entry on f8")
	}
	for _, m := range b.GetTotalLegalMoves() {
		if m.To == SquareFromName("f8") {
			t.Errorf("king retreats along the check ray: %s", m)
		}
	}
}

func TestObscuredEntryStopsAfterOneSquare(t *testing.T) {
	b, err := ParseFEN("R3k3/8/8/8/8/8/8/4K3 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range b.ControlEntries(SquareFromName("g8")) {
		if e.Color == White && e.PieceType == Rook {
			t.Error("rook ray continued two squares past the king")
		}
	}
}

func TestCheckInfoSingle(t *testing.T) {
	b, err := ParseFEN("R3k3/8/8/8/8/8/8/4K3 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	ci := b.Checks(Black)
	if !ci.Checked || ci.DoubleChecked {
		t.Fatalf("want single check, got %+v", ci)
	}
	if ci.CheckedMask != 1<<E8 {
		t.Errorf("checked mask %#x", ci.CheckedMask)
	}
	// a8 itself plus b8, c8, d8.
	want := uint64(1<<A8 | 1<<B8 | 1<<C8 | 1<<D8)
	if ci.BlockMask != want {
		t.Errorf("block mask %#x, want %#x", ci.BlockMask, want)
	}
	if b.Checks(White).Checked {
		t.Error("white reported in check")
	}
}

func TestCheckInfoDouble(t *testing.T) {
	// Rook on e1 and knight on f6 both give check; only king moves are
	// legal.
	b, err := ParseFEN("4k3/8/5N2/8/8/8/8/K3R3 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	ci := b.Checks(Black)
	if !ci.DoubleChecked {
		t.Fatalf("want double check, got %+v", ci)
	}
	if ci.BlockMask != 0 {
		t.Errorf("double check block mask %#x, want 0", ci.BlockMask)
	}
	for _, m := range b.GetTotalLegalMoves() {
		if m.PieceType != King {
			t.Errorf("non-king move under double check: %s", m)
		}
	}
}

func TestKnightCheckBlockMaskIsCheckerSquare(t *testing.T) {
	b, err := ParseFEN("4k3/8/5N2/8/8/8/8/K7 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	ci := b.Checks(Black)
	if !ci.Checked || ci.DoubleChecked {
		t.Fatalf("want single knight check, got %+v", ci)
	}
	if want := uint64(1) << SquareFromName("f6"); ci.BlockMask != want {
		t.Errorf("block mask %#x, want %#x", ci.BlockMask, want)
	}
}
