package chess

type Result uint8

const (
	InProgress Result = iota
	WhiteMates
	BlackMates
	Stalemate
	DrawFiftyMove
	DrawInsufficient
)

func (r Result) String() string {
	switch r {
	case WhiteMates:
		return "1-0"
	case BlackMates:
		return "0-1"
	case Stalemate, DrawFiftyMove, DrawInsufficient:
		return "1/2-1/2"
	}
	return "*"
}

func (r Result) IsDraw() bool {
	return r == Stalemate || r == DrawFiftyMove || r == DrawInsufficient
}

// GetResult classifies the position for the side to move.
func (b *Board) GetResult() Result {
	if !b.HasLegalMoves(b.sideToMove) {
		if b.checks[b.sideToMove].Checked {
			if b.sideToMove == White {
				return BlackMates
			}
			return WhiteMates
		}
		return Stalemate
	}
	if b.halfmoveClock > 100 {
		return DrawFiftyMove
	}
	if b.insufficientMaterial() {
		return DrawInsufficient
	}
	return InProgress
}

// insufficientMaterial reports the dead positions: bare kings, a lone
// minor piece against a bare king, or single bishops on the same square
// color.
func (b *Board) insufficientMaterial() bool {
	if b.bb.Pawns[White]|b.bb.Pawns[Black]|b.bb.Rooks[White]|b.bb.Rooks[Black]|
		b.bb.Queens[White]|b.bb.Queens[Black] != 0 {
		return false
	}
	minors := [2]int{
		popCount(b.bb.Knights[White] | b.bb.Bishops[White]),
		popCount(b.bb.Knights[Black] | b.bb.Bishops[Black]),
	}
	switch {
	case minors[White]+minors[Black] == 0:
		return true
	case minors[White]+minors[Black] == 1:
		return true
	case minors[White] == 1 && minors[Black] == 1 &&
		popCount(b.bb.Bishops[White]) == 1 && popCount(b.bb.Bishops[Black]) == 1:
		w := popLSBValue(b.bb.Bishops[White])
		bl := popLSBValue(b.bb.Bishops[Black])
		return squareColor(w) == squareColor(bl)
	}
	return false
}

func popLSBValue(bb uint64) int {
	v := bb
	return popLSB(&v)
}

func squareColor(sq int) int { return (FileOf(sq) + RankOf(sq)) & 1 }
