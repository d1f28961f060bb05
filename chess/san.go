package chess

import "strings"

// SAN renders the move in standard algebraic notation, without check or
// mate suffixes. Disambiguation follows the usual rules: file first, then
// rank, then both.
func (b *Board) SAN(m Move) string {
	switch m.Castle {
	case CastleKingside:
		return "O-O"
	case CastleQueenside:
		return "O-O-O"
	}

	var sb strings.Builder
	if m.PieceType == Pawn {
		if m.Capture {
			sb.WriteByte(byte('a' + FileOf(m.From)))
		}
	} else {
		sb.WriteString(m.PieceType.Letter())
		sb.WriteString(b.disambiguation(m))
	}
	if m.Capture {
		sb.WriteByte('x')
	}
	sb.WriteString(SquareName(m.To))
	if m.Promotion != NoPieceType {
		sb.WriteByte('=')
		sb.WriteString(m.Promotion.Letter())
	}
	return sb.String()
}

func (b *Board) disambiguation(m Move) string {
	sameFile, sameRank, others := false, false, false
	for _, o := range b.LegalMovesFor(m.Color) {
		if o.PieceID == m.PieceID || o.PieceType != m.PieceType || o.To != m.To {
			continue
		}
		others = true
		if FileOf(o.From) == FileOf(m.From) {
			sameFile = true
		}
		if RankOf(o.From) == RankOf(m.From) {
			sameRank = true
		}
	}
	switch {
	case !others:
		return ""
	case !sameFile:
		return string([]byte{byte('a' + FileOf(m.From))})
	case !sameRank:
		return string([]byte{byte('1' + RankOf(m.From))})
	}
	return SquareName(m.From)
}

// MoveFromSAN resolves a SAN token against the legal move list. Check and
// mate suffixes and annotation glyphs are ignored, so PGN tokens resolve
// directly. False when no legal move renders to the token.
func (b *Board) MoveFromSAN(san string) (Move, bool) {
	token := strings.TrimRight(san, "+#!?")
	for _, m := range b.GetTotalLegalMoves() {
		if b.SAN(m) == token {
			return m, true
		}
	}
	return Move{}, false
}
