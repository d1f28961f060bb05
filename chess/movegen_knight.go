package chess

func (b *Board) fileKnightControls(p *Piece) {
	for bb := knightAttacks[p.Square]; bb != 0; {
		sq := popLSB(&bb)
		b.control.add(sq, b.entryFor(p, sq, ThreatBoth, false))
	}
}

func (b *Board) knightMoves(p *Piece, gate moveGate, out []Move) []Move {
	for bb := knightAttacks[p.Square] &^ b.bb.Occupancy[p.Color] & gate.restrict; bb != 0; {
		to := popLSB(&bb)
		out = append(out, b.captureAwareMove(p, to))
	}
	return out
}
