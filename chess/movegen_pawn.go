package chess

// filePawnControls records the pawn's influence: diagonal squares are
// capture-only entries regardless of what sits there, push squares are
// quiet-only entries and exist only while the path is clear.
func (b *Board) filePawnControls(p *Piece) {
	for bb := pawnCaptures[p.Color][p.Square]; bb != 0; {
		sq := popLSB(&bb)
		b.control.add(sq, b.entryFor(p, sq, ThreatCapture, false))
	}

	forward := 8
	startRank := 1
	if p.Color == Black {
		forward = -8
		startRank = 6
	}
	one := p.Square + forward
	if one < 0 || one > 63 || b.squares[one] != 0 {
		return
	}
	b.control.add(one, b.entryFor(p, one, ThreatQuiet, false))
	if RankOf(p.Square) == startRank {
		if two := one + forward; b.squares[two] == 0 {
			b.control.add(two, b.entryFor(p, two, ThreatQuiet, false))
		}
	}
}

func (b *Board) pawnMoves(p *Piece, gate moveGate, out []Move) []Move {
	forward := 8
	promoRank := 7
	if p.Color == Black {
		forward = -8
		promoRank = 0
	}

	quiet := func(to int) {
		if gate.restrict&(1<<to) == 0 {
			return
		}
		out = b.appendPawnMove(p, to, 0, promoRank, out)
	}
	one := p.Square + forward
	if one >= 0 && one <= 63 && b.squares[one] == 0 {
		quiet(one)
		startRank := 1
		if p.Color == Black {
			startRank = 6
		}
		if RankOf(p.Square) == startRank {
			if two := one + forward; b.squares[two] == 0 {
				quiet(two)
			}
		}
	}

	for bb := pawnCaptures[p.Color][p.Square]; bb != 0; {
		to := popLSB(&bb)
		if target := b.PieceAt(to); target != nil && target.Color != p.Color {
			if gate.restrict&(1<<to) != 0 {
				out = b.appendPawnMove(p, to, target.ID, promoRank, out)
			}
			continue
		}
		if to == b.epSquare && !gate.phantom {
			capSq := b.pieces[b.epPawnID].Square
			// A pinned pawn may only capture along its pin ray. When in
			// check the capture is legal if it lands on the block mask or
			// removes the checking pawn itself.
			if gate.pinMask&(1<<to) == 0 {
				continue
			}
			if gate.blockMask != 0 && gate.blockMask&(1<<to|1<<capSq) == 0 {
				continue
			}
			m := b.newMove(p, to)
			m.Capture = true
			m.EnPassant = true
			m.CapturedID = b.epPawnID
			m.CapturedType = Pawn
			m.CapturedSquare = capSq
			out = append(out, m)
		}
	}
	return out
}

// appendPawnMove emits the move, fanned out into the four promotion
// choices on the last rank.
func (b *Board) appendPawnMove(p *Piece, to, capturedID int, promoRank int, out []Move) []Move {
	m := b.newMove(p, to)
	if capturedID != 0 {
		captured := b.pieces[capturedID]
		m.Capture = true
		m.CapturedID = capturedID
		m.CapturedType = captured.Type
		m.CapturedSquare = captured.Square
	}
	if RankOf(to) != promoRank {
		return append(out, m)
	}
	for _, pt := range [...]PieceType{Queen, Rook, Bishop, Knight} {
		pm := m
		pm.Promotion = pt
		out = append(out, pm)
	}
	return out
}
