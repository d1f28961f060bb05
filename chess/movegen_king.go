package chess

func (b *Board) fileKingControls(p *Piece) {
	for bb := kingAttacks[p.Square]; bb != 0; {
		sq := popLSB(&bb)
		b.control.add(sq, b.entryFor(p, sq, ThreatBoth, false))
	}
}

// kingMoves ignores the block mask: the king escapes check by leaving the
// ray, not by blocking it. A destination is off limits whenever the enemy
// holds any capture-capable entry there, which covers defended pieces and,
// through obscured entries, the square directly behind the king on a
// check ray.
func (b *Board) kingMoves(p *Piece, out []Move) []Move {
	for bb := kingAttacks[p.Square] &^ b.bb.Occupancy[p.Color]; bb != 0; {
		to := popLSB(&bb)
		if b.control.unsafeFor(p.Color, to) {
			continue
		}
		out = append(out, b.captureAwareMove(p, to))
	}
	if !b.checks[p.Color].Checked {
		out = b.castlingMoves(p, out)
	}
	return out
}

type castleSpec struct {
	right       CastlingRights
	side        CastleSide
	kingTo      int
	rookFrom    int
	rookTo      int
	emptyMask   uint64 // squares between king and rook
	transitMask uint64 // squares the king crosses or lands on
}

var castleSpecs = [2][2]castleSpec{
	White: {
		{CastleWhiteKingside, CastleKingside, G1, H1, F1, 1<<F1 | 1<<G1, 1<<F1 | 1<<G1},
		{CastleWhiteQueenside, CastleQueenside, C1, A1, D1, 1<<B1 | 1<<C1 | 1<<D1, 1<<D1 | 1<<C1},
	},
	Black: {
		{CastleBlackKingside, CastleKingside, G8, H8, F8, 1<<F8 | 1<<G8, 1<<F8 | 1<<G8},
		{CastleBlackQueenside, CastleQueenside, C8, A8, D8, 1<<B8 | 1<<C8 | 1<<D8, 1<<D8 | 1<<C8},
	},
}

func (b *Board) castlingMoves(p *Piece, out []Move) []Move {
	for _, spec := range castleSpecs[p.Color] {
		if b.castlingRights&spec.right == 0 {
			continue
		}
		if b.bb.all()&spec.emptyMask != 0 {
			continue
		}
		rook := b.PieceAt(spec.rookFrom)
		if rook == nil || rook.Type != Rook || rook.Color != p.Color {
			continue
		}
		unsafe := false
		for bb := spec.transitMask; bb != 0; {
			if b.control.unsafeFor(p.Color, popLSB(&bb)) {
				unsafe = true
				break
			}
		}
		if unsafe {
			continue
		}
		m := b.newMove(p, spec.kingTo)
		m.Castle = spec.side
		m.RookID = rook.ID
		m.RookFrom = spec.rookFrom
		m.RookTo = spec.rookTo
		out = append(out, m)
	}
	return out
}
