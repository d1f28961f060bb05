package chess

// moveGate carries the legality masks applied to one piece's moves:
// pinMask restricts a pinned piece to its pin ray, blockMask (nonzero only
// while in check) restricts everything but the king to capturing or
// blocking the checker, and restrict is their intersection. phantom vetoes
// the piece's en-passant capture.
type moveGate struct {
	restrict  uint64
	pinMask   uint64
	blockMask uint64
	phantom   bool
}

func (b *Board) gateFor(p *Piece) moveGate {
	g := moveGate{pinMask: ^uint64(0)}
	pinMask, pinned, phantom := b.pins.restriction(p.ID)
	if pinned {
		g.pinMask = pinMask
	}
	g.phantom = phantom
	g.restrict = g.pinMask
	if ci := b.checks[p.Color]; ci.Checked {
		g.blockMask = ci.BlockMask
		g.restrict &= ci.BlockMask
	}
	return g
}

// entryFor builds a control entry for a piece influencing a square, with
// the relation read off the current occupant.
func (b *Board) entryFor(p *Piece, sq int, threat Threat, obscured bool) ControlEntry {
	rel := RelationControl
	if id := b.squares[sq]; id != 0 {
		if b.pieces[id].Color == p.Color {
			rel = RelationDefend
		} else {
			rel = RelationAttack
		}
	}
	return ControlEntry{
		PieceID:   p.ID,
		PieceType: p.Type,
		Color:     p.Color,
		Origin:    p.Square,
		Relation:  rel,
		Threat:    threat,
		Obscured:  obscured,
	}
}

// fileControls dispatches to the piece's control filer.
func (b *Board) fileControls(p *Piece) {
	switch p.Type {
	case Pawn:
		b.filePawnControls(p)
	case Knight:
		b.fileKnightControls(p)
	case Bishop, Rook, Queen:
		b.fileSliderControls(p, sliderDirs(p.Type))
	case King:
		b.fileKingControls(p)
	}
}

func (b *Board) newMove(p *Piece, to int) Move {
	return Move{
		From:      p.Square,
		To:        to,
		PieceID:   p.ID,
		PieceType: p.Type,
		Color:     p.Color,
	}
}

// captureAwareMove builds a move, filling the capture snapshot when the
// destination is occupied.
func (b *Board) captureAwareMove(p *Piece, to int) Move {
	m := b.newMove(p, to)
	if id := b.squares[to]; id != 0 {
		target := b.pieces[id]
		m.Capture = true
		m.CapturedID = target.ID
		m.CapturedType = target.Type
		m.CapturedSquare = to
	}
	return m
}

// movesFor generates the piece's legal moves under the current check and
// pin state. Under double check only the king moves.
func (b *Board) movesFor(p *Piece, out []Move) []Move {
	if b.checks[p.Color].DoubleChecked && p.Type != King {
		return out
	}
	if p.Type == King {
		return b.kingMoves(p, out)
	}
	gate := b.gateFor(p)
	switch p.Type {
	case Pawn:
		return b.pawnMoves(p, gate, out)
	case Knight:
		return b.knightMoves(p, gate, out)
	case Bishop, Rook, Queen:
		return b.sliderMoves(p, sliderDirs(p.Type), gate, out)
	}
	return out
}

// GetTotalLegalMoves generates every legal move for the side to move.
func (b *Board) GetTotalLegalMoves() []Move {
	return b.LegalMovesFor(b.sideToMove)
}

// LegalMovesFor generates every legal move for one color, in stable
// square order.
func (b *Board) LegalMovesFor(c Color) []Move {
	out := make([]Move, 0, 40)
	for sq := 0; sq < 64; sq++ {
		if id := b.squares[sq]; id != 0 {
			if p := b.pieces[id]; p.Color == c {
				out = b.movesFor(p, out)
			}
		}
	}
	return out
}

// HasLegalMoves is LegalMovesFor with early exit, for result detection.
func (b *Board) HasLegalMoves(c Color) bool {
	for sq := 0; sq < 64; sq++ {
		if id := b.squares[sq]; id != 0 {
			if p := b.pieces[id]; p.Color == c {
				if len(b.movesFor(p, nil)) > 0 {
					return true
				}
			}
		}
	}
	return false
}

// FindMove resolves coordinate notation ("e2e4", "e7e8q") against the
// legal move list, false when no legal move matches.
func (b *Board) FindMove(uci string) (Move, bool) {
	for _, m := range b.GetTotalLegalMoves() {
		if m.UCI() == uci {
			return m, true
		}
	}
	return Move{}, false
}

// MoveGivesCheck reports whether the move would check the opponent,
// without making it. Used for move ordering, it covers direct checks from
// the destination square and discovered checks through the origin square.
func (b *Board) MoveGivesCheck(m Move) bool {
	enemy := m.Color.Other()
	kingSq := b.KingSquare(enemy)
	kingBit := uint64(1) << kingSq

	occ := b.bb.all()
	occ &^= 1 << m.From
	occ |= 1 << m.To
	if m.Capture {
		occ &^= 1 << m.CapturedSquare
		occ |= 1 << m.To
	}

	pt := m.PieceType
	if m.Promotion != NoPieceType {
		pt = m.Promotion
	}
	switch pt {
	case Pawn:
		if pawnCaptures[m.Color][m.To]&kingBit != 0 {
			return true
		}
	case Knight:
		if knightAttacks[m.To]&kingBit != 0 {
			return true
		}
	case Bishop, Rook, Queen:
		if rayReaches(m.To, kingSq, occ, pt) {
			return true
		}
	case King:
		if m.Castle != CastleNone && rayReaches(m.RookTo, kingSq, occ, Rook) {
			return true
		}
	}

	// Discovered check: a slider behind the vacated square.
	if Line(m.From, kingSq) != 0 && m.From != m.To {
		d, _ := directionBetween(kingSq, m.From)
		f, r := FileOf(kingSq)+d[0], RankOf(kingSq)+d[1]
		for onBoard(f, r) {
			sq := SquareAt(f, r)
			if occ&(1<<sq) == 0 {
				f, r = f+d[0], r+d[1]
				continue
			}
			p := b.PieceAt(sq)
			if p == nil || p.ID == m.PieceID {
				// The mover itself (already relocated in occ) or the
				// en-passant victim cannot discover a check here.
				break
			}
			if p.Color == m.Color {
				diagonal := d[0] != 0 && d[1] != 0
				if p.Type == Queen || (diagonal && p.Type == Bishop) || (!diagonal && p.Type == Rook) {
					return true
				}
			}
			break
		}
	}
	return false
}

// rayReaches reports whether a slider of the given type on from attacks
// to under the occupancy mask.
func rayReaches(from, to int, occ uint64, pt PieceType) bool {
	d, ok := directionBetween(from, to)
	if !ok {
		return false
	}
	if d[0] != 0 && d[1] != 0 {
		if pt == Rook {
			return false
		}
	} else if pt == Bishop {
		return false
	}
	return Between(from, to)&occ == 0
}
