package chess

// fileSliderControls walks each ray, filing an entry on every square up to
// and including the first occupied one. When the blocker is the enemy
// king the walk files one extra entry past it, marked obscured, so the
// king cannot retreat along the check ray.
func (b *Board) fileSliderControls(p *Piece, dirs [][2]int) {
	for _, d := range dirs {
		f, r := FileOf(p.Square)+d[0], RankOf(p.Square)+d[1]
		for onBoard(f, r) {
			sq := SquareAt(f, r)
			b.control.add(sq, b.entryFor(p, sq, ThreatBoth, false))
			id := b.squares[sq]
			if id == 0 {
				f, r = f+d[0], r+d[1]
				continue
			}
			q := b.pieces[id]
			if q.Type == King && q.Color != p.Color {
				if nf, nr := f+d[0], r+d[1]; onBoard(nf, nr) {
					past := SquareAt(nf, nr)
					b.control.add(past, b.entryFor(p, past, ThreatBoth, true))
				}
			}
			break
		}
	}
}

func (b *Board) sliderMoves(p *Piece, dirs [][2]int, gate moveGate, out []Move) []Move {
	for _, d := range dirs {
		f, r := FileOf(p.Square)+d[0], RankOf(p.Square)+d[1]
		for onBoard(f, r) {
			to := SquareAt(f, r)
			id := b.squares[to]
			if id == 0 {
				if gate.restrict&(1<<to) != 0 {
					out = append(out, b.newMove(p, to))
				}
				f, r = f+d[0], r+d[1]
				continue
			}
			if q := b.pieces[id]; q.Color != p.Color && gate.restrict&(1<<to) != 0 {
				out = append(out, b.captureAwareMove(p, to))
			}
			break
		}
	}
	return out
}

func sliderDirs(pt PieceType) [][2]int {
	switch pt {
	case Rook:
		return rookDirs[:]
	case Bishop:
		return bishopDirs[:]
	case Queen:
		return allDirs[:]
	}
	return nil
}
