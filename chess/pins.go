package chess

// Pin records a sliding piece holding an enemy piece against its king.
// AllowedMask is the set of squares the pinned piece may still move to:
// the squares between attacker and king plus the attacker's own square.
//
// A phantom pin is the en-passant variant: the attacker's ray reaches the
// king through exactly the pinned pawn and the pawn that just double
// pushed, so an en-passant capture would vacate both and expose the king.
// Phantom pins veto only that capture; they never restrict other moves.
type Pin struct {
	PieceID     int
	AttackerID  int
	AllowedMask uint64
	Phantom     bool
}

type pinTable struct {
	pins map[int][]Pin
}

func newPinTable() pinTable {
	return pinTable{pins: make(map[int][]Pin)}
}

func (pt pinTable) clone() pinTable {
	c := pinTable{pins: make(map[int][]Pin, len(pt.pins))}
	for id, ps := range pt.pins {
		c.pins[id] = append([]Pin(nil), ps...)
	}
	return c
}

// restriction returns the intersection of the piece's hard pin masks and
// whether any phantom pin vetoes its en-passant capture.
func (pt pinTable) restriction(id int) (mask uint64, pinned, phantom bool) {
	mask = ^uint64(0)
	for _, p := range pt.pins[id] {
		if p.Phantom {
			phantom = true
			continue
		}
		mask &= p.AllowedMask
		pinned = true
	}
	return mask, pinned, phantom
}

// PinsOn returns the pins currently holding the piece, for inspection.
func (b *Board) PinsOn(id int) []Pin {
	return append([]Pin(nil), b.pins.pins[id]...)
}

// rebuildPins recomputes the pin table from scratch for both colors by
// walking every slider's rays toward the enemy king.
func (b *Board) rebuildPins() {
	b.pins = newPinTable()
	for _, p := range b.pieces {
		switch p.Type {
		case Rook:
			b.castPins(p, rookDirs[:])
		case Bishop:
			b.castPins(p, bishopDirs[:])
		case Queen:
			b.castPins(p, rookDirs[:])
			b.castPins(p, bishopDirs[:])
		}
	}
}

func (b *Board) castPins(slider *Piece, dirs [][2]int) {
	for _, d := range dirs {
		var candidate *Piece
		phantom := false
		f, r := FileOf(slider.Square)+d[0], RankOf(slider.Square)+d[1]
		for onBoard(f, r) {
			sq := SquareAt(f, r)
			id := b.squares[sq]
			if id == 0 {
				f += d[0]
				r += d[1]
				continue
			}
			q := b.pieces[id]
			if q.Color == slider.Color {
				// The pawn that just double pushed lets the ray continue
				// once: capturing it en passant would vacate this square.
				if !phantom && q.ID == b.epPawnID && q.Type == Pawn {
					phantom = true
					f += d[0]
					r += d[1]
					continue
				}
				break
			}
			if q.Type == King {
				if candidate != nil {
					pin := Pin{
						PieceID:     candidate.ID,
						AttackerID:  slider.ID,
						AllowedMask: Between(slider.Square, sq) | 1<<slider.Square,
						Phantom:     phantom,
					}
					b.pins.pins[candidate.ID] = append(b.pins.pins[candidate.ID], pin)
				}
				break
			}
			if candidate != nil {
				break
			}
			candidate = q
			f += d[0]
			r += d[1]
		}
	}
}
