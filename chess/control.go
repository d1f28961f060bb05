package chess

// Relation classifies what a control entry sits on.
type Relation uint8

const (
	RelationControl Relation = iota // empty square
	RelationDefend                  // friendly piece on the square
	RelationAttack                  // enemy piece on the square
)

// Threat classifies whether the controlling piece could capture on the
// square, move there quietly, or both. Pawn pushes are quiet-only, pawn
// diagonals capture-only, everything else both.
type Threat uint8

const (
	ThreatBoth Threat = iota
	ThreatCapture
	ThreatQuiet
)

func (t Threat) canCapture() bool { return t != ThreatQuiet }

// ControlEntry records one piece's influence on one square. Obscured
// entries lie exactly one square past the enemy king on a slider ray;
// they keep the king from stepping backwards along a check ray but never
// give check themselves.
type ControlEntry struct {
	PieceID   int
	PieceType PieceType
	Color     Color
	Origin    int // square the piece stood on when the entry was filed
	Relation  Relation
	Threat    Threat
	Obscured  bool
}

// CheckInfo summarizes check state for one color, derived from the control
// entries on that color's king square.
type CheckInfo struct {
	Checked       bool
	DoubleChecked bool
	CheckedMask   uint64 // the checked king's square
	// BlockMask holds the checking piece's square and the squares strictly
	// between it and the king. Empty under double check.
	BlockMask uint64
}

// controlIndex is the square-indexed control multimap plus the per-color
// aggregate masks kept in sync on 0-to-1 and 1-to-0 entry transitions.
type controlIndex struct {
	table    [64][]ControlEntry
	perPiece map[int][]int // piece id -> squares holding its entries

	counts        [2][64]uint16 // entries per color per square
	captureCounts [2][64]uint16 // capture-capable entries per color per square

	controlled    [2]uint64 // squares with any entry of the color
	captureThreat [2]uint64 // squares a color could capture on, obscured included
}

func newControlIndex() *controlIndex {
	return &controlIndex{perPiece: make(map[int][]int)}
}

func (ci *controlIndex) clone() *controlIndex {
	c := &controlIndex{
		perPiece:      make(map[int][]int, len(ci.perPiece)),
		counts:        ci.counts,
		captureCounts: ci.captureCounts,
		controlled:    ci.controlled,
		captureThreat: ci.captureThreat,
	}
	for sq, entries := range ci.table {
		if len(entries) > 0 {
			c.table[sq] = append([]ControlEntry(nil), entries...)
		}
	}
	for id, sqs := range ci.perPiece {
		c.perPiece[id] = append([]int(nil), sqs...)
	}
	return c
}

func (ci *controlIndex) add(sq int, e ControlEntry) {
	ci.table[sq] = append(ci.table[sq], e)
	ci.perPiece[e.PieceID] = append(ci.perPiece[e.PieceID], sq)

	c := e.Color
	ci.counts[c][sq]++
	if ci.counts[c][sq] == 1 {
		ci.controlled[c] |= 1 << sq
	}
	if e.Threat.canCapture() {
		ci.captureCounts[c][sq]++
		if ci.captureCounts[c][sq] == 1 {
			ci.captureThreat[c] |= 1 << sq
		}
	}
}

// removePiece drops every entry filed by the piece.
func (ci *controlIndex) removePiece(id int) {
	sqs, ok := ci.perPiece[id]
	if !ok {
		return
	}
	delete(ci.perPiece, id)
	for _, sq := range sqs {
		entries := ci.table[sq]
		for i := 0; i < len(entries); {
			e := entries[i]
			if e.PieceID != id {
				i++
				continue
			}
			entries[i] = entries[len(entries)-1]
			entries = entries[:len(entries)-1]

			ci.counts[e.Color][sq]--
			if ci.counts[e.Color][sq] == 0 {
				ci.controlled[e.Color] &^= 1 << sq
			}
			if e.Threat.canCapture() {
				ci.captureCounts[e.Color][sq]--
				if ci.captureCounts[e.Color][sq] == 0 {
					ci.captureThreat[e.Color] &^= 1 << sq
				}
			}
		}
		ci.table[sq] = entries
	}
}

// entriesAt returns the entries recorded on a square. Callers must not
// mutate the returned slice.
func (ci *controlIndex) entriesAt(sq int) []ControlEntry { return ci.table[sq] }

// unsafeFor reports whether a king of the given color may not stand on the
// square: any enemy capture-capable entry counts, obscured ones and
// defenses of enemy pieces included.
func (ci *controlIndex) unsafeFor(c Color, sq int) bool {
	return ci.captureThreat[c.Other()]&(1<<sq) != 0
}

// equal compares the semantic content of two indices: the same entry
// multisets per square regardless of slice order.
func (ci *controlIndex) equal(other *controlIndex) bool {
	for sq := 0; sq < 64; sq++ {
		a, b := ci.table[sq], other.table[sq]
		if len(a) != len(b) {
			return false
		}
		matched := make([]bool, len(b))
	outer:
		for _, ea := range a {
			for j, eb := range b {
				if !matched[j] && ea == eb {
					matched[j] = true
					continue outer
				}
			}
			return false
		}
	}
	return true
}
