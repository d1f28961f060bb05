package chess

import "math/bits"

// bitboardSet holds one bitboard per piece type per color plus the two
// occupancy boards. Copying the struct snapshots every board at once.
type bitboardSet struct {
	Pawns     [2]uint64
	Knights   [2]uint64
	Bishops   [2]uint64
	Rooks     [2]uint64
	Queens    [2]uint64
	Kings     [2]uint64
	Occupancy [2]uint64
}

func (s *bitboardSet) forType(pt PieceType) *[2]uint64 {
	switch pt {
	case Pawn:
		return &s.Pawns
	case Knight:
		return &s.Knights
	case Bishop:
		return &s.Bishops
	case Rook:
		return &s.Rooks
	case Queen:
		return &s.Queens
	case King:
		return &s.Kings
	}
	panic("unknown piece type")
}

func (s *bitboardSet) set(pt PieceType, c Color, sq int) {
	bit := uint64(1) << sq
	s.forType(pt)[c] |= bit
	s.Occupancy[c] |= bit
}

func (s *bitboardSet) clear(pt PieceType, c Color, sq int) {
	bit := uint64(1) << sq
	s.forType(pt)[c] &^= bit
	s.Occupancy[c] &^= bit
}

func (s *bitboardSet) all() uint64 {
	return s.Occupancy[White] | s.Occupancy[Black]
}

// popLSB removes and returns the lowest set bit's index.
func popLSB(bb *uint64) int {
	sq := bits.TrailingZeros64(*bb)
	*bb &= *bb - 1
	return sq
}

func popCount(bb uint64) int { return bits.OnesCount64(bb) }
