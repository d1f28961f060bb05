package chess

type CastleSide uint8

const (
	CastleNone CastleSide = iota
	CastleKingside
	CastleQueenside
)

// Move is a fully-described move. Generators fill every field that applies,
// so making a move never has to re-derive what it affects, and the captured
// piece snapshot is enough to reverse a capture exactly.
type Move struct {
	From, To  int
	PieceID   int
	PieceType PieceType
	Color     Color

	Capture        bool
	CapturedID     int
	CapturedType   PieceType
	CapturedSquare int // differs from To only on en passant

	Promotion PieceType // NoPieceType when not a promotion
	EnPassant bool

	Castle CastleSide
	RookID int
	RookFrom, RookTo int
}

// Compact packs the move into from | to<<6 | promotion<<12, the key shape
// used by the transposition and killer tables.
func (m Move) Compact() uint16 {
	return uint16(m.From) | uint16(m.To)<<6 | uint16(m.Promotion)<<12
}

// UCI returns long algebraic notation ("e2e4", "e7e8q").
func (m Move) UCI() string {
	s := SquareName(m.From) + SquareName(m.To)
	if m.Promotion != NoPieceType {
		s += m.Promotion.String()
	}
	return s
}

func (m Move) String() string { return m.UCI() }

// MoveInfo is the undo record returned by MakeMove. It snapshots every
// piece of derived state wholesale so UnmakeMove restores the position
// bit for bit, control and pin indices included.
type MoveInfo struct {
	Move Move

	PrevHash       uint64
	PrevHalfmove   int
	PrevFullmove   int
	PrevCastling   CastlingRights
	PrevEPSquare   int
	PrevEPPawnID   int
	PrevChecks     [2]CheckInfo
	PrevBitboards  bitboardSet
	PrevControl    *controlIndex
	PrevPins       pinTable
	CapturedPiece  *Piece // snapshot copy, nil when no capture
	PromotedFrom   PieceType
}
