package chess

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

var ErrInvalidMove = errors.New("invalid move")

// Board is the full game state: piece-type bitboards, a mailbox of piece
// ids, the piece registry, and the incrementally maintained control, pin
// and check indices derived from them.
type Board struct {
	bb      bitboardSet
	squares [64]int       // piece id per square, 0 when empty
	pieces  map[int]*Piece
	nextID  int

	sideToMove     Color
	castlingRights CastlingRights
	epSquare       int // en-passant target square, NoSquare when unset
	epPawnID       int // id of the pawn that just double pushed, 0 when unset
	halfmoveClock  int
	fullmoveNumber int

	hash    uint64
	control *controlIndex
	pins    pinTable
	checks  [2]CheckInfo
}

func newEmptyBoard() *Board {
	return &Board{
		pieces:   make(map[int]*Piece),
		nextID:   1,
		epSquare: NoSquare,
		control:  newControlIndex(),
		pins:     newPinTable(),
	}
}

// spawnPiece registers a new piece during position setup or promotion
// bookkeeping. It does not touch the control index.
func (b *Board) spawnPiece(pt PieceType, c Color, sq int) *Piece {
	p := &Piece{ID: b.nextID, Type: pt, Color: c, Square: sq}
	b.nextID++
	b.pieces[p.ID] = p
	b.squares[sq] = p.ID
	b.bb.set(pt, c, sq)
	return p
}

// finishSetup derives every index once the registry is populated.
func (b *Board) finishSetup() {
	b.hash = b.computeHash()
	b.rebuildControl()
	b.rebuildPins()
	b.refreshChecks()
}

// rebuildControl recomputes the whole control index from scratch.
func (b *Board) rebuildControl() {
	b.control = newControlIndex()
	for _, p := range b.pieces {
		b.fileControls(p)
	}
}

// refreshChecks rederives both colors' check state from the control
// entries on their king squares.
func (b *Board) refreshChecks() {
	for c := White; c <= Black; c++ {
		b.checks[c] = b.computeChecks(c)
	}
}

func (b *Board) computeChecks(c Color) CheckInfo {
	kingSq := b.KingSquare(c)
	var ci CheckInfo
	for _, e := range b.control.entriesAt(kingSq) {
		if e.Color == c || e.Obscured || !e.Threat.canCapture() {
			continue
		}
		if ci.Checked {
			ci.DoubleChecked = true
			ci.BlockMask = 0
			break
		}
		ci.Checked = true
		ci.CheckedMask = 1 << kingSq
		ci.BlockMask = 1<<e.Origin | Between(e.Origin, kingSq)
	}
	return ci
}

// KingSquare derives the king's square from its bitboard.
func (b *Board) KingSquare(c Color) int {
	return bits.TrailingZeros64(b.bb.Kings[c])
}

func (b *Board) SideToMove() Color          { return b.sideToMove }
func (b *Board) Hash() uint64               { return b.hash }
func (b *Board) CastlingRights() CastlingRights { return b.castlingRights }
func (b *Board) EnPassantSquare() int       { return b.epSquare }
func (b *Board) HalfmoveClock() int         { return b.halfmoveClock }
func (b *Board) FullmoveNumber() int        { return b.fullmoveNumber }

// Checks returns the check summary for a color.
func (b *Board) Checks(c Color) CheckInfo { return b.checks[c] }

// InCheck reports whether the side to move is in check.
func (b *Board) InCheck() bool { return b.checks[b.sideToMove].Checked }

// PieceAt returns the piece on a square, nil when empty.
func (b *Board) PieceAt(sq int) *Piece {
	if id := b.squares[sq]; id != 0 {
		return b.pieces[id]
	}
	return nil
}

// PieceByID looks a piece up in the registry.
func (b *Board) PieceByID(id int) *Piece { return b.pieces[id] }

// Pieces returns the live pieces of one color.
func (b *Board) Pieces(c Color) []*Piece {
	out := make([]*Piece, 0, 16)
	for _, p := range b.pieces {
		if p.Color == c {
			out = append(out, p)
		}
	}
	return out
}

// Occupancy returns a color's occupancy bitboard.
func (b *Board) Occupancy(c Color) uint64 { return b.bb.Occupancy[c] }

// ControlEntries returns the control entries on a square.
func (b *Board) ControlEntries(sq int) []ControlEntry {
	return append([]ControlEntry(nil), b.control.entriesAt(sq)...)
}

// Controlled returns the squares a color has any control entry on.
func (b *Board) Controlled(c Color) uint64 { return b.control.controlled[c] }

// ControlCount returns how many entries a color holds on a square.
func (b *Board) ControlCount(c Color, sq int) int {
	return int(b.control.counts[c][sq])
}

// Clone deep-copies the board. Clones share nothing; a search may hand a
// clone to another goroutine while the original keeps playing.
func (b *Board) Clone() *Board {
	c := &Board{
		bb:             b.bb,
		squares:        b.squares,
		pieces:         make(map[int]*Piece, len(b.pieces)),
		nextID:         b.nextID,
		sideToMove:     b.sideToMove,
		castlingRights: b.castlingRights,
		epSquare:       b.epSquare,
		epPawnID:       b.epPawnID,
		halfmoveClock:  b.halfmoveClock,
		fullmoveNumber: b.fullmoveNumber,
		hash:           b.hash,
		control:        b.control.clone(),
		pins:           b.pins.clone(),
		checks:         b.checks,
	}
	for id, p := range b.pieces {
		cp := *p
		c.pieces[id] = &cp
	}
	return c
}

// Validate recomputes every derived structure from the registry and
// compares it against the incrementally maintained state. It returns the
// first inconsistency found.
func (b *Board) Validate() error {
	var bb bitboardSet
	for sq, id := range b.squares {
		if id == 0 {
			continue
		}
		p, ok := b.pieces[id]
		if !ok {
			return fmt.Errorf("square %s holds unregistered piece id %d", SquareName(sq), id)
		}
		if p.Square != sq {
			return fmt.Errorf("piece %d thinks it is on %s but sits on %s", id, SquareName(p.Square), SquareName(sq))
		}
		bb.set(p.Type, p.Color, sq)
	}
	if bb != b.bb {
		return errors.New("bitboards disagree with mailbox")
	}
	for id, p := range b.pieces {
		if b.squares[p.Square] != id {
			return fmt.Errorf("piece %d not present on its square %s", id, SquareName(p.Square))
		}
	}
	if h := b.computeHash(); h != b.hash {
		return fmt.Errorf("incremental hash %#x != recomputed %#x", b.hash, h)
	}

	saved := b.control
	b.rebuildControl()
	scratch := b.control
	b.control = saved
	if !saved.equal(scratch) {
		return errors.New("incremental control index disagrees with scratch rebuild")
	}
	for c := White; c <= Black; c++ {
		if b.computeChecks(c) != b.checks[c] {
			return fmt.Errorf("stale check info for %s", c)
		}
	}
	return nil
}

// CalculatePhase estimates game phase in [0,1]: 1 at the starting
// material, 0 with all minor and major pieces traded.
func (b *Board) CalculatePhase() float64 {
	phase := 24
	for _, p := range b.pieces {
		switch p.Type {
		case Knight, Bishop:
			phase--
		case Rook:
			phase -= 2
		case Queen:
			phase -= 4
		}
	}
	if phase < 0 {
		phase = 0
	}
	return float64(24-phase) / 24
}

func (b *Board) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d ", rank+1)
		for file := 0; file < 8; file++ {
			if p := b.PieceAt(SquareAt(file, rank)); p != nil {
				sb.WriteByte(p.FENChar())
			} else {
				sb.WriteByte('.')
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
