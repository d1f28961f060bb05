package chess

// MakeMove applies a move and returns the undo record. Structurally
// inconsistent moves (wrong mover, stale capture info, not the mover's
// turn) are rejected with ErrInvalidMove before any state changes.
//
// The control index is patched, not rebuilt: only the pieces whose
// influence can change are refiled. The pin table is rebuilt and check
// state rederived from the patched index.
func (b *Board) MakeMove(m Move) (MoveInfo, error) {
	if err := b.checkMove(m); err != nil {
		return MoveInfo{}, err
	}
	mover := b.pieces[m.PieceID]

	st := MoveInfo{
		Move:          m,
		PrevHash:      b.hash,
		PrevHalfmove:  b.halfmoveClock,
		PrevFullmove:  b.fullmoveNumber,
		PrevCastling:  b.castlingRights,
		PrevEPSquare:  b.epSquare,
		PrevEPPawnID:  b.epPawnID,
		PrevChecks:    b.checks,
		PrevBitboards: b.bb,
		PrevControl:   b.control.clone(),
		PrevPins:      b.pins,
		PromotedFrom:  mover.Type,
	}
	if m.Capture {
		captured := *b.pieces[m.CapturedID]
		st.CapturedPiece = &captured
	}

	dirty := b.dirtyPieces(m)

	// Hash out the components about to change.
	b.hash ^= zobristPiece[mover.Color][mover.Type][m.From]
	b.hash ^= zobristCastle[b.castlingRights]
	if b.epSquare != NoSquare {
		b.hash ^= zobristEPFile[FileOf(b.epSquare)]
	}

	if m.Capture {
		captured := b.pieces[m.CapturedID]
		b.hash ^= zobristPiece[captured.Color][captured.Type][captured.Square]
		b.bb.clear(captured.Type, captured.Color, captured.Square)
		b.squares[captured.Square] = 0
		delete(b.pieces, captured.ID)
		b.control.removePiece(captured.ID)
	}

	b.bb.clear(mover.Type, mover.Color, m.From)
	b.squares[m.From] = 0
	if m.Promotion != NoPieceType {
		mover.Type = m.Promotion
	}
	mover.Square = m.To
	b.squares[m.To] = mover.ID
	b.bb.set(mover.Type, mover.Color, m.To)
	b.hash ^= zobristPiece[mover.Color][mover.Type][m.To]

	if m.Castle != CastleNone {
		rook := b.pieces[m.RookID]
		b.hash ^= zobristPiece[rook.Color][Rook][m.RookFrom]
		b.bb.clear(Rook, rook.Color, m.RookFrom)
		b.squares[m.RookFrom] = 0
		rook.Square = m.RookTo
		b.squares[m.RookTo] = rook.ID
		b.bb.set(Rook, rook.Color, m.RookTo)
		b.hash ^= zobristPiece[rook.Color][Rook][m.RookTo]
	}

	b.castlingRights &= castlingRightsMask[m.From] & castlingRightsMask[m.To]
	b.hash ^= zobristCastle[b.castlingRights]

	b.epSquare, b.epPawnID = NoSquare, 0
	if m.PieceType == Pawn && (m.To-m.From == 16 || m.From-m.To == 16) {
		b.epSquare = (m.From + m.To) / 2
		b.epPawnID = mover.ID
		b.hash ^= zobristEPFile[FileOf(b.epSquare)]
	}

	if m.PieceType == Pawn || m.Capture {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}
	if b.sideToMove == Black {
		b.fullmoveNumber++
	}
	b.sideToMove = b.sideToMove.Other()
	b.hash ^= zobristSide

	for id := range dirty {
		p, alive := b.pieces[id]
		if !alive {
			continue
		}
		b.control.removePiece(id)
		b.fileControls(p)
	}

	b.rebuildPins()
	b.refreshChecks()
	return st, nil
}

// UnmakeMove reverses a move using its undo record. The registry and
// mailbox are rewound by hand; everything derived is restored wholesale
// from the record's snapshots, so the position comes back bit for bit.
func (b *Board) UnmakeMove(st MoveInfo) {
	m := st.Move
	mover := b.pieces[m.PieceID]

	if m.Castle != CastleNone {
		rook := b.pieces[m.RookID]
		b.squares[m.RookTo] = 0
		rook.Square = m.RookFrom
		b.squares[m.RookFrom] = rook.ID
	}

	b.squares[m.To] = 0
	mover.Type = st.PromotedFrom
	mover.Square = m.From
	b.squares[m.From] = mover.ID

	if st.CapturedPiece != nil {
		captured := *st.CapturedPiece
		b.pieces[captured.ID] = &captured
		b.squares[captured.Square] = captured.ID
	}

	b.bb = st.PrevBitboards
	b.hash = st.PrevHash
	b.halfmoveClock = st.PrevHalfmove
	b.fullmoveNumber = st.PrevFullmove
	b.castlingRights = st.PrevCastling
	b.epSquare = st.PrevEPSquare
	b.epPawnID = st.PrevEPPawnID
	b.checks = st.PrevChecks
	b.control = st.PrevControl
	b.pins = st.PrevPins
	b.sideToMove = b.sideToMove.Other()
}

// checkMove verifies the move's structural claims against the board.
func (b *Board) checkMove(m Move) error {
	mover, ok := b.pieces[m.PieceID]
	if !ok || mover.Square != m.From || mover.Type != m.PieceType || mover.Color != m.Color {
		return ErrInvalidMove
	}
	if mover.Color != b.sideToMove {
		return ErrInvalidMove
	}
	if m.Capture {
		captured, ok := b.pieces[m.CapturedID]
		if !ok || captured.Square != m.CapturedSquare || captured.Color == mover.Color {
			return ErrInvalidMove
		}
	} else if b.squares[m.To] != 0 {
		return ErrInvalidMove
	}
	if m.Castle != CastleNone {
		rook, ok := b.pieces[m.RookID]
		if !ok || rook.Square != m.RookFrom || rook.Type != Rook || rook.Color != mover.Color {
			return ErrInvalidMove
		}
	}
	return nil
}

// dirtyPieces collects the ids whose control entries a move can change:
// the mover, every piece with an entry on a square whose occupancy flips,
// and the pawns whose pushes run through such a square. Collected before
// mutation so truncated rays and stale relations get refiled.
func (b *Board) dirtyPieces(m Move) map[int]struct{} {
	dirty := map[int]struct{}{m.PieceID: {}}

	mark := func(sq int) {
		for _, e := range b.control.entriesAt(sq) {
			dirty[e.PieceID] = struct{}{}
		}
		// Pawns one or two ranks behind may gain or lose push entries.
		for _, delta := range [...]int{-8, -16, 8, 16} {
			from := sq + delta
			if from < 0 || from > 63 {
				continue
			}
			id := b.squares[from]
			if id == 0 {
				continue
			}
			if p := b.pieces[id]; p.Type == Pawn {
				dirty[id] = struct{}{}
			}
		}
	}

	mark(m.From)
	mark(m.To)
	if m.Capture && m.CapturedSquare != m.To {
		mark(m.CapturedSquare)
	}
	if m.Castle != CastleNone {
		mark(m.RookFrom)
		mark(m.RookTo)
	}
	return dirty
}
