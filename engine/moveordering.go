package engine

import (
	"sort"

	"mchess/chess"
)

// Ordering offsets. Captures rank by most valuable victim, least
// valuable attacker inside the capture band.
const (
	ttMoveOffset    = 25000
	promotionOffset = 20000
	captureOffset   = 15000
	killerOffset    = 2000
	checkBonus      = 500
	castleBonus     = 200
)

// mvvLva[victim][attacker]
var mvvLva = [7][7]int{
	chess.Pawn:   {0, 15, 14, 13, 12, 11, 10},
	chess.Knight: {0, 25, 24, 23, 22, 21, 20},
	chess.Bishop: {0, 35, 34, 33, 32, 31, 30},
	chess.Rook:   {0, 45, 44, 43, 42, 41, 40},
	chess.Queen:  {0, 55, 54, 53, 52, 51, 50},
}

// orderMoves sorts the move list in place, best candidates first: the
// table move, then promotions, captures by MVV-LVA, killers, and checks.
func (e *Engine) orderMoves(b *chess.Board, moves []chess.Move, ttMove uint16, ply int) {
	type scored struct {
		move  chess.Move
		score int
	}
	ranked := make([]scored, len(moves))
	for i, m := range moves {
		ranked[i] = scored{m, e.scoreMove(b, m, ttMove, ply)}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })
	for i := range ranked {
		moves[i] = ranked[i].move
	}
}

func (e *Engine) scoreMove(b *chess.Board, m chess.Move, ttMove uint16, ply int) int {
	compact := m.Compact()
	if compact == ttMove && ttMove != 0 {
		return ttMoveOffset
	}
	score := 0
	switch {
	case m.Promotion != chess.NoPieceType:
		score = promotionOffset + int(m.Promotion)
	case m.Capture:
		score = captureOffset + mvvLva[m.CapturedType][m.PieceType]
	case e.killers.Is(ply, compact):
		score = killerOffset
	}
	if m.Castle != chess.CastleNone {
		score += castleBonus
	}
	if b.MoveGivesCheck(m) {
		score += checkBonus
	}
	return score
}
