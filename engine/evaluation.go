package engine

import "mchess/chess"

// Evaluator scores a position from white's point of view.
type Evaluator interface {
	Evaluate(b *chess.Board) float64
}

// Evaluation weights, in pawns.
const (
	mobilityWeight       = 0.05
	pawnIsolationPenalty = 0.2
	doubledPawnPenalty   = 0.1
)

var pieceValues = [7]float64{
	chess.Pawn:   1,
	chess.Knight: 3,
	chess.Bishop: 3.25,
	chess.Rook:   5,
	chess.Queen:  9,
}

// MaterialEvaluator scores material, pawn structure and mobility, the
// last read straight off the board's control index.
type MaterialEvaluator struct{}

func (MaterialEvaluator) Evaluate(b *chess.Board) float64 {
	var side [2]float64
	for c := chess.White; c <= chess.Black; c++ {
		side[c] = evalMaterial(b, c) + evalPawns(b, c) + evalMobility(b, c)
	}
	return side[chess.White] - side[chess.Black]
}

func evalMaterial(b *chess.Board, c chess.Color) float64 {
	var v float64
	for _, p := range b.Pieces(c) {
		v += pieceValues[p.Type]
	}
	return v
}

// evalPawns penalizes isolated and doubled pawns per file.
func evalPawns(b *chess.Board, c chess.Color) float64 {
	var files [8]int
	for _, p := range b.Pieces(c) {
		if p.Type == chess.Pawn {
			files[chess.FileOf(p.Square)]++
		}
	}
	var v float64
	for f, n := range files {
		if n == 0 {
			continue
		}
		left := f > 0 && files[f-1] > 0
		right := f < 7 && files[f+1] > 0
		if !left && !right {
			v -= pawnIsolationPenalty * float64(n)
		}
		if n > 1 {
			v -= doubledPawnPenalty * float64(n-1)
		}
	}
	return v
}

func evalMobility(b *chess.Board, c chess.Color) float64 {
	count := 0
	for bb := b.Controlled(c); bb != 0; bb &= bb - 1 {
		count++
	}
	return mobilityWeight * float64(count)
}
