package engine

import (
	"math"
	"sync/atomic"
	"time"

	"mchess/chess"
)

// MateScore is the white-view score of delivering mate; actual mate
// scores shrink with ply so shorter mates score better.
const MateScore = 100000.0

// ExtensionPolicy configures quiescence at the horizon. With Captures off
// depth-zero nodes return the static evaluation directly.
type ExtensionPolicy struct {
	Captures bool
	Checks   bool
	MaxDepth int
}

// DefaultPolicy extends capture chains up to 8 plies past the horizon.
var DefaultPolicy = ExtensionPolicy{Captures: true, MaxDepth: 8}

type SearchResult struct {
	Value float64 // white-view
	PV    []chess.Move
	Depth int
	Nodes uint64
}

// Engine is a single-threaded alpha-beta searcher. An Engine and the
// board it searches must not be shared between goroutines; run parallel
// searches on clones.
type Engine struct {
	tt      *TranspositionTable
	killers KillerTable
	eval    Evaluator
	Policy  ExtensionPolicy
	nodes   uint64
	stop    atomic.Bool

	// Info, when set, is called after every completed deepening
	// iteration.
	Info func(r SearchResult)
}

func NewEngine(ttSizeMB int, eval Evaluator) *Engine {
	if eval == nil {
		eval = MaterialEvaluator{}
	}
	return &Engine{
		tt:     NewTranspositionTable(ttSizeMB),
		eval:   eval,
		Policy: DefaultPolicy,
	}
}

// Reset clears all search state carried between positions.
func (e *Engine) Reset() {
	e.tt.Clear()
	e.killers.Clear()
	e.stop.Store(false)
}

// Stop asks a running iterative deepening loop to finish after the
// current depth.
func (e *Engine) Stop() { e.stop.Store(true) }

// Search runs a fail-hard alpha-beta search to the given depth and
// returns the white-view value with its principal variation. maximizing
// says whether the side to move prefers higher white-view scores.
func (e *Engine) Search(b *chess.Board, depth int, alpha, beta float64, maximizing bool) SearchResult {
	e.nodes = 0
	value, pv := e.alphabeta(b, depth, 0, alpha, beta, maximizing)
	return SearchResult{Value: value, PV: pv, Depth: depth, Nodes: e.nodes}
}

func (e *Engine) alphabeta(b *chess.Board, depth, ply int, alpha, beta float64, maximizing bool) (float64, []chess.Move) {
	e.nodes++
	if b.HalfmoveClock() > 100 {
		return 0, nil
	}

	alphaOrig, betaOrig := alpha, beta
	var ttMove uint16
	if score, move, ttDepth, flag, ok := e.tt.Probe(b.Hash()); ok {
		ttMove = move
		// The root must always fall through to the move loop so the
		// search reports a principal variation, never a bare score.
		if ttDepth >= depth && ply > 0 {
			switch flag {
			case ExactFlag:
				return score, nil
			case BetaFlag:
				if score > alpha {
					alpha = score
				}
			case AlphaFlag:
				if score < beta {
					beta = score
				}
			}
			if alpha >= beta {
				return score, nil
			}
		}
	}

	if depth <= 0 {
		return e.quiesce(b, ply, alpha, beta, maximizing, e.Policy.MaxDepth), nil
	}

	moves := b.GetTotalLegalMoves()
	if len(moves) == 0 {
		if b.InCheck() {
			if maximizing {
				return -(MateScore - float64(ply)), nil
			}
			return MateScore - float64(ply), nil
		}
		return 0, nil
	}
	e.orderMoves(b, moves, ttMove, ply)

	best := math.Inf(-1)
	if !maximizing {
		best = math.Inf(1)
	}
	var bestMove chess.Move
	var bestPV []chess.Move
	for _, m := range moves {
		st, err := b.MakeMove(m)
		if err != nil {
			continue
		}
		value, childPV := e.alphabeta(b, depth-1, ply+1, alpha, beta, !maximizing)
		b.UnmakeMove(st)

		if maximizing {
			if value > best {
				best, bestMove, bestPV = value, m, childPV
				if value > alpha {
					alpha = value
				}
			}
		} else {
			if value < best {
				best, bestMove, bestPV = value, m, childPV
				if value < beta {
					beta = value
				}
			}
		}
		if alpha >= beta {
			if !m.Capture && m.Promotion == chess.NoPieceType {
				e.killers.Add(ply, m.Compact())
			}
			break
		}
	}

	// Fail-hard: the returned value never leaves the original window.
	value := best
	if value < alphaOrig {
		value = alphaOrig
	} else if value > betaOrig {
		value = betaOrig
	}

	flag := ExactFlag
	switch {
	case value <= alphaOrig:
		flag = AlphaFlag
	case value >= betaOrig:
		flag = BetaFlag
	}
	e.tt.Store(b.Hash(), value, bestMove.Compact(), depth, flag)

	return value, append([]chess.Move{bestMove}, bestPV...)
}

// quiesce settles the horizon by extending capture chains, and checking
// moves when the policy asks for them, until the position is quiet.
func (e *Engine) quiesce(b *chess.Board, ply int, alpha, beta float64, maximizing bool, depth int) float64 {
	e.nodes++
	stand := e.eval.Evaluate(b)
	if !e.Policy.Captures || depth <= 0 || ply >= MaxDepth {
		return stand
	}

	if maximizing {
		if stand >= beta {
			return beta
		}
		if stand > alpha {
			alpha = stand
		}
	} else {
		if stand <= alpha {
			return alpha
		}
		if stand < beta {
			beta = stand
		}
	}

	moves := b.GetTotalLegalMoves()
	noisy := moves[:0]
	for _, m := range moves {
		if m.Capture || m.Promotion != chess.NoPieceType ||
			(e.Policy.Checks && b.MoveGivesCheck(m)) {
			noisy = append(noisy, m)
		}
	}
	e.orderMoves(b, noisy, 0, ply)

	for _, m := range noisy {
		st, err := b.MakeMove(m)
		if err != nil {
			continue
		}
		value := e.quiesce(b, ply+1, alpha, beta, !maximizing, depth-1)
		b.UnmakeMove(st)

		if maximizing {
			if value > alpha {
				alpha = value
			}
		} else {
			if value < beta {
				beta = value
			}
		}
		if alpha >= beta {
			break
		}
	}
	if maximizing {
		return alpha
	}
	return beta
}

// IterativeDeepening searches depth 1, 2, ... up to maxDepth, stopping
// between iterations once the budget is spent or Stop was called. It
// always returns the best move of the last completed depth. A zero
// budget means depth-limited only.
func (e *Engine) IterativeDeepening(b *chess.Board, maxDepth int, budget time.Duration) (chess.Move, SearchResult) {
	e.stop.Store(false)
	deadline := time.Now().Add(budget)
	maximizing := b.SideToMove() == chess.White

	var best chess.Move
	var result SearchResult
	for depth := 1; depth <= maxDepth && depth <= MaxDepth; depth++ {
		r := e.Search(b, depth, math.Inf(-1), math.Inf(1), maximizing)
		if len(r.PV) > 0 {
			best = r.PV[0]
			result = r
		}
		if e.Info != nil {
			e.Info(result)
		}
		if e.stop.Load() {
			break
		}
		// The clock is polled only between completed depths.
		if budget > 0 && time.Now().After(deadline) {
			break
		}
		if math.Abs(r.Value) >= MateScore-float64(MaxDepth) {
			break
		}
	}
	return best, result
}
