package engine

import (
	"math"
	"math/rand"
	"sync/atomic"
	"time"

	"golang.org/x/exp/slices"

	"mchess/chess"
)

const (
	uctExploration = 1.41421356
	playoutCap     = 80
)

type mctsNode struct {
	move     chess.Move
	parent   *mctsNode
	children []*mctsNode
	untried  []chess.Move
	visits   float64
	wins     float64 // from the perspective of the side that just moved
}

// MCTS is the playout-based alternative to the alpha-beta searcher:
// UCT selection over a game tree grown one node per iteration, with
// capture-weighted random playouts. It owns its board clone, so a
// running search never touches the caller's position.
type MCTS struct {
	rng  *rand.Rand
	stop atomic.Bool
}

func NewMCTS() *MCTS {
	return &MCTS{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (s *MCTS) Stop() { s.stop.Store(true) }

// Search runs playouts until the budget is spent and returns the most
// visited root move. ok is false when the position has no legal moves.
func (s *MCTS) Search(b *chess.Board, budget time.Duration) (chess.Move, bool) {
	s.stop.Store(false)
	board := b.Clone()
	root := &mctsNode{untried: board.GetTotalLegalMoves()}
	if len(root.untried) == 0 {
		return chess.Move{}, false
	}

	deadline := time.Now().Add(budget)
	// Iterate in chunks so the deadline and stop flag are polled between
	// batches, not on every playout. At least one chunk always runs.
	for {
		for i := 0; i < 256; i++ {
			s.iterate(board, root)
		}
		if s.stop.Load() || !time.Now().Before(deadline) {
			break
		}
	}

	best := slices.MaxFunc(root.children, func(a, b *mctsNode) int {
		switch {
		case a.visits < b.visits:
			return -1
		case a.visits > b.visits:
			return 1
		}
		return 0
	})
	return best.move, true
}

func (s *MCTS) iterate(board *chess.Board, root *mctsNode) {
	node := root
	var undo []chess.MoveInfo

	// Selection: descend fully expanded nodes by UCT.
	for len(node.untried) == 0 && len(node.children) > 0 {
		node = s.selectChild(node)
		st, err := board.MakeMove(node.move)
		if err != nil {
			break
		}
		undo = append(undo, st)
	}

	// Expansion: play one untried move and attach the child.
	if len(node.untried) > 0 {
		i := s.rng.Intn(len(node.untried))
		m := node.untried[i]
		node.untried = slices.Delete(node.untried, i, i+1)
		if st, err := board.MakeMove(m); err == nil {
			undo = append(undo, st)
			child := &mctsNode{move: m, parent: node, untried: board.GetTotalLegalMoves()}
			node.children = append(node.children, child)
			node = child
		}
	}

	result := s.playout(board)

	// Backpropagation: a node's wins accumulate for the side that made
	// its move, which is the side to move at its parent.
	mover := board.SideToMove().Other()
	for n := node; n != nil; n = n.parent {
		n.visits++
		n.wins += scoreFor(result, mover)
		mover = mover.Other()
	}

	for i := len(undo) - 1; i >= 0; i-- {
		board.UnmakeMove(undo[i])
	}
}

func (s *MCTS) selectChild(node *mctsNode) *mctsNode {
	logN := math.Log(node.visits + 1)
	return slices.MaxFunc(node.children, func(a, b *mctsNode) int {
		ua, ub := uct(a, logN), uct(b, logN)
		switch {
		case ua < ub:
			return -1
		case ua > ub:
			return 1
		}
		return 0
	})
}

func uct(n *mctsNode, logParent float64) float64 {
	if n.visits == 0 {
		return math.Inf(1)
	}
	return n.wins/n.visits + uctExploration*math.Sqrt(logParent/n.visits)
}

// playout plays capture-weighted random moves until the game ends or the
// ply cap is hit, then unwinds. Unfinished playouts fall back to the
// material balance.
func (s *MCTS) playout(board *chess.Board) chess.Result {
	var undo []chess.MoveInfo
	result := chess.InProgress
	for ply := 0; ply < playoutCap; ply++ {
		result = board.GetResult()
		if result != chess.InProgress {
			break
		}
		m := s.pickPlayoutMove(board)
		st, err := board.MakeMove(m)
		if err != nil {
			break
		}
		undo = append(undo, st)
	}
	if result == chess.InProgress {
		result = materialVerdict(board)
	}
	for i := len(undo) - 1; i >= 0; i-- {
		board.UnmakeMove(undo[i])
	}
	return result
}

// pickPlayoutMove samples a legal move, captures and promotions weighted
// four to one over quiet moves.
func (s *MCTS) pickPlayoutMove(board *chess.Board) chess.Move {
	moves := board.GetTotalLegalMoves()
	total := 0
	weights := make([]int, len(moves))
	for i, m := range moves {
		w := 1
		if m.Capture || m.Promotion != chess.NoPieceType {
			w = 4
		}
		weights[i] = w
		total += w
	}
	pick := s.rng.Intn(total)
	for i, w := range weights {
		if pick < w {
			return moves[i]
		}
		pick -= w
	}
	return moves[len(moves)-1]
}

func materialVerdict(board *chess.Board) chess.Result {
	balance := MaterialEvaluator{}.Evaluate(board)
	switch {
	case balance > 1:
		return chess.WhiteMates
	case balance < -1:
		return chess.BlackMates
	}
	return chess.Stalemate
}

func scoreFor(result chess.Result, c chess.Color) float64 {
	switch result {
	case chess.WhiteMates:
		if c == chess.White {
			return 1
		}
		return 0
	case chess.BlackMates:
		if c == chess.Black {
			return 1
		}
		return 0
	}
	return 0.5
}
