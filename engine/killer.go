package engine

// MaxDepth bounds the search ply for killer bookkeeping.
const MaxDepth = 64

// KillerTable keeps two quiet moves per ply that recently caused a beta
// cutoff, in compact form.
type KillerTable struct {
	moves [MaxDepth + 1][2]uint16
}

func (kt *KillerTable) Add(ply int, move uint16) {
	if ply < 0 || ply > MaxDepth || kt.moves[ply][0] == move {
		return
	}
	kt.moves[ply][1] = kt.moves[ply][0]
	kt.moves[ply][0] = move
}

func (kt *KillerTable) Is(ply int, move uint16) bool {
	if ply < 0 || ply > MaxDepth {
		return false
	}
	return kt.moves[ply][0] == move || kt.moves[ply][1] == move
}

func (kt *KillerTable) Clear() {
	kt.moves = [MaxDepth + 1][2]uint16{}
}
