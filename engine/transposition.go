package engine

// Transposition table entry bound kinds. A stored value is exact when the
// search completed inside the window, an upper bound when it failed low
// and a lower bound when it failed high.
const (
	ExactFlag uint8 = iota
	AlphaFlag       // upper bound
	BetaFlag        // lower bound
)

type ttEntry struct {
	key   uint64
	score float64
	move  uint16 // compact best move, 0 when unknown
	depth int8
	flag  uint8
	used  bool
}

const clusterSize = 4

type ttCluster [clusterSize]ttEntry

// TranspositionTable is a fixed-size cluster table keyed by position
// hash. Colliding positions share a cluster; within a cluster the
// shallowest entry is evicted first. Probes trust the full 64-bit key,
// accepting the residual collision risk.
type TranspositionTable struct {
	clusters []ttCluster
	mask     uint64
}

// NewTranspositionTable sizes the table in megabytes, rounded down to a
// power-of-two cluster count.
func NewTranspositionTable(sizeMB int) *TranspositionTable {
	const clusterBytes = clusterSize * 32
	bytes := uint64(sizeMB) * 1024 * 1024
	n := uint64(1)
	for n*2*clusterBytes <= bytes {
		n *= 2
	}
	return &TranspositionTable{
		clusters: make([]ttCluster, n),
		mask:     n - 1,
	}
}

func (tt *TranspositionTable) Clear() {
	for i := range tt.clusters {
		tt.clusters[i] = ttCluster{}
	}
}

// Probe returns the stored entry for the hash, if any.
func (tt *TranspositionTable) Probe(hash uint64) (score float64, move uint16, depth int, flag uint8, ok bool) {
	cluster := &tt.clusters[hash&tt.mask]
	for i := range cluster {
		e := &cluster[i]
		if e.used && e.key == hash {
			return e.score, e.move, int(e.depth), e.flag, true
		}
	}
	return 0, 0, 0, 0, false
}

// Store records a search result, replacing the same position or else the
// shallowest slot in the cluster.
func (tt *TranspositionTable) Store(hash uint64, score float64, move uint16, depth int, flag uint8) {
	cluster := &tt.clusters[hash&tt.mask]
	victim := 0
	for i := range cluster {
		e := &cluster[i]
		if !e.used || e.key == hash {
			victim = i
			break
		}
		if e.depth < cluster[victim].depth {
			victim = i
		}
	}
	cluster[victim] = ttEntry{key: hash, score: score, move: move, depth: int8(depth), flag: flag, used: true}
}
