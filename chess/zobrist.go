package chess

import "math/rand"

// Zobrist keys, generated once from a fixed seed so hashes are stable
// across runs.
var (
	zobristPiece  [2][7][64]uint64
	zobristCastle [16]uint64
	zobristEPFile [8]uint64
	zobristSide   uint64
)

func init() {
	rng := rand.New(rand.NewSource(0xC0DE))
	for c := 0; c < 2; c++ {
		for pt := Pawn; pt <= King; pt++ {
			for sq := 0; sq < 64; sq++ {
				zobristPiece[c][pt][sq] = rng.Uint64()
			}
		}
	}
	for i := range zobristCastle {
		zobristCastle[i] = rng.Uint64()
	}
	for i := range zobristEPFile {
		zobristEPFile[i] = rng.Uint64()
	}
	zobristSide = rng.Uint64()
}

// computeHash builds the position hash from scratch.
func (b *Board) computeHash() uint64 {
	var h uint64
	for _, p := range b.pieces {
		h ^= zobristPiece[p.Color][p.Type][p.Square]
	}
	h ^= zobristCastle[b.castlingRights]
	if b.epSquare != NoSquare {
		h ^= zobristEPFile[FileOf(b.epSquare)]
	}
	if b.sideToMove == Black {
		h ^= zobristSide
	}
	return h
}
