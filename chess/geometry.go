package chess

// Squares are numbered rank-major from a1=0 to h8=63.

const (
	A1, B1, C1, D1, E1, F1, G1, H1 = 0, 1, 2, 3, 4, 5, 6, 7
	A2, B2, C2, D2, E2, F2, G2, H2 = 8, 9, 10, 11, 12, 13, 14, 15
	A4, B4, C4, D4, E4, F4, G4, H4 = 24, 25, 26, 27, 28, 29, 30, 31
	A5, B5, C5, D5, E5, F5, G5, H5 = 32, 33, 34, 35, 36, 37, 38, 39
	A8, B8, C8, D8, E8, F8, G8, H8 = 56, 57, 58, 59, 60, 61, 62, 63
)

const NoSquare = -1

func FileOf(sq int) int { return sq & 7 }
func RankOf(sq int) int { return sq >> 3 }

func SquareAt(file, rank int) int { return rank*8 + file }

// SquareName returns coordinate notation ("e4").
func SquareName(sq int) string {
	if sq == NoSquare {
		return "-"
	}
	return string([]byte{byte('a' + FileOf(sq)), byte('1' + RankOf(sq))})
}

// SquareFromName parses coordinate notation, NoSquare on failure.
func SquareFromName(s string) int {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare
	}
	return SquareAt(int(s[0]-'a'), int(s[1]-'1'))
}

// Ray directions as (fileStep, rankStep) pairs.
var rookDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var allDirs = [8][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

var knightOffsets = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}

// Precomputed attack masks and ray tables.
var (
	knightAttacks [64]uint64
	kingAttacks   [64]uint64
	pawnCaptures  [2][64]uint64
	betweenMask   [64][64]uint64 // squares strictly between, 0 if not aligned
	lineMask      [64][64]uint64 // full line through both squares, 0 if not aligned
)

func init() {
	for sq := 0; sq < 64; sq++ {
		f, r := FileOf(sq), RankOf(sq)
		for _, o := range knightOffsets {
			if tf, tr := f+o[0], r+o[1]; onBoard(tf, tr) {
				knightAttacks[sq] |= 1 << SquareAt(tf, tr)
			}
		}
		for _, d := range allDirs {
			if tf, tr := f+d[0], r+d[1]; onBoard(tf, tr) {
				kingAttacks[sq] |= 1 << SquareAt(tf, tr)
			}
		}
		if r < 7 {
			if f > 0 {
				pawnCaptures[White][sq] |= 1 << (sq + 7)
			}
			if f < 7 {
				pawnCaptures[White][sq] |= 1 << (sq + 9)
			}
		}
		if r > 0 {
			if f > 0 {
				pawnCaptures[Black][sq] |= 1 << (sq - 9)
			}
			if f < 7 {
				pawnCaptures[Black][sq] |= 1 << (sq - 7)
			}
		}
	}
	for from := 0; from < 64; from++ {
		for _, d := range allDirs {
			var ray uint64
			f, r := FileOf(from)+d[0], RankOf(from)+d[1]
			for onBoard(f, r) {
				to := SquareAt(f, r)
				betweenMask[from][to] = ray
				ray |= 1 << to
				f += d[0]
				r += d[1]
			}
		}
	}
	for from := 0; from < 64; from++ {
		for to := 0; to < 64; to++ {
			if from == to {
				continue
			}
			if d, ok := directionBetween(from, to); ok {
				line := uint64(1)<<from | uint64(1)<<to
				for _, step := range [2][2]int{d, {-d[0], -d[1]}} {
					f, r := FileOf(from)+step[0], RankOf(from)+step[1]
					for onBoard(f, r) {
						line |= 1 << SquareAt(f, r)
						f += step[0]
						r += step[1]
					}
				}
				lineMask[from][to] = line
			}
		}
	}
}

func onBoard(file, rank int) bool {
	return file >= 0 && file < 8 && rank >= 0 && rank < 8
}

// directionBetween returns the unit step from one square toward another,
// false when they do not share a rank, file, or diagonal.
func directionBetween(from, to int) ([2]int, bool) {
	df, dr := FileOf(to)-FileOf(from), RankOf(to)-RankOf(from)
	switch {
	case df == 0 && dr == 0:
		return [2]int{}, false
	case df == 0:
		return [2]int{0, sign(dr)}, true
	case dr == 0:
		return [2]int{sign(df), 0}, true
	case df == dr || df == -dr:
		return [2]int{sign(df), sign(dr)}, true
	}
	return [2]int{}, false
}

func sign(v int) int {
	if v < 0 {
		return -1
	}
	if v > 0 {
		return 1
	}
	return 0
}

// Between returns the squares strictly between two aligned squares.
func Between(from, to int) uint64 { return betweenMask[from][to] }

// Line returns the full rank, file, or diagonal through two aligned squares.
func Line(from, to int) uint64 { return lineMask[from][to] }
