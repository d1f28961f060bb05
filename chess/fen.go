package chess

import (
	"fmt"
	"strconv"
	"strings"
)

const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewBoard returns the starting position.
func NewBoard() *Board {
	b, err := ParseFEN(FENStartPos)
	if err != nil {
		panic(err)
	}
	return b
}

// ParseFEN builds a board from a FEN string. The halfmove clock and
// fullmove number may be omitted.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("fen: want at least 4 fields, got %d", len(fields))
	}

	b := newEmptyBoard()
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("fen: want 8 ranks, got %d", len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range []byte(rankStr) {
			switch {
			case ch >= '1' && ch <= '8':
				file += int(ch - '0')
			default:
				pt := pieceTypeFromLetter(ch)
				if pt == NoPieceType || file > 7 {
					return nil, fmt.Errorf("fen: bad rank %q", rankStr)
				}
				c := Black
				if ch >= 'A' && ch <= 'Z' {
					c = White
				}
				b.spawnPiece(pt, c, SquareAt(file, rank))
				file++
			}
		}
		if file != 8 {
			return nil, fmt.Errorf("fen: rank %q does not fill 8 files", rankStr)
		}
	}

	switch fields[1] {
	case "w":
		b.sideToMove = White
	case "b":
		b.sideToMove = Black
	default:
		return nil, fmt.Errorf("fen: bad side to move %q", fields[1])
	}

	if fields[2] != "-" {
		for _, ch := range []byte(fields[2]) {
			switch ch {
			case 'K':
				b.castlingRights |= CastleWhiteKingside
			case 'Q':
				b.castlingRights |= CastleWhiteQueenside
			case 'k':
				b.castlingRights |= CastleBlackKingside
			case 'q':
				b.castlingRights |= CastleBlackQueenside
			default:
				return nil, fmt.Errorf("fen: bad castling rights %q", fields[2])
			}
		}
	}

	if fields[3] != "-" {
		sq := SquareFromName(fields[3])
		if sq == NoSquare {
			return nil, fmt.Errorf("fen: bad en-passant square %q", fields[3])
		}
		b.epSquare = sq
		// The owning pawn sits one rank behind the target square.
		pawnSq := sq - 8
		if RankOf(sq) == 2 {
			pawnSq = sq + 8
		}
		if p := b.PieceAt(pawnSq); p != nil && p.Type == Pawn {
			b.epPawnID = p.ID
		} else {
			return nil, fmt.Errorf("fen: en-passant square %q has no pawn", fields[3])
		}
	}

	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, fmt.Errorf("fen: bad halfmove clock %q", fields[4])
		}
		b.halfmoveClock = n
	}
	b.fullmoveNumber = 1
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, fmt.Errorf("fen: bad fullmove number %q", fields[5])
		}
		b.fullmoveNumber = n
	}

	if popCount(b.bb.Kings[White]) != 1 || popCount(b.bb.Kings[Black]) != 1 {
		return nil, fmt.Errorf("fen: each side needs exactly one king")
	}

	b.finishSetup()
	return b, nil
}

// ToFEN emits the position as a FEN string.
func (b *Board) ToFEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.PieceAt(SquareAt(file, rank))
			if p == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.FENChar())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	side := "w"
	if b.sideToMove == Black {
		side = "b"
	}
	fmt.Fprintf(&sb, " %s %s %s %d %d",
		side, b.castlingRights, SquareName(b.epSquare), b.halfmoveClock, b.fullmoveNumber)
	return sb.String()
}
