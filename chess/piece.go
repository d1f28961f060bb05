package chess

import "strings"

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var pieceTypeLetters = [...]string{"", "p", "n", "b", "r", "q", "k"}

func (pt PieceType) String() string { return pieceTypeLetters[pt] }

// Letter returns the uppercase SAN letter, empty for pawns.
func (pt PieceType) Letter() string {
	if pt == Pawn || pt == NoPieceType {
		return ""
	}
	return strings.ToUpper(pieceTypeLetters[pt])
}

func pieceTypeFromLetter(c byte) PieceType {
	switch c {
	case 'p', 'P':
		return Pawn
	case 'n', 'N':
		return Knight
	case 'b', 'B':
		return Bishop
	case 'r', 'R':
		return Rook
	case 'q', 'Q':
		return Queen
	case 'k', 'K':
		return King
	}
	return NoPieceType
}

// Piece is a live piece tracked by the board's registry. The id stays
// stable for the piece's whole lifetime; promotion changes only Type.
type Piece struct {
	ID     int
	Type   PieceType
	Color  Color
	Square int
}

// FENChar returns the piece's FEN letter.
func (p *Piece) FENChar() byte {
	ch := pieceTypeLetters[p.Type][0]
	if p.Color == White {
		ch -= 'a' - 'A'
	}
	return ch
}

type CastlingRights uint8

const (
	CastleWhiteKingside CastlingRights = 1 << iota
	CastleWhiteQueenside
	CastleBlackKingside
	CastleBlackQueenside
	CastleAll = CastleWhiteKingside | CastleWhiteQueenside | CastleBlackKingside | CastleBlackQueenside
)

// castlingRightsMask[sq] removes the rights lost when sq is vacated or
// captured on (king and rook home squares).
var castlingRightsMask = func() [64]CastlingRights {
	var m [64]CastlingRights
	for i := range m {
		m[i] = CastleAll
	}
	m[E1] &^= CastleWhiteKingside | CastleWhiteQueenside
	m[H1] &^= CastleWhiteKingside
	m[A1] &^= CastleWhiteQueenside
	m[E8] &^= CastleBlackKingside | CastleBlackQueenside
	m[H8] &^= CastleBlackKingside
	m[A8] &^= CastleBlackQueenside
	return m
}()

func (cr CastlingRights) String() string {
	var sb strings.Builder
	if cr&CastleWhiteKingside != 0 {
		sb.WriteByte('K')
	}
	if cr&CastleWhiteQueenside != 0 {
		sb.WriteByte('Q')
	}
	if cr&CastleBlackKingside != 0 {
		sb.WriteByte('k')
	}
	if cr&CastleBlackQueenside != 0 {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}
