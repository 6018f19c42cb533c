package board

// Color is the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// PieceType is the kind of a chess piece. The zero value means "no piece".
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

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Piece packs a PieceType and a Color into one byte.
// Empty (the zero value) marks an unoccupied square, so a fresh
// [64]Piece board is all empty.
type Piece uint8

// Empty marks an unoccupied square.
const Empty Piece = 0

// NewPiece builds a piece from type and color.
func NewPiece(pt PieceType, c Color) Piece {
	return Piece(pt) | Piece(c)<<3
}

// Type returns the piece type, or NoPieceType for Empty.
func (p Piece) Type() PieceType {
	return PieceType(p & 7)
}

// Color returns the piece color. Meaningless for Empty.
func (p Piece) Color() Color {
	return Color(p >> 3)
}

// IsEmpty reports whether this is the empty marker rather than a piece.
func (p Piece) IsEmpty() bool {
	return p == Empty
}

// String returns the FEN letter for the piece: uppercase for white,
// lowercase for black, "." for Empty.
func (p Piece) String() string {
	if p.IsEmpty() {
		return "."
	}
	letters := " PNBRQK"
	ch := letters[p.Type()]
	if p.Color() == Black {
		ch += 'a' - 'A'
	}
	return string(ch)
}

// PieceFromChar converts a FEN letter to a Piece, or Empty if unknown.
func PieceFromChar(c byte) Piece {
	color := White
	if c >= 'a' && c <= 'z' {
		color = Black
		c -= 'a' - 'A'
	}
	switch c {
	case 'P':
		return NewPiece(Pawn, color)
	case 'N':
		return NewPiece(Knight, color)
	case 'B':
		return NewPiece(Bishop, color)
	case 'R':
		return NewPiece(Rook, color)
	case 'Q':
		return NewPiece(Queen, color)
	case 'K':
		return NewPiece(King, color)
	}
	return Empty
}
