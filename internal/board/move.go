package board

import "fmt"

// MoveFlag classifies the special-rule moves that mutate more than the
// from/to squares.
type MoveFlag uint8

const (
	Normal MoveFlag = iota
	DoublePush
	EnPassantCapture
	CastleKingside
	CastleQueenside
)

// Move is one move relative to the position it was generated from.
// It is a comparable value: a decoded move equals the generated one
// field for field.
type Move struct {
	From  Square
	To    Square
	Promo PieceType // NoPieceType unless a promotion
	Flag  MoveFlag
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Promo != NoPieceType
}

// IsCapture reports whether the move captures a piece in the given position.
func (m Move) IsCapture(p *Position) bool {
	return m.Flag == EnPassantCapture || !p.PieceAt(m.To).IsEmpty()
}

// String returns the move in coordinate notation ("e2e4", "e7e8q").
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	switch m.Promo {
	case Knight:
		s += "n"
	case Bishop:
		s += "b"
	case Rook:
		s += "r"
	case Queen:
		s += "q"
	}
	return s
}

// ParseMove parses coordinate notation against the position the move
// will be played in, resolving the special-move flag from the board.
func ParseMove(s string, p *Position) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("invalid move %q", s)
	}
	from, err := ParseSquare(s[:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, err
	}

	m := Move{From: from, To: to}

	if len(s) == 5 {
		switch s[4] {
		case 'n':
			m.Promo = Knight
		case 'b':
			m.Promo = Bishop
		case 'r':
			m.Promo = Rook
		case 'q':
			m.Promo = Queen
		default:
			return Move{}, fmt.Errorf("invalid promotion piece %q in %q", s[4], s)
		}
	}

	pc := p.PieceAt(from)
	if pc.IsEmpty() {
		return Move{}, fmt.Errorf("no piece on %s", from)
	}

	switch pc.Type() {
	case King:
		if to.File()-from.File() == 2 {
			m.Flag = CastleKingside
		} else if from.File()-to.File() == 2 {
			m.Flag = CastleQueenside
		}
	case Pawn:
		if to == p.EnPassant && from.File() != to.File() {
			m.Flag = EnPassantCapture
		} else if to.Rank()-from.Rank() == 2 || from.Rank()-to.Rank() == 2 {
			m.Flag = DoublePush
		}
	}

	return m, nil
}

// Undo stores what Make cannot recompute: the captured piece and the
// square it stood on (which differs from the destination for en passant),
// plus the rights, en-passant target, and halfmove clock prior to the
// move. Created by Make and consumed by Unmake, in stack order.
type Undo struct {
	Captured      Piece
	CapturedSq    Square
	Castling      CastlingRights
	EnPassant     Square
	HalfmoveClock int
}
