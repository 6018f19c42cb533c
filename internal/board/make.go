package board

import "fmt"

// Make applies a move and returns the record needed to invert it.
// The move must come from this position's move generator; Make panics
// on structural impossibilities (empty origin, capturing a king), which
// are programming errors rather than game outcomes.
func (p *Position) Make(m Move) Undo {
	us := p.SideToMove
	pc := p.Board[m.From]
	if pc.IsEmpty() || pc.Color() != us {
		panic(fmt.Sprintf("make %s: no %s piece on %s", m, us, m.From))
	}

	u := Undo{
		CapturedSq:    NoSquare,
		Castling:      p.Castling,
		EnPassant:     p.EnPassant,
		HalfmoveClock: p.HalfmoveClock,
	}

	// Remove the captured piece first. For en passant the victim stands
	// behind the destination square.
	if m.Flag == EnPassantCapture {
		capSq := NewSquare(m.To.File(), m.From.Rank())
		u.Captured = p.remove(capSq)
		u.CapturedSq = capSq
	} else if cap := p.Board[m.To]; !cap.IsEmpty() {
		if cap.Type() == King {
			panic(fmt.Sprintf("make %s: capturing the %s king", m, cap.Color()))
		}
		u.Captured = p.remove(m.To)
		u.CapturedSq = m.To
	}

	p.shift(m.From, m.To)
	if m.IsPromotion() {
		p.put(NewPiece(m.Promo, us), m.To)
	}

	switch m.Flag {
	case CastleKingside:
		p.shift(NewSquare(7, m.From.Rank()), NewSquare(5, m.From.Rank()))
	case CastleQueenside:
		p.shift(NewSquare(0, m.From.Rank()), NewSquare(3, m.From.Rank()))
	}

	// Moving the king, or moving or capturing a rook on its home
	// corner, clears the relevant rights for good.
	if pc.Type() == King {
		if us == White {
			p.Castling &^= WhiteKingside | WhiteQueenside
		} else {
			p.Castling &^= BlackKingside | BlackQueenside
		}
	}
	for _, sq := range [2]Square{m.From, m.To} {
		switch sq {
		case A1:
			p.Castling &^= WhiteQueenside
		case H1:
			p.Castling &^= WhiteKingside
		case A8:
			p.Castling &^= BlackQueenside
		case H8:
			p.Castling &^= BlackKingside
		}
	}

	// The en-passant window opens only on a double push and lasts
	// exactly one ply.
	if m.Flag == DoublePush {
		p.EnPassant = NewSquare(m.From.File(), (m.From.Rank()+m.To.Rank())/2)
	} else {
		p.EnPassant = NoSquare
	}

	if pc.Type() == Pawn || !u.Captured.IsEmpty() {
		p.HalfmoveClock = 0
	} else {
		p.HalfmoveClock++
	}
	if us == Black {
		p.FullmoveNumber++
	}
	p.SideToMove = us.Other()

	return u
}

// Unmake inverts a move made by Make, restoring every field of the
// prior position. Moves must be unmade in exact reverse order.
func (p *Position) Unmake(m Move, u Undo) {
	us := p.SideToMove.Other() // the side that made the move
	p.SideToMove = us
	if us == Black {
		p.FullmoveNumber--
	}

	switch m.Flag {
	case CastleKingside:
		p.shift(NewSquare(5, m.From.Rank()), NewSquare(7, m.From.Rank()))
	case CastleQueenside:
		p.shift(NewSquare(3, m.From.Rank()), NewSquare(0, m.From.Rank()))
	}

	p.shift(m.To, m.From)
	if m.IsPromotion() {
		p.put(NewPiece(Pawn, us), m.From)
	}
	if !u.Captured.IsEmpty() {
		p.put(u.Captured, u.CapturedSq)
	}

	p.Castling = u.Castling
	p.EnPassant = u.EnPassant
	p.HalfmoveClock = u.HalfmoveClock
}
