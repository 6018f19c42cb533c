package board

// LegalMoves generates every legal move for the side to move. It is
// pure: the same position always yields the same list, in the same
// order, regardless of call order or history.
func (p *Position) LegalMoves() []Move {
	pseudo := p.PseudoLegalMoves()
	moves := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		if !p.leavesKingInCheck(m) {
			moves = append(moves, m)
		}
	}
	return moves
}

// leavesKingInCheck applies the move on a scratch copy and tests
// whether the mover's own king is attacked afterwards. This uniformly
// handles pins and moving into check without separate pin bookkeeping.
func (p *Position) leavesKingInCheck(m Move) bool {
	us := p.SideToMove
	scratch := p.Copy()
	scratch.Make(m)
	return scratch.IsSquareAttacked(scratch.kings[us], us.Other())
}

// PseudoLegalMoves generates moves that obey piece geometry but may
// leave the mover's king in check.
func (p *Position) PseudoLegalMoves() []Move {
	us := p.SideToMove
	moves := make([]Move, 0, 48)

	for from := A1; from <= H8; from++ {
		pc := p.Board[from]
		if pc.IsEmpty() || pc.Color() != us {
			continue
		}
		switch pc.Type() {
		case Pawn:
			moves = p.genPawnMoves(moves, from, us)
		case Knight:
			moves = p.genStepMoves(moves, from, us, knightTargets[from])
		case King:
			moves = p.genStepMoves(moves, from, us, kingTargets[from])
		default:
			moves = p.genSliderMoves(moves, from, us, sliderDirs(pc.Type()))
		}
	}

	return p.genCastling(moves, us)
}

// genStepMoves generates knight and king moves from a precomputed
// target list: any square not occupied by a friendly piece.
func (p *Position) genStepMoves(moves []Move, from Square, us Color, targets []Square) []Move {
	for _, to := range targets {
		pc := p.Board[to]
		if pc.IsEmpty() || pc.Color() != us {
			moves = append(moves, Move{From: from, To: to})
		}
	}
	return moves
}

// genSliderMoves walks each ray square by square until the board edge
// or the first occupied square, including the latter only on capture.
func (p *Position) genSliderMoves(moves []Move, from Square, us Color, dirs []delta) []Move {
	for _, d := range dirs {
		for to := from.offset(d); to.IsValid(); to = to.offset(d) {
			pc := p.Board[to]
			if pc.IsEmpty() {
				moves = append(moves, Move{From: from, To: to})
				continue
			}
			if pc.Color() != us {
				moves = append(moves, Move{From: from, To: to})
			}
			break
		}
	}
	return moves
}

// genPawnMoves generates pushes, double pushes, captures, en passant,
// and promotions for a single pawn.
func (p *Position) genPawnMoves(moves []Move, from Square, us Color) []Move {
	dir := pawnPushDir(us)
	promoRank := pawnPromoRank(us)

	// Single push, and double push from the starting rank.
	if one := from.offset(delta{0, dir}); one.IsValid() && p.Board[one].IsEmpty() {
		moves = appendPawnMove(moves, Move{From: from, To: one}, promoRank)
		if from.Rank() == pawnStartRank(us) {
			if two := one.offset(delta{0, dir}); two.IsValid() && p.Board[two].IsEmpty() {
				moves = append(moves, Move{From: from, To: two, Flag: DoublePush})
			}
		}
	}

	// Diagonal captures, including en passant.
	for _, df := range [2]int{-1, 1} {
		to := from.offset(delta{df, dir})
		if !to.IsValid() {
			continue
		}
		if to == p.EnPassant {
			moves = append(moves, Move{From: from, To: to, Flag: EnPassantCapture})
			continue
		}
		pc := p.Board[to]
		if !pc.IsEmpty() && pc.Color() != us {
			moves = appendPawnMove(moves, Move{From: from, To: to}, promoRank)
		}
	}

	return moves
}

// appendPawnMove adds a pawn push or capture, expanding it into the
// four promotion moves when it reaches the last rank.
func appendPawnMove(moves []Move, m Move, promoRank int) []Move {
	if m.To.Rank() != promoRank {
		return append(moves, m)
	}
	for _, pt := range [4]PieceType{Queen, Rook, Bishop, Knight} {
		pm := m
		pm.Promo = pt
		moves = append(moves, pm)
	}
	return moves
}

// genCastling adds castling moves. A castle is pseudo-legal only if the
// right is held, the squares between king and rook are empty, the king
// is not in check, and neither the traversed square nor the destination
// is attacked.
func (p *Position) genCastling(moves []Move, us Color) []Move {
	them := us.Other()
	rank := 0
	if us == Black {
		rank = 7
	}
	ksq := NewSquare(4, rank)
	if p.Board[ksq] != NewPiece(King, us) || p.IsSquareAttacked(ksq, them) {
		return moves
	}

	if p.Castling.Has(us, true) &&
		p.Board[NewSquare(5, rank)].IsEmpty() &&
		p.Board[NewSquare(6, rank)].IsEmpty() &&
		!p.IsSquareAttacked(NewSquare(5, rank), them) &&
		!p.IsSquareAttacked(NewSquare(6, rank), them) {
		moves = append(moves, Move{From: ksq, To: NewSquare(6, rank), Flag: CastleKingside})
	}

	if p.Castling.Has(us, false) &&
		p.Board[NewSquare(3, rank)].IsEmpty() &&
		p.Board[NewSquare(2, rank)].IsEmpty() &&
		p.Board[NewSquare(1, rank)].IsEmpty() &&
		!p.IsSquareAttacked(NewSquare(3, rank), them) &&
		!p.IsSquareAttacked(NewSquare(2, rank), them) {
		moves = append(moves, Move{From: ksq, To: NewSquare(2, rank), Flag: CastleQueenside})
	}

	return moves
}

// HasLegalMoves reports whether the side to move has at least one legal
// move, stopping at the first one found.
func (p *Position) HasLegalMoves() bool {
	for _, m := range p.PseudoLegalMoves() {
		if !p.leavesKingInCheck(m) {
			return true
		}
	}
	return false
}
