package board

// IsSquareAttacked reports whether sq is attacked by any piece of the
// given color. It reuses the movement geometry in reverse: a piece of
// type T placed on sq reaches exactly the squares from which an enemy T
// attacks sq (pawns excepted, whose capture direction is color-bound).
func (p *Position) IsSquareAttacked(sq Square, by Color) bool {
	// Pawns: a pawn of color `by` attacks sq from one rank behind it.
	back := -pawnPushDir(by)
	for _, df := range [2]int{-1, 1} {
		from := sq.offset(delta{df, back})
		if from.IsValid() && p.Board[from] == NewPiece(Pawn, by) {
			return true
		}
	}

	for _, from := range knightTargets[sq] {
		if p.Board[from] == NewPiece(Knight, by) {
			return true
		}
	}

	for _, from := range kingTargets[sq] {
		if p.Board[from] == NewPiece(King, by) {
			return true
		}
	}

	// Sliders: walk each ray to the first occupied square.
	if p.rayHits(sq, bishopDirs[:], NewPiece(Bishop, by), NewPiece(Queen, by)) {
		return true
	}
	return p.rayHits(sq, rookDirs[:], NewPiece(Rook, by), NewPiece(Queen, by))
}

// rayHits walks the given rays from sq and reports whether the first
// occupied square on any of them holds one of the two wanted pieces.
func (p *Position) rayHits(sq Square, dirs []delta, want1, want2 Piece) bool {
	for _, d := range dirs {
		for to := sq.offset(d); to.IsValid(); to = to.offset(d) {
			pc := p.Board[to]
			if pc.IsEmpty() {
				continue
			}
			if pc == want1 || pc == want2 {
				return true
			}
			break
		}
	}
	return false
}
