package board

// Movement geometry: fixed offset lists for the stepping pieces and ray
// directions for the sliders. Step-piece targets are precomputed per
// square at init time with off-board offsets already filtered out, so
// move generation and attack detection never bounds-check them again.

// delta is a (file, rank) displacement.
type delta struct {
	df, dr int
}

var (
	knightDeltas = [8]delta{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingDeltas   = [8]delta{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}

	bishopDirs = [4]delta{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
	rookDirs   = [4]delta{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	queenDirs  = [8]delta{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}, {1, 0}, {-1, 0}, {0, 1}, {0, -1}}
)

// Precomputed step-piece targets per square.
var (
	knightTargets [64][]Square
	kingTargets   [64][]Square
)

func init() {
	for sq := A1; sq <= H8; sq++ {
		for _, d := range knightDeltas {
			if to := sq.offset(d); to.IsValid() {
				knightTargets[sq] = append(knightTargets[sq], to)
			}
		}
		for _, d := range kingDeltas {
			if to := sq.offset(d); to.IsValid() {
				kingTargets[sq] = append(kingTargets[sq], to)
			}
		}
	}
}

// offset returns the square displaced by d, or NoSquare when the result
// would leave the board.
func (sq Square) offset(d delta) Square {
	f := sq.File() + d.df
	r := sq.Rank() + d.dr
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return NoSquare
	}
	return NewSquare(f, r)
}

// pawnPushDir returns the rank direction pawns of the given color advance.
func pawnPushDir(c Color) int {
	if c == White {
		return 1
	}
	return -1
}

// pawnStartRank returns the rank pawns of the given color start on.
func pawnStartRank(c Color) int {
	if c == White {
		return 1
	}
	return 6
}

// pawnPromoRank returns the rank pawns of the given color promote on.
func pawnPromoRank(c Color) int {
	if c == White {
		return 7
	}
	return 0
}

// sliderDirs returns the ray directions for a sliding piece type,
// or nil for non-sliders.
func sliderDirs(pt PieceType) []delta {
	switch pt {
	case Bishop:
		return bishopDirs[:]
	case Rook:
		return rookDirs[:]
	case Queen:
		return queenDirs[:]
	}
	return nil
}
