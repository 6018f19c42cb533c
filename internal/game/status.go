package game

import "github.com/blueuwu/infinitechess/internal/board"

// Status classifies the current position.
type Status uint8

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
	DrawFiftyMove
	DrawThreefoldRepetition
	DrawInsufficientMaterial
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case DrawFiftyMove:
		return "draw by fifty-move rule"
	case DrawThreefoldRepetition:
		return "draw by threefold repetition"
	case DrawInsufficientMaterial:
		return "draw by insufficient material"
	default:
		return "unknown"
	}
}

// Terminal reports whether the game is over.
func (s Status) Terminal() bool {
	return s != Ongoing
}

// Status classifies the current position. The no-legal-move outcomes
// are checked first and are terminal regardless of the clocks; the
// draw conditions follow in a fixed order (fifty-move before
// repetition before insufficient material) so ties are reported
// consistently.
func (c *Controller) Status() Status {
	if len(c.pos.LegalMoves()) == 0 {
		if c.pos.InCheck() {
			return Checkmate
		}
		return Stalemate
	}
	if c.pos.HalfmoveClock >= 100 {
		return DrawFiftyMove
	}
	if c.seen[c.pos.Signature()] >= 3 {
		return DrawThreefoldRepetition
	}
	if c.pos.InsufficientMaterial() {
		return DrawInsufficientMaterial
	}
	return Ongoing
}

// Winner returns the winning color. It is meaningful only when Status
// is Checkmate: the side to move is the one mated.
func (c *Controller) Winner() board.Color {
	return c.pos.SideToMove.Other()
}

// Result returns the PGN result tag for the current status:
// "1-0", "0-1", "1/2-1/2", or "*" while the game is ongoing.
func (c *Controller) Result() string {
	switch c.Status() {
	case Ongoing:
		return "*"
	case Checkmate:
		if c.Winner() == board.White {
			return "1-0"
		}
		return "0-1"
	default:
		return "1/2-1/2"
	}
}
