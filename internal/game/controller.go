// Package game owns the authoritative position during play: it applies
// and undoes moves, keeps the move history, tracks position repetitions,
// and classifies terminal outcomes.
package game

import (
	"github.com/pkg/errors"

	"github.com/blueuwu/infinitechess/internal/board"
)

// Recoverable error kinds. Both leave the game state unchanged.
var (
	ErrIllegalMove = errors.New("illegal move")
	ErrNoHistory   = errors.New("no history to undo")
)

// historyEntry pairs a move with what is needed to invert it and the
// repetition signature it produced.
type historyEntry struct {
	move board.Move
	undo board.Undo
	sig  string
}

// Controller is the only component mutated during play. It is strictly
// sequential: Apply and Undo must not be called concurrently on the
// same instance.
type Controller struct {
	pos     *board.Position
	history []historyEntry
	seen    map[string]int // signature multiset for repetition detection
}

// New starts a game from the standard initial position.
func New() *Controller {
	c := &Controller{
		pos:  board.NewPosition(),
		seen: make(map[string]int),
	}
	c.seen[c.pos.Signature()]++
	return c
}

// NewFromPosition starts a game from an externally supplied position,
// which must pass structural validation first.
func NewFromPosition(p *board.Position) (*Controller, error) {
	if err := p.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid position")
	}
	c := &Controller{
		pos:  p.Copy(),
		seen: make(map[string]int),
	}
	c.seen[c.pos.Signature()]++
	return c, nil
}

// Position returns a read-only snapshot of the current position. The
// controller keeps exclusive ownership of the live one.
func (c *Controller) Position() *board.Position {
	return c.pos.Copy()
}

// LegalMoves returns the legal move set for the current position.
func (c *Controller) LegalMoves() []board.Move {
	return c.pos.LegalMoves()
}

// Ply returns the number of half-moves played so far.
func (c *Controller) Ply() int {
	return len(c.history)
}

// History returns the moves played so far, oldest first.
func (c *Controller) History() []board.Move {
	moves := make([]board.Move, len(c.history))
	for i, e := range c.history {
		moves[i] = e.move
	}
	return moves
}

// Apply plays a move. It fails with ErrIllegalMove, leaving the state
// untouched, unless the move is a member of the current legal set.
func (c *Controller) Apply(m board.Move) error {
	legal := false
	for _, lm := range c.pos.LegalMoves() {
		if lm == m {
			legal = true
			break
		}
	}
	if !legal {
		return errors.Wrapf(ErrIllegalMove, "%s in %s", m, c.pos.FEN())
	}

	undo := c.pos.Make(m)
	sig := c.pos.Signature()
	c.history = append(c.history, historyEntry{move: m, undo: undo, sig: sig})
	c.seen[sig]++
	return nil
}

// ApplySAN parses a move in algebraic notation and plays it.
func (c *Controller) ApplySAN(san string) error {
	m, err := board.ParseSAN(san, c.pos)
	if err != nil {
		return errors.Wrap(ErrIllegalMove, err.Error())
	}
	return c.Apply(m)
}

// Undo reverts the most recent move, restoring the exact prior
// position including clocks and rights. It fails with ErrNoHistory on
// an empty stack.
func (c *Controller) Undo() error {
	if len(c.history) == 0 {
		return ErrNoHistory
	}
	e := c.history[len(c.history)-1]
	c.history = c.history[:len(c.history)-1]

	if c.seen[e.sig] <= 1 {
		delete(c.seen, e.sig)
	} else {
		c.seen[e.sig]--
	}
	c.pos.Unmake(e.move, e.undo)
	return nil
}
