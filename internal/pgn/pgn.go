// Package pgn emits standard movetext transcripts for finished (or
// in-progress) games: a seven-tag header roster followed by numbered
// full moves in algebraic notation and the result tag.
package pgn

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/blueuwu/infinitechess/internal/board"
)

// Tags is the seven-tag roster every exported game carries.
type Tags struct {
	Event  string
	Site   string
	Date   string
	Round  string
	White  string
	Black  string
	Result string
}

// DefaultTags fills the roster for a locally generated game.
func DefaultTags(round int, result string, now time.Time) Tags {
	return Tags{
		Event:  "Random Chess Game",
		Site:   "InfiniteChessAI",
		Date:   now.Format("2006.01.02"),
		Round:  fmt.Sprintf("%d", round),
		White:  "RandomEngine",
		Black:  "RandomEngine",
		Result: result,
	}
}

// Movetext renders the moves played from start as numbered full moves
// in algebraic notation, terminated by the result tag. Lines are
// wrapped near 80 columns per the PGN export format. It fails if any
// move is not legal where it appears, since a transcript that cannot
// be replayed is worthless.
func Movetext(start *board.Position, moves []board.Move, result string) (string, error) {
	p := start.Copy()
	tokens := make([]string, 0, len(moves)+len(moves)/2+1)

	for i, m := range moves {
		legal := false
		for _, lm := range p.LegalMoves() {
			if lm == m {
				legal = true
				break
			}
		}
		if !legal {
			return "", errors.Errorf("ply %d: move %s is not legal in %s", i+1, m, p.FEN())
		}

		if p.SideToMove == board.White {
			tokens = append(tokens, fmt.Sprintf("%d.", p.FullmoveNumber))
		} else if i == 0 {
			// A transcript starting mid-move marks black's move with an ellipsis.
			tokens = append(tokens, fmt.Sprintf("%d...", p.FullmoveNumber))
		}
		tokens = append(tokens, m.SAN(p))
		p.Make(m)
	}

	tokens = append(tokens, result)
	return wrap(tokens, 80), nil
}

// wrap joins tokens with spaces, breaking lines before the width limit.
func wrap(tokens []string, width int) string {
	var sb strings.Builder
	line := 0
	for i, tok := range tokens {
		if i > 0 {
			if line+1+len(tok) > width {
				sb.WriteByte('\n')
				line = 0
			} else {
				sb.WriteByte(' ')
				line++
			}
		}
		sb.WriteString(tok)
		line += len(tok)
	}
	return sb.String()
}

// Game renders a complete PGN game: tag pairs, a blank line, and the
// movetext. The Result tag and the movetext terminator always agree.
func Game(tags Tags, start *board.Position, moves []board.Move) (string, error) {
	movetext, err := Movetext(start, moves, tags.Result)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, pair := range [][2]string{
		{"Event", tags.Event},
		{"Site", tags.Site},
		{"Date", tags.Date},
		{"Round", tags.Round},
		{"White", tags.White},
		{"Black", tags.Black},
		{"Result", tags.Result},
	} {
		fmt.Fprintf(&sb, "[%s %q]\n", pair[0], pair[1])
	}
	sb.WriteByte('\n')
	sb.WriteString(movetext)
	sb.WriteByte('\n')
	return sb.String(), nil
}
