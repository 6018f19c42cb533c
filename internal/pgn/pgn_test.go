package pgn

import (
	"strings"
	"testing"
	"time"

	"github.com/blueuwu/infinitechess/internal/board"
	"github.com/blueuwu/infinitechess/internal/game"
)

func playUCI(t *testing.T, ucis ...string) *game.Controller {
	t.Helper()
	c := game.New()
	for _, uci := range ucis {
		m, err := board.ParseMove(uci, c.Position())
		if err != nil {
			t.Fatalf("ParseMove(%s): %v", uci, err)
		}
		if err := c.Apply(m); err != nil {
			t.Fatalf("Apply(%s): %v", uci, err)
		}
	}
	return c
}

func TestMovetextFoolsMate(t *testing.T) {
	c := playUCI(t, "f2f3", "e7e5", "g2g4", "d8h4")

	got, err := Movetext(board.NewPosition(), c.History(), c.Result())
	if err != nil {
		t.Fatal(err)
	}
	want := "1. f3 e5 2. g4 Qh4# 0-1"
	if got != want {
		t.Errorf("movetext = %q, want %q", got, want)
	}
}

func TestMovetextOngoingGame(t *testing.T) {
	c := playUCI(t, "e2e4", "e7e5", "g1f3")

	got, err := Movetext(board.NewPosition(), c.History(), c.Result())
	if err != nil {
		t.Fatal(err)
	}
	want := "1. e4 e5 2. Nf3 *"
	if got != want {
		t.Errorf("movetext = %q, want %q", got, want)
	}
}

func TestMovetextRejectsIllegalSequence(t *testing.T) {
	moves := []board.Move{{From: board.E2, To: board.E5}}
	if _, err := Movetext(board.NewPosition(), moves, "*"); err == nil {
		t.Error("expected an error for an unreplayable transcript")
	}
}

func TestGameHeaders(t *testing.T) {
	c := playUCI(t, "f2f3", "e7e5", "g2g4", "d8h4")

	tags := DefaultTags(3, c.Result(), time.Date(2025, 11, 2, 12, 0, 0, 0, time.UTC))
	got, err := Game(tags, board.NewPosition(), c.History())
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		`[Event "Random Chess Game"]`,
		`[Site "InfiniteChessAI"]`,
		`[Date "2025.11.02"]`,
		`[Round "3"]`,
		`[White "RandomEngine"]`,
		`[Black "RandomEngine"]`,
		`[Result "0-1"]`,
		"\n\n1. f3 e5 2. g4 Qh4# 0-1\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("game output missing %q:\n%s", want, got)
		}
	}
}

func TestMovetextWrapsLongGames(t *testing.T) {
	// Knights shuffling for long enough to force a line break.
	cycle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}
	var ucis []string
	for i := 0; i < 10; i++ {
		ucis = append(ucis, cycle...)
	}
	c := playUCI(t, ucis...)

	got, err := Movetext(board.NewPosition(), c.History(), "*")
	if err != nil {
		t.Fatal(err)
	}
	for _, line := range strings.Split(got, "\n") {
		if len(line) > 80 {
			t.Errorf("line exceeds 80 columns: %q", line)
		}
	}
	if !strings.Contains(got, "\n") {
		t.Error("expected at least one wrapped line")
	}
}
