package game

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"github.com/blueuwu/infinitechess/internal/board"
)

func apply(t *testing.T, c *Controller, ucis ...string) {
	t.Helper()
	for _, uci := range ucis {
		m, err := board.ParseMove(uci, c.Position())
		if err != nil {
			t.Fatalf("ParseMove(%s): %v", uci, err)
		}
		if err := c.Apply(m); err != nil {
			t.Fatalf("Apply(%s): %v", uci, err)
		}
	}
}

func TestOpeningScenario(t *testing.T) {
	c := New()
	apply(t, c, "e2e4", "e7e5", "g1f3", "g8f6")

	if got := c.Ply(); got != 4 {
		t.Errorf("history length = %d, want 4", got)
	}

	moves := c.LegalMoves()
	hasBishop := false
	for _, m := range moves {
		if m.From == board.F1 && m.To == board.B5 {
			hasBishop = true
		}
		if m.Flag == board.CastleKingside {
			t.Error("castling offered while f1 is still occupied")
		}
	}
	if !hasBishop {
		t.Error("expected f1b5 in the legal move set")
	}
	if got := c.Status(); got != Ongoing {
		t.Errorf("status = %s, want ongoing", got)
	}
}

func TestApplyRejectsIllegalMove(t *testing.T) {
	c := New()
	before := c.Position()

	err := c.Apply(board.Move{From: board.E2, To: board.E5})
	if !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("err = %v, want ErrIllegalMove", err)
	}

	if diff := cmp.Diff(before.FEN(), c.Position().FEN()); diff != "" {
		t.Errorf("state changed by rejected move:\n%s", diff)
	}
	if c.Ply() != 0 {
		t.Errorf("history length = %d after rejected move, want 0", c.Ply())
	}
}

func TestUndoRestoresExactPosition(t *testing.T) {
	c := New()
	start := c.Position().FEN()

	apply(t, c, "e2e4", "e7e5", "g1f3", "g8f6")
	for i := 0; i < 4; i++ {
		if err := c.Undo(); err != nil {
			t.Fatalf("Undo %d: %v", i, err)
		}
	}

	if got := c.Position().FEN(); got != start {
		t.Errorf("position after full undo = %q, want %q", got, start)
	}
	if err := c.Undo(); !errors.Is(err, ErrNoHistory) {
		t.Errorf("Undo on empty history = %v, want ErrNoHistory", err)
	}
}

func TestFoolsMate(t *testing.T) {
	c := New()
	apply(t, c, "f2f3", "e7e5", "g2g4", "d8h4")

	if got := c.Status(); got != Checkmate {
		t.Fatalf("status = %s, want checkmate", got)
	}
	if got := c.Winner(); got != board.Black {
		t.Errorf("winner = %s, want Black", got)
	}
	if got := c.Result(); got != "0-1" {
		t.Errorf("result = %q, want 0-1", got)
	}
}

func TestStalemate(t *testing.T) {
	// Black to move with king on a8 boxed in by the queen on c7.
	p, err := board.ParseFEN("k7/2Q5/8/8/8/8/8/4K3 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	c, err := NewFromPosition(p)
	if err != nil {
		t.Fatal(err)
	}

	if got := c.Status(); got != Stalemate {
		t.Errorf("status = %s, want stalemate", got)
	}
	if got := c.Result(); got != "1/2-1/2" {
		t.Errorf("result = %q, want 1/2-1/2", got)
	}
}

func TestFiftyMoveDraw(t *testing.T) {
	p, err := board.ParseFEN("4k3/8/8/8/8/8/8/R3K3 w - - 100 80")
	if err != nil {
		t.Fatal(err)
	}
	c, err := NewFromPosition(p)
	if err != nil {
		t.Fatal(err)
	}

	if got := c.Status(); got != DrawFiftyMove {
		t.Errorf("status = %s, want fifty-move draw", got)
	}
}

func TestThreefoldRepetition(t *testing.T) {
	c := New()

	// Shuffle the knights out and back twice; the starting signature
	// occurs a third time after the second full cycle.
	cycle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}
	apply(t, c, cycle...)
	if got := c.Status(); got != Ongoing {
		t.Fatalf("status after one cycle = %s, want ongoing", got)
	}
	apply(t, c, cycle...)
	if got := c.Status(); got != DrawThreefoldRepetition {
		t.Errorf("status after two cycles = %s, want threefold repetition", got)
	}

	// Undoing one ply removes the third occurrence.
	if err := c.Undo(); err != nil {
		t.Fatal(err)
	}
	if got := c.Status(); got != Ongoing {
		t.Errorf("status after undo = %s, want ongoing", got)
	}
}

func TestInsufficientMaterial(t *testing.T) {
	tests := []struct {
		fen  string
		want Status
	}{
		{"4k3/8/8/8/8/8/8/4K3 w - - 0 1", DrawInsufficientMaterial},  // K vs K
		{"4k3/8/8/8/8/8/8/2B1K3 w - - 0 1", DrawInsufficientMaterial}, // K+B vs K
		{"4k3/8/8/8/8/8/8/2N1K3 b - - 0 1", DrawInsufficientMaterial}, // K+N vs K
		{"4k3/8/8/8/8/8/8/2R1K3 b - - 0 1", Ongoing},                  // rook mates
		{"4k3/4p3/8/8/8/8/8/4K3 w - - 0 1", Ongoing},                  // pawn promotes
		{"2b1k3/8/8/8/8/8/8/2B1K3 w - - 0 1", Ongoing},                // two minors
	}

	for _, tc := range tests {
		p, err := board.ParseFEN(tc.fen)
		if err != nil {
			t.Fatal(err)
		}
		c, err := NewFromPosition(p)
		if err != nil {
			t.Fatal(err)
		}
		if got := c.Status(); got != tc.want {
			t.Errorf("%q: status = %s, want %s", tc.fen, got, tc.want)
		}
	}
}

func TestCheckmateBeatsClockDraws(t *testing.T) {
	// Back-rank mate with the halfmove clock already at 100: the
	// no-legal-move outcome wins over the fifty-move rule.
	p, err := board.ParseFEN("R6k/6pp/8/8/8/8/8/K7 b - - 100 90")
	if err != nil {
		t.Fatal(err)
	}
	c, err := NewFromPosition(p)
	if err != nil {
		t.Fatal(err)
	}

	if got := c.Status(); got != Checkmate {
		t.Errorf("status = %s, want checkmate", got)
	}
	if got := c.Result(); got != "1-0" {
		t.Errorf("result = %q, want 1-0", got)
	}
}

func TestNewFromPositionValidates(t *testing.T) {
	p, err := board.ParseFEN("4k3/8/8/8/8/8/8/2K1K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewFromPosition(p); err == nil {
		t.Error("NewFromPosition accepted a position with two white kings")
	}
}

func TestApplySAN(t *testing.T) {
	c := New()
	for _, san := range []string{"e4", "e5", "Nf3", "Nc6", "Bb5"} {
		if err := c.ApplySAN(san); err != nil {
			t.Fatalf("ApplySAN(%s): %v", san, err)
		}
	}
	if c.Ply() != 5 {
		t.Errorf("ply = %d, want 5", c.Ply())
	}
	// Black cannot castle with f8 and g8 still occupied.
	if err := c.ApplySAN("O-O"); !errors.Is(err, ErrIllegalMove) {
		t.Errorf("ApplySAN(O-O) = %v, want ErrIllegalMove", err)
	}
}
