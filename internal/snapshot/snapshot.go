// Package snapshot converts between external board snapshots and
// engine positions. The wire form lists every piece with its kind,
// owner, and row/column (row 0 is the eighth rank), plus whose turn it
// is. Malformed snapshots are rejected before any position is built.
package snapshot

import (
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/blueuwu/infinitechess/internal/board"
)

// ErrInvalidSnapshot marks any snapshot rejected by validation.
var ErrInvalidSnapshot = errors.New("invalid snapshot")

// Coord is a row/column pair; row 0 is the eighth rank, col 0 the a-file.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// PiecePayload is one piece on the external board.
type PiecePayload struct {
	Kind   string `json:"kind"`
	Player string `json:"player"`
	Pos    Coord  `json:"pos"`
}

// BoardPayload is the piece list of an external snapshot.
type BoardPayload struct {
	Pieces []PiecePayload `json:"pieces"`
}

// Payload is a full external board snapshot.
type Payload struct {
	Board         BoardPayload `json:"board"`
	CurrentPlayer string       `json:"currentPlayer"`
}

var kindToType = map[string]board.PieceType{
	"pawn":   board.Pawn,
	"knight": board.Knight,
	"bishop": board.Bishop,
	"rook":   board.Rook,
	"queen":  board.Queen,
	"king":   board.King,
}

var typeToKind = map[board.PieceType]string{
	board.Pawn:   "pawn",
	board.Knight: "knight",
	board.Bishop: "bishop",
	board.Rook:   "rook",
	board.Queen:  "queen",
	board.King:   "king",
}

// Decode parses a JSON snapshot and reconstructs a validated position.
func Decode(data []byte) (*board.Position, error) {
	var pl Payload
	if err := json.Unmarshal(data, &pl); err != nil {
		return nil, multierror.Append(ErrInvalidSnapshot, err)
	}
	return pl.Position()
}

// Position reconstructs a Position from the snapshot. A snapshot
// carries no castling or en-passant information, so the reconstructed
// position has neither and fresh clocks; it is still fully usable for
// legal move generation. Every validation defect found is reported,
// aggregated under ErrInvalidSnapshot.
func (pl *Payload) Position() (*board.Position, error) {
	var errs *multierror.Error

	p := &board.Position{
		EnPassant:      board.NoSquare,
		FullmoveNumber: 1,
	}

	switch pl.CurrentPlayer {
	case "white":
		p.SideToMove = board.White
	case "black":
		p.SideToMove = board.Black
	default:
		errs = multierror.Append(errs, fmt.Errorf("unknown current player %q", pl.CurrentPlayer))
	}

	for i, pc := range pl.Board.Pieces {
		pt, ok := kindToType[pc.Kind]
		if !ok {
			errs = multierror.Append(errs, fmt.Errorf("piece %d: unknown kind %q", i, pc.Kind))
			continue
		}

		var color board.Color
		switch pc.Player {
		case "white":
			color = board.White
		case "black":
			color = board.Black
		default:
			errs = multierror.Append(errs, fmt.Errorf("piece %d: unknown player %q", i, pc.Player))
			continue
		}

		if pc.Pos.Row < 0 || pc.Pos.Row > 7 || pc.Pos.Col < 0 || pc.Pos.Col > 7 {
			errs = multierror.Append(errs, fmt.Errorf("piece %d: position (%d,%d) off the board", i, pc.Pos.Row, pc.Pos.Col))
			continue
		}

		sq := board.NewSquare(pc.Pos.Col, 7-pc.Pos.Row)
		if !p.Board[sq].IsEmpty() {
			errs = multierror.Append(errs, fmt.Errorf("piece %d: square %s occupied twice", i, sq))
			continue
		}
		p.Board[sq] = board.NewPiece(pt, color)
	}

	if errs.ErrorOrNil() != nil {
		return nil, multierror.Append(ErrInvalidSnapshot, errs.Errors...)
	}

	if err := rebuild(p); err != nil {
		return nil, multierror.Append(ErrInvalidSnapshot, err)
	}
	return p, nil
}

// rebuild finalizes the reconstructed position via the FEN codec so
// that derived state (king cache) is consistent, then validates it.
func rebuild(p *board.Position) error {
	fixed, err := board.ParseFEN(p.FEN())
	if err != nil {
		return err
	}
	*p = *fixed
	return p.Validate()
}

// FromPosition renders a position as an external snapshot payload.
func FromPosition(p *board.Position) *Payload {
	pl := &Payload{CurrentPlayer: "white"}
	if p.SideToMove == board.Black {
		pl.CurrentPlayer = "black"
	}
	for sq := board.A1; sq <= board.H8; sq++ {
		pc := p.PieceAt(sq)
		if pc.IsEmpty() {
			continue
		}
		player := "white"
		if pc.Color() == board.Black {
			player = "black"
		}
		pl.Board.Pieces = append(pl.Board.Pieces, PiecePayload{
			Kind:   typeToKind[pc.Type()],
			Player: player,
			Pos:    Coord{Row: 7 - sq.Rank(), Col: sq.File()},
		})
	}
	return pl
}
