package snapshot

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blueuwu/infinitechess/internal/board"
)

func TestDecodeMinimalSnapshot(t *testing.T) {
	data := []byte(`{
		"board": {"pieces": [
			{"kind": "king", "player": "white", "pos": {"row": 7, "col": 4}},
			{"kind": "king", "player": "black", "pos": {"row": 0, "col": 4}},
			{"kind": "queen", "player": "white", "pos": {"row": 6, "col": 3}}
		]},
		"currentPlayer": "white"
	}`)

	p, err := Decode(data)
	require.NoError(t, err)

	require.Equal(t, board.NewPiece(board.King, board.White), p.PieceAt(board.E1))
	require.Equal(t, board.NewPiece(board.King, board.Black), p.PieceAt(board.E8))
	require.Equal(t, board.NewPiece(board.Queen, board.White), p.PieceAt(board.D2))
	require.Equal(t, board.White, p.SideToMove)
	require.NotEmpty(t, p.LegalMoves())
}

func TestRoundTripThroughPayload(t *testing.T) {
	want, err := board.ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R b - - 0 1")
	require.NoError(t, err)

	got, err := FromPosition(want).Position()
	require.NoError(t, err)

	// Piece placement and turn survive; rights and clocks are not part
	// of the snapshot wire form.
	for sq := board.A1; sq <= board.H8; sq++ {
		require.Equal(t, want.PieceAt(sq), got.PieceAt(sq), "square %s", sq)
	}
	require.Equal(t, want.SideToMove, got.SideToMove)
}

func TestDecodeRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{"board":`},
		{
			"duplicate occupancy",
			`{"board": {"pieces": [
				{"kind": "king", "player": "white", "pos": {"row": 7, "col": 4}},
				{"kind": "king", "player": "black", "pos": {"row": 0, "col": 4}},
				{"kind": "rook", "player": "white", "pos": {"row": 7, "col": 0}},
				{"kind": "queen", "player": "white", "pos": {"row": 7, "col": 0}}
			]}, "currentPlayer": "white"}`,
		},
		{
			"missing king",
			`{"board": {"pieces": [
				{"kind": "king", "player": "white", "pos": {"row": 7, "col": 4}}
			]}, "currentPlayer": "white"}`,
		},
		{
			"duplicate king",
			`{"board": {"pieces": [
				{"kind": "king", "player": "white", "pos": {"row": 7, "col": 4}},
				{"kind": "king", "player": "white", "pos": {"row": 7, "col": 6}},
				{"kind": "king", "player": "black", "pos": {"row": 0, "col": 4}}
			]}, "currentPlayer": "white"}`,
		},
		{
			"unknown kind",
			`{"board": {"pieces": [
				{"kind": "archbishop", "player": "white", "pos": {"row": 7, "col": 4}},
				{"kind": "king", "player": "black", "pos": {"row": 0, "col": 4}}
			]}, "currentPlayer": "white"}`,
		},
		{
			"off-board position",
			`{"board": {"pieces": [
				{"kind": "king", "player": "white", "pos": {"row": 9, "col": 4}},
				{"kind": "king", "player": "black", "pos": {"row": 0, "col": 4}}
			]}, "currentPlayer": "white"}`,
		},
		{
			"unknown player",
			`{"board": {"pieces": [
				{"kind": "king", "player": "green", "pos": {"row": 7, "col": 4}},
				{"kind": "king", "player": "black", "pos": {"row": 0, "col": 4}}
			]}, "currentPlayer": "white"}`,
		},
		{
			"bad turn",
			`{"board": {"pieces": [
				{"kind": "king", "player": "white", "pos": {"row": 7, "col": 4}},
				{"kind": "king", "player": "black", "pos": {"row": 0, "col": 4}}
			]}, "currentPlayer": "red"}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode([]byte(tc.data))
			require.ErrorIs(t, err, ErrInvalidSnapshot)
		})
	}
}

func TestDecodeReportsAllDefectsAtOnce(t *testing.T) {
	data := []byte(`{"board": {"pieces": [
		{"kind": "wizard", "player": "white", "pos": {"row": 7, "col": 4}},
		{"kind": "king", "player": "green", "pos": {"row": 0, "col": 4}}
	]}, "currentPlayer": "red"}`)

	_, err := Decode(data)
	require.ErrorIs(t, err, ErrInvalidSnapshot)
	require.Contains(t, err.Error(), "wizard")
	require.Contains(t, err.Error(), "green")
	require.Contains(t, err.Error(), "red")
}
