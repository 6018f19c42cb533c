package board

import (
	"fmt"
	"strings"
)

// CastlingRights tracks the four castling options. A right, once
// cleared, never comes back within a game.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota // K
	WhiteQueenside                           // Q
	BlackKingside                            // k
	BlackQueenside                           // q

	NoCastling  CastlingRights = 0
	AllCastling CastlingRights = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// Has reports whether the given side still holds the given right.
func (cr CastlingRights) Has(c Color, kingside bool) bool {
	var bit CastlingRights
	switch {
	case c == White && kingside:
		bit = WhiteKingside
	case c == White:
		bit = WhiteQueenside
	case kingside:
		bit = BlackKingside
	default:
		bit = BlackQueenside
	}
	return cr&bit != 0
}

// String returns the FEN castling field ("KQkq", "-", ...).
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	var sb strings.Builder
	if cr&WhiteKingside != 0 {
		sb.WriteByte('K')
	}
	if cr&WhiteQueenside != 0 {
		sb.WriteByte('Q')
	}
	if cr&BlackKingside != 0 {
		sb.WriteByte('k')
	}
	if cr&BlackQueenside != 0 {
		sb.WriteByte('q')
	}
	return sb.String()
}

// Position is one complete board configuration plus auxiliary state.
// It is only ever mutated through Make/Unmake; everything else treats
// it as read-only, so a fixed Position may be shared across goroutines.
type Position struct {
	Board [64]Piece

	SideToMove     Color
	Castling       CastlingRights
	EnPassant      Square // capture target after a double push, else NoSquare
	HalfmoveClock  int    // plies since the last pawn move or capture
	FullmoveNumber int    // starts at 1, incremented after Black moves

	// King squares, cached for check detection.
	kings [2]Square
}

// NewPosition returns the standard starting position.
func NewPosition() *Position {
	p, err := ParseFEN(StartFEN)
	if err != nil {
		panic(err) // the start FEN is a constant
	}
	return p
}

// Copy returns an independent copy of the position.
func (p *Position) Copy() *Position {
	cp := *p
	return &cp
}

// PieceAt returns the piece on the square, or Empty.
func (p *Position) PieceAt(sq Square) Piece {
	return p.Board[sq]
}

// KingSquare returns the square of the given side's king.
func (p *Position) KingSquare(c Color) Square {
	return p.kings[c]
}

// put places a piece, keeping the king cache current.
func (p *Position) put(pc Piece, sq Square) {
	p.Board[sq] = pc
	if pc.Type() == King {
		p.kings[pc.Color()] = sq
	}
}

// remove clears a square and returns what stood there.
func (p *Position) remove(sq Square) Piece {
	pc := p.Board[sq]
	p.Board[sq] = Empty
	return pc
}

// shift moves the piece on from to to, which must be empty.
func (p *Position) shift(from, to Square) {
	p.put(p.Board[from], to)
	p.Board[from] = Empty
}

// findKings rebuilds the king cache by scanning the board.
func (p *Position) findKings() {
	p.kings[White] = NoSquare
	p.kings[Black] = NoSquare
	for sq := A1; sq <= H8; sq++ {
		if pc := p.Board[sq]; pc.Type() == King {
			p.kings[pc.Color()] = sq
		}
	}
}

// InCheck reports whether the side to move's king is attacked.
func (p *Position) InCheck() bool {
	ksq := p.kings[p.SideToMove]
	if !ksq.IsValid() {
		panic(fmt.Sprintf("position has no %s king", p.SideToMove))
	}
	return p.IsSquareAttacked(ksq, p.SideToMove.Other())
}

// Validate checks the structural invariants an externally supplied
// position must satisfy before it may enter play.
func (p *Position) Validate() error {
	var kings [2]int
	for sq := A1; sq <= H8; sq++ {
		pc := p.Board[sq]
		if pc.IsEmpty() {
			continue
		}
		if pc.Type() == King {
			kings[pc.Color()]++
		}
		if pc.Type() == Pawn && (sq.Rank() == 0 || sq.Rank() == 7) {
			return fmt.Errorf("pawn on back rank %s", sq)
		}
	}
	if kings[White] != 1 {
		return fmt.Errorf("white has %d kings, want 1", kings[White])
	}
	if kings[Black] != 1 {
		return fmt.Errorf("black has %d kings, want 1", kings[Black])
	}
	return nil
}

// Signature identifies the position for repetition detection: piece
// placement, side to move, castling rights, and en-passant target.
// The move clocks are deliberately excluded.
func (p *Position) Signature() string {
	var sb strings.Builder
	p.writeBoardFEN(&sb)
	sb.WriteByte(' ')
	if p.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(p.Castling.String())
	sb.WriteByte(' ')
	sb.WriteString(p.EnPassant.String())
	return sb.String()
}

// InsufficientMaterial reports whether the remaining material cannot
// force checkmate. Minimal table: K vs K and K+single-minor vs K.
func (p *Position) InsufficientMaterial() bool {
	var minors [2]int
	for sq := A1; sq <= H8; sq++ {
		pc := p.Board[sq]
		switch pc.Type() {
		case NoPieceType, King:
		case Knight, Bishop:
			minors[pc.Color()]++
		default:
			// Any pawn, rook, or queen can still mate.
			return false
		}
	}
	return minors[White]+minors[Black] <= 1
}

// String renders the board with rank and file labels, white at the bottom.
func (p *Position) String() string {
	var sb strings.Builder
	sb.WriteByte('\n')
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d  ", rank+1)
		for file := 0; file < 8; file++ {
			sb.WriteString(p.Board[NewSquare(file, rank)].String())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("\n   a b c d e f g h\n\n")
	fmt.Fprintf(&sb, "Side to move: %s\n", p.SideToMove)
	fmt.Fprintf(&sb, "Castling: %s\n", p.Castling)
	fmt.Fprintf(&sb, "En passant: %s\n", p.EnPassant)
	fmt.Fprintf(&sb, "Halfmove clock: %d\n", p.HalfmoveClock)
	fmt.Fprintf(&sb, "Fullmove: %d\n", p.FullmoveNumber)
	return sb.String()
}
