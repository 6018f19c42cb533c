package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a FEN string into a Position. The clock fields are
// optional, defaulting to 0 and 1.
func ParseFEN(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 {
		return nil, fmt.Errorf("invalid FEN: need at least 4 fields, got %d", len(parts))
	}

	p := &Position{
		EnPassant:      NoSquare,
		FullmoveNumber: 1,
	}

	ranks := strings.Split(parts[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("invalid FEN: need 8 ranks, got %d", len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			pc := PieceFromChar(c)
			if pc.IsEmpty() {
				return nil, fmt.Errorf("invalid piece character %q", c)
			}
			if file > 7 {
				return nil, fmt.Errorf("too many squares in rank %d", rank+1)
			}
			p.Board[NewSquare(file, rank)] = pc
			file++
		}
		if file != 8 {
			return nil, fmt.Errorf("rank %d has %d squares, want 8", rank+1, file)
		}
	}

	switch parts[1] {
	case "w":
		p.SideToMove = White
	case "b":
		p.SideToMove = Black
	default:
		return nil, fmt.Errorf("invalid side to move %q", parts[1])
	}

	if parts[2] != "-" {
		for i := 0; i < len(parts[2]); i++ {
			switch parts[2][i] {
			case 'K':
				p.Castling |= WhiteKingside
			case 'Q':
				p.Castling |= WhiteQueenside
			case 'k':
				p.Castling |= BlackKingside
			case 'q':
				p.Castling |= BlackQueenside
			default:
				return nil, fmt.Errorf("invalid castling character %q", parts[2][i])
			}
		}
	}

	if parts[3] != "-" {
		sq, err := ParseSquare(parts[3])
		if err != nil {
			return nil, fmt.Errorf("invalid en passant square %q", parts[3])
		}
		p.EnPassant = sq
	}

	if len(parts) > 4 {
		hmc, err := strconv.Atoi(parts[4])
		if err != nil || hmc < 0 {
			return nil, fmt.Errorf("invalid halfmove clock %q", parts[4])
		}
		p.HalfmoveClock = hmc
	}
	if len(parts) > 5 {
		fmn, err := strconv.Atoi(parts[5])
		if err != nil || fmn < 1 {
			return nil, fmt.Errorf("invalid fullmove number %q", parts[5])
		}
		p.FullmoveNumber = fmn
	}

	p.findKings()
	return p, nil
}

// writeBoardFEN writes the piece placement field.
func (p *Position) writeBoardFEN(sb *strings.Builder) {
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			pc := p.Board[NewSquare(file, rank)]
			if pc.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// FEN returns the full six-field FEN representation of the position.
func (p *Position) FEN() string {
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
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.HalfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.FullmoveNumber))
	return sb.String()
}
