package board

import (
	"fmt"
	"strings"
)

const sanLetters = " PNBRQK"

// pieceTypeFromLetter maps an uppercase SAN letter to a piece type.
func pieceTypeFromLetter(c byte) PieceType {
	switch c {
	case 'N':
		return Knight
	case 'B':
		return Bishop
	case 'R':
		return Rook
	case 'Q':
		return Queen
	case 'K':
		return King
	}
	return NoPieceType
}

// SAN renders the move in Standard Algebraic Notation relative to the
// position it is played in: piece letter, minimal disambiguation,
// capture marker, destination, "=Q" for promotions, with "+" appended
// for check and "#" for checkmate. Castling is "O-O" / "O-O-O".
func (m Move) SAN(p *Position) string {
	var sb strings.Builder

	switch m.Flag {
	case CastleKingside:
		sb.WriteString("O-O")
	case CastleQueenside:
		sb.WriteString("O-O-O")
	default:
		pt := p.PieceAt(m.From).Type()
		if pt != Pawn {
			sb.WriteByte(sanLetters[pt])
			sb.WriteString(p.disambiguation(m, pt))
		}
		if m.IsCapture(p) {
			if pt == Pawn {
				sb.WriteByte(byte('a' + m.From.File()))
			}
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
		if m.IsPromotion() {
			sb.WriteByte('=')
			sb.WriteByte(sanLetters[m.Promo])
		}
	}

	after := p.Copy()
	after.Make(m)
	if after.InCheck() {
		if after.HasLegalMoves() {
			sb.WriteByte('+')
		} else {
			sb.WriteByte('#')
		}
	}

	return sb.String()
}

// disambiguation returns the minimal origin qualifier needed when
// another piece of the same type can legally reach the same square.
func (p *Position) disambiguation(m Move, pt PieceType) string {
	sameFile := false
	sameRank := false
	ambiguous := false

	for _, other := range p.LegalMoves() {
		if other.To != m.To || other.From == m.From {
			continue
		}
		if p.PieceAt(other.From).Type() != pt {
			continue
		}
		ambiguous = true
		if other.From.File() == m.From.File() {
			sameFile = true
		}
		if other.From.Rank() == m.From.Rank() {
			sameRank = true
		}
	}

	switch {
	case !ambiguous:
		return ""
	case !sameFile:
		return string(byte('a' + m.From.File()))
	case !sameRank:
		return string(byte('1' + m.From.Rank()))
	default:
		return m.From.String()
	}
}

// ParseSAN parses a SAN string against the position it was recorded
// from, returning the identical Move value the generator produced.
// Decoding is bit-exact: from, to, flag, and promotion all round-trip.
func ParseSAN(s string, p *Position) (Move, error) {
	san := strings.TrimSpace(s)
	san = strings.TrimRight(san, "+#!?")

	if san == "O-O" || san == "0-0" {
		return findFlagged(p, CastleKingside, s)
	}
	if san == "O-O-O" || san == "0-0-0" {
		return findFlagged(p, CastleQueenside, s)
	}

	body := san
	promo := NoPieceType
	if i := strings.IndexByte(body, '='); i >= 0 {
		if i+1 >= len(body) {
			return Move{}, fmt.Errorf("truncated promotion in %q", s)
		}
		promo = pieceTypeFromLetter(body[i+1])
		if promo == NoPieceType || promo == King {
			return Move{}, fmt.Errorf("invalid promotion piece in %q", s)
		}
		body = body[:i]
	}

	isCapture := strings.ContainsRune(body, 'x')
	body = strings.ReplaceAll(body, "x", "")

	pt := Pawn
	if len(body) > 0 && body[0] >= 'A' && body[0] <= 'Z' {
		pt = pieceTypeFromLetter(body[0])
		if pt == NoPieceType {
			return Move{}, fmt.Errorf("invalid piece letter in %q", s)
		}
		body = body[1:]
	}

	if len(body) < 2 {
		return Move{}, fmt.Errorf("missing destination in %q", s)
	}
	to, err := ParseSquare(body[len(body)-2:])
	if err != nil {
		return Move{}, fmt.Errorf("invalid destination in %q", s)
	}
	body = body[:len(body)-2]

	fromFile, fromRank := -1, -1
	for i := 0; i < len(body); i++ {
		switch c := body[i]; {
		case c >= 'a' && c <= 'h':
			fromFile = int(c - 'a')
		case c >= '1' && c <= '8':
			fromRank = int(c - '1')
		default:
			return Move{}, fmt.Errorf("invalid disambiguation in %q", s)
		}
	}

	for _, m := range p.LegalMoves() {
		if m.To != to || m.Promo != promo {
			continue
		}
		if p.PieceAt(m.From).Type() != pt {
			continue
		}
		if fromFile >= 0 && m.From.File() != fromFile {
			continue
		}
		if fromRank >= 0 && m.From.Rank() != fromRank {
			continue
		}
		if isCapture != m.IsCapture(p) {
			continue
		}
		return m, nil
	}

	return Move{}, fmt.Errorf("no legal move matches %q", s)
}

// findFlagged returns the unique legal move carrying the given flag.
func findFlagged(p *Position, flag MoveFlag, san string) (Move, error) {
	for _, m := range p.LegalMoves() {
		if m.Flag == flag {
			return m, nil
		}
	}
	return Move{}, fmt.Errorf("no legal move matches %q", san)
}
