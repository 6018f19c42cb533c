package board

import "sort"

// Perft counts the leaf nodes of the legal move tree at the given
// depth. It is the standard correctness check for move generation.
func Perft(p *Position, depth int) int64 {
	if depth <= 0 {
		return 1
	}
	moves := p.LegalMoves()
	if depth == 1 {
		return int64(len(moves))
	}
	var nodes int64
	for _, m := range moves {
		u := p.Make(m)
		nodes += Perft(p, depth-1)
		p.Unmake(m, u)
	}
	return nodes
}

// PerftParallel splits the root moves across goroutines, each working
// on an independent copy of the position. Move generation is pure, so
// no synchronization beyond the result channel is needed.
func PerftParallel(p *Position, depth int) int64 {
	if depth <= 1 {
		return Perft(p, depth)
	}
	moves := p.LegalMoves()
	results := make(chan int64, len(moves))
	for _, m := range moves {
		go func(m Move) {
			cp := p.Copy()
			cp.Make(m)
			results <- Perft(cp, depth-1)
		}(m)
	}
	var nodes int64
	for range moves {
		nodes += <-results
	}
	return nodes
}

// DivideEntry is the subtree count for one root move.
type DivideEntry struct {
	Move  Move
	Nodes int64
}

// Divide returns the per-root-move node counts at the given depth,
// sorted by coordinate notation for stable output.
func Divide(p *Position, depth int) []DivideEntry {
	moves := p.LegalMoves()
	entries := make([]DivideEntry, 0, len(moves))
	for _, m := range moves {
		u := p.Make(m)
		entries = append(entries, DivideEntry{Move: m, Nodes: Perft(p, depth-1)})
		p.Unmake(m, u)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Move.String() < entries[j].Move.String()
	})
	return entries
}
