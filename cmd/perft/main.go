// Command perft counts leaf nodes of the legal move tree to a fixed
// depth, the standard correctness check for move generation.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/blueuwu/infinitechess/internal/board"
)

var (
	fen      = flag.String("fen", board.StartFEN, "position to search from")
	depth    = flag.Int("depth", 5, "search depth in plies")
	divide   = flag.Bool("divide", false, "print per-root-move subtree counts")
	parallel = flag.Bool("parallel", false, "split the root moves across goroutines")
)

func main() {
	flag.Parse()

	p, err := board.ParseFEN(*fen)
	if err != nil {
		log.Fatalf("parse fen: %v", err)
	}

	start := time.Now()

	if *divide {
		var total int64
		for _, e := range board.Divide(p, *depth) {
			fmt.Printf("%s: %d\n", e.Move, e.Nodes)
			total += e.Nodes
		}
		report(total, time.Since(start))
		return
	}

	var nodes int64
	if *parallel {
		nodes = board.PerftParallel(p, *depth)
	} else {
		nodes = board.Perft(p, *depth)
	}
	report(nodes, time.Since(start))
}

func report(nodes int64, elapsed time.Duration) {
	nps := float64(nodes) / elapsed.Seconds()
	fmt.Printf("nodes %d, time %v, %.0f nodes/s\n", nodes, elapsed.Round(time.Millisecond), nps)
}
