// Command selfplay plays games of uniformly random legal moves and
// prints (and optionally archives) the transcripts and results.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/blueuwu/infinitechess/internal/archive"
	"github.com/blueuwu/infinitechess/internal/board"
	"github.com/blueuwu/infinitechess/internal/game"
	"github.com/blueuwu/infinitechess/internal/pgn"
)

var (
	games      = flag.Int("games", 1, "number of games to play")
	seed       = flag.Int64("seed", 0, "random seed (0 uses the current time)")
	archiveDir = flag.String("archive", "", "archive finished games to a database at this directory")
	show       = flag.Bool("show", false, "print the final board of each game")
	maxPlies   = flag.Int("max-plies", 512, "abandon a game as drawn after this many plies")
)

func main() {
	flag.Parse()

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(s))
	log.Printf("playing %d game(s), seed %d", *games, s)

	var store *archive.Store
	if *archiveDir != "" {
		var err error
		store, err = archive.Open(*archiveDir)
		if err != nil {
			log.Fatalf("open archive: %v", err)
		}
		defer store.Close()
	}

	tally := map[string]int{}
	for i := 1; i <= *games; i++ {
		if err := playGame(i, rng, store, tally); err != nil {
			log.Fatalf("game %d: %v", i, err)
		}
	}

	log.Printf("done: 1-0 x%d, 0-1 x%d, 1/2-1/2 x%d, unfinished x%d",
		tally["1-0"], tally["0-1"], tally["1/2-1/2"], tally["*"])

	if store != nil {
		stats, err := store.Stats()
		if err != nil {
			log.Fatalf("load stats: %v", err)
		}
		log.Printf("archive totals: %d games, %d white wins, %d black wins, %d draws (%.0f%% drawn)",
			stats.Games, stats.WhiteWins, stats.BlackWins, stats.Draws, stats.DrawRate()*100)
	}
}

func playGame(round int, rng *rand.Rand, store *archive.Store, tally map[string]int) error {
	c := game.New()

	for c.Status() == game.Ongoing && c.Ply() < *maxPlies {
		moves := c.LegalMoves()
		m := moves[rng.Intn(len(moves))]
		if err := c.Apply(m); err != nil {
			return err
		}
	}

	result := c.Result()
	tally[result]++
	log.Printf("game %d: %s after %d plies (%s)", round, result, c.Ply(), c.Status())

	if *show {
		fmt.Println(c.Position())
	}

	text, err := pgn.Game(pgn.DefaultTags(round, result, time.Now()), board.NewPosition(), c.History())
	if err != nil {
		return err
	}
	fmt.Println(text)

	if store != nil {
		id, err := store.SaveGame(archive.Record{
			PlayedAt:    time.Now(),
			Result:      result,
			Termination: c.Status().String(),
			Plies:       c.Ply(),
			PGN:         text,
		})
		if err != nil {
			return err
		}
		log.Printf("game %d archived as #%d", round, id)
	}
	return nil
}
