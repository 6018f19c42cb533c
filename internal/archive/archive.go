// Package archive persists finished game records and aggregate
// self-play statistics in a BadgerDB key-value store.
package archive

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"
)

// Storage keys
const (
	keyStats      = "stats"
	keyGamePrefix = "game:"
	keyNextID     = "next_id"
)

// Record is one completed game.
type Record struct {
	ID          uint64    `json:"id"`
	PlayedAt    time.Time `json:"played_at"`
	Result      string    `json:"result"`
	Termination string    `json:"termination"`
	Plies       int       `json:"plies"`
	PGN         string    `json:"pgn"`
}

// Stats aggregates results across all archived games.
type Stats struct {
	Games      int `json:"games"`
	WhiteWins  int `json:"white_wins"`
	BlackWins  int `json:"black_wins"`
	Draws      int `json:"draws"`
	TotalPlies int `json:"total_plies"`
}

// DrawRate returns the fraction of archived games that were drawn (0-1).
func (s *Stats) DrawRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Draws) / float64(s.Games)
}

// Store wraps BadgerDB for persistent game archival.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) an archive at dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "open archive at %s", dir)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func gameKey(id uint64) []byte {
	return []byte(fmt.Sprintf("%s%020d", keyGamePrefix, id))
}

// SaveGame archives a finished game and folds it into the aggregate
// statistics in a single transaction. It returns the assigned id.
func (s *Store) SaveGame(rec Record) (uint64, error) {
	var id uint64

	err := s.db.Update(func(txn *badger.Txn) error {
		id = 1
		item, err := txn.Get([]byte(keyNextID))
		if err == nil {
			err = item.Value(func(val []byte) error {
				return json.Unmarshal(val, &id)
			})
		}
		if err != nil && err != badger.ErrKeyNotFound {
			return err
		}

		rec.ID = id
		data, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		if err := txn.Set(gameKey(id), data); err != nil {
			return err
		}

		next, err := json.Marshal(id + 1)
		if err != nil {
			return err
		}
		if err := txn.Set([]byte(keyNextID), next); err != nil {
			return err
		}

		stats, err := loadStats(txn)
		if err != nil {
			return err
		}
		stats.Games++
		stats.TotalPlies += rec.Plies
		switch rec.Result {
		case "1-0":
			stats.WhiteWins++
		case "0-1":
			stats.BlackWins++
		default:
			stats.Draws++
		}
		data, err = json.Marshal(stats)
		if err != nil {
			return err
		}
		return txn.Set([]byte(keyStats), data)
	})
	if err != nil {
		return 0, errors.Wrap(err, "save game")
	}
	return id, nil
}

// Game loads one archived game by id.
func (s *Store) Game(id uint64) (*Record, error) {
	rec := &Record{}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gameKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, rec)
		})
	})
	if err != nil {
		return nil, errors.Wrapf(err, "load game %d", id)
	}
	return rec, nil
}

// Games returns every archived game in id order.
func (s *Store) Games() ([]Record, error) {
	var recs []Record

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(keyGamePrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var rec Record
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			})
			if err != nil {
				return err
			}
			recs = append(recs, rec)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "list games")
	}
	return recs, nil
}

// Stats loads the aggregate statistics, empty if nothing is archived.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.View(func(txn *badger.Txn) error {
		loaded, err := loadStats(txn)
		if err != nil {
			return err
		}
		*stats = *loaded
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "load stats")
	}
	return stats, nil
}

func loadStats(txn *badger.Txn) (*Stats, error) {
	stats := &Stats{}

	item, err := txn.Get([]byte(keyStats))
	if err == badger.ErrKeyNotFound {
		return stats, nil
	}
	if err != nil {
		return nil, err
	}

	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, stats)
	})
	return stats, err
}
