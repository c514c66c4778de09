// Package storage keeps a history of benchmark runs in a local BadgerDB,
// so regressions between engine revisions stay visible.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const runKeyPrefix = "run:"

// Run is one completed benchmark over a test suite.
type Run struct {
	Timestamp time.Time `json:"timestamp"`
	Suite     string    `json:"suite"`
	Eval      string    `json:"eval"`
	MoveTime  int       `json:"move_time_ms"`
	Total     int       `json:"total"`
	Solved    int       `json:"solved"`
	Nodes     int64     `json:"nodes"`
	Duration  int64     `json:"duration_ms"`
}

type Storage struct {
	db *badger.DB
}

func Open(path string) (*Storage, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Storage{db: db}, nil
}

func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun appends a run; keys sort by timestamp so iteration is chronological.
func (s *Storage) SaveRun(run Run) error {
	data, err := json.Marshal(run)
	if err != nil {
		return err
	}
	var key = fmt.Sprintf("%s%s", runKeyPrefix, run.Timestamp.UTC().Format(time.RFC3339Nano))
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

func (s *Storage) Runs() ([]Run, error) {
	var result []Run
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(runKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var run Run
				if err := json.Unmarshal(val, &run); err != nil {
					return err
				}
				result = append(result, run)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return result, err
}
