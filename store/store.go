// Package store persists clustering results in an embedded Badger database.
//
// Layout (one byte prefix per key family):
//
//	0x01 runID                 → Meta (JSON)
//	0x02 runID 0x00 label      → cluster name
//
// Assignments are written first through a WriteBatch; the Meta key is
// written last, so a run is listed only once all of its rows are durable.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/katalvlaran/seqclust/report"
)

const (
	prefixRun    = byte(0x01)
	prefixAssign = byte(0x02)
	sep          = byte(0x00)
)

var (
	// ErrRunNotFound is returned when no Meta exists for a run ID.
	ErrRunNotFound = errors.New("store: run not found")

	// ErrClosed is returned by every call after Close.
	ErrClosed = errors.New("store: closed")
)

// Meta describes one stored run.
type Meta struct {
	RunID            uuid.UUID `json:"run_id"`
	CreatedAt        time.Time `json:"created_at"`
	InitialThreshold float64   `json:"initial_threshold"`
	FinalThreshold   float64   `json:"final_threshold"`
	ClusterThreshold float64   `json:"cluster_threshold"`
	Vertices         int       `json:"vertices"`
	Edges            int       `json:"edges"`
	Clusters         int       `json:"clusters"`
	Singletons       int       `json:"singletons"`
}

// Options configures Open.
type Options struct {
	// Dir is the database directory. Ignored when InMemory is set.
	Dir string
	// InMemory keeps everything in RAM; used by tests.
	InMemory bool
	// Logger receives Badger's internal logs; nil silences them.
	Logger badger.Logger
}

// Store wraps a Badger database.
type Store struct {
	db     *badger.DB
	closed bool
}

// Open opens (creating if needed) the database described by opts.
func Open(opts Options) (*Store, error) {
	bo := badger.DefaultOptions(opts.Dir)
	if opts.InMemory {
		bo = bo.WithInMemory(true)
	}
	bo = bo.WithLogger(opts.Logger)

	db, err := badger.Open(bo)
	if err != nil {
		return nil, fmt.Errorf("store: open badger: %w", err)
	}

	return &Store{db: db}, nil
}

// OpenInMemory is Open with InMemory set.
func OpenInMemory() (*Store, error) {
	return Open(Options{InMemory: true})
}

// Close releases the database. Further calls return ErrClosed.
func (s *Store) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	return s.db.Close()
}

func runKey(id uuid.UUID) []byte {
	return append([]byte{prefixRun}, id[:]...)
}

func assignPrefix(id uuid.UUID) []byte {
	k := make([]byte, 0, 2+len(id))
	k = append(k, prefixAssign)
	k = append(k, id[:]...)

	return append(k, sep)
}

func assignKey(id uuid.UUID, label string) []byte {
	return append(assignPrefix(id), label...)
}

// Save stores p under meta.RunID, assigning a new random ID when it is
// uuid.Nil and stamping CreatedAt when zero. It returns the run ID.
func (s *Store) Save(meta Meta, p report.Partition) (uuid.UUID, error) {
	if s.closed {
		return uuid.Nil, ErrClosed
	}
	if meta.RunID == uuid.Nil {
		meta.RunID = uuid.New()
	}
	if meta.CreatedAt.IsZero() {
		meta.CreatedAt = time.Now().UTC()
	}

	wb := s.db.NewWriteBatch()
	defer wb.Cancel()
	for label, name := range p {
		if err := wb.Set(assignKey(meta.RunID, label), []byte(name)); err != nil {
			return uuid.Nil, fmt.Errorf("store: write %q: %w", label, err)
		}
	}
	if err := wb.Flush(); err != nil {
		return uuid.Nil, fmt.Errorf("store: flush assignments: %w", err)
	}

	data, err := json.Marshal(meta)
	if err != nil {
		return uuid.Nil, fmt.Errorf("store: encode meta: %w", err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(runKey(meta.RunID), data)
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("store: write meta: %w", err)
	}

	return meta.RunID, nil
}

// Meta returns the metadata of one run.
func (s *Store) Meta(id uuid.UUID) (Meta, error) {
	if s.closed {
		return Meta{}, ErrClosed
	}
	var m Meta
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(runKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s", ErrRunNotFound, id)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &m)
		})
	})

	return m, err
}

// Load returns the metadata and partition of one run.
func (s *Store) Load(id uuid.UUID) (Meta, report.Partition, error) {
	m, err := s.Meta(id)
	if err != nil {
		return Meta{}, nil, err
	}

	p := make(report.Partition)
	prefix := assignPrefix(id)
	err = s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			label := string(bytes.TrimPrefix(item.Key(), prefix))
			if err := item.Value(func(val []byte) error {
				p[label] = string(val)
				return nil
			}); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return Meta{}, nil, fmt.Errorf("store: read assignments: %w", err)
	}

	return m, p, nil
}

// Runs lists every stored run, oldest first.
func (s *Store) Runs() ([]Meta, error) {
	if s.closed {
		return nil, ErrClosed
	}
	var out []Meta
	prefix := []byte{prefixRun}
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var m Meta
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &m)
			}); err != nil {
				return err
			}
			out = append(out, m)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("store: list runs: %w", err)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].RunID.String() < out[j].RunID.String()
	})

	return out, nil
}

// Delete removes a run and all of its assignments.
func (s *Store) Delete(id uuid.UUID) error {
	if _, err := s.Meta(id); err != nil {
		return err
	}
	if err := s.db.DropPrefix(assignPrefix(id)); err != nil {
		return fmt.Errorf("store: drop assignments: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(runKey(id))
	})
}
