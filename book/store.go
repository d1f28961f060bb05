package book

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	badger "github.com/dgraph-io/badger/v4"
)

// ErrNotFound is returned when a store has no book under a key.
var ErrNotFound = errors.New("book: not found")

// Store caches parsed books in a badger database so a PGN source is
// parsed once and reloaded instantly afterwards.
type Store struct {
	db *badger.DB
}

func OpenStore(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("book: open store: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Save serializes the book under the key.
func (s *Store) Save(key string, bk *Book) error {
	data, err := json.Marshal(bk)
	if err != nil {
		return fmt.Errorf("book: encode %q: %w", key, err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
	if err != nil {
		return fmt.Errorf("book: save %q: %w", key, err)
	}
	return nil
}

// Load fetches a cached book, ErrNotFound when the key was never saved.
func (s *Store) Load(key string) (*Book, error) {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("book: load %q: %w", key, err)
	}
	bk := &Book{}
	if err := json.Unmarshal(data, bk); err != nil {
		return nil, fmt.Errorf("book: decode %q: %w", key, err)
	}
	return bk, nil
}

// LoadOrParse returns the cached book for the key, parsing and caching
// the PGN source on a miss.
func (s *Store) LoadOrParse(key string, open func() (io.ReadCloser, error)) (*Book, error) {
	bk, err := s.Load(key)
	if err == nil {
		return bk, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	r, err := open()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	bk, err = LoadPGN(r)
	if err != nil {
		return nil, err
	}
	if err := s.Save(key, bk); err != nil {
		return nil, err
	}
	return bk, nil
}
