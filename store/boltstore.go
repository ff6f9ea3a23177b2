package store

import (
	"fmt"

	bolt "go.etcd.io/bbolt"
)

var storageBucket = []byte("storage")

// BoltStore persists store state in a bbolt file, the local-storage
// equivalent for a client running outside a browser.
type BoltStore struct {
	db *bolt.DB
}

// OpenBoltStore opens (or creates) the backing file.
func OpenBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open store file: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(storageBucket)
		return err
	}); err != nil {
		db.Close()
		return nil, err
	}
	return &BoltStore{db: db}, nil
}

// Close releases the backing file.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

// Load returns the blob saved under name, or ErrNotFound.
func (s *BoltStore) Load(name string) ([]byte, error) {
	var out []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(storageBucket).Get([]byte(name))
		if v == nil {
			return ErrNotFound
		}
		out = make([]byte, len(v))
		copy(out, v)
		return nil
	})
	return out, err
}

// Save writes the blob under name.
func (s *BoltStore) Save(name string, data []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(storageBucket).Put([]byte(name), data)
	})
}

// Delete removes the blob saved under name.
func (s *BoltStore) Delete(name string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(storageBucket).Delete([]byte(name))
	})
}
