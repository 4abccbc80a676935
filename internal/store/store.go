package store

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"go.etcd.io/bbolt"
)

var bucketOutputs = []byte("outputs")

// Store remembers the content hash of every generated file so unchanged
// output can be skipped. It is safe for concurrent use.
type Store struct {
	db *bbolt.DB
}

// Open opens or creates the cache database at path.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketOutputs); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", bucketOutputs, err)
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Unchanged reports whether content matches what was last recorded for path.
func (s *Store) Unchanged(path string, content []byte) (bool, error) {
	sum := hash(content)
	unchanged := false
	err := s.db.View(func(tx *bbolt.Tx) error {
		unchanged = string(tx.Bucket(bucketOutputs).Get([]byte(path))) == sum
		return nil
	})
	return unchanged, err
}

// Record stores the hash of content for path.
func (s *Store) Record(path string, content []byte) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketOutputs).Put([]byte(path), []byte(hash(content)))
	})
}

// Forget drops the entry for path.
func (s *Store) Forget(path string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketOutputs).Delete([]byte(path))
	})
}

// Paths lists every recorded path in key order.
func (s *Store) Paths() ([]string, error) {
	var paths []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketOutputs).ForEach(func(k, _ []byte) error {
			paths = append(paths, string(k))
			return nil
		})
	})
	return paths, err
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func hash(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}
