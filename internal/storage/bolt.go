package storage

import (
	"context"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var boltBucket = []byte("ramenku")

// BoltStore persists documents in a single-file bbolt database. This is the
// default backend: a local, single-writer store that plays the role the
// original storefront gave to browser local storage.
type BoltStore struct {
	db *bolt.DB
}

func NewBolt(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("storage: failed to open bolt file %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(boltBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("storage: failed to create bolt bucket: %w", err)
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Get(_ context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		// Bucket values are only valid inside the transaction, so copy out.
		if stored := tx.Bucket(boltBucket).Get([]byte(key)); stored != nil {
			value = cloneBytes(stored)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("storage: failed to read key %s: %w", key, err)
	}
	if value == nil {
		return nil, ErrKeyNotFound
	}
	return value, nil
}

func (s *BoltStore) Put(_ context.Context, key string, value []byte) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(boltBucket).Put([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("storage: failed to write key %s: %w", key, err)
	}
	return nil
}

func (s *BoltStore) Delete(_ context.Context, key string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(boltBucket).Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("storage: failed to delete key %s: %w", key, err)
	}
	return nil
}

func (s *BoltStore) Update(_ context.Context, key string, fn UpdateFunc) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(boltBucket)

		var old []byte
		if stored := bucket.Get([]byte(key)); stored != nil {
			old = cloneBytes(stored)
		}

		next, err := fn(old)
		if err != nil {
			return err
		}

		if next == nil {
			return bucket.Delete([]byte(key))
		}
		return bucket.Put([]byte(key), next)
	})
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
