package state

import (
	"context"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketName = []byte("client_state")

// BoltStore хранилище в файле bbolt
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore открывает (или создаёт) файл состояния
func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrExecQuery, path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: create bucket: %v", ErrExecQuery, err)
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Get(_ context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	var value []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketName).Get([]byte(key))
		if v == nil {
			return ErrNotFound
		}
		// значение валидно только внутри транзакции
		value = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return "", err
	}

	return string(value), nil
}

func (s *BoltStore) Set(_ context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("%w: Set - %v", ErrExecQuery, err)
	}
	return nil
}

func (s *BoltStore) Delete(_ context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("%w: Delete - %v", ErrExecQuery, err)
	}
	return nil
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
