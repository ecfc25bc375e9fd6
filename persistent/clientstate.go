package persistent

import (
	"errors"
	"fmt"

	"github.com/coffeeconnect/coffeeconnect/client"
	"github.com/tidwall/buntdb"
)

// BuntStorage keeps client state (migration markers, one-time flags) in the
// same buntdb file the session store uses. Keys are namespaced to stay out
// of the session keyspace.
type BuntStorage struct {
	Buntdb *buntdb.DB
}

var _ client.Storage = (*BuntStorage)(nil)

const clientKeyPrefix = "client:"

func (s *BuntStorage) Get(key string) (string, error) {
	var value string
	err := s.Buntdb.View(func(tx *buntdb.Tx) error {
		var err error
		value, err = tx.Get(clientKeyPrefix + key)
		return err
	})
	if err != nil {
		if errors.Is(err, buntdb.ErrNotFound) {
			return "", client.ErrKeyNotFound
		}
		return "", fmt.Errorf("bunt view: %w", err)
	}
	return value, nil
}

func (s *BuntStorage) Set(key string, value string) error {
	err := s.Buntdb.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(clientKeyPrefix+key, value, nil)
		return err
	})
	if err != nil {
		return fmt.Errorf("bunt update: %w", err)
	}
	return nil
}

func (s *BuntStorage) Delete(key string) error {
	err := s.Buntdb.Update(func(tx *buntdb.Tx) error {
		_, err := tx.Delete(clientKeyPrefix + key)
		if errors.Is(err, buntdb.ErrNotFound) {
			return nil
		}
		return err
	})
	if err != nil {
		return fmt.Errorf("bunt update: %w", err)
	}
	return nil
}
