package inmem

import (
	"sync"

	"github.com/coffeeconnect/coffeeconnect/client"
)

type Storage struct {
	values map[string]string
	mutex  sync.RWMutex
}

func NewStorage() *Storage {
	return &Storage{values: map[string]string{}}
}

var _ client.Storage = (*Storage)(nil)

func (s *Storage) Get(key string) (string, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return "", client.ErrKeyNotFound
	}
	return value, nil
}

func (s *Storage) Set(key string, value string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.values[key] = value
	return nil
}

func (s *Storage) Delete(key string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.values, key)
	return nil
}

// Has is a test convenience, not part of client.Storage.
func (s *Storage) Has(key string) bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	_, ok := s.values[key]
	return ok
}
