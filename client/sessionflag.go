package client

import (
	"errors"
	"fmt"
)

// SessionFlag is a one-time marker scoped to the backing store lifetime,
// e.g. a "welcome back" notice shown once per browser session.
type SessionFlag struct {
	Store Storage
	Key   string
}

// FirstUse reports true exactly once; every later call on the same store
// returns false.
func (f *SessionFlag) FirstUse() (bool, error) {
	_, err := f.Store.Get(f.Key)
	switch {
	case err == nil:
		return false, nil
	case !errors.Is(err, ErrKeyNotFound):
		return false, fmt.Errorf("read session flag: %w", err)
	}
	if err := f.Store.Set(f.Key, "shown"); err != nil {
		return false, fmt.Errorf("set session flag: %w", err)
	}
	return true, nil
}
