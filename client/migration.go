package client

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// ClearedMarkerKey records that the legacy key cleanup already ran.
const ClearedMarkerKey = "coffeeconnect_localstorage_cleared"

// Keys written by older releases, no longer read by anything.
var legacyKeys = []string{
	"visits",
	"favorites",
	"coffeeShops",
	"userPreferences",
	"coffeeConnectState",
}

// Migration removes legacy locally-cached keys exactly once. The marker is
// read before any mutation, so a second run never touches the store.
type Migration struct {
	Store Storage
}

// Run reports whether the cleanup actually happened on this call.
func (m *Migration) Run() (bool, error) {
	_, err := m.Store.Get(ClearedMarkerKey)
	switch {
	case err == nil:
		return false, nil
	case !errors.Is(err, ErrKeyNotFound):
		return false, fmt.Errorf("read cleared marker: %w", err)
	}

	for _, key := range legacyKeys {
		if err := m.Store.Delete(key); err != nil {
			return false, fmt.Errorf("delete legacy key %q: %w", key, err)
		}
	}
	if err := m.Store.Set(ClearedMarkerKey, "true"); err != nil {
		return false, fmt.Errorf("set cleared marker: %w", err)
	}
	logrus.WithField("keys", len(legacyKeys)).Debugln("Cleared legacy storage keys.")
	return true, nil
}
