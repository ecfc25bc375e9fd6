package persistent

import (
	"testing"

	"github.com/coffeeconnect/coffeeconnect/client"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/buntdb"
)

func TestBuntStorage(t *testing.T) {
	assert := assert.New(t)

	bdb, err := buntdb.Open(":memory:")
	if err != nil {
		panic(err)
	}
	defer bdb.Close()

	storage := &BuntStorage{Buntdb: bdb}

	_, err = storage.Get("missing")
	assert.ErrorIs(err, client.ErrKeyNotFound)

	assert.NoError(storage.Set("coffeeconnect_localstorage_cleared", "true"))
	value, err := storage.Get("coffeeconnect_localstorage_cleared")
	if assert.NoError(err) {
		assert.Equal("true", value)
	}

	assert.NoError(storage.Delete("coffeeconnect_localstorage_cleared"))
	_, err = storage.Get("coffeeconnect_localstorage_cleared")
	assert.ErrorIs(err, client.ErrKeyNotFound)

	// deleting an absent key is a no-op
	assert.NoError(storage.Delete("coffeeconnect_localstorage_cleared"))
}

func TestBuntStorageStaysOutOfSessionKeyspace(t *testing.T) {
	assert := assert.New(t)

	bdb, err := buntdb.Open(":memory:")
	if err != nil {
		panic(err)
	}
	defer bdb.Close()

	storage := &BuntStorage{Buntdb: bdb}
	assert.NoError(storage.Set("visits", "legacy"))

	err = bdb.View(func(tx *buntdb.Tx) error {
		_, err := tx.Get("client:visits")
		return err
	})
	assert.NoError(err)
}
