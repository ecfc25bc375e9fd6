package inmem

import (
	"testing"

	"github.com/coffeeconnect/coffeeconnect/client"
	"github.com/stretchr/testify/assert"
)

func TestStorage(t *testing.T) {
	assert := assert.New(t)

	s := NewStorage()

	_, err := s.Get("missing")
	assert.ErrorIs(err, client.ErrKeyNotFound)

	assert.NoError(s.Set("drink", "espresso"))
	value, err := s.Get("drink")
	if assert.NoError(err) {
		assert.Equal("espresso", value)
	}

	assert.NoError(s.Delete("drink"))
	assert.False(s.Has("drink"))

	// deleting an absent key is a no-op
	assert.NoError(s.Delete("drink"))
}
