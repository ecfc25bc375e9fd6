package mock

import (
	"context"

	"github.com/coffeeconnect/coffeeconnect"
)

type ProfileStore struct {
	ByUserIdFn func(ctx context.Context, userId coffeeconnect.UserId) (coffeeconnect.Profile, error)

	DeleteByUserIdFn func(ctx context.Context, userId coffeeconnect.UserId) error
}

func (s ProfileStore) ByUserId(ctx context.Context, userId coffeeconnect.UserId) (coffeeconnect.Profile, error) {
	return s.ByUserIdFn(ctx, userId)
}

func (s ProfileStore) DeleteByUserId(ctx context.Context, userId coffeeconnect.UserId) error {
	return s.DeleteByUserIdFn(ctx, userId)
}
