package mock

import (
	"context"

	"github.com/coffeeconnect/coffeeconnect"
)

type PreferenceStore struct {
	ByUserIdFn func(ctx context.Context, userId coffeeconnect.UserId) (coffeeconnect.DrinkPreference, error)
}

func (s PreferenceStore) ByUserId(ctx context.Context, userId coffeeconnect.UserId) (coffeeconnect.DrinkPreference, error) {
	return s.ByUserIdFn(ctx, userId)
}
