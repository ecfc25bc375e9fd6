package coffeeconnect

import (
	"context"
	"errors"
)

var ErrPreferenceNotFound = errors.New("drink preference not found")

// DrinkPreference holds the onboarding choices of a single user.
// Zero or one row per user.
type DrinkPreference struct {
	UserId      UserId
	Drink       string
	Milk        string
	Temperature string
}

type PreferenceStore interface {
	ByUserId(ctx context.Context, userId UserId) (DrinkPreference, error)
}
