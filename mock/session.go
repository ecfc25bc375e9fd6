package mock

import (
	"context"

	"github.com/coffeeconnect/coffeeconnect"
)

type SessionStore struct {
	RegisterNewFn func(ctx context.Context, userId coffeeconnect.UserId, ip string, userAgent string) (coffeeconnect.Session, error)

	AcquireAndRefreshFn func(ctx context.Context, token string, ip string, userAgent string) (coffeeconnect.Session, error)

	InvalidateByAuthTokenFn func(authToken string) error
}

func (s SessionStore) RegisterNew(ctx context.Context, userId coffeeconnect.UserId, ip string, userAgent string) (coffeeconnect.Session, error) {
	return s.RegisterNewFn(ctx, userId, ip, userAgent)
}

func (s SessionStore) AcquireAndRefresh(ctx context.Context, token string, ip string, userAgent string) (coffeeconnect.Session, error) {
	return s.AcquireAndRefreshFn(ctx, token, ip, userAgent)
}

func (s SessionStore) InvalidateByAuthToken(authToken string) error {
	return s.InvalidateByAuthTokenFn(authToken)
}
