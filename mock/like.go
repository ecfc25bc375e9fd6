package mock

import (
	"context"

	"github.com/coffeeconnect/coffeeconnect"
)

type LikeStore struct {
	ExistsFn func(ctx context.Context, postId string, userId coffeeconnect.UserId) (bool, error)

	CreateFn func(ctx context.Context, like coffeeconnect.Like) error

	DeleteFn func(ctx context.Context, postId string, userId coffeeconnect.UserId) error
}

func (s LikeStore) Exists(ctx context.Context, postId string, userId coffeeconnect.UserId) (bool, error) {
	return s.ExistsFn(ctx, postId, userId)
}

func (s LikeStore) Create(ctx context.Context, like coffeeconnect.Like) error {
	return s.CreateFn(ctx, like)
}

func (s LikeStore) Delete(ctx context.Context, postId string, userId coffeeconnect.UserId) error {
	return s.DeleteFn(ctx, postId, userId)
}
