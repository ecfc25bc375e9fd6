package coffeeconnect

import (
	"context"
	"errors"
)

var ErrAlreadyLiked = errors.New("post already liked")

// Like pairs a post with the user who liked it. At most one like
// per (post, user) pair.
type Like struct {
	PostId string
	UserId UserId
}

type LikeStore interface {
	Exists(ctx context.Context, postId string, userId UserId) (bool, error)

	Create(ctx context.Context, like Like) error

	// Removing an absent like is a no-op, not an error.
	Delete(ctx context.Context, postId string, userId UserId) error
}
