package coffeeconnect

import (
	"context"
	"errors"
)

var ErrProfileNotFound = errors.New("profile not found")

// UserId is the opaque identifier issued by the external auth service.
type UserId string

type User struct {
	Id    UserId
	Email string
}

type Profile struct {
	UserId    UserId
	Name      string
	AvatarUrl string
}

type ProfileStore interface {
	ByUserId(ctx context.Context, userId UserId) (Profile, error)

	// Removing an absent profile is not an error.
	DeleteByUserId(ctx context.Context, userId UserId) error
}

// UserDeleter removes the authentication identity itself. Backed by the
// external auth service admin api.
type UserDeleter func(ctx context.Context, userId UserId) error
