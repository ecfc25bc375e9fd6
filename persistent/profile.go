package persistent

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/coffeeconnect/coffeeconnect"
	"github.com/uptrace/bun"
)

type Profile struct {
	bun.BaseModel `bun:"table:profile"`

	Id        int64  `bun:",pk,autoincrement"`
	UserId    string `bun:",unique,notnull"`
	Name      string `bun:",notnull"`
	AvatarUrl string
}

func (p Profile) ToDomain() coffeeconnect.Profile {
	return coffeeconnect.Profile{
		UserId:    coffeeconnect.UserId(p.UserId),
		Name:      p.Name,
		AvatarUrl: p.AvatarUrl,
	}
}

type ProfileStore struct {
	DB *bun.DB
}

var _ coffeeconnect.ProfileStore = (*ProfileStore)(nil)

func (s *ProfileStore) ByUserId(ctx context.Context, userId coffeeconnect.UserId) (coffeeconnect.Profile, error) {
	profile := new(Profile)
	err := s.DB.NewSelect().
		Model(profile).
		Where(`user_id=?`, string(userId)).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return coffeeconnect.Profile{}, coffeeconnect.ErrProfileNotFound
		}
		return coffeeconnect.Profile{}, fmt.Errorf("select profile: %w", err)
	}
	return profile.ToDomain(), nil
}

func (s *ProfileStore) DeleteByUserId(ctx context.Context, userId coffeeconnect.UserId) error {
	_, err := s.DB.NewDelete().
		Model((*Profile)(nil)).
		Where(`user_id=?`, string(userId)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}
