package persistent

import (
	"context"
	"fmt"

	"github.com/coffeeconnect/coffeeconnect"
	"github.com/uptrace/bun"
)

// Unique (post_id, user_id) pair. The rest handler checks existence before
// inserting, but the constraint is what actually guarantees uniqueness when
// two like requests race: the slower insert fails instead of duplicating.
type Like struct {
	bun.BaseModel `bun:"table:post_like"`

	Id     int64  `bun:",pk,autoincrement"`
	PostId string `bun:",notnull,unique:post_user"`
	UserId string `bun:",notnull,unique:post_user"`
}

func (l Like) ToDomain() coffeeconnect.Like {
	return coffeeconnect.Like{
		PostId: l.PostId,
		UserId: coffeeconnect.UserId(l.UserId),
	}
}

type LikeStore struct {
	DB *bun.DB
}

var _ coffeeconnect.LikeStore = (*LikeStore)(nil)

func (s *LikeStore) Exists(ctx context.Context, postId string, userId coffeeconnect.UserId) (bool, error) {
	exists, err := s.DB.NewSelect().
		Model((*Like)(nil)).
		Where(`post_id=?`, postId).
		Where(`user_id=?`, string(userId)).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("like exists: %w", err)
	}
	return exists, nil
}

func (s *LikeStore) Create(ctx context.Context, like coffeeconnect.Like) error {
	model := &Like{
		PostId: like.PostId,
		UserId: string(like.UserId),
	}
	_, err := s.DB.NewInsert().
		Model(model).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("insert like: %w", err)
	}
	return nil
}

func (s *LikeStore) Delete(ctx context.Context, postId string, userId coffeeconnect.UserId) error {
	_, err := s.DB.NewDelete().
		Model((*Like)(nil)).
		Where(`post_id=?`, postId).
		Where(`user_id=?`, string(userId)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete like: %w", err)
	}
	return nil
}
