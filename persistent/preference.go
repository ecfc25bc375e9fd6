package persistent

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/coffeeconnect/coffeeconnect"
	"github.com/uptrace/bun"
)

type DrinkPreference struct {
	bun.BaseModel `bun:"table:drink_preference"`

	Id          int64  `bun:",pk,autoincrement"`
	UserId      string `bun:",unique,notnull"`
	Drink       string `bun:",notnull"`
	Milk        string
	Temperature string
}

func (p DrinkPreference) ToDomain() coffeeconnect.DrinkPreference {
	return coffeeconnect.DrinkPreference{
		UserId:      coffeeconnect.UserId(p.UserId),
		Drink:       p.Drink,
		Milk:        p.Milk,
		Temperature: p.Temperature,
	}
}

type PreferenceStore struct {
	DB *bun.DB
}

var _ coffeeconnect.PreferenceStore = (*PreferenceStore)(nil)

func (s *PreferenceStore) ByUserId(ctx context.Context, userId coffeeconnect.UserId) (coffeeconnect.DrinkPreference, error) {
	preference := new(DrinkPreference)
	err := s.DB.NewSelect().
		Model(preference).
		Where(`user_id=?`, string(userId)).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return coffeeconnect.DrinkPreference{}, coffeeconnect.ErrPreferenceNotFound
		}
		return coffeeconnect.DrinkPreference{}, fmt.Errorf("select drink preference: %w", err)
	}
	return preference.ToDomain(), nil
}
