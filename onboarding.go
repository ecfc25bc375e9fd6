package coffeeconnect

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sirupsen/logrus"
)

// Onboarding answers soft ui-gating questions about an account. Unlike the
// mutation handlers it never propagates storage failures: a lookup that
// errors out is logged and reported as "absent".
type Onboarding struct {
	Profiles    ProfileStore
	Preferences PreferenceStore
}

func (o *Onboarding) ProfileById(ctx context.Context, userId UserId) (Profile, bool) {
	profile, err := o.Profiles.ByUserId(ctx, userId)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) && !errors.Is(err, ErrProfileNotFound) {
			logrus.WithError(err).WithField("user_id", userId).
				Warningln("Profile lookup failed, treating as missing.")
		}
		return Profile{}, false
	}
	return profile, true
}

// Complete reports whether the user finished onboarding: a profile row and
// a drink preference row must both exist. Absence of either is false,
// never an error.
func (o *Onboarding) Complete(ctx context.Context, userId UserId) bool {
	if _, ok := o.ProfileById(ctx, userId); !ok {
		return false
	}
	_, err := o.Preferences.ByUserId(ctx, userId)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) && !errors.Is(err, ErrPreferenceNotFound) {
			logrus.WithError(err).WithField("user_id", userId).
				Warningln("Drink preference lookup failed, treating as missing.")
		}
		return false
	}
	return true
}
