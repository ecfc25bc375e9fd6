package rest

import (
	"fmt"

	"github.com/coffeeconnect/coffeeconnect"
	"github.com/gofiber/fiber/v2"
)

type AccountController struct {
	Profiles       coffeeconnect.ProfileStore
	DeleteAuthUser coffeeconnect.UserDeleter
}

func (c *AccountController) InstallTo(app *fiber.App) {
	app.Post("/delete-account", c.serveDeleteAccount)
}

// Deletion order is load bearing: profile row first, auth identity second.
// A profile delete failure must leave the auth identity untouched. The
// reverse gap (profile gone, identity alive) is accepted; reissuing the
// request converges because the profile delete is idempotent.
func (c *AccountController) serveDeleteAccount(ctx *fiber.Ctx) error {
	if c.Profiles == nil || c.DeleteAuthUser == nil {
		return &Error{Code: fiber.StatusInternalServerError, Message: "account backend not configured"}
	}

	body := struct {
		UserId string `json:"userId"`
	}{}
	if err := ctx.BodyParser(&body); err != nil {
		requestLog(ctx).WithError(err).Infoln("Invalid body.")
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if body.UserId == "" {
		return fiber.NewError(fiber.StatusBadRequest, "no user id")
	}

	session, err := requireCurrentUser(ctx)
	if err != nil {
		return err
	}
	// self-service only, there is no admin override on this surface
	if session.UserId != coffeeconnect.UserId(body.UserId) {
		return fiber.NewError(fiber.StatusForbidden, "cannot delete another account")
	}

	if err := c.Profiles.DeleteByUserId(ctx.Context(), session.UserId); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	if err := c.DeleteAuthUser(ctx.Context(), session.UserId); err != nil {
		return fmt.Errorf("delete auth identity: %w", err)
	}

	requestLog(ctx).
		WithField("user_id", session.UserId).
		Infoln("Account deleted.")
	return ctx.JSON(SuccessResponse{Success: true})
}
