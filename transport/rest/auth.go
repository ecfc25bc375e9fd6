package rest

import (
	"errors"
	"fmt"

	"github.com/coffeeconnect/coffeeconnect"
	"github.com/coffeeconnect/coffeeconnect/authapi"
	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	UserInfo     authapi.UserInfo
	SessionStore coffeeconnect.SessionStore
}

func (c *AuthController) InstallTo(app *fiber.App) {
	app.Post("/auth/session", c.serveCreateSession)
}

// Exchanges an auth service access token for a backend session token.
// The auth service owns credentials; we only mint our own session once
// the token resolves to an identity.
func (c *AuthController) serveCreateSession(ctx *fiber.Ctx) error {
	if c.UserInfo == nil {
		return &Error{Code: fiber.StatusInternalServerError, Message: "auth backend not configured"}
	}

	body := struct {
		AccessToken string `json:"accessToken"`
	}{}
	if err := ctx.BodyParser(&body); err != nil {
		requestLog(ctx).WithError(err).Infoln("Invalid body.")
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if body.AccessToken == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid access token")
	}

	user, err := c.UserInfo(body.AccessToken)
	if err != nil {
		if errors.Is(err, authapi.ErrUnauthorized) {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid access token")
		}
		return fmt.Errorf("auth user info: %w", err)
	}

	session, err := c.SessionStore.RegisterNew(ctx.Context(), coffeeconnect.UserId(user.Id),
		ctx.IP(), string(ctx.Request().Header.UserAgent()))
	if err != nil {
		return fmt.Errorf("session register new: %w", err)
	}

	requestLog(ctx).
		WithField("user_id", session.UserId).
		Infoln("Session created.")
	return ctx.Status(fiber.StatusCreated).JSON(map[string]interface{}{
		"id":          session.Id,
		"userId":      session.UserId,
		"accessToken": session.Token,
		"expiresAt":   session.ExpiresAt.Unix(),
	})
}
