package rest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/coffeeconnect/coffeeconnect"
	"github.com/gofiber/fiber/v2"
)

const sessionLocalsKey = "session"

// SessionResolver resolves the bearer token once per request and stashes
// the session in ctx locals. It never rejects by itself: handlers decide
// whether a missing identity is a 401 or irrelevant, so validation errors
// keep their contractual ordering.
func SessionResolver(sessionStore coffeeconnect.SessionStore) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		auth := ctx.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(auth, "Bearer ") {
			return ctx.Next()
		}
		token := strings.TrimPrefix(auth, "Bearer ")

		session, err := sessionStore.AcquireAndRefresh(ctx.Context(), token, ctx.IP(),
			string(ctx.Request().Header.UserAgent()))
		if err != nil {
			if errors.Is(err, coffeeconnect.ErrSessionNotFound) {
				return ctx.Next()
			}
			return fmt.Errorf("acquire and refresh session: %w", err)
		}

		requestLog(ctx).
			WithField("user_id", session.UserId).
			Infoln("Authorized access.")

		ctx.Locals(sessionLocalsKey, session)
		return ctx.Next()
	}
}

// currentUser never errors on "no session".
func currentUser(ctx *fiber.Ctx) (coffeeconnect.Session, bool) {
	session, ok := ctx.Locals(sessionLocalsKey).(coffeeconnect.Session)
	return session, ok
}

func requireCurrentUser(ctx *fiber.Ctx) (coffeeconnect.Session, error) {
	session, ok := currentUser(ctx)
	if !ok {
		return coffeeconnect.Session{}, fiber.ErrUnauthorized
	}
	return session, nil
}

type SessionController struct {
	Store coffeeconnect.SessionStore
}

func (c *SessionController) InstallTo(app *fiber.App) {
	app.Post("/auth/logout", c.serveLogout)
}

func (c *SessionController) serveLogout(ctx *fiber.Ctx) error {
	session, err := requireCurrentUser(ctx)
	if err != nil {
		return err
	}
	if err := c.Store.InvalidateByAuthToken(session.Token); err != nil {
		return fmt.Errorf("session invalidate: %w", err)
	}
	return ctx.JSON(SuccessResponse{Success: true})
}
