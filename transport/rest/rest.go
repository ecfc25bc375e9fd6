package rest

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

// Error is a client-visible error carrying optional detail deemed safe to
// forward (e.g. the places provider denial message). Everything else goes
// through fiber.Error or stays server-side.
type Error struct {
	Code    int
	Message string
	Details string
}

func (e *Error) Error() string {
	return e.Message
}

func requestLog(ctx *fiber.Ctx) *logrus.Entry {
	return logrus.
		WithField("remote_addr", ctx.Context().RemoteAddr()).
		WithField("path", ctx.Path()).
		WithField("z_referer", string(ctx.Request().Header.Peek("Referer"))).
		WithField("z_user_agent", string(ctx.Request().Header.Peek("User-Agent"))).
		WithField("z_x_forwared_for", string(ctx.Request().Header.Peek("X-Forwarded-For")))
}

func ErrorHandler(ctx *fiber.Ctx, err error) error {
	var detailed *Error
	if errors.As(err, &detailed) {
		return ctx.
			Status(detailed.Code).
			JSON(&ErrorResponse{Error: detailed.Message, Details: detailed.Details})
	}
	if fe, ok := err.(*fiber.Error); ok {
		return ctx.
			Status(fe.Code).
			JSON(&ErrorResponse{Error: fe.Message})
	}
	requestLog(ctx).WithError(err).Errorln("Internal server error.")
	// keep internal server errors private. reply with generic error message.
	return ctx.
		Status(fiber.ErrInternalServerError.Code).
		JSON(&ErrorResponse{Error: fiber.ErrInternalServerError.Message})
}

func NotFoundHandler(c *fiber.Ctx) error {
	return fiber.NewError(fiber.StatusNotFound)
}
