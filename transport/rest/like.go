package rest

import (
	"fmt"

	"github.com/coffeeconnect/coffeeconnect"
	"github.com/gofiber/fiber/v2"
)

// Like and unlike are deliberately asymmetric: a second like is rejected,
// a second unlike silently succeeds. Clients rely on both behaviors.
type LikeController struct {
	Likes coffeeconnect.LikeStore
}

func (c *LikeController) InstallTo(app *fiber.App) {
	app.Post("/likes", c.serveLike)
	app.Delete("/likes", c.serveUnlike)
}

func (c *LikeController) serveLike(ctx *fiber.Ctx) error {
	session, err := requireCurrentUser(ctx)
	if err != nil {
		return err
	}

	body := struct {
		PostId string `json:"postId"`
	}{}
	if err := ctx.BodyParser(&body); err != nil {
		requestLog(ctx).WithError(err).Infoln("Invalid body.")
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if body.PostId == "" {
		return fiber.NewError(fiber.StatusBadRequest, "no post id")
	}

	liked, err := c.Likes.Exists(ctx.Context(), body.PostId, session.UserId)
	if err != nil {
		return fmt.Errorf("like exists: %w", err)
	}
	if liked {
		return fiber.NewError(fiber.StatusBadRequest, "post already liked")
	}

	like := coffeeconnect.Like{PostId: body.PostId, UserId: session.UserId}
	if err := c.Likes.Create(ctx.Context(), like); err != nil {
		return fmt.Errorf("create like: %w", err)
	}
	return ctx.JSON(SuccessResponse{Success: true})
}

func (c *LikeController) serveUnlike(ctx *fiber.Ctx) error {
	session, err := requireCurrentUser(ctx)
	if err != nil {
		return err
	}

	postId := ctx.Query("postId")
	if postId == "" {
		return fiber.NewError(fiber.StatusBadRequest, "no post id")
	}

	if err := c.Likes.Delete(ctx.Context(), postId, session.UserId); err != nil {
		return fmt.Errorf("delete like: %w", err)
	}
	return ctx.JSON(SuccessResponse{Success: true})
}
