package rest

import (
	"errors"
	"fmt"

	"github.com/coffeeconnect/coffeeconnect"
	"github.com/gofiber/fiber/v2"
)

type ProfileController struct {
	Store coffeeconnect.ProfileStore
}

func (c *ProfileController) InstallTo(app *fiber.App) {
	app.Get("/profile/:user_id", c.serveProfile)
}

func (c *ProfileController) serveProfile(ctx *fiber.Ctx) error {
	userId := ctx.Params("user_id")
	if userId == "" {
		return fiber.NewError(fiber.StatusBadRequest, "no user id")
	}

	profile, err := c.Store.ByUserId(ctx.Context(), coffeeconnect.UserId(userId))
	if err != nil {
		if errors.Is(err, coffeeconnect.ErrProfileNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "profile not found")
		}
		return fmt.Errorf("get profile by user id: %w", err)
	}

	type ProfileResponse struct {
		Name      string `json:"name"`
		AvatarUrl string `json:"avatarUrl"`
	}
	return ctx.JSON(ProfileResponse{
		Name:      profile.Name,
		AvatarUrl: profile.AvatarUrl,
	})
}
