package rest

import (
	"github.com/coffeeconnect/coffeeconnect"
	"github.com/gofiber/fiber/v2"
)

type OnboardingController struct {
	Accessor *coffeeconnect.Onboarding
}

func (c *OnboardingController) InstallTo(app *fiber.App) {
	app.Get("/onboarding", c.serveOnboardingStatus)
}

func (c *OnboardingController) serveOnboardingStatus(ctx *fiber.Ctx) error {
	session, err := requireCurrentUser(ctx)
	if err != nil {
		return err
	}

	type OnboardingResponse struct {
		Complete bool `json:"complete"`
	}
	return ctx.JSON(OnboardingResponse{
		Complete: c.Accessor.Complete(ctx.Context(), session.UserId),
	})
}
