package rest

import (
	"errors"
	"fmt"

	"github.com/coffeeconnect/coffeeconnect"
	"github.com/coffeeconnect/coffeeconnect/places"
	"github.com/gofiber/fiber/v2"
)

// PlaceController proxies the external places provider. The endpoint is
// unauthenticated: the data is public, the gate is the server-held key.
type PlaceController struct {
	ApiKey       string
	FetchDetails places.DetailsProvider
}

func (c *PlaceController) InstallTo(app *fiber.App) {
	app.Get("/places/:place_id", c.servePlaceDetails)
}

func (c *PlaceController) servePlaceDetails(ctx *fiber.Ctx) error {
	if c.ApiKey == "" {
		return &Error{Code: fiber.StatusInternalServerError, Message: "places api key not configured"}
	}
	placeId := ctx.Params("place_id")

	details, err := c.FetchDetails(placeId)
	if err != nil {
		var denied *places.RequestDeniedError
		if errors.As(err, &denied) {
			// the provider denial message is the one upstream detail
			// safe to forward
			return &Error{
				Code:    fiber.StatusForbidden,
				Message: "place lookup denied",
				Details: denied.Message,
			}
		}
		var status *places.StatusError
		if errors.As(err, &status) {
			return &Error{
				Code:    fiber.StatusInternalServerError,
				Message: "place lookup failed",
				Details: status.Status,
			}
		}
		return fmt.Errorf("fetch place details: %w", err)
	}

	type ShopResponse struct {
		Shop coffeeconnect.Shop `json:"shop"`
	}
	return ctx.JSON(ShopResponse{Shop: details.ToShop(placeId)})
}
