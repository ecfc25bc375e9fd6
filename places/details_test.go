package places

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/coffeeconnect/coffeeconnect"
	"github.com/stretchr/testify/assert"
)

func TestParseDetailsResponseOk(t *testing.T) {
	assert := assert.New(t)

	body := `{
		"status": "OK",
		"result": {
			"name": "Kawiarnia Relaks",
			"formatted_address": "Pulawska 48, Warszawa",
			"formatted_phone_number": "22 123 45 67",
			"website": "https://kawiarniarelaks.pl",
			"rating": 4.7,
			"user_ratings_total": 381,
			"price_level": 2,
			"geometry": {"location": {"lat": 52.21, "lng": 21.02}},
			"photos": [{"photo_reference": "ref-1"}, {"photo_reference": "ref-2"}],
			"types": ["cafe", "food"]
		}
	}`
	details, err := ParseDetailsResponse([]byte(body))
	if !assert.NoError(err) {
		return
	}
	assert.Equal("Kawiarnia Relaks", details.Name)
	assert.Equal(4.7, details.Rating)
	assert.Equal(381, details.ReviewCount)
	if assert.NotNil(details.PriceLevel) {
		assert.Equal(2, *details.PriceLevel)
	}
	assert.Equal(52.21, details.Geometry.Location.Lat)
}

func TestParseDetailsResponseDenied(t *testing.T) {
	assert := assert.New(t)

	body := `{"status": "REQUEST_DENIED", "error_message": "The provided API key is invalid."}`
	_, err := ParseDetailsResponse([]byte(body))

	var denied *RequestDeniedError
	if assert.ErrorAs(err, &denied) {
		assert.Equal("The provided API key is invalid.", denied.Message)
	}
}

func TestParseDetailsResponseOtherStatus(t *testing.T) {
	assert := assert.New(t)

	_, err := ParseDetailsResponse([]byte(`{"status": "NOT_FOUND"}`))

	var statusErr *StatusError
	if assert.ErrorAs(err, &statusErr) {
		assert.Equal("NOT_FOUND", statusErr.Status)
	}
}

func TestParseDetailsResponseMalformed(t *testing.T) {
	_, err := ParseDetailsResponse([]byte(`{"status": `))
	assert.Error(t, err)

	var denied *RequestDeniedError
	assert.False(t, errors.As(err, &denied))
}

func TestToShopReshape(t *testing.T) {
	assert := assert.New(t)

	priceLevel := 2
	details := Details{
		Name:       "Espresso Bar",
		Address:    "Main St 1",
		PriceLevel: &priceLevel,
		Photos:     []Photo{{Reference: "ref-a"}},
	}
	shop := details.ToShop("place-1")

	assert.Equal("place-1", shop.PlaceId)
	assert.Equal("$$", shop.PriceLevel)
	assert.Equal(0.0, shop.Rating)
	assert.Equal(0, shop.ReviewCount)
	assert.Nil(shop.Phone)
	assert.Nil(shop.Website)
	assert.Equal([]string{"ref-a"}, shop.Photos)
	assert.Equal([]string{}, shop.Types)
	assert.Equal(json.RawMessage("[]"), shop.Reviews)
	assert.Nil(shop.OpeningHours)
}

func TestToShopMissingPriceLevel(t *testing.T) {
	shop := Details{Name: "Drip"}.ToShop("place-2")
	assert.Equal(t, coffeeconnect.PriceLevelNotAvailable, shop.PriceLevel)
}

func TestToShopPassesOpeningHoursThrough(t *testing.T) {
	hours := json.RawMessage(`{"open_now":true,"weekday_text":["Monday: 8AM-6PM"]}`)
	shop := Details{OpeningHours: hours}.ToShop("place-3")
	assert.Equal(t, hours, shop.OpeningHours)
}
