package places

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/coffeeconnect/coffeeconnect"
	"github.com/gofiber/fiber/v2"
)

const detailsUrl = "https://maps.googleapis.com/maps/api/place/details/json"

// Field set requested from the provider. Fixed; the reshape below depends
// on exactly these fields.
const detailsFields = "name,formatted_address,formatted_phone_number,website," +
	"opening_hours,photos,reviews,rating,user_ratings_total,price_level,geometry,types"

// RequestDeniedError carries the provider's own denial message. It is the
// only upstream failure whose detail is safe to forward to clients.
type RequestDeniedError struct {
	Message string
}

func (e *RequestDeniedError) Error() string {
	return "places: request denied: " + e.Message
}

// StatusError is any non-ok, non-denied provider status.
type StatusError struct {
	Status string
}

func (e *StatusError) Error() string {
	return "places: status " + e.Status
}

type Details struct {
	Name         string          `json:"name"`
	Address      string          `json:"formatted_address"`
	Phone        string          `json:"formatted_phone_number"`
	Website      string          `json:"website"`
	OpeningHours json.RawMessage `json:"opening_hours"`
	Photos       []Photo         `json:"photos"`
	Reviews      json.RawMessage `json:"reviews"`
	Rating       float64         `json:"rating"`
	ReviewCount  int             `json:"user_ratings_total"`
	PriceLevel   *int            `json:"price_level"`
	Geometry     Geometry        `json:"geometry"`
	Types        []string        `json:"types"`
}

type Photo struct {
	Reference string `json:"photo_reference"`
}

type Geometry struct {
	Location coffeeconnect.Location `json:"location"`
}

// ToShop reshapes the provider payload into the shop view model. Missing
// phone/website become null, photos collapse to their references, rating
// and review count default to zero, types/reviews to empty arrays.
func (d Details) ToShop(placeId string) coffeeconnect.Shop {
	photos := make([]string, len(d.Photos))
	for i, photo := range d.Photos {
		photos[i] = photo.Reference
	}
	types := d.Types
	if types == nil {
		types = []string{}
	}
	reviews := d.Reviews
	if reviews == nil {
		reviews = json.RawMessage("[]")
	}
	return coffeeconnect.Shop{
		PlaceId:      placeId,
		Name:         d.Name,
		Address:      d.Address,
		Phone:        nullableString(d.Phone),
		Website:      nullableString(d.Website),
		Location:     d.Geometry.Location,
		Rating:       d.Rating,
		ReviewCount:  d.ReviewCount,
		PriceLevel:   coffeeconnect.FormatPriceLevel(d.PriceLevel),
		Photos:       photos,
		Types:        types,
		OpeningHours: d.OpeningHours,
		Reviews:      reviews,
	}
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

type DetailsProvider = func(placeId string) (Details, error)

// Impl of the places details rest api.
func RestDetailsProvider(apiKey string) DetailsProvider {
	return func(placeId string) (Details, error) {
		agent := fiber.AcquireAgent()
		defer fiber.ReleaseAgent(agent)

		req := agent.Request()
		req.Header.SetMethod(fiber.MethodGet)
		req.SetRequestURI(detailsUrl +
			"?place_id=" + url.QueryEscape(placeId) +
			"&fields=" + url.QueryEscape(detailsFields) +
			"&key=" + url.QueryEscape(apiKey))

		if err := agent.Parse(); err != nil {
			return Details{}, fmt.Errorf("agent parse: %w", err)
		}

		statusCode, body, errArr := agent.Bytes()
		if len(errArr) != 0 {
			return Details{}, fmt.Errorf("agent bytes: %v", errArr)
		}
		if statusCode != fiber.StatusOK {
			return Details{}, fmt.Errorf("invalid status code %d: %s", statusCode, string(body))
		}
		return ParseDetailsResponse(body)
	}
}

// ParseDetailsResponse interprets the provider's status envelope. Status
// "REQUEST_DENIED" yields RequestDeniedError with the provider message,
// any other non-"OK" status yields StatusError.
func ParseDetailsResponse(body []byte) (Details, error) {
	var response struct {
		Status       string  `json:"status"`
		ErrorMessage string  `json:"error_message"`
		Result       Details `json:"result"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return Details{}, fmt.Errorf("response unmarshal: %w", err)
	}

	switch response.Status {
	case "OK":
		return response.Result, nil
	case "REQUEST_DENIED":
		return Details{}, &RequestDeniedError{Message: response.ErrorMessage}
	default:
		return Details{}, &StatusError{Status: response.Status}
	}
}
