// Package authapi talks to the external auth service. Account identities
// live there, not in our database; we resolve them behind access tokens
// and delete them through the admin api.
package authapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/coffeeconnect/coffeeconnect"
	"github.com/gofiber/fiber/v2"
)

var ErrUnauthorized = errors.New("authapi: unauthorized")

type User struct {
	Id    string `json:"sub"`
	Email string `json:"email"`
}

type UserInfo = func(accessToken string) (User, error)

// RestUserInfo resolves the identity behind an auth service access token
// via the userinfo endpoint.
func RestUserInfo(baseUrl string) UserInfo {
	return func(accessToken string) (User, error) {
		agent := fiber.AcquireAgent()
		defer fiber.ReleaseAgent(agent)

		req := agent.Request()
		req.Header.SetMethod(fiber.MethodGet)
		req.SetRequestURI(baseUrl + "/userinfo")
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+accessToken)

		if err := agent.Parse(); err != nil {
			return User{}, fmt.Errorf("agent parse: %w", err)
		}

		statusCode, body, errArr := agent.Bytes()
		if len(errArr) != 0 {
			return User{}, fmt.Errorf("agent bytes: %v", errArr)
		}
		if statusCode != fiber.StatusOK {
			if statusCode == fiber.StatusUnauthorized {
				return User{}, ErrUnauthorized
			}
			return User{}, fmt.Errorf("invalid status code %d: %s", statusCode, string(body))
		}

		var user User
		if err := json.Unmarshal(body, &user); err != nil {
			return User{}, fmt.Errorf("unmarshal body: %w", err)
		}
		return user, nil
	}
}

// RestUserDeleter deletes the auth identity through the admin rest api.
// Requires the server-held service key, never a user token.
func RestUserDeleter(baseUrl string, serviceKey string) coffeeconnect.UserDeleter {
	return func(ctx context.Context, userId coffeeconnect.UserId) error {
		agent := fiber.AcquireAgent()
		defer fiber.ReleaseAgent(agent)

		req := agent.Request()
		req.Header.SetMethod(fiber.MethodDelete)
		req.SetRequestURI(baseUrl + "/admin/users/" + url.PathEscape(string(userId)))
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+serviceKey)

		if err := agent.Parse(); err != nil {
			return fmt.Errorf("agent parse: %w", err)
		}

		statusCode, body, errArr := agent.Bytes()
		if len(errArr) != 0 {
			return fmt.Errorf("agent bytes: %v", errArr)
		}
		switch {
		case statusCode >= 200 && statusCode < 300:
			return nil
		case statusCode == fiber.StatusUnauthorized || statusCode == fiber.StatusForbidden:
			return ErrUnauthorized
		default:
			return fmt.Errorf("invalid status code %d: %s", statusCode, string(body))
		}
	}
}
