package rest

import (
	"context"
	"errors"
	"io/ioutil"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/coffeeconnect/coffeeconnect"
	"github.com/coffeeconnect/coffeeconnect/mock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type accountCalls struct {
	profileDeletes int
	authDeletes    int
}

func newAccountApp(session *coffeeconnect.Session, profileDeleteErr error, calls *accountCalls) *fiber.App {
	controller := AccountController{
		Profiles: mock.ProfileStore{
			ByUserIdFn: func(ctx context.Context, userId coffeeconnect.UserId) (coffeeconnect.Profile, error) {
				return coffeeconnect.Profile{}, coffeeconnect.ErrProfileNotFound
			},
			DeleteByUserIdFn: func(ctx context.Context, userId coffeeconnect.UserId) error {
				calls.profileDeletes++
				return profileDeleteErr
			},
		},
		DeleteAuthUser: func(ctx context.Context, userId coffeeconnect.UserId) error {
			calls.authDeletes++
			return nil
		},
	}

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Use(func(ctx *fiber.Ctx) error {
		if session != nil {
			ctx.Locals(sessionLocalsKey, *session)
		}
		return ctx.Next()
	})
	controller.InstallTo(app)
	return app
}

func postDeleteAccount(t *testing.T, app *fiber.App, body string) (int, string) {
	req := httptest.NewRequest("POST", "/delete-account", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	defer resp.Body.Close()
	respBody, err := ioutil.ReadAll(resp.Body)
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	return resp.StatusCode, string(respBody)
}

func TestDeleteAccountRequiresSession(t *testing.T) {
	assert := assert.New(t)
	calls := &accountCalls{}
	app := newAccountApp(nil, nil, calls)

	status, body := postDeleteAccount(t, app, `{"userId":"user-1"}`)

	assert.Equal(fiber.StatusUnauthorized, status)
	assert.Equal(`{"error":"Unauthorized"}`, body)
	assert.Equal(0, calls.profileDeletes)
	assert.Equal(0, calls.authDeletes)
}

func TestDeleteAccountForbidsOtherSubject(t *testing.T) {
	assert := assert.New(t)
	calls := &accountCalls{}
	session := coffeeconnect.Session{UserId: "user-1", Token: "tok"}
	app := newAccountApp(&session, nil, calls)

	status, body := postDeleteAccount(t, app, `{"userId":"user-2"}`)

	assert.Equal(fiber.StatusForbidden, status)
	assert.Equal(`{"error":"cannot delete another account"}`, body)
	assert.Equal(0, calls.profileDeletes)
	assert.Equal(0, calls.authDeletes)
}

func TestDeleteAccountRequiresUserId(t *testing.T) {
	assert := assert.New(t)
	calls := &accountCalls{}
	session := coffeeconnect.Session{UserId: "user-1", Token: "tok"}
	app := newAccountApp(&session, nil, calls)

	status, body := postDeleteAccount(t, app, `{}`)

	assert.Equal(fiber.StatusBadRequest, status)
	assert.Equal(`{"error":"no user id"}`, body)
	assert.Equal(0, calls.profileDeletes)
}

func TestDeleteAccountProfileFailureSkipsAuthDeletion(t *testing.T) {
	assert := assert.New(t)
	calls := &accountCalls{}
	session := coffeeconnect.Session{UserId: "user-1", Token: "tok"}
	app := newAccountApp(&session, errors.New("pg down"), calls)

	status, _ := postDeleteAccount(t, app, `{"userId":"user-1"}`)

	assert.Equal(fiber.StatusInternalServerError, status)
	assert.Equal(1, calls.profileDeletes)
	assert.Equal(0, calls.authDeletes)
}

func TestDeleteAccountSuccess(t *testing.T) {
	assert := assert.New(t)
	calls := &accountCalls{}
	session := coffeeconnect.Session{UserId: "user-1", Token: "tok"}
	app := newAccountApp(&session, nil, calls)

	status, body := postDeleteAccount(t, app, `{"userId":"user-1"}`)

	assert.Equal(fiber.StatusOK, status)
	assert.Equal(`{"success":true}`, body)
	assert.Equal(1, calls.profileDeletes)
	assert.Equal(1, calls.authDeletes)
}

func TestDeleteAccountUnconfiguredBackend(t *testing.T) {
	assert := assert.New(t)
	controller := AccountController{}
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	controller.InstallTo(app)

	status, body := postDeleteAccount(t, app, `{"userId":"user-1"}`)

	assert.Equal(fiber.StatusInternalServerError, status)
	assert.Equal(`{"error":"account backend not configured"}`, body)
}
