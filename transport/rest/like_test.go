package rest

import (
	"context"
	"io/ioutil"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/coffeeconnect/coffeeconnect"
	"github.com/coffeeconnect/coffeeconnect/mock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type likeCalls struct {
	creates int
	deletes int
}

func newLikeApp(authenticated bool, alreadyLiked bool, calls *likeCalls) *fiber.App {
	controller := LikeController{
		Likes: mock.LikeStore{
			ExistsFn: func(ctx context.Context, postId string, userId coffeeconnect.UserId) (bool, error) {
				return alreadyLiked, nil
			},
			CreateFn: func(ctx context.Context, like coffeeconnect.Like) error {
				calls.creates++
				return nil
			},
			DeleteFn: func(ctx context.Context, postId string, userId coffeeconnect.UserId) error {
				calls.deletes++
				return nil
			},
		},
	}

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Use(func(ctx *fiber.Ctx) error {
		if authenticated {
			ctx.Locals(sessionLocalsKey, coffeeconnect.Session{UserId: "user-1", Token: "tok"})
		}
		return ctx.Next()
	})
	controller.InstallTo(app)
	return app
}

func testRequest(t *testing.T, app *fiber.App, method string, target string, body string) (int, string) {
	httpReq := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(httpReq)
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

func TestLikeRequiresSession(t *testing.T) {
	assert := assert.New(t)
	calls := &likeCalls{}
	app := newLikeApp(false, false, calls)

	status, _ := testRequest(t, app, "POST", "/likes", `{"postId":"post-7"}`)

	assert.Equal(fiber.StatusUnauthorized, status)
	assert.Equal(0, calls.creates)
}

func TestLikeRequiresPostId(t *testing.T) {
	assert := assert.New(t)
	calls := &likeCalls{}
	app := newLikeApp(true, false, calls)

	status, body := testRequest(t, app, "POST", "/likes", `{}`)

	assert.Equal(fiber.StatusBadRequest, status)
	assert.Equal(`{"error":"no post id"}`, body)
	assert.Equal(0, calls.creates)
}

func TestLikeRejectsDuplicate(t *testing.T) {
	assert := assert.New(t)
	calls := &likeCalls{}
	app := newLikeApp(true, true, calls)

	status, body := testRequest(t, app, "POST", "/likes", `{"postId":"post-7"}`)

	assert.Equal(fiber.StatusBadRequest, status)
	assert.Equal(`{"error":"post already liked"}`, body)
	assert.Equal(0, calls.creates)
}

func TestLikeCreates(t *testing.T) {
	assert := assert.New(t)
	calls := &likeCalls{}
	app := newLikeApp(true, false, calls)

	status, body := testRequest(t, app, "POST", "/likes", `{"postId":"post-7"}`)

	assert.Equal(fiber.StatusOK, status)
	assert.Equal(`{"success":true}`, body)
	assert.Equal(1, calls.creates)
}

func TestUnlikeRequiresSession(t *testing.T) {
	assert := assert.New(t)
	calls := &likeCalls{}
	app := newLikeApp(false, false, calls)

	status, _ := testRequest(t, app, "DELETE", "/likes?postId=post-7", "")

	assert.Equal(fiber.StatusUnauthorized, status)
	assert.Equal(0, calls.deletes)
}

func TestUnlikeRequiresPostId(t *testing.T) {
	assert := assert.New(t)
	calls := &likeCalls{}
	app := newLikeApp(true, false, calls)

	status, body := testRequest(t, app, "DELETE", "/likes", "")

	assert.Equal(fiber.StatusBadRequest, status)
	assert.Equal(`{"error":"no post id"}`, body)
	assert.Equal(0, calls.deletes)
}

// A second unlike is a no-op, not an error. The delete runs regardless of
// whether a like row exists.
func TestUnlikeAbsentLikeSucceeds(t *testing.T) {
	assert := assert.New(t)
	calls := &likeCalls{}
	app := newLikeApp(true, false, calls)

	status, body := testRequest(t, app, "DELETE", "/likes?postId=post-7", "")

	assert.Equal(fiber.StatusOK, status)
	assert.Equal(`{"success":true}`, body)
	assert.Equal(1, calls.deletes)
}
