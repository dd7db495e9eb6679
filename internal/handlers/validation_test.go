package handlers

// These tests cover the request-validation paths that fail before any
// store access, so the handlers are built with zero-value services.

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_MissingFields(t *testing.T) {
	app := fiber.New()
	handler := &UserHandler{}
	app.Post("/register-user", handler.Register)

	tests := []struct {
		name string
		body map[string]string
	}{
		{name: "no name", body: map[string]string{"email": "a@b.c", "password": "pw", "photoURL": "http://x/p.png"}},
		{name: "no email", body: map[string]string{"name": "A", "password": "pw", "photoURL": "http://x/p.png"}},
		{name: "no password", body: map[string]string{"name": "A", "email": "a@b.c", "photoURL": "http://x/p.png"}},
		{name: "no photoURL", body: map[string]string{"name": "A", "email": "a@b.c", "password": "pw"}},
		{name: "empty body", body: map[string]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, _ := json.Marshal(tt.body)
			req := httptest.NewRequest("POST", "/register-user", bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestAddPost_MissingData(t *testing.T) {
	app := fiber.New()
	handler := &PostHandler{}
	app.Post("/add-posts", handler.Create)

	req := httptest.NewRequest("POST", "/add-posts", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetPost_InvalidID(t *testing.T) {
	app := fiber.New()
	handler := &PostHandler{}
	app.Get("/posts/:id", handler.Get)

	req := httptest.NewRequest("GET", "/posts/not-a-hex-id", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestVote_InvalidID(t *testing.T) {
	app := fiber.New()
	handler := &PostHandler{}
	app.Put("/posts/:id/upvote", handler.Upvote)
	app.Put("/posts/:id/downvote", handler.Downvote)

	for _, path := range []string{"/posts/nope/upvote", "/posts/nope/downvote"} {
		req := httptest.NewRequest("PUT", path, nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, path)
	}
}

func TestCreateTags_EmptyList(t *testing.T) {
	app := fiber.New()
	handler := &TagHandler{}
	app.Post("/tags", handler.Create)

	for _, body := range []string{`{}`, `{"tags":[]}`} {
		req := httptest.NewRequest("POST", "/tags", bytes.NewReader([]byte(body)))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, body)
	}
}

func TestCreateComment_InvalidBody(t *testing.T) {
	app := fiber.New()
	handler := &CommentHandler{}
	app.Post("/comments", handler.Create)

	req := httptest.NewRequest("POST", "/comments", bytes.NewReader([]byte(`{not json`)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
