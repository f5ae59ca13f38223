package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePostOverHTTP(t *testing.T) {
	_, app := newTestServer(t)

	registerTestUser(t, app, "chef_anna", "anna@example.com")

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/posts", map[string]any{
		"userId":      1,
		"title":       "Carbonara",
		"description": "The classic Roman pasta dish",
		"category":    "Pasta",
		"steps":       "Boil, fry, toss",
		"tags":        "pasta,italian",
	}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Carbonara", body["title"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/posts/1", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	// Category lookup is case-insensitive.
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/posts/category/pasta", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestCreatePostValidationOverHTTP(t *testing.T) {
	_, app := newTestServer(t)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/posts", map[string]any{
		"userId": 1,
		"title":  "ab",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestDeletePostOverHTTP(t *testing.T) {
	_, app := newTestServer(t)

	registerTestUser(t, app, "chef_anna", "anna@example.com")

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/posts", map[string]any{
		"userId":      1,
		"title":       "Carbonara",
		"description": "The classic Roman pasta dish",
		"category":    "Pasta",
		"steps":       "Boil, fry, toss",
	}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	_ = resp.Body.Close()

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/api/posts/1", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	_ = resp.Body.Close()

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/posts/1", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestCreateInteractionOverHTTP(t *testing.T) {
	_, app := newTestServer(t)

	registerTestUser(t, app, "chef_anna", "anna@example.com")

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/posts", map[string]any{
		"userId":      1,
		"title":       "Carbonara",
		"description": "The classic Roman pasta dish",
		"category":    "Pasta",
		"steps":       "Boil, fry, toss",
	}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	_ = resp.Body.Close()

	// Liking twice stays at one like.
	for i := 0; i < 2; i++ {
		resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/interactions", map[string]any{
			"userId":   1,
			"recipeId": 1,
			"type":     "LIKE",
		}), -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		_ = resp.Body.Close()
	}

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/interactions/recipe/1/type/LIKE/count", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, float64(1), body["count"])

	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/interactions", map[string]any{
		"userId":   1,
		"recipeId": 1,
		"type":     "POKE",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()
}
