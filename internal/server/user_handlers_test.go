package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodieframe/internal/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func registerTestUser(t *testing.T, app appTester, username, email string) string {
	t.Helper()
	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/users/register", map[string]string{
		"username": username,
		"email":    email,
		"password": "secret123",
		"name":     "Test User",
	}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

// appTester matches fiber.App.Test.
type appTester interface {
	Test(req *http.Request, msTimeout ...int) (*http.Response, error)
}

func TestRegisterAndLoginFlow(t *testing.T) {
	_, app := newTestServer(t)

	registerTestUser(t, app, "chef_anna", "anna@example.com")

	// Duplicate username is rejected.
	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/users/register", map[string]string{
		"username": "chef_anna",
		"email":    "other@example.com",
		"password": "secret123",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()

	// Login with the right password succeeds and returns a token.
	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/users/login", map[string]string{
		"email":    "anna@example.com",
		"password": "secret123",
	}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.NotEmpty(t, body["token"])

	// Wrong password is a 401.
	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/users/login", map[string]string{
		"email":    "anna@example.com",
		"password": "wrong-password",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestProfileUpdateAfterCachedReadKeepsLoginWorking(t *testing.T) {
	_, app := newTestServer(t)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	cache.SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { cache.SetClient(nil) })

	registerTestUser(t, app, "chef_anna", "anna@example.com")

	// Two reads so the second is served from the cache.
	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/users/1", nil), -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		_ = resp.Body.Close()
	}

	// A name-only edit must leave the stored credentials intact.
	resp, err := app.Test(jsonRequest(t, http.MethodPut, "/api/users/1", map[string]string{
		"name": "Anna Updated",
	}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/users/login", map[string]string{
		"email":    "anna@example.com",
		"password": "secret123",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestGetUserInvalidAndMissingID(t *testing.T) {
	_, app := newTestServer(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/users/abc", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/users/999", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestCheckUsernameAvailability(t *testing.T) {
	_, app := newTestServer(t)

	registerTestUser(t, app, "chef_anna", "anna@example.com")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/users/check-username/chef_anna", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, false, body["available"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/users/check-username/someone_else", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Equal(t, true, body["available"])
}

func TestMaintenanceRequiresAuth(t *testing.T) {
	_, app := newTestServer(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/maintenance/sweep-orphans", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	_ = resp.Body.Close()

	token := registerTestUser(t, app, "chef_anna", "anna@example.com")

	req := httptest.NewRequest(http.MethodPost, "/api/maintenance/sweep-orphans", nil)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestMaintenanceRejectsGarbageToken(t *testing.T) {
	_, app := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/maintenance/sweep-orphans", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	_ = resp.Body.Close()
}
