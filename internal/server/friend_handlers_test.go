package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFriendRequestLifecycle(t *testing.T) {
	_, app := newTestServer(t)

	registerTestUser(t, app, "chef_anna", "anna@example.com")
	registerTestUser(t, app, "chef_bruno", "bruno@example.com")

	// Anna (1) sends a request to Bruno (2).
	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/friends/request/1/2", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "PENDING", body["status"])

	// Bruno sees it pending.
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/friends/user/2/pending", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.NoError(t, err)
	var pending []map[string]any
	require.NoError(t, json.Unmarshal(raw, &pending))
	assert.Len(t, pending, 1)

	// Bruno accepts; both are now friends.
	resp, err = app.Test(httptest.NewRequest(http.MethodPut, "/api/friends/accept/2/1", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Equal(t, "ACCEPTED", body["status"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/friends/is-friend/1/2", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Equal(t, true, body["friends"])
}

func TestSendFriendRequestToSelfRejected(t *testing.T) {
	_, app := newTestServer(t)

	registerTestUser(t, app, "chef_anna", "anna@example.com")

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/friends/request/1/1", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestBlockAndUnblockOverHTTP(t *testing.T) {
	_, app := newTestServer(t)

	registerTestUser(t, app, "chef_anna", "anna@example.com")
	registerTestUser(t, app, "chef_bruno", "bruno@example.com")

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/friends/block/1/2", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "BLOCKED", body["status"])

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/api/friends/unblock/1/2", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	_ = resp.Body.Close()

	// Unblocking again is a harmless no-op.
	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/api/friends/unblock/1/2", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	_ = resp.Body.Close()
}
