package app

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/odmng/orderdesk/internal/auth"
	"github.com/odmng/orderdesk/internal/config"
	"github.com/odmng/orderdesk/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startTestServer runs the full handler chain with zero simulated delays.
func startTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := &config.Config{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	deps := SetupDependencies(cfg, logger)
	srv := httptest.NewServer(SetupHttpHandler(deps))
	t.Cleanup(srv.Close)
	return srv
}

func login(t *testing.T, srv *httptest.Server, email, password string) (*auth.Session, int) {
	t.Helper()
	body := `{"email":"` + email + `","password":"` + password + `"}`
	resp, err := http.Post(srv.URL+"/api/v1/auth/login", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, resp.StatusCode
	}
	var session auth.Session
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&session))
	return &session, resp.StatusCode
}

func doAuthorized(t *testing.T, srv *httptest.Server, method, path, token string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, srv.URL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func Test_App_LoginSeedsAndLogoutClears(t *testing.T) {
	srv := startTestServer(t)

	// Wrong password is rejected and leaves the gate closed.
	_, status := login(t, srv, "admin@example.com", "wrong")
	assert.Equal(t, http.StatusUnauthorized, status)

	resp := doAuthorized(t, srv, http.MethodGet, "/api/v1/customers/", "")
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Correct credentials mint a token that unlocks the seeded data.
	session, status := login(t, srv, "admin@example.com", "password123")
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, session)

	resp = doAuthorized(t, srv, http.MethodGet, "/api/v1/customers/", session.Token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var customers []service.CustomerDto
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&customers))
	_ = resp.Body.Close()
	assert.Len(t, customers, 4)

	resp = doAuthorized(t, srv, http.MethodGet, "/api/v1/dashboard/stats", session.Token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var stats service.StatsDto
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	_ = resp.Body.Close()
	assert.Equal(t, 4, stats.TotalCustomers)
	assert.Equal(t, 10, stats.TotalOrders)

	// Logout invalidates the token.
	resp = doAuthorized(t, srv, http.MethodPost, "/api/v1/auth/logout", session.Token)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doAuthorized(t, srv, http.MethodGet, "/api/v1/customers/", session.Token)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func Test_App_TokenSurvivesAcrossRequests(t *testing.T) {
	srv := startTestServer(t)

	session, status := login(t, srv, "employee@example.com", "password123")
	require.Equal(t, http.StatusOK, status)

	// The token behaves like the persisted login of a reloaded client:
	// each new request presenting it restores the session.
	for i := 0; i < 3; i++ {
		resp := doAuthorized(t, srv, http.MethodGet, "/api/v1/auth/me", session.Token)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var user auth.User
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&user))
		_ = resp.Body.Close()
		assert.Equal(t, session.User, user)
	}
}
