package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/leadflow/leadflow/internal/api"
	"github.com/leadflow/leadflow/internal/auth"
	"github.com/leadflow/leadflow/tests/testutil"
)

func newTestServer(t *testing.T) *api.Server {
	t.Helper()

	st := testutil.NewTestStore(t)
	testutil.SeedCatalog(t, st)
	svc := auth.NewService(st, 24*time.Hour, 4)
	return api.New(st, svc, zap.NewNop(), 7, nil)
}

// doJSON sends a request with an optional JSON body and bearer token and
// returns the recorded response.
func doJSON(t *testing.T, srv *api.Server, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

// decodeBody unmarshals the recorded JSON response into a generic map.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// registerAndLogin creates an account and returns a valid session token.
func registerAndLogin(t *testing.T, srv *api.Server, email string) string {
	t.Helper()

	rec := doJSON(t, srv, http.MethodPost, "/register", "", map[string]interface{}{
		"name": "Test User", "email": email, "password": "s3cret",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, srv, http.MethodPost, "/login", "", map[string]interface{}{
		"email": email, "password": "s3cret",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	token, _ := decodeBody(t, rec)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeBody(t, rec)["status"])
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRegisterValidation(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/register", "", map[string]interface{}{
		"email": "a@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotEmpty(t, decodeBody(t, rec)["error"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	srv := newTestServer(t)

	body := map[string]interface{}{"name": "A", "email": "dup@example.com", "password": "x"}
	rec := doJSON(t, srv, http.MethodPost, "/register", "", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, srv, http.MethodPost, "/register", "", body)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLoginInvalidCredentials(t *testing.T) {
	srv := newTestServer(t)
	registerAndLogin(t, srv, "a@example.com")

	rec := doJSON(t, srv, http.MethodPost, "/login", "", map[string]interface{}{
		"email": "a@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/leads/daily", "/leads", "/user/profile"} {
		rec := doJSON(t, srv, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "GET %s without token", path)
	}

	rec := doJSON(t, srv, http.MethodGet, "/leads/daily", "bogus-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDailyLeadsIdempotent(t *testing.T) {
	srv := newTestServer(t)
	token := registerAndLogin(t, srv, "a@example.com")

	rec := doJSON(t, srv, http.MethodGet, "/leads/daily", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	first := decodeBody(t, rec)["leads"].([]interface{})
	assert.Len(t, first, 7)

	rec = doJSON(t, srv, http.MethodGet, "/leads/daily", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	second := decodeBody(t, rec)["leads"].([]interface{})
	assert.Equal(t, first, second)
}

func TestTokenAcceptedAsQueryParameter(t *testing.T) {
	srv := newTestServer(t)
	token := registerAndLogin(t, srv, "a@example.com")

	rec := doJSON(t, srv, http.MethodGet, "/leads/daily?token="+token, "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLeadStatusFlow(t *testing.T) {
	srv := newTestServer(t)
	token := registerAndLogin(t, srv, "a@example.com")

	// Not yet delivered: 404.
	rec := doJSON(t, srv, http.MethodPost, "/lead_status", token, map[string]interface{}{
		"lead_id": 1, "status": "interested",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/leads/daily", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, srv, http.MethodPost, "/lead_status", token, map[string]interface{}{
		"lead_id": 1, "status": "interested", "next_action_date": "2026-09-15",
	})
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// Unknown status value: 400.
	rec = doJSON(t, srv, http.MethodPost, "/lead_status", token, map[string]interface{}{
		"lead_id": 1, "status": "call_later",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// History filter returns the updated lead.
	rec = doJSON(t, srv, http.MethodGet, "/leads?status=interested", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	leads := decodeBody(t, rec)["leads"].([]interface{})
	require.Len(t, leads, 1)
	lead := leads[0].(map[string]interface{})
	assert.Equal(t, float64(1), lead["lead_id"])
	assert.Equal(t, "2026-09-15", lead["next_action_date"])
}

func TestNotesFlow(t *testing.T) {
	srv := newTestServer(t)
	token := registerAndLogin(t, srv, "a@example.com")

	rec := doJSON(t, srv, http.MethodGet, "/leads/daily", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Empty content: 400.
	rec = doJSON(t, srv, http.MethodPost, "/notes", token, map[string]interface{}{
		"lead_id": 1, "content": "  ",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Undelivered lead: 404.
	rec = doJSON(t, srv, http.MethodPost, "/notes", token, map[string]interface{}{
		"lead_id": 20, "content": "hello",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	for _, content := range []string{"left voicemail", "sent follow-up email"} {
		rec = doJSON(t, srv, http.MethodPost, "/notes", token, map[string]interface{}{
			"lead_id": 1, "content": content,
		})
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	rec = doJSON(t, srv, http.MethodGet, "/notes?lead_id=1", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	notes := decodeBody(t, rec)["notes"].([]interface{})
	require.Len(t, notes, 2)
	assert.Equal(t, "left voicemail", notes[0].(map[string]interface{})["content"])
}

func TestCategories(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/categories", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	categories := decodeBody(t, rec)["categories"].([]interface{})
	assert.Len(t, categories, 7)
}

func TestProfileReadAndUpdate(t *testing.T) {
	srv := newTestServer(t)
	token := registerAndLogin(t, srv, "a@example.com")

	rec := doJSON(t, srv, http.MethodPut, "/user/profile", token, map[string]interface{}{
		"phone":      "+1555",
		"countries":  []string{"Canada"},
		"categories": []int64{2},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, srv, http.MethodGet, "/user/profile", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	profile := decodeBody(t, rec)
	assert.Equal(t, "+1555", profile["phone"])
	assert.Equal(t, []interface{}{"Canada"}, profile["countries"])

	categories := profile["categories"].([]interface{})
	require.Len(t, categories, 1)
	assert.Equal(t, "Beauty", categories[0].(map[string]interface{})["name"])
}

func TestProfileUpdateViaPOSTFallback(t *testing.T) {
	srv := newTestServer(t)
	token := registerAndLogin(t, srv, "a@example.com")

	rec := doJSON(t, srv, http.MethodPost, "/user/profile", token, map[string]interface{}{
		"phone": "+1999",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogout(t *testing.T) {
	srv := newTestServer(t)
	token := registerAndLogin(t, srv, "a@example.com")

	rec := doJSON(t, srv, http.MethodPost, "/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/leads/daily", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPreflight(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/lead_status", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}
