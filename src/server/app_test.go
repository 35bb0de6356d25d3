package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"QuickTech-Backend/src/metrics"
	"QuickTech-Backend/src/models"
	"QuickTech-Backend/src/routes"
	"QuickTech-Backend/src/services/auth"
	"QuickTech-Backend/src/services/content"
	"QuickTech-Backend/src/services/submission"
	"QuickTech-Backend/src/utils"
)

func newTestApp(t *testing.T, adminAuthRequired bool) *fiber.App {
	t.Helper()
	return newTestAppWith(t, Options{AppName: "quicktech-test"}, adminAuthRequired)
}

func newTestAppWith(t *testing.T, opts Options, adminAuthRequired bool) *fiber.App {
	t.Helper()
	reg := prometheus.NewRegistry()
	subs := submission.NewService(submission.NewMemoryStore(), zap.NewNop(), submission.WithMetrics(metrics.New(reg)))

	authSvc, err := auth.NewService(
		auth.Config{AdminEmail: "admin@example.com", AdminPassword: "admin123"},
		utils.NewTokenIssuer("test-secret", time.Hour),
		auth.NewMemoryLimiter(3, time.Minute),
		subs,
		zap.NewNop(),
	)
	require.NoError(t, err)

	contentSvc, err := content.NewService()
	require.NoError(t, err)

	return NewApp(opts, routes.Deps{
		Submissions:       subs,
		Auth:              authSvc,
		Content:           contentSvc,
		Gatherer:          reg,
		Log:               zap.NewNop(),
		AdminAuthRequired: adminAuthRequired,
	})
}

func do(t *testing.T, app *fiber.App, method, path string, body any, token string) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func listSubmissions(t *testing.T, app *fiber.App, token string) []models.Submission {
	t.Helper()
	status, body := do(t, app, http.MethodGet, "/api/admin/submissions", nil, token)
	require.Equal(t, http.StatusOK, status, string(body))
	var list []models.Submission
	require.NoError(t, json.Unmarshal(body, &list))
	return list
}

func TestContactToViewedFlow(t *testing.T) {
	app := newTestApp(t, false)

	status, body := do(t, app, http.MethodPost, "/api/contact", map[string]any{
		"name":    "Jane Doe",
		"email":   "jane@example.com",
		"subject": "Pricing question",
		"message": "Can you tell me more about your SEO packages?",
	}, "")
	require.Equal(t, http.StatusCreated, status, string(body))

	var created struct {
		Success bool                 `json:"success"`
		Contact models.ContactRecord `json:"contact"`
	}
	require.NoError(t, json.Unmarshal(body, &created))
	assert.True(t, created.Success)
	assert.NotZero(t, created.Contact.ID)
	assert.Equal(t, "Jane Doe", created.Contact.Name)

	list := listSubmissions(t, app, "")
	require.Len(t, list, 1)
	assert.Equal(t, created.Contact.ID, list[0].ID)
	assert.Equal(t, models.SubmissionContact, list[0].Type)
	assert.Equal(t, "jane@example.com", list[0].Email)
	assert.Equal(t, "", list[0].PhoneNumber)
	assert.False(t, list[0].Viewed)

	status, body = do(t, app, http.MethodPut, fmt.Sprintf("/api/admin/submissions/%d/view", list[0].ID), nil, "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"success":true}`, string(body))

	list = listSubmissions(t, app, "")
	require.Len(t, list, 1)
	assert.True(t, list[0].Viewed)

	// idempotent
	status, _ = do(t, app, http.MethodPut, fmt.Sprintf("/api/admin/submissions/%d/view", list[0].ID), nil, "")
	assert.Equal(t, http.StatusOK, status)
}

func TestContactValidation(t *testing.T) {
	app := newTestApp(t, false)

	status, body := do(t, app, http.MethodPost, "/api/contact", map[string]any{
		"name":    "J",
		"email":   "not-an-email",
		"subject": "Hi",
		"message": "short",
	}, "")
	require.Equal(t, http.StatusBadRequest, status)

	var resp models.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	paths := make([]string, 0, len(resp.Errors))
	for _, e := range resp.Errors {
		paths = append(paths, e.Path)
		assert.NotEmpty(t, e.Message)
	}
	assert.ElementsMatch(t, []string{"name", "email", "subject", "message"}, paths)

	for _, raw := range []string{`{"name": 123}`, `"hello"`} {
		status, body = do(t, app, http.MethodPost, "/api/contact", json.RawMessage(raw), "")
		require.Equal(t, http.StatusBadRequest, status, raw)
		var bad models.ValidationErrorResponse
		require.NoError(t, json.Unmarshal(body, &bad))
		require.Len(t, bad.Errors, 1, raw)
		assert.Equal(t, "", bad.Errors[0].Path)
		assert.Equal(t, "Invalid input", bad.Errors[0].Message)
	}

	assert.Empty(t, listSubmissions(t, app, ""))
}

func TestQuoteStoredAsSubmitted(t *testing.T) {
	app := newTestApp(t, false)

	status, body := do(t, app, http.MethodPost, "/api/quote", map[string]any{
		"service":   "web-development",
		"budget":    "$5,000 - $10,000",
		"email":     "sam@example.com",
		"phone":     "+66 81 234 5678",
		"createdAt": "1999-01-01T00:00:00Z",
	}, "")
	require.Equal(t, http.StatusCreated, status)
	assert.JSONEq(t, `{"success":true}`, string(body))

	list := listSubmissions(t, app, "")
	require.Len(t, list, 1)
	assert.Equal(t, models.SubmissionQuote, list[0].Type)
	assert.Equal(t, "sam@example.com", list[0].Email)
	assert.Equal(t, "+66 81 234 5678", list[0].PhoneNumber)
	assert.Equal(t, "web-development", list[0].Data["service"])
	assert.True(t, list[0].CreatedAt.After(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)))

	for _, raw := range []string{`null`, `[1]`, `"quote"`} {
		status, _ = do(t, app, http.MethodPost, "/api/quote", json.RawMessage(raw), "")
		assert.Equal(t, http.StatusBadRequest, status, raw)
	}
	assert.Len(t, listSubmissions(t, app, ""), 1)
}

func TestAuthEvent(t *testing.T) {
	app := newTestApp(t, false)

	status, _ := do(t, app, http.MethodPost, "/api/auth-event", map[string]any{
		"type":     "logout",
		"userData": map[string]any{"email": "x@example.com"},
	}, "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Empty(t, listSubmissions(t, app, ""))

	status, _ = do(t, app, http.MethodPost, "/api/auth-event", map[string]any{
		"type":     "signup",
		"userData": map[string]any{"firstName": "Ann", "lastName": "Lee", "email": "ann@example.com", "password": "secret123"},
	}, "")
	require.Equal(t, http.StatusCreated, status)

	list := listSubmissions(t, app, "")
	require.Len(t, list, 1)
	assert.Equal(t, models.SubmissionSignup, list[0].Type)
	assert.Equal(t, "ann@example.com", list[0].Email)
	assert.NotContains(t, list[0].Data, "password")
}

func TestMarkViewedErrors(t *testing.T) {
	app := newTestApp(t, false)

	status, _ := do(t, app, http.MethodPut, "/api/admin/submissions/999/view", nil, "")
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = do(t, app, http.MethodPut, "/api/admin/submissions/abc/view", nil, "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestAdminStatsAndGet(t *testing.T) {
	app := newTestApp(t, false)
	do(t, app, http.MethodPost, "/api/quote", map[string]any{"service": "seo"}, "")
	do(t, app, http.MethodPost, "/api/auth-event", map[string]any{"type": "login", "userData": map[string]any{"username": "ann"}}, "")

	status, body := do(t, app, http.MethodGet, "/api/admin/submissions/stats", nil, "")
	require.Equal(t, http.StatusOK, status)
	var stats models.SubmissionStats
	require.NoError(t, json.Unmarshal(body, &stats))
	assert.Equal(t, models.SubmissionStats{Total: 2, Unread: 2, Quote: 1, Auth: 1}, stats)

	status, body = do(t, app, http.MethodGet, "/api/admin/submissions/2", nil, "")
	require.Equal(t, http.StatusOK, status)
	var sub models.Submission
	require.NoError(t, json.Unmarshal(body, &sub))
	assert.Equal(t, models.SubmissionLogin, sub.Type)
	assert.Equal(t, "ann", sub.Email)

	status, _ = do(t, app, http.MethodGet, "/api/admin/submissions/42", nil, "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	app := newTestApp(t, true)

	status, _ := do(t, app, http.MethodGet, "/api/admin/submissions", nil, "")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, body := do(t, app, http.MethodPost, "/api/auth/login", map[string]any{"email": "admin@example.com", "password": "admin123"}, "")
	require.Equal(t, http.StatusOK, status, string(body))
	var login struct {
		Token     string       `json:"token"`
		ExpiresIn int          `json:"expiresIn"`
		User      auth.Session `json:"user"`
	}
	require.NoError(t, json.Unmarshal(body, &login))
	assert.Equal(t, 3600, login.ExpiresIn)
	assert.True(t, login.User.IsAdmin())

	list := listSubmissions(t, app, login.Token)
	require.Len(t, list, 1)
	assert.Equal(t, models.SubmissionLogin, list[0].Type)

	// client accounts are not admins
	status, _ = do(t, app, http.MethodPost, "/api/auth/signup", map[string]any{
		"firstName": "Ann", "lastName": "Lee", "email": "ann@example.com",
		"password": "password1", "confirmPassword": "password1", "agreeTerms": true,
	}, "")
	require.Equal(t, http.StatusCreated, status)
	status, body = do(t, app, http.MethodPost, "/api/auth/login", map[string]any{"email": "ann@example.com", "password": "password1"}, "")
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &login))

	status, _ = do(t, app, http.MethodGet, "/api/admin/submissions", nil, login.Token)
	assert.Equal(t, http.StatusForbidden, status)

	status, body = do(t, app, http.MethodGet, "/api/auth/me", nil, login.Token)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), "ann@example.com")
}

func TestLoginRateLimit(t *testing.T) {
	app := newTestApp(t, false)
	creds := map[string]any{"email": "admin@example.com", "password": "wrong-password"}

	for i := 0; i < 3; i++ {
		status, _ := do(t, app, http.MethodPost, "/api/auth/login", creds, "")
		require.Equal(t, http.StatusUnauthorized, status)
	}

	status, body := do(t, app, http.MethodPost, "/api/auth/login", creds, "")
	require.Equal(t, http.StatusTooManyRequests, status)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, "RATE_LIMITED", resp["code"])
	assert.Greater(t, resp["remainingTime"], float64(0))
}

func TestSignupDuplicate(t *testing.T) {
	app := newTestApp(t, false)
	form := map[string]any{
		"firstName": "Ann", "lastName": "Lee", "email": "ann@example.com",
		"password": "password1", "confirmPassword": "password1", "agreeTerms": true,
	}
	status, _ := do(t, app, http.MethodPost, "/api/auth/signup", form, "")
	require.Equal(t, http.StatusCreated, status)
	status, _ = do(t, app, http.MethodPost, "/api/auth/signup", form, "")
	assert.Equal(t, http.StatusConflict, status)

	form["confirmPassword"] = "different"
	form["email"] = "bob@example.com"
	status, body := do(t, app, http.MethodPost, "/api/auth/signup", form, "")
	require.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, string(body), "Passwords don't match")
}

func TestContentAndPricing(t *testing.T) {
	app := newTestApp(t, false)

	status, body := do(t, app, http.MethodGet, "/api/portfolio", nil, "")
	require.Equal(t, http.StatusOK, status)
	var projects []models.PortfolioProject
	require.NoError(t, json.Unmarshal(body, &projects))
	require.NotEmpty(t, projects)

	status, _ = do(t, app, http.MethodGet, "/api/portfolio/"+projects[0].Slug, nil, "")
	assert.Equal(t, http.StatusOK, status)
	status, _ = do(t, app, http.MethodGet, "/api/portfolio/no-such-project", nil, "")
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = do(t, app, http.MethodGet, "/api/testimonials/1", nil, "")
	assert.Equal(t, http.StatusOK, status)
	status, _ = do(t, app, http.MethodGet, "/api/testimonials/x", nil, "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = do(t, app, http.MethodPost, "/api/pricing/estimate", map[string]any{
		"services": []string{"does-not-exist"}, "pages": 5, "weeks": 4,
	}, "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = do(t, app, http.MethodPost, "/api/pricing/estimate", map[string]any{"pages": 50, "weeks": 4}, "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = do(t, app, http.MethodPost, "/api/pricing/estimate", map[string]any{
		"services": []string{"web-dev"}, "addons": []string{"seo", "seo"}, "pages": 5, "weeks": 4,
	}, "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, string(body), "must not contain duplicates")
}

func TestMetricsEndpoint(t *testing.T) {
	app := newTestApp(t, false)
	do(t, app, http.MethodPost, "/api/quote", map[string]any{"service": "seo"}, "")

	status, body := do(t, app, http.MethodGet, "/metrics", nil, "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), `type="quote"`)
}

func TestUnknownRouteUsesErrorResponse(t *testing.T) {
	app := newTestApp(t, false)
	status, body := do(t, app, http.MethodGet, "/api/nope", nil, "")
	require.Equal(t, http.StatusNotFound, status)
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, http.StatusNotFound, resp.Status)
}

func TestPanicRendersErrorResponse(t *testing.T) {
	for _, production := range []bool{false, true} {
		app := newTestAppWith(t, Options{AppName: "quicktech-test", Production: production}, false)
		app.Get("/boom", func(c *fiber.Ctx) error { panic("kaboom") })

		status, body := do(t, app, http.MethodGet, "/boom", nil, "")
		require.Equal(t, http.StatusInternalServerError, status)
		var resp models.ErrorResponse
		require.NoError(t, json.Unmarshal(body, &resp))
		assert.Equal(t, "Internal server error", resp.Message)
		assert.NotContains(t, string(body), "kaboom")
	}
}
