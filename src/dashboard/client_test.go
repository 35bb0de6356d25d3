package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"QuickTech-Backend/src/models"
)

func TestClientAgainstServer(t *testing.T) {
	var gotAuth, gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotMethod, gotPath = r.Method, r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/admin/submissions":
			_ = json.NewEncoder(w).Encode(fixtures())
		case r.Method == http.MethodPut && r.URL.Path == "/api/admin/submissions/1/view":
			_, _ = w.Write([]byte(`{"success":true}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"status":404,"message":"Submission not found","code":"NOT_FOUND"}`))
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", "tok")
	ctx := context.Background()

	list, err := c.ListSubmissions(ctx)
	require.NoError(t, err)
	require.Len(t, list, 4)
	assert.Equal(t, models.SubmissionContact, list[0].Type)
	assert.Equal(t, "Bearer tok", gotAuth)

	require.NoError(t, c.MarkViewed(ctx, 1))
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/admin/submissions/1/view", gotPath)

	err = c.MarkViewed(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClientHonoursCancelledContext(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(srv.URL, "")
	_, err := c.ListSubmissions(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, c.MarkViewed(ctx, 1), context.Canceled)
	assert.Zero(t, hits)
}
