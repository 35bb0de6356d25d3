package submission

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"QuickTech-Backend/src/metrics"
	"QuickTech-Backend/src/models"
)

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SubmissionCreated(ctx context.Context, sub models.Submission) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

var fixedNow = time.Date(2026, 10, 16, 12, 0, 0, 123456789, time.UTC)

func newTestService(opts ...Option) (*Service, *MemoryStore) {
	store := NewMemoryStore()
	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	return NewService(store, zap.NewNop(), opts...), store
}

func TestContactChannels(t *testing.T) {
	cases := []struct {
		name      string
		kind      models.SubmissionType
		data      map[string]any
		wantEmail string
		wantPhone string
	}{
		{"contact", models.SubmissionContact, map[string]any{"email": "a@b.co", "phone": "123"}, "a@b.co", ""},
		{"quote with phone", models.SubmissionQuote, map[string]any{"email": "q@b.co", "phone": "+1 555 0100"}, "q@b.co", "+1 555 0100"},
		{"quote without channels", models.SubmissionQuote, map[string]any{"name": "Q"}, "", ""},
		{"signup email", models.SubmissionSignup, map[string]any{"email": "s@b.co", "username": "sam"}, "s@b.co", ""},
		{"login username fallback", models.SubmissionLogin, map[string]any{"username": "admin"}, "admin", ""},
		{"login nothing", models.SubmissionLogin, map[string]any{}, "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			email, phone := ContactChannels(tc.kind, tc.data)
			assert.Equal(t, tc.wantEmail, email)
			assert.Equal(t, tc.wantPhone, phone)
		})
	}
}

func TestRecordContact(t *testing.T) {
	svc, store := newTestService()
	req := models.ContactRequest{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "Pricing question",
		Message: "Can you tell me more about your SEO packages?",
	}

	sub, err := svc.RecordContact(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, models.SubmissionContact, sub.Type)
	assert.Equal(t, req.Map(), sub.Data)
	assert.Equal(t, "jane@example.com", sub.Email)
	assert.Equal(t, "", sub.PhoneNumber)
	assert.False(t, sub.Viewed)
	assert.Equal(t, fixedNow.Truncate(time.Millisecond), sub.CreatedAt)

	list, _ := store.List(context.Background())
	assert.Len(t, list, 1)
}

func TestRecordQuoteKeepsPayloadAndIgnoresClientTimestamp(t *testing.T) {
	svc, _ := newTestService()
	fields := map[string]any{
		"name":      "Sam",
		"email":     "sam@example.com",
		"phone":     "0800 000 000",
		"service":   "SEO",
		"createdAt": "1999-01-01T00:00:00Z",
	}

	sub, err := svc.RecordQuote(context.Background(), fields)
	require.NoError(t, err)

	assert.Equal(t, "0800 000 000", sub.PhoneNumber)
	assert.Equal(t, "1999-01-01T00:00:00Z", sub.Data["createdAt"])
	assert.Equal(t, fixedNow.Truncate(time.Millisecond), sub.CreatedAt)

	fields["name"] = "mutated"
	assert.Equal(t, "Sam", sub.Data["name"])
}

func TestRecordAuthEvent(t *testing.T) {
	svc, _ := newTestService()

	sub, err := svc.RecordAuthEvent(context.Background(), models.SubmissionSignup, map[string]any{
		"username": "sam",
		"password": "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionSignup, sub.Type)
	assert.Equal(t, "sam", sub.Email)
	assert.NotContains(t, sub.Data, "password")

	_, err = svc.RecordAuthEvent(context.Background(), models.SubmissionContact, nil)
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestNotifierFailureDoesNotFailRecord(t *testing.T) {
	notifier := new(MockNotifier)
	notifier.On("SubmissionCreated", mock.Anything, mock.AnythingOfType("models.Submission")).
		Return(errors.New("redis down"))
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	svc, _ := newTestService(WithNotifier(notifier), WithMetrics(m))
	sub, err := svc.RecordQuote(context.Background(), map[string]any{"email": "x@y.z"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), sub.ID)
	notifier.AssertExpectations(t)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NotifyFailures))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SubmissionsCreated.WithLabelValues("quote")))
}

func TestMarkViewedAndStats(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	c, _ := svc.RecordContact(ctx, models.ContactRequest{Email: "a@b.co"})
	_, _ = svc.RecordQuote(ctx, map[string]any{})
	_, _ = svc.RecordAuthEvent(ctx, models.SubmissionLogin, map[string]any{})
	_, _ = svc.RecordAuthEvent(ctx, models.SubmissionSignup, map[string]any{})

	require.NoError(t, svc.MarkViewed(ctx, c.ID))
	assert.ErrorIs(t, svc.MarkViewed(ctx, 999), ErrNotFound)

	st, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionStats{Total: 4, Unread: 3, Contact: 1, Quote: 1, Auth: 2}, st)
}
