package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"QuickTech-Backend/src/models"
	"QuickTech-Backend/src/services/content"
)

func newCalc(t *testing.T) *Calculator {
	t.Helper()
	svc, err := content.NewService()
	require.NoError(t, err)
	return NewCalculator(svc.Catalog())
}

func TestEstimate(t *testing.T) {
	calc := newCalc(t)

	cases := []struct {
		name string
		req  models.EstimateRequest
		want int
	}{
		{"nothing selected", models.EstimateRequest{Pages: 5, Weeks: 4}, 0},
		{"base size", models.EstimateRequest{Services: []string{"web-dev"}, Addons: []string{"seo"}, Pages: 5, Weeks: 4}, 1298},
		// factor 2 -> x1.5
		{"double pages", models.EstimateRequest{Services: []string{"web-dev"}, Pages: 10, Weeks: 4}, 1499},
		// 1298 -> x1.2 = 1557.6
		{"urgent", models.EstimateRequest{Services: []string{"web-dev"}, Addons: []string{"seo"}, Pages: 5, Weeks: 4, Urgent: true}, 1558},
		// factor 0.1 -> x0.55 = 274.45
		{"smallest project", models.EstimateRequest{Services: []string{"social-media"}, Pages: 1, Weeks: 2}, 274},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			est, err := calc.Estimate(tc.req)
			require.NoError(t, err)
			assert.Equal(t, tc.want, est.Total)
		})
	}
}

func TestEstimateUnknownItem(t *testing.T) {
	calc := newCalc(t)
	_, err := calc.Estimate(models.EstimateRequest{Services: []string{"time-travel"}, Pages: 5, Weeks: 4})
	assert.ErrorIs(t, err, ErrUnknownItem)
}

func TestEstimateBreakdown(t *testing.T) {
	calc := newCalc(t)
	est, err := calc.Estimate(models.EstimateRequest{Services: []string{"ui-ux", "meta"}, Addons: []string{"analytics"}, Pages: 5, Weeks: 4})
	require.NoError(t, err)
	assert.Equal(t, 799+699+199, est.Subtotal)
	assert.Len(t, est.Breakdown, 3)
	assert.InDelta(t, 1.0, est.SizeFactor, 1e-9)
}
