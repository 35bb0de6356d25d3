package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedSeed(t *testing.T) {
	svc, err := NewService()
	require.NoError(t, err)

	projects := svc.Portfolio()
	require.Len(t, projects, 6)
	assert.Equal(t, int64(1), projects[0].ID)
	assert.Equal(t, "luxestyle-rebrand", projects[0].Slug)

	require.Len(t, svc.Testimonials(), 3)
	assert.Len(t, svc.Catalog().Services, 6)
	assert.Len(t, svc.Catalog().Addons, 4)
}

func TestPortfolioLookup(t *testing.T) {
	svc, err := NewService()
	require.NoError(t, err)

	byID, err := svc.PortfolioProject("3")
	require.NoError(t, err)
	bySlug, err := svc.PortfolioProject("techsmart-seo")
	require.NoError(t, err)
	assert.Equal(t, byID, bySlug)

	_, err = svc.PortfolioProject("99")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTestimonialLookup(t *testing.T) {
	svc, err := NewService()
	require.NoError(t, err)

	got, err := svc.Testimonial(2)
	require.NoError(t, err)
	assert.Equal(t, "TechStart", got.Company)

	_, err = svc.Testimonial(0)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestParseRejectsBadYAML(t *testing.T) {
	_, err := Parse([]byte("portfolio: [unclosed"))
	assert.Error(t, err)
}
