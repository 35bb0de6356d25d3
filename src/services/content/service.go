package content

import (
	_ "embed"
	"errors"
	"fmt"
	"strconv"

	"github.com/gosimple/slug"
	"gopkg.in/yaml.v3"

	"QuickTech-Backend/src/models"
)

//go:embed seed.yaml
var seedYAML []byte

var ErrNotFound = errors.New("content not found")

type seed struct {
	Portfolio    []models.PortfolioProject `yaml:"portfolio"`
	Testimonials []models.Testimonial      `yaml:"testimonials"`
	Pricing      Catalog                   `yaml:"pricing"`
}

// Catalog is the price list used by the calculator.
type Catalog struct {
	Services []models.PricedItem `yaml:"services" json:"services"`
	Addons   []models.PricedItem `yaml:"addons" json:"addons"`
}

// Service serves the site's static marketing content. It is read-only after construction.
type Service struct {
	portfolio    []models.PortfolioProject
	testimonials []models.Testimonial
	catalog      Catalog
}

// NewService loads the embedded seed.
func NewService() (*Service, error) {
	return Parse(seedYAML)
}

// Parse builds a Service from a YAML document, assigning ids in document order.
func Parse(raw []byte) (*Service, error) {
	var s seed
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("parse content seed: %w", err)
	}
	for i := range s.Portfolio {
		s.Portfolio[i].ID = int64(i + 1)
		s.Portfolio[i].Slug = slug.Make(s.Portfolio[i].Title)
	}
	for i := range s.Testimonials {
		s.Testimonials[i].ID = int64(i + 1)
	}
	return &Service{
		portfolio:    s.Portfolio,
		testimonials: s.Testimonials,
		catalog:      s.Pricing,
	}, nil
}

func (s *Service) Portfolio() []models.PortfolioProject {
	out := make([]models.PortfolioProject, len(s.portfolio))
	copy(out, s.portfolio)
	return out
}

// PortfolioProject finds a project by numeric id or slug.
func (s *Service) PortfolioProject(key string) (models.PortfolioProject, error) {
	id, idErr := strconv.ParseInt(key, 10, 64)
	for _, p := range s.portfolio {
		if (idErr == nil && p.ID == id) || p.Slug == key {
			return p, nil
		}
	}
	return models.PortfolioProject{}, ErrNotFound
}

func (s *Service) Testimonials() []models.Testimonial {
	out := make([]models.Testimonial, len(s.testimonials))
	copy(out, s.testimonials)
	return out
}

func (s *Service) Testimonial(id int64) (models.Testimonial, error) {
	for _, t := range s.testimonials {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Testimonial{}, ErrNotFound
}

func (s *Service) Catalog() Catalog {
	return s.catalog
}
