package pricing

import (
	"errors"
	"fmt"
	"math"

	"QuickTech-Backend/src/models"
	"QuickTech-Backend/src/services/content"
)

var ErrUnknownItem = errors.New("unknown pricing item")

const (
	basePages    = 5
	baseWeeks    = 4
	sizeWeight   = 0.5
	urgentFactor = 1.2
)

type Calculator struct {
	services map[string]models.PricedItem
	addons   map[string]models.PricedItem
}

func NewCalculator(c content.Catalog) *Calculator {
	calc := &Calculator{
		services: make(map[string]models.PricedItem, len(c.Services)),
		addons:   make(map[string]models.PricedItem, len(c.Addons)),
	}
	for _, s := range c.Services {
		calc.services[s.ID] = s
	}
	for _, a := range c.Addons {
		calc.addons[a.ID] = a
	}
	return calc
}

// Estimate sums the selected items, scales by project size and applies the urgent fee.
func (c *Calculator) Estimate(req models.EstimateRequest) (models.Estimate, error) {
	var est models.Estimate

	for _, id := range req.Services {
		item, ok := c.services[id]
		if !ok {
			return models.Estimate{}, fmt.Errorf("%w: service %q", ErrUnknownItem, id)
		}
		est.Subtotal += item.Price
		est.Breakdown = append(est.Breakdown, models.EstimateLine{ID: item.ID, Name: item.Name, Price: item.Price})
	}
	for _, id := range req.Addons {
		item, ok := c.addons[id]
		if !ok {
			return models.Estimate{}, fmt.Errorf("%w: addon %q", ErrUnknownItem, id)
		}
		est.Subtotal += item.Price
		est.Breakdown = append(est.Breakdown, models.EstimateLine{ID: item.ID, Name: item.Name, Price: item.Price})
	}

	est.SizeFactor = (float64(req.Pages) / basePages) * (float64(req.Weeks) / baseWeeks)
	total := math.Round(float64(est.Subtotal) * (1 + (est.SizeFactor-1)*sizeWeight))
	if req.Urgent {
		total = math.Round(total * urgentFactor)
	}
	est.Total = int(total)
	return est, nil
}
