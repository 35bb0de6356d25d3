package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"QuickTech-Backend/src/models"
	"QuickTech-Backend/src/services/content"
	"QuickTech-Backend/src/services/pricing"
	"QuickTech-Backend/src/utils"
)

type PricingController struct {
	catalog    content.Catalog
	calculator *pricing.Calculator
}

func NewPricingController(catalog content.Catalog) *PricingController {
	return &PricingController{catalog: catalog, calculator: pricing.NewCalculator(catalog)}
}

// GetCatalog godoc
// @Summary      Services and add-ons with prices
// @Tags         pricing
// @Produce      json
// @Success      200  {object}  content.Catalog
// @Router       /pricing/catalog [get]
func (h *PricingController) GetCatalog(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.catalog)
}

// Estimate godoc
// @Summary      Estimate a project price
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        body body models.EstimateRequest true "Selection"
// @Success      200  {object}  models.Estimate
// @Failure      400  {object}  models.ErrorResponse
// @Router       /pricing/estimate [post]
func (h *PricingController) Estimate(c *fiber.Ctx) error {
	var req models.EstimateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if errs := utils.ValidateStruct(req); errs != nil {
		return utils.HandleValidation(c, errs)
	}

	est, err := h.calculator.Estimate(req)
	if errors.Is(err, pricing.ErrUnknownItem) {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to estimate price")
	}
	return c.Status(fiber.StatusOK).JSON(est)
}
