package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"QuickTech-Backend/src/services/content"
	"QuickTech-Backend/src/utils"
)

type ContentController struct {
	content *content.Service
}

func NewContentController(svc *content.Service) *ContentController {
	return &ContentController{content: svc}
}

// ListPortfolio godoc
// @Summary      Portfolio projects
// @Tags         content
// @Produce      json
// @Success      200  {array}  models.PortfolioProject
// @Router       /portfolio [get]
func (h *ContentController) ListPortfolio(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.content.Portfolio())
}

// GetPortfolioProject godoc
// @Summary      One portfolio project by id or slug
// @Tags         content
// @Produce      json
// @Param        id   path      string  true  "Project id or slug"
// @Success      200  {object}  models.PortfolioProject
// @Failure      404  {object}  models.ErrorResponse
// @Router       /portfolio/{id} [get]
func (h *ContentController) GetPortfolioProject(c *fiber.Ctx) error {
	project, err := h.content.PortfolioProject(c.Params("id"))
	if errors.Is(err, content.ErrNotFound) {
		return utils.HandleError(c, fiber.StatusNotFound, "Project not found")
	}
	return c.Status(fiber.StatusOK).JSON(project)
}

// ListTestimonials godoc
// @Summary      Client testimonials
// @Tags         content
// @Produce      json
// @Success      200  {array}  models.Testimonial
// @Router       /testimonials [get]
func (h *ContentController) ListTestimonials(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.content.Testimonials())
}

// GetTestimonial godoc
// @Summary      One testimonial
// @Tags         content
// @Produce      json
// @Param        id   path      int  true  "Testimonial id"
// @Success      200  {object}  models.Testimonial
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /testimonials/{id} [get]
func (h *ContentController) GetTestimonial(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid testimonial id")
	}
	t, err := h.content.Testimonial(id)
	if errors.Is(err, content.ErrNotFound) {
		return utils.HandleError(c, fiber.StatusNotFound, "Testimonial not found")
	}
	return c.Status(fiber.StatusOK).JSON(t)
}
