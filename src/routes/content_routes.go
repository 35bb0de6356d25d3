package routes

import (
	"github.com/gofiber/fiber/v2"

	"QuickTech-Backend/src/controllers"
)

func contentRoutes(api fiber.Router, deps Deps) {
	ctrl := controllers.NewContentController(deps.Content)

	api.Get("/portfolio", ctrl.ListPortfolio)
	api.Get("/portfolio/:id", ctrl.GetPortfolioProject) // id หรือ slug
	api.Get("/testimonials", ctrl.ListTestimonials)
	api.Get("/testimonials/:id", ctrl.GetTestimonial)
}
