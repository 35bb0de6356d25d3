package routes

import (
	"github.com/gofiber/fiber/v2"

	"QuickTech-Backend/src/controllers"
)

func pricingRoutes(api fiber.Router, deps Deps) {
	ctrl := controllers.NewPricingController(deps.Content.Catalog())

	pricing := api.Group("/pricing")
	pricing.Get("/catalog", ctrl.GetCatalog)
	pricing.Post("/estimate", ctrl.Estimate)
}
