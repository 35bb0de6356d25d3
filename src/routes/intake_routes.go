package routes

import (
	"github.com/gofiber/fiber/v2"

	"QuickTech-Backend/src/controllers"
)

// intakeRoutes ฟอร์มสาธารณะจากหน้าเว็บ
func intakeRoutes(api fiber.Router, deps Deps) {
	ctrl := controllers.NewIntakeController(deps.Submissions, deps.Log)

	api.Post("/contact", ctrl.CreateContact)
	api.Post("/quote", ctrl.CreateQuote)
	api.Post("/auth-event", ctrl.CreateAuthEvent)
}
