package routes

import (
	"github.com/gofiber/fiber/v2"

	"QuickTech-Backend/src/controllers"
	"QuickTech-Backend/src/middleware"
)

// adminRoutes กำหนดเส้นทางสำหรับ Admin dashboard
func adminRoutes(api fiber.Router, deps Deps) {
	ctrl := controllers.NewAdminController(deps.Submissions)

	admin := api.Group("/admin")
	if deps.AdminAuthRequired {
		admin.Use(middleware.AuthJWT(deps.Auth), middleware.RequireAdmin)
	}

	admin.Get("/submissions", ctrl.ListSubmissions)
	admin.Get("/submissions/stats", ctrl.SubmissionStats) // ต้องมาก่อน /:id
	admin.Get("/submissions/:id", ctrl.GetSubmission)
	admin.Put("/submissions/:id/view", ctrl.MarkViewed)
}
