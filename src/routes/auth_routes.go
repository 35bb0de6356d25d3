package routes

import (
	"github.com/gofiber/fiber/v2"

	"QuickTech-Backend/src/controllers"
	"QuickTech-Backend/src/middleware"
)

// authRoutes กำหนด route สำหรับ auth (login/signup/me)
func authRoutes(api fiber.Router, deps Deps) {
	ctrl := controllers.NewAuthController(deps.Auth)

	auth := api.Group("/auth")
	auth.Post("/login", ctrl.Login) // 🔐 login
	auth.Post("/signup", ctrl.Signup)
	auth.Get("/me", middleware.AuthJWT(deps.Auth), ctrl.Me)
}
