package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"QuickTech-Backend/src/services/auth"
	"QuickTech-Backend/src/services/content"
	"QuickTech-Backend/src/services/submission"
)

// Deps คือ service ทั้งหมดที่ route ต้องใช้
type Deps struct {
	Submissions       *submission.Service
	Auth              *auth.Service
	Content           *content.Service
	Gatherer          prometheus.Gatherer
	Log               *zap.Logger
	AdminAuthRequired bool
}

func InitRoutes(app *fiber.App, deps Deps) {
	api := app.Group("/api")

	intakeRoutes(api, deps)
	adminRoutes(api, deps)
	authRoutes(api, deps)
	contentRoutes(api, deps)
	pricingRoutes(api, deps)

	// เปิดใช้งาน Swagger ที่ URL /swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	if deps.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	// Route เช็คว่า API ทำงานอยู่
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
