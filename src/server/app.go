package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"QuickTech-Backend/src/middleware"
	"QuickTech-Backend/src/models"
	"QuickTech-Backend/src/routes"
)

type Options struct {
	AppName        string
	AllowedOrigins string
	// Production turns off panic stack traces on stderr.
	Production bool
}

// NewApp สร้าง fiber app พร้อม middleware และ routes ทั้งหมด
func NewApp(opts Options, deps routes.Deps) *fiber.App {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
		deps.Log = log
	}

	app := fiber.New(fiber.Config{
		AppName:      opts.AppName,
		ErrorHandler: errorHandler(log),
	})

	app.Use(recover.New(recover.Config{EnableStackTrace: !opts.Production}))
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(middleware.RequestLogger(log))

	origins := opts.AllowedOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false, // ❌ ต้องเป็น false ถ้าใช้ "*"
	}))

	routes.InitRoutes(app, deps)
	return app
}

// errorHandler renders unhandled errors as models.ErrorResponse. 5xx details stay in the log.
func errorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		message := "Internal server error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
			if status < fiber.StatusInternalServerError {
				message = fe.Message
			}
		}
		if status >= fiber.StatusInternalServerError {
			log.Error("unhandled error", zap.String("path", c.Path()), zap.Error(err))
		}

		return c.Status(status).JSON(models.ErrorResponse{Status: status, Message: message})
	}
}
