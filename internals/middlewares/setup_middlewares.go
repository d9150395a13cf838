package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// SetupMiddlewares registers the ambient middleware chain.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
	app.Use(RequestLoggerMiddleware())
}
