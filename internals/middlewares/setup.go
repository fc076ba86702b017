package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"evsu_library_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global dengan urutan tetap:
// request id → recover → access log → CORS → rate limit.
func SetupMiddlewares(app *fiber.App, requestTimeout time.Duration) {
	app.Use(RequestContext(requestTimeout))
	app.Use(RecoveryMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
