package middlewares

import (
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// RecoveryMiddleware menangkap panic; response 500 ditulis oleh ErrorHandler app.
func RecoveryMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e any) {
			log.Errorf("[PANIC] id=%v %s %s: %v\n%s", c.Locals(LocalRequestID), c.Method(), c.Path(), e, debug.Stack())
		},
	})
}
