package logger

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"evsu_library_backend/internals/configs"
)

// Access log per request; probe /health tidak dicatat.
func LoggerMiddleware() fiber.Handler {
	return logger.New(logger.Config{
		Next:       func(c *fiber.Ctx) bool { return c.Path() == "/health" },
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   configs.GetEnv("LOG_TIMEZONE", "Asia/Manila"),
		Format:     "[${time}] ${locals:reqid} ${ip} ${method} ${path} ${status} ${latency} ${bytesSent}B\n",
	})
}
