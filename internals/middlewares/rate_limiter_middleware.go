package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"evsu_library_backend/internals/configs"
	helper "evsu_library_backend/internals/helpers"
)

// perIP: fixed window 1 menit, key = prefix + IP.
func perIP(max int, prefix, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Next:       func(c *fiber.Ctx) bool { return c.Path() == "/health" },
		Max:        max,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return prefix + c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, message)
		},
	})
}

func GlobalRateLimiter() fiber.Handler {
	return perIP(configs.GetEnvInt("RATE_LIMIT_GLOBAL", 100), "", "Too many requests. Please try again later.")
}

// Lebih ketat: tiap pertanyaan bisa memanggil model remote.
func AssistantRateLimiter() fiber.Handler {
	return perIP(configs.GetEnvInt("RATE_LIMIT_ASSISTANT", 10), "assistant:", "Too many assistant questions. Please wait a minute.")
}
