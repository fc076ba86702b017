// middlewares/cors.go

package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"evsu_library_backend/internals/configs"
)

const defaultAllowOrigins = "http://localhost:5173, http://localhost:3000, http://127.0.0.1:5500"

// CorsMiddleware membuat middleware CORS; origin dari CORS_ALLOW_ORIGINS (dipisah koma)
func CorsMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:     configs.GetEnv("CORS_ALLOW_ORIGINS", defaultAllowOrigins),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		AllowCredentials: false,
	})
}
