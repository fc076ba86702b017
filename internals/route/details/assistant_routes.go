package details

import (
	"github.com/gofiber/fiber/v2"

	assistantRoutes "evsu_library_backend/internals/features/assistant/route"
	assistantService "evsu_library_backend/internals/features/assistant/service"
	"evsu_library_backend/internals/middlewares"
)

// /api/assistant
func AssistantRoutes(api fiber.Router, svc *assistantService.AssistantService) {
	assistantRoutes.AssistantRoutes(api.Group("/assistant"), svc, middlewares.AssistantRateLimiter())
}
