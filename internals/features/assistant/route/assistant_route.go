package route

import (
	"github.com/gofiber/fiber/v2"

	assistantController "evsu_library_backend/internals/features/assistant/controller"
	"evsu_library_backend/internals/features/assistant/service"
)

// limiter khusus chat dipasang oleh pemanggil (lihat route/details)
func AssistantRoutes(r fiber.Router, svc *service.AssistantService, limit fiber.Handler) {
	ctl := assistantController.NewAssistantController(svc)
	if limit == nil {
		r.Post("/chat", ctl.Chat)
		return
	}
	r.Post("/chat", limit, ctl.Chat)
}
