package controller

import (
	"github.com/gofiber/fiber/v2"

	"evsu_library_backend/internals/features/assistant/dto"
	"evsu_library_backend/internals/features/assistant/grouping"
	"evsu_library_backend/internals/features/assistant/keywords"
	"evsu_library_backend/internals/features/assistant/service"
	helper "evsu_library_backend/internals/helpers"
)

type AssistantController struct {
	Service  *service.AssistantService
	Triggers keywords.Phrases
}

func NewAssistantController(svc *service.AssistantService) *AssistantController {
	return &AssistantController{Service: svc, Triggers: svc.Keywords.Table}
}

// POST /api/assistant/chat
func (h *AssistantController) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	res := h.Service.HandleQuery(c.UserContext(), req.Query)
	return helper.JsonOK(c, "Assistant response", dto.ChatResponse{
		Response: res.Response,
		Matches:  res.Matches,
		Books:    res.Books,
		HTML:     grouping.FormatHTMLResponse(res.Response, res.Books, h.Triggers),
	})
}
