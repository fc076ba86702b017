package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"evsu_library_backend/internals/constants"
	"evsu_library_backend/internals/features/users/librarians/dto"
	"evsu_library_backend/internals/features/users/librarians/service"
	helper "evsu_library_backend/internals/helpers"
)

type LibrariansController struct {
	Service *service.LibrarianService
}

func NewLibrariansController(db *gorm.DB) *LibrariansController {
	return &LibrariansController{Service: service.NewLibrarianService(db)}
}

func (h *LibrariansController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)
	rows, total, err := h.Service.List(c.UserContext(), c.Query("q"), paging.Offset, paging.Limit)
	if err != nil {
		log.Errorf("[LibrariansController] list: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, constants.Failed("fetch librarians"))
	}
	return helper.JsonList(c, "Librarians fetched successfully", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage, len(rows)))
}

func (h *LibrariansController) GetByID(c *fiber.Ctx) error {
	id, ok := helper.ParseUintParam(c, "id")
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid librarian id")
	}
	l, err := h.Service.Get(c.UserContext(), id)
	if err != nil {
		return h.fail(c, "get", err)
	}
	return helper.JsonOK(c, "Librarian fetched successfully", l)
}

func (h *LibrariansController) Create(c *fiber.Ctx) error {
	var req dto.LibrarianCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	l, err := h.Service.Create(c.UserContext(), req)
	if err != nil {
		return h.fail(c, "create", err)
	}
	return helper.JsonCreated(c, "Librarian created successfully", l)
}

func (h *LibrariansController) Update(c *fiber.Ctx) error {
	id, ok := helper.ParseUintParam(c, "id")
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid librarian id")
	}
	var req dto.LibrarianUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	l, err := h.Service.Update(c.UserContext(), id, req)
	if err != nil {
		return h.fail(c, "update", err)
	}
	return helper.JsonUpdated(c, "Librarian updated successfully", l)
}

func (h *LibrariansController) Delete(c *fiber.Ctx) error {
	id, ok := helper.ParseUintParam(c, "id")
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid librarian id")
	}
	if err := h.Service.Delete(c.UserContext(), id); err != nil {
		return h.fail(c, "delete", err)
	}
	return helper.JsonDeleted(c, "Librarian deleted successfully", fiber.Map{"id": id})
}

func (h *LibrariansController) fail(c *fiber.Ctx, op string, err error) error {
	switch {
	case errors.Is(err, service.ErrLibrarianNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, constants.NotFound("Librarian"))
	case errors.Is(err, service.ErrEmailTaken):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	}
	log.Errorf("[LibrariansController] %s: %v", op, err)
	return helper.JsonError(c, fiber.StatusInternalServerError, constants.Failed(op+" librarian"))
}
