package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"evsu_library_backend/internals/constants"
	"evsu_library_backend/internals/features/users/users/dto"
	"evsu_library_backend/internals/features/users/users/repository"
	"evsu_library_backend/internals/features/users/users/service"
	helper "evsu_library_backend/internals/helpers"
)

type UsersController struct {
	Service *service.UserService
}

func NewUsersController(db *gorm.DB) *UsersController {
	return &UsersController{Service: service.NewUserService(db)}
}

// GET /api/users?q=&role=&page=&per_page=
func (h *UsersController) List(c *fiber.Ctx) error {
	var q dto.UsersListQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query")
	}
	paging := helper.ResolvePaging(c, 20, 200)

	rows, total, err := h.Service.ListUsers(c.UserContext(), repository.ListFilter{
		Q:      q.Q,
		Role:   q.Role,
		Offset: paging.Offset,
		Limit:  paging.Limit,
	})
	if err != nil {
		log.Errorf("[UsersController] list: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, constants.Failed("fetch users"))
	}
	return helper.JsonList(c, "Users fetched successfully", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage, len(rows)))
}

// GET /api/users/:id
func (h *UsersController) GetByID(c *fiber.Ctx) error {
	id, ok := helper.ParseUintParam(c, "id")
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}
	u, err := h.Service.GetUser(c.UserContext(), id)
	if err != nil {
		return h.fail(c, "get", err)
	}
	return helper.JsonOK(c, "User fetched successfully", u)
}

// POST /api/users
func (h *UsersController) Create(c *fiber.Ctx) error {
	var req dto.UserCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	u, err := h.Service.CreateUser(c.UserContext(), req)
	if err != nil {
		return h.fail(c, "create", err)
	}
	return helper.JsonCreated(c, "User created successfully", u)
}

// PUT /api/users/:id
func (h *UsersController) Update(c *fiber.Ctx) error {
	id, ok := helper.ParseUintParam(c, "id")
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}
	var req dto.UserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	u, err := h.Service.UpdateUser(c.UserContext(), id, req)
	if err != nil {
		return h.fail(c, "update", err)
	}
	return helper.JsonUpdated(c, "User updated successfully", u)
}

// DELETE /api/users/:id
func (h *UsersController) Delete(c *fiber.Ctx) error {
	id, ok := helper.ParseUintParam(c, "id")
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}
	if err := h.Service.DeleteUser(c.UserContext(), id); err != nil {
		return h.fail(c, "delete", err)
	}
	return helper.JsonDeleted(c, "User deleted successfully", fiber.Map{"id": id})
}

func (h *UsersController) fail(c *fiber.Ctx, op string, err error) error {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, constants.NotFound("User"))
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrStudentIDTaken),
		errors.Is(err, service.ErrDuplicateRecord):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	}
	log.Errorf("[UsersController] %s: %v", op, err)
	return helper.JsonError(c, fiber.StatusInternalServerError, constants.Failed(op+" user"))
}
