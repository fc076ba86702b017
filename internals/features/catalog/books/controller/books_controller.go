// internals/features/catalog/books/controller/books_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"evsu_library_backend/internals/constants"
	"evsu_library_backend/internals/features/catalog/books/dto"
	"evsu_library_backend/internals/features/catalog/books/repository"
	"evsu_library_backend/internals/features/catalog/books/service"
	helper "evsu_library_backend/internals/helpers"
)

type BooksController struct {
	Service *service.BookService
}

func NewBooksController(db *gorm.DB) *BooksController {
	return &BooksController{Service: service.NewBookService(db)}
}

/* =========================================================
   LIST - GET /api/books?q=&category=&page=&per_page=
   ========================================================= */
func (h *BooksController) List(c *fiber.Ctx) error {
	var q dto.BooksListQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query")
	}
	paging := helper.ResolvePaging(c, 20, 200)

	rows, total, err := h.Service.ListBooks(c.UserContext(), repository.ListFilter{
		Q:        q.Q,
		Category: q.Category,
		Offset:   paging.Offset,
		Limit:    paging.Limit,
	})
	if err != nil {
		log.Errorf("[BooksController] list: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, constants.Failed("fetch books"))
	}
	return helper.JsonList(c, "Books fetched successfully", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage, len(rows)))
}

/* =========================================================
   DETAIL - GET /api/books/:id
   ========================================================= */
func (h *BooksController) GetByID(c *fiber.Ctx) error {
	id, ok := helper.ParseUintParam(c, "id")
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid book id")
	}
	book, err := h.Service.GetBook(c.UserContext(), id)
	if err != nil {
		return h.fail(c, "get", err)
	}
	return helper.JsonOK(c, "Book fetched successfully", book)
}

/* =========================================================
   CREATE - POST /api/books
   ========================================================= */
func (h *BooksController) Create(c *fiber.Ctx) error {
	var req dto.BookCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	book, err := h.Service.CreateBook(c.UserContext(), req)
	if err != nil {
		return h.fail(c, "create", err)
	}
	return helper.JsonCreated(c, "Book created successfully", book)
}

/* =========================================================
   UPDATE - PUT /api/books/:id
   ========================================================= */
func (h *BooksController) Update(c *fiber.Ctx) error {
	id, ok := helper.ParseUintParam(c, "id")
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid book id")
	}
	var req dto.BookUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	book, err := h.Service.UpdateBook(c.UserContext(), id, req)
	if err != nil {
		return h.fail(c, "update", err)
	}
	return helper.JsonUpdated(c, "Book updated successfully", book)
}

/* =========================================================
   DELETE - DELETE /api/books/:id
   ========================================================= */
func (h *BooksController) Delete(c *fiber.Ctx) error {
	id, ok := helper.ParseUintParam(c, "id")
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid book id")
	}
	if err := h.Service.DeleteBook(c.UserContext(), id); err != nil {
		return h.fail(c, "delete", err)
	}
	return helper.JsonDeleted(c, "Book deleted successfully", fiber.Map{"id": id})
}

func (h *BooksController) fail(c *fiber.Ctx, op string, err error) error {
	switch {
	case errors.Is(err, service.ErrBookNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, constants.NotFound("Book"))
	case errors.Is(err, service.ErrISBNTaken):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, service.ErrBookInUse):
		return helper.JsonError(c, fiber.StatusConflict, "Book has circulation history and cannot be deleted")
	case errors.Is(err, service.ErrInvalidInventory):
		return helper.JsonValidationError(c, map[string][]string{"inventory": {err.Error()}})
	}
	log.Errorf("[BooksController] %s: %v", op, err)
	return helper.JsonError(c, fiber.StatusInternalServerError, constants.Failed(op+" book"))
}
