package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"evsu_library_backend/internals/constants"
	"evsu_library_backend/internals/features/circulation/transactions/dto"
	"evsu_library_backend/internals/features/circulation/transactions/repository"
	"evsu_library_backend/internals/features/circulation/transactions/service"
	helper "evsu_library_backend/internals/helpers"
)

type TransactionsController struct {
	Service *service.TransactionService
}

func NewTransactionsController(db *gorm.DB) *TransactionsController {
	return &TransactionsController{Service: service.NewTransactionService(db)}
}

// GET /api/transactions?user_id=&book_id=&type=&page=&per_page=
func (h *TransactionsController) List(c *fiber.Ctx) error {
	kind := strings.ToLower(strings.TrimSpace(c.Query("type")))
	if kind != "" && kind != constants.TransactionBorrow && kind != constants.TransactionReturn {
		return helper.JsonError(c, fiber.StatusBadRequest, "type must be borrow or return")
	}
	paging := helper.ResolvePaging(c, 20, 200)

	rows, total, err := h.Service.List(c.UserContext(), repository.ListFilter{
		UserID: helper.ParseUintQuery(c, "user_id"),
		BookID: helper.ParseUintQuery(c, "book_id"),
		Type:   kind,
		Offset: paging.Offset,
		Limit:  paging.Limit,
	})
	if err != nil {
		log.Errorf("[TransactionsController] list: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, constants.Failed("fetch transactions"))
	}
	return helper.JsonList(c, "Transactions fetched successfully", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage, len(rows)))
}

// GET /api/transactions/:id
func (h *TransactionsController) GetByID(c *fiber.Ctx) error {
	id, ok := helper.ParseUintParam(c, "id")
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid transaction id")
	}
	t, err := h.Service.Get(c.UserContext(), id)
	if err != nil {
		return h.fail(c, "get transaction", err)
	}
	return helper.JsonOK(c, "Transaction fetched successfully", t)
}

// POST /api/transactions/borrow
func (h *TransactionsController) Borrow(c *fiber.Ctx) error {
	req, err := parseCirculation(c)
	if err != nil {
		return err
	}
	if req == nil {
		return nil
	}
	out, err := h.Service.Borrow(c.UserContext(), req.UserID, req.BookID)
	if err != nil {
		return h.fail(c, "borrow book", err)
	}
	return helper.JsonCreated(c, "Book borrowed successfully", out)
}

// POST /api/transactions/return
func (h *TransactionsController) Return(c *fiber.Ctx) error {
	req, err := parseCirculation(c)
	if err != nil {
		return err
	}
	if req == nil {
		return nil
	}
	out, err := h.Service.Return(c.UserContext(), req.UserID, req.BookID)
	if err != nil {
		return h.fail(c, "return book", err)
	}
	return helper.JsonCreated(c, "Book returned successfully", out)
}

// nil request = response error sudah ditulis.
func parseCirculation(c *fiber.Ctx) (*dto.CirculationRequest, error) {
	var req dto.CirculationRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return nil, helper.ValidationError(c, err)
	}
	return &req, nil
}

func (h *TransactionsController) fail(c *fiber.Ctx, op string, err error) error {
	switch {
	case errors.Is(err, service.ErrTransactionNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, constants.NotFound("Transaction"))
	case errors.Is(err, service.ErrUserNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, constants.NotFound("User"))
	case errors.Is(err, service.ErrBookNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, constants.NotFound("Book"))
	case errors.Is(err, service.ErrNoCopiesAvailable), errors.Is(err, service.ErrNoOutstandingBorrow):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	}
	log.Errorf("[TransactionsController] %s: %v", op, err)
	return helper.JsonError(c, fiber.StatusInternalServerError, constants.Failed(op))
}
