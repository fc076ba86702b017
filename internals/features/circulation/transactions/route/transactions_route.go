package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	txController "evsu_library_backend/internals/features/circulation/transactions/controller"
)

// Panggil dengan: route.TransactionRoutes(api.Group("/transactions"), db)
func TransactionRoutes(r fiber.Router, db *gorm.DB) {
	ctl := txController.NewTransactionsController(db)

	r.Get("/", ctl.List)
	r.Post("/borrow", ctl.Borrow)
	r.Post("/return", ctl.Return)
	r.Get("/:id", ctl.GetByID)
}
