package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	txRoutes "evsu_library_backend/internals/features/circulation/transactions/route"
)

// /api/transactions
func CirculationRoutes(api fiber.Router, db *gorm.DB) {
	txRoutes.TransactionRoutes(api.Group("/transactions"), db)
}
