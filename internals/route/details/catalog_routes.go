package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bookRoutes "evsu_library_backend/internals/features/catalog/books/route"
)

// /api/books
func CatalogRoutes(api fiber.Router, db *gorm.DB) {
	bookRoutes.BooksRoutes(api.Group("/books"), db)
}
