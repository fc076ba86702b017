package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	librarianRoutes "evsu_library_backend/internals/features/users/librarians/route"
	userRoutes "evsu_library_backend/internals/features/users/users/route"
)

// /api/users, /api/librarians
func UserRoutes(api fiber.Router, db *gorm.DB) {
	userRoutes.UserRoutes(api.Group("/users"), db)
	librarianRoutes.LibrarianRoutes(api.Group("/librarians"), db)
}
