package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	librarianController "evsu_library_backend/internals/features/users/librarians/controller"
)

func LibrarianRoutes(r fiber.Router, db *gorm.DB) {
	ctl := librarianController.NewLibrariansController(db)

	r.Get("/", ctl.List)
	r.Get("/:id", ctl.GetByID)
	r.Post("/", ctl.Create)
	r.Put("/:id", ctl.Update)
	r.Delete("/:id", ctl.Delete)
}
