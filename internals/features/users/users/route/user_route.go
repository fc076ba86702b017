package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "evsu_library_backend/internals/features/users/users/controller"
)

// Panggil dengan: route.UserRoutes(api.Group("/users"), db)
func UserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := userController.NewUsersController(db)

	r.Get("/", ctl.List)
	r.Get("/:id", ctl.GetByID)
	r.Post("/", ctl.Create)
	r.Put("/:id", ctl.Update)
	r.Delete("/:id", ctl.Delete)
}
