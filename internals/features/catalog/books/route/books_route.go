package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	booksController "evsu_library_backend/internals/features/catalog/books/controller"
)

// Panggil dengan: route.BooksRoutes(api.Group("/books"), db)
func BooksRoutes(r fiber.Router, db *gorm.DB) {
	ctl := booksController.NewBooksController(db)

	r.Get("/", ctl.List)          // 📄 list + pagination
	r.Get("/:id", ctl.GetByID)    // 📄 detail
	r.Post("/", ctl.Create)       // ➕ buat buku
	r.Put("/:id", ctl.Update)     // ✏️ update
	r.Delete("/:id", ctl.Delete)  // 🗑️ hapus
}
