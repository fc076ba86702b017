package seeds

import (
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"evsu_library_backend/internals/configs"
	books "evsu_library_backend/internals/seeds/catalog/books"
	librarians "evsu_library_backend/internals/seeds/users/librarians"
)

const (
	defaultBooksFile      = "internals/seeds/catalog/books/data_books.json"
	defaultLibrariansFile = "internals/seeds/users/librarians/data_librarians.json"
)

// RunAllSeeds idempoten; error per seed dicatat, tidak menghentikan server.
func RunAllSeeds(db *gorm.DB) {
	//* Catalog
	if n, err := books.SeedBooksFromJSON(db, configs.GetEnv("SEED_BOOKS_FILE", defaultBooksFile)); err != nil {
		log.Errorf("❌ Seed books: %v", err)
	} else {
		log.Infof("🌱 Seeded %d books", n)
	}

	//* Staff
	if n, err := librarians.SeedLibrariansFromJSON(db, configs.GetEnv("SEED_LIBRARIANS_FILE", defaultLibrariansFile)); err != nil {
		log.Errorf("❌ Seed librarians: %v", err)
	} else {
		log.Infof("🌱 Seeded %d librarians", n)
	}
}
