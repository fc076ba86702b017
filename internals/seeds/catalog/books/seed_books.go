package books

import (
	"context"
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"evsu_library_backend/internals/features/catalog/books/dto"
	"evsu_library_backend/internals/features/catalog/books/service"
	helper "evsu_library_backend/internals/helpers"
)

// SeedBooksFromJSON: format item sama dengan body POST /api/books.
// Buku yang ISBN-nya (atau title+author bila tanpa ISBN) sudah ada dilewati.
func SeedBooksFromJSON(db *gorm.DB, filePath string) (int, error) {
	log.Infof("📥 Reading books seed: %s", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("read seed file: %w", err)
	}
	var inputs []dto.BookCreateRequest
	if err := sonic.Unmarshal(file, &inputs); err != nil {
		return 0, fmt.Errorf("decode seed file: %w", err)
	}

	ctx := context.Background()
	svc := service.NewBookService(db)
	created := 0

	for i := range inputs {
		req := inputs[i]
		req.Normalize()
		if err := helper.Validate.Struct(&req); err != nil {
			log.Warnf("⚠️ Seed book #%d invalid, skipped: %v", i, err)
			continue
		}

		exists, err := alreadySeeded(ctx, svc, req)
		if err != nil {
			return created, err
		}
		if exists {
			log.Infof("ℹ️ Book '%s' already exists, skipped.", req.Title)
			continue
		}

		if _, err := svc.CreateBook(ctx, req); err != nil {
			log.Errorf("❌ Failed to insert book '%s': %v", req.Title, err)
			continue
		}
		created++
		log.Infof("✅ Inserted book '%s'", req.Title)
	}
	return created, nil
}

func alreadySeeded(ctx context.Context, svc *service.BookService, req dto.BookCreateRequest) (bool, error) {
	if req.ISBN != nil {
		return svc.Repo.ExistsByISBN(ctx, *req.ISBN)
	}
	return svc.Repo.ExistsByTitleAuthor(ctx, req.Title, req.Author)
}
