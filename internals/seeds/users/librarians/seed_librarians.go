package librarians

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"evsu_library_backend/internals/features/users/librarians/dto"
	"evsu_library_backend/internals/features/users/librarians/service"
	helper "evsu_library_backend/internals/helpers"
)

// SeedLibrariansFromJSON: email yang sudah terdaftar dilewati.
func SeedLibrariansFromJSON(db *gorm.DB, filePath string) (int, error) {
	log.Infof("📥 Reading librarians seed: %s", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("read seed file: %w", err)
	}
	var inputs []dto.LibrarianCreateRequest
	if err := sonic.Unmarshal(file, &inputs); err != nil {
		return 0, fmt.Errorf("decode seed file: %w", err)
	}

	svc := service.NewLibrarianService(db)
	created := 0
	for i := range inputs {
		req := inputs[i]
		req.Normalize()
		if err := helper.Validate.Struct(&req); err != nil {
			log.Warnf("⚠️ Seed librarian #%d invalid, skipped: %v", i, err)
			continue
		}
		if _, err := svc.Create(context.Background(), req); err != nil {
			if errors.Is(err, service.ErrEmailTaken) {
				log.Infof("ℹ️ Librarian '%s' already exists, skipped.", req.Email)
				continue
			}
			log.Errorf("❌ Failed to insert librarian '%s': %v", req.Email, err)
			continue
		}
		created++
		log.Infof("✅ Inserted librarian '%s'", req.Email)
	}
	return created, nil
}
