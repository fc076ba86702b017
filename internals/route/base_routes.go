package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"evsu_library_backend/internals/configs"
	database "evsu_library_backend/internals/databases"
)

type healthDB struct {
	Status          string `json:"status"`
	OpenConnections int    `json:"open_connections"`
	InUse           int    `json:"in_use"`
}

func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(configs.AppName + " is running 📚")
	})

	// 503 bila DB tidak bisa di-ping; pool stats ikut untuk pantau koneksi
	app.Get("/health", func(c *fiber.Ctx) error {
		status, code := "OK", fiber.StatusOK
		dbInfo := healthDB{Status: "connected"}

		if err := database.Ping(db); err != nil {
			status, code = "DOWN", fiber.StatusServiceUnavailable
			dbInfo.Status = "unreachable"
		} else if sqlDB, err := db.DB(); err == nil {
			st := sqlDB.Stats()
			dbInfo.OpenConnections, dbInfo.InUse = st.OpenConnections, st.InUse
		}

		return c.Status(code).JSON(fiber.Map{
			"app":            configs.AppName,
			"status":         status,
			"database":       dbInfo,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
			"environment":    configs.GetEnv("RAILWAY_ENVIRONMENT", "local"),
		})
	})
}
