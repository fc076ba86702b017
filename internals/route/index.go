package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	assistantService "evsu_library_backend/internals/features/assistant/service"
	routeDetails "evsu_library_backend/internals/route/details"
)

var startTime = time.Now()

func SetupRoutes(app *fiber.App, db *gorm.DB, assistant *assistantService.AssistantService) {
	startTime = time.Now()

	log.Info("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	api := app.Group("/api")

	log.Info("[INFO] Mounting Catalog routes...")
	routeDetails.CatalogRoutes(api, db)

	log.Info("[INFO] Mounting User routes...")
	routeDetails.UserRoutes(api, db)

	log.Info("[INFO] Mounting Circulation routes...")
	routeDetails.CirculationRoutes(api, db)

	log.Info("[INFO] Mounting Assistant routes...")
	routeDetails.AssistantRoutes(api, assistant)
}
