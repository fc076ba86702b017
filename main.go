package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"evsu_library_backend/internals/configs"
	database "evsu_library_backend/internals/databases"
	"evsu_library_backend/internals/features/assistant/keywords"
	assistantService "evsu_library_backend/internals/features/assistant/service"
	"evsu_library_backend/internals/features/assistant/summary"
	helper "evsu_library_backend/internals/helpers"
	middlewares "evsu_library_backend/internals/middlewares"
	routes "evsu_library_backend/internals/route"
	"evsu_library_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		AppName: configs.AppName,
		// 🚀 JSON super cepat
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
		ErrorHandler:            helper.FiberErrorHandler,
	})

	// ⚙️ middleware dasar + performa
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                  // 304 caching

	middlewares.SetupMiddlewares(app, configs.RequestTimeout)

	// 🔌 DB connect + pool + migrate + warm-up
	database.ConnectDB()
	database.TunePool()
	if err := database.AutoMigrate(database.DB); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}
	database.WarmUpQueries()

	if configs.GetEnvBool("RUN_SEEDS", false) {
		seeds.RunAllSeeds(database.DB)
	}

	// 🤖 Asisten: keyword set + cache summary seumur proses
	set, err := keywords.Load(configs.KeywordsFile)
	if err != nil {
		log.Warnf("⚠️ Keyword file not usable, using defaults: %v", err)
	}
	assistant := assistantService.NewFromConfig(database.DB, set, summary.NewMemoryStore())

	// ✅ Routes
	routes.SetupRoutes(app, database.DB, assistant)

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = configs.RequestTimeout + 5*time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := configs.GetEnv("PORT", "3000")

	// Start server non-blocking
	go func() {
		log.Infof("✅ Listening on :%s", port)
		if err := app.Listen(fmt.Sprintf("0.0.0.0:%s", port)); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
