package database

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"evsu_library_backend/internals/configs"
	bookModel "evsu_library_backend/internals/features/catalog/books/model"
	txModel "evsu_library_backend/internals/features/circulation/transactions/model"
	librarianModel "evsu_library_backend/internals/features/users/librarians/model"
	userModel "evsu_library_backend/internals/features/users/users/model"
)

var DB *gorm.DB

// DSN memakai DATABASE_URL kalau ada, selain itu dirakit dari DB_*.
func DSN() string {
	if configs.DatabaseURL != "" {
		return configs.DatabaseURL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=evsu_library",
		configs.GetEnv("DB_USER"),
		configs.GetEnv("DB_PASSWORD"),
		configs.GetEnv("DB_HOST", "localhost"),
		configs.GetEnv("DB_PORT", "5432"),
		configs.GetEnv("DB_NAME"),
		configs.GetEnv("DB_SSLMODE", "disable"),
	)
}

func ConnectDB() {
	log.Info("🔌 Connecting to PostgreSQL...")

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  DSN(),
		PreferSimpleProtocol: true, // cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger:         configs.NewGormLogger(),
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	DB = db
	log.Info("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Errorf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(configs.GetEnvInt("DB_MAX_OPEN_CONNS", 20))
	sqlDB.SetMaxIdleConns(configs.GetEnvInt("DB_MAX_IDLE_CONNS", 10))
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond) // beri waktu server naik
		if err := Ping(DB); err != nil {
			log.Warnf("warm-up ping err: %v", err)
			return
		}
		// query katalog paling sering dipakai oleh asisten
		DB.Exec("SELECT 1 FROM books LIMIT 1")
	}()
}

func Ping(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database not initialized")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// AutoMigrate membuat tabel yang belum ada (urutan mengikuti foreign key).
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&bookModel.BookTypeModel{},
		&bookModel.BookLocationModel{},
		&bookModel.BookModel{},
		&bookModel.BookInventoryModel{},
		&bookModel.BookCallNumberModel{},
		&bookModel.BookAcquisitionModel{},
		&userModel.UserModel{},
		&librarianModel.LibrarianModel{},
		&txModel.TransactionModel{},
	)
}
