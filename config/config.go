package config

import (
	"log"
	"os"
	"path/filepath"

	"restaurant-reservation-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign both access and refresh tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "reservation_super_secret_2024"))

// PhotoDir is where uploaded restaurant/food photos land
var PhotoDir = getEnv("PHOTO_DIR", filepath.Join("media", "photos"))

// TelegramBotToken for booking notifications — empty disables sending
var TelegramBotToken = os.Getenv("TELEGRAM_BOT_TOKEN")

// Eskiz SMS gateway settings — empty credentials disable sending
var (
	EskizEmail    = os.Getenv("ESKIZ_EMAIL")
	EskizPassword = os.Getenv("ESKIZ_PASSWORD")
	EskizAPIURL   = getEnv("ESKIZ_API_URL", "https://notify.eskiz.uz")
	EskizSender   = getEnv("ESKIZ_SENDER", "4546")
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB() {
	dsn := getEnv("DB_PATH", "reservations.db")
	var err error
	DB, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	if err := os.MkdirAll(PhotoDir, 0o755); err != nil {
		log.Fatal("Failed to create photo directory:", err)
	}

	log.Println("✅ Database connected and migrated successfully")
}

// Migrate runs auto-migration for all models. Tests call it against
// their own in-memory databases.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.RestaurantOwner{},
		&models.RestaurantPhoto{},
		&models.MenuCategory{},
		&models.MenuItem{},
		&models.Reservation{},
		&models.Review{},
		&models.FavoriteRestaurant{},
		&models.Notification{},
	)
}
