package config

import (
	"log"
	"os"

	"khanabook-pos/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens, read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "khanabook_pos_super_secret_2024"))

// WhatsApp Business API gateway; empty URL means dry-run logging
var (
	WhatsAppAPIURL = getEnv("WHATSAPP_API_URL", "")
	WhatsAppAPIKey = getEnv("WHATSAPP_API_KEY", "")
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(getEnv("POS_DB", "khanabook_pos.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.MenuItem{},
		&models.KitchenPreparationTime{},
		&models.Table{},
		&models.Order{},
		&models.OrderItem{},
		&models.Booking{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("Database connected and migrated successfully")
}
