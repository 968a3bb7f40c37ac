package main

import (
	"log"
	"os"

	"ai-procurement-be/internal/entity"
	"ai-procurement-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM Migration...")

	// 3. Pre-Migration: Extensions
	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	}
	for _, stmt := range setupSQL {
		if err := db.Exec(stmt).Error; err != nil {
			log.Fatalf("Error: Failed to execute setup statement %q: %v", stmt, err)
		}
	}

	// 4. AutoMigrate Schema
	if err := db.AutoMigrate(&entity.PurchaseRequestRecord{}); err != nil {
		log.Fatal("Error: Migration failed:", err)
	}

	log.Println("✅ Migration completed successfully")
}
