package main

import (
	"fmt"
	"log"
	"os"

	"cofoundr-be/internal/catalog"
	"cofoundr-be/internal/model"
	"cofoundr-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM migration...")

	// Extensions and enums that AutoMigrate does not cover
	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS vector;`,

		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'user_role') THEN CREATE TYPE user_role AS ENUM ('user', 'admin'); END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'user_status') THEN CREATE TYPE user_status AS ENUM ('pending', 'active', 'blocked'); END IF; END $$;`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	models := []interface{}{
		&model.User{},
		&model.PasswordResetToken{},
		&model.UserProvider{},
		&model.EmailVerificationToken{},
		&model.UserRefreshToken{},
		&model.Profile{},
		&model.ProfileEmbedding{},
		&model.Pass{},
		&model.SectionResponse{},
		&model.Match{},
		&model.Message{},
		&model.CollaborationMethod{},
		&model.ActiveCollaboration{},
		&model.NotificationType{},
		&model.Notification{},
		&model.UserNotificationPreference{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// Custom method ids must start above the built-in catalog range.
	seqSQL := fmt.Sprintf(
		`DO $$ BEGIN IF (SELECT last_value FROM collaboration_methods_id_seq) < %d THEN PERFORM setval('collaboration_methods_id_seq', %d, false); END IF; END $$;`,
		catalog.CustomMethodIdStart, catalog.CustomMethodIdStart,
	)
	if err := db.Exec(seqSQL).Error; err != nil {
		log.Fatalf("Error: Failed to reserve the built-in method id range: %v", err)
	}

	log.Println("Success: Database migration completed via GORM.")
}
