package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/Tejash429/course-platform-backend/internal/data/db"
	"github.com/Tejash429/course-platform-backend/internal/pkg/logger"
	"github.com/Tejash429/course-platform-backend/internal/schema"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, using process environment")
	}

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Fatal("Postgres init failed", "error", err)
	}
	if err := postgresService.AutoMigrateAll(); err != nil {
		log.Fatal("Postgres auto migration failed", "error", err)
	}

	declared, err := schema.Declared()
	if err != nil {
		log.Fatal("Failed to parse declared schema", "error", err)
	}
	tables := make([]string, 0, len(declared.Tables))
	for _, t := range declared.Tables {
		tables = append(tables, t.Name)
	}
	log.Info("Schema is in sync", "tables", tables)
}
