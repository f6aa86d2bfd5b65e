package main

import (
	"context"
	"log"

	"worklog-service/internal/config"
	"worklog-service/internal/logging"
	"worklog-service/internal/metrics"
	"worklog-service/internal/repository"
	"worklog-service/internal/router"
	"worklog-service/internal/services"
	"worklog-service/internal/storage"

	"gorm.io/gorm"
)

func main() {
	cfg := InitConfig()
	logging.Init(logging.Config{Level: cfg.LogLevel, JSON: cfg.LogJSON})

	db := ConnectDatabase(cfg)
	repo := repository.NewWorkEntryRepository(db)
	MigrateDatabase(repo)

	m := metrics.NewMetrics()
	var uploader services.ObjectUploader
	if cfg.MinioEnabled() {
		uploader = InitMinIOClient(cfg)
	}
	exports := services.NewExportService(repo, uploader, m)
	if !exports.CanUpload() {
		log.Println("MinIO not configured, export uploads disabled")
	}

	app := router.NewRouter(router.Services{
		WorkEntries: services.NewWorkEntryService(repo, m),
		Exports:     exports,
		Metrics:     m,
	})

	routes := app.GetRoutes()
	log.Println("Registered routes:")
	for _, r := range routes {
		log.Printf("  %s %s\n", r.Method, r.Path)
	}

	log.Printf("Server listening on port %s", cfg.AppPort)
	log.Fatal(app.Listen(":" + cfg.AppPort))
}

func InitConfig() *config.Config {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	return cfg
}

func ConnectDatabase(cfg *config.Config) *gorm.DB {
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	log.Printf("Connected to %s store", cfg.DBDriver)
	return db
}

func MigrateDatabase(repo *repository.WorkEntryRepository) {
	if err := repo.EnsureSchema(context.Background()); err != nil {
		log.Fatalf("Database schema setup failed: %v", err)
	}
}

func InitMinIOClient(cfg *config.Config) *storage.ObjectStore {
	store, err := storage.NewMinioClient(context.Background(), cfg)
	if err != nil {
		log.Fatalf("MinIO client initialization failed: %v", err)
	}
	return store
}
