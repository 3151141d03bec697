package main

import (
	"log"

	"github.com/The-Tech-Tentacles/CampusHub-sub000/internal/api/middleware"
	"github.com/The-Tech-Tentacles/CampusHub-sub000/internal/api/routes"
	"github.com/The-Tech-Tentacles/CampusHub-sub000/internal/application"
	"github.com/The-Tech-Tentacles/CampusHub-sub000/internal/config"
	"github.com/The-Tech-Tentacles/CampusHub-sub000/internal/config/db"
	"github.com/The-Tech-Tentacles/CampusHub-sub000/internal/cron"
	app "github.com/The-Tech-Tentacles/CampusHub-sub000/internal/domain/application"
	"github.com/The-Tech-Tentacles/CampusHub-sub000/internal/domain/audit"
	"github.com/The-Tech-Tentacles/CampusHub-sub000/internal/domain/department"
	"github.com/The-Tech-Tentacles/CampusHub-sub000/internal/domain/user"
	"github.com/The-Tech-Tentacles/CampusHub-sub000/internal/repository"
	"github.com/The-Tech-Tentacles/CampusHub-sub000/internal/storage"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	db.Init()
	storage.InitMinio()

	if err := db.DB.AutoMigrate(
		&department.Department{},
		&user.User{},
		&app.Application{},
		&audit.AuditLog{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err := config.ApplySeed(db.DB, config.SeedFile); err != nil {
		log.Fatalf("Failed to apply seed data: %v", err)
	}

	// Background audit retention task
	repos := repository.NewRepositories(db.DB)
	cron.StartCleanupTask(application.NewAuditService(repos))

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(router, db.DB)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
