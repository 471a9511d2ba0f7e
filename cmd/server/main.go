package main

import (
	"log"

	"bibleplan/backend/internal/config"
	"bibleplan/backend/internal/db"
	"bibleplan/backend/internal/handler"
	"bibleplan/backend/internal/repository"
	"bibleplan/backend/internal/router"
	"bibleplan/backend/internal/service"
)

func main() {
	cfg := config.Load()

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer database.Close()

	if err := db.RunMigrations(database, cfg.MigrationsDir); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	userRepo := repository.NewUserRepository(database)
	scheduleRepo := repository.NewScheduleRepository(database)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	scheduleService := service.NewScheduleService(scheduleRepo)

	authHandler := handler.NewAuthHandler(authService)
	planHandler := handler.NewPlanHandler(scheduleService)

	engine := router.New(authService, authHandler, planHandler, cfg.CORSOrigins)
	log.Printf("backend listening on :%s", cfg.Port)
	if err := engine.Run(":" + cfg.Port); err != nil {
		log.Fatalf("run server: %v", err)
	}
}
