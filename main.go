package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"cureon/internal/api"
	"cureon/internal/models"
	"cureon/internal/repository"
	"cureon/internal/service"
	"cureon/internal/storage"
	"cureon/internal/utils"
	"cureon/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	utils.InitJWT(cfg.JWT.Secret, cfg.JWT.TTLHours)

	db, err := storage.NewPostgresDB(cfg.DB.Host, cfg.DB.User, cfg.DB.Password, cfg.DB.Name, cfg.DB.Port)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(
		&models.User{},
		&models.Appointment{},
		&models.Medicine{},
		&models.Order{},
		&models.OrderItem{},
		&models.Prescription{},
		&models.PrescriptionItem{},
	); err != nil {
		log.Fatalf("Failed to auto migrate database: %v", err)
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos)

	r := gin.Default()
	api.SetupRoutes(r, services)

	if err := r.Run(cfg.Server.Address); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
