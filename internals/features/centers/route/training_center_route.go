package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"traini8_backend/internals/features/centers/controller"
	"traini8_backend/internals/features/centers/dto"
	"traini8_backend/internals/features/centers/repository"
	"traini8_backend/internals/features/centers/service"
)

func TrainingCenterRoutes(api fiber.Router, db *gorm.DB) {
	svc := service.New(repository.New(db))
	ctrl := controller.New(svc, dto.NewValidator())

	centers := api.Group("/training-centers")
	centers.Post("/", ctrl.CreateTrainingCenter)   // ➕ register a new center
	centers.Get("/", ctrl.GetAllTrainingCenters)   // 📄 list, optionally filtered by name
}
