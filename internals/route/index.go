package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	centerRoutes "traini8_backend/internals/features/centers/route"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== PUBLIC API v1 =====================
	log.Println("[INFO] Setting up TrainingCenterRoutes...")
	v1 := app.Group("/api/v1")
	centerRoutes.TrainingCenterRoutes(v1, db)
}
