package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"traini8_backend/internals/features/centers/dto"
	"traini8_backend/internals/features/centers/service"
	helper "traini8_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type TrainingCenterController struct {
	Service  *service.TrainingCenterService
	Validate *validator.Validate
}

func New(svc *service.TrainingCenterService, v *validator.Validate) *TrainingCenterController {
	return &TrainingCenterController{Service: svc, Validate: v}
}

/* =========================
   Handlers
   ========================= */

// POST /api/v1/training-centers
func (ctrl *TrainingCenterController) CreateTrainingCenter(c *fiber.Ctx) error {
	var body dto.CreateTrainingCenterRequest
	if err := c.BodyParser(&body); err != nil {
		return writeDomainError(c, err)
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		log.Printf("[INFO] validation failed: %v", err)
		return helper.JsonValidationError(c, dto.ValidationMessages(err))
	}

	log.Printf("[INFO] received request to create training center: %s", body.CenterName)
	saved, err := ctrl.Service.Create(c.UserContext(), body.ToModel())
	if err != nil {
		return writeDomainError(c, err)
	}

	return helper.JsonCreated(c, dto.ToTrainingCenterDTO(*saved))
}

// GET /api/v1/training-centers?centerName=
func (ctrl *TrainingCenterController) GetAllTrainingCenters(c *fiber.Ctx) error {
	centerName := c.Query("centerName")

	centers, err := ctrl.Service.List(c.UserContext(), centerName)
	if err != nil {
		return writeDomainError(c, err)
	}

	// Empty result is a normal outcome; the body is always a JSON array.
	return helper.JsonOK(c, dto.ToTrainingCenterDTOs(centers))
}

/* =========================
   Domain error translator
   ========================= */

// writeDomainError maps every error leaving the service (or the decoder) to
// its status and envelope. Domain errors log at info, the rest at error.
func writeDomainError(c *fiber.Ctx, err error) error {
	var dup *service.DuplicateCenterCodeError
	if errors.As(err, &dup) {
		log.Printf("[INFO] duplicate center code error: %s", dup.Error())
		return helper.JsonError(c, fiber.StatusConflict, "Duplicate center code", dup.Error())
	}

	var invalid *service.InvalidInputError
	if errors.As(err, &invalid) {
		log.Printf("[INFO] invalid training center: %s", invalid.Message)
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input", invalid.Message)
	}

	log.Printf("[ERROR] unexpected error: %v", err)
	return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error", err.Error())
}
