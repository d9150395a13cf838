package service

import (
	"context"
	"log"
	"strings"
	"time"

	"traini8_backend/internals/features/centers/model"
	"traini8_backend/internals/features/centers/repository"
)

type TrainingCenterService struct {
	Repo repository.TrainingCenterRepository
}

func New(repo repository.TrainingCenterRepository) *TrainingCenterService {
	return &TrainingCenterService{Repo: repo}
}

// Create persists a new training center. The probe, timestamp assignment and
// insert run in one transaction; a unique violation slipping past the probe
// (concurrent create with the same code) is translated to duplicate-code.
func (s *TrainingCenterService) Create(ctx context.Context, center *model.TrainingCenterModel) (*model.TrainingCenterModel, error) {
	if center == nil {
		log.Printf("[ERROR] received nil training center")
		return nil, &InvalidInputError{Message: "Training center cannot be null"}
	}
	if center.TrainingCenterCode == "" {
		log.Printf("[ERROR] center code is empty for training center %q", center.TrainingCenterName)
		return nil, &InvalidInputError{Message: "Center code cannot be null"}
	}

	log.Printf("[INFO] attempting to create training center with code: %s", center.TrainingCenterCode)
	err := s.Repo.Transaction(ctx, func(txRepo repository.TrainingCenterRepository) error {
		exists, err := txRepo.ExistsByCode(ctx, center.TrainingCenterCode)
		if err != nil {
			return err
		}
		if exists {
			log.Printf("[WARN] duplicate center code detected: %s", center.TrainingCenterCode)
			return &DuplicateCenterCodeError{CenterCode: center.TrainingCenterCode}
		}

		// Server owns the timestamp; whatever the client sent is discarded.
		center.TrainingCenterCreatedOn = time.Now().UnixMilli()

		if err := txRepo.Save(ctx, center); err != nil {
			if isUniqueViolation(err) {
				log.Printf("[WARN] duplicate center code on insert (lost the race): %s", center.TrainingCenterCode)
				return &DuplicateCenterCodeError{CenterCode: center.TrainingCenterCode}
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[INFO] training center created with id: %d", center.TrainingCenterID)
	return center, nil
}

// List returns all centers, or only those whose name contains the fragment
// (case-insensitive). A missing or whitespace-only fragment means no filter.
func (s *TrainingCenterService) List(ctx context.Context, centerName string) ([]model.TrainingCenterModel, error) {
	if strings.TrimSpace(centerName) != "" {
		centers, err := s.Repo.FindByNameContainingIgnoreCase(ctx, centerName)
		if err != nil {
			return nil, err
		}
		log.Printf("[INFO] found %d centers matching filter: %s", len(centers), centerName)
		return centers, nil
	}

	centers, err := s.Repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	log.Printf("[INFO] returning all %d training centers", len(centers))
	return centers, nil
}
