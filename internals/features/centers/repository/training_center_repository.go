package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"traini8_backend/internals/features/centers/model"
)

// TrainingCenterRepository is the persistence contract for training centers.
// The unique index on training_center_code is the final arbiter of code
// uniqueness; ExistsByCode is advisory only.
type TrainingCenterRepository interface {
	Save(ctx context.Context, center *model.TrainingCenterModel) error
	ExistsByCode(ctx context.Context, code string) (bool, error)
	FindAll(ctx context.Context) ([]model.TrainingCenterModel, error)
	FindByNameContainingIgnoreCase(ctx context.Context, fragment string) ([]model.TrainingCenterModel, error)
	// Transaction runs fn against a repository bound to a single DB transaction.
	Transaction(ctx context.Context, fn func(txRepo TrainingCenterRepository) error) error
}

type trainingCenterRepository struct {
	DB *gorm.DB
}

func New(db *gorm.DB) TrainingCenterRepository {
	return &trainingCenterRepository{DB: db}
}

func (r *trainingCenterRepository) Save(ctx context.Context, center *model.TrainingCenterModel) error {
	return r.DB.WithContext(ctx).Create(center).Error
}

func (r *trainingCenterRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&model.TrainingCenterModel{}).
		Where("training_center_code = ?", code).
		Count(&count).Error
	return count > 0, err
}

func (r *trainingCenterRepository) FindAll(ctx context.Context) ([]model.TrainingCenterModel, error) {
	var centers []model.TrainingCenterModel
	err := r.baseQuery(ctx).Find(&centers).Error
	return centers, err
}

func (r *trainingCenterRepository) FindByNameContainingIgnoreCase(ctx context.Context, fragment string) ([]model.TrainingCenterModel, error) {
	var centers []model.TrainingCenterModel
	needle := "%" + escapeLike(fragment) + "%"
	err := r.baseQuery(ctx).
		Where(`training_center_name ILIKE ? ESCAPE '\'`, needle).
		Find(&centers).Error
	return centers, err
}

func (r *trainingCenterRepository) Transaction(ctx context.Context, fn func(txRepo TrainingCenterRepository) error) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&trainingCenterRepository{DB: tx})
	})
}

// baseQuery preloads courses in ordinal order so reads return them exactly as
// submitted; rows come back in stable id order.
func (r *trainingCenterRepository) baseQuery(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).
		Preload("Courses", func(db *gorm.DB) *gorm.DB {
			return db.Order("course_ordinal ASC")
		}).
		Order("training_center_id ASC")
}

// escapeLike neutralizes LIKE wildcards so the fragment matches literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
