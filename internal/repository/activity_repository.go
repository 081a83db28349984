package repository

import (
	"context"
	"errors"

	"crm/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ActivityRepositoryInterface interface {
	List(ctx context.Context) ([]model.Activity, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Activity, error)
	Create(ctx context.Context, activity *model.Activity) error
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Activity, error)
}

type ActivityRepository struct {
	db *gorm.DB
}

var _ ActivityRepositoryInterface = (*ActivityRepository)(nil)

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// List returns activities by ascending date with the related deal or contact loaded.
func (r *ActivityRepository) List(ctx context.Context) ([]model.Activity, error) {
	var activities []model.Activity
	err := r.db.WithContext(ctx).
		Preload("Deal").
		Preload("Contact").
		Order("date").
		Find(&activities).Error
	return activities, err
}

func (r *ActivityRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Activity, error) {
	var activity model.Activity
	err := r.db.WithContext(ctx).
		Preload("Deal").
		Preload("Contact").
		Where("id = ?", id).
		First(&activity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}
	return &activity, nil
}

func (r *ActivityRepository) Create(ctx context.Context, activity *model.Activity) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(activity).Error
}

func (r *ActivityRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Activity, error) {
	result := r.db.WithContext(ctx).Model(&model.Activity{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrActivityNotFound
	}
	return r.GetByID(ctx, id)
}
