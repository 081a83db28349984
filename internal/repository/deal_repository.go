package repository

import (
	"context"
	"errors"
	"fmt"

	"crm/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DealRepositoryInterface interface {
	List(ctx context.Context) ([]model.Deal, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Deal, error)
	Create(ctx context.Context, deal *model.Deal) error
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Deal, error)
	ReplaceOrder(ctx context.Context, deals []model.Deal) error
}

type DealRepository struct {
	db *gorm.DB
}

var _ DealRepositoryInterface = (*DealRepository)(nil)

func NewDealRepository(db *gorm.DB) *DealRepository {
	return &DealRepository{db: db}
}

// List returns every deal in canonical order.
func (r *DealRepository) List(ctx context.Context) ([]model.Deal, error) {
	var deals []model.Deal
	err := r.db.WithContext(ctx).Order("position").Order("created_at DESC").Find(&deals).Error
	return deals, err
}

func (r *DealRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Deal, error) {
	var deal model.Deal
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&deal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDealNotFound
		}
		return nil, err
	}
	return &deal, nil
}

// Create appends the deal at the end of the canonical sequence.
func (r *DealRepository) Create(ctx context.Context, deal *model.Deal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxPosition struct {
			Max int
		}
		if err := tx.Model(&model.Deal{}).
			Select("COALESCE(MAX(position), -1) as max").
			Scan(&maxPosition).Error; err != nil {
			return err
		}
		deal.Position = maxPosition.Max + 1
		return tx.Create(deal).Error
	})
}

// Update applies a partial update and returns the stored deal.
func (r *DealRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Deal, error) {
	result := r.db.WithContext(ctx).Model(&model.Deal{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrDealNotFound
	}
	return r.GetByID(ctx, id)
}

// ReplaceOrder stores the stage and position of every deal as given by its
// index in deals. The whole sequence is written in one transaction.
func (r *DealRepository) ReplaceOrder(ctx context.Context, deals []model.Deal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, deal := range deals {
			result := tx.Model(&model.Deal{}).Where("id = ?", deal.ID).
				Updates(map[string]interface{}{"stage": deal.Stage, "position": i})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("%w: %s", ErrDealNotFound, deal.ID)
			}
		}
		return nil
	})
}
