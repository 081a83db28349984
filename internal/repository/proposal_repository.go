package repository

import (
	"context"
	"errors"

	"crm/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProposalRepositoryInterface interface {
	List(ctx context.Context) ([]model.Proposal, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Proposal, error)
	Create(ctx context.Context, proposal *model.Proposal) error
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Proposal, error)
}

type ProposalRepository struct {
	db *gorm.DB
}

var _ ProposalRepositoryInterface = (*ProposalRepository)(nil)

func NewProposalRepository(db *gorm.DB) *ProposalRepository {
	return &ProposalRepository{db: db}
}

// List returns proposals newest first with their deal loaded for title and company.
func (r *ProposalRepository) List(ctx context.Context) ([]model.Proposal, error) {
	var proposals []model.Proposal
	err := r.db.WithContext(ctx).Preload("Deal").Order("created_at DESC").Find(&proposals).Error
	return proposals, err
}

func (r *ProposalRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Proposal, error) {
	var proposal model.Proposal
	if err := r.db.WithContext(ctx).Preload("Deal").Where("id = ?", id).First(&proposal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProposalNotFound
		}
		return nil, err
	}
	return &proposal, nil
}

func (r *ProposalRepository) Create(ctx context.Context, proposal *model.Proposal) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(proposal).Error
}

func (r *ProposalRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Proposal, error) {
	result := r.db.WithContext(ctx).Model(&model.Proposal{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrProposalNotFound
	}
	return r.GetByID(ctx, id)
}
