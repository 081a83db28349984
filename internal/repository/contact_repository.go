package repository

import (
	"context"
	"errors"
	"strings"

	"crm/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactRepositoryInterface interface {
	List(ctx context.Context, search string) ([]model.Contact, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Contact, error)
	Create(ctx context.Context, contact *model.Contact) error
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Contact, error)
}

type ContactRepository struct {
	db *gorm.DB
}

var _ ContactRepositoryInterface = (*ContactRepository)(nil)

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// List returns contacts newest first, keeping those whose name or company
// contains search when it is not empty.
func (r *ContactRepository) List(ctx context.Context, search string) ([]model.Contact, error) {
	var contacts []model.Contact
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if search != "" {
		pattern := "%" + escapeLike(search) + "%"
		q = q.Where("name ILIKE ? OR company ILIKE ?", pattern, pattern)
	}
	err := q.Find(&contacts).Error
	return contacts, err
}

func (r *ContactRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Contact, error) {
	var contact model.Contact
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&contact).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, err
	}
	return &contact, nil
}

func (r *ContactRepository) Create(ctx context.Context, contact *model.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

func (r *ContactRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Contact, error) {
	result := r.db.WithContext(ctx).Model(&model.Contact{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrContactNotFound
	}
	return r.GetByID(ctx, id)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
