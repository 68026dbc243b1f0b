package customers

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ilmsadmin/zbase-pricing/pkg/db/models"
	"github.com/ilmsadmin/zbase-pricing/pkg/pagination"
)

// Repository is the read-only surface over customers and their groups.
// Both entities are owned by the customer subsystem; pricing never
// mutates them.
type Repository interface {
	FindCustomerByID(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	FindGroupByID(ctx context.Context, id uuid.UUID) (*models.CustomerGroup, error)
	ListGroups(ctx context.Context, params pagination.Params) ([]models.CustomerGroup, int64, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a customers repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindCustomerByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.WithContext(ctx).
		Preload("Group").
		Where("id = ?", id).
		First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *repository) FindGroupByID(ctx context.Context, id uuid.UUID) (*models.CustomerGroup, error) {
	var group models.CustomerGroup
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&group).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *repository) ListGroups(ctx context.Context, params pagination.Params) ([]models.CustomerGroup, int64, error) {
	params = params.Normalize()

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.CustomerGroup{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var groups []models.CustomerGroup
	err := r.db.WithContext(ctx).
		Order("priority DESC").
		Order("name ASC").
		Offset(params.Offset()).
		Limit(params.Limit).
		Find(&groups).Error
	if err != nil {
		return nil, 0, err
	}
	return groups, total, nil
}
