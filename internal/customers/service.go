package customers

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgerrors "github.com/ilmsadmin/zbase-pricing/pkg/errors"
	"github.com/ilmsadmin/zbase-pricing/pkg/pagination"
)

// Service exposes the customer group reference reads.
type Service interface {
	ListGroups(ctx context.Context, params pagination.Params) (*CustomerGroupPage, error)
	GetGroup(ctx context.Context, id uuid.UUID) (*CustomerGroupDTO, error)
}

type service struct {
	repo Repository
}

// NewService builds a customers service over the provided repository.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("customers repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListGroups(ctx context.Context, params pagination.Params) (*CustomerGroupPage, error) {
	groups, total, err := s.repo.ListGroups(ctx, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list customer groups")
	}

	page := &CustomerGroupPage{
		Data: make([]CustomerGroupDTO, 0, len(groups)),
		Meta: pagination.NewMeta(total, params),
	}
	for i := range groups {
		page.Data = append(page.Data, *FromGroupModel(&groups[i]))
	}
	return page, nil
}

func (s *service) GetGroup(ctx context.Context, id uuid.UUID) (*CustomerGroupDTO, error) {
	group, err := s.repo.FindGroupByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "customer group not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load customer group")
	}
	return FromGroupModel(group), nil
}
