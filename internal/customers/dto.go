package customers

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ilmsadmin/zbase-pricing/pkg/db/models"
	"github.com/ilmsadmin/zbase-pricing/pkg/pagination"
)

// CustomerGroupDTO exposes a customer group in API responses.
type CustomerGroupDTO struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	PaymentTerms *string         `json:"payment_terms,omitempty"`
	DiscountRate decimal.Decimal `json:"discount_rate"`
	CreditLimit  decimal.Decimal `json:"credit_limit"`
	Priority     int             `json:"priority"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// CustomerGroupPage is one page of groups plus pagination metadata.
type CustomerGroupPage struct {
	Data []CustomerGroupDTO `json:"data"`
	Meta pagination.Meta    `json:"meta"`
}

// FromGroupModel maps the persisted group into a DTO.
func FromGroupModel(m *models.CustomerGroup) *CustomerGroupDTO {
	if m == nil {
		return nil
	}
	return &CustomerGroupDTO{
		ID:           m.ID,
		Name:         m.Name,
		PaymentTerms: m.PaymentTerms,
		DiscountRate: m.DiscountRate,
		CreditLimit:  m.CreditLimit,
		Priority:     m.Priority,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
