package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerGroup is reference data owned by the customer subsystem; the
// pricing engine only reads it.
type CustomerGroup struct {
	ID           uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name         string          `gorm:"column:name;not null"`
	PaymentTerms *string         `gorm:"column:payment_terms"`
	DiscountRate decimal.Decimal `gorm:"column:discount_rate;type:numeric(5,2);not null;default:0"`
	CreditLimit  decimal.Decimal `gorm:"column:credit_limit;type:numeric(14,2);not null;default:0"`
	Priority     int             `gorm:"column:priority;not null;default:0"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
