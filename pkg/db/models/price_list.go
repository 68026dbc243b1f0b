package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/ilmsadmin/zbase-pricing/pkg/enums"
)

// PriceList groups customer-specific prices for one customer group. At most
// one list per group carries the is_default flag.
type PriceList struct {
	ID              uuid.UUID             `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name            string                `gorm:"column:name;not null"`
	Code            string                `gorm:"column:code;not null;uniqueIndex:idx_price_lists_code"`
	Description     *string               `gorm:"column:description"`
	CustomerGroupID uuid.UUID             `gorm:"column:customer_group_id;type:uuid;not null"`
	StartDate       *time.Time            `gorm:"column:start_date;type:date"`
	EndDate         *time.Time            `gorm:"column:end_date;type:date"`
	Priority        int                   `gorm:"column:priority;not null;default:0"`
	DiscountType    enums.DiscountType    `gorm:"column:discount_type;not null;default:'percentage'"`
	Status          enums.PriceListStatus `gorm:"column:status;not null;default:'active'"`
	ApplicableOn    enums.ApplicableOn    `gorm:"column:applicable_on;not null;default:'all'"`
	IsDefault       bool                  `gorm:"column:is_default;not null;default:false"`
	CreatedBy       *string               `gorm:"column:created_by"`
	CustomerGroup   *CustomerGroup        `gorm:"foreignKey:CustomerGroupID"`
	Items           []PriceListItem       `gorm:"foreignKey:PriceListID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time             `gorm:"column:updated_at;autoUpdateTime"`
}
