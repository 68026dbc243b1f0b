package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ilmsadmin/zbase-pricing/pkg/enums"
)

// PriceListItem is one quantity-tiered price for a product inside a price
// list. (price_list_id, product_id, min_quantity) is unique.
type PriceListItem struct {
	ID                uuid.UUID          `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	PriceListID       uuid.UUID          `gorm:"column:price_list_id;type:uuid;not null;uniqueIndex:idx_price_list_items_tier"`
	ProductID         uuid.UUID          `gorm:"column:product_id;type:uuid;not null;uniqueIndex:idx_price_list_items_tier"`
	Price             decimal.Decimal    `gorm:"column:price;type:numeric(12,2);not null"`
	MinQuantity       decimal.Decimal    `gorm:"column:min_quantity;type:numeric(12,3);not null;default:1;uniqueIndex:idx_price_list_items_tier"`
	MaxQuantity       *decimal.Decimal   `gorm:"column:max_quantity;type:numeric(12,3)"`
	DiscountType      enums.DiscountType `gorm:"column:discount_type;not null;default:'percentage'"`
	DiscountValue     decimal.Decimal    `gorm:"column:discount_value;type:numeric(12,2);not null;default:0"`
	DiscountRate      decimal.Decimal    `gorm:"column:discount_rate;type:numeric(5,2);not null;default:0"`
	SpecialConditions *string            `gorm:"column:special_conditions"`
	IsActive          bool               `gorm:"column:is_active;not null;default:true"`
	Product           *Product           `gorm:"foreignKey:ProductID"`
	CreatedAt         time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}
