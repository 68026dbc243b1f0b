package pricelists

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ilmsadmin/zbase-pricing/pkg/db/models"
	"github.com/ilmsadmin/zbase-pricing/pkg/enums"
	"github.com/ilmsadmin/zbase-pricing/pkg/pagination"
)

// ListFilter narrows List queries. Search matches name/code/description
// case-insensitively; the other fields are exact matches.
type ListFilter struct {
	Search          string
	Status          *enums.PriceListStatus
	CustomerGroupID *uuid.UUID
}

// CustomerGroupSummary is the group projection attached to price lists.
type CustomerGroupSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ProductSummary is the catalog projection attached to price list items.
type ProductSummary struct {
	ID    uuid.UUID       `json:"id"`
	Name  string          `json:"name"`
	SKU   string          `json:"sku"`
	Price decimal.Decimal `json:"price"`
	Unit  *string         `json:"unit,omitempty"`
}

// PriceListDTO exposes a price list in API responses.
type PriceListDTO struct {
	ID              uuid.UUID             `json:"id"`
	Name            string                `json:"name"`
	Code            string                `json:"code"`
	Description     *string               `json:"description,omitempty"`
	CustomerGroupID uuid.UUID             `json:"customer_group_id"`
	StartDate       *time.Time            `json:"start_date,omitempty"`
	EndDate         *time.Time            `json:"end_date,omitempty"`
	Priority        int                   `json:"priority"`
	DiscountType    enums.DiscountType    `json:"discount_type"`
	Status          enums.PriceListStatus `json:"status"`
	ApplicableOn    enums.ApplicableOn    `json:"applicable_on"`
	IsDefault       bool                  `json:"is_default"`
	CreatedBy       *string               `json:"created_by,omitempty"`
	CustomerGroup   *CustomerGroupSummary `json:"customer_group,omitempty"`
	ItemCount       int64                 `json:"item_count"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

// PriceListItemDTO exposes one quantity tier in API responses.
type PriceListItemDTO struct {
	ID                uuid.UUID          `json:"id"`
	PriceListID       uuid.UUID          `json:"price_list_id"`
	ProductID         uuid.UUID          `json:"product_id"`
	Price             decimal.Decimal    `json:"price"`
	MinQuantity       decimal.Decimal    `json:"min_quantity"`
	MaxQuantity       *decimal.Decimal   `json:"max_quantity,omitempty"`
	DiscountType      enums.DiscountType `json:"discount_type"`
	DiscountValue     decimal.Decimal    `json:"discount_value"`
	DiscountRate      decimal.Decimal    `json:"discount_rate"`
	SpecialConditions *string            `json:"special_conditions,omitempty"`
	IsActive          bool               `json:"is_active"`
	Product           *ProductSummary    `json:"product,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

// ResolvedPriceListDTO is the read-path payload for a customer: the winning
// price list with its items eagerly attached.
type ResolvedPriceListDTO struct {
	PriceListDTO
	Items []PriceListItemDTO `json:"items"`
}

// PriceListPage is one page of price lists plus pagination metadata.
type PriceListPage struct {
	Data []PriceListDTO  `json:"data"`
	Meta pagination.Meta `json:"meta"`
}

// PriceListItemPage is one page of items plus pagination metadata.
type PriceListItemPage struct {
	Data []PriceListItemDTO `json:"data"`
	Meta pagination.Meta    `json:"meta"`
}

// CreatePriceListInput captures creation-time data for a price list.
type CreatePriceListInput struct {
	Name            string
	Code            string
	Description     *string
	CustomerGroupID uuid.UUID
	StartDate       *time.Time
	EndDate         *time.Time
	Priority        *int
	DiscountType    *enums.DiscountType
	Status          *enums.PriceListStatus
	ApplicableOn    *enums.ApplicableOn
	IsDefault       *bool
	CreatedBy       *string
}

// ToModel prepares the GORM model, supplying defaults for omitted fields.
func (c CreatePriceListInput) ToModel() *models.PriceList {
	model := &models.PriceList{
		Name:            c.Name,
		Code:            c.Code,
		Description:     c.Description,
		CustomerGroupID: c.CustomerGroupID,
		StartDate:       c.StartDate,
		EndDate:         c.EndDate,
		Priority:        0,
		DiscountType:    enums.DiscountTypePercentage,
		Status:          enums.PriceListStatusActive,
		ApplicableOn:    enums.ApplicableOnAll,
		IsDefault:       false,
		CreatedBy:       c.CreatedBy,
	}

	if c.Priority != nil {
		model.Priority = *c.Priority
	}
	if c.DiscountType != nil {
		model.DiscountType = *c.DiscountType
	}
	if c.Status != nil {
		model.Status = *c.Status
	}
	if c.ApplicableOn != nil {
		model.ApplicableOn = *c.ApplicableOn
	}
	if c.IsDefault != nil {
		model.IsDefault = *c.IsDefault
	}

	return model
}

// UpdatePriceListInput is a partial patch; nil fields stay unchanged.
// Pointer-to-pointer fields distinguish "clear" from "absent" for the
// nullable columns.
type UpdatePriceListInput struct {
	Name            *string
	Code            *string
	Description     **string
	CustomerGroupID *uuid.UUID
	StartDate       **time.Time
	EndDate         **time.Time
	Priority        *int
	DiscountType    *enums.DiscountType
	Status          *enums.PriceListStatus
	ApplicableOn    *enums.ApplicableOn
	IsDefault       *bool
}

// AddItemInput captures creation-time data for one quantity tier.
type AddItemInput struct {
	ProductID         uuid.UUID
	Price             decimal.Decimal
	MinQuantity       *decimal.Decimal
	MaxQuantity       *decimal.Decimal
	DiscountType      *enums.DiscountType
	DiscountValue     *decimal.Decimal
	DiscountRate      *decimal.Decimal
	SpecialConditions *string
	IsActive          *bool
}

// EffectiveMinQuantity applies the quantity-tier default of 1.
func (a AddItemInput) EffectiveMinQuantity() decimal.Decimal {
	if a.MinQuantity != nil {
		return *a.MinQuantity
	}
	return decimal.NewFromInt(1)
}

// ToModel prepares the GORM model, supplying defaults for omitted fields.
func (a AddItemInput) ToModel(priceListID uuid.UUID) *models.PriceListItem {
	model := &models.PriceListItem{
		PriceListID:       priceListID,
		ProductID:         a.ProductID,
		Price:             a.Price,
		MinQuantity:       a.EffectiveMinQuantity(),
		MaxQuantity:       a.MaxQuantity,
		DiscountType:      enums.DiscountTypePercentage,
		DiscountValue:     decimal.Zero,
		DiscountRate:      decimal.Zero,
		SpecialConditions: a.SpecialConditions,
		IsActive:          true,
	}

	if a.DiscountType != nil {
		model.DiscountType = *a.DiscountType
	}
	if a.DiscountValue != nil {
		model.DiscountValue = *a.DiscountValue
	}
	if a.DiscountRate != nil {
		model.DiscountRate = *a.DiscountRate
	}
	if a.IsActive != nil {
		model.IsActive = *a.IsActive
	}

	return model
}

// UpdateItemInput is a partial patch for one item. The product reference is
// deliberately absent: items cannot be re-keyed to a different product.
type UpdateItemInput struct {
	Price             *decimal.Decimal
	MinQuantity       *decimal.Decimal
	MaxQuantity       **decimal.Decimal
	DiscountType      *enums.DiscountType
	DiscountValue     *decimal.Decimal
	DiscountRate      *decimal.Decimal
	SpecialConditions **string
	IsActive          *bool
}

func groupSummary(group *models.CustomerGroup) *CustomerGroupSummary {
	if group == nil {
		return nil
	}
	return &CustomerGroupSummary{ID: group.ID, Name: group.Name}
}

func productSummary(product *models.Product) *ProductSummary {
	if product == nil {
		return nil
	}
	return &ProductSummary{
		ID:    product.ID,
		Name:  product.Name,
		SKU:   product.SKU,
		Price: product.Price,
		Unit:  product.Unit,
	}
}

// FromPriceListModel maps the persisted price list into a DTO.
func FromPriceListModel(m *models.PriceList, itemCount int64) *PriceListDTO {
	if m == nil {
		return nil
	}
	return &PriceListDTO{
		ID:              m.ID,
		Name:            m.Name,
		Code:            m.Code,
		Description:     m.Description,
		CustomerGroupID: m.CustomerGroupID,
		StartDate:       m.StartDate,
		EndDate:         m.EndDate,
		Priority:        m.Priority,
		DiscountType:    m.DiscountType,
		Status:          m.Status,
		ApplicableOn:    m.ApplicableOn,
		IsDefault:       m.IsDefault,
		CreatedBy:       m.CreatedBy,
		CustomerGroup:   groupSummary(m.CustomerGroup),
		ItemCount:       itemCount,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// FromItemModel maps the persisted item into a DTO.
func FromItemModel(m *models.PriceListItem) *PriceListItemDTO {
	if m == nil {
		return nil
	}
	return &PriceListItemDTO{
		ID:                m.ID,
		PriceListID:       m.PriceListID,
		ProductID:         m.ProductID,
		Price:             m.Price,
		MinQuantity:       m.MinQuantity,
		MaxQuantity:       m.MaxQuantity,
		DiscountType:      m.DiscountType,
		DiscountValue:     m.DiscountValue,
		DiscountRate:      m.DiscountRate,
		SpecialConditions: m.SpecialConditions,
		IsActive:          m.IsActive,
		Product:           productSummary(m.Product),
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// FromResolvedModel maps the winning price list plus its eager-loaded items.
func FromResolvedModel(m *models.PriceList) *ResolvedPriceListDTO {
	if m == nil {
		return nil
	}
	resolved := &ResolvedPriceListDTO{
		PriceListDTO: *FromPriceListModel(m, int64(len(m.Items))),
		Items:        make([]PriceListItemDTO, 0, len(m.Items)),
	}
	for i := range m.Items {
		resolved.Items = append(resolved.Items, *FromItemModel(&m.Items[i]))
	}
	return resolved
}
