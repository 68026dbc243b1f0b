package pricelists

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ilmsadmin/zbase-pricing/pkg/db/models"
	"github.com/ilmsadmin/zbase-pricing/pkg/pagination"
)

// Repository is the persistence surface for price lists and their items.
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	CreatePriceList(ctx context.Context, list *models.PriceList) error
	FindPriceListByID(ctx context.Context, id uuid.UUID) (*models.PriceList, error)
	FindPriceListByCode(ctx context.Context, code string, excludeID *uuid.UUID) (*models.PriceList, error)
	ListPriceLists(ctx context.Context, filter ListFilter, params pagination.Params) ([]models.PriceList, int64, error)
	SavePriceList(ctx context.Context, list *models.PriceList) error
	DeletePriceList(ctx context.Context, id uuid.UUID) error
	ClearDefault(ctx context.Context, customerGroupID uuid.UUID, excludeID *uuid.UUID) error
	MarkDefault(ctx context.Context, id uuid.UUID) error
	CountItems(ctx context.Context, priceListID uuid.UUID) (int64, error)
	CountItemsByList(ctx context.Context, priceListIDs []uuid.UUID) (map[uuid.UUID]int64, error)

	CreateItem(ctx context.Context, item *models.PriceListItem) error
	FindItemByID(ctx context.Context, id uuid.UUID) (*models.PriceListItem, error)
	TierExists(ctx context.Context, priceListID, productID uuid.UUID, minQuantity decimal.Decimal, excludeID *uuid.UUID) (bool, error)
	ListItems(ctx context.Context, priceListID uuid.UUID, params pagination.Params) ([]models.PriceListItem, int64, error)
	SaveItem(ctx context.Context, item *models.PriceListItem) error
	DeleteItem(ctx context.Context, id uuid.UUID) error

	FindCurrentForGroup(ctx context.Context, customerGroupID uuid.UUID, today time.Time) (*models.PriceList, error)
}

// Service exposes the price list operations consumed by the HTTP layer.
type Service interface {
	Create(ctx context.Context, input CreatePriceListInput) (*PriceListDTO, error)
	List(ctx context.Context, filter ListFilter, params pagination.Params) (*PriceListPage, error)
	Get(ctx context.Context, id uuid.UUID) (*PriceListDTO, error)
	Update(ctx context.Context, id uuid.UUID, patch UpdatePriceListInput) (*PriceListDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetDefault(ctx context.Context, id uuid.UUID) (*PriceListDTO, error)

	AddItem(ctx context.Context, priceListID uuid.UUID, input AddItemInput) (*PriceListItemDTO, error)
	ListItems(ctx context.Context, priceListID uuid.UUID, params pagination.Params) (*PriceListItemPage, error)
	UpdateItem(ctx context.Context, priceListID, itemID uuid.UUID, patch UpdateItemInput) (*PriceListItemDTO, error)
	RemoveItem(ctx context.Context, priceListID, itemID uuid.UUID) error

	ResolveForCustomer(ctx context.Context, customerID uuid.UUID) (*ResolvedPriceListDTO, error)
}
