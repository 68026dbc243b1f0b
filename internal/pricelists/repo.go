package pricelists

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ilmsadmin/zbase-pricing/pkg/db/models"
	"github.com/ilmsadmin/zbase-pricing/pkg/enums"
	"github.com/ilmsadmin/zbase-pricing/pkg/pagination"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a price list repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) CreatePriceList(ctx context.Context, list *models.PriceList) error {
	if list.ID == uuid.Nil {
		list.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(list).Error
}

func (r *repository) FindPriceListByID(ctx context.Context, id uuid.UUID) (*models.PriceList, error) {
	var list models.PriceList
	err := r.db.WithContext(ctx).
		Preload("CustomerGroup").
		Where("id = ?", id).
		First(&list).Error
	if err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *repository) FindPriceListByCode(ctx context.Context, code string, excludeID *uuid.UUID) (*models.PriceList, error) {
	query := r.db.WithContext(ctx).Where("code = ?", code)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	var list models.PriceList
	if err := query.First(&list).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

// applyListFilter builds the shared WHERE clause for list/count queries.
// LOWER(...) LIKE keeps the substring match case-insensitive on both
// Postgres and the SQLite used in tests.
func applyListFilter(query *gorm.DB, filter ListFilter) *gorm.DB {
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(code) LIKE ? OR LOWER(COALESCE(description, '')) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.CustomerGroupID != nil {
		query = query.Where("customer_group_id = ?", *filter.CustomerGroupID)
	}
	return query
}

func (r *repository) ListPriceLists(ctx context.Context, filter ListFilter, params pagination.Params) ([]models.PriceList, int64, error) {
	params = params.Normalize()

	var total int64
	countQuery := applyListFilter(r.db.WithContext(ctx).Model(&models.PriceList{}), filter)
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var lists []models.PriceList
	pageQuery := applyListFilter(r.db.WithContext(ctx).Model(&models.PriceList{}), filter)
	err := pageQuery.
		Preload("CustomerGroup").
		Order("priority DESC").
		Order("start_date DESC").
		Offset(params.Offset()).
		Limit(params.Limit).
		Find(&lists).Error
	if err != nil {
		return nil, 0, err
	}
	return lists, total, nil
}

func (r *repository) SavePriceList(ctx context.Context, list *models.PriceList) error {
	return r.db.WithContext(ctx).Save(list).Error
}

func (r *repository) DeletePriceList(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.PriceList{}).Error
}

func (r *repository) ClearDefault(ctx context.Context, customerGroupID uuid.UUID, excludeID *uuid.UUID) error {
	query := r.db.WithContext(ctx).
		Model(&models.PriceList{}).
		Where("customer_group_id = ? AND is_default = ?", customerGroupID, true)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	return query.Update("is_default", false).Error
}

func (r *repository) MarkDefault(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&models.PriceList{}).
		Where("id = ?", id).
		Update("is_default", true).Error
}

func (r *repository) CountItems(ctx context.Context, priceListID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.PriceListItem{}).
		Where("price_list_id = ?", priceListID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) CountItemsByList(ctx context.Context, priceListIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(priceListIDs))
	if len(priceListIDs) == 0 {
		return counts, nil
	}

	type row struct {
		PriceListID uuid.UUID `gorm:"column:price_list_id"`
		Count       int64     `gorm:"column:count"`
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&models.PriceListItem{}).
		Select("price_list_id, COUNT(*) AS count").
		Where("price_list_id IN ?", priceListIDs).
		Group("price_list_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, rec := range rows {
		counts[rec.PriceListID] = rec.Count
	}
	return counts, nil
}

func (r *repository) CreateItem(ctx context.Context, item *models.PriceListItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *repository) FindItemByID(ctx context.Context, id uuid.UUID) (*models.PriceListItem, error) {
	var item models.PriceListItem
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("id = ?", id).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repository) TierExists(ctx context.Context, priceListID, productID uuid.UUID, minQuantity decimal.Decimal, excludeID *uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&models.PriceListItem{}).
		Where("price_list_id = ? AND product_id = ? AND min_quantity = ?", priceListID, productID, minQuantity)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) ListItems(ctx context.Context, priceListID uuid.UUID, params pagination.Params) ([]models.PriceListItem, int64, error) {
	params = params.Normalize()

	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.PriceListItem{}).
		Where("price_list_id = ?", priceListID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var items []models.PriceListItem
	err = r.db.WithContext(ctx).
		Preload("Product").
		Where("price_list_id = ?", priceListID).
		Order("product_id ASC").
		Order("min_quantity ASC").
		Offset(params.Offset()).
		Limit(params.Limit).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *repository) SaveItem(ctx context.Context, item *models.PriceListItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *repository) DeleteItem(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.PriceListItem{}).Error
}

// FindCurrentForGroup returns the price list that applies to the group
// today: active, validity window containing today (both bounds inclusive),
// the group default winning over any higher-priority non-default list.
func (r *repository) FindCurrentForGroup(ctx context.Context, customerGroupID uuid.UUID, today time.Time) (*models.PriceList, error) {
	var list models.PriceList
	err := r.db.WithContext(ctx).
		Preload("CustomerGroup").
		Preload("Items", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("product_id ASC").Order("min_quantity ASC")
		}).
		Preload("Items.Product").
		Where("customer_group_id = ?", customerGroupID).
		Where("status = ?", enums.PriceListStatusActive).
		Where(
			"(start_date IS NULL AND end_date IS NULL)"+
				" OR (start_date <= ? AND end_date IS NULL)"+
				" OR (start_date IS NULL AND end_date >= ?)"+
				" OR (start_date <= ? AND end_date >= ?)",
			today, today, today, today,
		).
		Order("is_default DESC").
		Order("priority DESC").
		First(&list).Error
	if err != nil {
		return nil, err
	}
	return &list, nil
}
