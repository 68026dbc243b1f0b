package pricelists

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ilmsadmin/zbase-pricing/pkg/db/models"
	"github.com/ilmsadmin/zbase-pricing/pkg/enums"
	pkgerrors "github.com/ilmsadmin/zbase-pricing/pkg/errors"
	"github.com/ilmsadmin/zbase-pricing/pkg/pagination"
)

func setupPricingTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:pricing_" + uuid.NewString() + "?mode=memory&cache=shared"
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	statements := []string{
		`CREATE TABLE customer_groups (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  payment_terms TEXT,
  discount_rate TEXT NOT NULL DEFAULT '0',
  credit_limit TEXT NOT NULL DEFAULT '0',
  priority INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE customers (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  group_id TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE products (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  sku TEXT NOT NULL UNIQUE,
  price TEXT NOT NULL DEFAULT '0',
  unit TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE price_lists (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  code TEXT NOT NULL UNIQUE,
  description TEXT,
  customer_group_id TEXT NOT NULL,
  start_date DATETIME,
  end_date DATETIME,
  priority INTEGER NOT NULL DEFAULT 0,
  discount_type TEXT NOT NULL DEFAULT 'percentage',
  status TEXT NOT NULL DEFAULT 'active',
  applicable_on TEXT NOT NULL DEFAULT 'all',
  is_default BOOLEAN NOT NULL DEFAULT 0,
  created_by TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE price_list_items (
  id TEXT PRIMARY KEY,
  price_list_id TEXT NOT NULL,
  product_id TEXT NOT NULL,
  price TEXT NOT NULL,
  min_quantity TEXT NOT NULL DEFAULT '1',
  max_quantity TEXT,
  discount_type TEXT NOT NULL DEFAULT 'percentage',
  discount_value TEXT NOT NULL DEFAULT '0',
  discount_rate TEXT NOT NULL DEFAULT '0',
  special_conditions TEXT,
  is_active BOOLEAN NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME,
  UNIQUE (price_list_id, product_id, min_quantity)
);`,
	}
	for _, stmt := range statements {
		require.NoError(t, conn.Exec(stmt).Error)
	}
	return conn
}

type testTxRunner struct {
	db *gorm.DB
}

func (r testTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

type groupReaderFunc struct{ db *gorm.DB }

func (g groupReaderFunc) FindGroupByID(ctx context.Context, id uuid.UUID) (*models.CustomerGroup, error) {
	var group models.CustomerGroup
	if err := g.db.WithContext(ctx).Where("id = ?", id).First(&group).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

type customerReaderFunc struct{ db *gorm.DB }

func (c customerReaderFunc) FindCustomerByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	var customer models.Customer
	if err := c.db.WithContext(ctx).Where("id = ?", id).First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

type productReaderFunc struct{ db *gorm.DB }

func (p productReaderFunc) FindProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := p.db.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func newTestService(t *testing.T, conn *gorm.DB) Service {
	t.Helper()
	svc, err := NewService(
		NewRepository(conn),
		groupReaderFunc{db: conn},
		customerReaderFunc{db: conn},
		productReaderFunc{db: conn},
		testTxRunner{db: conn},
	)
	require.NoError(t, err)
	return svc
}

func seedGroup(t *testing.T, conn *gorm.DB, name string) *models.CustomerGroup {
	t.Helper()
	group := &models.CustomerGroup{ID: uuid.New(), Name: name}
	require.NoError(t, conn.Create(group).Error)
	return group
}

func seedCustomer(t *testing.T, conn *gorm.DB, groupID *uuid.UUID) *models.Customer {
	t.Helper()
	customer := &models.Customer{ID: uuid.New(), Name: "Acme Retail", GroupID: groupID}
	require.NoError(t, conn.Create(customer).Error)
	return customer
}

func seedProduct(t *testing.T, conn *gorm.DB, sku string) *models.Product {
	t.Helper()
	product := &models.Product{
		ID:    uuid.New(),
		Name:  "Widget " + sku,
		SKU:   sku,
		Price: decimal.NewFromInt(100),
	}
	require.NoError(t, conn.Create(product).Error)
	return product
}

func seedPriceList(t *testing.T, conn *gorm.DB, group *models.CustomerGroup, code string, mutate func(*models.PriceList)) *models.PriceList {
	t.Helper()
	list := &models.PriceList{
		ID:              uuid.New(),
		Name:            "List " + code,
		Code:            code,
		CustomerGroupID: group.ID,
		DiscountType:    enums.DiscountTypePercentage,
		Status:          enums.PriceListStatusActive,
		ApplicableOn:    enums.ApplicableOnAll,
	}
	if mutate != nil {
		mutate(list)
	}
	require.NoError(t, conn.Create(list).Error)
	return list
}

func countDefaults(t *testing.T, conn *gorm.DB, groupID uuid.UUID) int64 {
	t.Helper()
	var count int64
	err := conn.Model(&models.PriceList{}).
		Where("customer_group_id = ? AND is_default = ?", groupID, true).
		Count(&count).Error
	require.NoError(t, err)
	return count
}

func TestCreatePriceListAppliesDefaults(t *testing.T) {
	conn := setupPricingTestDB(t)
	svc := newTestService(t, conn)
	group := seedGroup(t, conn, "Wholesale")

	dto, err := svc.Create(context.Background(), CreatePriceListInput{
		Name:            "Standard",
		Code:            "STD-PL-001",
		CustomerGroupID: group.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, "STD-PL-001", dto.Code)
	assert.Equal(t, 0, dto.Priority)
	assert.Equal(t, enums.DiscountTypePercentage, dto.DiscountType)
	assert.Equal(t, enums.PriceListStatusActive, dto.Status)
	assert.Equal(t, enums.ApplicableOnAll, dto.ApplicableOn)
	assert.False(t, dto.IsDefault)
	assert.Equal(t, int64(0), dto.ItemCount)
	require.NotNil(t, dto.CustomerGroup)
	assert.Equal(t, group.Name, dto.CustomerGroup.Name)
}

func TestCreatePriceListUnknownGroup(t *testing.T) {
	conn := setupPricingTestDB(t)
	svc := newTestService(t, conn)

	_, err := svc.Create(context.Background(), CreatePriceListInput{
		Name:            "Standard",
		Code:            "STD-PL-001",
		CustomerGroupID: uuid.New(),
	})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestCreatePriceListDuplicateCode(t *testing.T) {
	conn := setupPricingTestDB(t)
	svc := newTestService(t, conn)
	group := seedGroup(t, conn, "Wholesale")
	seedPriceList(t, conn, group, "STD-PL-001", nil)

	_, err := svc.Create(context.Background(), CreatePriceListInput{
		Name:            "Duplicate",
		Code:            "STD-PL-001",
		CustomerGroupID: group.ID,
	})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeConflict, typed.Code())
}

func TestCreateDefaultPriceListClearsPriorDefault(t *testing.T) {
	conn := setupPricingTestDB(t)
	svc := newTestService(t, conn)
	group := seedGroup(t, conn, "Wholesale")
	prior := seedPriceList(t, conn, group, "OLD-DEFAULT", func(pl *models.PriceList) {
		pl.IsDefault = true
	})

	isDefault := true
	dto, err := svc.Create(context.Background(), CreatePriceListInput{
		Name:            "New Default",
		Code:            "NEW-DEFAULT",
		CustomerGroupID: group.ID,
		IsDefault:       &isDefault,
	})
	require.NoError(t, err)
	assert.True(t, dto.IsDefault)

	assert.Equal(t, int64(1), countDefaults(t, conn, group.ID))

	var reloaded models.PriceList
	require.NoError(t, conn.Where("id = ?", prior.ID).First(&reloaded).Error)
	assert.False(t, reloaded.IsDefault)
}

func TestDefaultStaysWithinGroup(t *testing.T) {
	conn := setupPricingTestDB(t)
	svc := newTestService(t, conn)
	groupA := seedGroup(t, conn, "Wholesale")
	groupB := seedGroup(t, conn, "Retail")
	seedPriceList(t, conn, groupB, "B-DEFAULT", func(pl *models.PriceList) {
		pl.IsDefault = true
	})

	isDefault := true
	_, err := svc.Create(context.Background(), CreatePriceListInput{
		Name:            "A Default",
		Code:            "A-DEFAULT",
		CustomerGroupID: groupA.ID,
		IsDefault:       &isDefault,
	})
	require.NoError(t, err)

	// Promoting in one group never touches another group's default.
	assert.Equal(t, int64(1), countDefaults(t, conn, groupA.ID))
	assert.Equal(t, int64(1), countDefaults(t, conn, groupB.ID))
}

func TestSetDefaultPromotesExactlyOne(t *testing.T) {
	conn := setupPricingTestDB(t)
	svc := newTestService(t, conn)
	group := seedGroup(t, conn, "Wholesale")
	first := seedPriceList(t, conn, group, "PL-A", func(pl *models.PriceList) {
		pl.IsDefault = true
	})
	second := seedPriceList(t, conn, group, "PL-B", nil)

	dto, err := svc.SetDefault(context.Background(), second.ID)
	require.NoError(t, err)
	assert.True(t, dto.IsDefault)
	assert.Equal(t, int64(1), countDefaults(t, conn, group.ID))

	var reloaded models.PriceList
	require.NoError(t, conn.Where("id = ?", first.ID).First(&reloaded).Error)
	assert.False(t, reloaded.IsDefault)
}

func TestSetDefaultNotFound(t *testing.T) {
	conn := setupPricingTestDB(t)
	svc := newTestService(t, conn)

	_, err := svc.SetDefault(context.Background(), uuid.New())
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestUpdatePriceListCodeConflictExcludesSelf(t *testing.T) {
	conn := setupPricingTestDB(t)
	svc := newTestService(t, conn)
	group := seedGroup(t, conn, "Wholesale")
	list := seedPriceList(t, conn, group, "PL-A", nil)
	seedPriceList(t, conn, group, "PL-B", nil)

	// Re-submitting its own code is not a conflict.
	sameCode := "PL-A"
	_, err := svc.Update(context.Background(), list.ID, UpdatePriceListInput{Code: &sameCode})
	require.NoError(t, err)

	takenCode := "PL-B"
	_, err = svc.Update(context.Background(), list.ID, UpdatePriceListInput{Code: &takenCode})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeConflict, typed.Code())
}

func TestUpdatePriceListPromoteDefaultUsesEffectiveGroup(t *testing.T) {
	conn := setupPricingTestDB(t)
	svc := newTestService(t, conn)
	groupA := seedGroup(t, conn, "Wholesale")
	groupB := seedGroup(t, conn, "Retail")
	list := seedPriceList(t, conn, groupA, "PL-A", nil)
	existingDefault := seedPriceList(t, conn, groupB, "PL-B", func(pl *models.PriceList) {
		pl.IsDefault = true
	})

	// Moving the list into group B while promoting it must clear B's default.
	isDefault := true
	dto, err := svc.Update(context.Background(), list.ID, UpdatePriceListInput{
		CustomerGroupID: &groupB.ID,
		IsDefault:       &isDefault,
	})
	require.NoError(t, err)
	assert.True(t, dto.IsDefault)
	assert.Equal(t, groupB.ID, dto.CustomerGroupID)
	assert.Equal(t, int64(1), countDefaults(t, conn, groupB.ID))

	var reloaded models.PriceList
	require.NoError(t, conn.Where("id = ?", existingDefault.ID).First(&reloaded).Error)
	assert.False(t, reloaded.IsDefault)
}

func TestUpdatePriceListPartialPatch(t *testing.T) {
	conn := setupPricingTestDB(t)
	svc := newTestService(t, conn)
	group := seedGroup(t, conn, "Wholesale")
	description := "seasonal pricing"
	list := seedPriceList(t, conn, group, "PL-A", func(pl *models.PriceList) {
		pl.Description = &description
		pl.Priority = 5
	})

	newName := "Renamed"
	dto, err := svc.Update(context.Background(), list.ID, UpdatePriceListInput{Name: &newName})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", dto.Name)
	assert.Equal(t, 5, dto.Priority)
	require.NotNil(t, dto.Description)
	assert.Equal(t, description, *dto.Description)

	// An explicit nil clears the nullable column.
	var cleared *string
	dto, err = svc.Update(context.Background(), list.ID, UpdatePriceListInput{Description: &cleared})
	require.NoError(t, err)
	assert.Nil(t, dto.Description)
}

func TestUpdatePriceListUnknownGroup(t *testing.T) {
	conn := setupPricingTestDB(t)
	svc := newTestService(t, conn)
	group := seedGroup(t, conn, "Wholesale")
	list := seedPriceList(t, conn, group, "PL-A", nil)

	missing := uuid.New()
	_, err := svc.Update(context.Background(), list.ID, UpdatePriceListInput{CustomerGroupID: &missing})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestDeletePriceList(t *testing.T) {
	conn := setupPricingTestDB(t)
	svc := newTestService(t, conn)
	group := seedGroup(t, conn, "Wholesale")
	list := seedPriceList(t, conn, group, "PL-A", nil)

	require.NoError(t, svc.Delete(context.Background(), list.ID))

	_, err := svc.Get(context.Background(), list.ID)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())

	err = svc.Delete(context.Background(), list.ID)
	require.Error(t, err)
	typed = pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestListPriceListsFiltersAndMeta(t *testing.T) {
	conn := setupPricingTestDB(t)
	svc := newTestService(t, conn)
	group := seedGroup(t, conn, "Wholesale")
	other := seedGroup(t, conn, "Retail")
	seedPriceList(t, conn, group, "SUMMER-01", func(pl *models.PriceList) {
		pl.Name = "Summer Sale"
		pl.Priority = 10
	})
	seedPriceList(t, conn, group, "WINTER-01", func(pl *models.PriceList) {
		pl.Name = "Winter Sale"
		pl.Priority = 20
	})
	seedPriceList(t, conn, other, "RETAIL-01", func(pl *models.PriceList) {
		pl.Name = "Retail Base"
		pl.Status = enums.PriceListStatusInactive
	})

	page, err := svc.List(context.Background(), ListFilter{}, pagination.Params{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Meta.Total)
	assert.Equal(t, 2, page.Meta.Limit)
	assert.Equal(t, 2, page.Meta.TotalPages)
	require.Len(t, page.Data, 2)
	// priority DESC puts the winter list first
	assert.Equal(t, "WINTER-01", page.Data[0].Code)

	// case-insensitive substring search across name/code/description
	page, err = svc.List(context.Background(), ListFilter{Search: "summer"}, pagination.Params{})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "SUMMER-01", page.Data[0].Code)

	inactive := enums.PriceListStatusInactive
	page, err = svc.List(context.Background(), ListFilter{Status: &inactive}, pagination.Params{})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "RETAIL-01", page.Data[0].Code)

	page, err = svc.List(context.Background(), ListFilter{CustomerGroupID: &group.ID}, pagination.Params{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Meta.Total)
}

func TestAddItemDefaultsAndConflict(t *testing.T) {
	conn := setupPricingTestDB(t)
	svc := newTestService(t, conn)
	group := seedGroup(t, conn, "Wholesale")
	list := seedPriceList(t, conn, group, "PL-A", nil)
	product := seedProduct(t, conn, "SKU-001")

	dto, err := svc.AddItem(context.Background(), list.ID, AddItemInput{
		ProductID: product.ID,
		Price:     decimal.NewFromInt(90),
	})
	require.NoError(t, err)
	assert.True(t, dto.MinQuantity.Equal(decimal.NewFromInt(1)))
	assert.Equal(t, enums.DiscountTypePercentage, dto.DiscountType)
	assert.True(t, dto.DiscountValue.IsZero())
	assert.True(t, dto.DiscountRate.IsZero())
	assert.True(t, dto.IsActive)
	require.NotNil(t, dto.Product)
	assert.Equal(t, "SKU-001", dto.Product.SKU)

	// Same product at the default quantity breakpoint is a duplicate tier.
	_, err = svc.AddItem(context.Background(), list.ID, AddItemInput{
		ProductID: product.ID,
		Price:     decimal.NewFromInt(80),
	})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeConflict, typed.Code())

	// A different breakpoint for the same product is allowed.
	minQty := decimal.NewFromInt(5)
	_, err = svc.AddItem(context.Background(), list.ID, AddItemInput{
		ProductID:   product.ID,
		Price:       decimal.NewFromInt(80),
		MinQuantity: &minQty,
	})
	require.NoError(t, err)
}

func TestAddItemUnknownProduct(t *testing.T) {
	conn := setupPricingTestDB(t)
	svc := newTestService(t, conn)
	group := seedGroup(t, conn, "Wholesale")
	list := seedPriceList(t, conn, group, "PL-A", nil)

	_, err := svc.AddItem(context.Background(), list.ID, AddItemInput{
		ProductID: uuid.New(),
		Price:     decimal.NewFromInt(90),
	})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestListItemsOrderingAndMeta(t *testing.T) {
	conn := setupPricingTestDB(t)
	svc := newTestService(t, conn)
	group := seedGroup(t, conn, "Wholesale")
	list := seedPriceList(t, conn, group, "PL-A", nil)
	product := seedProduct(t, conn, "SKU-001")

	for _, qty := range []int64{5, 1, 2} {
		minQty := decimal.NewFromInt(qty)
		_, err := svc.AddItem(context.Background(), list.ID, AddItemInput{
			ProductID:   product.ID,
			Price:       decimal.NewFromInt(100 - qty),
			MinQuantity: &minQty,
		})
		require.NoError(t, err)
	}

	page, err := svc.ListItems(context.Background(), list.ID, pagination.Params{Page: 1, Limit: 50})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Meta.Total)
	require.Len(t, page.Data, 3)
	assert.True(t, page.Data[0].MinQuantity.Equal(decimal.NewFromInt(1)))
	assert.True(t, page.Data[1].MinQuantity.Equal(decimal.NewFromInt(2)))
	assert.True(t, page.Data[2].MinQuantity.Equal(decimal.NewFromInt(5)))
}

func TestListItemsUnknownPriceList(t *testing.T) {
	conn := setupPricingTestDB(t)
	svc := newTestService(t, conn)

	_, err := svc.ListItems(context.Background(), uuid.New(), pagination.Params{})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestUpdateItemParentMismatch(t *testing.T) {
	conn := setupPricingTestDB(t)
	svc := newTestService(t, conn)
	group := seedGroup(t, conn, "Wholesale")
	listA := seedPriceList(t, conn, group, "PL-A", nil)
	listB := seedPriceList(t, conn, group, "PL-B", nil)
	product := seedProduct(t, conn, "SKU-001")

	item, err := svc.AddItem(context.Background(), listA.ID, AddItemInput{
		ProductID: product.ID,
		Price:     decimal.NewFromInt(90),
	})
	require.NoError(t, err)

	// Addressing the item under the wrong parent is a bad request, not 404.
	price := decimal.NewFromInt(50)
	_, err = svc.UpdateItem(context.Background(), listB.ID, item.ID, UpdateItemInput{Price: &price})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeInvalidRelationship, typed.Code())

	err = svc.RemoveItem(context.Background(), listB.ID, item.ID)
	require.Error(t, err)
	typed = pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeInvalidRelationship, typed.Code())
}

func TestUpdateItemMinQuantityConflict(t *testing.T) {
	conn := setupPricingTestDB(t)
	svc := newTestService(t, conn)
	group := seedGroup(t, conn, "Wholesale")
	list := seedPriceList(t, conn, group, "PL-A", nil)
	product := seedProduct(t, conn, "SKU-001")

	_, err := svc.AddItem(context.Background(), list.ID, AddItemInput{
		ProductID: product.ID,
		Price:     decimal.NewFromInt(90),
	})
	require.NoError(t, err)

	minQty := decimal.NewFromInt(5)
	second, err := svc.AddItem(context.Background(), list.ID, AddItemInput{
		ProductID:   product.ID,
		Price:       decimal.NewFromInt(80),
		MinQuantity: &minQty,
	})
	require.NoError(t, err)

	// Re-keying the five-unit tier onto the occupied one-unit breakpoint.
	conflicting := decimal.NewFromInt(1)
	_, err = svc.UpdateItem(context.Background(), list.ID, second.ID, UpdateItemInput{MinQuantity: &conflicting})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeConflict, typed.Code())

	// Moving to a free breakpoint works.
	free := decimal.NewFromInt(3)
	dto, err := svc.UpdateItem(context.Background(), list.ID, second.ID, UpdateItemInput{MinQuantity: &free})
	require.NoError(t, err)
	assert.True(t, dto.MinQuantity.Equal(free))
}

func TestUpdateItemPartialPatch(t *testing.T) {
	conn := setupPricingTestDB(t)
	svc := newTestService(t, conn)
	group := seedGroup(t, conn, "Wholesale")
	list := seedPriceList(t, conn, group, "PL-A", nil)
	product := seedProduct(t, conn, "SKU-001")

	item, err := svc.AddItem(context.Background(), list.ID, AddItemInput{
		ProductID: product.ID,
		Price:     decimal.NewFromInt(90),
	})
	require.NoError(t, err)

	price := decimal.NewFromInt(75)
	inactive := false
	dto, err := svc.UpdateItem(context.Background(), list.ID, item.ID, UpdateItemInput{
		Price:    &price,
		IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.True(t, dto.Price.Equal(price))
	assert.False(t, dto.IsActive)
	assert.True(t, dto.MinQuantity.Equal(item.MinQuantity))
	assert.Equal(t, product.ID, dto.ProductID)
}

func TestRemoveItem(t *testing.T) {
	conn := setupPricingTestDB(t)
	svc := newTestService(t, conn)
	group := seedGroup(t, conn, "Wholesale")
	list := seedPriceList(t, conn, group, "PL-A", nil)
	product := seedProduct(t, conn, "SKU-001")

	item, err := svc.AddItem(context.Background(), list.ID, AddItemInput{
		ProductID: product.ID,
		Price:     decimal.NewFromInt(90),
	})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveItem(context.Background(), list.ID, item.ID))

	err = svc.RemoveItem(context.Background(), list.ID, item.ID)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}
