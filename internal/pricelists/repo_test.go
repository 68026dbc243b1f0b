package pricelists

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ilmsadmin/zbase-pricing/pkg/db/models"
)

func TestRepoFindPriceListByCodeExcludesID(t *testing.T) {
	conn := setupPricingTestDB(t)
	repo := NewRepository(conn)
	group := seedGroup(t, conn, "Wholesale")
	list := seedPriceList(t, conn, group, "PL-A", nil)

	found, err := repo.FindPriceListByCode(context.Background(), "PL-A", nil)
	require.NoError(t, err)
	assert.Equal(t, list.ID, found.ID)

	_, err = repo.FindPriceListByCode(context.Background(), "PL-A", &list.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestRepoCountItemsByList(t *testing.T) {
	conn := setupPricingTestDB(t)
	repo := NewRepository(conn)
	group := seedGroup(t, conn, "Wholesale")
	listA := seedPriceList(t, conn, group, "PL-A", nil)
	listB := seedPriceList(t, conn, group, "PL-B", nil)
	product := seedProduct(t, conn, "SKU-001")

	for _, qty := range []int64{1, 2, 3} {
		item := &models.PriceListItem{
			ID:          uuid.New(),
			PriceListID: listA.ID,
			ProductID:   product.ID,
			Price:       decimal.NewFromInt(100),
			MinQuantity: decimal.NewFromInt(qty),
		}
		require.NoError(t, conn.Create(item).Error)
	}

	counts, err := repo.CountItemsByList(context.Background(), []uuid.UUID{listA.ID, listB.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(3), counts[listA.ID])
	assert.Equal(t, int64(0), counts[listB.ID])

	counts, err = repo.CountItemsByList(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, counts)
}

func TestRepoClearDefaultHonorsExclusion(t *testing.T) {
	conn := setupPricingTestDB(t)
	repo := NewRepository(conn)
	group := seedGroup(t, conn, "Wholesale")
	kept := seedPriceList(t, conn, group, "KEEP", func(pl *models.PriceList) {
		pl.IsDefault = true
	})
	cleared := seedPriceList(t, conn, group, "CLEAR", func(pl *models.PriceList) {
		pl.IsDefault = true
	})

	require.NoError(t, repo.ClearDefault(context.Background(), group.ID, &kept.ID))

	var reloaded models.PriceList
	require.NoError(t, conn.Where("id = ?", kept.ID).First(&reloaded).Error)
	assert.True(t, reloaded.IsDefault)
	reloaded = models.PriceList{}
	require.NoError(t, conn.Where("id = ?", cleared.ID).First(&reloaded).Error)
	assert.False(t, reloaded.IsDefault)
}
