package repositories

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gymfit/internal/models/db_models"
	"gymfit/internal/testutil"
	"gymfit/pkg/utils"
)

func stockOf(t *testing.T, db *gorm.DB, productID uuid.UUID) int {
	t.Helper()
	var p db_models.Product
	require.NoError(t, db.First(&p, "id = ?", productID).Error)
	return p.Stock
}

func reservedOf(t *testing.T, db *gorm.DB, productID uuid.UUID) int {
	t.Helper()
	var n int
	require.NoError(t, db.Model(&db_models.CartItem{}).
		Select("COALESCE(SUM(quantity), 0)").
		Where("product_id = ?", productID).
		Scan(&n).Error)
	return n
}

func TestCartAddItemMovesStock(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewCartRepository(db)
	ctx := context.Background()

	acc := testutil.CreateAccount(t, db, "alice")
	cat := testutil.CreateCategory(t, db, "Supplements")
	p := testutil.CreateProduct(t, db, cat.ID, "Whey", "29.99", 3)
	const total = 3

	item, err := repo.AddItem(ctx, acc.ID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, 2, stockOf(t, db, p.ID))

	item, err = repo.AddItem(ctx, acc.ID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, 1, stockOf(t, db, p.ID))

	// a line may only grow while it is smaller than what is left on the shelf
	_, err = repo.AddItem(ctx, acc.ID, p.ID)
	assert.ErrorIs(t, err, utils.ErrInsufficientStock)
	assert.Equal(t, 1, stockOf(t, db, p.ID))

	bob := testutil.CreateAccount(t, db, "bob")
	_, err = repo.AddItem(ctx, bob.ID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stockOf(t, db, p.ID))

	carol := testutil.CreateAccount(t, db, "carol")
	_, err = repo.AddItem(ctx, carol.ID, p.ID)
	assert.ErrorIs(t, err, utils.ErrOutOfStock)

	assert.Equal(t, total, stockOf(t, db, p.ID)+reservedOf(t, db, p.ID))

	n, err := repo.CountItems(ctx, acc.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestCartAddUnknownProduct(t *testing.T) {
	db := testutil.NewTestDB(t)
	acc := testutil.CreateAccount(t, db, "alice")

	_, err := NewCartRepository(db).AddItem(context.Background(), acc.ID, uuid.New())
	assert.ErrorIs(t, err, utils.ErrProductNotFound)
}

func TestCartUpdateClampsAndConserves(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewCartRepository(db)
	ctx := context.Background()

	acc := testutil.CreateAccount(t, db, "alice")
	cat := testutil.CreateCategory(t, db, "Gear")
	p := testutil.CreateProduct(t, db, cat.ID, "Gloves", "15.00", 5)
	const total = 5

	item, err := repo.AddItem(ctx, acc.ID, p.ID)
	require.NoError(t, err)

	change, err := repo.UpdateItemQuantity(ctx, acc.ID, item.ID, 10)
	require.NoError(t, err)
	assert.True(t, change.Clamped)
	assert.Equal(t, 5, change.Quantity)
	assert.Equal(t, 0, stockOf(t, db, p.ID))

	change, err = repo.UpdateItemQuantity(ctx, acc.ID, item.ID, 2)
	require.NoError(t, err)
	assert.False(t, change.Clamped)
	assert.Equal(t, 3, stockOf(t, db, p.ID))
	assert.Equal(t, total, stockOf(t, db, p.ID)+reservedOf(t, db, p.ID))

	change, err = repo.UpdateItemQuantity(ctx, acc.ID, item.ID, 0)
	require.NoError(t, err)
	assert.True(t, change.Removed)
	assert.Equal(t, total, stockOf(t, db, p.ID))
	assert.Equal(t, 0, reservedOf(t, db, p.ID))

	_, err = repo.UpdateItemQuantity(ctx, acc.ID, item.ID, 1)
	assert.ErrorIs(t, err, utils.ErrCartItemNotFound)
}

func TestCartRemoveItemRestoresStock(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewCartRepository(db)
	ctx := context.Background()

	acc := testutil.CreateAccount(t, db, "alice")
	intruder := testutil.CreateAccount(t, db, "mallory")
	cat := testutil.CreateCategory(t, db, "Gear")
	p := testutil.CreateProduct(t, db, cat.ID, "Belt", "40.00", 3)

	item, err := repo.AddItem(ctx, acc.ID, p.ID)
	require.NoError(t, err)
	_, err = repo.AddItem(ctx, acc.ID, p.ID)
	require.NoError(t, err)

	_, err = repo.RemoveItem(ctx, intruder.ID, item.ID)
	assert.ErrorIs(t, err, utils.ErrCartItemNotFound)

	removed, err := repo.RemoveItem(ctx, acc.ID, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, removed.Quantity)
	assert.Equal(t, 3, stockOf(t, db, p.ID))

	var rows int64
	require.NoError(t, db.Unscoped().Model(&db_models.CartItem{}).Count(&rows).Error)
	assert.Zero(t, rows)
}

func TestCartConcurrentAddsOfLastUnit(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewCartRepository(db)

	cat := testutil.CreateCategory(t, db, "Gear")
	p := testutil.CreateProduct(t, db, cat.ID, "Kettlebell", "55.00", 1)

	const buyers = 4
	accounts := make([]*db_models.Account, buyers)
	for i := range accounts {
		accounts[i] = testutil.CreateAccount(t, db, "buyer"+string(rune('a'+i)))
	}

	var wg sync.WaitGroup
	errs := make([]error, buyers)
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = repo.AddItem(context.Background(), accounts[i].ID, p.ID)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 0, stockOf(t, db, p.ID))
	assert.Equal(t, 1, reservedOf(t, db, p.ID))
}
