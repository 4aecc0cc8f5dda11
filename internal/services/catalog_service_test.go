package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymfit/internal/models/request_models"
	"gymfit/internal/models/response_models"
	"gymfit/internal/repositories"
	"gymfit/internal/testutil"
	"gymfit/pkg/utils"
)

func TestStoreFiltersByCategoryNameOrID(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	gear := testutil.CreateCategory(t, db, "Gear")
	food := testutil.CreateCategory(t, db, "Food")
	testutil.CreateProduct(t, db, gear.ID, "Belt", "40.00", 3)
	testutil.CreateProduct(t, db, gear.ID, "Straps", "12.00", 3)
	testutil.CreateProduct(t, db, food.ID, "Protein Bar", "2.50", 30)

	svc := NewCatalogService(repositories.NewCategoryRepository(db), repositories.NewProductRepository(db))

	all, err := svc.Store(ctx, StoreQuery{Category: "all"})
	require.NoError(t, err)
	assert.EqualValues(t, 3, all.Products.Total)
	assert.Len(t, all.Categories, 2)

	byName, err := svc.Store(ctx, StoreQuery{Category: "Gear"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, byName.Products.Total)

	byID, err := svc.Store(ctx, StoreQuery{Category: food.ID.String(), Search: "protein"})
	require.NoError(t, err)
	require.EqualValues(t, 1, byID.Products.Total)
	items := byID.Products.Items.([]response_models.ProductResponse)
	assert.Equal(t, "Protein Bar", items[0].Name)

	_, err = svc.Store(ctx, StoreQuery{Category: "Toys"})
	assert.ErrorIs(t, err, utils.ErrCategoryNotFound)
	_, err = svc.Store(ctx, StoreQuery{PageSize: 1000})
	assert.ErrorIs(t, err, utils.ErrInvalidPageSize)
}

func TestReviews(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	acc := testutil.CreateAccount(t, db, "alice")
	gear := testutil.CreateCategory(t, db, "Gear")
	belt := testutil.CreateProduct(t, db, gear.ID, "Belt", "40.00", 3)
	svc := NewCatalogService(repositories.NewCategoryRepository(db), repositories.NewProductRepository(db))

	_, err := svc.AddReview(ctx, acc.ID, belt.ID, request_models.ReviewRequest{Rating: 6})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
	_, err = svc.AddReview(ctx, acc.ID, uuid.New(), request_models.ReviewRequest{Rating: 4})
	assert.ErrorIs(t, err, utils.ErrProductNotFound)

	_, err = svc.AddReview(ctx, acc.ID, belt.ID, request_models.ReviewRequest{Rating: 5, Comment: " Solid "})
	require.NoError(t, err)

	detail, err := svc.ProductDetail(ctx, belt.ID)
	require.NoError(t, err)
	require.Len(t, detail.Reviews, 1)
	assert.Equal(t, "Solid", detail.Reviews[0].Comment)
	assert.Equal(t, "alice", detail.Reviews[0].Username)
}
