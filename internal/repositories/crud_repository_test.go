package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymfit/internal/models/db_models"
	"gymfit/internal/testutil"
)

func TestCrudListSearchFilterPaginate(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	gear := testutil.CreateCategory(t, db, "Gear")
	food := testutil.CreateCategory(t, db, "Food")
	testutil.CreateProduct(t, db, gear.ID, "Lifting Belt", "40.00", 3)
	testutil.CreateProduct(t, db, gear.ID, "Lifting Straps", "12.00", 8)
	testutil.CreateProduct(t, db, gear.ID, "Jump Rope", "9.00", 4)
	testutil.CreateProduct(t, db, food.ID, "Protein Bar", "2.50", 50)

	repo := NewCrudRepository[db_models.Product](db, CrudOptions{
		SearchColumns: []string{"name", "description"},
		Preloads:      []string{"Category"},
		Order:         "name ASC",
	})

	items, total, err := repo.List(ctx, ListQuery{Search: "LIFTING"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, items, 2)
	assert.Equal(t, "Lifting Belt", items[0].Name)
	require.NotNil(t, items[0].Category)
	assert.Equal(t, "Gear", items[0].Category.Name)

	items, total, err = repo.List(ctx, ListQuery{
		Filters:  map[string]interface{}{"category_id": gear.ID},
		Page:     2,
		PageSize: 2,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, items, 1)
	assert.Equal(t, "Lifting Straps", items[0].Name)
}

func TestCrudCreateUpdateDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewCrudRepository[db_models.Category](db, CrudOptions{SearchColumns: []string{"name"}})

	c := &db_models.Category{Name: "Apparel"}
	require.NoError(t, repo.Create(ctx, c))
	assert.NotEqual(t, uuid.Nil, c.ID)

	c.Name = "Clothing"
	require.NoError(t, repo.Update(ctx, c))

	got, err := repo.FindByID(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Clothing", got.Name)

	ok, err := repo.Delete(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err = repo.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	var left int64
	require.NoError(t, db.Unscoped().Model(&db_models.Category{}).Where("id = ?", c.ID).Count(&left).Error)
	assert.Zero(t, left)

	again := &db_models.Category{Name: "Clothing"}
	require.NoError(t, repo.Create(ctx, again))

	ok, err = repo.Delete(ctx, c.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
