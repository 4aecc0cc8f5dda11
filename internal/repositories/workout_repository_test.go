package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymfit/internal/models/db_models"
	"gymfit/internal/testutil"
)

func TestWorkoutCreateSkipsAssociations(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	alice := testutil.CreateAccount(t, db, "alice")
	repo := NewWorkoutRepository(db)

	w := &db_models.Workout{
		AccountID: alice.ID,
		Name:      "Squats",
		Duration:  30,
		Date:      testutil.At(2024, 3, 1, 7),
		Account:   &db_models.Account{Username: "ghost", Email: "ghost@example.com"},
	}
	require.NoError(t, repo.Create(ctx, w))

	var accounts int64
	require.NoError(t, db.Model(&db_models.Account{}).Count(&accounts).Error)
	assert.EqualValues(t, 1, accounts)

	require.NoError(t, repo.Create(ctx, &db_models.Workout{
		AccountID: alice.ID,
		Name:      "Rowing",
		Duration:  20,
		Date:      testutil.At(2024, 3, 2, 7),
	}))

	list, err := repo.ListByAccount(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Rowing", list[0].Name)
	assert.Equal(t, "Squats", list[1].Name)
}

func TestWorkoutDeleteOnlyOwnRows(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	alice := testutil.CreateAccount(t, db, "alice")
	bob := testutil.CreateAccount(t, db, "bob")
	repo := NewWorkoutRepository(db)

	w := &db_models.Workout{AccountID: alice.ID, Name: "Plank", Duration: 5, Date: testutil.At(2024, 3, 1, 7)}
	require.NoError(t, repo.Create(ctx, w))

	ok, err := repo.DeleteForAccount(ctx, bob.ID, w.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.DeleteForAccount(ctx, alice.ID, w.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	list, err := repo.ListByAccount(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}
