package repository

import (
	"context"
	"testing"

	"hoahub/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestHouseRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewHouseRepository(db)
	ctx := context.Background()

	creator := createTestUser(t, db, "creator@x.com")
	roommate := createTestUser(t, db, "roommate@x.com")

	t.Run("Create registers the creator as occupant", func(t *testing.T) {
		house := &models.House{Address: "123 Main St"}
		err := repo.Create(ctx, house, creator.ID)
		assert.NoError(t, err)
		assert.NotZero(t, house.ID)

		houses, err := repo.ListForUser(ctx, creator.ID)
		assert.NoError(t, err)
		assert.Len(t, houses, 1)
		assert.Equal(t, "123 Main St", houses[0].Address)
	})

	t.Run("duplicate address conflicts", func(t *testing.T) {
		err := repo.Create(ctx, &models.House{Address: "123 Main St"}, creator.ID)
		assert.Error(t, err)
		appErr, ok := err.(*models.AppError)
		assert.True(t, ok)
		assert.Equal(t, models.CodeConflict, appErr.Code)
		assert.Equal(t, "House with this address already exists", appErr.Message)
	})

	t.Run("houses are shared by occupants", func(t *testing.T) {
		var house models.House
		assert.NoError(t, db.Where("address = ?", "123 Main St").First(&house).Error)

		assert.NoError(t, repo.AddOccupant(ctx, house.ID, roommate.ID))

		houses, err := repo.ListForUser(ctx, roommate.ID)
		assert.NoError(t, err)
		assert.Len(t, houses, 1)
	})

	t.Run("AddOccupant is idempotent", func(t *testing.T) {
		var house models.House
		assert.NoError(t, db.Where("address = ?", "123 Main St").First(&house).Error)

		assert.NoError(t, repo.AddOccupant(ctx, house.ID, roommate.ID))

		var count int64
		db.Table("house_occupants").Where("house_id = ?", house.ID).Count(&count)
		assert.Equal(t, int64(2), count)
	})

	t.Run("ListForUser empty for user with no houses", func(t *testing.T) {
		loner := createTestUser(t, db, "loner@x.com")
		houses, err := repo.ListForUser(ctx, loner.ID)
		assert.NoError(t, err)
		assert.Empty(t, houses)
	})
}
