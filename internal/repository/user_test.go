package repository

import (
	"context"
	"testing"

	"hoahub/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestUserRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	t.Run("Create", func(t *testing.T) {
		user := &models.User{Email: "a@x.com", Password: "hashed"}
		err := repo.Create(ctx, user)
		assert.NoError(t, err)
		assert.NotZero(t, user.ID)
	})

	t.Run("Create duplicate email conflicts", func(t *testing.T) {
		err := repo.Create(ctx, &models.User{Email: "a@x.com", Password: "other"})
		assert.Error(t, err)
		appErr, ok := err.(*models.AppError)
		assert.True(t, ok)
		assert.Equal(t, models.CodeConflict, appErr.Code)
		assert.Equal(t, "User with this email already exists", appErr.Message)
	})

	t.Run("email matching is exact", func(t *testing.T) {
		err := repo.Create(ctx, &models.User{Email: "A@x.com", Password: "hashed"})
		assert.NoError(t, err)
	})

	t.Run("GetByID", func(t *testing.T) {
		user, err := repo.GetByID(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, "a@x.com", user.Email)
	})

	t.Run("GetByID unknown", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 9999)
		assert.Error(t, err)
		appErr, ok := err.(*models.AppError)
		assert.True(t, ok)
		assert.Equal(t, models.CodeNotFound, appErr.Code)
	})

	t.Run("GetByEmail miss returns nil without error", func(t *testing.T) {
		user, err := repo.GetByEmail(ctx, "nobody@x.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestUserRepositoryDeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "doomed@x.com")
	survivor := createTestUser(t, db, "survivor@x.com")
	group := createTestGroup(t, db, "Oak HOA", "owner@x.com")

	for _, u := range []*models.User{user, survivor} {
		err := db.Create(&models.HOAMembership{
			UserID:     u.ID,
			HOAGroupID: group.ID,
			Role:       models.MembershipRoleMember,
		}).Error
		assert.NoError(t, err)
	}

	house := &models.House{Address: "123 Main St"}
	assert.NoError(t, db.Create(house).Error)
	assert.NoError(t, db.Exec(
		"INSERT INTO house_occupants (house_id, user_id) VALUES (?, ?)",
		house.ID, user.ID).Error)

	assert.NoError(t, repo.Delete(ctx, user.ID))

	var memberships int64
	db.Model(&models.HOAMembership{}).Where("user_id = ?", user.ID).Count(&memberships)
	assert.Zero(t, memberships)

	var occupancies int64
	db.Table("house_occupants").Where("user_id = ?", user.ID).Count(&occupancies)
	assert.Zero(t, occupancies)

	// Other rows untouched
	var remaining int64
	db.Model(&models.HOAMembership{}).Count(&remaining)
	assert.Equal(t, int64(1), remaining)

	var houses int64
	db.Model(&models.House{}).Count(&houses)
	assert.Equal(t, int64(1), houses)
}
