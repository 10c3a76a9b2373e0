package repository

import (
	"context"
	"testing"

	"hoahub/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestMembershipRepositoryJoin(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMembershipRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "joiner@x.com")
	group := createTestGroup(t, db, "Oak HOA", "owner@x.com")

	t.Run("joins with member role", func(t *testing.T) {
		membership, err := repo.Join(ctx, user.ID, group.ID)
		assert.NoError(t, err)
		assert.Equal(t, models.MembershipRoleMember, membership.Role)
	})

	t.Run("second join for the same pair conflicts", func(t *testing.T) {
		_, err := repo.Join(ctx, user.ID, group.ID)
		assert.Error(t, err)
		appErr, ok := err.(*models.AppError)
		assert.True(t, ok)
		assert.Equal(t, models.CodeConflict, appErr.Code)
		assert.Equal(t, "User is already a member of this HOAGroup", appErr.Message)

		var count int64
		db.Model(&models.HOAMembership{}).
			Where("user_id = ? AND hoa_group_id = ?", user.ID, group.ID).
			Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("same user can join a different group", func(t *testing.T) {
		other := createTestGroup(t, db, "Pine HOA", "pine@x.com")
		_, err := repo.Join(ctx, user.ID, other.ID)
		assert.NoError(t, err)
	})
}

func TestMembershipRepositoryListMembers(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMembershipRepository(db)
	ctx := context.Background()

	group := createTestGroup(t, db, "Elm HOA", "elm@x.com")
	admin := createTestUser(t, db, "admin@x.com")
	member := createTestUser(t, db, "member@x.com")

	assert.NoError(t, db.Create(&models.HOAMembership{
		UserID: admin.ID, HOAGroupID: group.ID, Role: models.MembershipRoleAdmin,
	}).Error)
	assert.NoError(t, db.Create(&models.HOAMembership{
		UserID: member.ID, HOAGroupID: group.ID, Role: models.MembershipRoleMember,
	}).Error)

	members, err := repo.ListMembers(ctx, group.ID)
	assert.NoError(t, err)
	assert.Len(t, members, 2)

	roles := map[string]models.MembershipRole{}
	for _, m := range members {
		roles[m.User.Email] = m.Role
	}
	assert.Equal(t, models.MembershipRoleAdmin, roles["admin@x.com"])
	assert.Equal(t, models.MembershipRoleMember, roles["member@x.com"])
}
