package seed

import (
	"testing"

	"hoahub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSeedDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.HOAGroup{},
		&models.HOAMembership{},
		&models.House{},
		&models.Document{},
	))
	return db
}

func TestSeedCreatesDemoData(t *testing.T) {
	db := setupSeedDB(t)
	require.NoError(t, Seed(db, Options{}))

	var users int64
	db.Model(&models.User{}).Count(&users)
	assert.Equal(t, int64(5), users)

	var groups int64
	db.Model(&models.HOAGroup{}).Count(&groups)
	assert.Equal(t, int64(2), groups)

	var houses int64
	db.Model(&models.House{}).Count(&houses)
	assert.Equal(t, int64(3), houses)

	// First three users are members of both groups
	var memberships int64
	db.Model(&models.HOAMembership{}).Count(&memberships)
	assert.Equal(t, int64(6), memberships)

	// First two users occupy every house
	var occupancies int64
	db.Table("house_occupants").Count(&occupancies)
	assert.Equal(t, int64(6), occupancies)
}

func TestSeedIsIdempotent(t *testing.T) {
	db := setupSeedDB(t)
	require.NoError(t, Seed(db, Options{}))
	require.NoError(t, Seed(db, Options{}))

	var users int64
	db.Model(&models.User{}).Count(&users)
	assert.Equal(t, int64(5), users)

	var memberships int64
	db.Model(&models.HOAMembership{}).Count(&memberships)
	assert.Equal(t, int64(6), memberships)

	var occupancies int64
	db.Table("house_occupants").Count(&occupancies)
	assert.Equal(t, int64(6), occupancies)
}

func TestSeedClean(t *testing.T) {
	db := setupSeedDB(t)
	require.NoError(t, db.Create(&models.User{Email: "stale@x.com", Password: "x"}).Error)

	require.NoError(t, Seed(db, Options{ShouldClean: true}))

	var count int64
	db.Model(&models.User{}).Where("email = ?", "stale@x.com").Count(&count)
	assert.Zero(t, count)
}

func TestSeedExtras(t *testing.T) {
	db := setupSeedDB(t)
	require.NoError(t, Seed(db, Options{ExtraUsers: 4, ExtraGroups: 2}))

	var users int64
	db.Model(&models.User{}).Count(&users)
	assert.Equal(t, int64(9), users)

	var groups int64
	db.Model(&models.HOAGroup{}).Count(&groups)
	assert.Equal(t, int64(4), groups)

	// Every extra group has exactly one admin
	var extraGroups []models.HOAGroup
	db.Where("name NOT IN ?", []string{"Sunset HOA", "Lakeview HOA"}).Find(&extraGroups)
	for _, g := range extraGroups {
		var admins int64
		db.Model(&models.HOAMembership{}).
			Where("hoa_group_id = ? AND role = ?", g.ID, models.MembershipRoleAdmin).
			Count(&admins)
		assert.Equal(t, int64(1), admins, g.Name)
	}
}

func TestFactoryBuilders(t *testing.T) {
	f := NewFactory(nil)

	user, err := f.BuildUser()
	require.NoError(t, err)
	assert.Contains(t, user.Email, "@")
	assert.NotEmpty(t, user.Password)

	group := f.BuildGroup()
	assert.Contains(t, group.Name, "HOA")
	assert.Contains(t, group.OwnerEmail, "@")

	house := f.BuildHouse()
	assert.NotEmpty(t, house.Address)
}
