// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"

	"hoahub/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	// ExtraUsers adds randomly generated users on top of the fixed demo set.
	ExtraUsers int
	// ExtraGroups adds randomly generated HOA groups, each with a random
	// admin picked from the seeded users.
	ExtraGroups int
	ShouldClean bool
}

var demoUsers = []struct {
	Email    string
	Password string
}{
	{"user1@example.com", "password123"},
	{"user2@example.com", "password123"},
	{"user3@example.com", "password123"},
	{"user4@example.com", "password123"},
	{"user5@example.com", "password123"},
}

var demoGroups = []struct {
	Name       string
	OwnerEmail string
}{
	{"Sunset HOA", "owner1@hoa.com"},
	{"Lakeview HOA", "owner2@hoa.com"},
}

var demoHouses = []string{
	"123 Main St",
	"456 Oak Ave",
	"789 Pine Rd",
}

// Seed populates the database with the fixed demo dataset. Seeding is
// idempotent: rows that already exist are reused, not duplicated.
func Seed(db *gorm.DB, opts Options) error {
	log.Println("🌱 Starting database seeding...")

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	users, err := createUsers(db)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("✓ %d demo users available", len(users))

	groups, err := createGroups(db, users)
	if err != nil {
		return fmt.Errorf("failed to create hoa groups: %w", err)
	}
	log.Printf("✓ %d HOA groups available", len(groups))

	if err := createHouses(db, users); err != nil {
		return fmt.Errorf("failed to create houses: %w", err)
	}
	log.Printf("✓ %d houses available", len(demoHouses))

	if opts.ExtraUsers > 0 || opts.ExtraGroups > 0 {
		f := NewFactory(db)
		extraUsers, err := f.CreateUsers(opts.ExtraUsers)
		if err != nil {
			return fmt.Errorf("failed to create extra users: %w", err)
		}
		pool := append(users, extraUsers...)
		if err := f.CreateGroups(opts.ExtraGroups, pool); err != nil {
			return fmt.Errorf("failed to create extra groups: %w", err)
		}
		log.Printf("✓ %d extra users and %d extra groups created",
			opts.ExtraUsers, opts.ExtraGroups)
	}

	log.Println("🎉 Seeding complete: users, HOA groups, and houses created.")
	return nil
}

func createUsers(db *gorm.DB) ([]models.User, error) {
	users := make([]models.User, 0, len(demoUsers))
	for _, data := range demoUsers {
		var user models.User
		err := db.Where("email = ?", data.Email).First(&user).Error
		if err == gorm.ErrRecordNotFound {
			hash, herr := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
			if herr != nil {
				return nil, herr
			}
			user = models.User{Email: data.Email, Password: string(hash)}
			if cerr := db.Create(&user).Error; cerr != nil {
				return nil, cerr
			}
			log.Printf("Created user %s", user.Email)
		} else if err != nil {
			return nil, err
		} else {
			log.Printf("User %s already exists", user.Email)
		}
		users = append(users, user)
	}
	return users, nil
}

func createGroups(db *gorm.DB, users []models.User) ([]models.HOAGroup, error) {
	groups := make([]models.HOAGroup, 0, len(demoGroups))
	for _, data := range demoGroups {
		var group models.HOAGroup
		err := db.Where("name = ?", data.Name).First(&group).Error
		if err == gorm.ErrRecordNotFound {
			group = models.HOAGroup{Name: data.Name, OwnerEmail: data.OwnerEmail}
			if cerr := db.Create(&group).Error; cerr != nil {
				return nil, cerr
			}
		} else if err != nil {
			return nil, err
		}

		// First three users join each group as members.
		for _, user := range users[:min(3, len(users))] {
			membership := models.HOAMembership{
				UserID:     user.ID,
				HOAGroupID: group.ID,
				Role:       models.MembershipRoleMember,
			}
			err := db.Where("user_id = ? AND hoa_group_id = ?", user.ID, group.ID).
				First(&models.HOAMembership{}).Error
			if err == gorm.ErrRecordNotFound {
				if cerr := db.Create(&membership).Error; cerr != nil {
					return nil, cerr
				}
			} else if err != nil {
				return nil, err
			}
		}

		groups = append(groups, group)
		log.Printf("HOA Group seeded: %s", group.Name)
	}
	return groups, nil
}

func createHouses(db *gorm.DB, users []models.User) error {
	for _, address := range demoHouses {
		var house models.House
		err := db.Where("address = ?", address).First(&house).Error
		if err == gorm.ErrRecordNotFound {
			house = models.House{Address: address}
			if cerr := db.Create(&house).Error; cerr != nil {
				return cerr
			}
		} else if err != nil {
			return err
		}

		// First two users occupy every demo house.
		for _, user := range users[:min(2, len(users))] {
			var count int64
			if err := db.Table("house_occupants").
				Where("house_id = ? AND user_id = ?", house.ID, user.ID).
				Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				if err := db.Exec(
					"INSERT INTO house_occupants (house_id, user_id) VALUES (?, ?)",
					house.ID, user.ID).Error; err != nil {
					return err
				}
			}
		}
		log.Printf("House seeded: %s", address)
	}
	return nil
}

func clearData(db *gorm.DB) error {
	// Children first so no membership or document ever references a
	// deleted parent mid-clean.
	tables := []string{"hoa_memberships", "documents", "house_occupants", "houses", "hoa_groups", "users"}
	for _, table := range tables {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}
