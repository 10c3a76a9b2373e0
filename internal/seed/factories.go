package seed

import (
	"fmt"
	"math/rand"
	"time"

	"hoahub/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds randomized domain entities and persists them. It is a
// thin helper used on top of the fixed demo dataset for load-style
// development data.
type Factory struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:  db,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// BuildUser constructs a random user without persisting it.
func (f *Factory) BuildUser() (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &models.User{
		Email:    gofakeit.Email(),
		Password: string(hash),
	}, nil
}

// CreateUsers persists n random users.
func (f *Factory) CreateUsers(n int) ([]models.User, error) {
	users := make([]models.User, 0, n)
	for i := 0; i < n; i++ {
		user, err := f.BuildUser()
		if err != nil {
			return nil, err
		}
		if err := f.db.Create(user).Error; err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, nil
}

// BuildGroup constructs a random HOA group without persisting it.
func (f *Factory) BuildGroup() *models.HOAGroup {
	return &models.HOAGroup{
		Name:       fmt.Sprintf("%s %s HOA", gofakeit.Adjective(), gofakeit.City()),
		OwnerEmail: gofakeit.Email(),
	}
}

// CreateGroups persists n random groups. Each gets one admin picked at
// random from pool, plus up to three random members.
func (f *Factory) CreateGroups(n int, pool []models.User) error {
	if len(pool) == 0 {
		return nil
	}
	for i := 0; i < n; i++ {
		group := f.BuildGroup()
		if err := f.db.Create(group).Error; err != nil {
			return err
		}

		admin := pool[f.rng.Intn(len(pool))]
		if err := f.db.Create(&models.HOAMembership{
			UserID:     admin.ID,
			HOAGroupID: group.ID,
			Role:       models.MembershipRoleAdmin,
		}).Error; err != nil {
			return err
		}

		for _, user := range f.pickMembers(pool, admin.ID) {
			err := f.db.Create(&models.HOAMembership{
				UserID:     user.ID,
				HOAGroupID: group.ID,
				Role:       models.MembershipRoleMember,
			}).Error
			if err != nil {
				return err
			}
		}

		for j := 0; j < f.rng.Intn(4); j++ {
			doc := &models.Document{
				Title:      gofakeit.Sentence(4),
				Content:    gofakeit.Paragraph(1, 3, 8, "\n"),
				HOAGroupID: group.ID,
			}
			if err := f.db.Create(doc).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// pickMembers selects up to three distinct users from pool, skipping the
// admin so no user gets two memberships in the same group.
func (f *Factory) pickMembers(pool []models.User, adminID uint) []models.User {
	shuffled := make([]models.User, len(pool))
	copy(shuffled, pool)
	f.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	members := make([]models.User, 0, 3)
	for _, user := range shuffled {
		if user.ID == adminID {
			continue
		}
		members = append(members, user)
		if len(members) == 3 {
			break
		}
	}
	return members
}

// BuildHouse constructs a random house without persisting it.
func (f *Factory) BuildHouse() *models.House {
	return &models.House{
		Address: fmt.Sprintf("%d %s %s",
			f.rng.Intn(9000)+100, gofakeit.LastName(), gofakeit.RandomString([]string{"St", "Ave", "Rd", "Blvd", "Ln"})),
	}
}
