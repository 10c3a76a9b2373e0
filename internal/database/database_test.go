package database

import (
	"context"
	"testing"
	"time"

	"hoahub/internal/middleware"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestModelsMigrate(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)

	assert.NoError(t, db.AutoMigrate(Models()...))

	for _, table := range []string{"users", "hoa_groups", "hoa_memberships", "houses", "documents", "house_occupants"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestCustomGormLoggerIgnoresNotFound(t *testing.T) {
	l := &CustomGormLogger{
		logger: middleware.Logger,
		Config: logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	}

	// Must not panic for any trace path
	l.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT 1", 1
	}, gorm.ErrRecordNotFound)
	l.Trace(context.Background(), time.Now().Add(-time.Second), func() (string, int64) {
		return "SELECT 1", 1
	}, nil)

	leveled := l.LogMode(logger.Silent)
	leveled.Info(context.Background(), "ignored %s", "msg")
}
