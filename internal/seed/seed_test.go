package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/example/pepine/internal/config"
	"github.com/example/pepine/internal/database"
	"github.com/example/pepine/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	return db
}

func count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestSeedRun(t *testing.T) {
	db := newTestDB(t)
	cfg := &config.Config{JWTSecret: "test-secret", TokenExpires: time.Hour}

	require.NoError(t, Run(db, cfg))

	assert.EqualValues(t, len(seedUsers), count(t, db, &models.User{}))
	assert.EqualValues(t, len(seedCategories), count(t, db, &models.Category{}))
	assert.EqualValues(t, len(seedProducts), count(t, db, &models.Product{}))
	assert.EqualValues(t, len(seedOrders), count(t, db, &models.Order{}))
	assert.EqualValues(t, len(seedOrders)*len(seedProducts), count(t, db, &models.OrderLine{}))

	var admin models.User
	require.NoError(t, db.First(&admin, "email = ?", "claire@pepine.local").Error)
	assert.True(t, admin.IsAdmin())
}

func TestSeedRunTwice(t *testing.T) {
	db := newTestDB(t)
	cfg := &config.Config{JWTSecret: "test-secret", TokenExpires: time.Hour}

	require.NoError(t, Run(db, cfg))
	require.NoError(t, Run(db, cfg))

	// the previous dataset is wiped, not duplicated
	assert.EqualValues(t, len(seedProducts), count(t, db, &models.Product{}))
	assert.EqualValues(t, len(seedCategories), count(t, db, &models.Category{}))
}
