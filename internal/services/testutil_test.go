package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/example/pepine/internal/apperrors"
	"github.com/example/pepine/internal/config"
	"github.com/example/pepine/internal/database"
	"github.com/example/pepine/internal/models"
)

func requireKind(t *testing.T, err error, kind apperrors.Kind) *apperrors.Error {
	t.Helper()

	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, kind, appErr.Kind, "unexpected error kind: %v", err)
	return appErr
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// a single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		TokenExpires:     time.Hour,
		ResetPasswordURL: "http://localhost:3000/reset-password",
	}
}

func createTestUser(t *testing.T, db *gorm.DB, email, role string) *models.User {
	t.Helper()

	user := models.User{
		FirstName: "Claire",
		LastName:  "Martin",
		Email:     email,
		Password:  "unused",
		Role:      role,
		IsActive:  true,
		Phone:     fmt.Sprintf("+33 %s", email),
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createTestCategory(t *testing.T, db *gorm.DB, value string) *models.Category {
	t.Helper()

	category := models.Category{Value: value}
	require.NoError(t, db.Create(&category).Error)
	return &category
}

func mediaURLs(media []models.Media) []string {
	urls := make([]string, 0, len(media))
	for _, m := range media {
		urls = append(urls, m.URL)
	}
	return urls
}

type fakeMailer struct {
	to      string
	subject string
	body    string
	sent    int
	err     error
}

func (m *fakeMailer) Send(to, subject, htmlBody string) error {
	m.sent++
	m.to = to
	m.subject = subject
	m.body = htmlBody
	return m.err
}
