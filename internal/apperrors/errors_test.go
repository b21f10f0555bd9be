package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestFromDBRecordNotFound(t *testing.T) {
	err := FromDB(gorm.ErrRecordNotFound, "product not found")

	assert.Equal(t, NotFound, err.Kind)
	assert.Equal(t, "product not found", err.Message)
	assert.Equal(t, http.StatusNotFound, err.HTTPStatus())
	assert.Equal(t, "Not Found", err.Label())
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestFromDBDuplicateKey(t *testing.T) {
	translated := FromDB(gorm.ErrDuplicatedKey, "")
	assert.Equal(t, Conflict, translated.Kind)
	assert.Equal(t, http.StatusConflict, translated.HTTPStatus())

	raw := FromDB(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), "")
	assert.Equal(t, Conflict, raw.Kind)
}

func TestFromDBUnknownError(t *testing.T) {
	err := FromDB(errors.New("connection reset"), "not used")

	assert.Equal(t, Internal, err.Kind)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus())
	assert.Equal(t, "Internal Server Error", err.Label())
}

func TestIsDuplicateKey(t *testing.T) {
	assert.True(t, IsDuplicateKey(gorm.ErrDuplicatedKey))
	assert.True(t, IsDuplicateKey(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsDuplicateKey(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsDuplicateKey(errors.New("boom")))
}

func TestValidationError(t *testing.T) {
	err := Validation([]string{"name is required", "price must be 0 or more"})

	assert.Equal(t, BadRequest, err.Kind)
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus())
	assert.Len(t, err.Messages, 2)
}
