package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/pepine/internal/apperrors"
	"github.com/example/pepine/internal/models"
)

func TestCategoryCreateWithMedia(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db)

	category, err := svc.Create(CategoryInput{
		Value:       "Aromatiques",
		Description: "Plantes aromatiques et condimentaires",
		Media:       "https://img.example.com/aromatiques.jpg",
	})
	require.NoError(t, err)

	assert.Equal(t, "Aromatiques", category.Value)
	require.NotNil(t, category.Media)
	assert.Equal(t, "https://img.example.com/aromatiques.jpg", category.Media.URL)
}

func TestCategoryCreateDuplicateValueConflict(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db)

	_, err := svc.Create(CategoryInput{Value: "Arbustes"})
	require.NoError(t, err)

	_, err = svc.Create(CategoryInput{Value: "Arbustes"})
	requireKind(t, err, apperrors.Conflict)
}

func TestCategoryGetNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db)

	_, err := svc.Get(999)
	requireKind(t, err, apperrors.NotFound)
}

func TestCategoryProductsAggregation(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "owner@example.com", models.RoleAdmin)
	products := NewProductService(db)
	svc := NewCategoryService(db)

	aromatic := createTestCategory(t, db, "Aromatiques")
	climbing := createTestCategory(t, db, "Grimpantes")

	for _, name := range []string{"Thym citron", "Romarin", "Sauge officinale"} {
		createTestProduct(t, products, owner, name, ProductInput{Categories: []uint{aromatic.ID}})
	}
	createTestProduct(t, products, owner, "Chèvrefeuille des bois", ProductInput{Categories: []uint{climbing.ID}})

	page, err := svc.ProductsByCategory(aromatic.ID, 0, 2)
	require.NoError(t, err)

	assert.Equal(t, "Aromatiques", page.Category.Value)
	assert.EqualValues(t, 3, page.TotalProducts)
	assert.Equal(t, 2, page.TotalPages)
	assert.Len(t, page.Products, 2)
	for _, p := range page.Products {
		assert.NotEqual(t, "Chèvrefeuille des bois", p.Name)
	}
}

func TestCategoryProductsUnknownCategory(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db)

	_, err := svc.ProductsByCategory(999, 0, 20)
	requireKind(t, err, apperrors.NotFound)
}

func TestCategoryUpdateReplacesMedia(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db)

	category, err := svc.Create(CategoryInput{
		Value: "Arbustes",
		Media: "https://img.example.com/old.jpg",
	})
	require.NoError(t, err)

	updated, err := svc.Update(category.ID, CategoryInput{
		Description: "Arbustes d'ornement",
		Media:       "https://img.example.com/new.jpg",
	})
	require.NoError(t, err)

	assert.Equal(t, "Arbustes", updated.Value)
	assert.Equal(t, "Arbustes d'ornement", updated.Description)
	require.NotNil(t, updated.Media)
	assert.Equal(t, "https://img.example.com/new.jpg", updated.Media.URL)

	var rows int64
	require.NoError(t, db.Model(&models.Media{}).Where("category_id = ?", category.ID).Count(&rows).Error)
	assert.EqualValues(t, 1, rows)
}

func TestCategoryDeleteClearsJoinRows(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "owner@example.com", models.RoleAdmin)
	products := NewProductService(db)
	svc := NewCategoryService(db)

	category, err := svc.Create(CategoryInput{
		Value: "Aromatiques",
		Media: "https://img.example.com/aromatiques.jpg",
	})
	require.NoError(t, err)
	product := createTestProduct(t, products, owner, "Thym citron", ProductInput{Categories: []uint{category.ID}})

	require.NoError(t, svc.Delete(category.ID))

	_, err = svc.Get(category.ID)
	requireKind(t, err, apperrors.NotFound)

	// the product survives, only the link goes away
	reloaded, err := products.Get(product.ID)
	require.NoError(t, err)
	assert.Empty(t, reloaded.Categories)

	var rows int64
	require.NoError(t, db.Model(&models.Media{}).Where("category_id = ?", category.ID).Count(&rows).Error)
	assert.Zero(t, rows)
}

func TestCategoryDeleteNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db)

	err := svc.Delete(999)
	requireKind(t, err, apperrors.NotFound)
}
