package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/pepine/internal/apperrors"
	"github.com/example/pepine/internal/models"
	"github.com/example/pepine/internal/utils"
)

func TestUserUpdateForbiddenForOtherUser(t *testing.T) {
	db := newTestDB(t)
	current := createTestUser(t, db, "marc@example.com", models.RoleUser)
	other := createTestUser(t, db, "claire@example.com", models.RoleUser)
	svc := NewUserService(db)

	name := "Hacked"
	_, err := svc.Update(other.ID, current, UserUpdateInput{FirstName: &name})
	requireKind(t, err, apperrors.Forbidden)
}

func TestUserUpdateSelfNormalizesEmail(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "marc@example.com", models.RoleUser)
	svc := NewUserService(db)

	email := "  Marc.DUPONT@Example.COM "
	updated, err := svc.Update(user.ID, user, UserUpdateInput{Email: &email})
	require.NoError(t, err)

	assert.Equal(t, "marc.dupont@example.com", updated.Email)
}

func TestUserUpdateAdminCanEditAnyone(t *testing.T) {
	db := newTestDB(t)
	admin := createTestUser(t, db, "claire@example.com", models.RoleAdmin)
	user := createTestUser(t, db, "marc@example.com", models.RoleUser)
	svc := NewUserService(db)

	role := models.RoleAdmin
	inactive := false
	updated, err := svc.Update(user.ID, admin, UserUpdateInput{Role: &role, IsActive: &inactive})
	require.NoError(t, err)

	assert.True(t, updated.IsAdmin())
	assert.False(t, updated.IsActive)
}

func TestUserUpdateRehashesPassword(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "marc@example.com", models.RoleUser)
	svc := NewUserService(db)

	password := "new-secret"
	updated, err := svc.Update(user.ID, user, UserUpdateInput{Password: &password})
	require.NoError(t, err)

	assert.NotEqual(t, "new-secret", updated.Password)
	assert.True(t, utils.CheckPassword(updated.Password, "new-secret"))
}

func TestUserGetNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	_, err := svc.Get(uuid.New())
	requireKind(t, err, apperrors.NotFound)
}

func TestUserDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "owner@example.com", models.RoleAdmin)
	bystander := createTestUser(t, db, "bystander@example.com", models.RoleUser)
	category := createTestCategory(t, db, "Aromatiques")
	products := NewProductService(db)
	orders := NewOrderService(db)
	svc := NewUserService(db)

	product := createTestProduct(t, products, owner, "Thym citron", ProductInput{
		Media:      []string{"https://img.example.com/a.jpg"},
		Categories: []uint{category.ID},
	})
	order, err := orders.Create(owner, OrderInput{TotalPrice: 9})
	require.NoError(t, err)
	_, err = orders.AddProduct(OrderLineInput{ProductID: product.ID, OrderID: order.ID, Quantity: 2})
	require.NoError(t, err)

	keptOrder, err := orders.Create(bystander, OrderInput{})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(owner.ID))

	_, err = svc.Get(owner.ID)
	requireKind(t, err, apperrors.NotFound)
	_, err = products.Get(product.ID)
	requireKind(t, err, apperrors.NotFound)
	_, err = orders.Get(order.ID)
	requireKind(t, err, apperrors.NotFound)

	var mediaCount, lineCount int64
	require.NoError(t, db.Model(&models.Media{}).Where("product_id = ?", product.ID).Count(&mediaCount).Error)
	require.NoError(t, db.Model(&models.OrderLine{}).Count(&lineCount).Error)
	assert.Zero(t, mediaCount)
	assert.Zero(t, lineCount)

	// unrelated accounts and their orders stay put
	_, err = svc.Get(bystander.ID)
	require.NoError(t, err)
	_, err = orders.Get(keptOrder.ID)
	require.NoError(t, err)
}

func TestUserDeleteNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	err := svc.Delete(uuid.New())
	requireKind(t, err, apperrors.NotFound)
}

func TestUserListPagination(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	createTestUser(t, db, "a@example.com", models.RoleUser)
	createTestUser(t, db, "b@example.com", models.RoleUser)
	createTestUser(t, db, "c@example.com", models.RoleUser)

	page, err := svc.List(0, 2)
	require.NoError(t, err)

	assert.EqualValues(t, 3, page.TotalUsers)
	assert.Equal(t, 2, page.TotalPages)
	assert.Len(t, page.Users, 2)
}
