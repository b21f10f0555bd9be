package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/pepine/internal/apperrors"
	"github.com/example/pepine/internal/models"
	"github.com/example/pepine/internal/utils"
)

// UserService implements account administration.
type UserService struct {
	db *gorm.DB
}

// NewUserService constructs a UserService.
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// UserUpdateInput is a partial account update: nil fields are untouched.
type UserUpdateInput struct {
	FirstName *string
	LastName  *string
	Email     *string
	Password  *string
	Role      *string
	IsActive  *bool
	Phone     *string
}

// UserPage is a paginated account slice with aggregate counts.
type UserPage struct {
	Users      []models.User
	TotalUsers int64
	TotalPages int
}

// List returns accounts with pagination aggregates. Passwords are never
// serialized by the model.
func (s *UserService) List(offset, limit int) (*UserPage, error) {
	var total int64
	if err := s.db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, apperrors.FromDB(err, "")
	}

	var users []models.User
	if err := s.db.Limit(limit).Offset(offset).
		Order("created_at desc").
		Find(&users).Error; err != nil {
		return nil, apperrors.FromDB(err, "")
	}

	return &UserPage{
		Users:      users,
		TotalUsers: total,
		TotalPages: utils.TotalPages(total, limit),
	}, nil
}

// Get loads one account by id.
func (s *UserService) Get(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, apperrors.FromDB(err, "user with id "+id.String()+" not found")
	}
	return &user, nil
}

// Update applies a partial account update. A plain user may only update
// their own account; admins may update anyone. A supplied password is
// re-hashed, a supplied email re-normalized by the model hook.
func (s *UserService) Update(id uuid.UUID, current *models.User, input UserUpdateInput) (*models.User, error) {
	if !current.IsAdmin() && current.ID != id {
		return nil, apperrors.Forbiddenf("you do not have permission to update this user")
	}

	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Password != nil {
		hash, err := utils.HashPassword(*input.Password)
		if err != nil {
			return nil, apperrors.Internalf("failed to hash password")
		}
		user.Password = hash
	}

	if err := s.db.Omit("Orders", "Products").Save(user).Error; err != nil {
		return nil, apperrors.FromDB(err, "user not found")
	}

	return user, nil
}

// Delete removes an account with its orders and products, mirroring the
// schema's cascade rules explicitly.
func (s *UserService) Delete(id uuid.UUID) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var productIDs []uuid.UUID
		if err := tx.Model(&models.Product{}).Where("user_id = ?", id).
			Pluck("id", &productIDs).Error; err != nil {
			return err
		}

		if len(productIDs) > 0 {
			if err := tx.Where("product_id IN ?", productIDs).Delete(&models.Media{}).Error; err != nil {
				return err
			}
			if err := tx.Exec("DELETE FROM product_has_category WHERE product_id IN ?", productIDs).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.OrderLine{}).Where("product_id IN ?", productIDs).
				Update("product_id", nil).Error; err != nil {
				return err
			}
			if err := tx.Where("user_id = ?", id).Delete(&models.Product{}).Error; err != nil {
				return err
			}
		}

		var orderIDs []uuid.UUID
		if err := tx.Model(&models.Order{}).Where("user_id = ?", id).
			Pluck("id", &orderIDs).Error; err != nil {
			return err
		}
		if len(orderIDs) > 0 {
			if err := tx.Where("order_id IN ?", orderIDs).Delete(&models.OrderLine{}).Error; err != nil {
				return err
			}
			if err := tx.Where("user_id = ?", id).Delete(&models.Order{}).Error; err != nil {
				return err
			}
		}

		result := tx.Delete(&models.User{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.NotFoundf("user with id %s not found", id)
		}
		return nil
	})
	if err != nil {
		return classify(err, "user not found")
	}
	return nil
}

// DeleteAll wipes accounts. Only the seed flow uses it.
func (s *UserService) DeleteAll() error {
	if err := s.db.Where("1 = 1").Delete(&models.User{}).Error; err != nil {
		return classify(err, "")
	}
	return nil
}
