package services

import (
	"gorm.io/gorm"

	"github.com/example/pepine/internal/apperrors"
	"github.com/example/pepine/internal/models"
	"github.com/example/pepine/internal/utils"
)

// CategoryService implements category CRUD and the category/product
// listing aggregation.
type CategoryService struct {
	db *gorm.DB
}

// NewCategoryService constructs a CategoryService.
func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// CategoryInput carries the fields accepted on create and update. Media is
// a single image URL; empty leaves the current media untouched.
type CategoryInput struct {
	Value       string
	Description string
	Media       string
}

// CategoryProductsPage is the aggregate returned when listing a
// category's products.
type CategoryProductsPage struct {
	Category      *models.Category
	Products      []models.Product
	TotalProducts int64
	TotalPages    int
}

// Create persists a category and, when a URL is supplied, its owned media
// row. A duplicate value surfaces as Conflict.
func (s *CategoryService) Create(input CategoryInput) (*models.Category, error) {
	category := models.Category{
		Value:       input.Value,
		Description: input.Description,
	}
	if input.Media != "" {
		category.Media = &models.Media{URL: input.Media}
	}

	if err := s.db.Create(&category).Error; err != nil {
		return nil, apperrors.FromDB(err, "category not found")
	}

	return s.Get(category.ID)
}

// List returns categories with their media, paginated.
func (s *CategoryService) List(offset, limit int) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Preload("Media").
		Limit(limit).Offset(offset).
		Order("created_at desc").
		Find(&categories).Error; err != nil {
		return nil, apperrors.FromDB(err, "")
	}
	return categories, nil
}

// Get loads a category with its media.
func (s *CategoryService) Get(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.Preload("Media").First(&category, "id = ?", id).Error; err != nil {
		return nil, apperrors.FromDB(err, "category not found")
	}
	return &category, nil
}

// ProductsByCategory returns the paginated products linked to a category
// together with the category detail and aggregate counts.
func (s *CategoryService) ProductsByCategory(id uint, offset, limit int) (*CategoryProductsPage, error) {
	category, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	base := s.db.Model(&models.Product{}).
		Joins("JOIN product_has_category phc ON phc.product_id = products.id").
		Where("phc.category_id = ?", id)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, apperrors.FromDB(err, "")
	}

	var products []models.Product
	if err := base.Preload("Media").Preload("Categories").
		Limit(limit).Offset(offset).
		Order("products.created_at desc").
		Find(&products).Error; err != nil {
		return nil, apperrors.FromDB(err, "")
	}

	return &CategoryProductsPage{
		Category:      category,
		Products:      products,
		TotalProducts: total,
		TotalPages:    utils.TotalPages(total, limit),
	}, nil
}

// Update modifies a category; a supplied media URL replaces the owned
// media row.
func (s *CategoryService) Update(id uint, input CategoryInput) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, "id = ?", id).Error; err != nil {
		return nil, apperrors.FromDB(err, "category not found")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if input.Media != "" {
			if err := tx.Where("category_id = ?", id).Delete(&models.Media{}).Error; err != nil {
				return err
			}
			categoryID := id
			if err := tx.Create(&models.Media{URL: input.Media, CategoryID: &categoryID}).Error; err != nil {
				return err
			}
		}

		if input.Value != "" {
			category.Value = input.Value
		}
		if input.Description != "" {
			category.Description = input.Description
		}

		return tx.Omit("Media", "Products").Save(&category).Error
	})
	if err != nil {
		return nil, classify(err, "category not found")
	}

	return s.Get(id)
}

// Delete removes a category, its media and its join-table rows.
func (s *CategoryService) Delete(id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&models.Media{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM product_has_category WHERE category_id = ?", id).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Category{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.NotFoundf("category with id %d not found", id)
		}
		return nil
	})
	if err != nil {
		return classify(err, "category not found")
	}
	return nil
}

// DeleteAll wipes categories. Only the seed flow uses it.
func (s *CategoryService) DeleteAll() error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id IS NOT NULL").Delete(&models.Media{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM product_has_category").Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&models.Category{}).Error
	})
	if err != nil {
		return classify(err, "")
	}
	return nil
}
