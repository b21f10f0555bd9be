package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/example/pepine/internal/apperrors"
	"github.com/example/pepine/internal/models"
	"github.com/example/pepine/internal/utils"
)

// ProductService implements catalog CRUD including the transactional
// media/category replacement on update.
type ProductService struct {
	db *gorm.DB
}

// NewProductService constructs a ProductService.
func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// ProductInput carries the fields accepted on product creation. Media is a
// list of image URLs, Categories a list of category ids; both become owned
// relations.
type ProductInput struct {
	Name             string
	ScientificName   string
	MaturityHeight   string
	MaturityWidth    string
	Family           string
	Origin           string
	FlowerColor      string
	LeafColor        string
	Description1     string
	Description2     string
	Size             string
	Pot              string
	Stock            float64
	Price            float64
	VAT              float64
	Status           bool
	Yield            string
	HardinessZone    string
	WaterRequirement string
	Exposure         string
	GroundCoverPower string
	Strate           string
	Foliage          string
	Media            []string
	Categories       []uint
}

// ProductUpdateInput is a partial update: nil fields are left untouched.
// A non-nil Media or Categories slice fully replaces the existing set,
// even when empty.
type ProductUpdateInput struct {
	Name             *string
	ScientificName   *string
	MaturityHeight   *string
	MaturityWidth    *string
	Family           *string
	Origin           *string
	FlowerColor      *string
	LeafColor        *string
	Description1     *string
	Description2     *string
	Size             *string
	Pot              *string
	Stock            *float64
	Price            *float64
	VAT              *float64
	Status           *bool
	Yield            *string
	HardinessZone    *string
	WaterRequirement *string
	Exposure         *string
	GroundCoverPower *string
	Strate           *string
	Foliage          *string
	Media            []string
	Categories       []uint
}

// ProductPage is a paginated catalog slice with aggregate counts.
type ProductPage struct {
	Products      []models.Product
	TotalProducts int64
	TotalPages    int
}

// Create persists a new product owned by the given user. Every referenced
// category must exist; missing ones abort the whole insert.
func (s *ProductService) Create(owner *models.User, input ProductInput) (*models.Product, error) {
	product := models.Product{
		Name:             input.Name,
		ScientificName:   input.ScientificName,
		MaturityHeight:   input.MaturityHeight,
		MaturityWidth:    input.MaturityWidth,
		Family:           input.Family,
		Origin:           input.Origin,
		FlowerColor:      input.FlowerColor,
		LeafColor:        input.LeafColor,
		Description1:     input.Description1,
		Description2:     input.Description2,
		Size:             input.Size,
		Pot:              input.Pot,
		Stock:            input.Stock,
		Price:            input.Price,
		VAT:              input.VAT,
		Status:           input.Status,
		Yield:            input.Yield,
		HardinessZone:    input.HardinessZone,
		WaterRequirement: input.WaterRequirement,
		Exposure:         input.Exposure,
		GroundCoverPower: input.GroundCoverPower,
		Strate:           input.Strate,
		Foliage:          input.Foliage,
		UserID:           owner.ID,
	}

	for _, url := range input.Media {
		product.Media = append(product.Media, models.Media{URL: url})
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		categories, err := s.resolveCategories(tx, input.Categories)
		if err != nil {
			return err
		}
		product.Categories = categories

		return tx.Create(&product).Error
	})
	if err != nil {
		return nil, classify(err, "product not found")
	}

	return s.Get(product.ID)
}

// List returns a catalog page with total product and page counts.
func (s *ProductService) List(offset, limit int) (*ProductPage, error) {
	var total int64
	if err := s.db.Model(&models.Product{}).Count(&total).Error; err != nil {
		return nil, apperrors.FromDB(err, "")
	}

	var products []models.Product
	if err := s.db.Preload("Media").Preload("Categories").Preload("User").
		Limit(limit).Offset(offset).
		Order("created_at desc").
		Find(&products).Error; err != nil {
		return nil, apperrors.FromDB(err, "")
	}

	return &ProductPage{
		Products:      products,
		TotalProducts: total,
		TotalPages:    utils.TotalPages(total, limit),
	}, nil
}

// FindByTerm resolves a product by id, case-insensitive name, or slug,
// with media, categories and owner populated.
func (s *ProductService) FindByTerm(term string) (*models.Product, error) {
	query := s.db.Preload("Media").Preload("Categories").Preload("User")

	var product models.Product
	var err error
	if id, parseErr := uuid.Parse(term); parseErr == nil {
		err = query.First(&product, "id = ?", id).Error
	} else {
		err = query.
			Where("UPPER(name) = ? OR slug = ?", strings.ToUpper(term), strings.ToLower(term)).
			First(&product).Error
	}
	if err != nil {
		return nil, apperrors.FromDB(err, "product not found")
	}

	return &product, nil
}

// Get loads a product by id with its relations.
func (s *ProductService) Get(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.Preload("Media").Preload("Categories").Preload("User").
		First(&product, "id = ?", id).Error; err != nil {
		return nil, apperrors.FromDB(err, "product not found")
	}
	return &product, nil
}

// Update applies a partial update atomically. A supplied media list
// replaces every owned media row; a supplied category list replaces every
// join-table association. Any failure, including a missing category id,
// rolls the whole operation back.
func (s *ProductService) Update(id uuid.UUID, input ProductUpdateInput) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		return nil, apperrors.FromDB(err, "product not found")
	}

	applyProductUpdate(&product, input)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if input.Media != nil {
			if err := tx.Where("product_id = ?", id).Delete(&models.Media{}).Error; err != nil {
				return err
			}
			for _, url := range input.Media {
				productID := id
				if err := tx.Create(&models.Media{URL: url, ProductID: &productID}).Error; err != nil {
					return err
				}
			}
		}

		if input.Categories != nil {
			categories, err := s.resolveCategories(tx, input.Categories)
			if err != nil {
				return err
			}
			if err := tx.Model(&product).Association("Categories").Replace(categories); err != nil {
				return err
			}
		}

		return tx.Omit(clause.Associations).Save(&product).Error
	})
	if err != nil {
		return nil, classify(err, "product not found")
	}

	return s.Get(id)
}

// Delete removes a product, its media and its category links. Historical
// order lines keep their snapshots and lose only the product reference.
func (s *ProductService) Delete(id uuid.UUID) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.Media{}).Error; err != nil {
			return err
		}

		product := models.Product{BaseModel: models.BaseModel{ID: id}}
		if err := tx.Model(&product).Association("Categories").Clear(); err != nil {
			return err
		}

		if err := tx.Model(&models.OrderLine{}).Where("product_id = ?", id).
			Update("product_id", nil).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Product{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.NotFoundf("product with id %s not found", id)
		}
		return nil
	})
	if err != nil {
		return classify(err, "product not found")
	}
	return nil
}

// DeleteAll wipes the catalog. Only the seed flow uses it.
func (s *ProductService) DeleteAll() error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id IS NOT NULL").Delete(&models.Media{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM product_has_category").Error; err != nil {
			return err
		}
		if err := tx.Model(&models.OrderLine{}).Where("product_id IS NOT NULL").
			Update("product_id", nil).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&models.Product{}).Error
	})
	if err != nil {
		return classify(err, "")
	}
	return nil
}

func (s *ProductService) resolveCategories(tx *gorm.DB, ids []uint) ([]models.Category, error) {
	categories := make([]models.Category, 0, len(ids))
	for _, categoryID := range ids {
		var category models.Category
		if err := tx.First(&category, "id = ?", categoryID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, apperrors.NotFoundf("category with id %d not found", categoryID)
			}
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, nil
}

func applyProductUpdate(product *models.Product, input ProductUpdateInput) {
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setString(&product.Name, input.Name)
	setString(&product.ScientificName, input.ScientificName)
	setString(&product.MaturityHeight, input.MaturityHeight)
	setString(&product.MaturityWidth, input.MaturityWidth)
	setString(&product.Family, input.Family)
	setString(&product.Origin, input.Origin)
	setString(&product.FlowerColor, input.FlowerColor)
	setString(&product.LeafColor, input.LeafColor)
	setString(&product.Description1, input.Description1)
	setString(&product.Description2, input.Description2)
	setString(&product.Size, input.Size)
	setString(&product.Pot, input.Pot)
	setString(&product.Yield, input.Yield)
	setString(&product.HardinessZone, input.HardinessZone)
	setString(&product.WaterRequirement, input.WaterRequirement)
	setString(&product.Exposure, input.Exposure)
	setString(&product.GroundCoverPower, input.GroundCoverPower)
	setString(&product.Strate, input.Strate)
	setString(&product.Foliage, input.Foliage)

	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.VAT != nil {
		product.VAT = *input.VAT
	}
	if input.Status != nil {
		product.Status = *input.Status
	}
}

// classify passes typed errors through and maps raw database errors.
func classify(err error, notFoundMessage string) error {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperrors.FromDB(err, notFoundMessage)
}
