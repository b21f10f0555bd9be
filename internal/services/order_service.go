package services

import (
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/pepine/internal/apperrors"
	"github.com/example/pepine/internal/models"
	"github.com/example/pepine/internal/utils"
)

// OrderService implements order creation, line aggregation and the
// denormalized order listings.
type OrderService struct {
	db *gorm.DB
}

// NewOrderService constructs an OrderService.
func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// OrderInput carries the fields accepted when placing an order.
type OrderInput struct {
	TotalPrice float64
	Status     string
}

// OrderLineInput binds a product to an order. Price and VAT default to the
// product's current values when nil, freezing them into the line.
type OrderLineInput struct {
	ProductID      uuid.UUID
	OrderID        uuid.UUID
	Quantity       float64
	PriceTimeOrder *float64
	VAT            *float64
}

// OrderPage is a paginated order slice with aggregate counts.
type OrderPage struct {
	Orders      []models.Order
	TotalOrders int64
	TotalPages  int
}

// defaultStatuses is the "active" filter applied when the caller does not
// restrict the listing.
var defaultStatuses = []string{models.OrderStatusPending, models.OrderStatusValidated}

// Create places an order for the given user. The reference is generated at
// insert time and the total is stored as 2-decimal fixed point.
func (s *OrderService) Create(user *models.User, input OrderInput) (*models.Order, error) {
	order := models.Order{
		TotalPrice: round2(input.TotalPrice),
		UserID:     user.ID,
	}
	if input.Status != "" {
		order.Status = input.Status
	}

	if err := s.db.Create(&order).Error; err != nil {
		return nil, apperrors.FromDB(err, "order not found")
	}

	return &order, nil
}

// AddProduct creates an order line after verifying that both the product
// and the order exist. The line snapshots quantity, unit price and VAT so
// later product changes never alter historical orders.
func (s *OrderService) AddProduct(input OrderLineInput) (*models.OrderLine, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", input.ProductID).Error; err != nil {
		return nil, apperrors.FromDB(err, "product with id "+input.ProductID.String()+" not found")
	}

	var order models.Order
	if err := s.db.First(&order, "id = ?", input.OrderID).Error; err != nil {
		return nil, apperrors.FromDB(err, "order with id "+input.OrderID.String()+" not found")
	}

	price := product.Price
	if input.PriceTimeOrder != nil {
		price = *input.PriceTimeOrder
	}
	vat := product.VAT
	if input.VAT != nil {
		vat = *input.VAT
	}

	productID := product.ID
	line := models.OrderLine{
		ProductID:      &productID,
		OrderID:        order.ID,
		ProductName:    product.Name,
		Quantity:       input.Quantity,
		PriceTimeOrder: round2(price),
		VAT:            vat,
	}

	if err := s.db.Create(&line).Error; err != nil {
		return nil, apperrors.FromDB(err, "order not found")
	}

	return &line, nil
}

// List returns orders matching the status set (defaulting to the active
// statuses) as a denormalized view joining user, lines, products,
// categories and media.
func (s *OrderService) List(statuses []string, offset, limit int) (*OrderPage, error) {
	if len(statuses) == 0 {
		statuses = defaultStatuses
	}

	var total int64
	if err := s.db.Model(&models.Order{}).Where("status IN ?", statuses).
		Count(&total).Error; err != nil {
		return nil, apperrors.FromDB(err, "")
	}

	var orders []models.Order
	if err := s.preloadView(s.db).Where("status IN ?", statuses).
		Limit(limit).Offset(offset).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return nil, apperrors.FromDB(err, "")
	}

	return &OrderPage{
		Orders:      orders,
		TotalOrders: total,
		TotalPages:  utils.TotalPages(total, limit),
	}, nil
}

// ListByUser returns one user's orders, paginated.
func (s *OrderService) ListByUser(userID uuid.UUID, offset, limit int) (*OrderPage, error) {
	var total int64
	if err := s.db.Model(&models.Order{}).Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, apperrors.FromDB(err, "")
	}

	var orders []models.Order
	if err := s.preloadView(s.db).Where("user_id = ?", userID).
		Limit(limit).Offset(offset).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return nil, apperrors.FromDB(err, "")
	}

	return &OrderPage{
		Orders:      orders,
		TotalOrders: total,
		TotalPages:  utils.TotalPages(total, limit),
	}, nil
}

// Get loads one order with the full denormalized view.
func (s *OrderService) Get(id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := s.preloadView(s.db).First(&order, "id = ?", id).Error; err != nil {
		return nil, apperrors.FromDB(err, "order with id "+id.String()+" not found")
	}
	return &order, nil
}

// UpdateStatus changes an order's status.
func (s *OrderService) UpdateStatus(id uuid.UUID, status string) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, "id = ?", id).Error; err != nil {
		return nil, apperrors.FromDB(err, "order with id "+id.String()+" not found")
	}

	order.Status = status
	if err := s.db.Omit("Lines", "User").Save(&order).Error; err != nil {
		return nil, apperrors.FromDB(err, "order not found")
	}

	return s.Get(id)
}

// Delete removes an order and its lines.
func (s *OrderService) Delete(id uuid.UUID) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderLine{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Order{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.NotFoundf("order with id %s not found", id)
		}
		return nil
	})
	if err != nil {
		return classify(err, "order not found")
	}
	return nil
}

// DeleteAll wipes orders. Only the seed flow uses it.
func (s *OrderService) DeleteAll() error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.OrderLine{}).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&models.Order{}).Error
	})
	if err != nil {
		return classify(err, "")
	}
	return nil
}

func (s *OrderService) preloadView(db *gorm.DB) *gorm.DB {
	return db.Preload("User").
		Preload("Lines").
		Preload("Lines.Product").
		Preload("Lines.Product.Categories").
		Preload("Lines.Product.Media")
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
