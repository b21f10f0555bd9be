package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/pepine/internal/utils"
)

// Order statuses used by the default listing filter.
const (
	OrderStatusPending   = "en cours"
	OrderStatusValidated = "validée"
)

// Order is a purchase header owned by a user. Its lines are loaded
// eagerly on every read path.
type Order struct {
	BaseModel
	Reference  string      `json:"reference"`
	TotalPrice float64     `gorm:"type:numeric(10,2);default:0" json:"total_price"`
	Status     string      `gorm:"default:'en cours'" json:"status"`
	UserID     uuid.UUID   `gorm:"type:uuid;index" json:"user_id"`
	User       *User       `json:"user,omitempty"`
	Lines      []OrderLine `gorm:"constraint:OnDelete:CASCADE" json:"order_has_products,omitempty"`
}

// BeforeCreate assigns the id and a random upper-cased base-30 reference.
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if err := o.BaseModel.BeforeCreate(tx); err != nil {
		return err
	}
	if o.Reference == "" {
		o.Reference = utils.GenerateReference()
	}
	return nil
}

// OrderLine binds a product to an order with the quantity, unit price and
// VAT rate frozen at purchase time. The product reference is nullable so a
// historical line survives product deletion; the name snapshot keeps the
// line readable afterwards.
type OrderLine struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	ProductID      *uuid.UUID `gorm:"type:uuid;index" json:"product_id,omitempty"`
	Product        *Product   `json:"product,omitempty"`
	OrderID        uuid.UUID  `gorm:"type:uuid;index" json:"order_id"`
	ProductName    string     `json:"product_name"`
	Quantity       float64    `gorm:"default:0" json:"quantity"`
	PriceTimeOrder float64    `gorm:"type:numeric(10,2);default:0" json:"price_time_order"`
	VAT            float64    `json:"vat"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
