package models

import (
	"time"

	"github.com/google/uuid"
)

// Category groups products under a unique display value. Its optional
// media row is loaded eagerly on every read path.
type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Value       string    `gorm:"type:varchar(100);uniqueIndex" json:"value"`
	Description string    `json:"description,omitempty"`
	Media       *Media    `gorm:"constraint:OnDelete:CASCADE" json:"media,omitempty"`
	Products    []Product `gorm:"many2many:product_has_category" json:"products,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Media is an image URL owned by at most one product or one category.
// Deleting the owner deletes the row.
type Media struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	URL        string     `json:"url"`
	ProductID  *uuid.UUID `gorm:"type:uuid;index" json:"product_id,omitempty"`
	CategoryID *uint      `gorm:"index" json:"category_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
