package models

import (
	"gorm.io/gorm"

	"github.com/example/pepine/internal/utils"
)

// Roles a user account can carry.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents an account able to own products and place orders.
type User struct {
	BaseModel
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `gorm:"uniqueIndex" json:"email"`
	Password  string    `json:"-"`
	Role      string    `gorm:"default:user" json:"role"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	Phone     string    `gorm:"uniqueIndex" json:"phone"`
	Orders    []Order   `gorm:"constraint:OnDelete:CASCADE" json:"orders,omitempty"`
	Products  []Product `gorm:"constraint:OnDelete:CASCADE" json:"products,omitempty"`
}

// BeforeSave normalizes the email on insert and update.
func (u *User) BeforeSave(tx *gorm.DB) error {
	u.Email = utils.NormalizeEmail(u.Email)
	return nil
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
