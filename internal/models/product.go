package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/pepine/internal/utils"
)

// NotAvailable is the sentinel stored for descriptive attributes the
// grower did not fill in.
const NotAvailable = "Non disponible"

// Product is a plant reference in the nursery catalog.
type Product struct {
	BaseModel
	Name             string     `gorm:"uniqueIndex" json:"name"`
	ScientificName   string     `gorm:"uniqueIndex" json:"scientific_name"`
	Slug             string     `gorm:"uniqueIndex" json:"slug"`
	MaturityHeight   string     `gorm:"default:'Non disponible'" json:"maturity_height"`
	MaturityWidth    string     `gorm:"default:'Non disponible'" json:"maturity_width"`
	Family           string     `gorm:"default:'Non disponible'" json:"family"`
	Origin           string     `gorm:"default:'Non disponible'" json:"origin"`
	FlowerColor      string     `gorm:"default:'Non disponible'" json:"flower_color"`
	LeafColor        string     `gorm:"default:'Non disponible'" json:"leaf_color"`
	Description1     string     `json:"description1"`
	Description2     string     `gorm:"default:'Non disponible'" json:"description2"`
	Size             string     `gorm:"default:'Non disponible'" json:"size"`
	Pot              string     `gorm:"default:'Non disponible'" json:"pot"`
	Stock            float64    `gorm:"default:0" json:"stock"`
	Price            float64    `gorm:"default:0" json:"price"`
	VAT              float64    `gorm:"default:0" json:"vat"`
	Status           bool       `gorm:"default:false" json:"status"`
	Yield            string     `gorm:"default:'Non disponible'" json:"yield"`
	HardinessZone    string     `gorm:"default:'Non disponible'" json:"hardiness_zone"`
	WaterRequirement string     `gorm:"default:'Non disponible'" json:"water_requirement"`
	Exposure         string     `gorm:"default:'Non disponible'" json:"exposure"`
	GroundCoverPower string     `gorm:"default:'Non disponible'" json:"ground_cover_power"`
	Strate           string     `gorm:"default:'Non disponible'" json:"strate"`
	Foliage          string     `gorm:"default:'Non disponible'" json:"foliage"`
	UserID           uuid.UUID  `gorm:"type:uuid;index" json:"user_id"`
	User             *User      `json:"user,omitempty"`
	Media            []Media    `gorm:"constraint:OnDelete:CASCADE" json:"media,omitempty"`
	Categories       []Category `gorm:"many2many:product_has_category;constraint:OnDelete:CASCADE" json:"categories,omitempty"`
	Lines            []OrderLine `gorm:"constraint:OnDelete:SET NULL" json:"-"`
}

// BeforeSave keeps the slug derived from the current name on every write;
// a client-supplied slug is never trusted.
func (p *Product) BeforeSave(tx *gorm.DB) error {
	if p.Name != "" {
		p.Slug = utils.Slugify(p.Name)
	}
	return nil
}
