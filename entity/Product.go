package entity

import (
	"gorm.io/gorm"
)

// Menu item. Sides and sauces are themselves products (with their own price)
// attached as selectable add-ons; an order line references them by ID and
// snapshots their name/price at checkout.
type Product struct {
	gorm.Model
	Name      string `json:"name"`
	Detail    string `json:"detail"`
	Price     int64  `json:"price"` // minor currency units
	Available bool   `gorm:"default:true" json:"available"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"`

	MenuTypeID uint     `json:"menuTypeId"`
	MenuType   MenuType `json:"-"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Sides  []Product `gorm:"many2many:product_sides;joinForeignKey:ProductID;joinReferences:SideID" json:"sides,omitempty"`
	Sauces []Product `gorm:"many2many:product_sauces;joinForeignKey:ProductID;joinReferences:SauceID" json:"sauces,omitempty"`
}
