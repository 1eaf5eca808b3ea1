package entity

import (
	"gorm.io/gorm"
)

// One cart per table session (restaurant + table), discarded on checkout.
type Cart struct {
	gorm.Model
	RestaurantID uint       `gorm:"uniqueIndex:idx_cart_session" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	TableID uint  `gorm:"uniqueIndex:idx_cart_session" json:"tableId"`
	Table   Table `json:"-"`

	Items []CartItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
