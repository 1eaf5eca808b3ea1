package entity

import (
	"gorm.io/gorm"
)

// Option reference only; prices are resolved against the live catalog when the
// total is computed, not snapshotted here.
type CartItemOption struct {
	gorm.Model
	CartItemID uint     `json:"cartItemId"`
	CartItem   CartItem `json:"-"`

	OptionProductID uint   `json:"optionProductId"`
	Kind            string `json:"kind"` // side | sauce
}
