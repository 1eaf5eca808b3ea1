package entity

import (
	"gorm.io/gorm"
)

// OptionsKey is the merge key: a fingerprint over the sorted side/sauce IDs.
// Same product + same key -> quantities merge; different key -> separate line.
type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId"`
	Cart   Cart `json:"-"`

	ProductID uint    `json:"productId"`
	Product   Product `json:"-"`

	Qty        int    `json:"qty"`
	OptionsKey string `gorm:"index" json:"-"`

	Options []CartItemOption `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"options"`
}
