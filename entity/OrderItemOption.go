package entity

import (
	"gorm.io/gorm"
)

const (
	OptionKindSide  = "side"
	OptionKindSauce = "sauce"
)

// Selected side/sauce on an order line. Name and PriceDelta are denormalized
// so tickets render without re-joining the catalog.
type OrderItemOption struct {
	gorm.Model
	OrderItemID uint      `json:"orderItemId"`
	OrderItem   OrderItem `json:"-"`

	OptionProductID uint   `json:"optionProductId"`
	Kind            string `json:"kind"` // side | sauce
	Name            string `json:"name"`
	PriceDelta      int64  `json:"priceDelta"`
}
