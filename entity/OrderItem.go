package entity

import (
	"gorm.io/gorm"
)

// Snapshot line: name/price are copied from the catalog at checkout, not live
// references. UnitPrice already includes the selected option surcharges.
type OrderItem struct {
	gorm.Model
	Name      string `json:"name"`
	Qty       int    `json:"qty"`
	UnitPrice int64  `json:"unitPrice"`
	Total     int64  `json:"total"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	ProductID  uint `json:"productId"`
	CategoryID uint `json:"categoryId"`
	MenuTypeID uint `json:"menuTypeId"`

	Options []OrderItemOption `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"options"`
}
