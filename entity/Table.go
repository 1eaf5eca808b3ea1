package entity

import (
	"gorm.io/gorm"
)

// Physical table. QRToken is the opaque segment printed inside the QR code;
// scanning deep-links the customer into /r/{restaurantId}/t/{tableId}.
type Table struct {
	gorm.Model
	Number  int    `json:"number"`
	QRToken string `gorm:"uniqueIndex" json:"qrToken"`
	Active  bool   `gorm:"default:true" json:"active"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Orders []Order `json:"-"`
}
