package entity

import (
	"gorm.io/gorm"
)

const (
	RequestTypeServer = "server"
	RequestTypeBill   = "bill"

	RequestStatusPending = "pending"
	RequestStatusHandled = "handled"
)

// Waiter call / bill request. Two states only: created pending, staff marks it
// handled.
type ServiceRequest struct {
	gorm.Model
	Type   string `json:"type"`   // server | bill
	Status string `json:"status"` // pending | handled

	TableNumber int `json:"tableNumber"` // snapshot for display

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	TableID uint  `json:"tableId"`
	Table   Table `json:"-"`
}
