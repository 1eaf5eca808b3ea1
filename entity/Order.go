package entity

import (
	"gorm.io/gorm"
)

// Total is fixed at creation; only OrderStatusID (and UpdatedAt) change
// afterwards.
type Order struct {
	gorm.Model
	Total int64 `json:"total"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	TableID uint  `json:"tableId"`
	Table   Table `json:"-"`

	OrderStatusID uint        `json:"orderStatusId"`
	OrderStatus   OrderStatus `json:"orderStatus"`

	Items []OrderItem `json:"items"`
}
