package entity

import (
	"gorm.io/gorm"
)

const (
	NotificationUnread   = "unread"
	NotificationRead     = "read"
	NotificationArchived = "archived"
)

type Notification struct {
	gorm.Model
	Type    string `json:"type"` // server | bill
	Status  string `gorm:"default:unread" json:"status"`
	Message string `json:"message"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	TableID uint  `json:"tableId"`
	Table   Table `json:"-"`
}
