package entity

import (
	"gorm.io/gorm"
)

// Seeded status names. Transitions run forward only:
// pending -> preparing -> ready -> delivered, cancelled from any non-terminal.
const (
	StatusPending   = "pending"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

type OrderStatus struct {
	gorm.Model
	StatusName string `gorm:"uniqueIndex" json:"statusName"`

	Orders []Order `json:"-"`
}
