package entity

import (
	"gorm.io/gorm"
)

// Staff account. Customers never log in; they order through a table session.
type User struct {
	gorm.Model
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Password  string `json:"-"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `gorm:"not null;default:staff" json:"role"` // admin | owner | kitchen

	// preload only when needed
	RestaurantsOwned []Restaurant `gorm:"foreignKey:UserID" json:"-"`
}
