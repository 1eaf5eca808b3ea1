package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name    string `json:"name"`
	Slug    string `gorm:"uniqueIndex" json:"slug"`
	Address string `json:"address"`

	UserID uint `json:"userId"` // owner (users.id)
	User   User `json:"-"`

	Tables   []Table   `json:"-"`
	Products []Product `json:"-"`
	Orders   []Order   `json:"-"`
}
