package entity

import (
	"gorm.io/gorm"
)

type MenuType struct {
	gorm.Model
	Name string `json:"name"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Products []Product `json:"-"`
}
