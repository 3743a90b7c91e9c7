package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Cuisine     string `json:"cuisine"`

	MunicipalityID uint         `json:"municipalityId"`
	Municipality   Municipality `json:"-"`

	// Rank slot 1..3 within the municipality; nil = unranked.
	Rank     *int `json:"rank"`
	Featured bool `json:"featured"`

	Rating      float64 `json:"rating"`
	RatingCount int     `json:"ratingCount"`
	Popularity  int     `json:"popularity"`
	Price       int64   `json:"price"` // typical price per head

	Dishes []Dish `gorm:"many2many:dish_restaurants;" json:"-"`
}
