package entity

import (
	"gorm.io/gorm"
)

type Dish struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`

	// Serialized list columns. Historical rows hold a JSON array, a
	// comma-separated string, or a single bare value; readers must go
	// through pkg/normalize.
	Ingredients string `json:"-"`
	DietaryTags string `json:"-"`

	Category   string `json:"category"` // e.g. "kakanin", "main", "dessert"
	SpiceLevel string `json:"spiceLevel"`

	MunicipalityID uint         `json:"municipalityId"`
	Municipality   Municipality `json:"-"` // preloaded on list/detail reads only

	// Rank slot 1..3 within (municipality, category); nil = unranked.
	// Featured mirrors rank != nil; only the rank engine writes these.
	Rank     *int `json:"rank"`
	Featured bool `json:"featured"`

	Rating      float64 `json:"rating"`
	RatingCount int     `json:"ratingCount"`
	Popularity  int     `json:"popularity"`
	Price       int64   `json:"price"`

	Restaurants []Restaurant `gorm:"many2many:dish_restaurants;" json:"-"`
}
