package entity

import (
	"gorm.io/gorm"
)

// Municipality is one of Bulacan's towns; seeded once, never mutated by
// the curation core.
type Municipality struct {
	gorm.Model
	Name string `gorm:"not null" json:"name"`
	Slug string `gorm:"uniqueIndex;not null" json:"slug"`

	Dishes      []Dish       `json:"-"`
	Restaurants []Restaurant `json:"-"`
}
