package entity

// DishRestaurant is the join row linking a dish to a restaurant that
// serves it. The composite key keeps the pair unique.
type DishRestaurant struct {
	DishID       uint   `gorm:"primaryKey" json:"dishId"`
	RestaurantID uint   `gorm:"primaryKey" json:"restaurantId"`
	PriceNote    string `json:"priceNote"`
	Availability string `gorm:"not null;default:regular" json:"availability"`
}

const (
	AvailabilityRegular  = "regular"
	AvailabilitySeasonal = "seasonal"
	AvailabilityPreorder = "preorder"
)

func ValidAvailability(v string) bool {
	switch v {
	case AvailabilityRegular, AvailabilitySeasonal, AvailabilityPreorder:
		return true
	}
	return false
}
