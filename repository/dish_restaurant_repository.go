package repository

import (
	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/entity"
	"gorm.io/gorm"
)

type DishRestaurantRepository struct {
	DB *gorm.DB
}

func NewDishRestaurantRepository(db *gorm.DB) *DishRestaurantRepository {
	return &DishRestaurantRepository{DB: db}
}

// Attach links a dish to a restaurant. FirstOrCreate keeps it
// idempotent: an existing pair is left as-is (metadata included) and
// reported as success.
func (r *DishRestaurantRepository) Attach(dishID, restaurantID uint, priceNote, availability string) error {
	row := entity.DishRestaurant{DishID: dishID, RestaurantID: restaurantID}
	return r.DB.
		Where("dish_id = ? AND restaurant_id = ?", dishID, restaurantID).
		Attrs(entity.DishRestaurant{PriceNote: priceNote, Availability: availability}).
		FirstOrCreate(&row).Error
}

// Detach removes the pair; deleting a missing row is a no-op success.
func (r *DishRestaurantRepository) Detach(dishID, restaurantID uint) error {
	return r.DB.Delete(&entity.DishRestaurant{}, "dish_id = ? AND restaurant_id = ?", dishID, restaurantID).Error
}

func (r *DishRestaurantRepository) FindRestaurantsForDish(dishID uint) ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	err := r.DB.
		Joins("JOIN dish_restaurants dr ON dr.restaurant_id = restaurants.id").
		Where("dr.dish_id = ?", dishID).
		Preload("Municipality").
		Find(&rests).Error
	return rests, err
}

func (r *DishRestaurantRepository) FindDishesForRestaurant(restaurantID uint) ([]entity.Dish, error) {
	var dishes []entity.Dish
	err := r.DB.
		Joins("JOIN dish_restaurants dr ON dr.dish_id = dishes.id").
		Where("dr.restaurant_id = ?", restaurantID).
		Preload("Municipality").
		Find(&dishes).Error
	return dishes, err
}

// FindLinksForDish returns the raw join rows, metadata included.
func (r *DishRestaurantRepository) FindLinksForDish(dishID uint) ([]entity.DishRestaurant, error) {
	var links []entity.DishRestaurant
	err := r.DB.Where("dish_id = ?", dishID).Find(&links).Error
	return links, err
}
