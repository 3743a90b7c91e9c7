// repository/restaurant_repository.go
package repository

import (
	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/entity"
	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) FindByMunicipality(municipalityID uint) ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	err := r.DB.
		Preload("Municipality").
		Where("municipality_id = ?", municipalityID).
		Find(&rests).Error
	return rests, err
}

// FindScope returns every restaurant sharing a rank scope. Restaurant
// scopes are the municipality alone.
func (r *RestaurantRepository) FindScope(municipalityID uint) ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	err := r.DB.Where("municipality_id = ?", municipalityID).Find(&rests).Error
	return rests, err
}

func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	err := r.DB.Preload("Municipality").First(&rest, id).Error
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) Create(rest *entity.Restaurant) error {
	return r.DB.Create(rest).Error
}

func (r *RestaurantRepository) Update(rest *entity.Restaurant) error {
	return r.DB.Save(rest).Error
}

func (r *RestaurantRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Restaurant{}, id).Error
}

// UpdateRank writes rank/featured as a map so a nil rank becomes NULL.
func (r *RestaurantRepository) UpdateRank(id uint, rank *int, featured bool) error {
	return r.DB.Model(&entity.Restaurant{}).
		Where("id = ?", id).
		Updates(map[string]any{"rank": rank, "featured": featured}).Error
}
