package repository

import (
	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/entity"
	"gorm.io/gorm"
)

type DishRepository struct {
	DB *gorm.DB
}

func NewDishRepository(db *gorm.DB) *DishRepository {
	return &DishRepository{DB: db}
}

func (r *DishRepository) FindByMunicipality(municipalityID uint) ([]entity.Dish, error) {
	var dishes []entity.Dish
	err := r.DB.
		Preload("Municipality").
		Where("municipality_id = ?", municipalityID).
		Find(&dishes).Error
	return dishes, err
}

// FindScope returns every dish sharing a rank scope (municipality × category).
func (r *DishRepository) FindScope(municipalityID uint, category string) ([]entity.Dish, error) {
	var dishes []entity.Dish
	err := r.DB.
		Where("municipality_id = ? AND category = ?", municipalityID, category).
		Find(&dishes).Error
	return dishes, err
}

func (r *DishRepository) FindByID(id uint) (*entity.Dish, error) {
	var dish entity.Dish
	err := r.DB.Preload("Municipality").First(&dish, id).Error
	if err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *DishRepository) Create(dish *entity.Dish) error {
	return r.DB.Create(dish).Error
}

func (r *DishRepository) Update(dish *entity.Dish) error {
	return r.DB.Save(dish).Error
}

func (r *DishRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Dish{}, id).Error
}

// UpdateRank is the partial write the rank engine issues. A map update is
// used on purpose: a nil rank must be written as NULL, not skipped the
// way zero-value struct updates are.
func (r *DishRepository) UpdateRank(id uint, rank *int, featured bool) error {
	return r.DB.Model(&entity.Dish{}).
		Where("id = ?", id).
		Updates(map[string]any{"rank": rank, "featured": featured}).Error
}
