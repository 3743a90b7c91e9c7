package repository

import (
	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/entity"
	"gorm.io/gorm"
)

type MunicipalityRepository struct {
	DB *gorm.DB
}

func NewMunicipalityRepository(db *gorm.DB) *MunicipalityRepository {
	return &MunicipalityRepository{DB: db}
}

func (r *MunicipalityRepository) FindAll() ([]entity.Municipality, error) {
	var ms []entity.Municipality
	err := r.DB.Order("name asc").Find(&ms).Error
	return ms, err
}

func (r *MunicipalityRepository) FindBySlug(slug string) (*entity.Municipality, error) {
	var m entity.Municipality
	err := r.DB.Where("slug = ?", slug).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}
