package repository

import (
	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/entity"
	"gorm.io/gorm"
)

type CuratorRepository struct {
	DB *gorm.DB
}

func NewCuratorRepository(db *gorm.DB) *CuratorRepository {
	return &CuratorRepository{DB: db}
}

func (r *CuratorRepository) FindByEmail(email string) (*entity.Curator, error) {
	var c entity.Curator
	err := r.DB.Where("email = ?", email).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}
