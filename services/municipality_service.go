package services

import (
	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/entity"
	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/pkg/remote"
	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/repository"
)

type MunicipalityService struct {
	Repo *repository.MunicipalityRepository
}

func NewMunicipalityService(repo *repository.MunicipalityRepository) *MunicipalityService {
	return &MunicipalityService{Repo: repo}
}

func (s *MunicipalityService) List() ([]entity.Municipality, error) {
	ms, err := s.Repo.FindAll()
	if err != nil {
		return nil, remote.Wrap(err)
	}
	return ms, nil
}

func (s *MunicipalityService) GetBySlug(slug string) (*entity.Municipality, error) {
	m, err := s.Repo.FindBySlug(slug)
	if err != nil {
		return nil, remote.Wrap(err)
	}
	return m, nil
}
