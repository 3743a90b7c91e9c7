// services/restaurant_service.go
package services

import (
	"errors"
	"strings"

	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/entity"
	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/pkg/listquery"
	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/pkg/remote"
	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/repository"
)

type RestaurantService struct {
	Repo           *repository.RestaurantRepository
	Municipalities *repository.MunicipalityRepository
	Bus            *InvalidationBus
}

func NewRestaurantService(repo *repository.RestaurantRepository, muns *repository.MunicipalityRepository, bus *InvalidationBus) *RestaurantService {
	return &RestaurantService{Repo: repo, Municipalities: muns, Bus: bus}
}

func (s *RestaurantService) ListByMunicipality(slug string, params listquery.Params) ([]listquery.Item, error) {
	mun, err := s.Municipalities.FindBySlug(slug)
	if err != nil {
		return nil, remote.Wrap(err)
	}

	rests, err := s.Repo.FindByMunicipality(mun.ID)
	if err != nil {
		return nil, remote.Wrap(err)
	}

	items := make([]listquery.Item, len(rests))
	for i, r := range rests {
		items[i] = RestaurantListItem(r)
	}
	return listquery.Apply(items, params), nil
}

// RestaurantListItem maps a restaurant onto the pipeline's view; the
// cuisine doubles as the category for filtering.
func RestaurantListItem(r entity.Restaurant) listquery.Item {
	return listquery.Item{
		ID:           r.ID,
		Name:         r.Name,
		Description:  r.Description,
		Municipality: r.Municipality.Name,
		Category:     r.Cuisine,
		Price:        r.Price,
		Rating:       r.Rating,
		RatingCount:  r.RatingCount,
		Popularity:   r.Popularity,
		Rank:         r.Rank,
		Featured:     r.Featured,
	}
}

func (s *RestaurantService) Get(id uint) (*entity.Restaurant, error) {
	rest, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, remote.Wrap(err)
	}
	return rest, nil
}

// ----- DTOs from Controller -----

type RestaurantIn struct {
	Name           string `json:"name" binding:"required"`
	Description    string `json:"description"`
	Address        string `json:"address"`
	Cuisine        string `json:"cuisine"`
	MunicipalityID uint   `json:"municipalityId" binding:"required"`
	Price          int64  `json:"price"`
}

func (s *RestaurantService) Create(in *RestaurantIn) (*entity.Restaurant, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, errors.New("name is required")
	}

	rest := &entity.Restaurant{
		Name:           strings.TrimSpace(in.Name),
		Description:    in.Description,
		Address:        in.Address,
		Cuisine:        in.Cuisine,
		MunicipalityID: in.MunicipalityID,
		Price:          in.Price,
	}
	if err := s.Repo.Create(rest); err != nil {
		return nil, remote.Wrap(err)
	}
	s.invalidate(rest.MunicipalityID, rest.ID)
	return rest, nil
}

func (s *RestaurantService) Update(id uint, in *RestaurantIn) (*entity.Restaurant, error) {
	rest, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, remote.Wrap(err)
	}

	rest.Name = strings.TrimSpace(in.Name)
	rest.Description = in.Description
	rest.Address = in.Address
	rest.Cuisine = in.Cuisine
	rest.Price = in.Price

	if err := s.Repo.Update(rest); err != nil {
		return nil, remote.Wrap(err)
	}
	s.invalidate(rest.MunicipalityID, rest.ID)
	return rest, nil
}

func (s *RestaurantService) Delete(id uint) error {
	rest, err := s.Repo.FindByID(id)
	if err != nil {
		return remote.Wrap(err)
	}
	if err := s.Repo.Delete(id); err != nil {
		return remote.Wrap(err)
	}
	s.invalidate(rest.MunicipalityID, id)
	return nil
}

func (s *RestaurantService) invalidate(municipalityID, restaurantID uint) {
	if s.Bus == nil {
		return
	}
	s.Bus.Publish(Invalidation{Topic: TopicRestaurants, MunicipalityID: municipalityID, ItemID: restaurantID})
}
