package services

import (
	"errors"
	"strings"

	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/entity"
	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/pkg/listquery"
	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/pkg/normalize"
	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/pkg/remote"
	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/repository"
)

type DishService struct {
	Repo           *repository.DishRepository
	Municipalities *repository.MunicipalityRepository
	Bus            *InvalidationBus
}

func NewDishService(repo *repository.DishRepository, muns *repository.MunicipalityRepository, bus *InvalidationBus) *DishService {
	return &DishService{Repo: repo, Municipalities: muns, Bus: bus}
}

// ListByMunicipality fetches the municipality's dishes once and runs the
// snapshot through the query pipeline.
func (s *DishService) ListByMunicipality(slug string, params listquery.Params) ([]listquery.Item, error) {
	mun, err := s.Municipalities.FindBySlug(slug)
	if err != nil {
		return nil, remote.Wrap(err)
	}

	dishes, err := s.Repo.FindByMunicipality(mun.ID)
	if err != nil {
		return nil, remote.Wrap(err)
	}

	items := make([]listquery.Item, len(dishes))
	for i, d := range dishes {
		items[i] = DishListItem(d)
	}
	return listquery.Apply(items, params), nil
}

// DishListItem maps a dish onto the pipeline's view, normalizing the
// serialized list columns at the gateway boundary.
func DishListItem(d entity.Dish) listquery.Item {
	return listquery.Item{
		ID:           d.ID,
		Name:         d.Name,
		Description:  d.Description,
		Ingredients:  normalize.StringList(d.Ingredients),
		Municipality: d.Municipality.Name,
		Category:     d.Category,
		DietaryTags:  normalize.StringList(d.DietaryTags),
		SpiceLevel:   d.SpiceLevel,
		Price:        d.Price,
		Rating:       d.Rating,
		RatingCount:  d.RatingCount,
		Popularity:   d.Popularity,
		Rank:         d.Rank,
		Featured:     d.Featured,
	}
}

type DishDetail struct {
	entity.Dish
	Ingredients  []string `json:"ingredients"`
	DietaryTags  []string `json:"dietaryTags"`
	Municipality string   `json:"municipality"`
}

func (s *DishService) Get(id uint) (*DishDetail, error) {
	dish, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, remote.Wrap(err)
	}
	return &DishDetail{
		Dish:         *dish,
		Ingredients:  normalize.StringList(dish.Ingredients),
		DietaryTags:  normalize.StringList(dish.DietaryTags),
		Municipality: dish.Municipality.Name,
	}, nil
}

// ----- DTOs from Controller -----

type DishIn struct {
	Name           string   `json:"name" binding:"required"`
	Description    string   `json:"description"`
	Ingredients    []string `json:"ingredients"`
	DietaryTags    []string `json:"dietaryTags"`
	Category       string   `json:"category" binding:"required"`
	SpiceLevel     string   `json:"spiceLevel"`
	MunicipalityID uint     `json:"municipalityId" binding:"required"`
	Price          int64    `json:"price"`
}

// Create is plain gateway CRUD; it never touches rank/featured, which
// only the rank engine writes.
func (s *DishService) Create(in *DishIn) (*entity.Dish, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, errors.New("name is required")
	}

	dish := &entity.Dish{
		Name:           strings.TrimSpace(in.Name),
		Description:    in.Description,
		Ingredients:    normalize.EncodeStringList(in.Ingredients),
		DietaryTags:    normalize.EncodeStringList(in.DietaryTags),
		Category:       in.Category,
		SpiceLevel:     in.SpiceLevel,
		MunicipalityID: in.MunicipalityID,
		Price:          in.Price,
	}
	if err := s.Repo.Create(dish); err != nil {
		return nil, remote.Wrap(err)
	}
	s.invalidate(dish.MunicipalityID, dish.ID)
	return dish, nil
}

func (s *DishService) Update(id uint, in *DishIn) (*entity.Dish, error) {
	dish, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, remote.Wrap(err)
	}

	dish.Name = strings.TrimSpace(in.Name)
	dish.Description = in.Description
	dish.Ingredients = normalize.EncodeStringList(in.Ingredients)
	dish.DietaryTags = normalize.EncodeStringList(in.DietaryTags)
	dish.Category = in.Category
	dish.SpiceLevel = in.SpiceLevel
	dish.Price = in.Price

	if err := s.Repo.Update(dish); err != nil {
		return nil, remote.Wrap(err)
	}
	s.invalidate(dish.MunicipalityID, dish.ID)
	return dish, nil
}

func (s *DishService) Delete(id uint) error {
	dish, err := s.Repo.FindByID(id)
	if err != nil {
		return remote.Wrap(err)
	}
	if err := s.Repo.Delete(id); err != nil {
		return remote.Wrap(err)
	}
	s.invalidate(dish.MunicipalityID, id)
	return nil
}

func (s *DishService) invalidate(municipalityID, dishID uint) {
	if s.Bus == nil {
		return
	}
	s.Bus.Publish(Invalidation{Topic: TopicDishes, MunicipalityID: municipalityID, ItemID: dishID})
}
