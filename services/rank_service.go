package services

import (
	"fmt"

	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/entity"
	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/pkg/opgate"
	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/pkg/optimistic"
	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/pkg/ranking"
	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/pkg/remote"
)

// DishRankGateway / RestaurantRankGateway are the narrow gateway slices
// the rank engine writes through.
type DishRankGateway interface {
	FindByID(id uint) (*entity.Dish, error)
	FindScope(municipalityID uint, category string) ([]entity.Dish, error)
	UpdateRank(id uint, rank *int, featured bool) error
}

type RestaurantRankGateway interface {
	FindByID(id uint) (*entity.Restaurant, error)
	FindScope(municipalityID uint) ([]entity.Restaurant, error)
	UpdateRank(id uint, rank *int, featured bool) error
}

// RankService drives rank-slot assignment for both curated kinds. The
// pure decision lives in pkg/ranking; this service fetches the scope,
// issues the planned writes and publishes invalidation.
type RankService struct {
	Dishes      DishRankGateway
	Restaurants RestaurantRankGateway
	Bus         *InvalidationBus
	gate        *opgate.Gate
}

func NewRankService(dishes DishRankGateway, restaurants RestaurantRankGateway, bus *InvalidationBus) *RankService {
	return &RankService{Dishes: dishes, Restaurants: restaurants, Bus: bus, gate: opgate.New()}
}

type RankOutcome string

const (
	RankApplied  RankOutcome = "applied"
	RankConfirm  RankOutcome = "confirm"
	RankDeclined RankOutcome = "declined"
)

type DishRankResult struct {
	Outcome  RankOutcome   `json:"outcome"`
	Conflict *entity.Dish  `json:"conflict,omitempty"`
	Items    []entity.Dish `json:"items,omitempty"` // scope after the change
}

type RestaurantRankResult struct {
	Outcome  RankOutcome         `json:"outcome"`
	Conflict *entity.Restaurant  `json:"conflict,omitempty"`
	Items    []entity.Restaurant `json:"items,omitempty"`
}

// SetDishRank assigns (or clears, via the toggle rule) a rank slot for a
// dish within its (municipality, category) scope. A concurrent call for
// the same dish is rejected with opgate.ErrInFlight until the first one
// settles.
func (s *RankService) SetDishRank(id uint, desired *int, decision ranking.Decision) (*DishRankResult, error) {
	key := fmt.Sprintf("rank:dish:%d", id)
	if err := s.gate.Begin(key); err != nil {
		return nil, err
	}
	defer s.gate.End(key)

	dish, err := s.Dishes.FindByID(id)
	if err != nil {
		return nil, remote.Wrap(err)
	}
	scope, err := s.Dishes.FindScope(dish.MunicipalityID, dish.Category)
	if err != nil {
		return nil, remote.Wrap(err)
	}

	engineScope := make([]ranking.Item, len(scope))
	for i, d := range scope {
		engineScope[i] = ranking.Item{ID: d.ID, MunicipalityID: d.MunicipalityID, Category: d.Category, Rank: d.Rank}
	}
	self := ranking.Item{ID: dish.ID, MunicipalityID: dish.MunicipalityID, Category: dish.Category, Rank: dish.Rank}

	res, err := ranking.SetRank(self, desired, engineScope, decision)
	if err != nil {
		return nil, err
	}

	switch res.Outcome {
	case ranking.NeedsConfirmation:
		conflict := findDish(scope, res.Conflict.ID)
		return &DishRankResult{Outcome: RankConfirm, Conflict: conflict}, nil
	case ranking.DeclinedNoop:
		return &DishRankResult{Outcome: RankDeclined}, nil
	}

	items, err := s.applyDishWrites(scope, res.Writes)
	if err != nil {
		return nil, err
	}

	if s.Bus != nil {
		s.Bus.Publish(Invalidation{Topic: TopicDishes, MunicipalityID: dish.MunicipalityID, ItemID: dish.ID})
	}
	return &DishRankResult{Outcome: RankApplied, Items: items}, nil
}

// applyDishWrites issues the planned writes in order while keeping a
// speculative local copy. The writes are two independent gateway calls,
// deliberately not a transaction: if the second fails after the first
// cleared the old holder, the slot is left empty and the same SetDishRank
// call can simply be retried.
func (s *RankService) applyDishWrites(scope []entity.Dish, writes []ranking.Write) ([]entity.Dish, error) {
	pending := optimistic.Begin(scope, optimistic.Command[[]entity.Dish]{
		Apply: func(items []entity.Dish) []entity.Dish {
			out := append([]entity.Dish(nil), items...)
			for _, w := range writes {
				for i := range out {
					if out[i].ID == w.ID {
						out[i].Rank = w.Rank
						out[i].Featured = w.Featured
					}
				}
			}
			return out
		},
		Revert: func([]entity.Dish) []entity.Dish {
			return append([]entity.Dish(nil), scope...)
		},
	})

	for _, w := range writes {
		if err := s.Dishes.UpdateRank(w.ID, w.Rank, w.Featured); err != nil {
			pending.Rollback()
			return nil, remote.Wrap(err)
		}
	}
	return pending.Confirm(), nil
}

// SetRestaurantRank is the restaurant counterpart; the scope is the
// municipality alone.
func (s *RankService) SetRestaurantRank(id uint, desired *int, decision ranking.Decision) (*RestaurantRankResult, error) {
	key := fmt.Sprintf("rank:restaurant:%d", id)
	if err := s.gate.Begin(key); err != nil {
		return nil, err
	}
	defer s.gate.End(key)

	rest, err := s.Restaurants.FindByID(id)
	if err != nil {
		return nil, remote.Wrap(err)
	}
	scope, err := s.Restaurants.FindScope(rest.MunicipalityID)
	if err != nil {
		return nil, remote.Wrap(err)
	}

	engineScope := make([]ranking.Item, len(scope))
	for i, r := range scope {
		engineScope[i] = ranking.Item{ID: r.ID, MunicipalityID: r.MunicipalityID, Rank: r.Rank}
	}
	self := ranking.Item{ID: rest.ID, MunicipalityID: rest.MunicipalityID, Rank: rest.Rank}

	res, err := ranking.SetRank(self, desired, engineScope, decision)
	if err != nil {
		return nil, err
	}

	switch res.Outcome {
	case ranking.NeedsConfirmation:
		conflict := findRestaurant(scope, res.Conflict.ID)
		return &RestaurantRankResult{Outcome: RankConfirm, Conflict: conflict}, nil
	case ranking.DeclinedNoop:
		return &RestaurantRankResult{Outcome: RankDeclined}, nil
	}

	items, err := s.applyRestaurantWrites(scope, res.Writes)
	if err != nil {
		return nil, err
	}

	if s.Bus != nil {
		s.Bus.Publish(Invalidation{Topic: TopicRestaurants, MunicipalityID: rest.MunicipalityID, ItemID: rest.ID})
	}
	return &RestaurantRankResult{Outcome: RankApplied, Items: items}, nil
}

func (s *RankService) applyRestaurantWrites(scope []entity.Restaurant, writes []ranking.Write) ([]entity.Restaurant, error) {
	pending := optimistic.Begin(scope, optimistic.Command[[]entity.Restaurant]{
		Apply: func(items []entity.Restaurant) []entity.Restaurant {
			out := append([]entity.Restaurant(nil), items...)
			for _, w := range writes {
				for i := range out {
					if out[i].ID == w.ID {
						out[i].Rank = w.Rank
						out[i].Featured = w.Featured
					}
				}
			}
			return out
		},
		Revert: func([]entity.Restaurant) []entity.Restaurant {
			return append([]entity.Restaurant(nil), scope...)
		},
	})

	for _, w := range writes {
		if err := s.Restaurants.UpdateRank(w.ID, w.Rank, w.Featured); err != nil {
			pending.Rollback()
			return nil, remote.Wrap(err)
		}
	}
	return pending.Confirm(), nil
}

func findDish(items []entity.Dish, id uint) *entity.Dish {
	for i := range items {
		if items[i].ID == id {
			return &items[i]
		}
	}
	return nil
}

func findRestaurant(items []entity.Restaurant, id uint) *entity.Restaurant {
	for i := range items {
		if items[i].ID == id {
			return &items[i]
		}
	}
	return nil
}
