package services

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/entity"
	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/pkg/opgate"
	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/pkg/remote"
)

// LinkGateway is the narrow slice of the data gateway the association
// manager consumes.
type LinkGateway interface {
	Attach(dishID, restaurantID uint, priceNote, availability string) error
	Detach(dishID, restaurantID uint) error
	FindRestaurantsForDish(dishID uint) ([]entity.Restaurant, error)
	FindDishesForRestaurant(restaurantID uint) ([]entity.Dish, error)
}

// LinkService manages the dish↔restaurant relation. It holds no durable
// cache; after any mutation consumers re-fetch the projections.
type LinkService struct {
	Gateway LinkGateway
	Bus     *InvalidationBus
	gate    *opgate.Gate
}

func NewLinkService(gateway LinkGateway, bus *InvalidationBus) *LinkService {
	return &LinkService{Gateway: gateway, Bus: bus, gate: opgate.New()}
}

type LinkMeta struct {
	PriceNote    string `json:"priceNote"`
	Availability string `json:"availability"`
}

// Link creates the pair if missing; an existing pair is success, not an
// error and not a duplicate row. A second submission for the same pair
// while one is in flight is rejected with opgate.ErrInFlight.
func (s *LinkService) Link(dishID, restaurantID uint, meta LinkMeta) error {
	if meta.Availability == "" {
		meta.Availability = entity.AvailabilityRegular
	}
	if !entity.ValidAvailability(meta.Availability) {
		return errors.New("availability must be regular, seasonal or preorder")
	}

	return s.gate.Do(pairGateKey(dishID, restaurantID), func() error {
		if err := s.Gateway.Attach(dishID, restaurantID, meta.PriceNote, meta.Availability); err != nil {
			return remote.Wrap(err)
		}
		s.invalidate(dishID)
		return nil
	})
}

// Unlink removes the pair; a missing pair is a no-op success. Link and
// unlink share the pair's gate key: they are the same toggle control.
func (s *LinkService) Unlink(dishID, restaurantID uint) error {
	return s.gate.Do(pairGateKey(dishID, restaurantID), func() error {
		if err := s.Gateway.Detach(dishID, restaurantID); err != nil {
			return remote.Wrap(err)
		}
		s.invalidate(dishID)
		return nil
	})
}

type PairResult struct {
	DishID       uint   `json:"dishId"`
	RestaurantID uint   `json:"restaurantId"`
	Error        string `json:"error,omitempty"`
}

// BulkResult is the all-settled aggregate: every pair in the cross
// product is reported, so the caller can retry failed pairs only.
type BulkResult struct {
	Succeeded []PairResult `json:"succeeded"`
	Failed    []PairResult `json:"failed"`
}

// BulkLink attempts every pair in dishIDs × restaurantIDs. Pairs run
// concurrently and independently; one failure never aborts the rest.
// Malformed metadata is rejected before any pair is attempted, and a
// duplicate submission of the same id sets while one is in flight is
// rejected with opgate.ErrInFlight.
func (s *LinkService) BulkLink(dishIDs, restaurantIDs []uint, meta LinkMeta) (BulkResult, error) {
	if meta.Availability == "" {
		meta.Availability = entity.AvailabilityRegular
	}
	if !entity.ValidAvailability(meta.Availability) {
		return BulkResult{}, errors.New("availability must be regular, seasonal or preorder")
	}

	dishIDs = dedupe(dishIDs)
	restaurantIDs = dedupe(restaurantIDs)

	var res BulkResult
	err := s.gate.Do(bulkGateKey(dishIDs, restaurantIDs), func() error {
		var (
			mu sync.Mutex
			wg sync.WaitGroup
		)
		for _, d := range dishIDs {
			for _, r := range restaurantIDs {
				wg.Add(1)
				go func(dishID, restID uint) {
					defer wg.Done()
					err := s.Gateway.Attach(dishID, restID, meta.PriceNote, meta.Availability)

					mu.Lock()
					defer mu.Unlock()
					if err != nil {
						res.Failed = append(res.Failed, PairResult{DishID: dishID, RestaurantID: restID, Error: err.Error()})
					} else {
						res.Succeeded = append(res.Succeeded, PairResult{DishID: dishID, RestaurantID: restID})
					}
				}(d, r)
			}
		}
		wg.Wait()
		return nil
	})
	if err != nil {
		return BulkResult{}, err
	}

	sortPairs(res.Succeeded)
	sortPairs(res.Failed)

	if len(res.Succeeded) > 0 && s.Bus != nil {
		s.Bus.Publish(Invalidation{Topic: TopicLinks})
	}
	return res, nil
}

func (s *LinkService) ListRestaurants(dishID uint) ([]entity.Restaurant, error) {
	rests, err := s.Gateway.FindRestaurantsForDish(dishID)
	if err != nil {
		return nil, remote.Wrap(err)
	}
	return rests, nil
}

func (s *LinkService) ListDishes(restaurantID uint) ([]entity.Dish, error) {
	dishes, err := s.Gateway.FindDishesForRestaurant(restaurantID)
	if err != nil {
		return nil, remote.Wrap(err)
	}
	return dishes, nil
}

// LinkedRestaurantIDs is the membership set toggle controls render from.
func (s *LinkService) LinkedRestaurantIDs(dishID uint) (map[uint]bool, error) {
	rests, err := s.ListRestaurants(dishID)
	if err != nil {
		return nil, err
	}
	ids := make(map[uint]bool, len(rests))
	for _, r := range rests {
		ids[r.ID] = true
	}
	return ids, nil
}

func (s *LinkService) invalidate(dishID uint) {
	if s.Bus == nil {
		return
	}
	s.Bus.Publish(Invalidation{Topic: TopicLinks, ItemID: dishID})
}

func pairGateKey(dishID, restaurantID uint) string {
	return fmt.Sprintf("link:%d:%d", dishID, restaurantID)
}

// bulkGateKey is order-insensitive: the deduped id sets identify the
// logical bulk operation, not the order they were submitted in.
func bulkGateKey(dishIDs, restaurantIDs []uint) string {
	return fmt.Sprintf("bulk:%v:%v", sorted(dishIDs), sorted(restaurantIDs))
}

func sorted(ids []uint) []uint {
	out := append([]uint(nil), ids...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func sortPairs(ps []PairResult) {
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].DishID != ps[j].DishID {
			return ps[i].DishID < ps[j].DishID
		}
		return ps[i].RestaurantID < ps[j].RestaurantID
	})
}
