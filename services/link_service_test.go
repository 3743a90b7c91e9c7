package services

import (
	"errors"
	"sync"
	"testing"

	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/entity"
	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/pkg/opgate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type pairKey struct {
	dish, restaurant uint
}

type fakeLinkGateway struct {
	mu          sync.Mutex
	rows        map[pairKey]entity.DishRestaurant
	fail        map[pairKey]error
	attachCalls int

	// when set, Attach announces itself on park and waits on release,
	// holding the call in flight until the test lets it settle
	park    chan struct{}
	release chan struct{}
}

func newFakeLinkGateway() *fakeLinkGateway {
	return &fakeLinkGateway{
		rows: make(map[pairKey]entity.DishRestaurant),
		fail: make(map[pairKey]error),
	}
}

func (f *fakeLinkGateway) Attach(dishID, restaurantID uint, priceNote, availability string) error {
	if f.park != nil {
		f.park <- struct{}{}
		<-f.release
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.attachCalls++

	key := pairKey{dishID, restaurantID}
	if err := f.fail[key]; err != nil {
		return err
	}
	if _, exists := f.rows[key]; !exists {
		f.rows[key] = entity.DishRestaurant{DishID: dishID, RestaurantID: restaurantID, PriceNote: priceNote, Availability: availability}
	}
	return nil
}

func (f *fakeLinkGateway) Detach(dishID, restaurantID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.rows, pairKey{dishID, restaurantID})
	return nil
}

func (f *fakeLinkGateway) FindRestaurantsForDish(dishID uint) ([]entity.Restaurant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.Restaurant
	for key := range f.rows {
		if key.dish == dishID {
			out = append(out, entity.Restaurant{Model: gorm.Model{ID: key.restaurant}})
		}
	}
	return out, nil
}

func (f *fakeLinkGateway) FindDishesForRestaurant(restaurantID uint) ([]entity.Dish, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.Dish
	for key := range f.rows {
		if key.restaurant == restaurantID {
			out = append(out, entity.Dish{Model: gorm.Model{ID: key.dish}})
		}
	}
	return out, nil
}

func TestLinkIsIdempotent(t *testing.T) {
	gw := newFakeLinkGateway()
	svc := NewLinkService(gw, nil)

	meta := LinkMeta{PriceNote: "₱120 per order", Availability: entity.AvailabilitySeasonal}
	require.NoError(t, svc.Link(1, 2, meta))
	require.NoError(t, svc.Link(1, 2, meta))

	assert.Len(t, gw.rows, 1)
	assert.Equal(t, entity.AvailabilitySeasonal, gw.rows[pairKey{1, 2}].Availability)
}

func TestLinkDefaultsAndValidatesAvailability(t *testing.T) {
	gw := newFakeLinkGateway()
	svc := NewLinkService(gw, nil)

	require.NoError(t, svc.Link(1, 2, LinkMeta{}))
	assert.Equal(t, entity.AvailabilityRegular, gw.rows[pairKey{1, 2}].Availability)

	err := svc.Link(1, 3, LinkMeta{Availability: "sometimes"})
	require.Error(t, err)
	assert.Len(t, gw.rows, 1)
}

func TestLinkRejectsDuplicateWhileInFlight(t *testing.T) {
	gw := newFakeLinkGateway()
	gw.park = make(chan struct{})
	gw.release = make(chan struct{})
	svc := NewLinkService(gw, nil)

	first := make(chan error, 1)
	go func() { first <- svc.Link(1, 2, LinkMeta{}) }()
	<-gw.park // first call is now inside the gateway

	// same pair: rejected before reaching the gateway; unlink shares
	// the pair's gate
	assert.ErrorIs(t, svc.Link(1, 2, LinkMeta{}), opgate.ErrInFlight)
	assert.ErrorIs(t, svc.Unlink(1, 2), opgate.ErrInFlight)

	close(gw.release)
	require.NoError(t, <-first)
	assert.Equal(t, 1, gw.attachCalls)

	// settled: the pair accepts a new submission
	gw.park, gw.release = nil, nil
	require.NoError(t, svc.Link(1, 2, LinkMeta{}))
	assert.Equal(t, 2, gw.attachCalls)
}

func TestBulkLinkRejectsDuplicateWhileInFlight(t *testing.T) {
	gw := newFakeLinkGateway()
	gw.park = make(chan struct{})
	gw.release = make(chan struct{})
	svc := NewLinkService(gw, nil)

	done := make(chan error, 1)
	go func() {
		_, err := svc.BulkLink([]uint{2, 1}, []uint{3}, LinkMeta{})
		done <- err
	}()
	<-gw.park

	// the gate keys on the id sets, so submission order does not matter
	_, err := svc.BulkLink([]uint{1, 2}, []uint{3}, LinkMeta{})
	assert.ErrorIs(t, err, opgate.ErrInFlight)

	close(gw.release)
	<-gw.park // second pair of the parked bulk
	require.NoError(t, <-done)
}

func TestUnlinkMissingPairIsNoop(t *testing.T) {
	gw := newFakeLinkGateway()
	svc := NewLinkService(gw, nil)

	assert.NoError(t, svc.Unlink(9, 9))
}

func TestBulkLinkIsBestEffort(t *testing.T) {
	gw := newFakeLinkGateway()
	gw.fail[pairKey{2, 1}] = errors.New("db down")
	svc := NewLinkService(gw, nil)

	res, err := svc.BulkLink([]uint{1, 2}, []uint{1, 2}, LinkMeta{})
	require.NoError(t, err)

	require.Len(t, res.Succeeded, 3)
	require.Len(t, res.Failed, 1)
	assert.Equal(t, uint(2), res.Failed[0].DishID)
	assert.Equal(t, uint(1), res.Failed[0].RestaurantID)
	assert.Equal(t, "db down", res.Failed[0].Error)

	// the three other pairs were created despite the failure
	assert.Len(t, gw.rows, 3)
}

func TestBulkLinkTreatsInputsAsSets(t *testing.T) {
	gw := newFakeLinkGateway()
	svc := NewLinkService(gw, nil)

	res, err := svc.BulkLink([]uint{1, 1, 1}, []uint{2, 2}, LinkMeta{})
	require.NoError(t, err)

	assert.Equal(t, 1, gw.attachCalls)
	assert.Len(t, res.Succeeded, 1)
}

func TestLinkedRestaurantIDsMembershipSet(t *testing.T) {
	gw := newFakeLinkGateway()
	svc := NewLinkService(gw, nil)

	require.NoError(t, svc.Link(1, 2, LinkMeta{}))
	require.NoError(t, svc.Link(1, 5, LinkMeta{}))

	ids, err := svc.LinkedRestaurantIDs(1)
	require.NoError(t, err)
	assert.Equal(t, map[uint]bool{2: true, 5: true}, ids)
}

func TestMutationsPublishInvalidation(t *testing.T) {
	gw := newFakeLinkGateway()
	bus := NewInvalidationBus()
	svc := NewLinkService(gw, bus)

	var events []Invalidation
	bus.Subscribe(func(ev Invalidation) { events = append(events, ev) })

	require.NoError(t, svc.Link(1, 2, LinkMeta{}))
	require.NoError(t, svc.Unlink(1, 2))
	_, err := svc.BulkLink([]uint{1}, []uint{3}, LinkMeta{})
	require.NoError(t, err)

	require.Len(t, events, 3)
	for _, ev := range events {
		assert.Equal(t, TopicLinks, ev.Topic)
	}
}
