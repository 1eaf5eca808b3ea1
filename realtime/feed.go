package realtime

import (
	"log"
	"sync"

	"tableside/entity"
	"tableside/repository"
)

// OrderFilter scopes a subscription to one tenant, optionally narrowed to a
// single table (TableID 0 means restaurant-wide).
type OrderFilter struct {
	RestaurantID uint
	TableID      uint
}

// OrderSubscription delivers full matching snapshots on C, recency first.
// Consumers diff against their own seen-sets; the feed never sends deltas.
type OrderSubscription struct {
	C chan []entity.Order

	filter OrderFilter
	feed   *OrderFeed
	once   sync.Once
	closed bool
}

// Unsubscribe stops all further deliveries and closes C. Safe to call any
// number of times.
func (s *OrderSubscription) Unsubscribe() {
	s.once.Do(func() {
		s.feed.mu.Lock()
		delete(s.feed.subs, s)
		s.closed = true
		close(s.C)
		s.feed.mu.Unlock()
	})
}

// OrderFeed re-queries the store after every published change and pushes the
// full matching set to each subscriber. A slow subscriber gets snapshots
// coalesced (latest wins) instead of blocking the writer.
type OrderFeed struct {
	repo *repository.OrderRepository

	mu   sync.Mutex
	subs map[*OrderSubscription]struct{}
}

func NewOrderFeed(repo *repository.OrderRepository) *OrderFeed {
	return &OrderFeed{repo: repo, subs: make(map[*OrderSubscription]struct{})}
}

func (f *OrderFeed) Subscribe(filter OrderFilter) *OrderSubscription {
	sub := &OrderSubscription{
		C:      make(chan []entity.Order, 1),
		filter: filter,
		feed:   f,
	}

	// query before registering so the initial snapshot can never overwrite
	// one a concurrent Publish delivered after registration
	snap, err := f.query(filter)

	f.mu.Lock()
	f.subs[sub] = struct{}{}
	if err == nil {
		f.send(sub, snap)
	}
	f.mu.Unlock()
	return sub
}

func (f *OrderFeed) query(filter OrderFilter) ([]entity.Order, error) {
	if filter.TableID != 0 {
		return f.repo.ListForTable(filter.RestaurantID, filter.TableID)
	}
	return f.repo.ListForRestaurant(filter.RestaurantID)
}

// Publish fans the restaurant's current order set out to every matching
// subscriber. Called after each committed create/transition.
func (f *OrderFeed) Publish(restaurantID uint) {
	f.mu.Lock()
	defer f.mu.Unlock()

	// one query per distinct filter, not per subscriber
	snaps := map[OrderFilter][]entity.Order{}
	for sub := range f.subs {
		if sub.filter.RestaurantID != restaurantID {
			continue
		}
		snap, ok := snaps[sub.filter]
		if !ok {
			var err error
			snap, err = f.query(sub.filter)
			if err != nil {
				log.Printf("order feed query failed: %v", err)
				continue
			}
			snaps[sub.filter] = snap
		}
		f.send(sub, snap)
	}
}

// send must run under f.mu; drops the stale buffered snapshot when the
// subscriber has not caught up.
func (f *OrderFeed) send(sub *OrderSubscription, snap []entity.Order) {
	if sub.closed {
		return
	}
	select {
	case sub.C <- snap:
	default:
		select {
		case <-sub.C:
		default:
		}
		select {
		case sub.C <- snap:
		default:
		}
	}
}

// NotificationFeed is the same snapshot fan-out for the staff notification
// list (unread only), keyed by restaurant.
type NotificationFeed struct {
	repo *repository.RequestRepository

	mu   sync.Mutex
	subs map[*NotificationSubscription]struct{}
}

type NotificationSubscription struct {
	C chan []entity.Notification

	restaurantID uint
	feed         *NotificationFeed
	once         sync.Once
	closed       bool
}

func (s *NotificationSubscription) Unsubscribe() {
	s.once.Do(func() {
		s.feed.mu.Lock()
		delete(s.feed.subs, s)
		s.closed = true
		close(s.C)
		s.feed.mu.Unlock()
	})
}

func NewNotificationFeed(repo *repository.RequestRepository) *NotificationFeed {
	return &NotificationFeed{repo: repo, subs: make(map[*NotificationSubscription]struct{})}
}

func (f *NotificationFeed) Subscribe(restaurantID uint) *NotificationSubscription {
	sub := &NotificationSubscription{
		C:            make(chan []entity.Notification, 1),
		restaurantID: restaurantID,
		feed:         f,
	}

	// same ordering as OrderFeed.Subscribe: snapshot first, then register
	// and send under one lock acquisition
	snap, err := f.repo.ListUnreadNotifications(restaurantID)

	f.mu.Lock()
	f.subs[sub] = struct{}{}
	if err == nil {
		f.sendLocked(sub, snap)
	}
	f.mu.Unlock()
	return sub
}

func (f *NotificationFeed) Publish(restaurantID uint) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var snap []entity.Notification
	queried := false
	for sub := range f.subs {
		if sub.restaurantID != restaurantID {
			continue
		}
		if !queried {
			var err error
			snap, err = f.repo.ListUnreadNotifications(restaurantID)
			if err != nil {
				log.Printf("notification feed query failed: %v", err)
				return
			}
			queried = true
		}
		f.sendLocked(sub, snap)
	}
}

func (f *NotificationFeed) sendLocked(sub *NotificationSubscription, snap []entity.Notification) {
	if sub.closed {
		return
	}
	select {
	case sub.C <- snap:
	default:
		select {
		case <-sub.C:
		default:
		}
		select {
		case sub.C <- snap:
		default:
		}
	}
}
