package realtime

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tableside/entity"
	"tableside/repository"
)

func setupFeedDB(t *testing.T) (*gorm.DB, *repository.OrderRepository, uint) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// a second pool connection would see its own empty in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.Restaurant{}, &entity.Table{},
		&entity.OrderStatus{}, &entity.Order{}, &entity.OrderItem{}, &entity.OrderItemOption{},
		&entity.Notification{},
	))

	st := &entity.OrderStatus{StatusName: entity.StatusPending}
	require.NoError(t, db.Create(st).Error)

	return db, repository.NewOrderRepository(db), st.ID
}

func addOrder(t *testing.T, db *gorm.DB, restID, tableID, statusID uint, createdAt time.Time) *entity.Order {
	t.Helper()
	o := &entity.Order{
		Model:         gorm.Model{CreatedAt: createdAt, UpdatedAt: createdAt},
		RestaurantID:  restID,
		TableID:       tableID,
		Total:         1000,
		OrderStatusID: statusID,
	}
	require.NoError(t, db.Create(o).Error)
	return o
}

func recv(t *testing.T, c chan []entity.Order) []entity.Order {
	t.Helper()
	select {
	case snap := <-c:
		return snap
	case <-time.After(time.Second):
		t.Fatal("no snapshot delivered")
		return nil
	}
}

func TestFeedDeliversInitialSnapshot(t *testing.T) {
	db, repo, statusID := setupFeedDB(t)
	base := time.Now().Add(-time.Hour)
	addOrder(t, db, 1, 1, statusID, base)
	addOrder(t, db, 1, 1, statusID, base.Add(time.Minute))

	feed := NewOrderFeed(repo)
	sub := feed.Subscribe(OrderFilter{RestaurantID: 1})
	defer sub.Unsubscribe()

	snap := recv(t, sub.C)
	require.Len(t, snap, 2)
	// recency first
	assert.True(t, !snap[0].CreatedAt.Before(snap[1].CreatedAt))
}

func TestFeedPublishDeliversFullMatchingSet(t *testing.T) {
	db, repo, statusID := setupFeedDB(t)
	feed := NewOrderFeed(repo)

	restWide := feed.Subscribe(OrderFilter{RestaurantID: 1})
	defer restWide.Unsubscribe()
	tableScoped := feed.Subscribe(OrderFilter{RestaurantID: 1, TableID: 2})
	defer tableScoped.Unsubscribe()
	otherTenant := feed.Subscribe(OrderFilter{RestaurantID: 9})
	defer otherTenant.Unsubscribe()

	// drain initial snapshots
	recv(t, restWide.C)
	recv(t, tableScoped.C)
	recv(t, otherTenant.C)

	now := time.Now()
	addOrder(t, db, 1, 1, statusID, now)
	addOrder(t, db, 1, 2, statusID, now.Add(time.Second))
	feed.Publish(1)

	assert.Len(t, recv(t, restWide.C), 2, "restaurant-wide sees every table")
	tableSnap := recv(t, tableScoped.C)
	require.Len(t, tableSnap, 1, "table-scoped sees only its own orders")
	assert.Equal(t, uint(2), tableSnap[0].TableID)

	select {
	case snap := <-otherTenant.C:
		t.Fatalf("foreign tenant received %d orders", len(snap))
	default:
	}
}

func TestFeedCoalescesForSlowSubscribers(t *testing.T) {
	db, repo, statusID := setupFeedDB(t)
	feed := NewOrderFeed(repo)
	sub := feed.Subscribe(OrderFilter{RestaurantID: 1})
	defer sub.Unsubscribe()

	// subscriber never reads; repeated publishes must not block
	now := time.Now()
	for i := 0; i < 5; i++ {
		addOrder(t, db, 1, 1, statusID, now.Add(time.Duration(i)*time.Second))
		feed.Publish(1)
	}

	// the buffered snapshot is the latest one
	snap := recv(t, sub.C)
	assert.Len(t, snap, 5)
}

func TestFeedInitialSnapshotNeverMasksLaterPublish(t *testing.T) {
	db, repo, statusID := setupFeedDB(t)
	feed := NewOrderFeed(repo)

	addOrder(t, db, 1, 1, statusID, time.Now().Add(-time.Minute))

	// subscribe from many goroutines while publishes race the initial
	// snapshots
	subs := make(chan *OrderSubscription, 16)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			subs <- feed.Subscribe(OrderFilter{RestaurantID: 1})
			feed.Publish(1)
		}()
	}
	wg.Wait()
	close(subs)

	// every initial send happened before Subscribe returned, so a publish
	// issued after all subscriptions exist wins every buffer
	addOrder(t, db, 1, 1, statusID, time.Now())
	feed.Publish(1)

	for sub := range subs {
		snap := recv(t, sub.C)
		assert.Len(t, snap, 2, "buffered snapshot must be the freshest one")
		sub.Unsubscribe()
	}
}

func TestFeedUnsubscribeIsIdempotentAndFinal(t *testing.T) {
	db, repo, statusID := setupFeedDB(t)
	feed := NewOrderFeed(repo)
	sub := feed.Subscribe(OrderFilter{RestaurantID: 1})
	recv(t, sub.C)

	sub.Unsubscribe()
	sub.Unsubscribe()
	sub.Unsubscribe()

	addOrder(t, db, 1, 1, statusID, time.Now())
	feed.Publish(1) // must not panic on the closed channel

	_, open := <-sub.C
	assert.False(t, open, "channel closes on unsubscribe")
}

func TestNotificationFeedPublish(t *testing.T) {
	db, _, _ := setupFeedDB(t)
	repo := repository.NewRequestRepository(db)
	feed := NewNotificationFeed(repo)

	sub := feed.Subscribe(1)
	defer sub.Unsubscribe()
	<-sub.C // initial empty snapshot

	require.NoError(t, db.Create(&entity.Notification{
		Type: entity.RequestTypeServer, Status: entity.NotificationUnread,
		Message: "Table 1 is calling a server", RestaurantID: 1, TableID: 1,
	}).Error)
	feed.Publish(1)

	select {
	case snap := <-sub.C:
		require.Len(t, snap, 1)
		assert.Equal(t, "Table 1 is calling a server", snap[0].Message)
	case <-time.After(time.Second):
		t.Fatal("no notification snapshot delivered")
	}
}
