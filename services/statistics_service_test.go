package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tableside/entity"
	"tableside/repository"
)

func statusID(t *testing.T, db *gorm.DB, name string) uint {
	t.Helper()
	id, err := repository.NewOrderRepository(db).GetStatusIDByName(name)
	require.NoError(t, err)
	return id
}

// insertOrder writes an order row with explicit timestamps, bypassing the
// service so tests control the clock.
func insertOrder(t *testing.T, db *gorm.DB, restID, tableID uint, status string, total int64, created, updated time.Time) *entity.Order {
	t.Helper()
	o := &entity.Order{
		Model:         gorm.Model{CreatedAt: created, UpdatedAt: updated},
		RestaurantID:  restID,
		TableID:       tableID,
		Total:         total,
		OrderStatusID: statusID(t, db, status),
	}
	require.NoError(t, db.Create(o).Error)
	return o
}

func newStatsService(db *gorm.DB, now time.Time) *StatisticsService {
	s := NewStatisticsService(repository.NewOrderRepository(db))
	s.Now = func() time.Time { return now }
	return s
}

func TestStatisticsDayBoundary(t *testing.T) {
	db := setupTestDB(t)
	rest, table := seedSession(t, db)

	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.Local)
	midnight := time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local)

	// exactly midnight is today
	insertOrder(t, db, rest.ID, table.ID, entity.StatusPending, 1000, midnight, midnight)
	// one millisecond before midnight is yesterday
	insertOrder(t, db, rest.ID, table.ID, entity.StatusPending, 2000,
		midnight.Add(-time.Millisecond), midnight.Add(-time.Millisecond))

	stats, err := newStatsService(db, now).Calculate(rest.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalOrdersToday)
	assert.Equal(t, int64(1000), stats.TotalRevenueToday)
}

func TestStatisticsRevenueIncludesCancelled(t *testing.T) {
	db := setupTestDB(t)
	rest, table := seedSession(t, db)

	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.Local)
	at := now.Add(-time.Hour)
	insertOrder(t, db, rest.ID, table.ID, entity.StatusDelivered, 5000, at, at.Add(10*time.Minute))
	insertOrder(t, db, rest.ID, table.ID, entity.StatusCancelled, 3000, at, at)

	stats, err := newStatsService(db, now).Calculate(rest.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(8000), stats.TotalRevenueToday)
	assert.Equal(t, 1, stats.OrdersByStatus[entity.StatusCancelled])
	assert.Equal(t, 1, stats.OrdersByStatus[entity.StatusDelivered])
}

func TestStatisticsOrdersByTable(t *testing.T) {
	db := setupTestDB(t)
	rest, t1 := seedSession(t, db)
	t2 := &entity.Table{Number: 2, QRToken: "tok-2", Active: true, RestaurantID: rest.ID}
	require.NoError(t, db.Create(t2).Error)

	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.Local)
	at := now.Add(-time.Hour)
	insertOrder(t, db, rest.ID, t1.ID, entity.StatusPending, 1000, at, at)
	insertOrder(t, db, rest.ID, t2.ID, entity.StatusPending, 2000, at, at)
	insertOrder(t, db, rest.ID, t2.ID, entity.StatusPending, 3000, at, at)

	stats, err := newStatsService(db, now).Calculate(rest.ID)
	require.NoError(t, err)
	require.Len(t, stats.OrdersByTable, 2)

	// sorted by count descending
	assert.Equal(t, t2.ID, stats.OrdersByTable[0].TableID)
	assert.Equal(t, 2, stats.OrdersByTable[0].Count)
	assert.Equal(t, int64(5000), stats.OrdersByTable[0].Revenue)
	assert.Equal(t, t1.ID, stats.OrdersByTable[1].TableID)
}

func TestTopProducts(t *testing.T) {
	orders := []entity.Order{
		{Items: []entity.OrderItem{
			{ProductID: 1, Name: "Burger", Qty: 3},
			{ProductID: 2, Name: "Salad", Qty: 1},
		}},
		{Items: []entity.OrderItem{
			{ProductID: 2, Name: "Salad", Qty: 4},
		}},
	}

	top := topProducts(orders, 10)
	require.Len(t, top, 2)
	assert.Equal(t, "Salad", top[0].Name)
	assert.Equal(t, int64(5), top[0].Quantity)
	assert.Equal(t, "Burger", top[1].Name)

	// limit applies after sorting
	top = topProducts(orders, 1)
	require.Len(t, top, 1)
	assert.Equal(t, "Salad", top[0].Name)
}

func TestAveragePreparationMinutes(t *testing.T) {
	base := time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)
	ready := entity.OrderStatus{StatusName: entity.StatusReady}
	pending := entity.OrderStatus{StatusName: entity.StatusPending}

	mk := func(status entity.OrderStatus, prep time.Duration) entity.Order {
		return entity.Order{
			Model:       gorm.Model{CreatedAt: base, UpdatedAt: base.Add(prep)},
			OrderStatus: status,
		}
	}

	t.Run("no qualifying samples returns zero", func(t *testing.T) {
		assert.Equal(t, 0.0, averagePreparationMinutes(nil))
		assert.Equal(t, 0.0, averagePreparationMinutes([]entity.Order{mk(pending, 10*time.Minute)}))
	})

	t.Run("averages ready and delivered orders", func(t *testing.T) {
		orders := []entity.Order{
			mk(ready, 10*time.Minute),
			mk(entity.OrderStatus{StatusName: entity.StatusDelivered}, 20*time.Minute),
		}
		assert.InDelta(t, 15.0, averagePreparationMinutes(orders), 0.001)
	})

	t.Run("discards out-of-range samples", func(t *testing.T) {
		orders := []entity.Order{
			mk(ready, 10*time.Minute),
			mk(ready, 0),             // non-positive
			mk(ready, -5*time.Minute),
			mk(ready, 25*time.Hour),  // stale row, not a real preparation
		}
		assert.InDelta(t, 10.0, averagePreparationMinutes(orders), 0.001)
	})
}
