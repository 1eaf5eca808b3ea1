package realtime

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tableside/entity"
)

func order(id uint, status string) entity.Order {
	return entity.Order{
		Model:       gorm.Model{ID: id},
		OrderStatus: entity.OrderStatus{StatusName: status},
	}
}

func TestStaffNotifierFiresOncePerPendingOrder(t *testing.T) {
	var delivered []Event
	n := NewStaffNotifier(SinkFunc(func(e Event) error {
		delivered = append(delivered, e)
		return nil
	}))

	// order 1 stays pending across several snapshot redeliveries
	snap := []entity.Order{order(1, entity.StatusPending)}
	events := n.Observe(snap)
	require.Len(t, events, 1)
	assert.Equal(t, EventOrderPlaced, events[0].Kind)
	assert.Equal(t, uint(1), events[0].Order.ID)

	assert.Empty(t, n.Observe(snap), "redelivered snapshot must not re-fire")
	assert.Empty(t, n.Observe(snap))

	// the transition away from pending fires nothing either
	assert.Empty(t, n.Observe([]entity.Order{order(1, entity.StatusPreparing)}))

	assert.Len(t, delivered, 1)
}

func TestStaffNotifierIgnoresOrdersFirstSeenPastPending(t *testing.T) {
	n := NewStaffNotifier()
	// an order that was already accepted before this consumer subscribed
	assert.Empty(t, n.Observe([]entity.Order{order(7, entity.StatusPreparing)}))
	// going back is impossible, but a pending sibling still fires
	events := n.Observe([]entity.Order{
		order(7, entity.StatusPreparing),
		order(8, entity.StatusPending),
	})
	require.Len(t, events, 1)
	assert.Equal(t, uint(8), events[0].Order.ID)
}

func TestCustomerNotifierFiresOnReady(t *testing.T) {
	n := NewCustomerNotifier()

	assert.Empty(t, n.Observe([]entity.Order{order(1, entity.StatusPending)}))
	assert.Empty(t, n.Observe([]entity.Order{order(1, entity.StatusPreparing)}))

	events := n.Observe([]entity.Order{order(1, entity.StatusReady)})
	require.Len(t, events, 1)
	assert.Equal(t, EventOrderReady, events[0].Kind)

	// ready snapshot redelivered because something else changed in the set
	assert.Empty(t, n.Observe([]entity.Order{
		order(1, entity.StatusReady),
		order(2, entity.StatusPending),
	}))
}

func TestNotifierSinksAreBestEffort(t *testing.T) {
	var second int
	n := NewStaffNotifier(
		SinkFunc(func(Event) error { return errors.New("speaker unavailable") }),
		SinkFunc(func(Event) error { second++; return nil }),
	)

	events := n.Observe([]entity.Order{order(1, entity.StatusPending)})
	require.Len(t, events, 1)
	assert.Equal(t, 1, second, "a failing sink must not block the others")
}

func TestSeparateNotifiersKeepSeparateState(t *testing.T) {
	a := NewStaffNotifier()
	b := NewStaffNotifier()

	snap := []entity.Order{order(1, entity.StatusPending)}
	assert.Len(t, a.Observe(snap), 1)
	assert.Len(t, b.Observe(snap), 1, "seen-sets are per instance, not shared")
}
