package realtime

import (
	"log"

	"tableside/entity"
)

type EventKind string

const (
	// a pending order seen for the first time (kitchen / dashboard side)
	EventOrderPlaced EventKind = "order_placed"
	// an order first observed in ready state (customer side)
	EventOrderReady EventKind = "order_ready"
)

type Event struct {
	Kind  EventKind    `json:"kind"`
	Order entity.Order `json:"order"`
}

// Sink is one delivery channel for a notification: a websocket push, a sound
// trigger, a log line. Sinks are best-effort; a failing sink never blocks the
// others.
type Sink interface {
	Deliver(Event) error
}

type SinkFunc func(Event) error

func (f SinkFunc) Deliver(e Event) error { return f(e) }

// OrderNotifier turns consecutive full snapshots into exactly-once events.
// The store pushes whole collections, so "a new order arrived" has to be
// manufactured by diffing against the IDs this instance has already seen.
// The seen set is owned by the notifier, built fresh per subscription and
// discarded with it.
type OrderNotifier struct {
	watch string // status name that triggers an event
	kind  EventKind
	seen  map[uint]struct{}
	sinks []Sink
}

// NewStaffNotifier raises order_placed once per order first seen pending.
func NewStaffNotifier(sinks ...Sink) *OrderNotifier {
	return &OrderNotifier{
		watch: entity.StatusPending,
		kind:  EventOrderPlaced,
		seen:  make(map[uint]struct{}),
		sinks: sinks,
	}
}

// NewCustomerNotifier raises order_ready once per order first seen ready.
func NewCustomerNotifier(sinks ...Sink) *OrderNotifier {
	return &OrderNotifier{
		watch: entity.StatusReady,
		kind:  EventOrderReady,
		seen:  make(map[uint]struct{}),
		sinks: sinks,
	}
}

// Observe diffs one snapshot against the seen set and delivers the resulting
// events. Redelivered snapshots are harmless: matched IDs enter the seen set
// on first sight and never fire again.
func (n *OrderNotifier) Observe(snapshot []entity.Order) []Event {
	var events []Event
	for _, o := range snapshot {
		if o.OrderStatus.StatusName != n.watch {
			continue
		}
		if _, ok := n.seen[o.ID]; ok {
			continue
		}
		n.seen[o.ID] = struct{}{}
		events = append(events, Event{Kind: n.kind, Order: o})
	}

	for _, e := range events {
		for _, sink := range n.sinks {
			if err := sink.Deliver(e); err != nil {
				log.Printf("notification sink failed (%s order %d): %v", e.Kind, e.Order.ID, err)
			}
		}
	}
	return events
}
