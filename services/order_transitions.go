package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"tableside/entity"
)

var (
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrTransitionConflict = errors.New("order status changed concurrently")
)

// Forward-only lifecycle. Cancelled is reachable from every non-terminal
// state; delivered and cancelled are dead ends.
var allowedNext = map[string]map[string]bool{
	entity.StatusPending:   {entity.StatusPreparing: true, entity.StatusCancelled: true},
	entity.StatusPreparing: {entity.StatusReady: true, entity.StatusCancelled: true},
	entity.StatusReady:     {entity.StatusDelivered: true, entity.StatusCancelled: true},
	entity.StatusDelivered: {},
	entity.StatusCancelled: {},
}

func CanTransition(from, to string) bool {
	return allowedNext[from][to]
}

func (s *OrderService) statusID(name string) (uint, error) {
	switch name {
	case entity.StatusPending:
		return s.Status.Pending, nil
	case entity.StatusPreparing:
		return s.Status.Preparing, nil
	case entity.StatusReady:
		return s.Status.Ready, nil
	case entity.StatusDelivered:
		return s.Status.Delivered, nil
	case entity.StatusCancelled:
		return s.Status.Cancelled, nil
	}
	return 0, fmt.Errorf("unknown status: %s", name)
}

// Transition moves one order to a new status. The allowed-set check runs
// before any write; the write itself is guarded on the status the caller saw,
// so a lost race surfaces as ErrTransitionConflict instead of a silent
// double-apply.
func (s *OrderService) Transition(restID, orderID uint, to string) error {
	toID, err := s.statusID(to)
	if err != nil {
		return ErrInvalidTransition
	}

	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return err
	}
	if o.RestaurantID != restID {
		return errors.New("not found")
	}

	from := o.OrderStatus.StatusName
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	fromID, err := s.statusID(from)
	if err != nil {
		return err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, fromID, toID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrTransitionConflict
		}
		return nil
	})
	if err != nil {
		return err
	}

	if s.Publisher != nil {
		s.Publisher.Publish(restID)
	}
	return nil
}
