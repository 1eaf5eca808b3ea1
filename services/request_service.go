package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"tableside/entity"
	"tableside/repository"
)

// NotificationPublisher mirrors OrderPublisher for the staff notification
// stream.
type NotificationPublisher interface {
	Publish(restaurantID uint)
}

type RequestService struct {
	DB        *gorm.DB
	Repo      *repository.RequestRepository
	TableRepo *repository.TableRepository
	Publisher NotificationPublisher
}

func NewRequestService(db *gorm.DB, repo *repository.RequestRepository, tableRepo *repository.TableRepository, pub NotificationPublisher) *RequestService {
	return &RequestService{DB: db, Repo: repo, TableRepo: tableRepo, Publisher: pub}
}

func requestMessage(typ string, tableNumber int) string {
	switch typ {
	case entity.RequestTypeServer:
		return fmt.Sprintf("Table %d is calling a server", tableNumber)
	case entity.RequestTypeBill:
		return fmt.Sprintf("Table %d requests the bill", tableNumber)
	}
	return ""
}

// Create raises a waiter call or bill request: one ServiceRequest plus one
// unread Notification, written together.
func (s *RequestService) Create(restID, tableID uint, typ string) (*entity.ServiceRequest, error) {
	if typ != entity.RequestTypeServer && typ != entity.RequestTypeBill {
		return nil, fmt.Errorf("unknown request type: %s", typ)
	}

	t, err := s.TableRepo.GetTable(restID, tableID)
	if err != nil {
		return nil, errors.New("table not found")
	}

	sr := &entity.ServiceRequest{
		Type:         typ,
		Status:       entity.RequestStatusPending,
		TableNumber:  t.Number,
		RestaurantID: restID,
		TableID:      tableID,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateRequest(tx, sr); err != nil {
			return err
		}
		n := &entity.Notification{
			Type:         typ,
			Status:       entity.NotificationUnread,
			Message:      requestMessage(typ, t.Number),
			RestaurantID: restID,
			TableID:      tableID,
		}
		return s.Repo.CreateNotification(tx, n)
	})
	if err != nil {
		return nil, err
	}

	if s.Publisher != nil {
		s.Publisher.Publish(restID)
	}
	return sr, nil
}

func (s *RequestService) ListPending(restID uint) ([]entity.ServiceRequest, error) {
	return s.Repo.ListPendingRequests(restID)
}

func (s *RequestService) MarkHandled(restID, id uint) (*entity.ServiceRequest, error) {
	affected, err := s.Repo.MarkHandled(restID, id)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, errors.New("request not found or already handled")
	}
	return s.Repo.GetRequest(restID, id)
}

// ---------------- Notifications ----------------

func (s *RequestService) ListUnreadNotifications(restID uint) ([]entity.Notification, error) {
	return s.Repo.ListUnreadNotifications(restID)
}

func (s *RequestService) MarkNotificationRead(restID, id uint) error {
	return s.setNotificationStatus(restID, id, entity.NotificationRead)
}

func (s *RequestService) ArchiveNotification(restID, id uint) error {
	return s.setNotificationStatus(restID, id, entity.NotificationArchived)
}

func (s *RequestService) setNotificationStatus(restID, id uint, status string) error {
	affected, err := s.Repo.SetNotificationStatus(restID, id, status)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.New("notification not found")
	}
	if s.Publisher != nil {
		s.Publisher.Publish(restID)
	}
	return nil
}
