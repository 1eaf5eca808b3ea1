package repository

import (
	"gorm.io/gorm"

	"tableside/entity"
)

type RequestRepository struct{ DB *gorm.DB }

func NewRequestRepository(db *gorm.DB) *RequestRepository { return &RequestRepository{DB: db} }

// ---------------- Service requests ----------------

func (r *RequestRepository) CreateRequest(tx *gorm.DB, sr *entity.ServiceRequest) error {
	return tx.Create(sr).Error
}

func (r *RequestRepository) GetRequest(restID, id uint) (*entity.ServiceRequest, error) {
	var sr entity.ServiceRequest
	if err := r.DB.Where("restaurant_id = ?", restID).First(&sr, id).Error; err != nil {
		return nil, err
	}
	return &sr, nil
}

func (r *RequestRepository) ListPendingRequests(restID uint) ([]entity.ServiceRequest, error) {
	var out []entity.ServiceRequest
	err := r.DB.Where("restaurant_id = ? AND status = ?", restID, entity.RequestStatusPending).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

// Guarded like order transitions: only a pending request can become handled.
func (r *RequestRepository) MarkHandled(restID, id uint) (int64, error) {
	res := r.DB.Model(&entity.ServiceRequest{}).
		Where("id = ? AND restaurant_id = ? AND status = ?", id, restID, entity.RequestStatusPending).
		Update("status", entity.RequestStatusHandled)
	return res.RowsAffected, res.Error
}

// ---------------- Notifications ----------------

func (r *RequestRepository) CreateNotification(tx *gorm.DB, n *entity.Notification) error {
	return tx.Create(n).Error
}

func (r *RequestRepository) ListUnreadNotifications(restID uint) ([]entity.Notification, error) {
	var out []entity.Notification
	err := r.DB.Where("restaurant_id = ? AND status = ?", restID, entity.NotificationUnread).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *RequestRepository) SetNotificationStatus(restID, id uint, status string) (int64, error) {
	res := r.DB.Model(&entity.Notification{}).
		Where("id = ? AND restaurant_id = ?", id, restID).
		Update("status", status)
	return res.RowsAffected, res.Error
}
