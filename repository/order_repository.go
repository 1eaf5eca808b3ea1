package repository

import (
	"time"

	"gorm.io/gorm"

	"tableside/entity"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) CreateOrderItemOption(tx *gorm.DB, oo *entity.OrderItemOption) error {
	return tx.Create(oo).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("OrderStatus").First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderDetail(orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.
		Preload("OrderStatus").
		Preload("Items").
		Preload("Items.Options").
		First(&o, orderID).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Full matching set, recency first. Subscription snapshots are built from
// these two queries so consumers always see a stable, ordered sequence.
func (r *OrderRepository) ListForRestaurant(restID uint) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.
		Preload("OrderStatus").
		Preload("Items").
		Preload("Items.Options").
		Where("restaurant_id = ?", restID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *OrderRepository) ListForTable(restID, tableID uint) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.
		Preload("OrderStatus").
		Preload("Items").
		Preload("Items.Options").
		Where("restaurant_id = ? AND table_id = ?", restID, tableID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

// Orders created at or after the cutoff, for day-scoped statistics.
func (r *OrderRepository) ListSince(restID uint, cutoff time.Time) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.
		Preload("OrderStatus").
		Where("restaurant_id = ? AND created_at >= ?", restID, cutoff).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *OrderRepository) ListWithItems(restID uint) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.
		Preload("OrderStatus").
		Preload("Items").
		Where("restaurant_id = ?", restID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

// Guarded status write: only moves the row if it still carries fromID, so two
// staff racing on the same button produce exactly one winner. gorm bumps
// updated_at on the winning row.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID, fromID, toID uint) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND order_status_id = ?", orderID, fromID).
		Update("order_status_id", toID)
	return res.RowsAffected, res.Error
}

// ---------------- Status lookup ----------------

func (r *OrderRepository) GetStatusIDByName(name string) (uint, error) {
	var row struct{ ID uint }
	err := r.DB.Model(&entity.OrderStatus{}).
		Select("id").Where("status_name = ?", name).First(&row).Error
	return row.ID, err
}
