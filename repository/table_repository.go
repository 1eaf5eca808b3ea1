package repository

import (
	"gorm.io/gorm"

	"tableside/entity"
)

type TableRepository struct{ DB *gorm.DB }

func NewTableRepository(db *gorm.DB) *TableRepository { return &TableRepository{DB: db} }

func (r *TableRepository) GetTable(restID, tableID uint) (*entity.Table, error) {
	var t entity.Table
	if err := r.DB.Where("restaurant_id = ?", restID).First(&t, tableID).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepository) GetByQRToken(token string) (*entity.Table, error) {
	var t entity.Table
	if err := r.DB.Where("qr_token = ?", token).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepository) ListTables(restID uint) ([]entity.Table, error) {
	var out []entity.Table
	err := r.DB.Where("restaurant_id = ?", restID).Order("number").Find(&out).Error
	return out, err
}

func (r *TableRepository) CreateTable(t *entity.Table) error { return r.DB.Create(t).Error }
func (r *TableRepository) SaveTable(t *entity.Table) error   { return r.DB.Save(t).Error }
func (r *TableRepository) DeleteTable(restID, id uint) error {
	return r.DB.Where("restaurant_id = ?", restID).Delete(&entity.Table{}, id).Error
}

// ---------------- Restaurants ----------------

func (r *TableRepository) RestaurantExists(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Restaurant{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *TableRepository) GetRestaurant(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *TableRepository) IsOwnedBy(restID, userID uint) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.Restaurant{}).
		Where("id = ? AND user_id = ?", restID, userID).
		Count(&cnt).Error
	return cnt > 0, err
}

func (r *TableRepository) CreateRestaurant(rest *entity.Restaurant) error {
	return r.DB.Create(rest).Error
}
func (r *TableRepository) SaveRestaurant(rest *entity.Restaurant) error {
	return r.DB.Save(rest).Error
}
func (r *TableRepository) ListRestaurantsForOwner(userID uint) ([]entity.Restaurant, error) {
	var out []entity.Restaurant
	err := r.DB.Where("user_id = ?", userID).Order("name").Find(&out).Error
	return out, err
}
