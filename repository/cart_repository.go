package repository

import (
	"errors"

	"gorm.io/gorm"

	"tableside/entity"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// Returns the table session's cart; an empty, unsaved cart when none exists
// yet so callers can always render something.
func (r *CartRepository) GetCartWithItems(restID, tableID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("restaurant_id = ? AND table_id = ?", restID, tableID).
		Preload("Items").
		Preload("Items.Options").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{RestaurantID: restID, TableID: tableID}, nil
	}
	return &c, err
}

func (r *CartRepository) GetOrCreateCart(restID, tableID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("restaurant_id = ? AND table_id = ?", restID, tableID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{RestaurantID: restID, TableID: tableID}
		if err := r.DB.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	return &c, err
}

// Merge key is product + options fingerprint: an existing line with the same
// key gets its quantity bumped, anything else becomes a new line.
func (r *CartRepository) UpsertItem(tx *gorm.DB, cartID uint, row *entity.CartItem) error {
	var exist entity.CartItem
	err := tx.Where("cart_id = ? AND product_id = ? AND options_key = ?", cartID, row.ProductID, row.OptionsKey).
		First(&exist).Error
	if err == nil {
		exist.Qty += row.Qty
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	row.CartID = cartID
	return tx.Create(row).Error
}

// Sets the quantity directly; qty <= 0 removes the line.
func (r *CartRepository) UpdateQty(tx *gorm.DB, restID, tableID, itemID uint, qty int) error {
	if qty <= 0 {
		return r.RemoveItem(tx, restID, tableID, itemID)
	}
	return tx.Exec(`
		UPDATE cart_items
		   SET qty = ?
		 WHERE id = ?
		   AND cart_id IN (SELECT id FROM carts WHERE restaurant_id = ? AND table_id = ?)
	`, qty, itemID, restID, tableID).Error
}

// Both deletes are scoped to the session's own cart; a foreign item ID is a
// silent no-op, never a write into another tenant's cart.
func (r *CartRepository) RemoveItem(tx *gorm.DB, restID, tableID, itemID uint) error {
	if err := tx.Exec(`
		DELETE FROM cart_item_options
		 WHERE cart_item_id IN (
		       SELECT id FROM cart_items
		        WHERE id = ?
		          AND cart_id IN (SELECT id FROM carts WHERE restaurant_id = ? AND table_id = ?))
	`, itemID, restID, tableID).Error; err != nil {
		return err
	}
	return tx.
		Where("id = ? AND cart_id IN (SELECT id FROM carts WHERE restaurant_id = ? AND table_id = ?)", itemID, restID, tableID).
		Delete(&entity.CartItem{}).Error
}

func (r *CartRepository) ClearCart(tx *gorm.DB, restID, tableID uint) error {
	var c entity.Cart
	if err := tx.Where("restaurant_id = ? AND table_id = ?", restID, tableID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if err := tx.Exec(`
		DELETE FROM cart_item_options
		 WHERE cart_item_id IN (SELECT id FROM cart_items WHERE cart_id = ?)
	`, c.ID).Error; err != nil {
		return err
	}
	return tx.Where("cart_id = ?", c.ID).Delete(&entity.CartItem{}).Error
}
