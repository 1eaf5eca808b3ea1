package repository

import (
	"gorm.io/gorm"

	"tableside/entity"
)

type CatalogRepository struct{ DB *gorm.DB }

func NewCatalogRepository(db *gorm.DB) *CatalogRepository { return &CatalogRepository{DB: db} }

// ---------------- Products ----------------

func (r *CatalogRepository) GetProduct(id uint) (*entity.Product, error) {
	var p entity.Product
	err := r.DB.
		Preload("Sides").
		Preload("Sauces").
		First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *CatalogRepository) GetProductBasics(id uint) (entity.Product, error) {
	var p entity.Product
	err := r.DB.Select("id, name, price, category_id, menu_type_id, restaurant_id, available").First(&p, id).Error
	return p, err
}

func (r *CatalogRepository) ListProducts(restID uint) ([]entity.Product, error) {
	var out []entity.Product
	err := r.DB.
		Preload("Sides").
		Preload("Sauces").
		Where("restaurant_id = ?", restID).
		Order("category_id, name").
		Find(&out).Error
	return out, err
}

func (r *CatalogRepository) CreateProduct(p *entity.Product) error { return r.DB.Create(p).Error }
func (r *CatalogRepository) SaveProduct(p *entity.Product) error   { return r.DB.Save(p).Error }
func (r *CatalogRepository) DeleteProduct(restID, id uint) error {
	return r.DB.Where("restaurant_id = ?", restID).Delete(&entity.Product{}, id).Error
}

func (r *CatalogRepository) ReplaceSides(p *entity.Product, sides []entity.Product) error {
	return r.DB.Model(p).Association("Sides").Replace(sides)
}

func (r *CatalogRepository) ReplaceSauces(p *entity.Product, sauces []entity.Product) error {
	return r.DB.Model(p).Association("Sauces").Replace(sauces)
}

// Live prices and names for a set of product IDs. The cart total is computed
// against this map at display/checkout time, never against stored lines.
func (r *CatalogRepository) PriceMap(ids []uint) (map[uint]entity.Product, error) {
	out := make(map[uint]entity.Product, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []entity.Product
	if err := r.DB.Select("id, name, price, category_id, menu_type_id, restaurant_id").
		Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, p := range rows {
		out[p.ID] = p
	}
	return out, nil
}

// Checks every given option ID is attached to the product in the named join
// table ("product_sides" or "product_sauces").
func (r *CatalogRepository) CountOptionsBelongToProduct(joinTable string, productID uint, optionIDs []uint) (int64, error) {
	if len(optionIDs) == 0 {
		return 0, nil
	}
	fk := "side_id"
	if joinTable == "product_sauces" {
		fk = "sauce_id"
	}
	var cnt int64
	err := r.DB.Table(joinTable).
		Where("product_id = ? AND "+fk+" IN ?", productID, optionIDs).
		Count(&cnt).Error
	return cnt, err
}

// ---------------- Categories / menu types ----------------

func (r *CatalogRepository) ListCategories(restID uint) ([]entity.Category, error) {
	var out []entity.Category
	err := r.DB.Where("restaurant_id = ?", restID).Order("sort_order, name").Find(&out).Error
	return out, err
}

func (r *CatalogRepository) CreateCategory(c *entity.Category) error { return r.DB.Create(c).Error }
func (r *CatalogRepository) SaveCategory(c *entity.Category) error   { return r.DB.Save(c).Error }
func (r *CatalogRepository) GetCategory(restID, id uint) (*entity.Category, error) {
	var c entity.Category
	if err := r.DB.Where("restaurant_id = ?", restID).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}
func (r *CatalogRepository) DeleteCategory(restID, id uint) error {
	return r.DB.Where("restaurant_id = ?", restID).Delete(&entity.Category{}, id).Error
}

func (r *CatalogRepository) ListMenuTypes(restID uint) ([]entity.MenuType, error) {
	var out []entity.MenuType
	err := r.DB.Where("restaurant_id = ?", restID).Order("name").Find(&out).Error
	return out, err
}

func (r *CatalogRepository) CreateMenuType(t *entity.MenuType) error { return r.DB.Create(t).Error }
func (r *CatalogRepository) SaveMenuType(t *entity.MenuType) error   { return r.DB.Save(t).Error }
func (r *CatalogRepository) GetMenuType(restID, id uint) (*entity.MenuType, error) {
	var t entity.MenuType
	if err := r.DB.Where("restaurant_id = ?", restID).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}
func (r *CatalogRepository) DeleteMenuType(restID, id uint) error {
	return r.DB.Where("restaurant_id = ?", restID).Delete(&entity.MenuType{}, id).Error
}
