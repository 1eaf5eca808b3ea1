package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"tableside/entity"
	"tableside/repository"
)

type CartService struct {
	DB          *gorm.DB
	CartRepo    *repository.CartRepository
	CatalogRepo *repository.CatalogRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, cat *repository.CatalogRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, CatalogRepo: cat}
}

type AddToCartIn struct {
	ProductID uint   `json:"productId" binding:"required"`
	Qty       int    `json:"qty" binding:"min=0"`
	SideIDs   []uint `json:"sideIds"`
	SauceIDs  []uint `json:"sauceIds"`
}

type CartOut struct {
	Cart  *entity.Cart `json:"cart"`
	Total int64        `json:"total"`
}

// optionsFingerprint builds the line-merge key from the selected option sets.
// Order of selection must not matter, so IDs are sorted first.
func optionsFingerprint(sideIDs, sauceIDs []uint) string {
	part := func(ids []uint) string {
		s := append([]uint(nil), ids...)
		sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
		b := make([]string, len(s))
		for i, id := range s {
			b[i] = fmt.Sprint(id)
		}
		return strings.Join(b, ",")
	}
	return "s:" + part(sideIDs) + "|c:" + part(sauceIDs)
}

func (s *CartService) Add(restID, tableID uint, in *AddToCartIn) error {
	if restID == 0 || tableID == 0 {
		return errors.New("restaurant and table are required")
	}
	if in.Qty <= 0 {
		in.Qty = 1
	}

	p, err := s.CatalogRepo.GetProductBasics(in.ProductID)
	if err != nil {
		return errors.New("product not found")
	}
	if p.RestaurantID != restID {
		return errors.New("product not in this restaurant")
	}
	if !p.Available {
		return errors.New("product not available")
	}

	// every selected option must belong to this product
	if len(in.SideIDs) > 0 {
		cnt, err := s.CatalogRepo.CountOptionsBelongToProduct("product_sides", p.ID, in.SideIDs)
		if err != nil {
			return err
		}
		if cnt != int64(len(in.SideIDs)) {
			return errors.New("invalid side selection")
		}
	}
	if len(in.SauceIDs) > 0 {
		cnt, err := s.CatalogRepo.CountOptionsBelongToProduct("product_sauces", p.ID, in.SauceIDs)
		if err != nil {
			return err
		}
		if cnt != int64(len(in.SauceIDs)) {
			return errors.New("invalid sauce selection")
		}
	}

	c, err := s.CartRepo.GetOrCreateCart(restID, tableID)
	if err != nil {
		return err
	}

	opts := make([]entity.CartItemOption, 0, len(in.SideIDs)+len(in.SauceIDs))
	for _, id := range in.SideIDs {
		opts = append(opts, entity.CartItemOption{OptionProductID: id, Kind: entity.OptionKindSide})
	}
	for _, id := range in.SauceIDs {
		opts = append(opts, entity.CartItemOption{OptionProductID: id, Kind: entity.OptionKindSauce})
	}

	line := &entity.CartItem{
		ProductID:  p.ID,
		Qty:        in.Qty,
		OptionsKey: optionsFingerprint(in.SideIDs, in.SauceIDs),
		Options:    opts,
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpsertItem(tx, c.ID, line)
	})
}

func (s *CartService) UpdateQty(restID, tableID, itemID uint, qty int) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpdateQty(tx, restID, tableID, itemID, qty)
	})
}

func (s *CartService) RemoveItem(restID, tableID, itemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveItem(tx, restID, tableID, itemID)
	})
}

func (s *CartService) Clear(restID, tableID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, restID, tableID)
	})
}

// Get returns the cart with a total computed against current catalog prices.
func (s *CartService) Get(restID, tableID uint) (*CartOut, error) {
	c, err := s.CartRepo.GetCartWithItems(restID, tableID)
	if err != nil {
		return nil, err
	}
	catalog, err := s.catalogFor(c.Items)
	if err != nil {
		return nil, err
	}
	return &CartOut{Cart: c, Total: ComputeTotal(c.Items, catalog)}, nil
}

func (s *CartService) catalogFor(items []entity.CartItem) (map[uint]entity.Product, error) {
	ids := make([]uint, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
		for _, o := range it.Options {
			ids = append(ids, o.OptionProductID)
		}
	}
	return s.CatalogRepo.PriceMap(ids)
}

// ComputeTotal is a pure function over (cart lines, live catalog): base price
// times quantity per line, plus each selected option's price times the parent
// line's quantity. Prices come from the catalog map, not from the stored
// lines, so a catalog price change before checkout moves the displayed total.
func ComputeTotal(items []entity.CartItem, catalog map[uint]entity.Product) int64 {
	var total int64
	for _, it := range items {
		p, ok := catalog[it.ProductID]
		if !ok {
			continue
		}
		total += p.Price * int64(it.Qty)
		for _, o := range it.Options {
			if op, ok := catalog[o.OptionProductID]; ok {
				total += op.Price * int64(it.Qty)
			}
		}
	}
	return total
}
