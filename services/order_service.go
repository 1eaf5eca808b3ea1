package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"tableside/entity"
	"tableside/repository"
)

// OrderPublisher is notified after a committed order write so realtime
// subscribers receive a fresh snapshot. Nil publisher means no fan-out.
type OrderPublisher interface {
	Publish(restaurantID uint)
}

type StatusIDs struct {
	Pending   uint
	Preparing uint
	Ready     uint
	Delivered uint
	Cancelled uint
}

type OrderService struct {
	DB          *gorm.DB
	Repo        *repository.OrderRepository
	CartRepo    *repository.CartRepository
	CatalogRepo *repository.CatalogRepository
	TableRepo   *repository.TableRepository
	Publisher   OrderPublisher

	Status StatusIDs
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	catalogRepo *repository.CatalogRepository,
	tableRepo *repository.TableRepository,
	pub OrderPublisher,
) *OrderService {
	s := &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, CatalogRepo: catalogRepo, TableRepo: tableRepo, Publisher: pub}

	if id, err := repo.GetStatusIDByName(entity.StatusPending); err == nil {
		s.Status.Pending = id
	}
	if id, err := repo.GetStatusIDByName(entity.StatusPreparing); err == nil {
		s.Status.Preparing = id
	}
	if id, err := repo.GetStatusIDByName(entity.StatusReady); err == nil {
		s.Status.Ready = id
	}
	if id, err := repo.GetStatusIDByName(entity.StatusDelivered); err == nil {
		s.Status.Delivered = id
	}
	if id, err := repo.GetStatusIDByName(entity.StatusCancelled); err == nil {
		s.Status.Cancelled = id
	}

	return s
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	ProductID uint   `json:"productId"`
	Qty       int    `json:"qty"`
	SideIDs   []uint `json:"sideIds"`
	SauceIDs  []uint `json:"sauceIds"`
}

type CreateOrderReq struct {
	Items []OrderItemIn `json:"items"`
}

type CreateOrderRes struct {
	ID    uint  `json:"id"`
	Total int64 `json:"total"`
}

// lineSpec is a fully priced, validated line ready to persist.
type lineSpec struct {
	productID  uint
	name       string
	categoryID uint
	menuTypeID uint
	qty        int
	unitPrice  int64 // option surcharges folded in
	options    []entity.OrderItemOption
}

// buildLines validates every item against the live catalog and prices it.
// Any failure here happens before a single row is written.
func (s *OrderService) buildLines(restID uint, items []OrderItemIn) ([]lineSpec, int64, error) {
	out := make([]lineSpec, 0, len(items))
	var total int64

	for i, it := range items {
		if it.ProductID == 0 {
			return nil, 0, fmt.Errorf("item %d: product is required", i)
		}
		if it.Qty <= 0 {
			return nil, 0, fmt.Errorf("item %d: quantity must be positive", i)
		}

		p, err := s.CatalogRepo.GetProductBasics(it.ProductID)
		if err != nil {
			return nil, 0, fmt.Errorf("item %d: product not found", i)
		}
		if p.RestaurantID != restID {
			return nil, 0, fmt.Errorf("item %d: product not in this restaurant", i)
		}
		if p.Price <= 0 {
			return nil, 0, fmt.Errorf("item %d: product has no valid price", i)
		}

		if len(it.SideIDs) > 0 {
			cnt, err := s.CatalogRepo.CountOptionsBelongToProduct("product_sides", p.ID, it.SideIDs)
			if err != nil {
				return nil, 0, err
			}
			if cnt != int64(len(it.SideIDs)) {
				return nil, 0, fmt.Errorf("item %d: invalid side selection", i)
			}
		}
		if len(it.SauceIDs) > 0 {
			cnt, err := s.CatalogRepo.CountOptionsBelongToProduct("product_sauces", p.ID, it.SauceIDs)
			if err != nil {
				return nil, 0, err
			}
			if cnt != int64(len(it.SauceIDs)) {
				return nil, 0, fmt.Errorf("item %d: invalid sauce selection", i)
			}
		}

		optIDs := append(append([]uint(nil), it.SideIDs...), it.SauceIDs...)
		optCatalog, err := s.CatalogRepo.PriceMap(optIDs)
		if err != nil {
			return nil, 0, err
		}

		unit := p.Price
		opts := make([]entity.OrderItemOption, 0, len(optIDs))
		appendOpts := func(ids []uint, kind string) error {
			for _, id := range ids {
				op, ok := optCatalog[id]
				if !ok {
					return fmt.Errorf("item %d: option %d not found", i, id)
				}
				unit += op.Price
				opts = append(opts, entity.OrderItemOption{
					OptionProductID: op.ID,
					Kind:            kind,
					Name:            op.Name,
					PriceDelta:      op.Price,
				})
			}
			return nil
		}
		if err := appendOpts(it.SideIDs, entity.OptionKindSide); err != nil {
			return nil, 0, err
		}
		if err := appendOpts(it.SauceIDs, entity.OptionKindSauce); err != nil {
			return nil, 0, err
		}

		total += unit * int64(it.Qty)
		out = append(out, lineSpec{
			productID:  p.ID,
			name:       p.Name,
			categoryID: p.CategoryID,
			menuTypeID: p.MenuTypeID,
			qty:        it.Qty,
			unitPrice:  unit,
			options:    opts,
		})
	}

	return out, total, nil
}

// persist writes the order and its lines in one transaction, initial status
// pending. clearCart additionally drops the table session's cart.
func (s *OrderService) persist(restID, tableID uint, lines []lineSpec, total int64, clearCart bool) (*CreateOrderRes, error) {
	var out CreateOrderRes
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			RestaurantID:  restID,
			TableID:       tableID,
			Total:         total,
			OrderStatusID: s.Status.Pending,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, l := range lines {
			oi := entity.OrderItem{
				OrderID:    order.ID,
				ProductID:  l.productID,
				Name:       l.name,
				CategoryID: l.categoryID,
				MenuTypeID: l.menuTypeID,
				Qty:        l.qty,
				UnitPrice:  l.unitPrice,
				Total:      l.unitPrice * int64(l.qty),
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
			for _, opt := range l.options {
				opt.OrderItemID = oi.ID
				if err := s.Repo.CreateOrderItemOption(tx, &opt); err != nil {
					return err
				}
			}
		}

		if clearCart {
			if err := s.CartRepo.ClearCart(tx, restID, tableID); err != nil {
				return err
			}
		}

		out = CreateOrderRes{ID: order.ID, Total: order.Total}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.Publisher != nil {
		s.Publisher.Publish(restID)
	}
	return &out, nil
}

func (s *OrderService) validateSession(restID, tableID uint) error {
	if restID == 0 {
		return errors.New("restaurant is required")
	}
	if tableID == 0 {
		return errors.New("table is required")
	}
	ok, err := s.TableRepo.RestaurantExists(restID)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("restaurant not found")
	}
	t, err := s.TableRepo.GetTable(restID, tableID)
	if err != nil {
		return errors.New("table not found")
	}
	if !t.Active {
		return errors.New("table is not active")
	}
	return nil
}

// ----- Create -----

func (s *OrderService) Create(restID, tableID uint, req *CreateOrderReq) (*CreateOrderRes, error) {
	if err := s.validateSession(restID, tableID); err != nil {
		return nil, err
	}
	if len(req.Items) == 0 {
		return nil, errors.New("items is required")
	}

	lines, total, err := s.buildLines(restID, req.Items)
	if err != nil {
		return nil, err
	}
	return s.persist(restID, tableID, lines, total, false)
}

// CheckoutCart converts the table session's cart into an order and clears the
// cart in the same transaction. Pricing happens here, against the live
// catalog, not against anything stored on the cart lines.
func (s *OrderService) CheckoutCart(restID, tableID uint) (*CreateOrderRes, error) {
	if err := s.validateSession(restID, tableID); err != nil {
		return nil, err
	}

	cart, err := s.CartRepo.GetCartWithItems(restID, tableID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, errors.New("cart is empty")
	}

	items := make([]OrderItemIn, 0, len(cart.Items))
	for _, it := range cart.Items {
		in := OrderItemIn{ProductID: it.ProductID, Qty: it.Qty}
		for _, o := range it.Options {
			switch o.Kind {
			case entity.OptionKindSide:
				in.SideIDs = append(in.SideIDs, o.OptionProductID)
			case entity.OptionKindSauce:
				in.SauceIDs = append(in.SauceIDs, o.OptionProductID)
			}
		}
		items = append(items, in)
	}

	lines, total, err := s.buildLines(restID, items)
	if err != nil {
		return nil, err
	}
	return s.persist(restID, tableID, lines, total, true)
}

// ----- List & detail -----

func (s *OrderService) ListForRestaurant(restID uint) ([]entity.Order, error) {
	return s.Repo.ListForRestaurant(restID)
}

func (s *OrderService) ListForTable(restID, tableID uint) ([]entity.Order, error) {
	return s.Repo.ListForTable(restID, tableID)
}

func (s *OrderService) Detail(restID, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrderDetail(orderID)
	if err != nil {
		return nil, err
	}
	if o.RestaurantID != restID {
		return nil, errors.New("not found")
	}
	return o, nil
}
