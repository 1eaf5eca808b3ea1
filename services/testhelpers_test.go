package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tableside/entity"
	"tableside/repository"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "connect test database")

	err = db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{}, &entity.Table{},
		&entity.Category{}, &entity.MenuType{}, &entity.Product{},
		&entity.OrderStatus{}, &entity.Order{}, &entity.OrderItem{}, &entity.OrderItemOption{},
		&entity.Cart{}, &entity.CartItem{}, &entity.CartItemOption{},
		&entity.ServiceRequest{}, &entity.Notification{},
	)
	require.NoError(t, err, "migrate test database")

	for _, name := range []string{
		entity.StatusPending, entity.StatusPreparing, entity.StatusReady,
		entity.StatusDelivered, entity.StatusCancelled,
	} {
		require.NoError(t, db.Create(&entity.OrderStatus{StatusName: name}).Error)
	}

	return db
}

// seedSession creates a restaurant with one active table and returns both.
func seedSession(t *testing.T, db *gorm.DB) (*entity.Restaurant, *entity.Table) {
	t.Helper()

	rest := &entity.Restaurant{Name: "Test Kitchen", Slug: "test-kitchen"}
	require.NoError(t, db.Create(rest).Error)

	table := &entity.Table{Number: 1, QRToken: "tok-" + rest.Slug, Active: true, RestaurantID: rest.ID}
	require.NoError(t, db.Create(table).Error)

	return rest, table
}

func seedProduct(t *testing.T, db *gorm.DB, restID uint, name string, price int64) *entity.Product {
	t.Helper()

	cat := &entity.Category{Name: name + " cat", RestaurantID: restID}
	require.NoError(t, db.Create(cat).Error)
	mt := &entity.MenuType{Name: name + " type", RestaurantID: restID}
	require.NoError(t, db.Create(mt).Error)

	p := &entity.Product{
		Name: name, Price: price, Available: true,
		CategoryID: cat.ID, MenuTypeID: mt.ID, RestaurantID: restID,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func attachSide(t *testing.T, db *gorm.DB, parent, side *entity.Product) {
	t.Helper()
	require.NoError(t, db.Model(parent).Association("Sides").Append(side))
}

func attachSauce(t *testing.T, db *gorm.DB, parent, sauce *entity.Product) {
	t.Helper()
	require.NoError(t, db.Model(parent).Association("Sauces").Append(sauce))
}

func newOrderService(db *gorm.DB, pub OrderPublisher) *OrderService {
	return NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewCatalogRepository(db),
		repository.NewTableRepository(db),
		pub,
	)
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewCatalogRepository(db))
}

func gormModel(id uint) gorm.Model { return gorm.Model{ID: id} }
