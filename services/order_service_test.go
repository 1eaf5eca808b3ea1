package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tableside/entity"
)

func countOrders(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&n).Error)
	return n
}

func TestCreateOrderValidationWritesNothing(t *testing.T) {
	db := setupTestDB(t)
	rest, table := seedSession(t, db)
	burger := seedProduct(t, db, rest.ID, "Burger", 5000)
	svc := newOrderService(db, nil)

	cases := []struct {
		name    string
		restID  uint
		tableID uint
		req     *CreateOrderReq
	}{
		{"missing restaurant", 0, table.ID, &CreateOrderReq{Items: []OrderItemIn{{ProductID: burger.ID, Qty: 1}}}},
		{"missing table", rest.ID, 0, &CreateOrderReq{Items: []OrderItemIn{{ProductID: burger.ID, Qty: 1}}}},
		{"empty items", rest.ID, table.ID, &CreateOrderReq{}},
		{"zero quantity", rest.ID, table.ID, &CreateOrderReq{Items: []OrderItemIn{{ProductID: burger.ID, Qty: 0}}}},
		{"missing product", rest.ID, table.ID, &CreateOrderReq{Items: []OrderItemIn{{Qty: 1}}}},
		{"unknown product", rest.ID, table.ID, &CreateOrderReq{Items: []OrderItemIn{{ProductID: 9999, Qty: 1}}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(tc.restID, tc.tableID, tc.req)
			assert.Error(t, err)
			assert.Equal(t, int64(0), countOrders(t, db), "rejected order must not persist anything")
		})
	}
}

func TestCreateOrderSnapshotsAndTotals(t *testing.T) {
	db := setupTestDB(t)
	rest, table := seedSession(t, db)
	burger := seedProduct(t, db, rest.ID, "Burger", 5000)
	salad := seedProduct(t, db, rest.ID, "Salad", 3000)
	fries := seedProduct(t, db, rest.ID, "Fries", 2000)
	attachSide(t, db, salad, fries)

	svc := newOrderService(db, nil)

	out, err := svc.Create(rest.ID, table.ID, &CreateOrderReq{Items: []OrderItemIn{
		{ProductID: burger.ID, Qty: 2},
		{ProductID: salad.ID, Qty: 1, SideIDs: []uint{fries.ID}},
	}})
	require.NoError(t, err)

	// 2×5000 + 1×(3000+2000)
	assert.Equal(t, int64(15000), out.Total)

	o, err := svc.Detail(rest.ID, out.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, o.OrderStatus.StatusName)
	require.Len(t, o.Items, 2)

	// snapshot fields, not live references
	assert.Equal(t, "Burger", o.Items[0].Name)
	assert.Equal(t, int64(5000), o.Items[0].UnitPrice)
	require.Len(t, o.Items[1].Options, 1)
	assert.Equal(t, "Fries", o.Items[1].Options[0].Name)
	assert.Equal(t, int64(2000), o.Items[1].Options[0].PriceDelta)
}

func TestCheckoutCartClearsCart(t *testing.T) {
	db := setupTestDB(t)
	rest, table := seedSession(t, db)
	burger := seedProduct(t, db, rest.ID, "Burger", 5000)

	carts := newCartService(db)
	require.NoError(t, carts.Add(rest.ID, table.ID, &AddToCartIn{ProductID: burger.ID, Qty: 2}))

	svc := newOrderService(db, nil)
	out, err := svc.CheckoutCart(rest.ID, table.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), out.Total)

	after, err := carts.Get(rest.ID, table.ID)
	require.NoError(t, err)
	assert.Empty(t, after.Cart.Items, "checkout discards the table session cart")
}

func TestCheckoutEmptyCartFails(t *testing.T) {
	db := setupTestDB(t)
	rest, table := seedSession(t, db)
	svc := newOrderService(db, nil)

	_, err := svc.CheckoutCart(rest.ID, table.ID)
	assert.ErrorContains(t, err, "cart is empty")
	assert.Equal(t, int64(0), countOrders(t, db))
}

func TestCheckoutPricesAgainstLiveCatalog(t *testing.T) {
	db := setupTestDB(t)
	rest, table := seedSession(t, db)
	burger := seedProduct(t, db, rest.ID, "Burger", 5000)

	carts := newCartService(db)
	require.NoError(t, carts.Add(rest.ID, table.ID, &AddToCartIn{ProductID: burger.ID, Qty: 1}))

	// price changes after the item went into the cart
	require.NoError(t, db.Model(&entity.Product{}).Where("id = ?", burger.ID).Update("price", 7000).Error)

	svc := newOrderService(db, nil)
	out, err := svc.CheckoutCart(rest.ID, table.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(7000), out.Total, "checkout uses the live price, not an add-to-cart snapshot")
}

type recordingPublisher struct{ calls []uint }

func (p *recordingPublisher) Publish(restID uint) { p.calls = append(p.calls, restID) }

func TestCreateOrderPublishes(t *testing.T) {
	db := setupTestDB(t)
	rest, table := seedSession(t, db)
	burger := seedProduct(t, db, rest.ID, "Burger", 5000)

	pub := &recordingPublisher{}
	svc := newOrderService(db, pub)

	_, err := svc.Create(rest.ID, table.ID, &CreateOrderReq{Items: []OrderItemIn{{ProductID: burger.ID, Qty: 1}}})
	require.NoError(t, err)
	assert.Equal(t, []uint{rest.ID}, pub.calls)
}
