package controllers

import (
	"github.com/gin-gonic/gin"

	"tableside/pkg/resp"
	"tableside/services"
)

// Customer-facing surface behind a scanned QR code. Everything is scoped by
// the /r/:restaurantId/t/:tableId path segments; there is no login.
type SessionController struct {
	Tables   *services.TableService
	Carts    *services.CartService
	Orders   *services.OrderService
	Requests *services.RequestService
}

func NewSessionController(t *services.TableService, c *services.CartService, o *services.OrderService, r *services.RequestService) *SessionController {
	return &SessionController{Tables: t, Carts: c, Orders: o, Requests: r}
}

// GET /r/:restaurantId/t/:tableId
func (sc *SessionController) Resolve(c *gin.Context) {
	restID := paramUint(c, "restaurantId")
	tableID := paramUint(c, "tableId")

	session, err := sc.Tables.ResolveSession(restID, tableID)
	if err != nil {
		resp.NotFound(c, err.Error())
		return
	}
	resp.OK(c, session)
}

// GET /qr/:token resolves a printed QR code that only carries the table token.
func (sc *SessionController) ResolveByToken(c *gin.Context) {
	session, err := sc.Tables.ResolveByToken(c.Param("token"))
	if err != nil {
		resp.NotFound(c, err.Error())
		return
	}
	resp.OK(c, session)
}

// ----- Cart -----

// GET /r/:restaurantId/t/:tableId/cart
func (sc *SessionController) GetCart(c *gin.Context) {
	out, err := sc.Carts.Get(paramUint(c, "restaurantId"), paramUint(c, "tableId"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /r/:restaurantId/t/:tableId/cart/items
func (sc *SessionController) AddToCart(c *gin.Context) {
	var in services.AddToCartIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := sc.Carts.Add(paramUint(c, "restaurantId"), paramUint(c, "tableId"), &in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	sc.GetCart(c)
}

// PATCH /r/:restaurantId/t/:tableId/cart/items/:itemId
func (sc *SessionController) UpdateCartItem(c *gin.Context) {
	var in struct {
		Qty int `json:"qty"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	err := sc.Carts.UpdateQty(paramUint(c, "restaurantId"), paramUint(c, "tableId"), paramUint(c, "itemId"), in.Qty)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	sc.GetCart(c)
}

// DELETE /r/:restaurantId/t/:tableId/cart/items/:itemId
func (sc *SessionController) RemoveCartItem(c *gin.Context) {
	err := sc.Carts.RemoveItem(paramUint(c, "restaurantId"), paramUint(c, "tableId"), paramUint(c, "itemId"))
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	sc.GetCart(c)
}

// DELETE /r/:restaurantId/t/:tableId/cart
func (sc *SessionController) ClearCart(c *gin.Context) {
	if err := sc.Carts.Clear(paramUint(c, "restaurantId"), paramUint(c, "tableId")); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}

// ----- Checkout & orders -----

// POST /r/:restaurantId/t/:tableId/checkout
func (sc *SessionController) Checkout(c *gin.Context) {
	out, err := sc.Orders.CheckoutCart(paramUint(c, "restaurantId"), paramUint(c, "tableId"))
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, out)
}

// POST /r/:restaurantId/t/:tableId/orders: direct order without a cart
func (sc *SessionController) CreateOrder(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := sc.Orders.Create(paramUint(c, "restaurantId"), paramUint(c, "tableId"), &req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, out)
}

// GET /r/:restaurantId/t/:tableId/orders: the table's own order history
func (sc *SessionController) ListOrders(c *gin.Context) {
	orders, err := sc.Orders.ListForTable(paramUint(c, "restaurantId"), paramUint(c, "tableId"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// ----- Service requests -----

// POST /r/:restaurantId/t/:tableId/requests  {"type":"server"|"bill"}
func (sc *SessionController) CreateRequest(c *gin.Context) {
	var in struct {
		Type string `json:"type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	sr, err := sc.Requests.Create(paramUint(c, "restaurantId"), paramUint(c, "tableId"), in.Type)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, sr)
}
