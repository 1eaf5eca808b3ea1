package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tableside/pkg/resp"
	"tableside/services"
)

// Staff-side order handling: kitchen list, detail, status transitions.
type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(o *services.OrderService) *OrderController {
	return &OrderController{Orders: o}
}

// GET /staff/restaurants/:restaurantId/orders
func (oc *OrderController) List(c *gin.Context) {
	orders, err := oc.Orders.ListForRestaurant(paramUint(c, "restaurantId"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// GET /staff/restaurants/:restaurantId/orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	o, err := oc.Orders.Detail(paramUint(c, "restaurantId"), paramUint(c, "id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "not found")
			return
		}
		resp.NotFound(c, err.Error())
		return
	}
	resp.OK(c, o)
}

// PATCH /staff/restaurants/:restaurantId/orders/:id/status  {"status":"preparing"}
func (oc *OrderController) Transition(c *gin.Context) {
	var in struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	err := oc.Orders.Transition(paramUint(c, "restaurantId"), paramUint(c, "id"), in.Status)
	switch {
	case err == nil:
		resp.OK(c, gin.H{"status": in.Status})
	case errors.Is(err, services.ErrInvalidTransition):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrTransitionConflict):
		resp.Conflict(c, err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "order not found")
	default:
		resp.ServerError(c, err)
	}
}
