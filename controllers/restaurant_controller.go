package controllers

import (
	"github.com/gin-gonic/gin"

	"tableside/pkg/resp"
	"tableside/services"
	"tableside/utils"
)

type RestaurantController struct {
	Tables *services.TableService
}

func NewRestaurantController(s *services.TableService) *RestaurantController {
	return &RestaurantController{Tables: s}
}

// GET /staff/restaurants
func (rc *RestaurantController) ListMine(c *gin.Context) {
	out, err := rc.Tables.ListMyRestaurants(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": out})
}

// POST /staff/restaurants
func (rc *RestaurantController) Create(c *gin.Context) {
	var in services.RestaurantIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	rest, err := rc.Tables.CreateRestaurant(utils.CurrentUserID(c), &in)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, rest)
}

// PATCH /staff/restaurants/:restaurantId
func (rc *RestaurantController) Update(c *gin.Context) {
	var in services.RestaurantIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	rest, err := rc.Tables.UpdateRestaurant(
		paramUint(c, "restaurantId"),
		utils.CurrentUserID(c),
		utils.CurrentRole(c),
		&in,
	)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, rest)
}
