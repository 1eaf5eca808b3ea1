package controllers

import (
	"github.com/gin-gonic/gin"

	"tableside/pkg/resp"
	"tableside/services"
)

type StatisticsController struct {
	Stats *services.StatisticsService
}

func NewStatisticsController(s *services.StatisticsService) *StatisticsController {
	return &StatisticsController{Stats: s}
}

// GET /staff/restaurants/:restaurantId/statistics
func (sc *StatisticsController) Dashboard(c *gin.Context) {
	out, err := sc.Stats.Calculate(paramUint(c, "restaurantId"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}
