package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

func paramUint(c *gin.Context, name string) uint {
	v, _ := strconv.Atoi(c.Param(name))
	if v < 0 {
		return 0
	}
	return uint(v)
}
