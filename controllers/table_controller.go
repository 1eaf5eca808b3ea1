package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"tableside/pkg/resp"
	"tableside/services"
)

type TableController struct {
	Tables *services.TableService
}

func NewTableController(s *services.TableService) *TableController {
	return &TableController{Tables: s}
}

func (tc *TableController) List(c *gin.Context) {
	out, err := tc.Tables.ListTables(paramUint(c, "restaurantId"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": out})
}

func (tc *TableController) Create(c *gin.Context) {
	var in services.TableIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	restID := paramUint(c, "restaurantId")
	t, err := tc.Tables.CreateTable(restID, &in)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	// the path a printed QR code deep-links into
	resp.Created(c, gin.H{
		"table": t,
		"url":   fmt.Sprintf("/r/%d/t/%d", restID, t.ID),
	})
}

func (tc *TableController) SetActive(c *gin.Context) {
	var in struct {
		Active *bool `json:"active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	t, err := tc.Tables.SetActive(paramUint(c, "restaurantId"), paramUint(c, "id"), *in.Active)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, t)
}

func (tc *TableController) Delete(c *gin.Context) {
	if err := tc.Tables.DeleteTable(paramUint(c, "restaurantId"), paramUint(c, "id")); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
