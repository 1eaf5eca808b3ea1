package controllers

import (
	"github.com/gin-gonic/gin"

	"tableside/pkg/resp"
	"tableside/services"
)

// Admin CRUD for the menu catalog: categories, menu types, products.
type CatalogController struct {
	Catalog *services.CatalogService
}

func NewCatalogController(s *services.CatalogService) *CatalogController {
	return &CatalogController{Catalog: s}
}

// ----- Categories -----

func (cc *CatalogController) ListCategories(c *gin.Context) {
	out, err := cc.Catalog.ListCategories(paramUint(c, "restaurantId"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": out})
}

func (cc *CatalogController) CreateCategory(c *gin.Context) {
	var in services.CategoryIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := cc.Catalog.CreateCategory(paramUint(c, "restaurantId"), &in)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, out)
}

func (cc *CatalogController) UpdateCategory(c *gin.Context) {
	var in services.CategoryIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := cc.Catalog.UpdateCategory(paramUint(c, "restaurantId"), paramUint(c, "id"), &in)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, out)
}

func (cc *CatalogController) DeleteCategory(c *gin.Context) {
	if err := cc.Catalog.DeleteCategory(paramUint(c, "restaurantId"), paramUint(c, "id")); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// ----- Menu types -----

func (cc *CatalogController) ListMenuTypes(c *gin.Context) {
	out, err := cc.Catalog.ListMenuTypes(paramUint(c, "restaurantId"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": out})
}

func (cc *CatalogController) CreateMenuType(c *gin.Context) {
	var in services.MenuTypeIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := cc.Catalog.CreateMenuType(paramUint(c, "restaurantId"), &in)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, out)
}

func (cc *CatalogController) UpdateMenuType(c *gin.Context) {
	var in services.MenuTypeIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := cc.Catalog.UpdateMenuType(paramUint(c, "restaurantId"), paramUint(c, "id"), &in)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, out)
}

func (cc *CatalogController) DeleteMenuType(c *gin.Context) {
	if err := cc.Catalog.DeleteMenuType(paramUint(c, "restaurantId"), paramUint(c, "id")); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// ----- Products -----

func (cc *CatalogController) ListProducts(c *gin.Context) {
	out, err := cc.Catalog.ListProducts(paramUint(c, "restaurantId"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": out})
}

func (cc *CatalogController) CreateProduct(c *gin.Context) {
	var in services.ProductIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := cc.Catalog.CreateProduct(paramUint(c, "restaurantId"), &in)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, out)
}

func (cc *CatalogController) UpdateProduct(c *gin.Context) {
	var in services.ProductIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := cc.Catalog.UpdateProduct(paramUint(c, "restaurantId"), paramUint(c, "id"), &in)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, out)
}

func (cc *CatalogController) DeleteProduct(c *gin.Context) {
	if err := cc.Catalog.DeleteProduct(paramUint(c, "restaurantId"), paramUint(c, "id")); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
