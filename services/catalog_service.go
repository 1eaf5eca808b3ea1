package services

import (
	"errors"
	"fmt"
	"strings"

	"tableside/entity"
	"tableside/repository"
)

type CatalogService struct {
	Repo      *repository.CatalogRepository
	TableRepo *repository.TableRepository
}

func NewCatalogService(repo *repository.CatalogRepository, tableRepo *repository.TableRepository) *CatalogService {
	return &CatalogService{Repo: repo, TableRepo: tableRepo}
}

// Form inputs are explicit structs validated here, before anything touches
// the store.

type CategoryIn struct {
	Name      string `json:"name" binding:"required"`
	SortOrder int    `json:"sortOrder"`
}

type MenuTypeIn struct {
	Name string `json:"name" binding:"required"`
}

type ProductIn struct {
	Name       string `json:"name" binding:"required"`
	Detail     string `json:"detail"`
	Price      int64  `json:"price" binding:"required"`
	CategoryID uint   `json:"categoryId" binding:"required"`
	MenuTypeID uint   `json:"menuTypeId" binding:"required"`
	Available  *bool  `json:"available"`
	SideIDs    []uint `json:"sideIds"`
	SauceIDs   []uint `json:"sauceIds"`
}

type TableIn struct {
	Number int `json:"number" binding:"required,min=1"`
}

// ---------------- Categories ----------------

func (s *CatalogService) CreateCategory(restID uint, in *CategoryIn) (*entity.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, errors.New("name is required")
	}
	c := &entity.Category{Name: name, SortOrder: in.SortOrder, RestaurantID: restID}
	if err := s.Repo.CreateCategory(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CatalogService) UpdateCategory(restID, id uint, in *CategoryIn) (*entity.Category, error) {
	c, err := s.Repo.GetCategory(restID, id)
	if err != nil {
		return nil, errors.New("category not found")
	}
	if name := strings.TrimSpace(in.Name); name != "" {
		c.Name = name
	}
	c.SortOrder = in.SortOrder
	if err := s.Repo.SaveCategory(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CatalogService) DeleteCategory(restID, id uint) error {
	return s.Repo.DeleteCategory(restID, id)
}

func (s *CatalogService) ListCategories(restID uint) ([]entity.Category, error) {
	return s.Repo.ListCategories(restID)
}

// ---------------- Menu types ----------------

func (s *CatalogService) CreateMenuType(restID uint, in *MenuTypeIn) (*entity.MenuType, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, errors.New("name is required")
	}
	t := &entity.MenuType{Name: name, RestaurantID: restID}
	if err := s.Repo.CreateMenuType(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *CatalogService) UpdateMenuType(restID, id uint, in *MenuTypeIn) (*entity.MenuType, error) {
	t, err := s.Repo.GetMenuType(restID, id)
	if err != nil {
		return nil, errors.New("menu type not found")
	}
	if name := strings.TrimSpace(in.Name); name != "" {
		t.Name = name
	}
	if err := s.Repo.SaveMenuType(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *CatalogService) DeleteMenuType(restID, id uint) error {
	return s.Repo.DeleteMenuType(restID, id)
}

func (s *CatalogService) ListMenuTypes(restID uint) ([]entity.MenuType, error) {
	return s.Repo.ListMenuTypes(restID)
}

// ---------------- Products ----------------

// Option products must live in the same restaurant as the parent.
func (s *CatalogService) resolveOptions(restID uint, ids []uint) ([]entity.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	catalog, err := s.Repo.PriceMap(ids)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Product, 0, len(ids))
	for _, id := range ids {
		p, ok := catalog[id]
		if !ok || p.RestaurantID != restID {
			return nil, fmt.Errorf("option product %d not found", id)
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *CatalogService) CreateProduct(restID uint, in *ProductIn) (*entity.Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, errors.New("name is required")
	}
	if in.Price <= 0 {
		return nil, errors.New("price must be positive")
	}
	if _, err := s.Repo.GetCategory(restID, in.CategoryID); err != nil {
		return nil, errors.New("category not found")
	}
	if _, err := s.Repo.GetMenuType(restID, in.MenuTypeID); err != nil {
		return nil, errors.New("menu type not found")
	}

	sides, err := s.resolveOptions(restID, in.SideIDs)
	if err != nil {
		return nil, err
	}
	sauces, err := s.resolveOptions(restID, in.SauceIDs)
	if err != nil {
		return nil, err
	}

	available := true
	if in.Available != nil {
		available = *in.Available
	}

	p := &entity.Product{
		Name:         strings.TrimSpace(in.Name),
		Detail:       in.Detail,
		Price:        in.Price,
		Available:    available,
		CategoryID:   in.CategoryID,
		MenuTypeID:   in.MenuTypeID,
		RestaurantID: restID,
	}
	if err := s.Repo.CreateProduct(p); err != nil {
		return nil, err
	}
	if err := s.Repo.ReplaceSides(p, sides); err != nil {
		return nil, err
	}
	if err := s.Repo.ReplaceSauces(p, sauces); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *CatalogService) UpdateProduct(restID, id uint, in *ProductIn) (*entity.Product, error) {
	p, err := s.Repo.GetProduct(id)
	if err != nil || p.RestaurantID != restID {
		return nil, errors.New("product not found")
	}

	if name := strings.TrimSpace(in.Name); name != "" {
		p.Name = name
	}
	if in.Detail != "" {
		p.Detail = in.Detail
	}
	if in.Price > 0 {
		p.Price = in.Price
	}
	if in.CategoryID != 0 {
		if _, err := s.Repo.GetCategory(restID, in.CategoryID); err != nil {
			return nil, errors.New("category not found")
		}
		p.CategoryID = in.CategoryID
	}
	if in.MenuTypeID != 0 {
		if _, err := s.Repo.GetMenuType(restID, in.MenuTypeID); err != nil {
			return nil, errors.New("menu type not found")
		}
		p.MenuTypeID = in.MenuTypeID
	}
	if in.Available != nil {
		p.Available = *in.Available
	}

	if err := s.Repo.SaveProduct(p); err != nil {
		return nil, err
	}

	if in.SideIDs != nil {
		sides, err := s.resolveOptions(restID, in.SideIDs)
		if err != nil {
			return nil, err
		}
		if err := s.Repo.ReplaceSides(p, sides); err != nil {
			return nil, err
		}
	}
	if in.SauceIDs != nil {
		sauces, err := s.resolveOptions(restID, in.SauceIDs)
		if err != nil {
			return nil, err
		}
		if err := s.Repo.ReplaceSauces(p, sauces); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (s *CatalogService) DeleteProduct(restID, id uint) error {
	return s.Repo.DeleteProduct(restID, id)
}

func (s *CatalogService) ListProducts(restID uint) ([]entity.Product, error) {
	return s.Repo.ListProducts(restID)
}
