package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"

	"tableside/entity"
	"tableside/repository"
)

type TableService struct {
	Repo        *repository.TableRepository
	CatalogRepo *repository.CatalogRepository
}

func NewTableService(repo *repository.TableRepository, catalogRepo *repository.CatalogRepository) *TableService {
	return &TableService{Repo: repo, CatalogRepo: catalogRepo}
}

func newQRToken() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}

func (s *TableService) CreateTable(restID uint, in *TableIn) (*entity.Table, error) {
	if in.Number <= 0 {
		return nil, errors.New("table number must be positive")
	}
	t := &entity.Table{
		Number:       in.Number,
		QRToken:      newQRToken(),
		Active:       true,
		RestaurantID: restID,
	}
	if err := s.Repo.CreateTable(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TableService) SetActive(restID, id uint, active bool) (*entity.Table, error) {
	t, err := s.Repo.GetTable(restID, id)
	if err != nil {
		return nil, errors.New("table not found")
	}
	t.Active = active
	if err := s.Repo.SaveTable(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TableService) ListTables(restID uint) ([]entity.Table, error) {
	return s.Repo.ListTables(restID)
}

func (s *TableService) DeleteTable(restID, id uint) error {
	return s.Repo.DeleteTable(restID, id)
}

// Session is the payload behind a scanned QR code: the tenant, the table and
// the menu, everything a customer device needs with no further handshake.
type Session struct {
	Restaurant *entity.Restaurant `json:"restaurant"`
	Table      *entity.Table      `json:"table"`
	Categories []entity.Category  `json:"categories"`
	Products   []entity.Product   `json:"products"`
}

// ResolveByToken answers a scanned QR code that carries only the table token,
// so printed codes survive table renumbering.
func (s *TableService) ResolveByToken(token string) (*Session, error) {
	t, err := s.Repo.GetByQRToken(token)
	if err != nil {
		return nil, errors.New("table not found")
	}
	return s.ResolveSession(t.RestaurantID, t.ID)
}

// ResolveSession answers /r/{restaurantId}/t/{tableId}.
func (s *TableService) ResolveSession(restID, tableID uint) (*Session, error) {
	rest, err := s.Repo.GetRestaurant(restID)
	if err != nil {
		return nil, errors.New("restaurant not found")
	}
	t, err := s.Repo.GetTable(restID, tableID)
	if err != nil {
		return nil, errors.New("table not found")
	}
	if !t.Active {
		return nil, errors.New("table is not active")
	}

	cats, err := s.CatalogRepo.ListCategories(restID)
	if err != nil {
		return nil, err
	}
	products, err := s.CatalogRepo.ListProducts(restID)
	if err != nil {
		return nil, err
	}

	return &Session{Restaurant: rest, Table: t, Categories: cats, Products: products}, nil
}

// ---------------- Restaurants ----------------

type RestaurantIn struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
}

func slugify(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
		case r == ' ' || r == '-' || r == '_':
			if len(out) > 0 && out[len(out)-1] != '-' {
				out = append(out, '-')
			}
		}
	}
	return strings.Trim(string(out), "-")
}

func (s *TableService) CreateRestaurant(ownerID uint, in *RestaurantIn) (*entity.Restaurant, error) {
	rest := &entity.Restaurant{
		Name:    in.Name,
		Slug:    slugify(in.Name),
		Address: in.Address,
		UserID:  ownerID,
	}
	if rest.Slug == "" {
		return nil, errors.New("restaurant name must contain letters or digits")
	}
	if err := s.Repo.CreateRestaurant(rest); err != nil {
		return nil, err
	}
	return rest, nil
}

// UpdateRestaurant lets the owner (or an admin) rename or re-address a
// restaurant. The slug is fixed at creation so printed QR links stay valid.
func (s *TableService) UpdateRestaurant(restID, userID uint, role string, in *RestaurantIn) (*entity.Restaurant, error) {
	if role != "admin" {
		owned, err := s.Repo.IsOwnedBy(restID, userID)
		if err != nil {
			return nil, err
		}
		if !owned {
			return nil, errors.New("not your restaurant")
		}
	}
	rest, err := s.Repo.GetRestaurant(restID)
	if err != nil {
		return nil, errors.New("restaurant not found")
	}
	rest.Name = in.Name
	rest.Address = in.Address
	if err := s.Repo.SaveRestaurant(rest); err != nil {
		return nil, err
	}
	return rest, nil
}

func (s *TableService) ListMyRestaurants(userID uint) ([]entity.Restaurant, error) {
	return s.Repo.ListRestaurantsForOwner(userID)
}
