package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tableside/entity"
	"tableside/repository"
)

func newTableService(db *gorm.DB) *TableService {
	return NewTableService(repository.NewTableRepository(db), repository.NewCatalogRepository(db))
}

func TestCreateTableIssuesDistinctQRTokens(t *testing.T) {
	db := setupTestDB(t)
	rest, _ := seedSession(t, db)
	svc := newTableService(db)

	a, err := svc.CreateTable(rest.ID, &TableIn{Number: 2})
	require.NoError(t, err)
	b, err := svc.CreateTable(rest.ID, &TableIn{Number: 3})
	require.NoError(t, err)

	assert.Len(t, a.QRToken, 32)
	assert.NotEqual(t, a.QRToken, b.QRToken)
	assert.True(t, a.Active, "new tables start active")

	_, err = svc.CreateTable(rest.ID, &TableIn{Number: 0})
	assert.Error(t, err)
}

func TestResolveSession(t *testing.T) {
	db := setupTestDB(t)
	rest, table := seedSession(t, db)
	seedProduct(t, db, rest.ID, "Burger", 9000)
	svc := newTableService(db)

	sess, err := svc.ResolveSession(rest.ID, table.ID)
	require.NoError(t, err)
	assert.Equal(t, rest.ID, sess.Restaurant.ID)
	assert.Equal(t, table.ID, sess.Table.ID)
	require.Len(t, sess.Products, 1)
	assert.Equal(t, "Burger", sess.Products[0].Name)

	// inactive tables cannot start a session
	_, err = svc.SetActive(rest.ID, table.ID, false)
	require.NoError(t, err)
	_, err = svc.ResolveSession(rest.ID, table.ID)
	assert.Error(t, err)
}

func TestResolveByToken(t *testing.T) {
	db := setupTestDB(t)
	rest, table := seedSession(t, db)
	svc := newTableService(db)

	sess, err := svc.ResolveByToken(table.QRToken)
	require.NoError(t, err)
	assert.Equal(t, rest.ID, sess.Restaurant.ID)
	assert.Equal(t, table.ID, sess.Table.ID)

	_, err = svc.ResolveByToken("no-such-token")
	assert.Error(t, err)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "marios-pizza", slugify("Mario's  Pizza"))
	assert.Equal(t, "cafe-42", slugify("Cafe 42"))
	assert.Equal(t, "", slugify("!!!"))
}

func TestRestaurantOwnership(t *testing.T) {
	db := setupTestDB(t)
	svc := newTableService(db)

	owner := &entity.User{Email: "owner@example.com", Role: "owner"}
	require.NoError(t, db.Create(owner).Error)
	stranger := &entity.User{Email: "other@example.com", Role: "owner"}
	require.NoError(t, db.Create(stranger).Error)

	rest, err := svc.CreateRestaurant(owner.ID, &RestaurantIn{Name: "Mario's Pizza", Address: "Main St 1"})
	require.NoError(t, err)
	assert.Equal(t, "marios-pizza", rest.Slug)

	mine, err := svc.ListMyRestaurants(owner.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	// only the owner or an admin may edit
	_, err = svc.UpdateRestaurant(rest.ID, stranger.ID, "owner", &RestaurantIn{Name: "Hijacked"})
	assert.Error(t, err)

	updated, err := svc.UpdateRestaurant(rest.ID, stranger.ID, "admin", &RestaurantIn{Name: "Renamed", Address: "Main St 2"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "marios-pizza", updated.Slug, "slug is fixed at creation")
}
