package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"foodbridge-backend/entities"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var seq atomic.Int64

func nextEmail(role string) string {
	return fmt.Sprintf("%s%d@foodbridge.test", role, seq.Add(1))
}

func SeedUser(t *testing.T, db *gorm.DB, role string) *entities.User {
	t.Helper()
	user := &entities.User{
		Name:     role + " user",
		Email:    nextEmail(role),
		Password: "hashed",
		Role:     role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func SeedOrg(t *testing.T, db *gorm.DB) *entities.OrgDetails {
	t.Helper()
	user := SeedUser(t, db, entities.RoleOrganization)
	org := &entities.OrgDetails{
		UserID:  user.ID,
		Name:    "Food Bank Bandung",
		Address: "Jl. Dago 1",
		Phone:   "0812",
	}
	require.NoError(t, db.Create(org).Error)
	return org
}

func SeedRestaurant(t *testing.T, db *gorm.DB) *entities.Restaurant {
	t.Helper()
	user := SeedUser(t, db, entities.RoleSeller)
	restaurant := &entities.Restaurant{
		UserID:  user.ID,
		Name:    "Warung Sederhana",
		Address: "Jl. Braga 2",
	}
	require.NoError(t, db.Create(restaurant).Error)
	return restaurant
}

func SeedProduct(t *testing.T, db *gorm.DB, restaurantID uint, price float64, quantity int) *entities.Product {
	t.Helper()
	product := &entities.Product{
		RestaurantID: restaurantID,
		Name:         fmt.Sprintf("Nasi Box %d", seq.Add(1)),
		Price:        price,
		Quantity:     quantity,
		Available:    true,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func SeedRequest(t *testing.T, db *gorm.DB, orgUserID uint, visible bool) *entities.FoodRequest {
	t.Helper()
	request := &entities.FoodRequest{
		OrgDetailsUserID: orgUserID,
		Title:            "Weekend meals",
		Products:         "rice, vegetables",
		Quantity:         50,
		DateTime:         time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second),
		Visibility:       visible,
	}
	require.NoError(t, db.Create(request).Error)
	return request
}
