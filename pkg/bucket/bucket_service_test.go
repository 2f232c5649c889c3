package bucket

import (
	"context"
	"testing"

	"foodbridge-backend/domain"
	"foodbridge-backend/entities"
	"foodbridge-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoodBucket(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewBucketService(NewBucketRepository(db))
	buyer := testutil.SeedUser(t, db, entities.RoleBuyer)
	restaurant := testutil.SeedRestaurant(t, db)
	rice := testutil.SeedProduct(t, db, restaurant.ID, 15000, 10)
	tea := testutil.SeedProduct(t, db, restaurant.ID, 5000, 3)
	ctx := context.Background()

	_, err := svc.GetFoodBucket(ctx, buyer.ID)
	assert.ErrorIs(t, err, domain.ErrFoodBucketNotFound)

	_, err = svc.AddItem(ctx, buyer.ID, domain.AddBucketItemRequest{ProductID: rice.ID, Quantity: 2})
	require.NoError(t, err)
	res, err := svc.AddItem(ctx, buyer.ID, domain.AddBucketItemRequest{ProductID: tea.ID, Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, float64(2*15000+3*5000), res.Total)
	assert.Equal(t, entities.FoodBucketActive, res.Status)

	// adding the same product again sets its quantity
	res, err = svc.AddItem(ctx, buyer.ID, domain.AddBucketItemRequest{ProductID: rice.ID, Quantity: 1})
	require.NoError(t, err)
	require.Len(t, res.Items, 2)
	assert.Equal(t, float64(15000+3*5000), res.Total)

	var buckets int64
	require.NoError(t, db.Model(&entities.FoodBucket{}).Where("user_id = ?", buyer.ID).Count(&buckets).Error)
	assert.Equal(t, int64(1), buckets)

	_, err = svc.AddItem(ctx, buyer.ID, domain.AddBucketItemRequest{ProductID: tea.ID, Quantity: 4})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	res, err = svc.RemoveItem(ctx, buyer.ID, tea.ID)
	require.NoError(t, err)
	assert.Len(t, res.Items, 1)
	assert.Equal(t, float64(15000), res.Total)

	_, err = svc.RemoveItem(ctx, buyer.ID, tea.ID)
	assert.ErrorIs(t, err, domain.ErrBucketItemNotFound)
}

func TestAddItem_Rejections(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewBucketService(NewBucketRepository(db))
	buyer := testutil.SeedUser(t, db, entities.RoleBuyer)
	restaurant := testutil.SeedRestaurant(t, db)
	hidden := testutil.SeedProduct(t, db, restaurant.ID, 15000, 10)
	require.NoError(t, db.Model(hidden).Update("available", false).Error)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, buyer.ID, domain.AddBucketItemRequest{ProductID: 999, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	_, err = svc.AddItem(ctx, buyer.ID, domain.AddBucketItemRequest{ProductID: hidden.ID, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrProductNotAvailable)

	_, err = svc.RemoveItem(ctx, buyer.ID, hidden.ID)
	assert.ErrorIs(t, err, domain.ErrFoodBucketNotFound)
}

func TestTotal(t *testing.T) {
	bucket := &entities.FoodBucket{Items: []*entities.FoodBucketItem{
		{Quantity: 2, Product: &entities.Product{Price: 12500}},
		{Quantity: 1, Product: &entities.Product{Price: 3000}},
		{Quantity: 5},
	}}
	assert.Equal(t, float64(28000), Total(bucket))
}
