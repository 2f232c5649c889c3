package product

import (
	"context"
	"strconv"
	"testing"

	"foodbridge-backend/domain"
	"foodbridge-backend/entities"
	"foodbridge-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductLifecycle(t *testing.T) {
	db := testutil.NewTestDB(t)
	store := testutil.NewMemoryStorage()
	svc := NewProductService(NewProductRepository(db), store)
	restaurant := testutil.SeedRestaurant(t, db)
	ctx := context.Background()

	unavailable := false
	created, err := svc.CreateProduct(ctx, restaurant.UserID, domain.ProductInput{
		Name: "Ayam Geprek", Price: 20000, Quantity: 12, Available: &unavailable,
	})
	require.NoError(t, err)
	assert.Equal(t, restaurant.ID, created.RestaurantID)

	var stored entities.Product
	require.NoError(t, db.First(&stored, created.ID).Error)
	assert.False(t, stored.Available)

	defaulted, err := svc.CreateProduct(ctx, restaurant.UserID, domain.ProductInput{Name: "Es Teh", Price: 5000, Quantity: 30})
	require.NoError(t, err)
	assert.True(t, defaulted.Available)

	updated, err := svc.UpdateProduct(ctx, restaurant.UserID, created.ID, domain.ProductInput{Name: "Ayam Geprek Level 5", Price: 22000, Quantity: 10})
	require.NoError(t, err)
	assert.Equal(t, "Ayam Geprek Level 5", updated.Name)
	assert.False(t, updated.Available)

	products, err := svc.GetProductsByRestaurant(ctx, restaurant.ID)
	require.NoError(t, err)
	assert.Len(t, products, 2)

	withImage, err := svc.UploadProductImage(ctx, restaurant.UserID, created.ID, testutil.NewFileHeader(t, "image", "geprek.jpg", []byte("jpg")))
	require.NoError(t, err)
	assert.Equal(t, "https://test-bucket.s3.local/products/product-"+itoa(created.ID)+".jpg", withImage.ImageURL)

	// a second upload replaces the same object
	_, err = svc.UploadProductImage(ctx, restaurant.UserID, created.ID, testutil.NewFileHeader(t, "image", "geprek2.jpg", []byte("jpg2")))
	require.NoError(t, err)
	assert.Len(t, store.Objects, 1)

	require.NoError(t, svc.DeleteProduct(ctx, restaurant.UserID, created.ID))
	assert.Len(t, store.Deleted, 1)
	products, err = svc.GetProductsByRestaurant(ctx, restaurant.ID)
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestProductOwnership(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewProductService(NewProductRepository(db), testutil.NewMemoryStorage())
	mine := testutil.SeedRestaurant(t, db)
	theirs := testutil.SeedRestaurant(t, db)
	product := testutil.SeedProduct(t, db, theirs.ID, 10000, 3)
	ctx := context.Background()

	_, err := svc.UpdateProduct(ctx, mine.UserID, product.ID, domain.ProductInput{Name: "x", Price: 1})
	assert.ErrorIs(t, err, domain.ErrUnauthorizedProductAccess)

	assert.ErrorIs(t, svc.DeleteProduct(ctx, mine.UserID, product.ID), domain.ErrUnauthorizedProductAccess)
	assert.ErrorIs(t, svc.DeleteProduct(ctx, mine.UserID, 999), domain.ErrProductNotFound)

	buyer := testutil.SeedUser(t, db, entities.RoleBuyer)
	_, err = svc.CreateProduct(ctx, buyer.ID, domain.ProductInput{Name: "x", Price: 1})
	assert.ErrorIs(t, err, domain.ErrRestaurantNotFound)

	_, err = svc.GetProductsByRestaurant(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrRestaurantNotFound)

	_, err = svc.UploadProductImage(ctx, theirs.UserID, product.ID, nil)
	assert.ErrorIs(t, err, domain.ErrImageRequired)
}

func itoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
