package review

import (
	"context"
	"testing"

	"foodbridge-backend/domain"
	"foodbridge-backend/entities"
	"foodbridge-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertReview_OnePerUser(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewReviewService(NewReviewRepository(db))
	restaurant := testutil.SeedRestaurant(t, db)
	alice := testutil.SeedUser(t, db, entities.RoleBuyer)
	bob := testutil.SeedUser(t, db, entities.RoleBuyer)
	ctx := context.Background()

	_, err := svc.UpsertReview(ctx, alice.ID, restaurant.ID, domain.ReviewRequest{Rating: 2, Comment: "cold"})
	require.NoError(t, err)
	_, err = svc.UpsertReview(ctx, alice.ID, restaurant.ID, domain.ReviewRequest{Rating: 5, Comment: "better now"})
	require.NoError(t, err)
	_, err = svc.UpsertReview(ctx, bob.ID, restaurant.ID, domain.ReviewRequest{Rating: 4})
	require.NoError(t, err)

	res, err := svc.GetRestaurantReviews(ctx, restaurant.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalReviews)
	assert.Equal(t, 4.5, res.AverageRating)

	var count int64
	require.NoError(t, db.Model(&entities.Review{}).Where("user_id = ?", alice.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	for _, r := range res.Reviews {
		if r.UserID == alice.ID {
			assert.Equal(t, 5, r.Rating)
			assert.Equal(t, "better now", r.Comment)
			assert.Equal(t, alice.Name, r.UserName)
		}
	}
}

func TestReviews_UnknownRestaurant(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewReviewService(NewReviewRepository(db))

	_, err := svc.UpsertReview(context.Background(), 1, 999, domain.ReviewRequest{Rating: 3})
	assert.ErrorIs(t, err, domain.ErrRestaurantNotFound)

	_, err = svc.GetRestaurantReviews(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrRestaurantNotFound)
}

func TestReviews_EmptyRestaurant(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewReviewService(NewReviewRepository(db))
	restaurant := testutil.SeedRestaurant(t, db)

	res, err := svc.GetRestaurantReviews(context.Background(), restaurant.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, res.TotalReviews)
	assert.Equal(t, float64(0), res.AverageRating)
	assert.NotNil(t, res.Reviews)
}
