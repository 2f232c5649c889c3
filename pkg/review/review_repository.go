package review

import (
	"context"

	"foodbridge-backend/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	ReviewRepository interface {
		RestaurantExists(ctx context.Context, restaurantID uint) (bool, error)
		UpsertReview(ctx context.Context, review *entities.Review) error
		GetReviewsByRestaurant(ctx context.Context, restaurantID uint) ([]*entities.Review, error)
	}

	reviewRepository struct {
		db *gorm.DB
	}
)

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) RestaurantExists(ctx context.Context, restaurantID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Restaurant{}).
		Where("id = ?", restaurantID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpsertReview keeps one review per user and restaurant.
func (r *reviewRepository) UpsertReview(ctx context.Context, review *entities.Review) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "restaurant_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating", "comment", "updated_at"}),
	}).Create(review).Error
}

func (r *reviewRepository) GetReviewsByRestaurant(ctx context.Context, restaurantID uint) ([]*entities.Review, error) {
	var reviews []*entities.Review
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("restaurant_id = ?", restaurantID).
		Order("updated_at desc, id desc").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}
