package review

import (
	"context"
	"fmt"
	"math"
	"time"

	"foodbridge-backend/domain"
	"foodbridge-backend/entities"
)

type (
	ReviewService interface {
		UpsertReview(ctx context.Context, userID, restaurantID uint, req domain.ReviewRequest) (*domain.ReviewResponse, error)
		GetRestaurantReviews(ctx context.Context, restaurantID uint) (*domain.RestaurantReviewsResponse, error)
	}

	reviewService struct {
		reviewRepository ReviewRepository
	}
)

func NewReviewService(reviewRepository ReviewRepository) ReviewService {
	return &reviewService{reviewRepository: reviewRepository}
}

func (s *reviewService) UpsertReview(ctx context.Context, userID, restaurantID uint, req domain.ReviewRequest) (*domain.ReviewResponse, error) {
	if err := s.ensureRestaurant(ctx, restaurantID); err != nil {
		return nil, err
	}

	review := &entities.Review{
		UserID:       userID,
		RestaurantID: restaurantID,
		Rating:       req.Rating,
		Comment:      req.Comment,
	}
	if err := s.reviewRepository.UpsertReview(ctx, review); err != nil {
		return nil, fmt.Errorf("save review: %w", err)
	}

	return &domain.ReviewResponse{
		UserID:    userID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt.Format(time.RFC3339),
	}, nil
}

func (s *reviewService) GetRestaurantReviews(ctx context.Context, restaurantID uint) (*domain.RestaurantReviewsResponse, error) {
	if err := s.ensureRestaurant(ctx, restaurantID); err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepository.GetReviewsByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	res := &domain.RestaurantReviewsResponse{
		RestaurantID: restaurantID,
		TotalReviews: len(reviews),
		Reviews:      make([]domain.ReviewResponse, 0, len(reviews)),
	}

	total := 0
	for _, r := range reviews {
		total += r.Rating
		item := domain.ReviewResponse{
			ID:        r.ID,
			UserID:    r.UserID,
			Rating:    r.Rating,
			Comment:   r.Comment,
			CreatedAt: r.CreatedAt.Format(time.RFC3339),
		}
		if r.User != nil {
			item.UserName = r.User.Name
		}
		res.Reviews = append(res.Reviews, item)
	}
	if len(reviews) > 0 {
		res.AverageRating = math.Round(float64(total)/float64(len(reviews))*100) / 100
	}
	return res, nil
}

func (s *reviewService) ensureRestaurant(ctx context.Context, restaurantID uint) error {
	exists, err := s.reviewRepository.RestaurantExists(ctx, restaurantID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrRestaurantNotFound
	}
	return nil
}
