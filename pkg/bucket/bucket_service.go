package bucket

import (
	"context"
	"errors"
	"fmt"

	"foodbridge-backend/domain"
	"foodbridge-backend/entities"

	"gorm.io/gorm"
)

type (
	BucketService interface {
		GetFoodBucket(ctx context.Context, userID uint) (*domain.FoodBucketResponse, error)
		AddItem(ctx context.Context, userID uint, req domain.AddBucketItemRequest) (*domain.FoodBucketResponse, error)
		RemoveItem(ctx context.Context, userID, productID uint) (*domain.FoodBucketResponse, error)
	}

	bucketService struct {
		bucketRepository BucketRepository
	}
)

func NewBucketService(bucketRepository BucketRepository) BucketService {
	return &bucketService{bucketRepository: bucketRepository}
}

func (s *bucketService) GetFoodBucket(ctx context.Context, userID uint) (*domain.FoodBucketResponse, error) {
	bucket, err := s.bucketRepository.GetActiveBucket(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodBucketNotFound
		}
		return nil, err
	}
	return ToResponse(bucket), nil
}

func (s *bucketService) AddItem(ctx context.Context, userID uint, req domain.AddBucketItemRequest) (*domain.FoodBucketResponse, error) {
	product, err := s.bucketRepository.GetProductByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	if !product.Available {
		return nil, domain.ErrProductNotAvailable
	}
	if product.Quantity < req.Quantity {
		return nil, domain.ErrInsufficientStock
	}

	bucket, err := s.bucketRepository.GetOrCreateActiveBucket(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("open food bucket: %w", err)
	}

	if err := s.bucketRepository.UpsertItem(ctx, &entities.FoodBucketItem{
		FoodBucketID: bucket.ID,
		ProductID:    product.ID,
		Quantity:     req.Quantity,
	}); err != nil {
		return nil, fmt.Errorf("add bucket item: %w", err)
	}

	return s.GetFoodBucket(ctx, userID)
}

func (s *bucketService) RemoveItem(ctx context.Context, userID, productID uint) (*domain.FoodBucketResponse, error) {
	bucket, err := s.bucketRepository.GetActiveBucket(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodBucketNotFound
		}
		return nil, err
	}

	rows, err := s.bucketRepository.RemoveItem(ctx, bucket.ID, productID)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, domain.ErrBucketItemNotFound
	}

	return s.GetFoodBucket(ctx, userID)
}

// Total sums price times quantity over the bucket items.
func Total(bucket *entities.FoodBucket) float64 {
	var total float64
	for _, item := range bucket.Items {
		if item.Product == nil {
			continue
		}
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

func ToResponse(bucket *entities.FoodBucket) *domain.FoodBucketResponse {
	res := &domain.FoodBucketResponse{
		ID:     bucket.ID,
		Status: bucket.Status,
		Items:  make([]domain.FoodBucketItemResponse, 0, len(bucket.Items)),
		Total:  Total(bucket),
	}
	for _, item := range bucket.Items {
		if item.Product == nil {
			continue
		}
		res.Items = append(res.Items, domain.FoodBucketItemResponse{
			ProductID: item.ProductID,
			Name:      item.Product.Name,
			Price:     item.Product.Price,
			Quantity:  item.Quantity,
			Subtotal:  item.Product.Price * float64(item.Quantity),
		})
	}
	return res
}
