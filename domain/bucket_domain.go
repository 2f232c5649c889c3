package domain

import "errors"

var (
	MessageSuccessGetFoodBucket = "food bucket retrieved successfully"
	MessageSuccessAddBucketItem = "item added to food bucket"
	MessageSuccessRemoveItem    = "item removed from food bucket"

	MessageFailedGetFoodBucket = "failed to retrieve food bucket"
	MessageFailedAddBucketItem = "failed to add item to food bucket"
	MessageFailedRemoveItem    = "failed to remove item from food bucket"

	ErrFoodBucketNotFound  = errors.New("food bucket not found")
	ErrBucketItemNotFound  = errors.New("item not in food bucket")
	ErrProductNotAvailable = errors.New("product is not available")
	ErrEmptyFoodBucket     = errors.New("food bucket is empty")
)

type (
	AddBucketItemRequest struct {
		ProductID uint `json:"product_id" validate:"required"`
		Quantity  int  `json:"quantity" validate:"required,gt=0"`
	}

	FoodBucketItemResponse struct {
		ProductID uint    `json:"product_id"`
		Name      string  `json:"name"`
		Price     float64 `json:"price"`
		Quantity  int     `json:"quantity"`
		Subtotal  float64 `json:"subtotal"`
	}

	FoodBucketResponse struct {
		ID     uint                     `json:"id"`
		Status string                   `json:"status"`
		Items  []FoodBucketItemResponse `json:"items"`
		Total  float64                  `json:"total"`
	}
)
