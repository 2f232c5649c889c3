package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessGetProducts        = "products retrieved successfully"
	MessageSuccessCreateProduct      = "product created successfully"
	MessageSuccessUpdateProduct      = "product updated successfully"
	MessageSuccessDeleteProduct      = "product deleted successfully"
	MessageSuccessUploadProductImage = "product image uploaded successfully"

	MessageFailedGetProducts        = "failed to retrieve products"
	MessageFailedCreateProduct      = "failed to create product"
	MessageFailedUpdateProduct      = "failed to update product"
	MessageFailedDeleteProduct      = "failed to delete product"
	MessageFailedUploadProductImage = "failed to upload product image"

	ErrProductNotFound           = errors.New("product not found")
	ErrUnauthorizedProductAccess = errors.New("product belongs to another restaurant")
	ErrImageRequired             = errors.New("image file is required")
)

type (
	ProductInput struct {
		Name        string  `json:"name" validate:"required"`
		Description string  `json:"description"`
		Price       float64 `json:"price" validate:"gt=0"`
		Quantity    int     `json:"quantity" validate:"gte=0"`
		Available   *bool   `json:"available"`
	}

	ProductImageRequest struct {
		Image *multipart.FileHeader `validate:"required"`
	}
)
